// Package repository keeps the persisted task collection consistent under add, remove and update.
// Every mutation re-reads the full collection from storage and writes back a complete snapshot.
package repository

import (
	"context"
	"strconv"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/storage"
	"todo-list/internal/validation"
)

// TaskRepository defines CRUD access to the persisted task collection
type TaskRepository interface {
	ListAll(ctx context.Context) ([]domain.Task, error)
	Add(ctx context.Context, task domain.Task) error
	Remove(ctx context.Context, id int64) error
	UpdateByID(ctx context.Context, task domain.Task) error
}

// Repository implements TaskRepository over a storage Gateway
type Repository struct {
	gateway   *storage.Gateway
	mapper    *domain.TaskMapper
	validator *validation.TaskValidator
}

var _ TaskRepository = (*Repository)(nil)

// New creates a Repository over the given store
func New(store storage.KeyValueStore) *Repository {
	return &Repository{
		gateway:   storage.NewGateway(store),
		mapper:    domain.NewTaskMapper(),
		validator: validation.NewTaskValidator(),
	}
}

// NewWithConfig creates a Repository honouring configured validation limits
func NewWithConfig(store storage.KeyValueStore, cfg *config.Config) *Repository {
	repo := New(store)
	repo.validator = validation.NewTaskValidatorWithConfig(cfg)
	return repo
}

// ListAll returns the full ordered collection as currently persisted
func (r *Repository) ListAll(ctx context.Context) ([]domain.Task, error) {
	records, err := r.gateway.Load(ctx)
	if err != nil {
		return nil, err
	}
	return r.mapper.FromRecordSlice(records), nil
}

// Add appends task to the persisted collection. The caller assigns the id;
// an id already present is rejected.
func (r *Repository) Add(ctx context.Context, task domain.Task) error {
	if err := r.validator.ValidateTask(task); err != nil {
		return errors.NewValidationError("invalid task", err)
	}

	tasks, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	if _, exists := domain.FindByID(tasks, task.ID); exists {
		return errors.NewConflictError("task", strconv.FormatInt(task.ID, 10))
	}

	tasks = append(tasks, task)
	if err := r.save(ctx, tasks); err != nil {
		return err
	}

	logging.Debugf("added task %d", task.ID)
	return nil
}

// Remove deletes the task with the given id. Unknown ids leave storage untouched.
func (r *Repository) Remove(ctx context.Context, id int64) error {
	tasks, err := r.ListAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(tasks) {
		logging.Debugf("remove: task %d not found, nothing to do", id)
		return nil
	}

	if err := r.save(ctx, kept); err != nil {
		return err
	}

	logging.Debugf("removed task %d", id)
	return nil
}

// UpdateByID replaces the task sharing task.ID with task verbatim. Unknown ids leave storage untouched.
func (r *Repository) UpdateByID(ctx context.Context, task domain.Task) error {
	tasks, err := r.ListAll(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			found = true
			break
		}
	}
	if !found {
		logging.Debugf("update: task %d not found, nothing to do", task.ID)
		return nil
	}

	if err := r.save(ctx, tasks); err != nil {
		return err
	}

	logging.Debugf("updated task %d (completed=%t)", task.ID, task.Completed)
	return nil
}

func (r *Repository) save(ctx context.Context, tasks []domain.Task) error {
	return r.gateway.Save(ctx, r.mapper.ToRecordSlice(tasks))
}
