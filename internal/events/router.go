// Package events routes page events to repository mutations and document updates.
package events

import (
	"context"
	"strconv"
	"strings"

	"todo-list/internal/dom"
	"todo-list/internal/domain"
	"todo-list/internal/logging"
	"todo-list/internal/render"
	"todo-list/internal/repository"
)

// ControlKind tags an interactive element with the action it triggers
type ControlKind string

const (
	ControlToggle ControlKind = render.ControlToggle
	ControlDelete ControlKind = render.ControlDelete
)

// Event is a user interaction on the page
type Event interface {
	event()
}

// Click is a click whose target is an element of the page
type Click struct {
	Target *dom.Element
}

// Submit is a submission of the task form
type Submit struct{}

func (Click) event()  {}
func (Submit) event() {}

// Handler performs the action of one control kind for task id
type Handler func(ctx context.Context, id int64) error

// Router dispatches events. Each call runs to completion: repository and document
// are both updated before Dispatch returns.
type Router struct {
	repo     repository.TaskRepository
	doc      *dom.Document
	renderer *render.Renderer
	ids      *IDAllocator
	controls map[ControlKind]Handler
}

// NewRouter wires a router over the given collaborators
func NewRouter(repo repository.TaskRepository, doc *dom.Document, renderer *render.Renderer, ids *IDAllocator) *Router {
	r := &Router{
		repo:     repo,
		doc:      doc,
		renderer: renderer,
		ids:      ids,
	}
	r.controls = map[ControlKind]Handler{
		ControlToggle: r.toggle,
		ControlDelete: r.delete,
	}
	return r
}

// Dispatch handles one event
func (r *Router) Dispatch(ctx context.Context, ev Event) error {
	switch e := ev.(type) {
	case Click:
		return r.click(ctx, e)
	case Submit:
		return r.submit(ctx)
	default:
		logging.Debugf("ignoring unsupported event %T", ev)
		return nil
	}
}

func (r *Router) click(ctx context.Context, e Click) error {
	if e.Target == nil {
		return nil
	}

	kind := ControlKind(e.Target.Attr(dom.ControlAttr))
	handler, ok := r.controls[kind]
	if !ok {
		logging.Debugf("click on element without known control (%q), ignoring", kind)
		return nil
	}

	id, err := strconv.ParseInt(e.Target.Attr(dom.TaskIDAttr), 10, 64)
	if err != nil {
		logging.Debugf("click on %s control without a task id, ignoring", kind)
		return nil
	}

	return handler(ctx, id)
}

// toggle flips the persisted completion flag, then restyles the item to match.
func (r *Router) toggle(ctx context.Context, id int64) error {
	item := r.doc.TaskItem(id)
	if item == nil {
		logging.Debugf("toggle: no element for task %d", id)
		return nil
	}

	tasks, err := r.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	task, ok := domain.FindByID(tasks, id)
	if !ok {
		logging.Debugf("toggle: no record for task %d", id)
		return nil
	}

	updated := task.Toggled()
	if err := r.repo.UpdateByID(ctx, updated); err != nil {
		return err
	}
	r.renderer.ApplyVariant(item, updated.Completed)

	logging.Debugf("toggled task %d to %s", id, render.VariantFor(updated.Completed))
	return nil
}

func (r *Router) delete(ctx context.Context, id int64) error {
	item := r.doc.TaskItem(id)
	if item == nil {
		logging.Debugf("delete: no element for task %d", id)
		return nil
	}

	if err := r.repo.Remove(ctx, id); err != nil {
		return err
	}
	item.Remove()

	logging.Debugf("deleted task %d", id)
	return nil
}

func (r *Router) submit(ctx context.Context) error {
	content := strings.TrimSpace(r.doc.InputValue(dom.TaskInputID))
	if content == "" {
		logging.Debugln("submit with empty input, ignoring")
		return nil
	}

	// The id is only consumed once the repository has accepted the task.
	task := domain.NewTask(r.ids.Peek(), content)
	if err := r.repo.Add(ctx, task); err != nil {
		return err
	}
	r.ids.Next()
	r.renderer.RenderTask(task)
	r.doc.SetInputValue(dom.TaskInputID, "")

	logging.Debugf("created task %d", task.ID)
	return nil
}
