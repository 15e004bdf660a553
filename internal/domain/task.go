package domain

import "fmt"

// Task represents a to-do item in the domain model.
// Content is immutable after creation; only Completed changes, through whole-record replacement.
type Task struct {
	ID        int64
	Content   string
	Completed bool
}

// NewTask creates a new, not yet completed Task.
func NewTask(id int64, content string) Task {
	return Task{
		ID:      id,
		Content: content,
	}
}

// Toggled returns a copy of the task with the completion flag flipped.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

// String returns the task as a checklist line.
func (t Task) String() string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s", mark, t.Content)
}

// NextID returns max(existing ids) + 1, or 1 for an empty collection.
func NextID(tasks []Task) int64 {
	var maxID int64
	for _, task := range tasks {
		if task.ID > maxID {
			maxID = task.ID
		}
	}
	return maxID + 1
}

// FindByID returns the task with the given id from the collection.
func FindByID(tasks []Task, id int64) (Task, bool) {
	for _, task := range tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}
