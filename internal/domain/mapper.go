package domain

import (
	"todo-list/internal/storage"
)

// TaskMapper handles conversion between domain Tasks and persisted TaskRecords.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to its persisted form.
func (m *TaskMapper) ToRecord(task Task) storage.TaskRecord {
	return storage.TaskRecord{
		ID:        task.ID,
		Content:   task.Content,
		Completed: task.Completed,
	}
}

// FromRecord converts a persisted TaskRecord to a domain Task.
func (m *TaskMapper) FromRecord(record storage.TaskRecord) Task {
	return Task{
		ID:        record.ID,
		Content:   record.Content,
		Completed: record.Completed,
	}
}

// ToRecordSlice converts a slice of domain Tasks, preserving order.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []storage.TaskRecord {
	records := make([]storage.TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecordSlice converts a slice of TaskRecords, preserving order.
func (m *TaskMapper) FromRecordSlice(records []storage.TaskRecord) []Task {
	tasks := make([]Task, len(records))
	for i, record := range records {
		tasks[i] = m.FromRecord(record)
	}
	return tasks
}
