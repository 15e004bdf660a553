// Package storage persists the task collection as a single serialized blob in a key-value store,
// mirroring browser local storage semantics.
package storage

import (
	"context"
	"time"
)

const (
	// TasksKey holds the JSON array of every task.
	TasksKey = "todo-tasks"
	// LanguageKey holds the selected interface language.
	LanguageKey = "app-language"
)

// KeyValueStore is a persistent string-to-string store.
type KeyValueStore interface {
	// GetItem returns the value under key and whether the key exists.
	GetItem(ctx context.Context, key string) (string, bool, error)
	// SetItem overwrites any prior value under key.
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem deletes key; removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

// Entry is one raw key/value pair as the backend holds it. UpdatedAt is zero
// when the backend does not track write times.
type Entry struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Inspector is implemented by backends that can list and wipe everything they hold.
type Inspector interface {
	// Entries returns every pair ordered by key.
	Entries(ctx context.Context) ([]Entry, error)
	// Reset removes every pair, leaving the backend ready for use.
	Reset(ctx context.Context) error
}

// TaskRecord is the persisted shape of a task.
type TaskRecord struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}
