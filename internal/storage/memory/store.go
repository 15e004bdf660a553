// Package memory provides a map-backed KeyValueStore for tests and throwaway sessions.
package memory

import (
	"context"
	"sort"
	"sync"

	"todo-list/internal/storage"
)

var (
	_ storage.KeyValueStore = (*Store)(nil)
	_ storage.Inspector     = (*Store)(nil)
)

// Store keeps values in process memory.
type Store struct {
	mu    sync.RWMutex
	items map[string]string
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{items: make(map[string]string)}
}

// GetItem returns the value under key.
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	return value, ok, nil
}

// SetItem stores value under key.
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

// RemoveItem deletes key.
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Entries returns every pair ordered by key. Write times are not tracked.
func (s *Store) Entries(ctx context.Context) ([]storage.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]storage.Entry, 0, len(s.items))
	for key, value := range s.items {
		entries = append(entries, storage.Entry{Key: key, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}

// Reset drops every pair.
func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]string)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
