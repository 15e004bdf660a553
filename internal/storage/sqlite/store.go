// Package sqlite implements storage.KeyValueStore on a single local_storage table.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/storage"
	"todo-list/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Options tunes a Store
type Options struct {
	QueryTimeout   time.Duration
	WriteTimeout   time.Duration
	DirPermissions os.FileMode
}

// DefaultOptions returns the timeouts used when no configuration is supplied
func DefaultOptions() Options {
	return Options{
		QueryTimeout:   10 * time.Second,
		WriteTimeout:   5 * time.Second,
		DirPermissions: 0755,
	}
}

// Store implements storage.KeyValueStore
type Store struct {
	db   *sql.DB
	opts Options
}

var (
	_ storage.KeyValueStore = (*Store)(nil)
	_ storage.Inspector     = (*Store)(nil)
)

// New creates a new SQLite store with default options
func New(dbPath string) (*Store, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions creates a new SQLite store, creating the parent directory when needed
func NewWithOptions(dbPath string, opts Options) (*Store, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), opts.DirPermissions); err != nil {
			return nil, errors.NewStorageError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// One connection keeps :memory: databases coherent and serialises writers.
	db.SetMaxOpenConns(1)

	if err := migrations.Up(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	logging.Debugf("opened sqlite store at %s", dbPath)
	return &Store{db: db, opts: opts}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetItem returns the value stored under key
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := s.withTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM local_storage WHERE key = ?`
	item, ok, err := QuerySingle(ctx, s.db, query, ScanItem, "storage item", key)
	if err != nil || !ok {
		return "", false, err
	}
	return item.Value, true, nil
}

// SetItem inserts or replaces the value stored under key
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	ctx, cancel := s.withTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO local_storage (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, s.db, "set item", query, key, value, FormatTimeForDB(timeNow()))
}

// RemoveItem deletes key if present
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	ctx, cancel := s.withTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	return Execute(ctx, s.db, "remove item", `DELETE FROM local_storage WHERE key = ?`, key)
}

// Items lists every stored row ordered by key
func (s *Store) Items(ctx context.Context) ([]*Item, error) {
	ctx, cancel := s.withTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM local_storage ORDER BY key ASC`
	return QueryMultiple(ctx, s.db, query, ScanItems, "storage items")
}

// Entries implements storage.Inspector over Items
func (s *Store) Entries(ctx context.Context) ([]storage.Entry, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]storage.Entry, len(items))
	for i, item := range items {
		entries[i] = storage.Entry{Key: item.Key, Value: item.Value, UpdatedAt: item.UpdatedAt}
	}
	return entries, nil
}

// Reset rolls the schema back to nothing and re-applies it, leaving an empty local_storage table
func (s *Store) Reset(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx, s.opts.WriteTimeout)
	defer cancel()

	if err := migrations.Down(ctx, s.db, 0); err != nil {
		return errors.NewStorageError("reset schema", err)
	}
	if err := migrations.Up(ctx, s.db); err != nil {
		return errors.NewStorageError("recreate schema", err)
	}
	logging.Debugln("sqlite store reset")
	return nil
}

func (s *Store) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
