// Package neo4j implements storage.KeyValueStore on Neo4j, one (:Item) node per key.
package neo4j

import (
	"context"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/storage"
)

// Store implements storage.KeyValueStore
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	owned    bool
}

var (
	_ storage.KeyValueStore = (*Store)(nil)
	_ storage.Inspector     = (*Store)(nil)
)

// New connects to uri and verifies connectivity before returning.
func New(ctx context.Context, uri, username, password, database string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, errors.NewStorageError("create neo4j driver", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, errors.NewStorageError("connect to neo4j", err)
	}

	store := NewWithDriver(driver, database)
	store.owned = true
	if err := store.ensureConstraint(ctx); err != nil {
		driver.Close(ctx)
		return nil, err
	}

	logging.Debugf("connected to neo4j at %s", uri)
	return store, nil
}

// NewWithDriver wraps an existing driver. Close leaves the driver open.
func NewWithDriver(driver neo4j.DriverWithContext, database string) *Store {
	return &Store{driver: driver, database: database}
}

func (s *Store) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: s.database})
}

func (s *Store) ensureConstraint(ctx context.Context) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, "CREATE CONSTRAINT item_key IF NOT EXISTS FOR (i:Item) REQUIRE i.key IS UNIQUE", nil)
	})
	if err != nil {
		return errors.NewStorageError("create item constraint", err)
	}
	return nil
}

// GetItem returns the value stored under key
func (s *Store) GetItem(ctx context.Context, key string) (string, bool, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, "MATCH (i:Item {key: $key}) RETURN i.value AS value", map[string]any{"key": key})
		if err != nil {
			return nil, err
		}
		if !res.Next(ctx) {
			return nil, res.Err()
		}
		value, _ := res.Record().Get("value")
		return value, nil
	})
	if err != nil {
		return "", false, errors.NewStorageError("get item", err)
	}
	if result == nil {
		return "", false, nil
	}

	value, ok := result.(string)
	if !ok {
		return "", false, errors.NewCorruptDataError(key, nil)
	}
	return value, true, nil
}

// SetItem creates or replaces the item node for key
func (s *Store) SetItem(ctx context.Context, key, value string) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx,
			"MERGE (i:Item {key: $key}) SET i.value = $value, i.updated_at = datetime()",
			map[string]any{"key": key, "value": value},
		)
	})
	if err != nil {
		return errors.NewStorageError("set item", err)
	}
	return nil
}

// RemoveItem deletes the item node for key if present
func (s *Store) RemoveItem(ctx context.Context, key string) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, "MATCH (i:Item {key: $key}) DETACH DELETE i", map[string]any{"key": key})
	})
	if err != nil {
		return errors.NewStorageError("remove item", err)
	}
	return nil
}

// Entries returns every item node ordered by key
func (s *Store) Entries(ctx context.Context) ([]storage.Entry, error) {
	session := s.session(ctx, neo4j.AccessModeRead)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx,
			"MATCH (i:Item) RETURN i.key AS key, i.value AS value, i.updated_at AS updated_at ORDER BY i.key",
			nil,
		)
		if err != nil {
			return nil, err
		}
		records, err := res.Collect(ctx)
		if err != nil {
			return nil, err
		}

		entries := make([]storage.Entry, 0, len(records))
		for _, record := range records {
			var entry storage.Entry
			if v, ok := record.Get("key"); ok {
				entry.Key, _ = v.(string)
			}
			if v, ok := record.Get("value"); ok {
				entry.Value, _ = v.(string)
			}
			if v, ok := record.Get("updated_at"); ok {
				entry.UpdatedAt, _ = v.(time.Time)
			}
			entries = append(entries, entry)
		}
		return entries, nil
	})
	if err != nil {
		return nil, errors.NewStorageError("list items", err)
	}
	return result.([]storage.Entry), nil
}

// Reset deletes every item node. The key constraint stays in place.
func (s *Store) Reset(ctx context.Context) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		return tx.Run(ctx, "MATCH (i:Item) DETACH DELETE i", nil)
	})
	if err != nil {
		return errors.NewStorageError("reset items", err)
	}
	logging.Debugln("neo4j store reset")
	return nil
}

// Close releases the driver when the store created it
func (s *Store) Close() error {
	if !s.owned {
		return nil
	}
	return s.driver.Close(context.Background())
}
