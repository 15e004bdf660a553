package storage

import (
	"context"
	"encoding/json"

	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

// Gateway reads and writes the full task collection under TasksKey.
type Gateway struct {
	store KeyValueStore
	key   string
}

// NewGateway creates a Gateway over the given store.
func NewGateway(store KeyValueStore) *Gateway {
	return &Gateway{store: store, key: TasksKey}
}

// Save serializes the complete ordered collection and overwrites the stored value.
func (g *Gateway) Save(ctx context.Context, records []TaskRecord) error {
	if records == nil {
		records = []TaskRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeStorage, "encode task collection")
	}

	if err := g.store.SetItem(ctx, g.key, string(data)); err != nil {
		return err
	}

	logging.Debugf("saved %d task(s) under %q", len(records), g.key)
	return nil
}

// Load returns the stored collection in insertion order. An absent key yields an empty
// collection; a value that is not a JSON task array yields a corrupt data error.
func (g *Gateway) Load(ctx context.Context) ([]TaskRecord, error) {
	value, ok, err := g.store.GetItem(ctx, g.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []TaskRecord{}, nil
	}

	var records []TaskRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, errors.NewCorruptDataError(g.key, err)
	}
	if records == nil {
		records = []TaskRecord{}
	}

	return records, nil
}
