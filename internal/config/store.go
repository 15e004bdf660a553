package config

import (
	"context"
	"fmt"
	"os"

	"todo-list/internal/storage"
	"todo-list/internal/storage/memory"
	"todo-list/internal/storage/neo4j"
	"todo-list/internal/storage/sqlite"
)

// CreateStore creates the key-value store selected by the configuration
func CreateStore(ctx context.Context, config *Config) (storage.KeyValueStore, error) {
	switch config.Storage.Backend {
	case BackendMemory:
		return memory.New(), nil
	case BackendNeo4j:
		store, err := neo4j.New(ctx, config.Neo4j.URI, config.Neo4j.Username, config.Neo4j.Password, config.Neo4j.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to neo4j: %w", err)
		}
		return store, nil
	default:
		store, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
			QueryTimeout:   config.Storage.QueryTimeout,
			WriteTimeout:   config.Storage.WriteTimeout,
			DirPermissions: os.FileMode(config.Storage.DirPermissions),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return store, nil
	}
}
