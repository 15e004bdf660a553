package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendNeo4j  = "neo4j"
)

// Config holds all configuration options for the todo application
type Config struct {
	Storage     StorageConfig     `mapstructure:"storage"`
	Neo4j       Neo4jConfig       `mapstructure:"neo4j"`
	Validation  ValidationConfig  `mapstructure:"validation"`
	Display     DisplayConfig     `mapstructure:"display"`
	Server      ServerConfig      `mapstructure:"server"`
	Application ApplicationConfig `mapstructure:"application"`
}

// StorageConfig selects and tunes the key-value store backing the task list
type StorageConfig struct {
	Backend        string        `mapstructure:"backend" env:"TODO_STORAGE_BACKEND"`
	Dir            string        `mapstructure:"dir" env:"TODO_DB_DIR"`
	Filename       string        `mapstructure:"filename" env:"TODO_DB_FILENAME"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout" env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" env:"TODO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `mapstructure:"dir_permissions" env:"TODO_DB_DIR_PERMISSIONS"`
}

// Neo4jConfig holds connection settings for the neo4j backend
type Neo4jConfig struct {
	URI      string `mapstructure:"uri" env:"TODO_NEO4J_URI"`
	Username string `mapstructure:"username" env:"TODO_NEO4J_USERNAME"`
	Password string `mapstructure:"password" env:"TODO_NEO4J_PASSWORD"`
	Database string `mapstructure:"database" env:"TODO_NEO4J_DATABASE"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ContentMaxLength int `mapstructure:"content_max_length" env:"TODO_VALIDATION_CONTENT_MAX"`
}

// DisplayConfig holds language and output formatting configuration
type DisplayConfig struct {
	Language          string `mapstructure:"language" env:"TODO_LANGUAGE"`
	ListDefaultFormat string `mapstructure:"list_default_format" env:"TODO_LIST_DEFAULT_FORMAT"`
	MarkdownStyle     string `mapstructure:"markdown_style" env:"TODO_MARKDOWN_STYLE"`
	NoColor           bool   `mapstructure:"no_color" env:"TODO_NO_COLOR"`
}

// ServerConfig holds HTTP front-end configuration
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" env:"TODO_SERVER_ADDR"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" env:"TODO_SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" env:"TODO_SERVER_WRITE_TIMEOUT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `mapstructure:"timeout" env:"TODO_APP_TIMEOUT"`
	Verbose bool          `mapstructure:"verbose" env:"TODO_APP_VERBOSE"`
}

var validFormats = map[string]bool{"table": true, "json": true, "csv": true, "markdown": true}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			Backend:        BackendSQLite,
			Dir:            filepath.Join(homeDir, ".todo"),
			Filename:       "todo.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Neo4j: Neo4jConfig{
			URI:      "neo4j://localhost:7687",
			Username: "neo4j",
			Database: "neo4j",
		},
		Validation: ValidationConfig{
			ContentMaxLength: 0,
		},
		Display: DisplayConfig{
			Language:          "fr",
			ListDefaultFormat: "table",
			MarkdownStyle:     "auto",
		},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable values are ignored and the previous value kept.
func (c *Config) LoadFromEnvironment() error {
	setString(&c.Storage.Backend, "TODO_STORAGE_BACKEND")
	setString(&c.Storage.Dir, "TODO_DB_DIR")
	setString(&c.Storage.Filename, "TODO_DB_FILENAME")
	setDuration(&c.Storage.QueryTimeout, "TODO_DB_QUERY_TIMEOUT")
	setDuration(&c.Storage.WriteTimeout, "TODO_DB_WRITE_TIMEOUT")
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	setString(&c.Neo4j.URI, "TODO_NEO4J_URI")
	setString(&c.Neo4j.Username, "TODO_NEO4J_USERNAME")
	setString(&c.Neo4j.Password, "TODO_NEO4J_PASSWORD")
	setString(&c.Neo4j.Database, "TODO_NEO4J_DATABASE")

	if maxLen := os.Getenv("TODO_VALIDATION_CONTENT_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.ContentMaxLength = n
		}
	}

	setString(&c.Display.Language, "TODO_LANGUAGE")
	setString(&c.Display.ListDefaultFormat, "TODO_LIST_DEFAULT_FORMAT")
	setString(&c.Display.MarkdownStyle, "TODO_MARKDOWN_STYLE")
	setBool(&c.Display.NoColor, "TODO_NO_COLOR")

	setString(&c.Server.Addr, "TODO_SERVER_ADDR")
	setDuration(&c.Server.ReadTimeout, "TODO_SERVER_READ_TIMEOUT")
	setDuration(&c.Server.WriteTimeout, "TODO_SERVER_WRITE_TIMEOUT")

	setDuration(&c.Application.Timeout, "TODO_APP_TIMEOUT")
	setBool(&c.Application.Verbose, "TODO_APP_VERBOSE")

	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Dir == "" {
			return &ConfigError{Field: "storage.dir", Message: "database directory cannot be empty"}
		}
		if c.Storage.Filename == "" {
			return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
		}
	case BackendMemory:
	case BackendNeo4j:
		if c.Neo4j.URI == "" {
			return &ConfigError{Field: "neo4j.uri", Message: "neo4j uri cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of sqlite, memory, neo4j"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.ContentMaxLength < 0 {
		return &ConfigError{Field: "validation.content_max_length", Message: "content maximum length cannot be negative (0 means unlimited)"}
	}

	if c.Display.Language == "" {
		return &ConfigError{Field: "display.language", Message: "language cannot be empty"}
	}
	if !validFormats[c.Display.ListDefaultFormat] {
		return &ConfigError{Field: "display.list_default_format", Message: "format must be one of table, json, csv, markdown"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
