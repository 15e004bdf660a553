package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Loader resolves a Config from defaults, an optional YAML file, TODO_* variables
// and finally command-line flags, each layer overriding the previous one.
type Loader struct {
	config   *Config
	filePath string
}

func NewLoader() *Loader {
	return NewLoaderWithFile(DefaultConfigPath())
}

// NewLoaderWithFile reads path instead of the default location. A missing file is not an error.
func NewLoaderWithFile(path string) *Loader {
	return &Loader{config: NewConfig(), filePath: path}
}

// DefaultConfigPath is $TODO_CONFIG, else ~/.todo/config.yaml.
func DefaultConfigPath() string {
	if path := os.Getenv("TODO_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".todo", "config.yaml")
}

// Load returns the validated file and environment layers.
func (l *Loader) Load() (*Config, error) {
	return l.LoadWithOverrides(nil)
}

// LoadWithOverrides layers flag values on top of Load's result before validating,
// so a flag can correct a bad file or environment value.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := loadFile(l.filePath, l.config); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %s: %w", l.filePath, err)
	}
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if overrides != nil {
		overrides.apply(l.config)
	}
	if err := l.config.Validate(); err != nil {
		return nil, err
	}
	return l.config, nil
}

func loadFile(path string, cfg *Config) error {
	if path == "" {
		return os.ErrNotExist
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// ConfigOverrides carries only the flags the user actually passed; nil means "not set".
type ConfigOverrides struct {
	Backend          *string
	DBDir            *string
	DBFilename       *string
	DBQueryTimeout   *time.Duration
	DBWriteTimeout   *time.Duration
	DBDirPermissions *uint32

	Neo4jURI *string

	ContentMaxLength *int

	Language          *string
	ListDefaultFormat *string
	MarkdownStyle     *string
	NoColor           *bool

	ServerAddr *string

	Timeout *time.Duration
	Verbose *bool
}

func (o *ConfigOverrides) apply(c *Config) {
	override(&c.Storage.Backend, o.Backend)
	override(&c.Storage.Dir, o.DBDir)
	override(&c.Storage.Filename, o.DBFilename)
	override(&c.Storage.QueryTimeout, o.DBQueryTimeout)
	override(&c.Storage.WriteTimeout, o.DBWriteTimeout)
	override(&c.Storage.DirPermissions, o.DBDirPermissions)
	override(&c.Neo4j.URI, o.Neo4jURI)
	override(&c.Validation.ContentMaxLength, o.ContentMaxLength)
	override(&c.Display.Language, o.Language)
	override(&c.Display.ListDefaultFormat, o.ListDefaultFormat)
	override(&c.Display.MarkdownStyle, o.MarkdownStyle)
	override(&c.Display.NoColor, o.NoColor)
	override(&c.Server.Addr, o.ServerAddr)
	override(&c.Application.Timeout, o.Timeout)
	override(&c.Application.Verbose, o.Verbose)
}

// override copies *src into *dst when the flag was set.
func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
