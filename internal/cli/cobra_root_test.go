package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/api"
	"todo-list/internal/config"
	apperrors "todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/storage"
	"todo-list/internal/storage/memory"
)

type rootFixture struct {
	root   *RootCommand
	out    *bytes.Buffer
	store  *memory.Store
	opened int
	closed int
}

func newRootFixture(t *testing.T) *rootFixture {
	t.Helper()
	t.Cleanup(func() { logging.SetVerbose(false) })

	f := &rootFixture{out: &bytes.Buffer{}, store: memory.New()}
	f.root = NewRootCommand(func(ctx context.Context, cfg *config.Config) (api.API, func() error, error) {
		f.opened++
		page, err := api.New(ctx, f.store, api.Options{Config: cfg})
		if err != nil {
			return nil, nil, err
		}
		return page, func() error { f.closed++; return nil }, nil
	})
	f.root.SetOutput(f.out)
	return f
}

// run executes the root command with an isolated, missing config file.
func (f *rootFixture) run(t *testing.T, args ...string) error {
	t.Helper()
	f.out.Reset()
	configPath := filepath.Join(t.TempDir(), "missing.yaml")
	f.root.SetArgs(append([]string{"--config", configPath, "--language", "en"}, args...))
	return f.root.Execute()
}

func TestRootCommand_EndToEnd(t *testing.T) {
	f := newRootFixture(t)

	require.NoError(t, f.run(t, "add", "Buy", "milk"))
	assert.Equal(t, "Added task 1: Buy milk\n", f.out.String())

	require.NoError(t, f.run(t, "add", "Call mum"))
	require.NoError(t, f.run(t, "toggle", "1"))
	assert.Equal(t, "Task 1: Buy milk (Done)\n", f.out.String())

	require.NoError(t, f.run(t, "delete", "2"))
	assert.Equal(t, "Deleted task 2: Call mum\n", f.out.String())

	require.NoError(t, f.run(t, "list", "--format", "json"))
	var records []storage.TaskRecord
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &records))
	assert.Equal(t, []storage.TaskRecord{{ID: 1, Content: "Buy milk", Completed: true}}, records)

	assert.Equal(t, 1, f.opened)
	require.NoError(t, f.root.Close())
	assert.Equal(t, 1, f.closed)
	require.NoError(t, f.root.Close())
	assert.Equal(t, 1, f.closed)
}

func TestRootCommand_DumpAndReset(t *testing.T) {
	f := newRootFixture(t)

	require.NoError(t, f.run(t, "add", "Buy", "milk"))
	require.NoError(t, f.run(t, "dump"))
	assert.Contains(t, f.out.String(), storage.TasksKey)

	err := f.run(t, "reset")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))

	require.NoError(t, f.run(t, "reset", "--yes"))
	assert.Equal(t, "Storage reset\n", f.out.String())

	require.NoError(t, f.run(t, "dump"))
	assert.Equal(t, "Storage is empty\n", f.out.String())
}

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	f := newRootFixture(t)

	require.NoError(t, f.run(t,
		"--backend", "memory",
		"--content-max-length", "5",
		"--list-format", "csv",
		"--markdown-style", "dark",
		"--no-color",
		"--app-timeout", "3s",
		"--verbose",
		"lang",
	))

	cfg := f.root.Config()
	require.NotNil(t, cfg)
	assert.Equal(t, config.BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Validation.ContentMaxLength)
	assert.Equal(t, "en", cfg.Display.Language)
	assert.Equal(t, "csv", cfg.Display.ListDefaultFormat)
	assert.Equal(t, "dark", cfg.Display.MarkdownStyle)
	assert.True(t, cfg.Display.NoColor)
	assert.Equal(t, 3*time.Second, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Verbose)
	assert.True(t, logging.DebugEnabled())
}

func TestRootCommand_ContentLimitFromFlag(t *testing.T) {
	f := newRootFixture(t)

	err := f.run(t, "--content-max-length", "5", "add", "too long")
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	f := newRootFixture(t)

	err := f.run(t, "--backend", "mongodb", "list")
	require.Error(t, err)
	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "storage.backend", cfgErr.Field)
	assert.Equal(t, 0, f.opened)
}

func TestRootCommand_OpenerError(t *testing.T) {
	boom := errors.New("cannot open store")
	root := NewRootCommand(func(ctx context.Context, cfg *config.Config) (api.API, func() error, error) {
		return nil, nil, boom
	})
	root.SetOutput(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "list"})

	err := root.Execute()
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, root.Close())
}

func TestRootCommand_ArgumentValidation(t *testing.T) {
	f := newRootFixture(t)

	assert.Error(t, f.run(t, "add"))
	assert.Error(t, f.run(t, "toggle"))
	assert.Error(t, f.run(t, "delete", "1", "2"))
	assert.Error(t, f.run(t, "lang", "en", "de"))
	assert.Equal(t, 0, f.opened)
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, writeFile(path, "display:\n  list_default_format: json\n"))

	f := newRootFixture(t)
	f.root.SetArgs([]string{"--config", path, "--language", "en", "list"})
	require.NoError(t, f.root.Execute())

	assert.Equal(t, "json", f.root.Config().Display.ListDefaultFormat)
	assert.Equal(t, "[]\n", f.out.String())
}

func TestOpenPage_MemoryBackend(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Backend = config.BackendMemory
	cfg.Display.Language = "es"

	page, closeFn, err := OpenPage(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, "es", page.Language())
	assert.Empty(t, page.Items())
}

func TestOpenPage_SQLiteBackend(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested")
	ctx := context.Background()

	page, closeFn, err := OpenPage(ctx, cfg)
	require.NoError(t, err)
	_, err = page.Submit(ctx, "Persist me")
	require.NoError(t, err)
	require.NoError(t, closeFn())

	page, closeFn, err = OpenPage(ctx, cfg)
	require.NoError(t, err)
	defer closeFn()

	tasks, err := page.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Persist me", tasks[0].Content)
}
