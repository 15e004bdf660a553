package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/storage/memory"
)

type testApp struct {
	*App
	out   *bytes.Buffer
	store *memory.Store
}

// setupTestApp builds an English page session over an in-memory store.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	store := memory.New()
	cfg := config.NewConfig()
	cfg.Display.NoColor = true

	page, err := api.New(context.Background(), store, api.Options{Language: "en", Config: cfg})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	app := NewAppWithConfig(page, cfg)
	out := &bytes.Buffer{}
	app.SetOutput(out)

	return &testApp{App: app, out: out, store: store}
}

func (a *testApp) mustAdd(t *testing.T, content string) int64 {
	t.Helper()
	task, err := a.api.Submit(context.Background(), content)
	require.NoError(t, err)
	require.NotNil(t, task)
	return task.ID
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
