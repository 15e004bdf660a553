package api

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/render"
	"todo-list/internal/storage"
	"todo-list/internal/storage/memory"
	"todo-list/internal/storage/sqlite"
)

func setupTestAPI(t *testing.T) (API, *memory.Store) {
	t.Helper()
	store := memory.New()
	page, err := New(context.Background(), store, Options{})
	require.NoError(t, err)
	return page, store
}

func TestNew_EmptyStorage(t *testing.T) {
	page, _ := setupTestAPI(t)

	tasks, err := page.Tasks(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Empty(t, page.Items())
	assert.Equal(t, "fr", page.Language())
}

func TestSubmitToggleDelete(t *testing.T) {
	page, _ := setupTestAPI(t)
	ctx := context.Background()

	created, err := page.Submit(ctx, " Buy milk ")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.Task{ID: 1, Content: "Buy milk"}, *created)

	_, err = page.Submit(ctx, "Walk dog")
	require.NoError(t, err)

	require.NoError(t, page.Toggle(ctx, 1))
	assert.Equal(t, []Item{
		{ID: 1, Content: "Buy milk", Variant: render.Validated},
		{ID: 2, Content: "Walk dog", Variant: render.Unvalidated},
	}, page.Items())

	require.NoError(t, page.Delete(ctx, 1))
	tasks, err := page.Tasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{ID: 2, Content: "Walk dog"}}, tasks)
	assert.Len(t, page.Items(), 1)
}

func TestSubmit_BlankReturnsNil(t *testing.T) {
	page, _ := setupTestAPI(t)

	created, err := page.Submit(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, created)
	assert.Empty(t, page.Items())
}

func TestToggleDelete_UnknownIDAreNoOps(t *testing.T) {
	page, _ := setupTestAPI(t)
	ctx := context.Background()

	assert.NoError(t, page.Toggle(ctx, 42))
	assert.NoError(t, page.Delete(ctx, 42))
	assert.NoError(t, page.Click(ctx, 42, "archive"))
}

func TestNew_CorruptStorage(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.SetItem(context.Background(), storage.TasksKey, "not json"))

	_, err := New(context.Background(), store, Options{})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeCorruptData))
}

func TestChangeLanguage(t *testing.T) {
	page, store := setupTestAPI(t)
	ctx := context.Background()
	_, err := page.Submit(ctx, "A")
	require.NoError(t, err)
	require.NoError(t, page.Toggle(ctx, 1))

	require.NoError(t, page.ChangeLanguage(ctx, "en"))

	assert.Equal(t, "en", page.Language())
	html := page.HTML()
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, "Button to complete the task: A")
	assert.Contains(t, html, "English")
	assert.Equal(t, []Item{{ID: 1, Content: "A", Variant: render.Validated}}, page.Items())

	saved, ok, err := store.GetItem(ctx, storage.LanguageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", saved)

	reopened, err := New(ctx, store, Options{})
	require.NoError(t, err)
	assert.Equal(t, "en", reopened.Language())
}

func TestChangeLanguage_Unsupported(t *testing.T) {
	page, _ := setupTestAPI(t)

	err := page.ChangeLanguage(context.Background(), "xx")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Equal(t, "fr", page.Language())
}

func TestOptions_Language(t *testing.T) {
	page, err := New(context.Background(), memory.New(), Options{Language: "es"})
	require.NoError(t, err)
	assert.Equal(t, "es", page.Language())

	cfg := config.NewConfig()
	cfg.Display.Language = "de"
	page, err = New(context.Background(), memory.New(), Options{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, "de", page.Language())
}

func TestReload_PicksUpExternalWrites(t *testing.T) {
	page, store := setupTestAPI(t)
	ctx := context.Background()
	_, err := page.Submit(ctx, "A")
	require.NoError(t, err)

	other, err := New(ctx, store, Options{})
	require.NoError(t, err)
	_, err = other.Submit(ctx, "B")
	require.NoError(t, err)

	require.NoError(t, page.Reload(ctx))
	assert.Len(t, page.Items(), 2)

	created, err := page.Submit(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestSession_SerialisesConcurrentGestures(t *testing.T) {
	page, _ := setupTestAPI(t)
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := page.Submit(ctx, "task")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	tasks, err := page.Tasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 20)
	assert.Len(t, page.Items(), 20)
}

func TestSession_PersistsAcrossSQLiteReopen(t *testing.T) {
	path := t.TempDir() + "/todo.db"
	ctx := context.Background()

	store, err := sqlite.New(path)
	require.NoError(t, err)
	page, err := New(ctx, store, Options{})
	require.NoError(t, err)
	_, err = page.Submit(ctx, "Persist me")
	require.NoError(t, err)
	require.NoError(t, page.Toggle(ctx, 1))
	require.NoError(t, store.Close())

	store, err = sqlite.New(path)
	require.NoError(t, err)
	defer store.Close()
	page, err = New(ctx, store, Options{})
	require.NoError(t, err)

	assert.Equal(t, []Item{{ID: 1, Content: "Persist me", Variant: render.Validated}}, page.Items())
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err := ParseTaskID(bad)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput), bad)
	}
}

func TestEntries_ListsRawStorage(t *testing.T) {
	page, _ := setupTestAPI(t)
	ctx := context.Background()

	_, err := page.Submit(ctx, "Buy milk")
	require.NoError(t, err)
	require.NoError(t, page.ChangeLanguage(ctx, "de"))

	entries, err := page.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, storage.LanguageKey, entries[0].Key)
	assert.Equal(t, "de", entries[0].Value)
	assert.Equal(t, storage.TasksKey, entries[1].Key)
	assert.JSONEq(t, `[{"id":1,"content":"Buy milk","completed":false}]`, entries[1].Value)
}

func TestReset_EmptiesStorageAndPage(t *testing.T) {
	page, store := setupTestAPI(t)
	ctx := context.Background()

	_, err := page.Submit(ctx, "A")
	require.NoError(t, err)
	_, err = page.Submit(ctx, "B")
	require.NoError(t, err)
	require.NoError(t, page.ChangeLanguage(ctx, "en"))

	require.NoError(t, page.Reset(ctx))

	assert.Empty(t, page.Items())
	assert.Equal(t, "fr", page.Language(), "preference is gone, the default applies")
	entries, err := store.Entries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	task, err := page.Submit(ctx, "C")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, int64(3), task.ID, "ids keep moving forward within the session")
}

// plainStore hides the Inspector methods of the wrapped store.
type plainStore struct {
	storage.KeyValueStore
}

func TestEntriesAndReset_UnsupportedBackend(t *testing.T) {
	page, err := New(context.Background(), plainStore{memory.New()}, Options{})
	require.NoError(t, err)

	_, err = page.Entries(context.Background())
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.True(t, errors.IsErrorType(page.Reset(context.Background()), errors.ErrorTypeInvalidInput))
}
