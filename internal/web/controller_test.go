package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/render"
	"todo-list/internal/storage"
	"todo-list/internal/storage/memory"
)

func setupTestServer(t *testing.T) (http.Handler, api.API, *memory.Store) {
	t.Helper()
	store := memory.New()
	page, err := api.New(context.Background(), store, api.Options{})
	require.NoError(t, err)
	return NewRouter(NewTaskController(page)), page, store
}

func postForm(handler http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func do(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	handler, _, _ := setupTestServer(t)

	rec := do(handler, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
	assert.Contains(t, rec.Body.String(), `id="taskList"`)
}

func TestSubmitForm(t *testing.T) {
	handler, page, _ := setupTestServer(t)

	rec := postForm(handler, "/tasks", url.Values{"content": {"Buy milk"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	assert.Equal(t, []api.Item{{ID: 1, Content: "Buy milk", Variant: render.Unvalidated}}, page.Items())

	index := do(handler, http.MethodGet, "/", "")
	assert.Contains(t, index.Body.String(), "Buy milk")
	assert.Contains(t, index.Body.String(), `data-task-id="1"`)
}

func TestSubmitForm_BlankIsNoOp(t *testing.T) {
	handler, page, _ := setupTestServer(t)

	rec := postForm(handler, "/tasks", url.Values{"content": {"   "}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, page.Items())
}

func TestClickEvents(t *testing.T) {
	handler, page, _ := setupTestServer(t)
	postForm(handler, "/tasks", url.Values{"content": {"A"}})

	rec := postForm(handler, "/events/click", url.Values{"task_id": {"1"}, "control": {"toggle"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, render.Validated, page.Items()[0].Variant)

	rec = postForm(handler, "/events/click", url.Values{"task_id": {"1"}, "control": {"delete"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, page.Items())

	rec = postForm(handler, "/events/click", url.Values{"task_id": {"1"}, "control": {"delete"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = postForm(handler, "/events/click", url.Values{"task_id": {"abc"}, "control": {"delete"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeLanguageForm(t *testing.T) {
	handler, page, _ := setupTestServer(t)

	rec := postForm(handler, "/language", url.Values{"lang": {"de"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "de", page.Language())

	rec = postForm(handler, "/language", url.Values{"lang": {"xx"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_TaskLifecycle(t *testing.T) {
	handler, _, _ := setupTestServer(t)

	rec := do(handler, http.MethodPost, "/api/tasks", `{"content":"Walk dog"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created storage.TaskRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, storage.TaskRecord{ID: 1, Content: "Walk dog"}, created)

	rec = do(handler, http.MethodPost, "/api/tasks/1/toggle", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(handler, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"content":"Walk dog","completed":true}]`, rec.Body.String())

	rec = do(handler, http.MethodGet, "/api/items", "")
	assert.JSONEq(t, `[{"id":1,"content":"Walk dog","variant":"validated"}]`, rec.Body.String())

	rec = do(handler, http.MethodDelete, "/api/tasks/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(handler, http.MethodGet, "/api/tasks", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_BadRequests(t *testing.T) {
	handler, _, _ := setupTestServer(t)

	assert.Equal(t, http.StatusBadRequest, do(handler, http.MethodPost, "/api/tasks", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, do(handler, http.MethodPost, "/api/tasks", `{"content":"  "}`).Code)
	assert.Equal(t, http.StatusNotFound, do(handler, http.MethodDelete, "/api/tasks/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(handler, http.MethodDelete, "/api/tasks/0", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(handler, http.MethodPut, "/api/tasks", "").Code)
}

func TestAPI_MethodNotAllowed(t *testing.T) {
	handler, _, _ := setupTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPut, "/api/tasks"},
		{http.MethodDelete, "/api/tasks"},
		{http.MethodGet, "/api/tasks/1/toggle"},
		{http.MethodPost, "/api/items"},
		{http.MethodGet, "/tasks"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, http.StatusMethodNotAllowed, do(handler, tt.method, tt.path, "").Code)
		})
	}
}

func TestAPI_CreateTaskKeepsControlCharacters(t *testing.T) {
	handler, page, _ := setupTestServer(t)

	rec := do(handler, http.MethodPost, "/api/tasks", `{"content":"a\u0007b\tc"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"content":"a\u0007b\tc","completed":false}`, rec.Body.String())

	tasks, err := page.Tasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a\u0007b\tc", tasks[0].Content)
}

func TestCorruptStorageReturns500(t *testing.T) {
	handler, _, store := setupTestServer(t)
	require.NoError(t, store.SetItem(context.Background(), storage.TasksKey, "[{"))

	rec := do(handler, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "corrupted")
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	page, err := api.New(context.Background(), memory.New(), api.Options{})
	require.NoError(t, err)
	cfg := config.NewConfig().Server
	cfg.Addr = "127.0.0.1:0"
	server := NewServer(page, cfg)
	assert.Equal(t, "127.0.0.1:0", server.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
