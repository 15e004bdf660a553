// Package web serves a page session over HTTP.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"todo-list/internal/api"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
)

// TaskController handles HTTP requests for the task page.
type TaskController struct {
	Page   api.API
	mapper *domain.TaskMapper
}

// NewTaskController creates a new TaskController.
func NewTaskController(page api.API) *TaskController {
	return &TaskController{Page: page, mapper: domain.NewTaskMapper()}
}

// Index handles GET /. The list is rebuilt from storage on every request.
func (c *TaskController) Index(w http.ResponseWriter, r *http.Request) {
	if err := c.Page.Reload(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(c.Page.HTML()))
}

// Submit handles POST /tasks from the page form.
func (c *TaskController) Submit(w http.ResponseWriter, r *http.Request) {
	if _, err := c.Page.Submit(r.Context(), r.FormValue("content")); err != nil {
		writeError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Click handles POST /events/click, sent by the page's delegated click listener.
func (c *TaskController) Click(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseTaskID(r.FormValue("task_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Page.Click(r.Context(), id, r.FormValue("control")); err != nil {
		writeError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ChangeLanguage handles POST /language.
func (c *TaskController) ChangeLanguage(w http.ResponseWriter, r *http.Request) {
	if err := c.Page.ChangeLanguage(r.Context(), r.FormValue("lang")); err != nil {
		writeError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ListTasks handles GET /api/tasks.
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := c.Page.Tasks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.mapper.ToRecordSlice(tasks))
}

// CreateTask handles POST /api/tasks with a JSON body {"content": "..."}.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	task, err := c.Page.Submit(r.Context(), body.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	if task == nil {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, c.mapper.ToRecord(*task))
}

// ListItems handles GET /api/items, the rows as rendered.
func (c *TaskController) ListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.Page.Items())
}

// ToggleTask handles POST /api/tasks/{taskID}/toggle.
func (c *TaskController) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseTaskID(mux.Vars(r)["taskID"])
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Page.Toggle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask handles DELETE /api/tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := api.ParseTaskID(mux.Vars(r)["taskID"])
	if err != nil {
		writeError(w, err)
		return
	}
	if err := c.Page.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.ShouldLogError(err) {
		logging.Debugf("request failed: %v", err)
	}
	http.Error(w, errors.GetUserMessage(err), statusFor(err))
}

func statusFor(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case errors.ErrorTypeValidation, errors.ErrorTypeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeConflict:
		return http.StatusConflict
	case errors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
