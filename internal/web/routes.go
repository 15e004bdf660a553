package web

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"todo-list/internal/logging"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, c *TaskController) {
	router.HandleFunc("/", c.Index).Methods(http.MethodGet)
	router.HandleFunc("/tasks", c.Submit).Methods(http.MethodPost)
	router.HandleFunc("/events/click", c.Click).Methods(http.MethodPost)
	router.HandleFunc("/language", c.ChangeLanguage).Methods(http.MethodPost)

	// JSON routes sit on the root router: a PathPrefix subrouter reports a
	// method mismatch as 404 instead of 405.
	router.HandleFunc("/api/tasks", c.ListTasks).Methods(http.MethodGet)
	router.HandleFunc("/api/tasks", c.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/api/tasks/{taskID:[0-9]+}/toggle", c.ToggleTask).Methods(http.MethodPost)
	router.HandleFunc("/api/tasks/{taskID:[0-9]+}", c.DeleteTask).Methods(http.MethodDelete)
	router.HandleFunc("/api/items", c.ListItems).Methods(http.MethodGet)
}

// NewRouter builds the complete handler, request logging included.
func NewRouter(c *TaskController) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)
	RegisterRoutes(router, c)
	return router
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}
