package web

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server serves one page session over HTTP
type Server struct {
	srv *http.Server
}

// NewServer creates a server for page using the configured address and timeouts
func NewServer(page api.API, cfg config.ServerConfig) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewRouter(NewTaskController(page)),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Debugf("listening on %s", s.srv.Addr)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}
