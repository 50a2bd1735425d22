// Package server implements the HTTP surface of the bot: the Telegram
// webhook receiver, a liveness probe, and the secret-guarded activity-log
// export endpoint.
package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/akiratakt/dawnfm/internal/config"
	"github.com/akiratakt/dawnfm/internal/database"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP listener that receives Telegram webhook updates and
// serves the export endpoint.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New builds the HTTP server. The webhook handler is mounted at the root
// path for POST requests; any other method on the root path answers a plain
// liveness response.
func New(logger *slog.Logger, cfg *config.Config, webhook http.HandlerFunc, store database.Store) *Server {
	log := logger.With("component", "server")

	s := &Server{logger: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.rootHandler(webhook))
	mux.HandleFunc("/export", s.exportHandler(cfg.Export.Secret, store))

	s.httpServer = &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Run starts the HTTP listener and shuts it down gracefully when the context
// is cancelled.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}

	s.logger.Info("HTTP server stopped gracefully.")
	return <-errCh
}

// rootHandler routes POSTs on the root path to the Telegram webhook handler
// and answers anything else with a liveness response.
func (s *Server) rootHandler(webhook http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		if r.Method == http.MethodPost {
			webhook(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "dawn.fm bot is running")
	}
}

// exportHandler serves the full activity log as JSON. The shared secret must
// match exactly; a mismatch (or a missing secret) answers 401 without
// revealing which it was.
func (s *Server) exportHandler(secret string, store database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		provided := r.URL.Query().Get("secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		users, err := store.AllUsers(r.Context())
		if err != nil {
			s.logger.ErrorContext(r.Context(), "Failed to load activity log for export", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		// Keyed by the stringified user id, matching the on-disk shape.
		out := make(map[string]*database.UserRecord, len(users))
		for id, rec := range users {
			out[strconv.FormatInt(id, 10)] = rec
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			s.logger.ErrorContext(r.Context(), "Failed to write export response", "error", err)
		}
	}
}
