package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"budgetplanner/internal/logging"
	"budgetplanner/internal/projects"
)

// Options configures a Server
type Options struct {
	ListenAddr      string
	AllowedOrigin   string
	ShutdownTimeout time.Duration
	Version         string
}

// Server exposes the project catalog over HTTP
type Server struct {
	catalog *projects.Catalog
	opts    Options
	http    *http.Server
}

// New creates a server for catalog
func New(catalog *projects.Catalog, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	s := &Server{catalog: catalog, opts: opts}
	s.http = &http.Server{
		Addr:              opts.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the full middleware-wrapped router
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /api/projects", s.handleProjects)
	mux.HandleFunc("GET /api/projects/all", s.handleAllProjects)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	return withRequestLogging(withCORS(s.opts.AllowedOrigin, mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.ListenAddr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info("HTTP server starting", map[string]interface{}{
			"addr":           ln.Addr().String(),
			"allowed_origin": s.opts.AllowedOrigin,
		})
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info("Shutdown requested", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown error: %w", err)
	}
	return <-errCh
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.Request(r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
