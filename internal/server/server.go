// Package server exposes the luthier calculators as a JSON HTTP API.
//
// Routes:
//
//	GET  /healthz
//	POST /api/v1/parse      {"text": "42mm"}
//	POST /api/v1/convert    {"text": "25.5 in", "finest": 64, "snap": false}
//	POST /api/v1/round      {"value": 0.3, "finest": 64, "snap": false}
//	POST /api/v1/spacing    {"nut_width": 1.625, "gauges": [...], "edge_distance": 0.125, "edge_flush": false}
//	POST /api/v1/fretboard  {"start_radius": 10, "end_radius": 16, "scale_length": 25.5, "num_frets": 22}
//
// Failures are returned as {"error": "...", "code": "..."}. Errors caused by
// the request values are 422, malformed JSON is 400, anything else is 500.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/luthier/pkg/ruler"
	"github.com/matzehuels/luthier/pkg/spacing"
)

// DefaultMaxBodyBytes caps request bodies.
const DefaultMaxBodyBytes = 64 << 10

const shutdownTimeout = 10 * time.Second

// Options configures a Server. Zero values fall back to package defaults.
type Options struct {
	// Ruler is used when a request does not set finest or snap.
	Ruler ruler.Options

	// Spacing is used when a request does not set edge_distance or
	// edge_flush. Nil means spacing.DefaultOptions.
	Spacing *spacing.Options

	MaxBodyBytes int64
}

// Server serves the API. It holds no per-request state and is safe for
// concurrent use.
type Server struct {
	logger *log.Logger
	opts   Options
}

// New creates a Server. A nil logger means log.Default().
func New(logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	opts.Ruler.SetDefaults()
	if opts.Spacing == nil {
		def := spacing.DefaultOptions()
		opts.Spacing = &def
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Server{logger: logger, opts: opts}
}

// Handler returns the router with all middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(s.opts.MaxBodyBytes))

	r.Get("/healthz", s.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parse", s.parse)
		r.Post("/convert", s.convert)
		r.Post("/round", s.round)
		r.Post("/spacing", s.spacing)
		r.Post("/fretboard", s.fretboard)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("Server stopped")
	return nil
}
