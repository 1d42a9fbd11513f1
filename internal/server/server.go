// Package server exposes the document pipeline over HTTP.
//
// # Routes
//
//	POST /v1/render              draw the graph on one page (or run ?algorithm=)
//	POST /v1/traverse/{algo}     run bfs, dfs or dijkstra and return the PDF
//	POST /v1/distances           shortest path distances as JSON
//	GET  /v1/documents/{id}      fetch an archived PDF
//	GET  /healthz                liveness and build information
//
// The request body is the graph, in the text format or, with a JSON
// Content-Type, its JSON form. Query parameters carry the options:
// start, algorithm, engine, page_width, page_height, max_pages, scale,
// title, show_values, show_names and hide_labels.
//
// Rendered documents are archived and their id is returned in the
// X-Document-ID header. Errors are JSON objects with a code and message;
// the status follows the error code.
package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

// DefaultMaxBody bounds request bodies, in bytes.
const DefaultMaxBody = 4 << 20

// Config configures a Server.
type Config struct {
	// Runner executes the pipeline. Required.
	Runner *pipeline.Runner

	// Archive stores rendered documents. Nil uses a MemoryArchive.
	Archive Archive

	// Defaults are applied before query parameters, typically loaded
	// from the config file.
	Defaults pipeline.Options

	// Logger receives request logs. Nil discards them.
	Logger *log.Logger

	// MaxBody bounds request bodies. Zero uses DefaultMaxBody.
	MaxBody int64
}

// Server is the HTTP API.
type Server struct {
	runner   *pipeline.Runner
	archive  Archive
	defaults pipeline.Options
	logger   *log.Logger
	maxBody  int64
	router   chi.Router
}

// New builds a Server and its routes.
func New(cfg Config) *Server {
	s := &Server{
		runner:   cfg.Runner,
		archive:  cfg.Archive,
		defaults: cfg.Defaults,
		logger:   cfg.Logger,
		maxBody:  cfg.MaxBody,
	}
	if s.archive == nil {
		s.archive = NewMemoryArchive(0)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBody
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Post("/traverse/{algo}", s.handleTraverse)
		r.Post("/distances", s.handleDistances)
		r.Get("/documents/{id}", s.handleDocument)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, s.logger, errNotFound(r.URL.Path))
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully and closes the archive.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	if cerr := s.archive.Close(shutdownCtx); err == nil {
		err = cerr
	}
	return err
}
