package server

import (
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/stepdoc/pkg/buildinfo"
	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

// Response headers set on rendered documents.
const (
	HeaderDocumentID = "X-Document-ID"
	HeaderPages      = "X-Pages"
	HeaderCache      = "X-Cache"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, s.loggerFor(r), http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, s.loggerFor(r), err)
		return
	}
	s.render(w, r, opts)
}

func (s *Server) handleTraverse(w http.ResponseWriter, r *http.Request) {
	algo := chi.URLParam(r, "algo")
	switch algo {
	case pipeline.AlgorithmBFS, pipeline.AlgorithmDFS, pipeline.AlgorithmDijkstra:
	default:
		writeError(w, r, s.loggerFor(r), errors.New(errors.ErrCodeInvalidInput,
			"unknown traversal %q (must be one of: bfs, dfs, dijkstra)", algo))
		return
	}
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, s.loggerFor(r), err)
		return
	}
	opts.Algorithm = algo
	s.render(w, r, opts)
}

// render runs the pipeline, archives the document and writes the PDF.
func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	logger := s.loggerFor(r)
	source, err := s.readBody(w, r)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}
	opts.Logger = logger

	res, err := s.runner.Execute(r.Context(), opts, source)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}

	doc := &Document{
		ID:        NewDocumentID(),
		CreatedAt: time.Now().UTC(),
		Algorithm: opts.Algorithm,
		Start:     opts.Start,
		Pages:     res.Pages,
		Graph:     graph.ToWire(res.Graph),
		PDF:       res.PDF,
	}
	if doc.Algorithm == "" {
		doc.Algorithm = pipeline.DefaultAlgorithm
	}
	if doc.Start == 0 {
		doc.Start = pipeline.DefaultStart
	}
	if err := s.archive.Put(r.Context(), doc); err != nil {
		logger.Warn("archive failed", "err", err)
	} else {
		w.Header().Set(HeaderDocumentID, doc.ID)
	}

	cache := "miss"
	if res.CacheHit {
		cache = "hit"
	}
	w.Header().Set(HeaderCache, cache)
	writePDF(w, res.PDF, res.Pages)
}

func (s *Server) handleDistances(w http.ResponseWriter, r *http.Request) {
	logger := s.loggerFor(r)
	opts, err := s.options(r)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}
	source, err := s.readBody(w, r)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}
	opts.Logger = logger

	dist, g, err := s.runner.Distances(r.Context(), opts, source)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}
	start := max(opts.Start, pipeline.DefaultStart)
	respondJSON(w, r, logger, http.StatusOK, pipeline.NewDistanceTable(g, start, dist))
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	logger := s.loggerFor(r)
	id := chi.URLParam(r, "id")
	if err := ValidateDocumentID(id); err != nil {
		writeError(w, r, logger, err)
		return
	}
	doc, err := s.archive.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, logger, err)
		return
	}
	if r.URL.Query().Get("format") == "json" {
		respondJSON(w, r, logger, http.StatusOK, doc)
		return
	}
	w.Header().Set(HeaderDocumentID, doc.ID)
	writePDF(w, doc.PDF, doc.Pages)
}

func writePDF(w http.ResponseWriter, data []byte, pages int) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set(HeaderPages, strconv.Itoa(pages))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// readBody reads the request body, bounded by the server's limit.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.New(errors.ErrCodeStringTooLong, "request body exceeds %d bytes", s.maxBody)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	return data, nil
}

// options builds pipeline options from the server defaults, the
// Content-Type and the query string.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Logger = nil
	opts.SourceName = "request"

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "content type %q", ct)
		}
		if mt == "application/json" {
			opts.InputFormat = pipeline.FormatJSON
		} else {
			opts.InputFormat = pipeline.FormatText
		}
	}

	q := query{values: r.URL.Query()}
	q.str("algorithm", &opts.Algorithm)
	q.str("engine", &opts.Engine)
	q.str("title", &opts.Title)
	q.str("subtitle", &opts.Subtitle)
	q.str("author", &opts.Author)
	q.int("start", &opts.Start)
	q.int("max_pages", &opts.MaxPages)
	q.float("page_width", &opts.PageWidth)
	q.float("page_height", &opts.PageHeight)
	q.float("scale", &opts.Scale)
	q.bool("show_values", &opts.ShowValues)
	q.bool("show_names", &opts.ShowNames)
	q.bool("hide_labels", &opts.HideLabels)
	q.bool("refresh", &opts.Refresh)
	return opts, q.err
}

// query decodes optional query parameters, keeping the first error.
type query struct {
	values map[string][]string
	err    error
}

func (q *query) get(name string) (string, bool) {
	v, ok := q.values[name]
	if !ok || len(v) == 0 || q.err != nil {
		return "", false
	}
	return v[0], true
}

func (q *query) fail(name, value string) {
	q.err = errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, value)
}

func (q *query) str(name string, dst *string) {
	if v, ok := q.get(name); ok {
		*dst = v
	}
}

func (q *query) int(name string, dst *int) {
	v, ok := q.get(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.fail(name, v)
		return
	}
	*dst = n
}

func (q *query) float(name string, dst *float64) {
	v, ok := q.get(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		q.fail(name, v)
		return
	}
	*dst = f
}

func (q *query) bool(name string, dst *bool) {
	v, ok := q.get(name)
	if !ok {
		return
	}
	if v == "" {
		*dst = true
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.fail(name, v)
		return
	}
	*dst = b
}
