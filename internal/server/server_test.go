package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stepdoc/pkg/cache"
	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

const chain = `Graph
5
node_pos 1 0 0
node_pos 2 1 0
node_pos 3 2 0
node_pos 4 3 0
node_pos 5 4 0
arc 1 2
arc 2 3
arc 3 4
arc 4 5
`

const weighted = `Graph
4
node_pos 1 0 0
node_pos 2 1 1
node_pos 3 1 -1
node_pos 4 2 0
weighted_arc 1 2 4
weighted_arc 1 3 1
weighted_arc 3 2 2
weighted_arc 2 4 1
`

func newTestServer(t *testing.T) (*Server, *MemoryArchive) {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	archive := NewMemoryArchive(8)
	s := New(Config{
		Runner:  pipeline.NewRunner(c, nil, nil),
		Archive: archive,
	})
	return s, archive
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Build.Version)
}

func TestRender(t *testing.T) {
	s, archive := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render", chain)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1", rec.Header().Get(HeaderPages))
	assert.Equal(t, "miss", rec.Header().Get(HeaderCache))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-1.4")))

	id := rec.Header().Get(HeaderDocumentID)
	require.NoError(t, ValidateDocumentID(id))
	assert.Equal(t, 1, archive.Len())

	again := do(t, s, http.MethodPost, "/v1/render", chain)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, "hit", again.Header().Get(HeaderCache))
	assert.Equal(t, rec.Body.Bytes(), again.Body.Bytes())
	assert.NotEqual(t, id, again.Header().Get(HeaderDocumentID))
}

func TestRenderAlgorithmQuery(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/render?algorithm=bfs&title=Chain", chain)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "7", rec.Header().Get(HeaderPages))
}

func TestTraverse(t *testing.T) {
	s, archive := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/traverse/bfs?start=1", chain)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "6", rec.Header().Get(HeaderPages))

	doc, err := archive.Get(context.Background(), rec.Header().Get(HeaderDocumentID))
	require.NoError(t, err)
	assert.Equal(t, pipeline.AlgorithmBFS, doc.Algorithm)
	assert.Equal(t, 1, doc.Start)
	assert.Equal(t, 6, doc.Pages)
	assert.Len(t, doc.Graph.Nodes, 5)
	assert.Equal(t, rec.Body.Bytes(), doc.PDF)
}

func TestTraverseUnknownAlgorithm(t *testing.T) {
	s, _ := newTestServer(t)
	for _, algo := range []string{"none", "astar"} {
		rec := do(t, s, http.MethodPost, "/v1/traverse/"+algo, chain)
		assert.Equal(t, http.StatusBadRequest, rec.Code, algo)
		assert.Equal(t, "INVALID_INPUT", string(decodeError(t, rec).Error.Code))
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   string
	}{
		{"empty body", "/v1/render", "", http.StatusBadRequest, "INVALID_INPUT"},
		{"bad graph", "/v1/render", "Graph\nx\n", http.StatusBadRequest, "INVALID_GRAPH"},
		{"bad start", "/v1/traverse/dfs?start=abc", chain, http.StatusBadRequest, "INVALID_INPUT"},
		{"start out of range", "/v1/traverse/dfs?start=9", chain, http.StatusBadRequest, "INDEX_OUT_OF_RANGE"},
		{"bad bool", "/v1/render?show_values=maybe", chain, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad engine", "/v1/render?engine=bogus", chain, http.StatusBadRequest, "INVALID_INPUT"},
		{"page limit", "/v1/traverse/bfs?max_pages=3", chain, http.StatusUnprocessableEntity, "TOO_MANY_PAGES"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, archive := newTestServer(t)
			rec := do(t, s, http.MethodPost, tt.target, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, string(body.Error.Code))
			assert.NotEmpty(t, body.Error.RequestID)
			assert.Zero(t, archive.Len())
		})
	}
}

func TestRenderBodyLimit(t *testing.T) {
	s := New(Config{Runner: pipeline.NewRunner(nil, nil, nil), MaxBody: 16})
	rec := do(t, s, http.MethodPost, "/v1/render", chain)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "STRING_TOO_LONG", string(decodeError(t, rec).Error.Code))
}

func TestRenderJSONBody(t *testing.T) {
	s, _ := newTestServer(t)
	src := `{"directed":true,"nodes":[{"pos":[0,0]},{"pos":[1,0]},{"pos":[2,0]}],"arcs":[{"from":1,"to":2},{"from":2,"to":3}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/traverse/bfs", strings.NewReader(src))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "4", rec.Header().Get(HeaderPages))
}

func TestDistances(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/distances?start=3", weighted)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Start     int        `json:"start"`
		Nodes     []string   `json:"nodes"`
		Distances []*float64 `json:"distances"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Start)
	assert.Equal(t, []string{"1", "2", "3", "4"}, body.Nodes)
	require.Len(t, body.Distances, 4)
	assert.Nil(t, body.Distances[0], "node 1 is unreachable from 3")
	require.NotNil(t, body.Distances[1])
	assert.Equal(t, 2.0, *body.Distances[1])
	assert.Equal(t, 0.0, *body.Distances[2])
	assert.Equal(t, 3.0, *body.Distances[3])
}

func TestDocument(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/v1/traverse/dijkstra", weighted)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	id := rec.Header().Get(HeaderDocumentID)

	got := do(t, s, http.MethodGet, "/v1/documents/"+id, "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "application/pdf", got.Header().Get("Content-Type"))
	assert.Equal(t, rec.Header().Get(HeaderPages), got.Header().Get(HeaderPages))
	assert.Equal(t, rec.Body.Bytes(), got.Body.Bytes())

	meta := do(t, s, http.MethodGet, "/v1/documents/"+id+"?format=json", "")
	require.Equal(t, http.StatusOK, meta.Code)
	var doc Document
	require.NoError(t, json.Unmarshal(meta.Body.Bytes(), &doc))
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, pipeline.AlgorithmDijkstra, doc.Algorithm)
	assert.Empty(t, doc.PDF)
	assert.True(t, doc.Graph.Weighted)

	missing := do(t, s, http.MethodGet, "/v1/documents/"+NewDocumentID(), "")
	assert.Equal(t, http.StatusNotFound, missing.Code)

	bad := do(t, s, http.MethodGet, "/v1/documents/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestDocumentUnreachableNode(t *testing.T) {
	s, _ := newTestServer(t)
	const partial = `Graph
3
node_pos 1 0 0
node_pos 2 1 0
node_pos 3 2 0
weighted_arc 1 2 2
`
	rec := do(t, s, http.MethodPost, "/v1/traverse/dijkstra", partial)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	id := rec.Header().Get(HeaderDocumentID)

	meta := do(t, s, http.MethodGet, "/v1/documents/"+id+"?format=json", "")
	require.Equal(t, http.StatusOK, meta.Code)
	require.NotEmpty(t, meta.Body.Bytes())
	var doc Document
	require.NoError(t, json.Unmarshal(meta.Body.Bytes(), &doc), meta.Body.String())
	require.Len(t, doc.Graph.Nodes, 3)
	assert.False(t, doc.Graph.Nodes[1].Infinite)
	assert.Equal(t, 2.0, doc.Graph.Nodes[1].Value)
	assert.True(t, doc.Graph.Nodes[2].Infinite, "node 3 is never reached")
}

func TestWriteJSONEncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	err := writeJSON(rec, http.StatusOK, map[string]float64{"bad": math.NaN()})
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, errors.ErrCodeInternal, body.Error.Code)
	assert.Equal(t, "internal error", body.Error.Message)
}

func TestNotFoundRoute(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/v2/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", string(decodeError(t, rec).Error.Code))
}

func TestDefaultsFromConfig(t *testing.T) {
	s := New(Config{
		Runner:   pipeline.NewRunner(nil, nil, nil),
		Defaults: pipeline.Options{Algorithm: pipeline.AlgorithmDFS, Title: "Steps"},
	})
	rec := do(t, s, http.MethodPost, "/v1/render", chain)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	// title page, initial drawing, five visits and the completed page
	assert.Equal(t, "8", rec.Header().Get(HeaderPages))

	rec = do(t, s, http.MethodPost, "/v1/render?algorithm=none&title=", chain)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "1", rec.Header().Get(HeaderPages))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor(assert.AnError))
	assert.Equal(t, http.StatusNotFound, StatusFor(errNotFound("/x")))
}
