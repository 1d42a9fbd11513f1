package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
	"github.com/matzehuels/stepdoc/pkg/graph"
)

func sample(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(3)
	for i, name := range []string{"A", "B", "C"} {
		if err := g.SetName(i, name); err != nil {
			t.Fatal(err)
		}
		if err := g.SetPosition(i, geom.Pt(float64(i), float64(i%2))); err != nil {
			t.Fatal(err)
		}
	}
	_, _ = g.AddWeightedArc(0, 1, 4)
	_, _ = g.AddWeightedArc(1, 2, 0.5)
	_ = g.SetArcPoint(1, 2, geom.Pt(1.5, 1))
	_ = g.SetNodeValue(2, -1)
	g.SetWeighted(true)
	return g
}

func TestRoundTrip(t *testing.T) {
	g := sample(t)

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if diff := cmp.Diff(g.Text(false, ""), back.Text(false, "")); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileRoundTrip(t *testing.T) {
	g := sample(t)
	path := filepath.Join(t.TempDir(), "g.json")
	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if diff := cmp.Diff(graph.ToWire(g), graph.ToWire(back)); diff != "" {
		t.Errorf("file round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"Malformed", `{"nodes": [`, errors.ErrCodeInvalidFormat},
		{"UnknownField", `{"nodes": [{"id": "a"}], "arcs": []}`, errors.ErrCodeInvalidFormat},
		{"NoNodes", `{"nodes": [], "arcs": []}`, errors.ErrCodeInvalidGraph},
		{"BadArc", `{"nodes": [{}], "arcs": [{"from": 1, "to": 3}]}`, errors.ErrCodeIndexRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.code) {
				t.Errorf("ReadJSON() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("ImportJSON() = %v, want NOT_FOUND", err)
	}
	if _, err := ImportJSON(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("ImportJSON(\"\") = %v, want INVALID_PATH", err)
	}
}
