package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

func TestAddAndRemoveArcs(t *testing.T) {
	g := New(3)

	existed, err := g.AddArc(0, 1)
	if err != nil || existed {
		t.Fatalf("AddArc(0,1) = %v, %v; want false, nil", existed, err)
	}
	existed, err = g.AddWeightedArc(0, 1, 5)
	if err != nil || !existed {
		t.Fatalf("AddWeightedArc(0,1,5) = %v, %v; want true, nil", existed, err)
	}
	if w := g.ArcWeight(0, 1); w != 5 {
		t.Errorf("ArcWeight(0,1) = %v, want 5", w)
	}
	if g.Adjacent(1, 0) {
		t.Error("arcs are stored in one direction only")
	}

	existed, err = g.RemoveArc(0, 1)
	if err != nil || !existed {
		t.Fatalf("RemoveArc(0,1) = %v, %v; want true, nil", existed, err)
	}
	existed, _ = g.RemoveArc(0, 1)
	if existed {
		t.Error("second RemoveArc reported an existing arc")
	}
}

func TestBadIndices(t *testing.T) {
	g := New(2)
	tests := []struct {
		name string
		call func() error
	}{
		{"AddArc", func() error { _, err := g.AddArc(0, 2); return err }},
		{"RemoveArc", func() error { _, err := g.RemoveArc(-1, 0); return err }},
		{"SetArcWeight", func() error { return g.SetArcWeight(5, 0, 1) }},
		{"RemoveOutgoingArcs", func() error { return g.RemoveOutgoingArcs(2) }},
		{"RemoveIncomingArcs", func() error { return g.RemoveIncomingArcs(-3) }},
		{"SetNodeState", func() error { return g.SetNodeState(2, Active) }},
		{"FlagNode", func() error { return g.FlagNode(2, Highlight) }},
		{"SetNodeValue", func() error { return g.SetNodeValue(9, 1) }},
		{"SetPosition", func() error { return g.SetPosition(2, geom.Point{}) }},
		{"SetArcPoint", func() error { return g.SetArcPoint(0, 2, geom.Point{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, errors.ErrCodeIndexRange) {
				t.Errorf("got %v, want %s", err, errors.ErrCodeIndexRange)
			}
		})
	}

	// Queries never fail.
	if g.Adjacent(0, 7) || g.ArcWeight(-1, 0) != 0 || g.Neighbors(4) != nil {
		t.Error("out of range queries should return zero values")
	}
	if diff := cmp.Diff(Node{}, g.Node(2)); diff != "" {
		t.Errorf("Node(2) mismatch (-want +got):\n%s", diff)
	}
}

func TestWeightValidation(t *testing.T) {
	g := New(2)
	for _, w := range []float64{0, -1} {
		if err := g.SetArcWeight(0, 1, w); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("SetArcWeight(%v) = %v, want INVALID_INPUT", w, err)
		}
		if _, err := g.AddWeightedArc(0, 1, w); err == nil {
			t.Errorf("AddWeightedArc(%v) succeeded", w)
		}
	}
	if g.Adjacent(0, 1) {
		t.Error("rejected weight created an arc")
	}
	if err := g.SetScale(0); err == nil {
		t.Error("SetScale(0) succeeded")
	}
}

func TestBulkArcOperations(t *testing.T) {
	g := New(3)
	for _, a := range []Arc{{0, 1}, {0, 2}, {1, 2}, {2, 0}} {
		if _, err := g.AddWeightedArc(a.From, a.To, 3); err != nil {
			t.Fatal(err)
		}
	}
	g.SetWeighted(true)

	if diff := cmp.Diff([]int{1, 2}, g.Neighbors(0)); diff != "" {
		t.Errorf("Neighbors(0) mismatch (-want +got):\n%s", diff)
	}

	if err := g.RemoveIncomingArcs(2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Arc{{0, 1}, {2, 0}}, g.Arcs()); diff != "" {
		t.Errorf("after RemoveIncomingArcs (-want +got):\n%s", diff)
	}

	if err := g.RemoveOutgoingArcs(2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Arc{{0, 1}}, g.Arcs()); diff != "" {
		t.Errorf("after RemoveOutgoingArcs (-want +got):\n%s", diff)
	}

	g.UnweightArcs()
	if g.Weighted() || g.ArcWeight(0, 1) != 1 {
		t.Errorf("UnweightArcs left weighted=%v weight=%v", g.Weighted(), g.ArcWeight(0, 1))
	}

	g.RemoveAllArcs()
	if len(g.Arcs()) != 0 {
		t.Errorf("RemoveAllArcs left %v", g.Arcs())
	}
}

func TestNodeStateAndFlags(t *testing.T) {
	g := New(3)
	g.SetAllNodeStates(Visited)
	_ = g.SetNodeState(1, Active)
	_ = g.FlagNode(1, Highlight)
	_ = g.SetNodeValue(2, 2.5)

	want := []Node{
		{State: Visited},
		{State: Active, Flags: Highlight},
		{State: Visited, Value: 2.5},
	}
	if diff := cmp.Diff(want, g.Nodes()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}

	_ = g.UnflagNode(1, Highlight)
	g.SetAllNodeValues(0)
	g.SetAllNodeFlags(0)
	if n := g.Node(1); n.Flags != 0 || n.State != Active {
		t.Errorf("Node(1) = %+v", n)
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := New(2)
	_, _ = g.AddArc(0, 1)
	_ = g.SetArcPoint(0, 1, geom.Pt(1, 1))
	_ = g.SetName(0, "a")

	c := g.Clone()
	if diff := cmp.Diff(g, c, cmp.AllowUnexported(Graph{})); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	_, _ = c.RemoveArc(0, 1)
	c.ClearArcPoint(0, 1)
	_ = c.SetName(0, "b")
	if !g.Adjacent(0, 1) || g.Node(0).Name != "a" {
		t.Error("mutating the clone changed the original")
	}
	if _, ok := g.ArcPoint(0, 1); !ok {
		t.Error("clearing the clone's arc point changed the original")
	}
}

func TestNodeSubgraph(t *testing.T) {
	g := New(3)
	_, _ = g.AddWeightedArc(0, 1, 2)
	_ = g.SetArcPoint(0, 1, geom.Pt(0.5, 1))
	g.SetWeighted(true)
	_ = g.SetNodeState(2, Finished)

	s := g.NodeSubgraph()
	if len(s.Arcs()) != 0 || s.Weighted() {
		t.Errorf("subgraph has arcs %v weighted=%v", s.Arcs(), s.Weighted())
	}
	if s.Node(2).State != Finished {
		t.Error("subgraph lost node state")
	}
	if _, ok := s.ArcPoint(0, 1); !ok {
		t.Error("subgraph should keep control points for arcs added later")
	}
}

func TestStateString(t *testing.T) {
	for _, s := range []State{NoState, Active, Visited, Finished} {
		got, ok := ParseState(s.String())
		if !ok || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseState("bogus"); ok {
		t.Error("ParseState accepted an unknown name")
	}
	if got := State(9).String(); got != "State(9)" {
		t.Errorf("State(9).String() = %q", got)
	}
}
