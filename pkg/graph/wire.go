package graph

import (
	"math"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

// Wire is the JSON and BSON form of a [Graph].
//
// Node references in arcs are 1-based, matching the text format:
//
//	{
//	  "directed": true,
//	  "nodes": [{"name": "A", "pos": [0, 0]}, {"name": "B", "pos": [1, 0]}],
//	  "arcs": [{"from": 1, "to": 2, "weight": 3}]
//	}
type Wire struct {
	Directed bool       `json:"directed" bson:"directed"`
	Weighted bool       `json:"weighted,omitempty" bson:"weighted,omitempty"`
	Scale    float64    `json:"scale,omitempty" bson:"scale,omitempty"` // Points per unit (defaults to 72)
	Nodes    []WireNode `json:"nodes" bson:"nodes"`
	Arcs     []WireArc  `json:"arcs" bson:"arcs"`
}

// WireNode is one node of a [Wire] graph. Pos is omitted for graphs that
// have not been laid out. A value of +Inf, such as the distance of a node
// Dijkstra never reached, is sent as Infinite with Value left out, since
// JSON has no infinity.
type WireNode struct {
	Name     string      `json:"name,omitempty" bson:"name,omitempty"`
	Value    float64     `json:"value,omitempty" bson:"value,omitempty"`
	Infinite bool        `json:"infinite,omitempty" bson:"infinite,omitempty"`
	State    string      `json:"state,omitempty" bson:"state,omitempty"`
	Pos      *[2]float64 `json:"pos,omitempty" bson:"pos,omitempty"`
}

// WireArc is one arc of a [Wire] graph. A zero weight means 1.
type WireArc struct {
	From   int         `json:"from" bson:"from"`
	To     int         `json:"to" bson:"to"`
	Weight float64     `json:"weight,omitempty" bson:"weight,omitempty"`
	Point  *[2]float64 `json:"point,omitempty" bson:"point,omitempty"`
}

// ToWire converts g to its wire form.
func ToWire(g *Graph) Wire {
	w := Wire{
		Directed: g.directed,
		Weighted: g.weighted,
		Nodes:    make([]WireNode, len(g.nodes)),
		Arcs:     []WireArc{},
	}
	if g.scale != DefaultScale {
		w.Scale = g.scale
	}
	for i, n := range g.nodes {
		wn := WireNode{Name: n.Name}
		switch {
		case math.IsInf(n.Value, 1):
			wn.Infinite = true
		case !math.IsNaN(n.Value) && !math.IsInf(n.Value, -1):
			wn.Value = n.Value
		}
		if n.State != NoState {
			wn.State = n.State.String()
		}
		if g.positioned {
			wn.Pos = pair(n.Pos)
		}
		w.Nodes[i] = wn
	}
	for _, a := range g.Arcs() {
		wa := WireArc{From: a.From + 1, To: a.To + 1}
		if wt := g.adj[a.From][a.To]; wt != 1 || g.weighted {
			wa.Weight = wt
		}
		if p, ok := g.points[a]; ok {
			wa.Point = pair(p)
		}
		w.Arcs = append(w.Arcs, wa)
	}
	return w
}

// FromWire validates w and converts it to a Graph.
func FromWire(w Wire) (*Graph, error) {
	n := len(w.Nodes)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "graph has no nodes")
	}
	if n > MaxNodes {
		return nil, errors.New(errors.ErrCodeInvalidGraph, "too many nodes: %d (max %d)", n, MaxNodes)
	}

	g := New(n)
	g.directed = w.Directed
	g.weighted = w.Weighted
	if w.Scale != 0 {
		if err := g.SetScale(w.Scale); err != nil {
			return nil, err
		}
	}
	for i, wn := range w.Nodes {
		g.nodes[i].Name = wn.Name
		g.nodes[i].Value = wn.Value
		if wn.Infinite {
			g.nodes[i].Value = math.Inf(1)
		}
		if wn.State != "" {
			s, ok := ParseState(wn.State)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidGraph, "node %d: unknown state %q", i+1, wn.State)
			}
			g.nodes[i].State = s
		}
		if wn.Pos != nil {
			g.nodes[i].Pos = geom.Pt(wn.Pos[0], wn.Pos[1])
			g.positioned = true
		}
	}
	for k, wa := range w.Arcs {
		i, j := wa.From-1, wa.To-1
		if err := g.checkArc(i, j); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIndexRange, err, "arc %d", k+1)
		}
		weight := wa.Weight
		if weight == 0 {
			weight = 1
		}
		if err := g.SetArcWeight(i, j, weight); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "arc %d", k+1)
		}
		if wa.Point != nil {
			g.points[Arc{i, j}] = geom.Pt(wa.Point[0], wa.Point[1])
		}
	}
	return g, nil
}

func pair(p geom.Point) *[2]float64 {
	return &[2]float64{p.X, p.Y}
}
