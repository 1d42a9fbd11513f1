package graph

import (
	"maps"
	"slices"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

// Graph is a fixed-size graph stored as a weighted adjacency matrix.
//
// A weight of zero means there is no arc. Every arc is stored in one
// direction only; an undirected graph differs from a directed one solely in
// how it is drawn. Arc control points are kept separately from the matrix,
// so removing an arc and adding it back restores its curve.
//
// Graph is not safe for concurrent use.
type Graph struct {
	nodes      []Node
	adj        [][]float64
	points     map[Arc]geom.Point
	weighted   bool
	directed   bool
	scale      float64
	positioned bool
}

// New returns a directed, unweighted graph with n unnamed nodes and no arcs.
func New(n int) *Graph {
	adj := make([][]float64, n)
	for i := range adj {
		adj[i] = make([]float64, n)
	}
	return &Graph{
		nodes:    make([]Node, n),
		adj:      adj,
		points:   make(map[Arc]geom.Point),
		directed: true,
		scale:    DefaultScale,
	}
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := *g
	c.nodes = slices.Clone(g.nodes)
	c.adj = make([][]float64, len(g.adj))
	for i, row := range g.adj {
		c.adj[i] = slices.Clone(row)
	}
	c.points = maps.Clone(g.points)
	return &c
}

// NodeSubgraph returns a copy of g with every arc removed and the weighted
// flag cleared. Traversals grow their spanning trees in it.
func (g *Graph) NodeSubgraph() *Graph {
	c := g.Clone()
	c.RemoveAllArcs()
	c.weighted = false
	return c
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Weighted reports whether arc weights are meaningful and should be drawn.
func (g *Graph) Weighted() bool { return g.weighted }

// SetWeighted sets the weighted flag without touching the stored weights.
func (g *Graph) SetWeighted(w bool) { g.weighted = w }

// Directed reports whether arcs are drawn with arrowheads.
func (g *Graph) Directed() bool { return g.directed }

// SetDirected sets the directed flag.
func (g *Graph) SetDirected(d bool) { g.directed = d }

// Scale returns the number of points per graph unit.
func (g *Graph) Scale() float64 { return g.scale }

// SetScale sets the number of points per graph unit.
func (g *Graph) SetScale(s float64) error {
	if s <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive: %g", s)
	}
	g.scale = s
	return nil
}

// HasPositions reports whether any node position was set explicitly.
// Graphs without positions are laid out automatically before drawing.
func (g *Graph) HasPositions() bool { return g.positioned }

func (g *Graph) valid(i int) bool { return i >= 0 && i < len(g.nodes) }

func (g *Graph) check(i int) error {
	return errors.ValidateNodeIndex(i, len(g.nodes))
}

func (g *Graph) checkArc(i, j int) error {
	if err := g.check(i); err != nil {
		return err
	}
	return g.check(j)
}

// =============================================================================
// Arcs
// =============================================================================

// Adjacent reports whether there is an arc from i to j.
func (g *Graph) Adjacent(i, j int) bool {
	return g.valid(i) && g.valid(j) && g.adj[i][j] > 0
}

// ArcWeight returns the stored weight of the arc from i to j, or 0 if there
// is none. The result does not depend on the weighted flag.
func (g *Graph) ArcWeight(i, j int) float64 {
	if !g.valid(i) || !g.valid(j) {
		return 0
	}
	return g.adj[i][j]
}

// SetArcWeight sets the weight of the arc from i to j, creating the arc if
// needed. The weight must be positive.
func (g *Graph) SetArcWeight(i, j int, w float64) error {
	if err := g.checkArc(i, j); err != nil {
		return err
	}
	if w <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "arc weight must be positive: %g", w)
	}
	g.adj[i][j] = w
	return nil
}

// SetAllArcWeights sets the weight of every existing arc to w.
func (g *Graph) SetAllArcWeights(w float64) error {
	if w <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "arc weight must be positive: %g", w)
	}
	for _, row := range g.adj {
		for j, v := range row {
			if v > 0 {
				row[j] = w
			}
		}
	}
	return nil
}

// UnweightArcs sets every arc weight to 1 and clears the weighted flag.
func (g *Graph) UnweightArcs() {
	_ = g.SetAllArcWeights(1)
	g.weighted = false
}

// AddArc adds an arc of weight 1 from i to j and reports whether the arc
// already existed. An existing arc's weight is reset to 1.
func (g *Graph) AddArc(i, j int) (bool, error) {
	return g.AddWeightedArc(i, j, 1)
}

// AddWeightedArc adds an arc of weight w from i to j and reports whether the
// arc already existed.
func (g *Graph) AddWeightedArc(i, j int, w float64) (bool, error) {
	existed := g.Adjacent(i, j)
	if err := g.SetArcWeight(i, j, w); err != nil {
		return false, err
	}
	return existed, nil
}

// RemoveArc removes the arc from i to j and reports whether it existed.
func (g *Graph) RemoveArc(i, j int) (bool, error) {
	if err := g.checkArc(i, j); err != nil {
		return false, err
	}
	existed := g.adj[i][j] > 0
	g.adj[i][j] = 0
	return existed, nil
}

// RemoveOutgoingArcs removes every arc that starts at i.
func (g *Graph) RemoveOutgoingArcs(i int) error {
	if err := g.check(i); err != nil {
		return err
	}
	clear(g.adj[i])
	return nil
}

// RemoveIncomingArcs removes every arc that ends at j.
func (g *Graph) RemoveIncomingArcs(j int) error {
	if err := g.check(j); err != nil {
		return err
	}
	for _, row := range g.adj {
		row[j] = 0
	}
	return nil
}

// RemoveAllArcs removes every arc. Control points are kept.
func (g *Graph) RemoveAllArcs() {
	for _, row := range g.adj {
		clear(row)
	}
}

// Neighbors returns the heads of the arcs leaving i in ascending order.
func (g *Graph) Neighbors(i int) []int {
	if !g.valid(i) {
		return nil
	}
	var out []int
	for j, w := range g.adj[i] {
		if w > 0 {
			out = append(out, j)
		}
	}
	return out
}

// Arcs returns every arc in row-major order.
func (g *Graph) Arcs() []Arc {
	var out []Arc
	for i, row := range g.adj {
		for j, w := range row {
			if w > 0 {
				out = append(out, Arc{i, j})
			}
		}
	}
	return out
}

// ArcPoint returns the control point of the arc from i to j, if one is set.
func (g *Graph) ArcPoint(i, j int) (geom.Point, bool) {
	p, ok := g.points[Arc{i, j}]
	return p, ok
}

// SetArcPoint sets the control point the arc from i to j is drawn through.
func (g *Graph) SetArcPoint(i, j int, p geom.Point) error {
	if err := g.checkArc(i, j); err != nil {
		return err
	}
	g.points[Arc{i, j}] = p
	return nil
}

// ClearArcPoint makes the arc from i to j straight again.
func (g *Graph) ClearArcPoint(i, j int) {
	delete(g.points, Arc{i, j})
}

// ArcPoints returns all control points keyed by arc.
func (g *Graph) ArcPoints() map[Arc]geom.Point {
	return maps.Clone(g.points)
}

// =============================================================================
// Nodes
// =============================================================================

// Node returns a copy of node i, or the zero Node if i is out of range.
func (g *Graph) Node(i int) Node {
	if !g.valid(i) {
		return Node{}
	}
	return g.nodes[i]
}

// Nodes returns a copy of all nodes.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// SetName sets the display name of node i.
func (g *Graph) SetName(i int, name string) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.nodes[i].Name = name
	return nil
}

// SetPosition places node i at p, in graph units.
func (g *Graph) SetPosition(i int, p geom.Point) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.nodes[i].Pos = p
	g.positioned = true
	return nil
}

// SetNodeState sets the traversal state of node i.
func (g *Graph) SetNodeState(i int, s State) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.nodes[i].State = s
	return nil
}

// SetAllNodeStates sets the state of every node.
func (g *Graph) SetAllNodeStates(s State) {
	for i := range g.nodes {
		g.nodes[i].State = s
	}
}

// SetNodeFlags replaces the flags of node i.
func (g *Graph) SetNodeFlags(i int, f Flags) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.nodes[i].Flags = f
	return nil
}

// FlagNode sets the bits of f on node i.
func (g *Graph) FlagNode(i int, f Flags) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.nodes[i].Flags |= f
	return nil
}

// UnflagNode clears the bits of f on node i.
func (g *Graph) UnflagNode(i int, f Flags) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.nodes[i].Flags &^= f
	return nil
}

// SetAllNodeFlags replaces the flags of every node.
func (g *Graph) SetAllNodeFlags(f Flags) {
	for i := range g.nodes {
		g.nodes[i].Flags = f
	}
}

// SetNodeValue sets the value of node i. Any value is allowed.
func (g *Graph) SetNodeValue(i int, v float64) error {
	if err := g.check(i); err != nil {
		return err
	}
	g.nodes[i].Value = v
	return nil
}

// SetAllNodeValues sets the value of every node.
func (g *Graph) SetAllNodeValues(v float64) {
	for i := range g.nodes {
		g.nodes[i].Value = v
	}
}
