package traverse

import (
	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
)

// DepthFirst traverses g from start in depth-first order and returns the
// spanning tree of the reached nodes.
//
// A first page titled "Running depth-first traversal" shows the untouched
// graph. Nodes are Active from the moment they are entered until all their
// descendants are done, then Finished. Neighbors are tried in index order.
func DepthFirst(g *graph.Graph, start int, opts ...Option) (*graph.Graph, error) {
	if err := errors.ValidateNodeIndex(start, g.Len()); err != nil {
		return nil, err
	}
	c := newConfig("Depth-first traversal", opts)
	g.SetAllNodeStates(graph.NoState)
	tree := g.NodeSubgraph()

	if err := c.draw("Running depth-first traversal", nil); err != nil {
		return tree, err
	}
	d := &dfs{c: c, g: g, tree: tree, entered: make([]bool, g.Len())}
	if err := d.enter(start, -1); err != nil {
		return tree, err
	}
	return tree, c.draw("Completed depth-first traversal", tree)
}

type dfs struct {
	c       *config
	g       *graph.Graph
	tree    *graph.Graph
	entered []bool
	seq     int
}

func (d *dfs) enter(u, parent int) error {
	d.entered[u] = true
	_ = d.g.SetNodeState(u, graph.Active)
	if parent >= 0 {
		_, _ = d.tree.AddArc(u, parent)
	}
	if err := d.c.visit(Step{Seq: d.seq, Node: u, Parent: parent}, d.tree); err != nil {
		return err
	}
	d.seq++
	for _, k := range d.g.Neighbors(u) {
		if d.entered[k] {
			continue
		}
		if err := d.enter(k, u); err != nil {
			return err
		}
	}
	_ = d.g.SetNodeState(u, graph.Finished)
	return nil
}
