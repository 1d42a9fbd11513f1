package traverse

import (
	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
)

// BreadthFirst traverses g from start in breadth-first order and returns the
// spanning tree of the reached nodes.
//
// The start node is visited first, as Active. When a node leaves the queue
// it becomes Finished, and each of its undiscovered neighbors becomes
// Active, gains a tree arc to it and is visited. A final page titled
// "Completed breadth-first traversal" shows the graph over the tree.
func BreadthFirst(g *graph.Graph, start int, opts ...Option) (*graph.Graph, error) {
	if err := errors.ValidateNodeIndex(start, g.Len()); err != nil {
		return nil, err
	}
	c := newConfig("Breadth-first traversal", opts)
	g.SetAllNodeStates(graph.NoState)
	tree := g.NodeSubgraph()

	discovered := make([]bool, g.Len())
	discovered[start] = true
	_ = g.SetNodeState(start, graph.Active)
	seq := 0
	if err := c.visit(Step{Seq: seq, Node: start, Parent: -1}, tree); err != nil {
		return tree, err
	}

	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		_ = g.SetNodeState(u, graph.Finished)
		for _, k := range g.Neighbors(u) {
			if discovered[k] {
				continue
			}
			discovered[k] = true
			_ = g.SetNodeState(k, graph.Active)
			_, _ = tree.AddArc(k, u)
			queue = append(queue, k)
			seq++
			if err := c.visit(Step{Seq: seq, Node: k, Parent: u}, tree); err != nil {
				return tree, err
			}
		}
	}
	return tree, c.draw("Completed breadth-first traversal", tree)
}
