package traverse

import (
	"math"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
)

// ShortestPaths runs Dijkstra's algorithm from source over the stored arc
// weights and returns the shortest path tree. Every node's value is set to
// its distance from source, +Inf when it is unreachable, so that the pages
// can show distances with scene.ShowNodeValues.
//
// The node being settled is Active on its page and Finished afterwards.
// Nodes reached but not yet settled are Visited. When a node's distance
// improves its tree arc is replaced by one to the settling node. Ties go to
// the lowest index, and the run stops once every remaining node is
// unreachable.
func ShortestPaths(g *graph.Graph, source int, opts ...Option) (*graph.Graph, error) {
	if err := errors.ValidateNodeIndex(source, g.Len()); err != nil {
		return nil, err
	}
	c := newConfig("Shortest paths", opts)
	tree := g.NodeSubgraph()
	_, err := dijkstra(g, source, func(u, parent int, dist []float64, seq int) error {
		return c.visit(Step{Seq: seq, Node: u, Parent: parent, Distance: dist[u]}, tree)
	}, tree)
	if err != nil {
		return tree, err
	}
	return tree, c.draw("Completed shortest paths", tree)
}

// Distances returns the shortest path distance from source to every node,
// +Inf for unreachable ones. It updates node states and values like
// ShortestPaths but draws nothing.
func Distances(g *graph.Graph, source int) ([]float64, error) {
	if err := errors.ValidateNodeIndex(source, g.Len()); err != nil {
		return nil, err
	}
	return dijkstra(g, source, nil, nil)
}

// dijkstra settles nodes in order of distance, calling settle for each one
// before relaxing its arcs. tree, when not nil, receives the path arcs.
func dijkstra(g *graph.Graph, source int, settle func(u, parent int, dist []float64, seq int) error, tree *graph.Graph) ([]float64, error) {
	n := g.Len()
	dist := make([]float64, n)
	parent := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}
	dist[source] = 0
	g.SetAllNodeStates(graph.NoState)
	g.SetAllNodeValues(math.Inf(1))
	_ = g.SetNodeValue(source, 0)

	for seq := range n {
		u := -1
		for v := range n {
			if !done[v] && !math.IsInf(dist[v], 1) && (u < 0 || dist[v] < dist[u]) {
				u = v
			}
		}
		if u < 0 {
			break
		}

		_ = g.SetNodeState(u, graph.Active)
		if settle != nil {
			if err := settle(u, parent[u], dist, seq); err != nil {
				return dist, err
			}
		}
		done[u] = true
		_ = g.SetNodeState(u, graph.Finished)

		for _, v := range g.Neighbors(u) {
			if done[v] {
				continue
			}
			if d := dist[u] + g.ArcWeight(u, v); d < dist[v] {
				dist[v] = d
				parent[v] = u
				_ = g.SetNodeValue(v, d)
				_ = g.SetNodeState(v, graph.Visited)
				if tree != nil {
					_ = tree.RemoveOutgoingArcs(v)
					_, _ = tree.AddArc(v, u)
				}
			}
		}
	}
	return dist, nil
}
