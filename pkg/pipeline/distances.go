package pipeline

import (
	"math"
	"strconv"

	"github.com/matzehuels/stepdoc/pkg/graph"
)

// DistanceTable is the JSON form of a shortest path distance table, shared
// by the CLI and the API.
type DistanceTable struct {
	Start     int        `json:"start"`     // 1-based
	Nodes     []string   `json:"nodes"`     // node names, or the 1-based index for unnamed nodes
	Distances []*float64 `json:"distances"` // null when unreachable
}

// NewDistanceTable pairs the distances of g's nodes from the 1-based start
// node with their labels.
func NewDistanceTable(g *graph.Graph, start int, dist []float64) DistanceTable {
	t := DistanceTable{
		Start:     start,
		Nodes:     make([]string, len(dist)),
		Distances: make([]*float64, len(dist)),
	}
	for i, d := range dist {
		t.Nodes[i] = g.Node(i).Name
		if t.Nodes[i] == "" {
			t.Nodes[i] = strconv.Itoa(i + 1)
		}
		if !math.IsInf(d, 1) {
			t.Distances[i] = &d
		}
	}
	return t
}
