package graph

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stepdoc/pkg/geom"
)

// State is the traversal state of a node. The renderer fills nodes by state.
type State int

const (
	NoState State = iota
	Active
	Visited
	Finished
)

var stateNames = [...]string{"none", "active", "visited", "finished"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// ParseState is the inverse of State.String.
func ParseState(s string) (State, bool) {
	for i, name := range stateNames {
		if strings.EqualFold(s, name) {
			return State(i), true
		}
	}
	return NoState, false
}

// Flags is a bit set of per-node display markers.
type Flags uint

const (
	// Highlight draws a halo behind the node.
	Highlight Flags = 1 << iota
)

// DefaultScale is the number of points per graph unit.
const DefaultScale = 72.0

// Node is the display record of one node.
type Node struct {
	Name  string
	State State
	Value float64
	Flags Flags
	Pos   geom.Point
}

// Arc identifies a directed arc by zero-based node indices.
type Arc struct {
	From, To int
}

func (a Arc) String() string {
	return fmt.Sprintf("%d->%d", a.From+1, a.To+1)
}
