package nodelink

import (
	"bytes"
	"context"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
	"github.com/matzehuels/stepdoc/pkg/graph"
)

// pointsPerUnit converts Graphviz points to graph units at the default scale.
const pointsPerUnit = graph.DefaultScale

var (
	nodeStmtRe = regexp.MustCompile(`(?m)^\s*(n[0-9]+)\s*\[([^\]]*)\]`)
	posAttrRe  = regexp.MustCompile(`pos="(-?[0-9.eE+-]+),(-?[0-9.eE+-]+)!?"`)
)

// Layout positions every node of g with the Graphviz engine named in opts.
// Arc control points are left alone. Names and the Pinned option are
// ignored: the layout always starts from scratch.
func Layout(ctx context.Context, g *graph.Graph, opts Options) error {
	if err := ValidateEngine(opts.engine()); err != nil {
		return err
	}
	opts.Names, opts.Pinned = false, false

	var buf bytes.Buffer
	if err := render(ctx, ToDOT(g, opts), opts.engine(), graphviz.XDOT, &buf); err != nil {
		return err
	}
	pos, err := parsePositions(buf.Bytes(), g.Len())
	if err != nil {
		return err
	}
	for i, p := range pos {
		if err := g.SetPosition(i, p); err != nil {
			return err
		}
	}
	return nil
}

// parsePositions extracts node positions from laid out DOT, in graph units.
func parsePositions(dot []byte, n int) ([]geom.Point, error) {
	pos := make([]geom.Point, n)
	seen := make([]bool, n)
	for _, m := range nodeStmtRe.FindAllSubmatch(dot, -1) {
		i, err := strconv.Atoi(string(m[1][1:]))
		if err != nil || i < 1 || i > n {
			continue
		}
		pm := posAttrRe.FindSubmatch(m[2])
		if pm == nil {
			continue
		}
		x, errX := strconv.ParseFloat(string(pm[1]), 64)
		y, errY := strconv.ParseFloat(string(pm[2]), 64)
		if errX != nil || errY != nil {
			return nil, errors.New(errors.ErrCodeInternal, "graphviz position %q for node %d", pm[0], i)
		}
		pos[i-1] = geom.Pt(x/pointsPerUnit, y/pointsPerUnit)
		seen[i-1] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "graphviz returned no position for node %d", i+1)
		}
	}
	return pos, nil
}
