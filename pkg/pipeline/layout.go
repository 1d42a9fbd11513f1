package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/observability"
	"github.com/matzehuels/stepdoc/pkg/render/nodelink"
)

// Layout positions the nodes of g with Graphviz unless the source already
// gave positions. It reports whether a layout was computed.
func Layout(ctx context.Context, g *graph.Graph, opts Options) (bool, error) {
	if g.HasPositions() {
		return false, nil
	}
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Engine, g.Len())
	start := time.Now()

	err := nodelink.Layout(ctx, g, nodelink.Options{Engine: opts.Engine})
	hooks.OnLayoutComplete(ctx, opts.Engine, time.Since(start), err)
	if err != nil {
		return false, err
	}
	opts.Logger.Debug("computed layout", "engine", opts.Engine, "nodes", g.Len())
	return true, nil
}
