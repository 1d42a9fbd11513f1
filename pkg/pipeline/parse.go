package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/stepdoc/pkg/graph"
	stepio "github.com/matzehuels/stepdoc/pkg/io"
	"github.com/matzehuels/stepdoc/pkg/observability"
)

// Parse reads source in the input format selected by opts. Options must
// have defaults set.
func Parse(ctx context.Context, source []byte, opts Options) (*graph.Graph, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, opts.InputFormat)
	start := time.Now()

	var (
		g   *graph.Graph
		err error
	)
	switch opts.InputFormat {
	case FormatJSON:
		g, err = stepio.ReadJSON(bytes.NewReader(source))
	default:
		g, err = graph.ReadBytes(source, opts.SourceName)
	}

	var n int
	if g != nil {
		n = g.Len()
	}
	hooks.OnParseComplete(ctx, opts.InputFormat, n, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if opts.Scale > 0 {
		if err := g.SetScale(opts.Scale); err != nil {
			return nil, err
		}
	}
	return g, nil
}
