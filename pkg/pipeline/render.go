package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/fonts"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/observability"
	"github.com/matzehuels/stepdoc/pkg/pdf"
	"github.com/matzehuels/stepdoc/pkg/scene"
	"github.com/matzehuels/stepdoc/pkg/traverse"
)

// Title page font and size.
var (
	TitleFont  = fonts.HelveticaBold
	TitleScale = 24.0
)

// Rendered is the output of Render.
type Rendered struct {
	PDF       []byte
	Pages     int
	Distances []float64
}

// Render draws g, runs the selected algorithm through a scene bridge and
// finishes the document. g must be positioned. Node states, values and
// flags of g are changed by the traversal.
func Render(ctx context.Context, g *graph.Graph, opts Options) (*Rendered, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Algorithm)
	start := time.Now()

	out, err := render(ctx, g, opts)
	pages := 0
	if out != nil {
		pages = out.Pages
	}
	hooks.OnRenderComplete(ctx, opts.Algorithm, pages, time.Since(start), err)
	return out, err
}

func render(ctx context.Context, g *graph.Graph, opts Options) (*Rendered, error) {
	hooks := observability.Pipeline()
	doc := pdf.New(
		pdf.WithPageSize(opts.PageWidth, opts.PageHeight),
		pdf.WithMaxPages(opts.MaxPages),
		pdf.WithLogger(opts.Logger),
		pdf.WithOnPage(func(i int, annotation string) { hooks.OnPage(ctx, i, annotation) }),
	)
	if opts.Title != "" {
		doc.TitlePage(opts.Title, opts.Subtitle, opts.Author, TitleFont, TitleScale)
	}

	flags := opts.DisplayFlags()
	if opts.Algorithm == AlgorithmDijkstra {
		flags |= scene.ShowNodeValues
	}
	bridge := scene.NewBridge(scene.New(doc, g, scene.WithDisplayFlags(flags)))

	var dist []float64
	if err := run(ctx, g, bridge, opts, &dist); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Finish(&buf); err != nil {
		return nil, err
	}
	return &Rendered{PDF: buf.Bytes(), Pages: doc.PageCount(), Distances: dist}, nil
}

func run(ctx context.Context, g *graph.Graph, bridge *scene.Bridge, opts Options, dist *[]float64) error {
	start := opts.Start - 1
	topts := []traverse.Option{traverse.WithContext(ctx), traverse.WithVisitor(bridge)}

	var err error
	switch opts.Algorithm {
	case AlgorithmNone:
		return bridge.Draw(opts.Title, nil)
	case AlgorithmBFS:
		_, err = traverse.BreadthFirst(g, start, topts...)
	case AlgorithmDFS:
		_, err = traverse.DepthFirst(g, start, topts...)
	case AlgorithmDijkstra:
		if _, err = traverse.ShortestPaths(g, start, topts...); err == nil {
			*dist = nodeValues(g)
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "algorithm %q", opts.Algorithm)
	}
	return err
}

func nodeValues(g *graph.Graph) []float64 {
	v := make([]float64, g.Len())
	for i, n := range g.Nodes() {
		v[i] = n.Value
	}
	return v
}
