package traverse

import (
	"context"

	"github.com/matzehuels/stepdoc/pkg/graph"
)

// Visitor receives traversal steps. *scene.Bridge implements it.
type Visitor interface {
	// VisitNode records the visit of node i with the tree found so far.
	VisitNode(i int, annotation string, beneath *graph.Graph) error
	// Draw records the whole graph without a highlighted node.
	Draw(annotation string, beneath *graph.Graph) error
}

// Step describes one visited node.
type Step struct {
	Seq      int     // 0-based visit number
	Node     int     // visited node
	Parent   int     // tree parent, or -1 for the start node
	Distance float64 // shortest path distance; 0 for other traversals
}

// Option configures a traversal.
type Option func(*config)

type config struct {
	ctx        context.Context
	visitor    Visitor
	onVisit    func(Step)
	annotation string
}

// WithContext makes the traversal stop with ctx.Err() once ctx is done.
// It is checked before every step.
func WithContext(ctx context.Context) Option {
	return func(c *config) { c.ctx = ctx }
}

// WithVisitor sets the visitor that draws each step.
func WithVisitor(v Visitor) Option {
	return func(c *config) { c.visitor = v }
}

// WithOnVisit registers fn to be called after every step.
func WithOnVisit(fn func(Step)) Option {
	return func(c *config) { c.onVisit = fn }
}

// WithAnnotation replaces the default page annotation prefix.
func WithAnnotation(s string) Option {
	return func(c *config) { c.annotation = s }
}

func newConfig(annotation string, opts []Option) *config {
	c := &config{ctx: context.Background(), annotation: annotation}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// visit runs one step: checks for cancellation, draws and reports it.
func (c *config) visit(s Step, tree *graph.Graph) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	if c.visitor != nil {
		if err := c.visitor.VisitNode(s.Node, c.annotation, tree); err != nil {
			return err
		}
	}
	if c.onVisit != nil {
		c.onVisit(s)
	}
	return nil
}

func (c *config) draw(annotation string, tree *graph.Graph) error {
	if err := c.ctx.Err(); err != nil {
		return err
	}
	if c.visitor == nil {
		return nil
	}
	return c.visitor.Draw(annotation, tree)
}
