package scene

import (
	"io"
	"strconv"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/pdf"
)

// Bridge records the steps of a traversal over a Renderer's primary graph
// as document pages.
type Bridge struct {
	r *Renderer
}

// NewBridge returns a Bridge drawing through r.
func NewBridge(r *Renderer) *Bridge {
	return &Bridge{r: r}
}

// Renderer returns the underlying renderer.
func (b *Bridge) Renderer() *Renderer { return b.r }

// Graph returns the graph being traversed.
func (b *Bridge) Graph() *graph.Graph { return b.r.g }

// Document returns the document pages are added to.
func (b *Bridge) Document() *pdf.Document { return b.r.doc }

// NewPage starts a page with the given annotation without drawing anything.
func (b *Bridge) NewPage(annotation string) {
	b.r.doc.NewPage(annotation)
}

// VisitNode adds a page showing the visit of node i. The node is highlighted
// for this page only. When beneath is not nil it is drawn first, in the
// beneath style, typically the spanning tree found so far. Both graphs are
// also embedded in brief text form as PDF comments.
func (b *Bridge) VisitNode(i int, annotation string, beneath *graph.Graph) error {
	g := b.r.g
	if err := errors.ValidateNodeIndex(i, g.Len()); err != nil {
		return err
	}
	doc := b.r.doc
	label := strconv.Itoa(i + 1)
	doc.NewPage(annotation + ": visiting node " + label)
	doc.Comment("! Visiting node " + label + " '" + annotation + "'")

	saved := g.Node(i).Flags
	_ = g.FlagNode(i, graph.Highlight)
	defer func() { _ = g.SetNodeFlags(i, saved) }()

	if beneath != nil {
		doc.Comment("! Beneath graph:\n" + beneath.Text(true, ""))
		b.r.DrawBeneath(0, beneath)
	}
	doc.Comment("! Graph:\n" + g.Text(true, ""))
	b.r.Draw(0, nil)
	return doc.Err()
}

// Draw adds a page showing the graph without any highlight, with beneath
// drawn underneath when it is not nil.
func (b *Bridge) Draw(annotation string, beneath *graph.Graph) error {
	doc := b.r.doc
	doc.NewPage(annotation)
	if beneath != nil {
		b.r.DrawBeneath(0, beneath)
	}
	b.r.Draw(0, nil)
	return doc.Err()
}

// Finish writes the document to w. See pdf.Document.Finish.
func (b *Bridge) Finish(w io.Writer) error {
	return b.r.doc.Finish(w)
}
