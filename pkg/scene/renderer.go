package scene

import (
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/stepdoc/pkg/geom"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/pdf"
)

// collinearTolerance bounds |d1×d2| relative to |d1||d2| below which the
// three points of a curved arc are treated as collinear.
const collinearTolerance = 1e-6

// Renderer draws one graph, and subgraphs sharing its node positions, onto a
// Document.
type Renderer struct {
	doc   *pdf.Document
	g     *graph.Graph
	flags Flags
	m     pdf.Matrix
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDisplayFlags sets flags added to every draw call.
func WithDisplayFlags(f Flags) Option {
	return func(r *Renderer) { r.flags = f }
}

// New returns a Renderer for g. The graph-to-page transform is fixed here,
// from the bounding box of g's node positions and arc control points grown
// by a tenth of its width, scaled by g.Scale() and centered on the page.
func New(doc *pdf.Document, g *graph.Graph, opts ...Option) *Renderer {
	r := &Renderer{doc: doc, g: g}
	for _, opt := range opts {
		opt(r)
	}
	r.m = fitTransform(g, doc.Width(), doc.Height())
	return r
}

func fitTransform(g *graph.Graph, width, height float64) pdf.Matrix {
	var lo, hi geom.Point
	for i, n := range g.Nodes() {
		if i == 0 {
			lo, hi = n.Pos, n.Pos
			continue
		}
		lo, hi = grow(lo, hi, n.Pos)
	}
	for _, p := range g.ArcPoints() {
		lo, hi = grow(lo, hi, p)
	}
	margin := (hi.X - lo.X) * 0.1
	lo = lo.Sub(geom.Pt(margin, margin))
	hi = hi.Add(geom.Pt(margin, margin))

	s := g.Scale()
	return pdf.ScaleTranslate(s, width/2-s*(hi.X+lo.X)/2, height/2-s*(hi.Y+lo.Y)/2)
}

func grow(lo, hi, p geom.Point) (geom.Point, geom.Point) {
	return geom.Pt(min(lo.X, p.X), min(lo.Y, p.Y)), geom.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
}

// Document returns the document being drawn on.
func (r *Renderer) Document() *pdf.Document { return r.doc }

// Graph returns the primary graph.
func (r *Renderer) Graph() *graph.Graph { return r.g }

// Transform returns the graph-to-page transform.
func (r *Renderer) Transform() pdf.Matrix { return r.m }

// DisplayFlags returns the persistent display flags.
func (r *Renderer) DisplayFlags() Flags { return r.flags }

// SetDisplayFlags replaces the persistent display flags, e.g. ShowNodeValues
// for a shortest path run.
func (r *Renderer) SetDisplayFlags(f Flags) { r.flags = f }

// localFlags derives the flags implied by the graph itself.
func localFlags(src *graph.Graph) Flags {
	var f Flags
	if src.Weighted() {
		f |= ArcWeights
	}
	if !src.Directed() {
		f |= NoArcArrows
	}
	return f
}

// Draw renders src, or the primary graph when src is nil, with the default
// style.
func (r *Renderer) Draw(flags Flags, src *graph.Graph) {
	if src == nil {
		src = r.g
	}
	r.DrawStyled(src, r.flags|flags|localFlags(src), DefaultStyle())
}

// DrawBeneath renders the arcs of src, or of the primary graph when src is
// nil, as thick light blue lines without nodes.
func (r *Renderer) DrawBeneath(flags Flags, src *graph.Graph) {
	if src == nil {
		src = r.g
	}
	st := DefaultStyle()
	st.ArcColor = BeneathColor
	r.DrawStyled(src, r.flags|flags|localFlags(src)|ThickArcs|NoNodes, st)
}

// DrawStyled renders src with exactly the given flags and style. Node
// positions and control points are taken from src and mapped through the
// renderer's transform.
func (r *Renderer) DrawStyled(src *graph.Graph, flags Flags, st Style) {
	if flags&ThickArcs != 0 {
		st.ArrowLength *= thickHeadRatio
		st.ArrowWidth = st.ArrowLength
		st.ArcLineWidth = ThickArcLineWidth
	}
	if flags&NewPage != 0 {
		r.doc.NewPage("")
	}
	if flags&NoNodes == 0 {
		r.drawNodes(src, flags, st)
	}
	if flags&NoArcs == 0 {
		r.drawArcs(src, flags, st)
	}
	if flags&ArcWeights != 0 {
		r.drawWeights(src)
	}
}

func (r *Renderer) drawNodes(src *graph.Graph, flags Flags, st Style) {
	d := r.doc
	d.SetLineWidth(st.NodeLineWidth)
	d.SetColor(st.NodeColor)
	for i, n := range src.Nodes() {
		p := r.m.Apply(n.Pos)

		if n.Flags&graph.Highlight != 0 {
			d.SetColor(HaloColor)
			d.CirclePath(p, haloRatio*st.NodeRadius)
			d.Fill()
			d.SetColor(st.NodeColor)
		}

		d.CirclePath(p, st.NodeRadius)
		d.SetFillGray(stateGray(n.State))
		d.ClosePathFillStroke()

		if flags&NoNodeLabels != 0 {
			continue
		}
		d.SetFillColor(st.NodeColor)
		text, scale := nodeLabel(i, n, flags)
		d.SelectFont(NodeFont, scale)
		d.PositionText(text, p.X, p.Y, 0.5, 0.5)
	}
}

func stateGray(s graph.State) float64 {
	switch s {
	case graph.Active:
		return 0.9
	case graph.Visited:
		return 0.75
	case graph.Finished:
		return 0.5
	}
	return 1
}

// nodeLabel picks the text drawn inside node i. Values and names use the
// smaller arc font scale; nameless nodes fall back to their index.
func nodeLabel(i int, n graph.Node, flags Flags) (string, float64) {
	switch {
	case flags&ShowNodeValues != 0:
		return fmt.Sprintf("%.2g", n.Value), ArcFontScale
	case flags&ShowNodeNames != 0 && n.Name != "":
		return n.Name, ArcFontScale
	}
	return strconv.Itoa(i + 1), NodeFontScale
}

func (r *Renderer) drawArcs(src *graph.Graph, flags Flags, st Style) {
	d := r.doc
	a := pdf.Arrow{
		Length:  st.ArrowLength,
		Width:   st.ArrowWidth,
		Backoff: st.NodeRadius,
		Foreoff: st.NodeRadius,
	}
	if src.Directed() && flags&NoArcArrows == 0 {
		a.Heads = pdf.Forward
	}

	d.SetLineWidth(st.ArcLineWidth)
	d.SetColor(st.ArcColor)
	for _, arc := range src.Arcs() {
		p0 := r.m.Apply(src.Node(arc.From).Pos)
		p1 := r.m.Apply(src.Node(arc.To).Pos)
		q, ok := src.ArcPoint(arc.From, arc.To)
		if !ok {
			d.ArrowedLine(p0, p1, a)
			continue
		}
		p2 := r.m.Apply(q)
		c, curved := circumcenter(p0, p1, p2)
		if !curved {
			d.ArrowedLine(p0, p1, a)
			continue
		}
		radius := c.Dist(p0)
		a0 := p0.Sub(c).Angle()
		a1 := p1.Sub(c).Angle()
		// The shorter way round decides the direction. A half circle has
		// none, so the side of the control point does.
		turn := p0.Sub(c).Cross(p1.Sub(c))
		if math.Abs(turn) <= collinearTolerance*radius*radius {
			turn = -p1.Sub(p0).Cross(p2.Sub(p1))
		}
		if turn < 0 {
			d.ArrowedArcn(c, radius, a0, a1, a)
		} else {
			d.ArrowedArc(c, radius, a0, a1, a)
		}
	}
}

// circumcenter returns the center of the circle through p0, p1 and p2. It
// reports false when the points are collinear within tolerance, which
// includes coincident points.
func circumcenter(p0, p1, p2 geom.Point) (geom.Point, bool) {
	c1 := (p1.LenSqr() - p0.LenSqr()) / 2
	c2 := (p2.LenSqr() - p1.LenSqr()) / 2
	d1 := p1.Sub(p0)
	d2 := p2.Sub(p1)
	det := d1.Cross(d2)
	if math.Abs(det) <= collinearTolerance*d1.Len()*d2.Len() {
		return geom.Point{}, false
	}
	return geom.Pt((c1*d2.Y-c2*d1.Y)/det, -(c1*d2.X-c2*d1.X)/det), true
}

func (r *Renderer) drawWeights(src *graph.Graph) {
	d := r.doc
	d.SelectFont(ArcFont, ArcFontScale)
	for _, arc := range src.Arcs() {
		from, to := src.Node(arc.From).Pos, src.Node(arc.To).Pos
		anchor, ok := src.ArcPoint(arc.From, arc.To)
		if !ok {
			anchor = from.Add(to).Scale(0.5)
		}
		perp := from.Sub(to).Perp().Unit()
		h, v := labelFractions(perp.Angle())
		p := r.m.Apply(anchor).Add(perp.Scale(weightOffset))
		d.PositionText(fmt.Sprintf("%.2g", src.ArcWeight(arc.From, arc.To)), p.X, p.Y, h, v)
	}
}

// labelFractions returns the PositionText anchor fractions that keep a label
// on the side of its anchor that angle points to. The fractions move
// continuously around the unit square as angle turns.
func labelFractions(angle float64) (h, v float64) {
	const q = math.Pi / 2
	switch {
	case angle < -3*math.Pi/4:
		return 1, (angle + 5*math.Pi/4) / q
	case angle < -math.Pi/4:
		return 1 - (angle+3*math.Pi/4)/q, 1
	case angle < math.Pi/4:
		return 0, 1 - (angle+math.Pi/4)/q
	case angle < 3*math.Pi/4:
		return (angle - math.Pi/4) / q, 0
	default:
		return 1, (angle - 3*math.Pi/4) / q
	}
}
