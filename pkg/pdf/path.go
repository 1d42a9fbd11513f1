package pdf

import (
	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

// =============================================================================
// Path construction
// =============================================================================

// MoveTo starts a new subpath at p.
//
// This implements the PDF graphics operator "m".
func (d *Document) MoveTo(p geom.Point) {
	d.point("m", p)
	d.cur, d.hasCur = p, true
}

// LineTo appends a straight segment from the current point to p.
//
// This implements the PDF graphics operator "l".
func (d *Document) LineTo(p geom.Point) {
	d.point("l", p)
	d.cur, d.hasCur = p, true
}

// CurveTo appends a cubic Bezier segment with control points c1, c2 ending
// at p.
//
// This implements the PDF graphics operator "c".
func (d *Document) CurveTo(c1, c2, p geom.Point) {
	d.point("c", c1, c2, p)
	d.cur, d.hasCur = p, true
}

// RMoveTo starts a new subpath displaced by v from the current point.
// It fails the document with NO_CURRENT_POINT if there is none.
func (d *Document) RMoveTo(v geom.Point) {
	if !d.requireCurrent("RMoveTo") {
		return
	}
	d.MoveTo(d.cur.Add(v))
}

// RLineTo draws a line to the point displaced by v from the current point.
// It fails the document with NO_CURRENT_POINT if there is none.
func (d *Document) RLineTo(v geom.Point) {
	if !d.requireCurrent("RLineTo") {
		return
	}
	d.LineTo(d.cur.Add(v))
}

// ClosePath closes the current subpath. The current point is cleared, so the
// next arc starts a fresh subpath.
//
// This implements the PDF graphics operator "h".
func (d *Document) ClosePath() {
	d.emit("h")
	d.hasCur = false
}

// Rect appends a closed rectangle with corner p and extent size.
//
// This implements the PDF graphics operator "re".
func (d *Document) Rect(p, size geom.Point) {
	q := d.m.Apply(p)
	v := d.m.ApplyVector(size)
	d.emit("%.3f %.3f %.3f %.3f re", q.X, q.Y, v.X, v.Y)
}

func (d *Document) requireCurrent(op string) bool {
	if d.err != nil {
		return false
	}
	if !d.hasCur {
		d.fail(errors.New(errors.ErrCodeNoCurrentPoint, "no current point in %s", op))
		return false
	}
	return true
}

// =============================================================================
// Path painting
// =============================================================================

func (d *Document) paint(op string) {
	d.emit("%s", op)
	d.hasCur = false
}

// Fill fills the path using the nonzero winding rule ("f").
func (d *Document) Fill() { d.paint("f") }

// EOFill fills the path using the even-odd rule ("f*").
func (d *Document) EOFill() { d.paint("f*") }

// Stroke strokes the path ("S").
func (d *Document) Stroke() { d.paint("S") }

// ClosePathStroke closes and strokes the path ("s").
func (d *Document) ClosePathStroke() { d.paint("s") }

// FillStroke fills and then strokes the path ("B").
func (d *Document) FillStroke() { d.paint("B") }

// EOFillStroke fills with the even-odd rule and strokes ("B*").
func (d *Document) EOFillStroke() { d.paint("B*") }

// ClosePathFillStroke closes, fills and strokes the path ("b").
func (d *Document) ClosePathFillStroke() { d.paint("b") }

// ClosePathEOFillStroke closes, fills with the even-odd rule and strokes
// ("b*").
func (d *Document) ClosePathEOFillStroke() { d.paint("b*") }

// EndPath ends the path without painting it ("n").
func (d *Document) EndPath() { d.paint("n") }

// Clip intersects the clipping path with the current path ("W"). It takes
// effect at the next painting operator.
func (d *Document) Clip() { d.emit("W") }

// EOClip is Clip with the even-odd rule ("W*").
func (d *Document) EOClip() { d.emit("W*") }

// =============================================================================
// Graphics state
// =============================================================================

// Line cap styles for [Document.SetLineCap].
const (
	ButtCap   = 0
	RoundCap  = 1
	SquareCap = 2
)

// Line join styles for [Document.SetLineJoin].
const (
	MiterJoin = 0
	RoundJoin = 1
	BevelJoin = 2
)

// GSave pushes the graphics state ("q").
func (d *Document) GSave() { d.emit("q") }

// GRestore pops the graphics state ("Q").
func (d *Document) GRestore() { d.emit("Q") }

// Concat multiplies m onto the device CTM ("cm"). Unlike
// [Document.SetTransform] this is seen by the viewer, not by the engine.
func (d *Document) Concat(m Matrix) {
	d.emit("%.3f %.3f %.3f %.3f %.3f %.3f cm", m.A11, m.A21, m.A12, m.A22, m.A13, m.A23)
}

// SetLineWidth sets the stroke width in device units ("w").
func (d *Document) SetLineWidth(w float64) { d.emit("%.3f w", w) }

// SetLineCap sets the line cap style ("J").
func (d *Document) SetLineCap(style int) { d.emit("%d J", style) }

// SetLineJoin sets the line join style ("j").
func (d *Document) SetLineJoin(style int) { d.emit("%d j", style) }

// SetMiterLimit sets the miter limit ("M").
func (d *Document) SetMiterLimit(limit float64) { d.emit("%.3f M", limit) }

// SetFlat sets the flatness tolerance ("i").
func (d *Document) SetFlat(tolerance float64) { d.emit("%.3f i", tolerance) }

// SetDash sets an on/off dash pattern starting at phase ("d").
func (d *Document) SetDash(on, off, phase float64) {
	d.emit("[ %.3f %.3f ] %.3f d", on, off, phase)
}

// SetDashLength sets a dash pattern with equal on and off lengths.
func (d *Document) SetDashLength(length, phase float64) {
	d.emit("[ %.3f ] %.3f d", length, phase)
}

// ResetDash restores solid lines.
func (d *Document) ResetDash() { d.emit("[] 0 d") }

// =============================================================================
// Color
// =============================================================================

// SetStrokeColor sets the stroking color ("RG").
func (d *Document) SetStrokeColor(c Color) {
	d.stroke = c
	d.emit("%.3f %.3f %.3f RG", c.R, c.G, c.B)
}

// SetFillColor sets the nonstroking color, used for fills and text ("rg").
func (d *Document) SetFillColor(c Color) {
	d.fill = c
	d.emit("%.3f %.3f %.3f rg", c.R, c.G, c.B)
}

// SetColor sets both the stroking and nonstroking colors.
func (d *Document) SetColor(c Color) {
	d.SetStrokeColor(c)
	d.SetFillColor(c)
}

// SetStrokeGray sets the stroking color to a gray level ("G").
func (d *Document) SetStrokeGray(v float64) {
	d.stroke = Gray(v)
	d.emit("%.3f G", v)
}

// SetFillGray sets the nonstroking color to a gray level ("g").
func (d *Document) SetFillGray(v float64) {
	d.fill = Gray(v)
	d.emit("%.3f g", v)
}

// SetGray sets both colors to a gray level.
func (d *Document) SetGray(v float64) {
	d.SetStrokeGray(v)
	d.SetFillGray(v)
}

// SetStrokeCMYK sets the stroking color in DeviceCMYK ("K").
func (d *Document) SetStrokeCMYK(c, m, y, k float64) {
	d.stroke = cmyk(c, m, y, k)
	d.emit("%.3f %.3f %.3f %.3f K", c, m, y, k)
}

// SetFillCMYK sets the nonstroking color in DeviceCMYK ("k").
func (d *Document) SetFillCMYK(c, m, y, k float64) {
	d.fill = cmyk(c, m, y, k)
	d.emit("%.3f %.3f %.3f %.3f k", c, m, y, k)
}
