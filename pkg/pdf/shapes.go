package pdf

import (
	"math"

	"github.com/matzehuels/stepdoc/pkg/geom"
)

// ArcStep is the largest angle covered by one Bezier segment when the
// segment count is chosen automatically.
const ArcStep = math.Pi / 8

// bezierS is the control arm length, relative to the radius, of the cubic
// that approximates a circular arc of the given angle.
func bezierS(angle float64) float64 {
	return (8*math.Cos(angle/2) - 4*(1+math.Cos(angle))) / (3 * math.Sin(angle))
}

// normalizeSpan maps an angular difference into (0, 2π].
func normalizeSpan(span float64) float64 {
	span = math.Mod(span, 2*math.Pi)
	if span <= 0 {
		span += 2 * math.Pi
	}
	return span
}

func arcSegments(span float64, n int) int {
	if n <= 0 {
		n = int(span / ArcStep)
	}
	return max(n, 1)
}

// Arc appends a counterclockwise arc of radius r about c from angle a0 to
// a1 (radians). If a current point exists it is joined to the start of the
// arc with a line, otherwise the arc starts a new subpath. Pass segments <= 0
// to split the arc into steps of at most [ArcStep].
func (d *Document) Arc(c geom.Point, r, a0, a1 float64, segments int) {
	d.arc(c, r, a0, normalizeSpan(a1-a0), 1, segments)
}

// Arcn is Arc traversed clockwise, from a0 down to a1.
func (d *Document) Arcn(c geom.Point, r, a0, a1 float64, segments int) {
	d.arc(c, r, a0, normalizeSpan(a0-a1), -1, segments)
}

func (d *Document) arc(c geom.Point, r, a0, span, dir float64, segments int) {
	start := c.Add(geom.Polar(r, a0))
	if d.hasCur {
		d.LineTo(start)
	} else {
		d.MoveTo(start)
	}
	for _, b := range arcCurves(c, r, a0, span, dir, segments) {
		d.CurveTo(b.c1, b.c2, b.end)
	}
}

// cubic is one Bezier segment; its start is the previous segment's end.
type cubic struct {
	c1, c2, end geom.Point
}

// arcCurves splits an arc of the given span starting at a0 into cubic
// segments. dir is 1 for counterclockwise and -1 for clockwise.
func arcCurves(c geom.Point, r, a0, span, dir float64, segments int) []cubic {
	n := arcSegments(span, segments)
	theta := span / float64(n)
	s := r * bezierS(theta)
	sin, cos := math.Sincos(theta)

	// Control points of one segment starting at angle zero. The clockwise
	// form is the mirror image in the x axis.
	p1 := geom.Pt(r, dir*s)
	p2 := geom.Pt(r*cos+s*sin, dir*(r*sin-s*cos))
	p3 := geom.Pt(r*cos, dir*r*sin)

	out := make([]cubic, n)
	for k := range out {
		rot := a0 + dir*float64(k)*theta
		out[k] = cubic{c.Add(p1.Rotate(rot)), c.Add(p2.Rotate(rot)), c.Add(p3.Rotate(rot))}
	}
	return out
}

// CirclePath appends a closed circle of radius r about c.
func (d *Document) CirclePath(c geom.Point, r float64) {
	d.Arc(c, r, 0, 2*math.Pi, 8)
	d.ClosePath()
}

// RectPath appends a closed rectangle built from lines, so that it can be
// mixed with curves in one path.
func (d *Document) RectPath(p, size geom.Point) {
	d.MoveTo(p)
	d.LineTo(geom.Pt(p.X+size.X, p.Y))
	d.LineTo(p.Add(size))
	d.LineTo(geom.Pt(p.X, p.Y+size.Y))
	d.ClosePath()
}

// RoundBoxPath appends a rectangle whose corners are quarter circles of
// radius r. With r == 0 it is RectPath.
func (d *Document) RoundBoxPath(p, size geom.Point, r float64) {
	if r == 0 {
		d.RectPath(p, size)
		return
	}
	x, y, w, h := p.X, p.Y, size.X, size.Y
	d.MoveTo(geom.Pt(x+r, y))
	d.Arc(geom.Pt(x+w-r, y+r), r, -math.Pi/2, 0, 1)
	d.Arc(geom.Pt(x+w-r, y+h-r), r, 0, math.Pi/2, 1)
	d.Arc(geom.Pt(x+r, y+h-r), r, math.Pi/2, math.Pi, 1)
	d.Arc(geom.Pt(x+r, y+r), r, math.Pi, 3*math.Pi/2, 1)
	d.ClosePath()
}

// PolylinePath appends an open path through pts.
func (d *Document) PolylinePath(pts ...geom.Point) {
	if len(pts) == 0 {
		return
	}
	d.MoveTo(pts[0])
	for _, p := range pts[1:] {
		d.LineTo(p)
	}
}

// PolygonPath appends a closed path through pts.
func (d *Document) PolygonPath(pts ...geom.Point) {
	if len(pts) == 0 {
		return
	}
	d.PolylinePath(pts...)
	d.ClosePath()
}
