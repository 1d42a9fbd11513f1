package pdf

import (
	"math"

	"github.com/matzehuels/stepdoc/pkg/geom"
)

// Heads selects which ends of a connector carry an arrowhead.
type Heads int

// Arrowhead placement flags.
const (
	Backward Heads = 1 << iota // head at the start
	Forward                    // head at the end
	NoHeads  Heads = 0
	Both           = Backward | Forward
)

// Arrow sizes the heads of a connector and pulls its ends back from the
// endpoints, e.g. to stop at the rim of a node.
type Arrow struct {
	Length, Width    float64
	Heads            Heads
	Backoff, Foreoff float64 // distance removed at the start and the end
}

// Arrowhead fills a triangular head with its tip at tip, pointing away from
// from. The triangle is Length long and Width wide at the base.
func (d *Document) Arrowhead(tip, from geom.Point, length, width float64) {
	angle := from.Sub(tip).Angle()
	d.PolygonPath(
		tip,
		tip.Add(geom.Pt(length, -width/2).Rotate(angle)),
		tip.Add(geom.Pt(length, width/2).Rotate(angle)),
	)
	d.Fill()
}

// ArrowedLine strokes a straight connector from p0 to p1 and fills the
// requested heads. The stroked line stops short of each head so that its
// butt end does not poke through the tip.
func (d *Document) ArrowedLine(p0, p1 geom.Point, a Arrow) {
	dir := p1.Sub(p0)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Unit()
	inset := 0.3 * a.Length

	p0 = p0.Add(dir.Scale(a.Backoff))
	p1 = p1.Sub(dir.Scale(a.Foreoff))

	start, end := p0, p1
	if a.Heads&Backward != 0 {
		start = p0.Add(dir.Scale(inset))
	}
	if a.Heads&Forward != 0 {
		end = p1.Sub(dir.Scale(inset))
	}
	d.MoveTo(start)
	d.LineTo(end)
	d.Stroke()

	if a.Heads&Backward != 0 {
		d.Arrowhead(p0, p1, a.Length, a.Width)
	}
	if a.Heads&Forward != 0 {
		d.Arrowhead(p1, p0, a.Length, a.Width)
	}
}

// ArrowedArc strokes a counterclockwise arc connector about c and fills the
// requested heads, oriented along the tangent. Backoff and Foreoff are arc
// lengths.
func (d *Document) ArrowedArc(c geom.Point, r, a0, a1 float64, a Arrow) {
	d.arrowedArc(c, r, a0, a1, a, 1)
}

// ArrowedArcn is ArrowedArc traversed clockwise.
func (d *Document) ArrowedArcn(c geom.Point, r, a0, a1 float64, a Arrow) {
	d.arrowedArc(c, r, a0, a1, a, -1)
}

func (d *Document) arrowedArc(c geom.Point, r, a0, a1 float64, a Arrow, dir float64) {
	if r <= 0 {
		return
	}
	inset := 0.6 * a.Length / r
	a0 += dir * a.Backoff / r
	a1 -= dir * a.Foreoff / r

	s0, s1 := a0, a1
	if a.Heads&Backward != 0 {
		s0 += dir * inset
	}
	if a.Heads&Forward != 0 {
		s1 -= dir * inset
	}
	segments := 0
	if math.Abs(a1-a0) < math.Pi/2 {
		segments = 1
	}
	if dir > 0 {
		d.Arc(c, r, s0, s1, segments)
	} else {
		d.Arcn(c, r, s0, s1, segments)
	}
	d.Stroke()

	// The tangent at angle t points along t+π/2 when moving counterclockwise.
	if a.Heads&Backward != 0 {
		tip := c.Add(geom.Polar(r, a0))
		d.Arrowhead(tip, tip.Add(geom.Polar(1, a0+dir*math.Pi/2)), a.Length, a.Width)
	}
	if a.Heads&Forward != 0 {
		tip := c.Add(geom.Polar(r, a1))
		d.Arrowhead(tip, tip.Add(geom.Polar(1, a1-dir*math.Pi/2)), a.Length, a.Width)
	}
}
