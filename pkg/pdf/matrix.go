package pdf

import "github.com/matzehuels/stepdoc/pkg/geom"

// Matrix is an affine map from user space to device space:
//
//	x' = A11·x + A12·y + A13
//	y' = A21·x + A22·y + A23
type Matrix struct {
	A11, A12, A13 float64
	A21, A22, A23 float64
}

// Identity is the transform every page starts with.
var Identity = Matrix{A11: 1, A22: 1}

// ScaleTranslate returns the uniform scale s followed by the shift (tx, ty).
func ScaleTranslate(s, tx, ty float64) Matrix {
	return Matrix{A11: s, A13: tx, A22: s, A23: ty}
}

// Apply maps the point p.
func (m Matrix) Apply(p geom.Point) geom.Point {
	return geom.Point{
		X: m.A11*p.X + m.A12*p.Y + m.A13,
		Y: m.A21*p.X + m.A22*p.Y + m.A23,
	}
}

// ApplyVector maps the direction v, ignoring the translation.
func (m Matrix) ApplyVector(v geom.Point) geom.Point {
	return geom.Point{
		X: m.A11*v.X + m.A12*v.Y,
		Y: m.A21*v.X + m.A22*v.Y,
	}
}

// Scale returns the factor by which m stretches lengths along the x axis.
func (m Matrix) Scale() float64 {
	return m.ApplyVector(geom.Pt(1, 0)).Len()
}
