package geometry

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// Point is a 2D point, used for the projected output plane.
type Point struct {
	X float64
	Y float64
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Edge is a straight segment between two points in 3D space. Boundary wires
// of mesh faces are made of these; there are no curved edges.
type Edge struct {
	A model3d.Coord3D
	B model3d.Coord3D
}

func (e Edge) Length() float64 {
	return e.A.Dist(e.B)
}

func (e Edge) Reverse() Edge {
	return Edge{A: e.B, B: e.A}
}

// Coincident reports whether two edges occupy the same segment within tol,
// in either orientation.
func (e Edge) Coincident(other Edge, tol float64) bool {
	if e.A.Dist(other.A) <= tol && e.B.Dist(other.B) <= tol {
		return true
	}
	return e.A.Dist(other.B) <= tol && e.B.Dist(other.A) <= tol
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Distance returns the minimum distance between two segments in 3D,
// using the clamped closest-point formulation. Degenerate (zero length)
// segments are handled as points.
func (e Edge) Distance(other Edge) float64 {
	d1 := e.B.Sub(e.A)
	d2 := other.B.Sub(other.A)
	r := e.A.Sub(other.A)
	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d1.Dot(r)
	f := d2.Dot(d2)
	g := d2.Dot(r)

	const eps = 1e-12
	var s, t float64
	switch {
	case a <= eps && f <= eps:
		return e.A.Dist(other.A)
	case a <= eps:
		t = clamp(g/f, 0, 1)
	case f <= eps:
		s = clamp(-c/a, 0, 1)
	default:
		den := a*f - b*b
		if den > eps {
			s = clamp((b*g-c*f)/den, 0, 1)
		}
		t = (b*s + g) / f
		if t < 0 {
			t = 0
			s = clamp(-c/a, 0, 1)
		} else if t > 1 {
			t = 1
			s = clamp((b-c)/a, 0, 1)
		}
	}

	p1 := e.A.Add(d1.Scale(s))
	p2 := other.A.Add(d2.Scale(t))
	return p1.Dist(p2)
}

// ProjectXY drops the Z coordinate, projecting onto the output plane.
func ProjectXY(c model3d.Coord3D) Point {
	return Point{X: c.X, Y: c.Y}
}
