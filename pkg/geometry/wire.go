package geometry

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// Wire is an ordered sequence of connected edges forming a boundary curve,
// open or closed. Each edge's B endpoint is the next edge's A endpoint.
type Wire struct {
	Edges []Edge
}

func (w Wire) Length() float64 {
	total := 0.0
	for _, e := range w.Edges {
		total += e.Length()
	}
	return total
}

func (w Wire) Start() model3d.Coord3D {
	if len(w.Edges) == 0 {
		return model3d.Coord3D{}
	}
	return w.Edges[0].A
}

func (w Wire) End() model3d.Coord3D {
	if len(w.Edges) == 0 {
		return model3d.Coord3D{}
	}
	return w.Edges[len(w.Edges)-1].B
}

// Closed reports whether the wire's end meets its start within tol.
func (w Wire) Closed(tol float64) bool {
	if len(w.Edges) < 3 {
		return false
	}
	return w.Start().Dist(w.End()) <= tol
}

// Reverse returns the wire traversed in the opposite direction.
func (w Wire) Reverse() Wire {
	edges := make([]Edge, len(w.Edges))
	for i, e := range w.Edges {
		edges[len(edges)-1-i] = e.Reverse()
	}
	return Wire{Edges: edges}
}

// Points returns the ordered vertices of the wire, starting with the first
// edge's A endpoint. For a closed wire the start point is not repeated.
func (w Wire) Points() []model3d.Coord3D {
	if len(w.Edges) == 0 {
		return nil
	}
	points := make([]model3d.Coord3D, 0, len(w.Edges)+1)
	for _, e := range w.Edges {
		points = append(points, e.A)
	}
	if !w.Closed(1e-9) {
		points = append(points, w.End())
	}
	return points
}

// Bounds returns the axis-aligned bounding box of the wire.
func (w Wire) Bounds() (min, max model3d.Coord3D) {
	inf := math.Inf(1)
	min = model3d.Coord3D{X: inf, Y: inf, Z: inf}
	max = model3d.Coord3D{X: -inf, Y: -inf, Z: -inf}
	for _, e := range w.Edges {
		min = min.Min(e.A).Min(e.B)
		max = max.Max(e.A).Max(e.B)
	}
	return min, max
}

// Bounds2D returns the bounding box of a set of wires projected onto the
// output plane.
func Bounds2D(wires []Wire) (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, w := range wires {
		for _, e := range w.Edges {
			for _, c := range []model3d.Coord3D{e.A, e.B} {
				min.X = math.Min(min.X, c.X)
				min.Y = math.Min(min.Y, c.Y)
				max.X = math.Max(max.X, c.X)
				max.Y = math.Max(max.Y, c.Y)
			}
		}
	}
	return min, max
}
