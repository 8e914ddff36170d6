package export

import (
	"math"
	"sort"

	"github.com/asim/quadtree"

	"facecut/pkg/geometry"
)

var zeroPoint = quadtree.NewPoint(0, 0, nil)

// wireEntry is one wire in the travel-sort index, with its projected
// endpoints cached.
type wireEntry struct {
	wire  geometry.Wire
	start geometry.Point
	end   geometry.Point
}

func (e *wireEntry) distance(x, y float64) float64 {
	from := geometry.Point{X: x, Y: y}
	ds := from.Distance(e.start)
	de := from.Distance(e.end)
	if de < ds {
		return de
	}
	return ds
}

// wireTree indexes wire endpoints in a quadtree so the sorter can pull the
// nearest remaining wire without rescanning the whole set.
type wireTree struct {
	quadTree   *quadtree.QuadTree
	midX       float64
	midY       float64
	halfWidth  float64
	halfHeight float64
}

func newWireTree(min, max geometry.Point) *wireTree {
	midX := (max.X + min.X) / 2
	midY := (max.Y + min.Y) / 2
	halfWidth := max.X - midX
	halfHeight := max.Y - midY

	// Add a small margin to avoid dropping endpoints at the edges.
	halfWidth += 10
	halfHeight += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfWidth, halfHeight, nil))
	return &wireTree{
		quadTree:   quadtree.New(aabb, 0, nil),
		midX:       midX,
		midY:       midY,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

func (t *wireTree) eachEndpoint(e *wireEntry, f func(x, y float64)) {
	f(e.start.X, e.start.Y)
	if e.end != e.start {
		f(e.end.X, e.end.Y)
	}
}

func (t *wireTree) add(e *wireEntry) {
	t.eachEndpoint(e, func(x, y float64) {
		point := quadtree.NewPoint(x, y, nil)
		points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) > 0 {
			pointX, pointY := points[0].Coordinates()
			if pointX == x && pointY == y {
				entries := points[0].Data().(map[*wireEntry]struct{})
				entries[e] = struct{}{}
				return
			}
		}
		entries := map[*wireEntry]struct{}{e: {}}
		t.quadTree.Insert(quadtree.NewPoint(x, y, entries))
	})
}

func (t *wireTree) remove(e *wireEntry) {
	t.eachEndpoint(e, func(x, y float64) {
		point := quadtree.NewPoint(x, y, nil)
		points := t.quadTree.KNearest(quadtree.NewAABB(point, zeroPoint), 1, nil)
		if len(points) > 0 {
			pointX, pointY := points[0].Coordinates()
			if pointX == x && pointY == y {
				entries := points[0].Data().(map[*wireEntry]struct{})
				delete(entries, e)
				if len(entries) == 0 {
					t.quadTree.Remove(points[0])
				}
			}
		}
	})
}

func (t *wireTree) findNearest(x, y float64, maxCount int) []*wireEntry {
	// The query box stays centered on the walk position but must always
	// reach the whole indexed extent, even when the position is far outside
	// the drawing (the walk starts at the machine origin).
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(x, y, nil),
		quadtree.NewPoint(math.Abs(x-t.midX)+t.halfWidth, math.Abs(y-t.midY)+t.halfHeight, nil),
	)
	points := t.quadTree.KNearest(aabb, maxCount+50, nil)

	seen := map[*wireEntry]struct{}{}
	var nearest []*wireEntry
	for _, point := range points {
		entries := point.Data().(map[*wireEntry]struct{})
		for e := range entries {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			nearest = append(nearest, e)
		}
	}

	sort.Slice(nearest, func(i, j int) bool {
		return nearest[i].distance(x, y) < nearest[j].distance(x, y)
	})

	if len(nearest) > maxCount {
		nearest = nearest[:maxCount]
	}
	return nearest
}
