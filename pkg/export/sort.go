package export

import "facecut/pkg/geometry"

// SortWires orders wires to minimize cutter travel, walking greedily from
// the machine origin to the nearest remaining wire endpoint. Wires whose end
// is closer than their start are reversed so the cut begins at the near end.
func SortWires(wires []geometry.Wire) []geometry.Wire {
	if len(wires) < 2 {
		return wires
	}

	min, max := geometry.Bounds2D(wires)
	tree := newWireTree(min, max)
	for _, w := range wires {
		tree.add(&wireEntry{
			wire:  w,
			start: geometry.ProjectXY(w.Start()),
			end:   geometry.ProjectXY(w.End()),
		})
	}

	x, y := 0.0, 0.0
	sorted := make([]geometry.Wire, 0, len(wires))
	for {
		nearestList := tree.findNearest(x, y, 1)
		if len(nearestList) == 0 {
			break
		}
		nearest := nearestList[0]
		tree.remove(nearest)

		w := nearest.wire
		from := geometry.Point{X: x, Y: y}
		if from.Distance(nearest.end) < from.Distance(nearest.start) {
			w = w.Reverse()
		}
		endPoint := geometry.ProjectXY(w.End())
		x, y = endPoint.X, endPoint.Y
		sorted = append(sorted, w)
	}
	return sorted
}
