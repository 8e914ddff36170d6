// Package contour implements the export pipeline: overlap detection across
// boundary wires, fusion of overlapping wires into a single contour, and the
// run sequence that builds transient wires, exports them and cleans up.
package contour

import "facecut/pkg/geometry"

// Overlaps reports whether any two wires share edge geometry within tol.
// Exhaustive pairwise scan over all edge combinations, short-circuiting on
// the first hit; inputs are user selections, not bulk data, so the O(W²·E²)
// worst case is acceptable. Pure predicate, no side effects.
func Overlaps(wires []geometry.Wire, tol float64) bool {
	for i := 0; i < len(wires); i++ {
		for j := i + 1; j < len(wires); j++ {
			if wirePairOverlaps(wires[i], wires[j], tol) {
				return true
			}
		}
	}
	return false
}

func wirePairOverlaps(a, b geometry.Wire, tol float64) bool {
	// Cheap reject if the bounding boxes are further apart than tol.
	aMin, aMax := a.Bounds()
	bMin, bMax := b.Bounds()
	if aMin.X-tol > bMax.X || bMin.X-tol > aMax.X ||
		aMin.Y-tol > bMax.Y || bMin.Y-tol > aMax.Y ||
		aMin.Z-tol > bMax.Z || bMin.Z-tol > aMax.Z {
		return false
	}

	for _, ea := range a.Edges {
		for _, eb := range b.Edges {
			if ea.Distance(eb) < tol {
				return true
			}
		}
	}
	return false
}
