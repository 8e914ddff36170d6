package contour

import (
	"errors"

	"facecut/pkg/geometry"
)

// ErrEmptyFuse indicates that fusing and downgrading the selected wires
// produced no edges. Callers treat this as "nothing to export".
var ErrEmptyFuse = errors.New("fusion produced no edges")

// Fuse unions a set of overlapping wires into a single contour and
// decomposes it back into wires. The union folds pairwise over the input,
// one step per extra wire, collapsing coincident edges so shared boundary
// geometry appears exactly once in the result.
func Fuse(wires []geometry.Wire, tol float64) ([]geometry.Wire, error) {
	var fused []geometry.Edge
	for _, w := range wires {
		fused = union(fused, w.Edges, tol)
	}
	return Downgrade(fused, tol)
}

// union merges two edge sets, keeping a single copy of every edge pair that
// is coincident within tol.
func union(a, b []geometry.Edge, tol float64) []geometry.Edge {
	merged := a
	for _, eb := range b {
		dup := false
		for _, ea := range a {
			if ea.Coincident(eb, tol) {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, eb)
		}
	}
	return merged
}

// Downgrade decomposes a fused edge set into its constituent wires, the
// equivalent of breaking a fused shape back down to edges and re-chaining
// them. An empty result is an error, not a crash: the caller aborts the
// export with nothing written.
func Downgrade(edges []geometry.Edge, tol float64) ([]geometry.Wire, error) {
	wires := geometry.Chain(edges, tol)
	if len(wires) == 0 {
		return nil, ErrEmptyFuse
	}
	return wires, nil
}
