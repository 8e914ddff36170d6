package geometry

// Chain assembles an unordered edge soup into wires by endpoint adjacency.
// Edges are consumed in input order; each wire grows forward from its seed
// edge until it closes or runs out of neighbors, then grows backward if it
// is still open. Endpoints match when they are within tol of each other.
// Zero-length edges are dropped.
func Chain(edges []Edge, tol float64) []Wire {
	used := make([]bool, len(edges))
	for i, e := range edges {
		if e.Length() <= tol {
			used[i] = true
		}
	}

	var wires []Wire
	for i := range edges {
		if used[i] {
			continue
		}
		used[i] = true
		chain := []Edge{edges[i]}

		// Grow forward from the chain's end.
		for {
			w := Wire{Edges: chain}
			if w.Closed(tol) {
				break
			}
			cur := w.End()
			j := -1
			flip := false
			for k, e := range edges {
				if used[k] {
					continue
				}
				if e.A.Dist(cur) <= tol {
					j, flip = k, false
					break
				}
				if e.B.Dist(cur) <= tol {
					j, flip = k, true
					break
				}
			}
			if j < 0 {
				break
			}
			used[j] = true
			e := edges[j]
			if flip {
				e = e.Reverse()
			}
			chain = append(chain, e)
		}

		// Grow backward from the chain's start if it didn't close.
		for !(Wire{Edges: chain}).Closed(tol) {
			cur := chain[0].A
			j := -1
			flip := false
			for k, e := range edges {
				if used[k] {
					continue
				}
				if e.B.Dist(cur) <= tol {
					j, flip = k, false
					break
				}
				if e.A.Dist(cur) <= tol {
					j, flip = k, true
					break
				}
			}
			if j < 0 {
				break
			}
			used[j] = true
			e := edges[j]
			if flip {
				e = e.Reverse()
			}
			chain = append([]Edge{e}, chain...)
		}

		wires = append(wires, Wire{Edges: chain})
	}
	return wires
}
