package vanginneken

import "sort"

// Prune removes dominated candidates from a frontier, restoring the
// pruning invariant: for no pair (a,b) with a != b does
// a.C <= b.C && a.RAT >= b.RAT hold.
//
// The frontier is first stably sorted by C ascending, then swept with
// two cursors exactly as the source engine does: equal-C ties keep
// whichever candidate has the larger RAT, and among candidates with
// strictly increasing C a later one is only kept if its RAT strictly
// improves on the one before it. The result is ordered by strictly
// increasing C and strictly increasing RAT (Prune is idempotent).
func Prune(f Frontier) Frontier {
	if len(f) <= 1 {
		return append(Frontier(nil), f...)
	}

	sorted := append(Frontier(nil), f...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].C < sorted[j].C })

	alive := make([]bool, len(sorted))
	for i := range alive {
		alive[i] = true
	}
	nextAlive := func(from int) int {
		for k := from; k < len(sorted); k++ {
			if alive[k] {
				return k
			}
		}

		return -1
	}

	i := 0
	j := nextAlive(1)
	for j != -1 {
		if sorted[i].C < sorted[j].C {
			if sorted[i].RAT >= sorted[j].RAT {
				alive[j] = false
				j = nextAlive(j + 1)
			} else {
				i = j
				j = nextAlive(j + 1)
			}
		} else { // equal C, since sorted ascending
			if sorted[i].RAT >= sorted[j].RAT {
				alive[j] = false
				j = nextAlive(j + 1)
			} else {
				alive[i] = false
				i = j
				j = nextAlive(j + 1)
			}
		}
	}

	result := make(Frontier, 0, len(sorted))
	for k, a := range alive {
		if a {
			result = append(result, sorted[k])
		}
	}

	return result
}
