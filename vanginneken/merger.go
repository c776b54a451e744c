package vanginneken

// Merge joins two frontiers already sorted ascending by C (as Prune
// leaves them) into the frontier of their subtree union. It walks both
// in lockstep, at each step emitting one combined candidate:
//
//	C   = C_a + C_b
//	RAT = min(RAT_a, RAT_b)
//
// with the two placement lists concatenated (never deduplicated — they
// come from disjoint subtrees). The cursor on whichever side produced
// the emitted minimum RAT advances; on a tie, the left side (a)
// advances, matching the source engine's tie-break.
//
// Merge does not prune its result; callers apply Prune after each
// pairwise step (see MergeAll).
func Merge(a, b Frontier) Frontier {
	out := make(Frontier, 0, len(a)+len(b))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ratA, ratB := a[i].RAT, b[j].RAT
		minRAT := ratA
		if ratB < minRAT {
			minRAT = ratB
		}

		out = append(out, Cand{
			C:          a[i].C + b[j].C,
			RAT:        minRAT,
			placements: concatPlacementLists(a[i].placements, b[j].placements),
		})

		if ratA == minRAT {
			i++
		} else {
			j++
		}
	}

	return out
}

// MergeAll folds Merge+Prune associatively across K >= 1 per-child
// frontiers. For K == 1 it returns the single child's frontier
// unchanged, matching the "merger returns the child's frontier
// unchanged" rule for unary nodes. Merge order does not affect the
// final (pruned) frontier, only tie-break bookkeeping along the way.
func MergeAll(frontiers []Frontier) Frontier {
	if len(frontiers) == 0 {
		return nil
	}

	result := frontiers[0]
	for _, f := range frontiers[1:] {
		result = Prune(Merge(result, f))
	}

	return result
}
