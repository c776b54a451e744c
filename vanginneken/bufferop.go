package vanginneken

import "github.com/vgrepeater/vgrepeater/core"

// BufferOp considers inserting a buffer at the point (parentID, childID,
// lenFromChild) of the tree. It returns the union of the frontier
// unchanged (no buffer) and, for every Cand in it, a new Cand with the
// buffer's drive delay applied and its load replaced by the buffer's own
// input capacitance:
//
//	RAT' = RAT - R_drive*C - IntrinsicDelay
//	C'   = C_in
//
// BufferOp at most doubles the frontier's cardinality.
func BufferOp(f Frontier, parentID, childID, lenFromChild int, bp core.BufferParams) Frontier {
	out := make(Frontier, len(f), len(f)*2)
	copy(out, f)

	place := BufPlace{ParentID: parentID, ChildID: childID, LenFromChild: lenFromChild}
	for _, c := range f {
		out = append(out, Cand{
			C:          bp.CIn,
			RAT:        c.RAT - bp.RDrive*c.C - bp.IntrinsicDelay,
			placements: c.placements.push(place),
		})
	}

	return out
}
