package vanginneken

import "github.com/vgrepeater/vgrepeater/core"

// WireOp extends every Cand of a frontier across one unit of wire,
// applying the Elmore delay update:
//
//	RAT' = RAT - (R_wire*C_wire)/2 - R_wire*C
//	C'   = C + C_wire
//
// Placement lists are unchanged. WireOp preserves frontier cardinality.
func WireOp(f Frontier, wp core.WireParams) Frontier {
	out := make(Frontier, len(f))
	for i, c := range f {
		out[i] = Cand{
			C:          c.C + wp.CPerUnit,
			RAT:        c.RAT - (wp.RPerUnit*wp.CPerUnit)/2 - wp.RPerUnit*c.C,
			placements: c.placements,
		}
	}

	return out
}
