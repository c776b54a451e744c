package vanginneken

// BufPlace records one committed buffer insertion: a buffer sits on edge
// (ParentID, ChildID) at LenFromChild unit-length steps from the child
// end of that edge.
type BufPlace struct {
	ParentID     int
	ChildID      int
	LenFromChild int
}

// placementNode is one cons cell of a persistent, singly-linked
// placement list. Sharing cells across Cand copies is what keeps WireOp
// and BufferOp O(1) per candidate even though a Cand's placement list
// can grow to the height of the tree: appending never mutates an
// existing list, it only prepends a new head that points at the old one.
type placementNode struct {
	place BufPlace
	prev  *placementNode
}

// placementList is a persistent list of BufPlace, newest-first
// internally. It is a value type (just a head pointer and a length) so
// copying a Cand is O(1) and never aliases another Cand's mutations —
// there are none, since push never writes through prev.
type placementList struct {
	head *placementNode
	n    int
}

// push returns a new placementList with p appended to the end (i.e.
// placed after everything already recorded), without modifying the
// receiver. The original subtree's list keeps working for any sibling
// Cand built from the same earlier frontier.
func (l placementList) push(p BufPlace) placementList {
	return placementList{head: &placementNode{place: p, prev: l.head}, n: l.n + 1}
}

// last returns the most recently pushed placement, if any.
func (l placementList) last() (BufPlace, bool) {
	if l.head == nil {
		return BufPlace{}, false
	}

	return l.head.place, true
}

// slice materializes the list in insertion order (oldest first).
func (l placementList) slice() []BufPlace {
	out := make([]BufPlace, l.n)
	node := l.head
	for i := l.n - 1; i >= 0; i-- {
		out[i] = node.place
		node = node.prev
	}

	return out
}

// concatPlacementLists returns a list yielding a's elements followed by
// b's elements, in order. Because a persistent singly-linked list can
// only share a common *tail*, not be spliced onto an unrelated list
// without copying, this rebuilds on top of a by replaying b's elements —
// O(len(b)), same as the naive list-concatenation the original C++
// engine performs, but it leaves both a and b untouched so any other
// Cand still referencing them is unaffected.
func concatPlacementLists(a, b placementList) placementList {
	if b.n == 0 {
		return a
	}
	if a.n == 0 {
		return b
	}

	out := a
	for _, p := range b.slice() {
		out = out.push(p)
	}

	return out
}

// Cand is one frontier candidate: the downstream capacitance C and
// required-arrival-time RAT seen looking into the subtree from this
// point, plus the ordered list of buffer insertions already committed
// below it. Cand is a plain value — copying one copies C and RAT by
// value and shares (never mutates) the underlying placement cells, so
// there is no shared mutable state between Cands.
type Cand struct {
	C          float64
	RAT        float64
	placements placementList
}

// NewCand seeds a single-point frontier candidate at a sink: the
// sink's own load capacitance and RAT, with no placements yet.
func NewCand(c, rat float64) Cand {
	return Cand{C: c, RAT: rat}
}

// Placements returns the ordered list of buffer insertions committed in
// the subtree rooted below this candidate.
func (c Cand) Placements() []BufPlace {
	return c.placements.slice()
}

// Frontier is an unordered set of non-inferior Cands at a given point of
// the tree. Prune restores the dominance invariant after any operation
// that may have broken it.
type Frontier []Cand
