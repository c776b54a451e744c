// Package vanginneken implements the Van Ginneken dynamic-programming
// engine for repeater (buffer) insertion on a routed signal tree.
//
// The engine propagates a frontier of non-inferior (C, RAT) candidates
// from sinks toward the driver. At each unit of wire it applies WireOp
// (an Elmore RC update) followed by an optional BufferOp (forking the
// frontier into a buffered and an unbuffered branch), pruning dominated
// candidates after every step so the otherwise-exponential branching
// stays polynomial. At branching nodes, per-child frontiers are joined
// by Merge. At the driver, a final mandatory buffer insertion narrows
// the frontier to the single best (C, RAT, placements) solution.
//
// Complexity: O(L * m log m) per edge of length L, where m is the size of
// the frontier being carried (sort-dominated pruning at every unit step),
// O(n log n) per merge of frontiers of total size n.
package vanginneken
