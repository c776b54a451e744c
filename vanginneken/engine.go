package vanginneken

import (
	"github.com/vgrepeater/vgrepeater/core"
)

// Logger is the minimal sink the engine reports its progress to. It is
// satisfied structurally by internal/vglog.Logger; callers that don't
// care about diagnostics simply omit WithLogger and nothing is logged.
type Logger interface {
	Debug(msg string, args ...interface{})
}

// Solution is the answer Solve returns: the maximal RAT achievable at
// the driver, the downstream capacitance of the winning candidate, and
// the concrete buffer placements that achieve it.
type Solution struct {
	RAT        float64
	C          float64
	Placements []BufPlace
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a diagnostic sink. A nil Engine logger (the
// default) is a no-op.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// Engine runs the Van Ginneken post-order traversal over a single
// *core.Tree. An Engine holds no per-tree state between calls to Solve;
// it exists only to carry cross-cutting options (currently just a
// logger).
type Engine struct {
	logger Logger
}

// NewEngine constructs an Engine with the given options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Solve is a convenience wrapper around NewEngine(opts...).Solve(...).
func Solve(tr *core.Tree, wp core.WireParams, bp core.BufferParams, opts ...Option) (Solution, error) {
	return NewEngine(opts...).Solve(tr, wp, bp)
}

// Solve runs the post-order Van Ginneken traversal rooted at tr.Root and
// returns the single surviving driver-side candidate with maximal RAT.
//
// Preconditions (checked): tr non-nil, tr.Root non-nil and a Driver
// node. Every other structural property (connectivity, acyclicity, one
// Sink per leaf) is the responsibility of the tree package's Build and
// is assumed to hold here.
func (e *Engine) Solve(tr *core.Tree, wp core.WireParams, bp core.BufferParams) (Solution, error) {
	if tr == nil {
		return Solution{}, ErrNilTree
	}
	if tr.Root == nil {
		return Solution{}, ErrNoRoot
	}
	if tr.Root.Kind != core.KindDriver {
		return Solution{}, ErrRootNotDriver
	}

	e.logf("solving tree with %d nodes", tr.Len())

	merged := e.solveNode(tr.Root, wp, bp)
	assertNonEmpty(merged, "driver-side merge")

	// Driver buffer rule: a buffer at the driver is mandatory. Apply it
	// once more and keep only the branch that actually inserted one.
	withDriverBuf := BufferOp(merged, 0, 0, 0, bp)
	driverPlace := BufPlace{ParentID: 0, ChildID: 0, LenFromChild: 0}
	filtered := make(Frontier, 0, len(withDriverBuf))
	for _, c := range withDriverBuf {
		if last, ok := c.placements.last(); ok && last == driverPlace {
			filtered = append(filtered, c)
		}
	}
	filtered = Prune(filtered)
	assertNonEmpty(filtered, "final driver buffer filter")

	best := filtered[0]
	for _, c := range filtered[1:] {
		if c.RAT > best.RAT {
			best = c
		}
	}

	e.logf("solved: RAT=%v C=%v buffers=%d", best.RAT, best.C, len(best.Placements()))

	return Solution{RAT: best.RAT, C: best.C, Placements: best.Placements()}, nil
}

// solveNode recursively computes the pruned frontier at node, walking
// each child edge with WireOp/BufferOp/Prune at every unit step and
// merging all per-child frontiers together.
func (e *Engine) solveNode(node *core.Node, wp core.WireParams, bp core.BufferParams) Frontier {
	if node.Kind == core.KindSink {
		f := Frontier{NewCand(node.CLoad, node.RAT)}
		assertNonEmpty(f, "sink seed")

		return f
	}

	childFrontiers := make([]Frontier, 0, len(node.Children))
	for _, ch := range node.Children {
		cf := e.solveNode(ch.Node, wp, bp)
		cf = walkEdge(cf, node.ID, ch.Node, ch.Length, wp, bp)
		childFrontiers = append(childFrontiers, cf)
	}

	return MergeAll(childFrontiers)
}

// walkEdge carries a child's frontier across the edge (parentID,
// child.ID) of the given length, one unit at a time, per the spec's
// offset convention: a sink-terminated edge tries buffer offsets
// 1..length; any other (Steiner) edge tries offsets 0..length-1. A
// zero-length edge is the degenerate case of buffers stacked directly
// at a node: only a single offset-0 BufferOp+Prune is applied.
func walkEdge(f Frontier, parentID int, child *core.Node, length int, wp core.WireParams, bp core.BufferParams) Frontier {
	if length == 0 {
		return Prune(BufferOp(f, parentID, child.ID, 0, bp))
	}

	startK := 0
	if child.Kind == core.KindSink {
		startK = 1
	}

	for i := 0; i < length; i++ {
		f = WireOp(f, wp)
		f = BufferOp(f, parentID, child.ID, startK+i, bp)
		f = Prune(f)
	}

	return f
}

// assertNonEmpty enforces the invariant that a frontier is never empty
// by construction (every sink contributes at least one Cand, and Prune
// never deletes the last survivor of a non-empty input). A violation
// indicates a bug in the engine itself, not bad input, so it panics
// rather than surfacing as a caller-recoverable error.
func assertNonEmpty(f Frontier, where string) {
	if len(f) == 0 {
		panic("vanginneken: empty frontier at " + where + " — violates engine invariant")
	}
}

func (e *Engine) logf(msg string, args ...interface{}) {
	if e.logger == nil {
		return
	}
	e.logger.Debug(msg, args...)
}
