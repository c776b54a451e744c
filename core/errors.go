package core

import "errors"

// Sentinel errors for the core tree model.
var (
	// ErrNoDriver indicates that no node with id 0 (the driver) was supplied.
	ErrNoDriver = errors.New("core: no driver node (id 0)")

	// ErrDuplicateEdge indicates the same edge id or (start,end) pair
	// appeared more than once in the input edge list.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrUnreachableNode indicates an edge referenced a start node that is
	// never reached from the driver by any other edge.
	ErrUnreachableNode = errors.New("core: unreachable node")

	// ErrNoSinks indicates the sink list was empty; a tree with no loads
	// has no RAT to optimize.
	ErrNoSinks = errors.New("core: zero sinks")

	// ErrNegativeLength indicates an edge carried a negative length.
	ErrNegativeLength = errors.New("core: negative edge length")
)
