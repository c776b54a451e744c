package tree

import (
	"fmt"

	"github.com/vgrepeater/vgrepeater/core"
)

// Build turns a flat edge list and sink list into a rooted *core.Tree.
//
// Node id 0 is reserved for the driver. Every SinkSpec.ID names a Sink
// leaf; every other id reached via an edge becomes a Steiner point. Build
// performs a depth-first expansion from id 0, consuming each edge exactly
// once in input order; an edge is only attached once its start id has
// already been reached. Any edge left unconsumed, any node reached twice,
// or a missing/empty driver or sink set is reported as ErrMalformedTree.
//
// Complexity: O(V*E) — for each attached node we scan the remaining edge
// list once; acceptable for the small per-net trees this engine targets.
func Build(edges []Edge, sinks []SinkSpec) (*core.Tree, error) {
	if len(sinks) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTree, core.ErrNoSinks)
	}

	sinkByID := make(map[int]SinkSpec, len(sinks))
	for _, s := range sinks {
		if _, dup := sinkByID[s.ID]; dup {
			return nil, fmt.Errorf("%w: %v: duplicate sink id %d", ErrMalformedTree, core.ErrDuplicateEdge, s.ID)
		}
		sinkByID[s.ID] = s
	}

	for _, e := range edges {
		if e.Length < 0 {
			return nil, fmt.Errorf("%w: %v: edge %d->%d len=%d", ErrMalformedTree, core.ErrNegativeLength, e.StartID, e.EndID, e.Length)
		}
	}

	root := &core.Node{ID: 0, Kind: core.KindDriver}
	byID := map[int]*core.Node{0: root}
	used := make([]bool, len(edges))

	if err := attach(root, edges, used, sinkByID, byID); err != nil {
		return nil, err
	}

	for i, e := range edges {
		if !used[i] {
			return nil, fmt.Errorf("%w: %v: edge %d->%d never reached from driver", ErrMalformedTree, core.ErrUnreachableNode, e.StartID, e.EndID)
		}
	}

	for id := range sinkByID {
		n, ok := byID[id]
		if !ok || n.Kind != core.KindSink {
			return nil, fmt.Errorf("%w: %v: sink %d not reachable from driver", ErrMalformedTree, core.ErrUnreachableNode, id)
		}
	}

	for _, n := range byID {
		if n.Kind != core.KindSink && n.IsLeaf() {
			return nil, fmt.Errorf("%w: %s node %d has no children", ErrMalformedTree, n.Kind, n.ID)
		}
	}

	return core.NewTree(root, byID), nil
}

// attach performs one level of the depth-first edge expansion rooted at
// node, consuming every not-yet-used edge whose start id equals node.ID,
// in input order, and recursing into each newly created child.
func attach(node *core.Node, edges []Edge, used []bool, sinkByID map[int]SinkSpec, byID map[int]*core.Node) error {
	for i, e := range edges {
		if used[i] || e.StartID != node.ID {
			continue
		}
		used[i] = true

		if _, exists := byID[e.EndID]; exists {
			return fmt.Errorf("%w: %v: node %d reached more than once", ErrMalformedTree, core.ErrDuplicateEdge, e.EndID)
		}

		child := newNode(e.EndID, sinkByID)
		byID[e.EndID] = child
		node.Children = append(node.Children, core.Child{Node: child, Length: e.Length})

		if err := attach(child, edges, used, sinkByID, byID); err != nil {
			return err
		}
	}

	return nil
}

// newNode creates a Sink node if id names one of the supplied sinks,
// otherwise a Steiner node.
func newNode(id int, sinkByID map[int]SinkSpec) *core.Node {
	if s, ok := sinkByID[id]; ok {
		return &core.Node{ID: id, Kind: core.KindSink, CLoad: s.CLoad, RAT: s.RAT}
	}

	return &core.Node{ID: id, Kind: core.KindSteiner}
}
