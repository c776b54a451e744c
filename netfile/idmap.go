package netfile

import (
	"fmt"

	"github.com/vgrepeater/vgrepeater/core"
	"github.com/vgrepeater/vgrepeater/tree"
)

// BuildTree assigns internal ids to every parsed node — driver gets 0,
// terminal ("t") nodes get 1..N in input order, everything else
// (Steiner/routing points) gets N+1..N+M in input order — and builds a
// *core.Tree from the translated edge list, returning the id mapping so
// callers can translate a solution's BufPlaces back to external ids for
// WriteResult.
func (nf *NetFile) BuildTree() (*core.Tree, IDMap, error) {
	idmap := IDMap{ToExternal: map[int]int{}, ToInternal: map[int]int{}}

	var driverExt int
	haveDriver := false
	var sinks []Node
	var steiners []Node
	for _, n := range nf.Nodes {
		switch n.Type {
		case "b":
			if haveDriver {
				return nil, IDMap{}, fmt.Errorf("%w: more than one driver node (type \"b\")", ErrInvalidInput)
			}
			driverExt = n.ExternalID
			haveDriver = true
		case "t":
			sinks = append(sinks, n)
		default:
			steiners = append(steiners, n)
		}
	}
	if !haveDriver {
		return nil, IDMap{}, fmt.Errorf("%w: %v", ErrInvalidInput, core.ErrNoDriver)
	}

	idmap.ToInternal[driverExt] = 0
	idmap.ToExternal[0] = driverExt

	next := 1
	for _, s := range sinks {
		if _, dup := idmap.ToInternal[s.ExternalID]; dup {
			return nil, IDMap{}, fmt.Errorf("%w: duplicate node id %d", ErrInvalidInput, s.ExternalID)
		}
		idmap.ToInternal[s.ExternalID] = next
		idmap.ToExternal[next] = s.ExternalID
		next++
	}
	for _, s := range steiners {
		if _, dup := idmap.ToInternal[s.ExternalID]; dup {
			return nil, IDMap{}, fmt.Errorf("%w: duplicate node id %d", ErrInvalidInput, s.ExternalID)
		}
		idmap.ToInternal[s.ExternalID] = next
		idmap.ToExternal[next] = s.ExternalID
		next++
	}

	// Net files list edges with arbitrary (not necessarily driver-outward)
	// vertex order, but tree.Build expects StartID to always be the
	// already-reached (parent) side. Canonicalize direction with a BFS
	// from the driver over the undirected adjacency.
	type neighbor struct {
		id     int
		length int
	}
	adj := map[int][]neighbor{}
	for _, e := range nf.Edges {
		startInt, ok := idmap.ToInternal[e.StartExternalID]
		if !ok {
			return nil, IDMap{}, fmt.Errorf("%w: edge references unknown node %d", ErrInvalidInput, e.StartExternalID)
		}
		endInt, ok := idmap.ToInternal[e.EndExternalID]
		if !ok {
			return nil, IDMap{}, fmt.Errorf("%w: edge references unknown node %d", ErrInvalidInput, e.EndExternalID)
		}
		adj[startInt] = append(adj[startInt], neighbor{endInt, e.Length})
		adj[endInt] = append(adj[endInt], neighbor{startInt, e.Length})
	}

	edges := make([]tree.Edge, 0, len(nf.Edges))
	visited := map[int]bool{0: true}
	queue := []int{0}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, nb := range adj[u] {
			if visited[nb.id] {
				continue
			}
			visited[nb.id] = true
			edges = append(edges, tree.Edge{StartID: u, EndID: nb.id, Length: nb.length})
			queue = append(queue, nb.id)
		}
	}

	sinkSpecs := make([]tree.SinkSpec, 0, len(sinks))
	for _, s := range sinks {
		sinkSpecs = append(sinkSpecs, tree.SinkSpec{ID: idmap.ToInternal[s.ExternalID], CLoad: s.Capacitance, RAT: s.RAT})
	}

	tr, err := tree.Build(edges, sinkSpecs)
	if err != nil {
		return nil, IDMap{}, err
	}

	return tr, idmap, nil
}
