// Package tree builds a rooted *core.Tree from a flat edge list and sink
// spec list, the way a routing tool's front end hands the Van Ginneken
// engine its input.
//
// Build treats the edge list as a set and performs a depth-first
// expansion from node id 0 (the driver), marking each edge used exactly
// once. No edge is reused and no cycle is followed. If any edge's start
// node is never reached this way, Build fails with an ErrMalformedTree
// error whose message names core.ErrUnreachableNode (see errors.go).
package tree
