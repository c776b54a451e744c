// Package netfile ingests the two JSON files a vgrepeater run is driven
// by — a technology file describing wire and buffer electrical
// parameters, and a net file describing one routed signal tree as a
// node/edge graph with Manhattan polyline geometry — and regenerates the
// net file with buffer nodes spliced in once a solution is found.
//
// The node/edge JSON shape and the "driver node has type b, terminal
// nodes have type t" convention are carried over unchanged from the
// format the original VLSI tool consumed.
package netfile
