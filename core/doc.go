// Package core defines the tree-shaped data model shared by the tree
// builder and the Van Ginneken engine: the node sum type (Driver, Sink,
// Steiner), the rooted Tree itself, and the technology parameters
// (WireParams, BufferParams) a solve run is configured with.
//
// A Tree is built once by the tree package and then owned exclusively by
// the engine that walks it; core itself holds no mutation locks because a
// routing tree is never mutated concurrently with traversal.
package core
