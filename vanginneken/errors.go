package vanginneken

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNilTree indicates a nil *core.Tree was passed to Solve.
	ErrNilTree = errors.New("vanginneken: tree is nil")

	// ErrNoRoot indicates the tree has no root node.
	ErrNoRoot = errors.New("vanginneken: tree has no root")

	// ErrRootNotDriver indicates the tree's root is not a Driver node.
	ErrRootNotDriver = errors.New("vanginneken: tree root is not a driver")
)
