// Package vgrepeater implements Van Ginneken's dynamic-programming
// algorithm for repeater (buffer) insertion on a routed signal tree.
//
// The module is organized as:
//
//	core/       — tree node/edge types and per-node electrical parameters
//	tree/       — builds a core.Tree from a flat edge list
//	vanginneken/ — the DP engine: WireOp, BufferOp, Prune, Merge, Solve
//	netfile/    — JSON technology/net file parsing and result writing
//	internal/vglog/    — leveled logger
//	internal/vgconfig/ — viper-backed configuration
//	cmd/vgrepeater/    — the CLI entry point
package vgrepeater
