package netfile

import "errors"

var (
	// ErrInvalidInput is returned for structurally-present-but-wrong JSON:
	// a missing driver node, a field of the wrong type, duplicate node ids.
	ErrInvalidInput = errors.New("netfile: invalid input")

	// ErrIOFailure wraps a failure to open/read/write a file on disk.
	ErrIOFailure = errors.New("netfile: io failure")
)
