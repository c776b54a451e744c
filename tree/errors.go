package tree

import "errors"

// ErrMalformedTree is returned by Build whenever the supplied edges and
// sinks do not form a single tree rooted at id 0: unreachable nodes,
// duplicate edges, cycles, or a missing driver/sink set. Use errors.Is to
// detect this condition. The more specific core sentinel that caused it
// is formatted into the error message with %v and is not wrapped, so
// errors.Is against a core sentinel does not match.
var ErrMalformedTree = errors.New("tree: malformed tree")
