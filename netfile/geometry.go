package netfile

// manhattan returns the L1 distance between two integer grid points.
func manhattan(a, b [2]int) int {
	return abs(a[0]-b[0]) + abs(a[1]-b[1])
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// reverseSegments returns points in reverse order, leaving the input
// untouched.
func reverseSegments(points [][2]int) [][2]int {
	out := make([][2]int, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}

	return out
}

// polylineLength sums the Manhattan distance between consecutive points
// of a routed polyline.
func polylineLength(points [][2]int) int {
	total := 0
	for i := 0; i+1 < len(points); i++ {
		total += manhattan(points[i], points[i+1])
	}

	return total
}

// splitFromEnd walks points (ordered start..end) backward from its last
// point and returns the coordinate dist units before the end, together
// with the two polylines the split produces: head (start..splitPoint)
// and tail (splitPoint..end). Each segment is assumed axis-aligned, as
// all routing segments in a net file are. dist is clamped to
// [0, polylineLength(points)].
func splitFromEnd(points [][2]int, dist int) (split [2]int, head, tail [][2]int) {
	if len(points) == 0 {
		return [2]int{}, nil, nil
	}
	if dist <= 0 {
		last := points[len(points)-1]

		return last, points, [][2]int{last}
	}

	remaining := dist
	for i := len(points) - 1; i > 0; i-- {
		a, b := points[i], points[i-1]
		segLen := manhattan(a, b)
		if remaining < segLen {
			split = interpolate(a, b, remaining)
			tail = append([][2]int{split}, points[i:]...)
			head = append(append([][2]int{}, points[:i]...), split)

			return split, head, tail
		}
		remaining -= segLen
	}

	// dist reaches (or exceeds) the start of the polyline.
	first := points[0]

	return first, [][2]int{first}, points
}

// interpolate returns the point dist units from a towards b along their
// shared axis (a and b are assumed to differ in exactly one coordinate).
func interpolate(a, b [2]int, dist int) [2]int {
	switch {
	case a[0] != b[0]:
		if b[0] > a[0] {
			return [2]int{a[0] + dist, a[1]}
		}

		return [2]int{a[0] - dist, a[1]}
	default:
		if b[1] > a[1] {
			return [2]int{a[0], a[1] + dist}
		}

		return [2]int{a[0], a[1] - dist}
	}
}
