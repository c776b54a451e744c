package netfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolylineLength(t *testing.T) {
	pts := [][2]int{{0, 0}, {5, 0}, {5, 3}}
	assert.Equal(t, 8, polylineLength(pts))
}

func TestSplitFromEnd_WithinLastSegment(t *testing.T) {
	pts := [][2]int{{0, 0}, {5, 0}, {5, 3}}

	split, head, tail := splitFromEnd(pts, 1)

	assert.Equal(t, [2]int{5, 2}, split)
	assert.Equal(t, [][2]int{{0, 0}, {5, 0}, {5, 2}}, head)
	assert.Equal(t, [][2]int{{5, 2}, {5, 3}}, tail)
}

func TestSplitFromEnd_CrossesSegmentBoundary(t *testing.T) {
	pts := [][2]int{{0, 0}, {5, 0}, {5, 3}}

	split, head, tail := splitFromEnd(pts, 4)

	assert.Equal(t, [2]int{4, 0}, split) // 4 units back from (5,3): 3 up the vertical leg, 1 along the horizontal one
	assert.Equal(t, [][2]int{{0, 0}, {4, 0}}, head)
	assert.Equal(t, [][2]int{{4, 0}, {5, 0}, {5, 3}}, tail)
}

func TestSplitFromEnd_ZeroDistance(t *testing.T) {
	pts := [][2]int{{0, 0}, {5, 0}}

	split, head, tail := splitFromEnd(pts, 0)

	assert.Equal(t, [2]int{5, 0}, split)
	assert.Equal(t, pts, head)
	assert.Equal(t, [][2]int{{5, 0}}, tail)
}

func TestSplitFromEnd_ExceedsLength(t *testing.T) {
	pts := [][2]int{{0, 0}, {5, 0}}

	split, head, _ := splitFromEnd(pts, 100)

	assert.Equal(t, [2]int{0, 0}, split)
	assert.Equal(t, [][2]int{{0, 0}}, head)
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 8, manhattan([2]int{0, 0}, [2]int{5, 3}))
}
