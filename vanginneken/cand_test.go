package vanginneken_test

import (
	"testing"

	"github.com/vgrepeater/vgrepeater/core"
	"github.com/vgrepeater/vgrepeater/vanginneken"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wireFreeBufferParams() core.BufferParams {
	return core.BufferParams{CIn: 1}
}

func TestNewCand_HasNoPlacements(t *testing.T) {
	c := vanginneken.NewCand(1, 2)

	assert.Equal(t, 1.0, c.C)
	assert.Equal(t, 2.0, c.RAT)
	assert.Empty(t, c.Placements())
}

func TestBufferOp_PlacementsAccumulateInOrder(t *testing.T) {
	// Three successive buffer insertions on a sink-seeded candidate must
	// be recorded oldest-first regardless of the persistent list's
	// newest-first internal layout.
	f := vanginneken.Frontier{vanginneken.NewCand(1, 10)}

	f = vanginneken.BufferOp(f, 0, 1, 1, wireFreeBufferParams())
	f = vanginneken.BufferOp(vanginneken.Frontier{f[1]}, 0, 1, 2, wireFreeBufferParams())
	f = vanginneken.BufferOp(vanginneken.Frontier{f[1]}, 0, 1, 3, wireFreeBufferParams())

	placements := f[1].Placements()
	require.Len(t, placements, 3)
	assert.Equal(t, 1, placements[0].LenFromChild)
	assert.Equal(t, 2, placements[1].LenFromChild)
	assert.Equal(t, 3, placements[2].LenFromChild)
}

func TestBufferOp_SiblingCandsDoNotShareMutations(t *testing.T) {
	base := vanginneken.Frontier{vanginneken.NewCand(1, 10)}

	branchA := vanginneken.BufferOp(base, 0, 1, 1, wireFreeBufferParams())
	branchB := vanginneken.BufferOp(branchA, 0, 2, 1, wireFreeBufferParams())

	// branchA's buffered Cand must be unaffected by further pushes made
	// while building branchB from it.
	assert.Len(t, branchA[1].Placements(), 1)
	assert.Len(t, branchB[1].Placements(), 1) // unbuffered copy of branchA[1]
	assert.Len(t, branchB[3].Placements(), 2) // buffered copy of branchA[1]
}
