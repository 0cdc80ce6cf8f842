package search

import (
	"testing"

	"github.com/abenezer-t/gridseek-api/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFSExploresRightFirst(t *testing.T) {
	// Neighbors are pushed Up, Left, Down, Right, so the LIFO frontier pops
	// the Right neighbor before the Down one.
	b, err := board.New(3, 3)
	require.NoError(t, err)
	b.CellAt(2, 2).SetKind(board.Goal)

	s := NewDFS()
	require.NoError(t, s.Initialize(b.CellAt(0, 0), b.CellAt(2, 2)))

	s.Advance(b)
	s.Advance(b)

	assert.True(t, s.visited["1,0"], "right neighbor should be expanded second")
	assert.False(t, s.visited["0,1"], "down neighbor should still be on the stack")
}

func TestDFSLazyVisitedCheckKeepsLatestParent(t *testing.T) {
	// The goal at the board center gets pushed by several different parents
	// before it is finally popped. Because the visited check happens on pop
	// and each push overwrites the parent, the route follows the most
	// recent push: on an open 3x3 board that is the snake through every
	// outer cell, not the 2-hop shortcut.
	b, err := board.New(3, 3)
	require.NoError(t, err)
	b.CellAt(1, 1).SetKind(board.Goal)

	s := NewDFS()
	require.NoError(t, s.Initialize(b.CellAt(0, 0), b.CellAt(1, 1)))
	steps := runToTerminal(t, s, b)

	require.True(t, s.IsFinished())
	assert.Equal(t, 9, steps)

	path := s.ReconstructPath()
	require.Len(t, path, 8)
	assert.Same(t, b.CellAt(0, 1), path[len(path)-2], "goal should be entered from its latest parent")
}

func TestDFSStalePopConsumesAStep(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)
	b.CellAt(1, 1).SetKind(board.Goal)

	s := NewDFS()
	require.NoError(t, s.Initialize(b.CellAt(0, 0), b.CellAt(1, 1)))

	// Duplicate pushes of the center cell leave stale entries behind; the
	// run above finishing in more steps than cells proves pops of stale
	// entries still count as steps elsewhere. Here we only pin that the
	// search stays deterministic across a restart.
	first := runToTerminal(t, s, b)
	s.Restart(b)
	second := runToTerminal(t, s, b)
	assert.Equal(t, first, second)
}
