package search

import (
	"testing"

	"github.com/abenezer-t/gridseek-api/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionBetween(t *testing.T) {
	b, err := board.New(5, 5)
	require.NoError(t, err)
	center := b.CellAt(2, 2)

	t.Run("cardinal moves", func(t *testing.T) {
		assert.Equal(t, DirectionUp, directionBetween(center, b.CellAt(2, 1)))
		assert.Equal(t, DirectionDown, directionBetween(center, b.CellAt(2, 3)))
		assert.Equal(t, DirectionLeft, directionBetween(center, b.CellAt(1, 2)))
		assert.Equal(t, DirectionRight, directionBetween(center, b.CellAt(3, 2)))
	})

	t.Run("larger axis wins", func(t *testing.T) {
		assert.Equal(t, DirectionDown, directionBetween(center, b.CellAt(3, 4)))
		assert.Equal(t, DirectionRight, directionBetween(center, b.CellAt(4, 3)))
	})

	t.Run("equal deltas default to vertical", func(t *testing.T) {
		assert.Equal(t, DirectionDown, directionBetween(center, b.CellAt(4, 4)))
		assert.Equal(t, DirectionUp, directionBetween(center, b.CellAt(0, 0)))
	})

	t.Run("same cell has no direction", func(t *testing.T) {
		assert.Equal(t, DirectionNone, directionBetween(center, center))
	})
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", DirectionUp.String())
	assert.Equal(t, "down", DirectionDown.String())
	assert.Equal(t, "left", DirectionLeft.String())
	assert.Equal(t, "right", DirectionRight.String())
	assert.Equal(t, "none", DirectionNone.String())
}

func TestChainFromParents(t *testing.T) {
	b, err := board.New(3, 1)
	require.NoError(t, err)
	start, middle, goal := b.CellAt(0, 0), b.CellAt(1, 0), b.CellAt(2, 0)

	t.Run("reorders the walk from start to goal", func(t *testing.T) {
		parents := map[string]*board.Cell{
			goal.ID():   middle,
			middle.ID(): start,
		}
		chain := chainFromParents(parents, start, goal)
		assert.Equal(t, []*board.Cell{middle, goal}, chain)
	})

	t.Run("start equals goal yields an empty chain", func(t *testing.T) {
		assert.Empty(t, chainFromParents(map[string]*board.Cell{}, start, start))
	})
}

func TestNextMoveReportsDirections(t *testing.T) {
	// A straight corridor: every dispensed move must be Right.
	b, err := board.New(4, 1)
	require.NoError(t, err)
	b.CellAt(3, 0).SetKind(board.Goal)

	s := NewBFS()
	require.NoError(t, s.Initialize(b.CellAt(0, 0), b.CellAt(3, 0)))
	runToTerminal(t, s, b)
	require.True(t, s.IsFinished())
	require.Len(t, s.ReconstructPath(), 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, DirectionRight, s.NextMove())
	}
	assert.Equal(t, DirectionNone, s.NextMove())
}
