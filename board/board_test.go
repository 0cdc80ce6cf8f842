package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("allocates all cells as floor", func(t *testing.T) {
		b, err := New(4, 3)
		require.NoError(t, err)

		assert.Equal(t, 4, b.NumColumns())
		assert.Equal(t, 3, b.NumRows())
		for column := 0; column < 4; column++ {
			for row := 0; row < 3; row++ {
				cell := b.CellAt(column, row)
				require.NotNil(t, cell)
				assert.Equal(t, Floor, cell.Kind())
				assert.Equal(t, column, cell.Column())
				assert.Equal(t, row, cell.Row())
			}
		}
	})

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := New(0, 3)
		assert.ErrorIs(t, err, ErrInvalidDimensions)

		_, err = New(4, -1)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestCellAt(t *testing.T) {
	b, err := New(3, 3)
	require.NoError(t, err)

	assert.NotNil(t, b.CellAt(2, 2))
	assert.Nil(t, b.CellAt(-1, 0))
	assert.Nil(t, b.CellAt(0, 3))
	assert.Nil(t, b.CellAt(3, 0))
}

func TestCellID(t *testing.T) {
	b, err := New(3, 3)
	require.NoError(t, err)

	assert.Equal(t, "2,1", b.CellAt(2, 1).ID())
	assert.NotEqual(t, b.CellAt(1, 2).ID(), b.CellAt(2, 1).ID())
}

func TestSetup(t *testing.T) {
	t.Run("same seed reproduces the same board", func(t *testing.T) {
		first, err := New(8, 8)
		require.NoError(t, err)
		second, err := New(8, 8)
		require.NoError(t, err)

		walls := WallRange{Min: 5, Max: 15}
		require.NoError(t, first.Setup(42, walls))
		require.NoError(t, second.Setup(42, walls))

		for column := 0; column < 8; column++ {
			for row := 0; row < 8; row++ {
				assert.Equal(t, first.CellAt(column, row).Kind(), second.CellAt(column, row).Kind())
			}
		}
	})

	t.Run("wall count stays within range and exactly one goal exists", func(t *testing.T) {
		b, err := New(8, 8)
		require.NoError(t, err)
		require.NoError(t, b.Setup(7, WallRange{Min: 5, Max: 15}))

		wallCount, goalCount := 0, 0
		for column := 0; column < 8; column++ {
			for row := 0; row < 8; row++ {
				switch b.CellAt(column, row).Kind() {
				case Wall:
					wallCount++
				case Goal:
					goalCount++
				}
			}
		}
		assert.GreaterOrEqual(t, wallCount, 5)
		assert.Less(t, wallCount, 15)
		assert.Equal(t, 1, goalCount)
	})

	t.Run("re-running setup resets previous walls and goal", func(t *testing.T) {
		b, err := New(6, 6)
		require.NoError(t, err)
		require.NoError(t, b.Setup(1, WallRange{Min: 10, Max: 20}))
		require.NoError(t, b.Setup(2, WallRange{Min: 0, Max: 1}))

		wallCount, goalCount := 0, 0
		for column := 0; column < 6; column++ {
			for row := 0; row < 6; row++ {
				switch b.CellAt(column, row).Kind() {
				case Wall:
					wallCount++
				case Goal:
					goalCount++
				}
			}
		}
		assert.Zero(t, wallCount)
		assert.Equal(t, 1, goalCount)
	})

	t.Run("rejects invalid wall ranges", func(t *testing.T) {
		b, err := New(3, 3)
		require.NoError(t, err)

		assert.ErrorIs(t, b.Setup(1, WallRange{Min: 5, Max: 5}), ErrInvalidWallRange)
		assert.ErrorIs(t, b.Setup(1, WallRange{Min: -1, Max: 3}), ErrInvalidWallRange)
		assert.ErrorIs(t, b.Setup(1, WallRange{Min: 0, Max: 10}), ErrInvalidWallRange)
	})
}

func TestWalkableNeighbors(t *testing.T) {
	b, err := New(3, 3)
	require.NoError(t, err)

	t.Run("keeps the fixed up-left-down-right order", func(t *testing.T) {
		neighbors := b.WalkableNeighbors(b.CellAt(1, 1))
		require.Len(t, neighbors, 4)

		assert.Same(t, b.CellAt(1, 0), neighbors[SlotUp])
		assert.Same(t, b.CellAt(0, 1), neighbors[SlotLeft])
		assert.Same(t, b.CellAt(1, 2), neighbors[SlotDown])
		assert.Same(t, b.CellAt(2, 1), neighbors[SlotRight])
	})

	t.Run("out-of-bounds slots are nil", func(t *testing.T) {
		neighbors := b.WalkableNeighbors(b.CellAt(0, 0))
		require.Len(t, neighbors, 4)

		assert.Nil(t, neighbors[SlotUp])
		assert.Nil(t, neighbors[SlotLeft])
		assert.Same(t, b.CellAt(0, 1), neighbors[SlotDown])
		assert.Same(t, b.CellAt(1, 0), neighbors[SlotRight])
	})

	t.Run("wall slots are nil", func(t *testing.T) {
		b.CellAt(1, 0).SetKind(Wall)
		defer b.CellAt(1, 0).SetKind(Floor)

		neighbors := b.WalkableNeighbors(b.CellAt(1, 1))
		assert.Nil(t, neighbors[SlotUp])
		assert.NotNil(t, neighbors[SlotLeft])
	})
}

func TestGoal(t *testing.T) {
	t.Run("fails before setup", func(t *testing.T) {
		b, err := New(3, 3)
		require.NoError(t, err)

		_, err = b.Goal()
		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("returns the goal cell after setup", func(t *testing.T) {
		b, err := New(3, 3)
		require.NoError(t, err)
		require.NoError(t, b.Setup(3, WallRange{Min: 0, Max: 2}))

		goal, err := b.Goal()
		require.NoError(t, err)
		assert.Equal(t, Goal, goal.Kind())
	})
}
