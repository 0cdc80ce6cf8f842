/*
Package board provides the rectangular grid a search runs over.

A Board owns a dense collection of cells and its own pseudo-random source.
Setup reseeds that source explicitly, so identical seeds and dimensions always
reproduce the same wall and goal placement. The neighbor query returns the four
adjacent slots in a fixed Up, Left, Down, Right order; search strategies rely
on that order for reproducible tie-breaking.
*/
package board

import (
	"errors"
	"fmt"
	"math/rand"
)

// Board-related errors.
var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidWallRange  = errors.New("invalid wall count range")
	ErrGoalNotFound      = errors.New("board has no goal cell")
)

// WallRange bounds how many walls Setup places. Min is inclusive, Max
// exclusive. Max must leave at least one Floor cell for the goal.
type WallRange struct {
	Min int
	Max int
}

// Neighbor slot indices in the fixed expansion order.
const (
	SlotUp = iota
	SlotLeft
	SlotDown
	SlotRight

	numSlots
)

// Board is a fixed-size grid of cells. It is created once per session and
// re-seeded through Setup; it is never resized.
type Board struct {
	numColumns int
	numRows    int
	grid       [][]*Cell // indexed [column][row]
	rng        *rand.Rand
}

// New allocates a board of the given dimensions with every cell set to Floor.
func New(numColumns, numRows int) (*Board, error) {
	if numColumns <= 0 || numRows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, numColumns, numRows)
	}

	grid := make([][]*Cell, numColumns)
	for column := range grid {
		grid[column] = make([]*Cell, numRows)
		for row := range grid[column] {
			grid[column][row] = NewCell(column, row)
		}
	}

	return &Board{
		numColumns: numColumns,
		numRows:    numRows,
		grid:       grid,
	}, nil
}

// NumColumns returns the board width.
func (b *Board) NumColumns() int {
	return b.numColumns
}

// NumRows returns the board height.
func (b *Board) NumRows() int {
	return b.numRows
}

// CellAt returns the cell at (column, row), or nil when the position is
// outside the board.
func (b *Board) CellAt(column, row int) *Cell {
	if column < 0 || column >= b.numColumns || row < 0 || row >= b.numRows {
		return nil
	}
	return b.grid[column][row]
}

// Setup reseeds the board's random source with seed, resets every cell to
// Floor, places a wall count drawn uniformly from walls, and finally marks one
// random Floor cell as the goal. Identical seed, dimensions, and range always
// produce an identical board.
func (b *Board) Setup(seed int64, walls WallRange) error {
	if walls.Min < 0 || walls.Min >= walls.Max {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidWallRange, walls.Min, walls.Max)
	}
	if walls.Max > b.numColumns*b.numRows {
		return fmt.Errorf("%w: max %d leaves no floor cell on a %dx%d board",
			ErrInvalidWallRange, walls.Max, b.numColumns, b.numRows)
	}

	b.rng = rand.New(rand.NewSource(seed))

	for column := range b.grid {
		for row := range b.grid[column] {
			b.grid[column][row].SetKind(Floor)
		}
	}

	count := walls.Min + b.rng.Intn(walls.Max-walls.Min)
	for placed := 0; placed < count; {
		cell := b.randomCell()
		if cell.Kind() == Wall {
			continue
		}
		cell.SetKind(Wall)
		placed++
	}

	for {
		cell := b.randomCell()
		if cell.Kind() != Floor {
			continue
		}
		cell.SetKind(Goal)
		break
	}

	return nil
}

// randomCell picks a uniformly random cell from the grid.
func (b *Board) randomCell() *Cell {
	return b.grid[b.rng.Intn(b.numColumns)][b.rng.Intn(b.numRows)]
}

// WalkableNeighbors returns the four cells adjacent to c in Up, Left, Down,
// Right order. A slot holds nil when it falls outside the board or is a Wall;
// callers always get a four-slot result so the expansion order stays explicit.
func (b *Board) WalkableNeighbors(c *Cell) []*Cell {
	deltas := [numSlots]struct{ dColumn, dRow int }{
		SlotUp:    {0, -1},
		SlotLeft:  {-1, 0},
		SlotDown:  {0, 1},
		SlotRight: {1, 0},
	}

	neighbors := make([]*Cell, numSlots)
	for slot, d := range deltas {
		n := b.CellAt(c.Column()+d.dColumn, c.Row()+d.dRow)
		if n == nil || n.Kind() == Wall {
			continue
		}
		neighbors[slot] = n
	}
	return neighbors
}

// Goal returns the unique goal cell. It fails with ErrGoalNotFound when Setup
// has not run or no cell carries the Goal kind.
func (b *Board) Goal() (*Cell, error) {
	for column := range b.grid {
		for row := range b.grid[column] {
			if b.grid[column][row].Kind() == Goal {
				return b.grid[column][row], nil
			}
		}
	}
	return nil, ErrGoalNotFound
}
