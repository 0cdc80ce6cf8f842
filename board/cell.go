package board

import "fmt"

// Kind classifies a cell's walkability.
type Kind int

const (
	Floor Kind = iota // Floor is walkable; the default for every cell.
	Wall              // Wall blocks movement.
	Goal              // Goal is the walkable target cell; one per board after setup.
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Goal:
		return "goal"
	default:
		return "unknown"
	}
}

// Cell represents a single position on the board. Its coordinates are fixed at
// construction; only the kind changes, and only while the board is being set up.
// Search strategies never mutate cells.
type Cell struct {
	column int
	row    int
	kind   Kind
}

// NewCell creates a Floor cell at the given position.
func NewCell(column, row int) *Cell {
	return &Cell{column: column, row: row, kind: Floor}
}

// Column returns the cell's column index.
func (c *Cell) Column() int {
	return c.column
}

// Row returns the cell's row index.
func (c *Cell) Row() int {
	return c.row
}

// Kind returns the cell's current classification.
func (c *Cell) Kind() Kind {
	return c.kind
}

// SetKind reclassifies the cell. Intended for board setup only.
func (c *Cell) SetKind(k Kind) {
	c.kind = k
}

// ID returns the deterministic "column,row" key for the cell. It is stable
// across runs and usable as a map key independent of pointer identity.
func (c *Cell) ID() string {
	return fmt.Sprintf("%d,%d", c.column, c.row)
}
