// Package i defines the service-layer contracts consumed by the API surface.
package i

import (
	"time"

	"github.com/google/uuid"
)

// SessionConfig describes a new search session: the board to generate, the
// start position, the strategy to run, and the minimum delay between steps.
type SessionConfig struct {
	Columns     int
	Rows        int
	Seed        int64
	WallMin     int
	WallMax     int
	StartColumn int
	StartRow    int
	Variant     string
	Heuristic   string
	StepDelay   time.Duration
}

// CellState describes one board cell for a renderer: its coordinates and its
// kind name ("floor", "wall", or "goal").
type CellState struct {
	Column int
	Row    int
	Kind   string
}

// CellMark identifies a cell whose search status changed, by coordinates.
type CellMark struct {
	Column int
	Row    int
}

// SearchState snapshots a session's progress for inspection.
type SearchState struct {
	Variant   string
	Finished  bool
	Exhausted bool
	Steps     int
	Elapsed   time.Duration
	Frontier  []CellMark
	Path      []CellMark
}

// SessionManager drives stepwise searches over generated boards on behalf of
// external consumers.
type SessionManager interface {
	// NewSession generates a board from the config, initializes the chosen
	// strategy, and returns the session's ID.
	NewSession(cfg SessionConfig) (uuid.UUID, error)

	// BoardCells returns every cell of the session's board for rendering.
	BoardCells(id uuid.UUID) ([]CellState, error)

	// Advance performs one search step, unless the session's step delay has
	// not elapsed since the previous step, and returns the resulting state.
	Advance(id uuid.UUID) (SearchState, error)

	// State returns the session's current state without stepping.
	State(id uuid.UUID) (SearchState, error)

	// Path returns the materialized final path. It fails while the search
	// has not finished.
	Path(id uuid.UUID) ([]CellMark, error)

	// NextMove pops one step of the final path as a direction name.
	NextMove(id uuid.UUID) (string, error)

	// Restart clears the session's search state and markings so the search
	// can re-plan over the same board.
	Restart(id uuid.UUID) error
}
