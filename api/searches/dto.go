// Package searchapi exposes search sessions over HTTP for inspection and
// visualization.
package searchapi

// CreateSessionRequest asks for a new board and search session. Board
// dimensions, wall bounds, and the step delay fall back to the configured
// defaults when omitted.
type CreateSessionRequest struct {
	Columns     int    `json:"columns"`
	Rows        int    `json:"rows"`
	Seed        int64  `json:"seed"`
	WallMin     int    `json:"wall_min"`
	WallMax     int    `json:"wall_max"`
	StartColumn int    `json:"start_column"`
	StartRow    int    `json:"start_row"`
	Variant     string `json:"variant" binding:"required"`
	Heuristic   string `json:"heuristic"`
	StepDelayMS int    `json:"step_delay_ms"`
}

// CreateSessionResponse carries the new session's ID.
type CreateSessionResponse struct {
	ID string `json:"id"`
}

// CellStateResponse describes one board cell for a renderer.
type CellStateResponse struct {
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Kind   string `json:"kind"`
}

// BoardResponse lists every cell of a session's board.
type BoardResponse struct {
	Cells []CellStateResponse `json:"cells"`
}

// CellMarkResponse identifies a cell whose search status changed.
type CellMarkResponse struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// SearchStateResponse snapshots a session's progress.
type SearchStateResponse struct {
	Variant   string             `json:"variant"`
	Finished  bool               `json:"finished"`
	Exhausted bool               `json:"exhausted"`
	Steps     int                `json:"steps"`
	ElapsedMS int64              `json:"elapsed_ms"`
	Frontier  []CellMarkResponse `json:"frontier"`
	Path      []CellMarkResponse `json:"path"`
}

// PathResponse carries the materialized final path.
type PathResponse struct {
	Cells []CellMarkResponse `json:"cells"`
}

// MoveResponse carries one dispensed movement direction.
type MoveResponse struct {
	Direction string `json:"direction"`
}
