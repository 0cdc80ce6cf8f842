/*
Package search implements the stepwise grid-search engine.

A Strategy runs one unit of algorithm work per Advance call, so a caller can
interleave the search with other work instead of blocking on a full
computation. Six variants share the contract: depth-first, breadth-first,
bidirectional breadth-first, Dijkstra, A*, and an A*-Dijkstra hybrid. Every
variant ends in one of two terminal states: finished (goal reached) or
exhausted (frontier drained with the goal unreachable). Advance is an
idempotent no-op in either terminal state.
*/
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/abenezer-t/gridseek-api/board"
	"github.com/abenezer-t/gridseek-api/search/heuristic"
)

// Search-related errors.
var (
	ErrStartOnWall    = errors.New("start cell is a wall")
	ErrUnknownVariant = errors.New("unknown search variant")
)

// Variant selects one of the concrete search strategies.
type Variant int

const (
	DFS Variant = iota
	BFS
	BidirectionalBFS
	Dijkstra
	AStar
	AStarDijkstra
)

// variantNames maps variants to their wire names.
var variantNames = map[Variant]string{
	DFS:              "dfs",
	BFS:              "bfs",
	BidirectionalBFS: "bidirectional-bfs",
	Dijkstra:         "dijkstra",
	AStar:            "astar",
	AStarDijkstra:    "astar-dijkstra",
}

// String returns the lowercase name of the variant.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseVariant resolves a variant name to its Variant.
func ParseVariant(name string) (Variant, error) {
	for variant, variantName := range variantNames {
		if variantName == name {
			return variant, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Observer receives cell-status notifications while a search runs. The engine
// never renders; it only reports which cells changed status, identified by
// coordinates.
type Observer interface {
	// CellEnteredFrontier fires when a cell is first queued for expansion.
	CellEnteredFrontier(column, row int)

	// CellJoinedPath fires for each cell of the final path, in order from
	// start to goal, when the path is materialized.
	CellJoinedPath(column, row int)
}

// Strategy is the stepwise search contract shared by all variants.
type Strategy interface {
	// Initialize fixes the (start, goal) pair, resets all internal
	// structures, and seeds the frontier. It fails with ErrStartOnWall when
	// the start cell is not walkable.
	Initialize(start, goal *board.Cell) error

	// Advance performs exactly one unit of algorithm work: pop one frontier
	// entry, expand its neighbors, and possibly reach a terminal state. It
	// is a no-op once the search is finished or exhausted and is safe to
	// call any number of times afterward.
	Advance(b *board.Board)

	// IsFinished reports whether the goal has been reached.
	IsFinished() bool

	// IsExhausted reports whether the frontier drained without reaching the
	// goal. A search never becomes finished after exhausting.
	IsExhausted() bool

	// ReconstructPath materializes the ordered start-exclusive path from
	// start to goal. It returns nil before the search finishes and is
	// idempotent afterward.
	ReconstructPath() []*board.Cell

	// NextMove pops the next path cell and returns the 4-way direction
	// toward it. It returns DirectionNone once the path is drained.
	NextMove() Direction

	// Restart clears terminal flags and all search bookkeeping without
	// touching the board, re-seeding the frontier from the stored
	// endpoints so the search can re-plan.
	Restart(b *board.Board)

	// SetObserver registers the receiver for cell-status notifications.
	// A nil observer disables them.
	SetObserver(o Observer)

	// Elapsed returns the informational wall-clock time from Initialize
	// until the terminal state (or until now while still running).
	Elapsed() time.Duration
}

// New constructs the strategy for the given variant. The heuristic kind is
// consulted only by the A*-family variants but is validated for all of them,
// so an unsupported selector surfaces at construction rather than mid-search.
func New(v Variant, h heuristic.Kind) (Strategy, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %d", heuristic.ErrUnknownKind, h)
	}

	switch v {
	case DFS:
		return NewDFS(), nil
	case BFS:
		return NewBFS(), nil
	case BidirectionalBFS:
		return NewBidirectionalBFS(), nil
	case Dijkstra:
		return NewDijkstra(), nil
	case AStar:
		return NewAStar(h), nil
	case AStarDijkstra:
		return NewAStarDijkstra(h), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, v)
	}
}
