package search

import (
	"fmt"
	"time"

	"github.com/abenezer-t/gridseek-api/board"
)

// Direction is a 4-way move instruction dispensed by NextMove.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// tracker carries the bookkeeping every strategy shares: the fixed endpoints,
// terminal flags, the materialized path with its dispense cursor, the
// observer, and the informational timer.
type tracker struct {
	start *board.Cell
	goal  *board.Cell

	finished  bool
	exhausted bool

	path      []*board.Cell // ordered start-exclusive chain ending at goal
	pathBuilt bool
	cursor    int
	prev      *board.Cell // last cell dispensed by NextMove

	observer  Observer
	startedAt time.Time
	elapsed   time.Duration
}

// begin validates and stores the endpoints and resets the shared state.
func (t *tracker) begin(start, goal *board.Cell) error {
	if start.Kind() == board.Wall {
		return fmt.Errorf("%w: %s", ErrStartOnWall, start.ID())
	}
	t.start = start
	t.goal = goal
	t.reset()
	return nil
}

// reset clears flags, path state, and restarts the timer. The endpoints stay.
func (t *tracker) reset() {
	t.finished = false
	t.exhausted = false
	t.path = nil
	t.pathBuilt = false
	t.cursor = 0
	t.prev = nil
	t.startedAt = time.Now()
	t.elapsed = 0
}

// finish marks the goal as reached and freezes the timer.
func (t *tracker) finish() {
	t.finished = true
	t.elapsed = time.Since(t.startedAt)
}

// exhaust marks the frontier as drained without a solution.
func (t *tracker) exhaust() {
	t.exhausted = true
	t.elapsed = time.Since(t.startedAt)
}

// IsFinished reports whether the goal has been reached.
func (t *tracker) IsFinished() bool {
	return t.finished
}

// IsExhausted reports whether the frontier drained without reaching the goal.
func (t *tracker) IsExhausted() bool {
	return t.exhausted
}

// SetObserver registers the receiver for cell-status notifications.
func (t *tracker) SetObserver(o Observer) {
	t.observer = o
}

// Elapsed returns the informational search duration.
func (t *tracker) Elapsed() time.Duration {
	if t.finished || t.exhausted {
		return t.elapsed
	}
	if t.startedAt.IsZero() {
		return 0
	}
	return time.Since(t.startedAt)
}

// notifyFrontier reports a cell entering the frontier.
func (t *tracker) notifyFrontier(c *board.Cell) {
	if t.observer != nil {
		t.observer.CellEnteredFrontier(c.Column(), c.Row())
	}
}

// setPath stores the materialized chain once and reports its cells in order.
func (t *tracker) setPath(chain []*board.Cell) {
	t.path = chain
	t.pathBuilt = true
	if t.observer != nil {
		for _, c := range chain {
			t.observer.CellJoinedPath(c.Column(), c.Row())
		}
	}
}

// popMove dispenses the next path cell as a direction relative to the
// previously dispensed cell (the start, initially). The axis with the larger
// absolute delta wins; ties default to vertical.
func (t *tracker) popMove() Direction {
	if t.cursor >= len(t.path) {
		return DirectionNone
	}
	if t.prev == nil {
		t.prev = t.start
	}

	next := t.path[t.cursor]
	t.cursor++
	d := directionBetween(t.prev, next)
	t.prev = next
	return d
}

// directionBetween maps a cell transition to a 4-way direction.
func directionBetween(from, to *board.Cell) Direction {
	dColumn := to.Column() - from.Column()
	dRow := to.Row() - from.Row()

	if abs(dRow) >= abs(dColumn) {
		switch {
		case dRow < 0:
			return DirectionUp
		case dRow > 0:
			return DirectionDown
		default:
			return DirectionNone
		}
	}
	if dColumn < 0 {
		return DirectionLeft
	}
	return DirectionRight
}

// chainFromParents walks parent pointers from goal back to start and returns
// the chain reordered start to goal, exclusive of start.
func chainFromParents(parents map[string]*board.Cell, start, goal *board.Cell) []*board.Cell {
	var chain []*board.Cell
	for current := goal; current != nil && current != start; current = parents[current.ID()] {
		chain = append(chain, current)
	}
	reverseCells(chain)
	return chain
}

// reverseCells reverses a cell slice in place.
func reverseCells(cells []*board.Cell) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
