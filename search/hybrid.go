package search

import (
	"github.com/abenezer-t/gridseek-api/board"
	"github.com/abenezer-t/gridseek-api/search/heuristic"
)

// AStarDijkstraStrategy is functionally identical to A* but does its
// bookkeeping the Dijkstra way: score maps are keyed by cell pointer rather
// than cell ID, and instead of maintaining an explicit open set it scans
// every discovered, unclosed cell for the minimal f score each step. The
// scan is a performance simplification, not a correctness difference; the
// expansion order matches A* for strictly-better relaxations.
type AStarDijkstraStrategy struct {
	tracker
	h heuristic.Kind

	known   []*board.Cell // discovery order, scanned for the minimal f score
	closed  map[*board.Cell]bool
	gScore  map[*board.Cell]float64
	fScore  map[*board.Cell]float64
	parents map[*board.Cell]*board.Cell
}

// NewAStarDijkstra creates an uninitialized hybrid strategy using the given
// heuristic.
func NewAStarDijkstra(h heuristic.Kind) *AStarDijkstraStrategy {
	return &AStarDijkstraStrategy{h: h}
}

// Initialize fixes the endpoints and seeds the start cell.
func (s *AStarDijkstraStrategy) Initialize(start, goal *board.Cell) error {
	if err := s.begin(start, goal); err != nil {
		return err
	}
	s.seed()
	return nil
}

// Restart re-seeds the search from the stored endpoints.
func (s *AStarDijkstraStrategy) Restart(_ *board.Board) {
	s.reset()
	s.seed()
}

func (s *AStarDijkstraStrategy) seed() {
	s.known = []*board.Cell{s.start}
	s.closed = make(map[*board.Cell]bool)
	s.gScore = map[*board.Cell]float64{s.start: 0}
	s.fScore = map[*board.Cell]float64{s.start: s.estimate(s.start)}
	s.parents = make(map[*board.Cell]*board.Cell)
}

// estimate returns h(c, goal) for the configured heuristic.
func (s *AStarDijkstraStrategy) estimate(c *board.Cell) float64 {
	return s.h.Distance(c.Column(), c.Row(), s.goal.Column(), s.goal.Row())
}

// Advance closes the unclosed cell with the minimal f score and relaxes its
// neighbors with g+1 when strictly better.
func (s *AStarDijkstraStrategy) Advance(b *board.Board) {
	if s.finished || s.exhausted {
		return
	}

	current := s.minScoreUnclosed()
	if current == nil {
		s.exhaust()
		return
	}
	s.closed[current] = true

	if current == s.goal {
		s.finish()
		return
	}

	for _, n := range b.WalkableNeighbors(current) {
		if n == nil || s.closed[n] {
			continue
		}
		tentative := s.gScore[current] + 1
		known, seen := s.gScore[n]
		if seen && tentative >= known {
			continue
		}
		if !seen {
			s.known = append(s.known, n)
			s.notifyFrontier(n)
		}
		s.gScore[n] = tentative
		s.fScore[n] = tentative + s.estimate(n)
		s.parents[n] = current
	}
}

// minScoreUnclosed scans all discovered cells in order and returns the first
// unclosed one with the minimal f score, or nil when none remain.
func (s *AStarDijkstraStrategy) minScoreUnclosed() *board.Cell {
	var best *board.Cell
	for _, c := range s.known {
		if s.closed[c] {
			continue
		}
		if best == nil || s.fScore[c] < s.fScore[best] {
			best = c
		}
	}
	return best
}

// ReconstructPath materializes the start-exclusive path once the goal is
// reached.
func (s *AStarDijkstraStrategy) ReconstructPath() []*board.Cell {
	if !s.finished {
		return nil
	}
	if !s.pathBuilt {
		var chain []*board.Cell
		for current := s.goal; current != nil && current != s.start; current = s.parents[current] {
			chain = append(chain, current)
		}
		reverseCells(chain)
		s.setPath(chain)
	}
	return s.path
}

// NextMove dispenses one step of the final path.
func (s *AStarDijkstraStrategy) NextMove() Direction {
	if !s.finished {
		return DirectionNone
	}
	s.ReconstructPath()
	return s.popMove()
}
