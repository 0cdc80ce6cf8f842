package search

import (
	"github.com/abenezer-t/gridseek-api/board"
	"github.com/abenezer-t/gridseek-api/search/heuristic"
)

// AStarStrategy runs A* with explicit open and closed sets and g/f score maps
// keyed by cell ID. Each step expands the open cell with the minimal f = g + h
// score; among equal scores the earliest-discovered cell wins, which keeps
// expansion order reproducible. With any of the provided heuristics the
// result is a shortest hop-count path.
type AStarStrategy struct {
	tracker
	h heuristic.Kind

	open    []*board.Cell // insertion order, scanned for the minimal f score
	inOpen  map[string]bool
	closed  map[string]bool
	gScore  map[string]float64
	fScore  map[string]float64
	parents map[string]*board.Cell
}

// NewAStar creates an uninitialized A* strategy using the given heuristic.
func NewAStar(h heuristic.Kind) *AStarStrategy {
	return &AStarStrategy{h: h}
}

// Initialize fixes the endpoints and seeds the open set with the start cell.
func (s *AStarStrategy) Initialize(start, goal *board.Cell) error {
	if err := s.begin(start, goal); err != nil {
		return err
	}
	s.seed()
	return nil
}

// Restart re-seeds the search from the stored endpoints.
func (s *AStarStrategy) Restart(_ *board.Board) {
	s.reset()
	s.seed()
}

func (s *AStarStrategy) seed() {
	s.open = []*board.Cell{s.start}
	s.inOpen = map[string]bool{s.start.ID(): true}
	s.closed = make(map[string]bool)
	s.gScore = map[string]float64{s.start.ID(): 0}
	s.fScore = map[string]float64{s.start.ID(): s.estimate(s.start)}
	s.parents = make(map[string]*board.Cell)
}

// estimate returns h(c, goal) for the configured heuristic.
func (s *AStarStrategy) estimate(c *board.Cell) float64 {
	return s.h.Distance(c.Column(), c.Row(), s.goal.Column(), s.goal.Row())
}

// Advance closes the minimal-f open cell and relaxes its neighbors with g+1,
// recording an improvement only when the new g score is strictly better.
func (s *AStarStrategy) Advance(b *board.Board) {
	if s.finished || s.exhausted {
		return
	}
	if len(s.open) == 0 {
		s.exhaust()
		return
	}

	index := s.minOpenIndex()
	current := s.open[index]
	s.open = append(s.open[:index], s.open[index+1:]...)
	delete(s.inOpen, current.ID())
	s.closed[current.ID()] = true

	if current == s.goal {
		s.finish()
		return
	}

	for _, n := range b.WalkableNeighbors(current) {
		if n == nil || s.closed[n.ID()] {
			continue
		}
		tentative := s.gScore[current.ID()] + 1
		known, seen := s.gScore[n.ID()]
		if seen && tentative >= known {
			continue
		}
		s.gScore[n.ID()] = tentative
		s.fScore[n.ID()] = tentative + s.estimate(n)
		s.parents[n.ID()] = current
		if !s.inOpen[n.ID()] {
			s.open = append(s.open, n)
			s.inOpen[n.ID()] = true
			s.notifyFrontier(n)
		}
	}
}

// minOpenIndex returns the index of the first open cell with the minimal f
// score.
func (s *AStarStrategy) minOpenIndex() int {
	index := 0
	for i := 1; i < len(s.open); i++ {
		if s.fScore[s.open[i].ID()] < s.fScore[s.open[index].ID()] {
			index = i
		}
	}
	return index
}

// ReconstructPath materializes the start-exclusive path once the goal is
// reached.
func (s *AStarStrategy) ReconstructPath() []*board.Cell {
	if !s.finished {
		return nil
	}
	if !s.pathBuilt {
		s.setPath(chainFromParents(s.parents, s.start, s.goal))
	}
	return s.path
}

// NextMove dispenses one step of the final path.
func (s *AStarStrategy) NextMove() Direction {
	if !s.finished {
		return DirectionNone
	}
	s.ReconstructPath()
	return s.popMove()
}
