package search

import "github.com/abenezer-t/gridseek-api/board"

// BFSStrategy explores the board breadth-first with a FIFO frontier.
// Parent-map membership doubles as the seen check, so every cell is enqueued
// at most once and the first discovery wins. BFS always yields a shortest
// hop-count path.
type BFSStrategy struct {
	tracker
	frontier []*board.Cell
	parents  map[string]*board.Cell
}

// NewBFS creates an uninitialized breadth-first strategy.
func NewBFS() *BFSStrategy {
	return &BFSStrategy{}
}

// Initialize fixes the endpoints and seeds the frontier with the start cell.
func (s *BFSStrategy) Initialize(start, goal *board.Cell) error {
	if err := s.begin(start, goal); err != nil {
		return err
	}
	s.seed()
	return nil
}

// Restart re-seeds the search from the stored endpoints.
func (s *BFSStrategy) Restart(_ *board.Board) {
	s.reset()
	s.seed()
}

func (s *BFSStrategy) seed() {
	s.parents = make(map[string]*board.Cell)
	s.frontier = []*board.Cell{s.start}
}

// Advance dequeues one cell and enqueues its unseen walkable neighbors.
func (s *BFSStrategy) Advance(b *board.Board) {
	if s.finished || s.exhausted {
		return
	}
	if len(s.frontier) == 0 {
		s.exhaust()
		return
	}

	current := s.frontier[0]
	s.frontier = s.frontier[1:]

	if current == s.goal {
		s.finish()
		return
	}

	for _, n := range b.WalkableNeighbors(current) {
		if n == nil || n == s.start {
			continue
		}
		if _, seen := s.parents[n.ID()]; seen {
			continue
		}
		s.parents[n.ID()] = current
		s.frontier = append(s.frontier, n)
		s.notifyFrontier(n)
	}
}

// ReconstructPath materializes the start-exclusive path once the goal is
// reached.
func (s *BFSStrategy) ReconstructPath() []*board.Cell {
	if !s.finished {
		return nil
	}
	if !s.pathBuilt {
		s.setPath(chainFromParents(s.parents, s.start, s.goal))
	}
	return s.path
}

// NextMove dispenses one step of the final path.
func (s *BFSStrategy) NextMove() Direction {
	if !s.finished {
		return DirectionNone
	}
	s.ReconstructPath()
	return s.popMove()
}
