package search

import "github.com/abenezer-t/gridseek-api/board"

// DFSStrategy explores the board depth-first with a LIFO frontier. The
// visited check happens on pop, not on push, so the stack may hold stale
// duplicate entries and the most recent push of a cell decides its parent.
// That lazy-deletion behavior is part of the contract: it determines which of
// several duplicate routes is explored first. Because neighbors are pushed in
// Up, Left, Down, Right order, Right is expanded first.
type DFSStrategy struct {
	tracker
	frontier []*board.Cell
	visited  map[string]bool
	parents  map[string]*board.Cell
}

// NewDFS creates an uninitialized depth-first strategy.
func NewDFS() *DFSStrategy {
	return &DFSStrategy{}
}

// Initialize fixes the endpoints and seeds the frontier with the start cell.
func (s *DFSStrategy) Initialize(start, goal *board.Cell) error {
	if err := s.begin(start, goal); err != nil {
		return err
	}
	s.seed()
	return nil
}

// Restart re-seeds the search from the stored endpoints.
func (s *DFSStrategy) Restart(_ *board.Board) {
	s.reset()
	s.seed()
}

func (s *DFSStrategy) seed() {
	s.visited = make(map[string]bool)
	s.parents = make(map[string]*board.Cell)
	s.frontier = []*board.Cell{s.start}
}

// Advance pops one stack entry; a stale (already visited) entry consumes the
// step. Otherwise the cell is expanded and its unvisited walkable neighbors
// pushed.
func (s *DFSStrategy) Advance(b *board.Board) {
	if s.finished || s.exhausted {
		return
	}
	if len(s.frontier) == 0 {
		s.exhaust()
		return
	}

	last := len(s.frontier) - 1
	current := s.frontier[last]
	s.frontier = s.frontier[:last]

	if s.visited[current.ID()] {
		return
	}
	s.visited[current.ID()] = true

	if current == s.goal {
		s.finish()
		return
	}

	for _, n := range b.WalkableNeighbors(current) {
		if n == nil || s.visited[n.ID()] {
			continue
		}
		s.parents[n.ID()] = current
		s.frontier = append(s.frontier, n)
		s.notifyFrontier(n)
	}
}

// ReconstructPath materializes the start-exclusive path once the goal is
// reached. DFS paths are not guaranteed to be shortest.
func (s *DFSStrategy) ReconstructPath() []*board.Cell {
	if !s.finished {
		return nil
	}
	if !s.pathBuilt {
		s.setPath(chainFromParents(s.parents, s.start, s.goal))
	}
	return s.path
}

// NextMove dispenses one step of the final path.
func (s *DFSStrategy) NextMove() Direction {
	if !s.finished {
		return DirectionNone
	}
	s.ReconstructPath()
	return s.popMove()
}
