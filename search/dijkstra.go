package search

import "github.com/abenezer-t/gridseek-api/board"

// DijkstraStrategy runs uniform-cost search with unit edge costs. Instead of
// a priority queue it keeps every discovered cell in a discovery-ordered
// slice and linear-scans it for the closest unvisited cell each step. On
// small boards the scan is cheap, and the discovery order makes tie-breaking
// deterministic where a Go map iteration would not be.
type DijkstraStrategy struct {
	tracker
	known   []*board.Cell // discovery order, scanned for the closest unvisited cell
	dist    map[string]float64
	visited map[string]bool
	parents map[string]*board.Cell
}

// NewDijkstra creates an uninitialized Dijkstra strategy.
func NewDijkstra() *DijkstraStrategy {
	return &DijkstraStrategy{}
}

// Initialize fixes the endpoints and seeds the start cell at distance zero.
func (s *DijkstraStrategy) Initialize(start, goal *board.Cell) error {
	if err := s.begin(start, goal); err != nil {
		return err
	}
	s.seed()
	return nil
}

// Restart re-seeds the search from the stored endpoints.
func (s *DijkstraStrategy) Restart(_ *board.Board) {
	s.reset()
	s.seed()
}

func (s *DijkstraStrategy) seed() {
	s.known = []*board.Cell{s.start}
	s.dist = map[string]float64{s.start.ID(): 0}
	s.visited = make(map[string]bool)
	s.parents = make(map[string]*board.Cell)
}

// Advance visits the closest unvisited cell and relaxes its neighbors with a
// unit edge cost, keeping a neighbor's distance only when strictly better.
func (s *DijkstraStrategy) Advance(b *board.Board) {
	if s.finished || s.exhausted {
		return
	}

	current := s.closestUnvisited()
	if current == nil {
		s.exhaust()
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
		tentative := s.dist[current.ID()] + 1
		known, seen := s.dist[n.ID()]
		if !seen {
			s.known = append(s.known, n)
			s.notifyFrontier(n)
		}
		if !seen || tentative < known {
			s.dist[n.ID()] = tentative
			s.parents[n.ID()] = current
		}
	}
}

// closestUnvisited scans the discovered cells in order and returns the first
// one with the minimal distance, or nil when all are visited.
func (s *DijkstraStrategy) closestUnvisited() *board.Cell {
	var closest *board.Cell
	var best float64
	for _, c := range s.known {
		if s.visited[c.ID()] {
			continue
		}
		d := s.dist[c.ID()]
		if closest == nil || d < best {
			closest = c
			best = d
		}
	}
	return closest
}

// ReconstructPath materializes the start-exclusive path once the goal is
// reached. Dijkstra always yields a shortest path on a unit-cost grid.
func (s *DijkstraStrategy) ReconstructPath() []*board.Cell {
	if !s.finished {
		return nil
	}
	if !s.pathBuilt {
		s.setPath(chainFromParents(s.parents, s.start, s.goal))
	}
	return s.path
}

// NextMove dispenses one step of the final path.
func (s *DijkstraStrategy) NextMove() Direction {
	if !s.finished {
		return DirectionNone
	}
	s.ReconstructPath()
	return s.popMove()
}
