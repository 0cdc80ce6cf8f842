package search

import "github.com/abenezer-t/gridseek-api/board"

// BidirectionalBFSStrategy runs two breadth-first searches at once, one
// rooted at the start and one at the goal. Each Advance dequeues one cell per
// side; the search finishes when a cell dequeued on one side already has a
// parent on the other side, and that cell becomes the meeting cell. Both
// sides use parent-map membership as the seen check, so the result is a
// shortest hop-count path.
type BidirectionalBFSStrategy struct {
	tracker
	startFrontier []*board.Cell
	goalFrontier  []*board.Cell
	startParents  map[string]*board.Cell
	goalParents   map[string]*board.Cell
	meeting       *board.Cell
}

// NewBidirectionalBFS creates an uninitialized bidirectional strategy.
func NewBidirectionalBFS() *BidirectionalBFSStrategy {
	return &BidirectionalBFSStrategy{}
}

// Initialize fixes the endpoints and seeds both frontiers.
func (s *BidirectionalBFSStrategy) Initialize(start, goal *board.Cell) error {
	if err := s.begin(start, goal); err != nil {
		return err
	}
	s.seed()
	return nil
}

// Restart re-seeds both searches from the stored endpoints.
func (s *BidirectionalBFSStrategy) Restart(_ *board.Board) {
	s.reset()
	s.seed()
}

func (s *BidirectionalBFSStrategy) seed() {
	s.startParents = make(map[string]*board.Cell)
	s.goalParents = make(map[string]*board.Cell)
	s.startFrontier = []*board.Cell{s.start}
	s.goalFrontier = []*board.Cell{s.goal}
	s.meeting = nil
}

// Meeting returns the cell where the two frontiers met, or nil while the
// search is still running.
func (s *BidirectionalBFSStrategy) Meeting() *board.Cell {
	return s.meeting
}

// Advance dequeues and expands one cell from each side. When either frontier
// drains before the sides meet, the two regions are disconnected and the
// search exhausts.
func (s *BidirectionalBFSStrategy) Advance(b *board.Board) {
	if s.finished || s.exhausted {
		return
	}
	if len(s.startFrontier) == 0 || len(s.goalFrontier) == 0 {
		s.exhaust()
		return
	}

	current := s.startFrontier[0]
	s.startFrontier = s.startFrontier[1:]
	if _, met := s.goalParents[current.ID()]; met || current == s.goal {
		s.meeting = current
		s.finish()
		return
	}
	s.expand(b, current, s.start, s.startParents, &s.startFrontier)

	current = s.goalFrontier[0]
	s.goalFrontier = s.goalFrontier[1:]
	if _, met := s.startParents[current.ID()]; met || current == s.start {
		s.meeting = current
		s.finish()
		return
	}
	s.expand(b, current, s.goal, s.goalParents, &s.goalFrontier)
}

// expand enqueues the unseen walkable neighbors of current on one side.
func (s *BidirectionalBFSStrategy) expand(b *board.Board, current, root *board.Cell, parents map[string]*board.Cell, frontier *[]*board.Cell) {
	for _, n := range b.WalkableNeighbors(current) {
		if n == nil || n == root {
			continue
		}
		if _, seen := parents[n.ID()]; seen {
			continue
		}
		parents[n.ID()] = current
		*frontier = append(*frontier, n)
		s.notifyFrontier(n)
	}
}

// ReconstructPath joins the two partial chains at the meeting cell into one
// continuous start-exclusive chain from start to goal.
func (s *BidirectionalBFSStrategy) ReconstructPath() []*board.Cell {
	if !s.finished || s.meeting == nil {
		return nil
	}
	if !s.pathBuilt {
		chain := chainFromParents(s.startParents, s.start, s.meeting)
		for current := s.goalParents[s.meeting.ID()]; current != nil; current = s.goalParents[current.ID()] {
			chain = append(chain, current)
		}
		s.setPath(chain)
	}
	return s.path
}

// NextMove dispenses one step of the final path.
func (s *BidirectionalBFSStrategy) NextMove() Direction {
	if !s.finished {
		return DirectionNone
	}
	s.ReconstructPath()
	return s.popMove()
}
