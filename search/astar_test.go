package search

import (
	"testing"

	"github.com/abenezer-t/gridseek-api/board"
	"github.com/abenezer-t/gridseek-api/search/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAStarFamilyIsOptimalWithEveryHeuristic(t *testing.T) {
	kinds := []heuristic.Kind{heuristic.Manhattan, heuristic.Euclidean, heuristic.Chebyshev, heuristic.Octile}

	for _, v := range []Variant{AStar, AStarDijkstra} {
		for _, k := range kinds {
			t.Run(v.String()+"/"+k.String(), func(t *testing.T) {
				b := scenarioBoard(t)
				goal, err := b.Goal()
				require.NoError(t, err)

				s, err := New(v, k)
				require.NoError(t, err)
				require.NoError(t, s.Initialize(b.CellAt(0, 0), goal))

				runToTerminal(t, s, b)
				require.True(t, s.IsFinished())
				assert.Len(t, s.ReconstructPath(), 6)
			})
		}
	}
}

func TestAStarAndHybridAgreeOnPathLength(t *testing.T) {
	b, err := board.New(6, 6)
	require.NoError(t, err)
	for _, position := range [][2]int{{1, 1}, {1, 2}, {2, 4}, {3, 1}, {4, 3}} {
		b.CellAt(position[0], position[1]).SetKind(board.Wall)
	}
	b.CellAt(5, 5).SetKind(board.Goal)
	goal, err := b.Goal()
	require.NoError(t, err)

	astar := NewAStar(heuristic.Manhattan)
	require.NoError(t, astar.Initialize(b.CellAt(0, 0), goal))
	runToTerminal(t, astar, b)
	require.True(t, astar.IsFinished())

	hybrid := NewAStarDijkstra(heuristic.Manhattan)
	require.NoError(t, hybrid.Initialize(b.CellAt(0, 0), goal))
	runToTerminal(t, hybrid, b)
	require.True(t, hybrid.IsFinished())

	assert.Len(t, hybrid.ReconstructPath(), len(astar.ReconstructPath()))
}
