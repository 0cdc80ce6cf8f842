package heuristic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	t.Run("manhattan sums absolute deltas", func(t *testing.T) {
		assert.InDelta(t, 7, Manhattan.Distance(0, 0, 3, 4), 1e-9)
		assert.InDelta(t, 7, Manhattan.Distance(3, 4, 0, 0), 1e-9)
		assert.Zero(t, Manhattan.Distance(2, 2, 2, 2))
	})

	t.Run("euclidean is the straight-line distance", func(t *testing.T) {
		assert.InDelta(t, 5, Euclidean.Distance(0, 0, 3, 4), 1e-9)
		assert.InDelta(t, math.Sqrt2, Euclidean.Distance(1, 1, 2, 2), 1e-9)
	})

	t.Run("chebyshev is the larger delta", func(t *testing.T) {
		assert.InDelta(t, 4, Chebyshev.Distance(0, 0, 3, 4), 1e-9)
		assert.InDelta(t, 3, Chebyshev.Distance(0, 0, 3, 3), 1e-9)
	})

	t.Run("octile charges sqrt2 per diagonal step", func(t *testing.T) {
		assert.InDelta(t, 3*math.Sqrt2+1, Octile.Distance(0, 0, 3, 4), 1e-9)
		assert.InDelta(t, 2*math.Sqrt2, Octile.Distance(0, 0, 2, 2), 1e-9)
	})

	t.Run("every kind is admissible against the manhattan move count", func(t *testing.T) {
		// On a 4-connected unit-cost grid the true cost is the manhattan
		// distance, so no estimator may exceed it.
		points := [][4]int{{0, 0, 5, 7}, {2, 3, 2, 9}, {4, 4, 0, 0}, {1, 0, 8, 2}}
		for _, k := range []Kind{Manhattan, Euclidean, Chebyshev, Octile} {
			for _, p := range points {
				truth := Manhattan.Distance(p[0], p[1], p[2], p[3])
				assert.LessOrEqual(t, k.Distance(p[0], p[1], p[2], p[3]), truth+1e-9, k.String())
			}
		}
	})

	t.Run("unknown kind panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Kind(99).Distance(0, 0, 1, 1)
		})
	})
}

func TestKind(t *testing.T) {
	t.Run("valid kinds", func(t *testing.T) {
		for _, k := range []Kind{Manhattan, Euclidean, Chebyshev, Octile} {
			assert.True(t, k.Valid())
		}
		assert.False(t, Kind(99).Valid())
	})

	t.Run("parse round-trips names", func(t *testing.T) {
		for _, k := range []Kind{Manhattan, Euclidean, Chebyshev, Octile} {
			parsed, err := Parse(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
	})

	t.Run("parse rejects unknown names", func(t *testing.T) {
		_, err := Parse("taxicab")
		assert.ErrorIs(t, err, ErrUnknownKind)
	})
}
