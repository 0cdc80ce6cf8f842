/*
Package heuristic provides the distance estimates consumed by the A*-family
search strategies.

All estimators are pure functions of two 2D points and are admissible on a
unit-cost 4-connected grid, so A* remains optimal with any of them.
*/
package heuristic

import (
	"errors"
	"fmt"
	"math"
)

// Kind selects one of the supported distance estimators.
type Kind int

const (
	Manhattan Kind = iota
	Euclidean
	Chebyshev
	Octile
)

// ErrUnknownKind reports a heuristic selector outside the recognized set.
var ErrUnknownKind = errors.New("unknown heuristic kind")

// kindNames maps kinds to their wire names.
var kindNames = map[Kind]string{
	Manhattan: "manhattan",
	Euclidean: "euclidean",
	Chebyshev: "chebyshev",
	Octile:    "octile",
}

// Valid reports whether k is a recognized heuristic kind.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Parse resolves a heuristic name to its Kind.
func Parse(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Distance estimates the cost of moving from (aColumn, aRow) to
// (bColumn, bRow). Calling it with an unrecognized kind is a programming
// error and panics; callers validate the kind at construction time.
func (k Kind) Distance(aColumn, aRow, bColumn, bRow int) float64 {
	dx := math.Abs(float64(aColumn - bColumn))
	dy := math.Abs(float64(aRow - bRow))

	switch k {
	case Manhattan:
		return dx + dy
	case Euclidean:
		return math.Sqrt(dx*dx + dy*dy)
	case Chebyshev:
		return diagonal(dx, dy, 1)
	case Octile:
		return diagonal(dx, dy, math.Sqrt2)
	default:
		panic(fmt.Sprintf("heuristic: unknown kind %d", k))
	}
}

// diagonal computes D*(dx+dy) + (D2-2*D)*min(dx, dy) with D = 1. D2 = 1 gives
// the Chebyshev distance, D2 = sqrt(2) the Octile distance.
func diagonal(dx, dy, d2 float64) float64 {
	return (dx + dy) + (d2-2)*math.Min(dx, dy)
}
