package centroid

import (
	"fmt"
	"math"
	"slices"
)

// Compound describes a shape made of an outer boundary with holes cut out of
// it.
type Compound struct {
	// Centroid is the centroid of the outer region minus the holes.
	Centroid Point
	// Area is the area of the outer region minus the holes. It is never
	// negative for valid input.
	Area float64
	// Outer is the index of the outer boundary in the input.
	Outer int
	// Holes are the indices of the holes in the input, ordered by increasing
	// absolute area.
	Holes []int
}

// Compose combines the moments of several boundaries into the moments of a
// single compound shape.
//
// The boundary with the largest absolute area is the outer boundary, all
// others are holes. Ties are broken in favour of the boundary that comes last
// in results. The compound centroid is the area-weighted difference
//
//	c = (|A_o| c_o − Σ |A_h| c_h) / (|A_o| − Σ |A_h|)
//
// Only the magnitudes of the areas are used: holes are subtracted regardless of
// their winding direction.
//
// Compose doesn't check that the holes lie inside the outer boundary or that
// the boundaries don't intersect. That is the caller's responsibility; if it
// doesn't hold, the result is well-defined but geometrically meaningless.
//
// Compose fails with [ErrEmptyInput] if results is empty and with
// [ErrDegenerateCompound] if the holes cancel out the outer area.
func Compose(results []MomentResult) (Compound, error) {
	if len(results) == 0 {
		return Compound{}, ErrEmptyInput
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		aa, ab := math.Abs(results[a].Area), math.Abs(results[b].Area)
		switch {
		case aa < ab:
			return -1
		case aa > ab:
			return 1
		default:
			return 0
		}
	})

	outer := order[len(order)-1]
	holes := order[:len(order)-1]

	oa := math.Abs(results[outer].Area)
	nx := oa * results[outer].Centroid.X
	ny := oa * results[outer].Centroid.Y
	den := oa
	for _, i := range holes {
		ha := math.Abs(results[i].Area)
		nx -= ha * results[i].Centroid.X
		ny -= ha * results[i].Centroid.Y
		den -= ha
	}
	if den == 0 {
		return Compound{}, fmt.Errorf("%w: outer area %g", ErrDegenerateCompound, oa)
	}

	return Compound{
		Centroid: Point{X: nx / den, Y: ny / den},
		Area:     den,
		Outer:    outer,
		Holes:    slices.Clip(holes),
	}, nil
}

// Combine is like [Compose] but only returns the centroid.
func Combine(results []MomentResult) (Point, error) {
	c, err := Compose(results)
	return c.Centroid, err
}
