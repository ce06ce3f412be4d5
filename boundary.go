package centroid

import (
	"fmt"
	"math"
)

// Boundary is the outline of one region, a loop of cubic Bézier segments.
// Consecutive segments share an end point, and the last segment ends where the
// first one starts.
type Boundary []CubicBez

// Closed reports whether the boundary's last segment ends exactly where its
// first one starts. No tolerance is applied: the points have to be identical,
// just like the path data they were decoded from.
func (b Boundary) Closed() bool {
	if len(b) == 0 {
		return false
	}
	return b[0].P0 == b[len(b)-1].P3
}

// Linearize approximates the boundary by a polyline, sampling every segment at
// samples evenly spaced parameters with [CubicBez.Sample].
//
// Segments are sampled starting from the end point of the previous segment,
// so the polyline follows the boundary's traversal order, which in turn
// determines the sign of its area. Because every segment contributes both of
// its end points, points at the joins appear twice. The repeated points
// contribute nothing to the area and centroid sums.
//
// Boundaries that aren't closed fail with [ErrNotClosed].
func (b Boundary) Linearize(samples int) (Polyline, error) {
	if len(b) == 0 {
		return nil, invalidArgument("empty boundary")
	}
	if err := checkSamples(samples); err != nil {
		return nil, err
	}
	if !b.Closed() {
		return nil, fmt.Errorf("%w: starts at %s, ends at %s", ErrNotClosed, b[0].P0, b[len(b)-1].P3)
	}

	size, ok := polylineCap(len(b), samples)
	if !ok {
		return nil, invalidArgument("%d segments sampled %d times each overflow", len(b), samples)
	}
	poly := make(Polyline, 0, size)
	cur := b[0].P0
	for _, seg := range b {
		poly = CubicBez{cur, seg.P1, seg.P2, seg.P3}.appendSamples(poly, samples)
		cur = seg.P3
	}
	return poly, nil
}

// polylineCap returns the number of points of a polyline of segments cubics
// sampled n times each, or false if it doesn't fit in an int.
func polylineCap(segments, n int) (int, bool) {
	if n != 0 && segments > math.MaxInt/n {
		return 0, false
	}
	return segments * n, true
}

// SignedArea returns the exact area enclosed by the boundary. Unlike the area
// of a linearized boundary, it doesn't depend on a sample count.
func (b Boundary) SignedArea() float64 {
	var sum float64
	for _, seg := range b {
		sum += seg.SignedArea()
	}
	return sum
}

// Reverse returns the boundary traversed in the opposite direction.
func (b Boundary) Reverse() Boundary {
	out := make(Boundary, len(b))
	for i, seg := range b {
		out[len(b)-1-i] = seg.Reverse()
	}
	return out
}

func (b Boundary) Transform(aff Affine) Boundary {
	out := make(Boundary, len(b))
	for i, seg := range b {
		out[i] = seg.Transform(aff)
	}
	return out
}
