package centroid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a small absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// dist returns the euclidean distance between p and q.
func dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// square returns the closed axis-aligned square with corners (x0, y0) and
// (x1, y1), traversed counter-clockwise in a y-up coordinate system when
// x0 < x1 and y0 < y1.
func square(x0, y0, x1, y1 float64) Boundary {
	return Boundary{
		Line{Pt(x0, y0), Pt(x1, y0)}.Cubic(),
		Line{Pt(x1, y0), Pt(x1, y1)}.Cubic(),
		Line{Pt(x1, y1), Pt(x0, y1)}.Cubic(),
		Line{Pt(x0, y1), Pt(x0, y0)}.Cubic(),
	}
}
