package centroid

import (
	"errors"
	"math"
	"testing"
)

func TestPolylineSquare(t *testing.T) {
	poly := mustLinearize(t, square(-1, -1, 1, 1), DefaultSamples)
	m, err := poly.Moments()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, MomentResult{Centroid: Pt(0, 0), Area: 4}, m, approx(1e-12))

	c, err := poly.Centroid()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, m.Centroid, c)
	if a := poly.SignedArea(); a != m.Area {
		t.Errorf("got area %v, want %v", a, m.Area)
	}

	// Traversing the square clockwise only flips the sign of the area.
	rev := make(Polyline, len(poly))
	for i, p := range poly {
		rev[len(poly)-1-i] = p
	}
	mr, err := rev.Moments()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, MomentResult{Centroid: m.Centroid, Area: -m.Area}, mr, approx(1e-12))
}

func TestPolylineRegularPolygon(t *testing.T) {
	center := Pt(2, 3)
	const r = 2.0
	var pts [6]Point
	for i := range pts {
		s, c := math.Sincos(float64(i) * math.Pi / 3)
		pts[i] = Pt(center.X+r*c, center.Y+r*s)
	}
	var b Boundary
	for i := range pts {
		b = append(b, Line{pts[i], pts[(i+1)%len(pts)]}.Cubic())
	}

	want := MomentResult{Centroid: center, Area: 3 * math.Sqrt(3) / 2 * r * r}
	for _, samples := range []int{2, 3, 10, 100} {
		m, err := mustLinearize(t, b, samples).Moments()
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, m, approx(1e-9))
	}
}

func TestPolylineCircleConverges(t *testing.T) {
	const r = 10.0
	boundaries := Circle{Pt(0, 0), r}.Path(1e-6).Boundaries()
	if len(boundaries) != 1 {
		t.Fatalf("got %d boundaries, want 1", len(boundaries))
	}
	want := math.Pi * r * r

	prev := math.Inf(1)
	// Each sample set contains the previous one, so the inscribed polygons
	// only grow.
	for _, samples := range []int{2, 3, 5, 9, 17, 33, 65} {
		m, err := mustLinearize(t, boundaries[0], samples).Moments()
		if err != nil {
			t.Fatal(err)
		}
		e := math.Abs(m.Area - want)
		if e >= prev {
			t.Errorf("%d samples: error %g didn't shrink from %g", samples, e, prev)
		}
		if d := dist(m.Centroid, Pt(0, 0)); d > 1e-9 {
			t.Errorf("%d samples: centroid %s is %g away from the center", samples, m.Centroid, d)
		}
		prev = e
	}
	if prev/want > 1e-4 {
		t.Errorf("got relative error %g, want at most 1e-4", prev/want)
	}
}

func TestPolylineDegenerate(t *testing.T) {
	p := Pt(1, 2)
	if _, err := (Polyline{p, p, p}).Moments(); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateShape)
	}
	if _, err := (Polyline{p}).Moments(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}

	// Out and back along the same line.
	b := Boundary{
		Line{Pt(0, 0), Pt(1, 0)}.Cubic(),
		Line{Pt(1, 0), Pt(0, 0)}.Cubic(),
	}
	if _, err := mustLinearize(t, b, 10).Centroid(); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateShape)
	}

	inf := Polyline{Pt(0, 0), Pt(math.Inf(1), 1), Pt(0, 1), Pt(0, 0)}
	if _, err := inf.Moments(); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateShape)
	}

	// The area is representable, the first moments are not.
	const s = 1e150
	huge := Polyline{Pt(0, 0), Pt(s, 0), Pt(s, s), Pt(0, s), Pt(0, 0)}
	if a := huge.SignedArea(); math.IsInf(a, 0) {
		t.Fatalf("area %v overflowed", a)
	}
	if _, err := huge.Moments(); !errors.Is(err, ErrDegenerateShape) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateShape)
	}
}

func TestPolylineContains(t *testing.T) {
	poly := mustLinearize(t, square(0, 0, 4, 4), 5)
	for _, tt := range []struct {
		pt   Point
		want bool
	}{
		{Pt(1, 1), true},
		{Pt(2, 3.5), true},
		{Pt(5, 5), false},
		{Pt(-1, 2), false},
		{Pt(2, 4.5), false},
	} {
		if got := poly.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestPolylineBoundingBox(t *testing.T) {
	poly := mustLinearize(t, square(-1, -2, 3, 4), 4)
	diff(t, Rect{-1, -2, 3, 4}, poly.BoundingBox())
	diff(t, Rect{}, Polyline(nil).BoundingBox())
}
