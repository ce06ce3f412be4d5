package centroid

import (
	"math"
	"testing"
)

func TestCirclePath(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5, 5)
	c := Circle{center, 5}
	bs := c.Path(1e-9).Boundaries()
	if len(bs) != 1 {
		t.Fatalf("got %d boundaries, want 1", len(bs))
	}
	b := bs[0]
	if !b.Closed() {
		t.Fatal("circle isn't closed")
	}
	if pa := b.SignedArea(); !approxEqual(pa, 25*math.Pi) {
		t.Errorf("got area %v, expected %v", pa, 25*math.Pi)
	}
	poly, err := b.Linearize(8)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Rect{0, 0, 10, 10}, poly.BoundingBox(), approx(1e-3))

	// Four segments for coarse tolerances.
	if n := len(Circle{center, 5}.Path(1).Boundaries()[0]); n != 4 {
		t.Errorf("got %d segments, want 4", n)
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	c := Circle{Pt(0, 0), -5}
	b := c.Path(1e-9).Boundaries()[0]
	if a := b.SignedArea(); math.Abs(a-25*math.Pi) > 1e-7 {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
}
