package centroid

import (
	"fmt"
	"math"
)

// Polyline is a sequence of points approximating a boundary. A polyline
// describing a closed shape ends on the point it starts with; the edge from
// the last point back to the first is never added implicitly.
type Polyline []Point

// MomentResult holds the centroid and signed area of a closed polyline. The
// sign of the area encodes the winding direction: it is positive for
// counter-clockwise traversal in a y-up coordinate system.
type MomentResult struct {
	Centroid Point
	Area     float64
}

func (m MomentResult) String() string {
	return fmt.Sprintf("centroid %s, area %g", m.Centroid, m.Area)
}

// SignedArea computes the shoelace sum
//
//	A = ½ Σ (x_i y_{i+1} − x_{i+1} y_i)
//
// over consecutive pairs of points. Polylines with fewer than two points have
// zero area.
func (p Polyline) SignedArea() float64 {
	var sum float64
	for i := 0; i < len(p)-1; i++ {
		sum += Vec2(p[i]).Cross(Vec2(p[i+1]))
	}
	return sum / 2.0
}

// Centroid computes the centroid of the closed polyline, using the discretized
// first moments
//
//	cx = Σ (x_i + x_{i+1})(x_i y_{i+1} − x_{i+1} y_i) / 6A
//	cy = Σ (y_i + y_{i+1})(x_i y_{i+1} − x_{i+1} y_i) / 6A
//
// It fails with [ErrDegenerateShape] when the area is zero or the centroid
// can't be represented.
func (p Polyline) Centroid() (Point, error) {
	m, err := p.Moments()
	return m.Centroid, err
}

// Moments computes the centroid and signed area of the closed polyline.
func (p Polyline) Moments() (MomentResult, error) {
	if len(p) < 2 {
		return MomentResult{}, invalidArgument("polyline has %d points, need at least 2", len(p))
	}
	var a, mx, my float64
	for i := 0; i < len(p)-1; i++ {
		p0, p1 := p[i], p[i+1]
		cross := Vec2(p0).Cross(Vec2(p1))
		a += cross
		mx += (p0.X + p1.X) * cross
		my += (p0.Y + p1.Y) * cross
	}
	area := a / 2.0
	if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return MomentResult{}, fmt.Errorf("%w: area is %g", ErrDegenerateShape, area)
	}
	c := Point{
		X: mx / (6.0 * area),
		Y: my / (6.0 * area),
	}
	if c.IsInf() || c.IsNaN() {
		return MomentResult{}, fmt.Errorf("%w: first moments overflow for area %g", ErrDegenerateShape, area)
	}
	return MomentResult{Centroid: c, Area: area}, nil
}

// BoundingBox returns the smallest rectangle containing all points of the
// polyline.
func (p Polyline) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Contains reports whether pt lies inside the closed polyline, using the
// even-odd rule.
func (p Polyline) Contains(pt Point) bool {
	inside := false
	for i := 0; i < len(p)-1; i++ {
		a, b := p[i], p[i+1]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if pt.X < x {
			inside = !inside
		}
	}
	return inside
}
