package centroid

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Cubic returns the line as a cubic Bézier whose control points coincide with
// the line's end points. This is how path data represents straight segments
// in a boundary made of cubics.
func (l Line) Cubic() CubicBez {
	return CubicBez{l.P0, l.P0, l.P1, l.P1}
}
