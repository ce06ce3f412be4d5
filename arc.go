package centroid

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// PathElements approximates the arc with cubic Béziers. The tolerance bounds
// the distance between the arc and its approximation.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.XRotation, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// sampleEllipse takes the ellipse radii, how the radii are rotated, and the
// angle, and returns a point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// SVGArc is an elliptical arc in endpoint parameterization, as used by the
// SVG path data "A" command.
type SVGArc struct {
	From      Point
	To        Point
	Radii     Vec2
	XRotation float64 // in radians
	LargeArc  bool
	Sweep     bool
}

// IsStraightLine reports whether the arc degenerates to a straight line, which
// is how SVG treats arcs with a zero radius. Arcs whose end points coincide
// are also reported, even though SVG omits them entirely.
func (arc SVGArc) IsStraightLine() bool {
	return math.Abs(arc.Radii.X) <= 1e-5 || math.Abs(arc.Radii.Y) <= 1e-5 || arc.From == arc.To
}

// Arc converts the arc to center parameterization, following the SVG
// implementation notes. Radii that are too small to span the end points are
// scaled up. The second return value is false if the arc is a straight line.
func (arc SVGArc) Arc() (Arc, bool) {
	if arc.IsStraightLine() {
		return Arc{}, false
	}

	rx := math.Abs(arc.Radii.X)
	ry := math.Abs(arc.Radii.Y)
	xr := math.Mod(arc.XRotation, 2*math.Pi)
	sinPhi, cosPhi := math.Sincos(xr)
	hdX := (arc.From.X - arc.To.X) * 0.5
	hdY := (arc.From.Y - arc.To.Y) * 0.5
	hsX := (arc.From.X + arc.To.X) * 0.5
	hsY := (arc.From.Y + arc.To.Y) * 0.5

	// F.6.5.1
	p := Vec2{
		X: cosPhi*hdX + sinPhi*hdY,
		Y: -sinPhi*hdX + cosPhi*hdY,
	}

	// F.6.6, correction of out-of-range radii
	if rf := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry); rf > 1.0 {
		s := math.Sqrt(rf)
		rx *= s
		ry *= s
	}

	rxry := rx * ry
	rxpy := rx * p.Y
	rypx := ry * p.X
	sumOfSq := rxpy*rxpy + rypx*rypx

	// F.6.5.2
	signCoe := 1.0
	if arc.LargeArc == arc.Sweep {
		signCoe = -1.0
	}
	coe := signCoe * math.Sqrt(math.Abs((rxry*rxry-sumOfSq)/sumOfSq))
	tcx := coe * rxpy / ry
	tcy := -coe * rypx / rx

	// F.6.5.3
	center := Point{
		X: cosPhi*tcx - sinPhi*tcy + hsX,
		Y: sinPhi*tcx + cosPhi*tcy + hsY,
	}

	startV := Vec2{(p.X - tcx) / rx, (p.Y - tcy) / ry}
	endV := Vec2{(-p.X - tcx) / rx, (-p.Y - tcy) / ry}
	startAngle := startV.Angle()
	sweepAngle := math.Mod(endV.Angle()-startAngle, 2*math.Pi)
	if arc.Sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	} else if !arc.Sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  arc.XRotation,
	}, true
}
