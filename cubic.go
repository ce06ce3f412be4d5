package centroid

// MaxSamples is the largest number of points a single segment can be sampled
// at.
const MaxSamples = 1 << 24

// CubicBez is a cubic Bézier segment. P0 and P3 are the end points, P1 and
// P2 the control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t, which is usually in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Sample evaluates the curve at n evenly spaced parameters.
//
// The parameters are t_i = i/(n-1), so the first point is always P0 and the
// last one P3. For n == 1 only P0 is returned, for n == 0 the result is empty.
// A negative n or one above [MaxSamples] is an error.
func (c CubicBez) Sample(n int) ([]Point, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	return c.appendSamples(make([]Point, 0, n), n), nil
}

func checkSamples(n int) error {
	if n < 0 {
		return invalidArgument("negative sample count %d", n)
	}
	if n > MaxSamples {
		return invalidArgument("sample count %d exceeds %d", n, MaxSamples)
	}
	return nil
}

// appendSamples appends n samples of c to dst. n must not be negative.
func (c CubicBez) appendSamples(dst []Point, n int) []Point {
	switch n {
	case 0:
		return dst
	case 1:
		return append(dst, c.P0)
	}
	last := float64(n - 1)
	for i := range n - 1 {
		dst = append(dst, c.Eval(float64(i)/last))
	}
	// Always end exactly on the end point, so that consecutive segments join.
	return append(dst, c.P3)
}

// SignedArea returns the signed area under the curve, computed exactly with
// Green's theorem. Summed over a closed sequence of segments, this is the
// area enclosed by them.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// Reverse returns the same curve traversed from P3 to P0.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}
