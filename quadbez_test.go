package centroid

import (
	"testing"
)

func TestQuadBezRaise(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	c := q.Raise()
	if c.P0 != q.P0 || c.P3 != q.P2 {
		t.Errorf("raised curve runs from %s to %s, want %s to %s", c.P0, c.P3, q.P0, q.P2)
	}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		mt := 1 - ts
		want := Pt(
			mt*mt*q.P0.X+2*mt*ts*q.P1.X+ts*ts*q.P2.X,
			mt*mt*q.P0.Y+2*mt*ts*q.P1.Y+ts*ts*q.P2.Y,
		)
		assertNear(t, c.Eval(ts), want, 1e-12)
	}
}
