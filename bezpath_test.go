package centroid

import (
	"testing"
)

func mustParseSVG(t *testing.T, d string) BezPath {
	t.Helper()
	p, err := ParseSVG(d)
	if err != nil {
		t.Fatalf("ParseSVG(%q): %v", d, err)
	}
	return p
}

func TestBoundariesClosePath(t *testing.T) {
	p := mustParseSVG(t, "M0,0 L1,0 L1,1 Z M5,5 L6,5 L6,6 L5,5 Z")
	bs := p.Boundaries()
	want := []Boundary{
		{
			Line{Pt(0, 0), Pt(1, 0)}.Cubic(),
			Line{Pt(1, 0), Pt(1, 1)}.Cubic(),
			Line{Pt(1, 1), Pt(0, 0)}.Cubic(),
		},
		{
			Line{Pt(5, 5), Pt(6, 5)}.Cubic(),
			Line{Pt(6, 5), Pt(6, 6)}.Cubic(),
			Line{Pt(6, 6), Pt(5, 5)}.Cubic(),
		},
	}
	diff(t, want, bs)
	for i, b := range bs {
		if !b.Closed() {
			t.Errorf("boundary %d isn't closed", i)
		}
	}
}

func TestBoundariesSegments(t *testing.T) {
	p := mustParseSVG(t, "M0,0 Q1,1 2,0 C2,-1 0,-1 0,0")
	want := []Boundary{{
		QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 0)}.Raise(),
		{Pt(2, 0), Pt(2, -1), Pt(0, -1), Pt(0, 0)},
	}}
	diff(t, want, p.Boundaries())
}

func TestBoundariesSubpaths(t *testing.T) {
	tests := []struct {
		d     string
		count int
	}{
		{"", 0},
		{"M0,0", 0},
		{"M0,0 Z", 0},
		{"M0,0 M1,1 L2,2 Z", 1},
		{"M0,0 L1,1", 1},
		{"M0,0 L1,0 L0,1 Z L-1,0 L0,0", 2},
	}
	for _, tt := range tests {
		if got := len(mustParseSVG(t, tt.d).Boundaries()); got != tt.count {
			t.Errorf("%q: got %d boundaries, want %d", tt.d, got, tt.count)
		}
	}

	// Drawing after a ClosePath continues from the start of the subpath.
	bs := mustParseSVG(t, "M0,0 L1,0 L0,1 Z L-1,0 L0,0").Boundaries()
	diff(t, Pt(0, 0), bs[1][0].P0)
	if !bs[1].Closed() {
		t.Error("second boundary isn't closed")
	}

	// Open subpaths are kept for the caller to reject.
	if bs := mustParseSVG(t, "M0,0 L1,1").Boundaries(); bs[0].Closed() {
		t.Error("open subpath reported as closed")
	}
}

func TestBezPathSVG(t *testing.T) {
	const d = "M0,0 L1,0 Q1,1 0,1 C0,2 1,2 1,3 Z"
	p := mustParseSVG(t, d)
	if got := p.SVG(SVGOptions{}); got != d {
		t.Errorf("got %q, want %q", got, d)
	}

	var q BezPath
	q.MoveTo(Pt(1.0/3, 0))
	q.LineTo(Pt(2, 0.125))
	if got, want := q.SVG(SVGOptions{MaxPrecision: 3}), "M0.333,0 L2,0.125"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBezPathTransform(t *testing.T) {
	p := mustParseSVG(t, "M0,0 L1,0 Q1,1 0,1 Z")
	got := p.Transform(Translate(Vec(1, 2)))
	want := BezPath{
		MoveTo(Pt(1, 2)),
		LineTo(Pt(2, 2)),
		QuadTo(Pt(2, 3), Pt(1, 3)),
		ClosePath(),
	}
	diff(t, want, got)
}
