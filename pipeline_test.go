package centroid

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestComputeCornerHole(t *testing.T) {
	boundaries := []Boundary{
		square(0, 0, 4, 4),
		square(3, 3, 4, 4),
	}
	res, err := Compute(boundaries, Options{})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1.9, 1.9), res.Compound.Centroid, approx(1e-9))
	if res.Compound.Outer != 0 {
		t.Errorf("got outer %d, want 0", res.Compound.Outer)
	}
	diff(t, []int{1}, res.Compound.Holes)
	if err := res.Err(); err != nil {
		t.Errorf("unexpected boundary errors: %v", err)
	}
	for _, r := range res.Boundaries {
		if len(r.Polyline) != len(boundaries[r.Index])*DefaultSamples {
			t.Errorf("boundary %d: got %d points, want %d", r.Index, len(r.Polyline), len(boundaries[r.Index])*DefaultSamples)
		}
	}
}

func TestComputeSkipsInvalid(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	open := Boundary{
		Line{Pt(0, 0), Pt(1, 0)}.Cubic(),
		Line{Pt(1, 0), Pt(1, 1)}.Cubic(),
	}
	flat := Boundary{
		Line{Pt(0, 0), Pt(1, 0)}.Cubic(),
		Line{Pt(1, 0), Pt(0, 0)}.Cubic(),
	}
	boundaries := []Boundary{open, square(-1, -1, 1, 1), flat}

	res, err := Compute(boundaries, Options{Samples: 10, Logger: zap.New(core)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0, 0), res.Compound.Centroid, approx(1e-12))
	if res.Compound.Outer != 1 {
		t.Errorf("got outer %d, want 1", res.Compound.Outer)
	}
	if len(res.Valid()) != 1 {
		t.Errorf("got %d valid boundaries, want 1", len(res.Valid()))
	}

	if !errors.Is(res.Boundaries[0].Err, ErrNotClosed) {
		t.Errorf("boundary 0: got error %v, want %v", res.Boundaries[0].Err, ErrNotClosed)
	}
	if !errors.Is(res.Boundaries[2].Err, ErrDegenerateShape) {
		t.Errorf("boundary 2: got error %v, want %v", res.Boundaries[2].Err, ErrDegenerateShape)
	}
	errs := multierr.Errors(res.Err())
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	var berr BoundaryError
	if !errors.As(errs[1], &berr) || berr.Index != 2 {
		t.Errorf("got %v, want an error for boundary 2", errs[1])
	}

	skipped := logs.FilterMessage("skipping boundary").All()
	if len(skipped) != 2 {
		t.Fatalf("got %d log entries, want 2", len(skipped))
	}
	if i := skipped[0].ContextMap()["boundary"]; i != int64(0) {
		t.Errorf("got boundary %v in first entry, want 0", i)
	}
	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 0 {
		t.Errorf("got %d warnings, want none", n)
	}
}

func TestComputeNothingValid(t *testing.T) {
	open := Boundary{Line{Pt(0, 0), Pt(1, 0)}.Cubic()}
	res, err := Compute([]Boundary{open, open}, Options{})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got error %v, want %v", err, ErrEmptyInput)
	}
	if !errors.Is(err, ErrNotClosed) {
		t.Errorf("got error %v, want it to include %v", err, ErrNotClosed)
	}
	if len(res.Boundaries) != 2 {
		t.Errorf("got %d reports, want 2", len(res.Boundaries))
	}

	if _, err := Compute(nil, Options{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got error %v, want %v", err, ErrEmptyInput)
	}
}

func TestComputeSamples(t *testing.T) {
	if _, err := Compute([]Boundary{square(0, 0, 1, 1)}, Options{Samples: math.MaxInt}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := Compute([]Boundary{square(0, 0, 1, 1)}, Options{Samples: -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want %v", err, ErrInvalidArgument)
	}
	res, err := Compute([]Boundary{square(0, 0, 1, 1)}, Options{Samples: 7})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.Boundaries[0].Polyline); n != 4*7 {
		t.Errorf("got %d points, want %d", n, 4*7)
	}
}

func TestComputeConcurrent(t *testing.T) {
	var boundaries []Boundary
	for i := range 50 {
		o := float64(i) * 0.01
		boundaries = append(boundaries, square(o, o, 1+o, 1+o))
	}
	boundaries = append(boundaries, square(-100, -100, 100, 100))

	seq, err := Compute(boundaries, Options{})
	if err != nil {
		t.Fatal(err)
	}
	par, err := Compute(boundaries, Options{Concurrency: 8})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, seq, par)
}

func TestComputeValidateNesting(t *testing.T) {
	inside := []Boundary{square(0, 0, 4, 4), square(1, 1, 2, 2)}
	if _, err := Compute(inside, Options{ValidateNesting: true}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	outside := []Boundary{square(0, 0, 4, 4), square(10, 10, 11, 11)}
	if _, err := Compute(outside, Options{}); err != nil {
		t.Errorf("unexpected error without validation: %v", err)
	}
	_, err := Compute(outside, Options{ValidateNesting: true})
	if !errors.Is(err, ErrNotNested) {
		t.Fatalf("got error %v, want %v", err, ErrNotNested)
	}
	var berr BoundaryError
	if !errors.As(err, &berr) || berr.Index != 1 {
		t.Errorf("got %v, want an error for boundary 1", err)
	}
}

func TestErrorKinds(t *testing.T) {
	for _, err := range []Error{ErrEmptyInput, ErrDegenerateCompound, ErrNotNested} {
		if !err.Combine() {
			t.Errorf("%v should be a combination error", err)
		}
	}
	for _, err := range []Error{ErrInvalidArgument, ErrNotClosed, ErrDegenerateShape, ErrInvalidPathData} {
		if err.Combine() {
			t.Errorf("%v shouldn't be a combination error", err)
		}
	}
	err := BoundaryError{Index: 3, Err: ErrNotClosed}
	if got, want := err.Error(), "boundary 3: centroid: path doesn't appear to be closed"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
