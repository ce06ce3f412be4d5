package centroid

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultSamples is the number of points each cubic segment is sampled at
// when [Options.Samples] is zero.
const DefaultSamples = 100

// Options configures [Compute].
type Options struct {
	// Samples is the number of points sampled per cubic segment. Zero selects
	// DefaultSamples; negative values are invalid.
	Samples int

	// Concurrency is the maximum number of boundaries processed in parallel.
	// Zero or one processes them sequentially.
	Concurrency int

	// ValidateNesting enables checking that every hole lies inside the outer
	// boundary. Compose itself never checks this.
	ValidateNesting bool

	// Logger receives per-boundary diagnostics at debug level. Failures are
	// reported in the result as well, so callers decide how to surface them.
	// It defaults to a no-op logger.
	Logger *zap.Logger
}

// BoundaryReport is the outcome of processing a single boundary.
type BoundaryReport struct {
	// Index is the position of the boundary in the input.
	Index int
	// Moments is only valid if Err is nil.
	Moments MomentResult
	// Polyline is the linearized boundary. It is only valid if Err is nil.
	Polyline Polyline
	Err      error
}

// Result is the outcome of [Compute].
type Result struct {
	Compound   Compound
	Boundaries []BoundaryReport
}

// Err returns the errors of all boundaries that had to be skipped, or nil.
func (r Result) Err() error {
	var err error
	for _, b := range r.Boundaries {
		if b.Err != nil {
			err = multierr.Append(err, BoundaryError{Index: b.Index, Err: b.Err})
		}
	}
	return err
}

// Valid returns the reports of the boundaries that took part in the compound.
func (r Result) Valid() []BoundaryReport {
	var out []BoundaryReport
	for _, b := range r.Boundaries {
		if b.Err == nil {
			out = append(out, b)
		}
	}
	return out
}

// Compute determines the compound centroid of a set of boundaries. Every
// boundary is linearized and its moments are computed; boundaries that fail
// (because they aren't closed or have no area) are left out and reported in
// [Result.Boundaries]. The remaining moments are combined with [Compose].
//
// If no boundary is usable, the returned error matches [ErrEmptyInput] as
// well as the errors of the individual boundaries.
func Compute(boundaries []Boundary, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	samples := opts.Samples
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 1 || samples > MaxSamples {
		return Result{}, invalidArgument("sample count %d, need 1 to %d", samples, MaxSamples)
	}

	reports := make([]BoundaryReport, len(boundaries))
	process := func(i int) {
		r := BoundaryReport{Index: i}
		r.Polyline, r.Err = boundaries[i].Linearize(samples)
		if r.Err == nil {
			r.Moments, r.Err = r.Polyline.Moments()
		}
		if r.Err != nil {
			r.Polyline = nil
			logger.Debug("skipping boundary", zap.Int("boundary", i), zap.Error(r.Err))
		} else {
			logger.Debug("boundary",
				zap.Int("boundary", i),
				zap.Int("segments", len(boundaries[i])),
				zap.Float64("area", r.Moments.Area),
				zap.Float64("exact_area", boundaries[i].SignedArea()),
				zap.Stringer("centroid", r.Moments.Centroid))
		}
		reports[i] = r
	}

	if opts.Concurrency > 1 {
		var g errgroup.Group
		g.SetLimit(opts.Concurrency)
		for i := range boundaries {
			g.Go(func() error {
				process(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range boundaries {
			process(i)
		}
	}

	res := Result{Boundaries: reports}
	valid := res.Valid()
	if len(valid) == 0 {
		return res, multierr.Append(ErrEmptyInput, res.Err())
	}

	moments := make([]MomentResult, len(valid))
	for i, r := range valid {
		moments[i] = r.Moments
	}
	c, err := Compose(moments)
	if err != nil {
		return res, err
	}
	// Map indices back to the input's numbering.
	c.Outer = valid[c.Outer].Index
	for i, h := range c.Holes {
		c.Holes[i] = valid[h].Index
	}
	res.Compound = c

	if opts.ValidateNesting {
		if err := res.checkNesting(); err != nil {
			return res, err
		}
	}

	logger.Debug("compound",
		zap.Stringer("centroid", c.Centroid),
		zap.Float64("area", c.Area),
		zap.Int("outer", c.Outer),
		zap.Ints("holes", c.Holes))
	return res, nil
}

// checkNesting verifies that every vertex of every hole lies inside the outer
// boundary.
func (r Result) checkNesting() error {
	outer := r.Boundaries[r.Compound.Outer].Polyline
	for _, h := range r.Compound.Holes {
		for _, pt := range r.Boundaries[h].Polyline {
			if !outer.Contains(pt) {
				return BoundaryError{
					Index: h,
					Err:   fmt.Errorf("%w: %s lies outside of boundary %d", ErrNotNested, pt, r.Compound.Outer),
				}
			}
		}
	}
	return nil
}
