package centroid

import (
	"fmt"
)

// ErrorKind classifies the failures reported by this package.
type ErrorKind int

const (
	// InvalidArgument is a caller contract violation, such as a negative
	// sample count.
	InvalidArgument ErrorKind = iota + 1
	// NotClosed is reported for boundaries whose first and last points differ.
	NotClosed
	// DegenerateShape is reported for boundaries with zero area.
	DegenerateShape
	// EmptyInput is reported when nothing is left to combine.
	EmptyInput
	// DegenerateCompound is reported when the holes cancel the outer area.
	DegenerateCompound
	// NotNested is reported by the optional nesting check.
	NotNested
	// InvalidPathData is reported for malformed SVG path data and transforms.
	InvalidPathData
)

var (
	// ErrInvalidArgument contract violation error
	ErrInvalidArgument = Error{Kind: InvalidArgument, Message: "invalid argument"}
	// ErrNotClosed open boundary error
	ErrNotClosed = Error{Kind: NotClosed, Message: "path doesn't appear to be closed"}
	// ErrDegenerateShape zero area boundary error
	ErrDegenerateShape = Error{Kind: DegenerateShape, Message: "path has zero area"}
	// ErrEmptyInput no boundaries error
	ErrEmptyInput = Error{Kind: EmptyInput, Message: "need at least one closed path"}
	// ErrDegenerateCompound holes cancel the outer boundary error
	ErrDegenerateCompound = Error{Kind: DegenerateCompound, Message: "holes cancel out the outer path"}
	// ErrNotNested hole outside of the outer boundary error
	ErrNotNested = Error{Kind: NotNested, Message: "hole is not inside the outermost path"}
	// ErrInvalidPathData malformed path data error
	ErrInvalidPathData = Error{Kind: InvalidPathData, Message: "invalid path data"}
)

// Error is the error type of this package. Values are comparable, so the
// sentinels above can be matched with errors.Is.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements error
func (e Error) Error() string {
	return "centroid: " + e.Message
}

// Combine reports whether e belongs to the errors produced while combining
// boundaries. These abort the whole computation.
func (e Error) Combine() bool {
	switch e.Kind {
	case EmptyInput, DegenerateCompound, NotNested:
		return true
	default:
		return false
	}
}

// BoundaryError attaches the position of a boundary in its input sequence to
// the error that made it unusable.
type BoundaryError struct {
	Index int
	Err   error
}

// Error implements error
func (e BoundaryError) Error() string {
	return fmt.Sprintf("boundary %d: %s", e.Index, e.Err)
}

func (e BoundaryError) Unwrap() error {
	return e.Err
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
