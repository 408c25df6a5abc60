package spatialmath

import "github.com/pkg/errors"

// SpaceErrorKind is a structured error classification for the state-space
// contract (spec.md §7), mirroring motionplan.PlanningErrorKind so a caller
// juggling both packages' errors can switch on the same shape instead of
// learning two conventions.
type SpaceErrorKind int

const (
	// KindUnknown is the zero value for a SpaceErrorKind that did not come
	// from a SpaceError.
	KindUnknown SpaceErrorKind = iota
	KindInvalidDimension
	KindInvalidBounds
	KindSamplingFailed
)

// SpaceError wraps a sentinel error with its SpaceErrorKind so callers can
// either errors.Is against the package-level sentinels below or switch on
// Kind().
type SpaceError struct {
	kind SpaceErrorKind
	err  error
}

func (e *SpaceError) Error() string { return e.err.Error() }

func (e *SpaceError) Unwrap() error { return e.err }

// Kind reports the structured classification of the error.
func (e *SpaceError) Kind() SpaceErrorKind { return e.kind }

func newSpaceError(kind SpaceErrorKind, err error) *SpaceError {
	return &SpaceError{kind: kind, err: err}
}

// Sentinel errors for the state-space contract (spec.md §7). Callers should
// match with errors.Is rather than comparing error strings; each is also
// reachable through Kind() on the *SpaceError that wraps it.
var (
	// ErrInvalidDimension is returned when a bounds slice's length does not
	// match the dimension a space was constructed with.
	ErrInvalidDimension = errors.New("spatialmath: invalid dimension")

	// ErrInvalidBounds is returned when a bound's min exceeds its max, a
	// bound value is NaN, or a weight/fraction fails its positivity check.
	ErrInvalidBounds = errors.New("spatialmath: invalid bounds")

	// ErrSamplingFailed is returned when sampleUniform cannot produce a
	// state, e.g. an unbounded RealVector axis or repeated rejection-sample
	// failure for a bounded SO3 cap.
	ErrSamplingFailed = errors.New("spatialmath: sampling failed")
)

func errInvalidDimension(cause error) *SpaceError {
	return newSpaceError(KindInvalidDimension, cause)
}

func errInvalidBounds(cause error) *SpaceError {
	return newSpaceError(KindInvalidBounds, cause)
}

func errSamplingFailed(cause error) *SpaceError {
	return newSpaceError(KindSamplingFailed, cause)
}
