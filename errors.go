package motionplan

import "github.com/pkg/errors"

// PlanningErrorKind is a structured error classification (spec.md §7).
// Callers that want a switch instead of errors.Is matching can call
// PlanningError.Kind.
type PlanningErrorKind int

const (
	// KindUnknown is never returned by this package; it is the zero value
	// for a PlanningErrorKind that did not come from a PlanningError.
	KindUnknown PlanningErrorKind = iota
	KindInvalidDimension
	KindInvalidBounds
	KindPlannerUninitialised
	KindInvalidStartState
	KindGoalRegionUnsatisfiable
	KindTimeout
	KindNoSolutionFound
	KindSamplingError
)

// PlanningError wraps a sentinel error with its PlanningErrorKind so callers
// can either errors.Is against the package-level sentinels below or switch
// on Kind().
type PlanningError struct {
	kind PlanningErrorKind
	err  error
}

func (e *PlanningError) Error() string { return e.err.Error() }

func (e *PlanningError) Unwrap() error { return e.err }

// Kind reports the structured classification of the error.
func (e *PlanningError) Kind() PlanningErrorKind { return e.kind }

func newPlanningError(kind PlanningErrorKind, err error) *PlanningError {
	return &PlanningError{kind: kind, err: err}
}

// Sentinel errors for use with errors.Is. Planner Solve errors wrap them in
// a *PlanningError that also reports Kind(). Constructors return
// ErrInvalidBounds and ErrInvalidDimension unwrapped, and
// RRTConnectPlanner.Setup returns ErrGoalRegionUnsatisfiable unwrapped;
// ErrSamplingError is not returned by this package.
var (
	ErrPlannerUninitialised    = errors.New("motionplan: solve called before setup")
	ErrInvalidStartState       = errors.New("motionplan: start state is invalid or out of bounds")
	ErrGoalRegionUnsatisfiable = errors.New("motionplan: goal sampling could not produce a valid sample")
	ErrTimeout                 = errors.New("motionplan: time budget exhausted")
	ErrNoSolutionFound         = errors.New("motionplan: planner exhausted its budget without finding a path")
	ErrSamplingError           = errors.New("motionplan: space could not produce a sample")
	ErrInvalidDimension        = errors.New("motionplan: bounds length does not match declared dimension")
	ErrInvalidBounds           = errors.New("motionplan: bounds are malformed")
)

func errPlannerUninitialised() *PlanningError {
	return newPlanningError(KindPlannerUninitialised, ErrPlannerUninitialised)
}

func errInvalidStartState(cause error) *PlanningError {
	if cause != nil {
		return newPlanningError(KindInvalidStartState, errors.Wrap(ErrInvalidStartState, cause.Error()))
	}
	return newPlanningError(KindInvalidStartState, ErrInvalidStartState)
}

func errTimeout() *PlanningError {
	return newPlanningError(KindTimeout, ErrTimeout)
}

func errNoSolutionFound() *PlanningError {
	return newPlanningError(KindNoSolutionFound, ErrNoSolutionFound)
}
