package motionplan

import "go.viam.com/motionplan/spatialmath"

// StateValidityChecker is the boolean oracle planners consult to decide
// whether a sampled or interpolated state is collision-free (spec.md §4.2).
// Implementations are expected to be pure and cheap relative to sampling;
// a checker that fails internally must still return a bool, with false as
// the safe default.
type StateValidityChecker interface {
	IsValid(state spatialmath.State) bool
}

// safeIsValid calls checker.IsValid and recovers a panicking checker into
// the safe false result, per spec.md §7 ("anything unexpected in user
// callbacks never aborts the planner").
func safeIsValid(checker StateValidityChecker, state spatialmath.State) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()
	return checker.IsValid(state)
}
