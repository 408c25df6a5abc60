package motionplan

import "go.viam.com/motionplan/spatialmath"

// ProblemDefinition is the read-only triple (space, start states, goal)
// passed to every planner (spec.md §3, §6). It is immutable after
// construction; planners never mutate it.
type ProblemDefinition struct {
	space       spatialmath.StateSpace
	startStates []spatialmath.State
	goal        Goal
}

// NewProblemDefinition validates and bundles a problem. At least one start
// state is required, and every start state must satisfy the space's bounds.
// A start state's validity against the caller's StateValidityChecker is
// checked later by the planner (InvalidStartState), not here.
func NewProblemDefinition(space spatialmath.StateSpace, startStates []spatialmath.State, goal Goal) (*ProblemDefinition, error) {
	if len(startStates) == 0 {
		return nil, errInvalidStartState(nil)
	}
	for _, s := range startStates {
		if !space.SatisfiesBounds(s) {
			return nil, errInvalidStartState(nil)
		}
	}
	states := make([]spatialmath.State, len(startStates))
	copy(states, startStates)
	return &ProblemDefinition{space: space, startStates: states, goal: goal}, nil
}

// Space returns the configuration space the problem is defined over.
func (p *ProblemDefinition) Space() spatialmath.StateSpace { return p.space }

// StartStates returns the problem's start states. Every planner in this
// package uses only the first; the others are not added as roots.
func (p *ProblemDefinition) StartStates() []spatialmath.State { return p.startStates }

// Goal returns the problem's goal oracle.
func (p *ProblemDefinition) Goal() Goal { return p.goal }
