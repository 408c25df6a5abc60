package motionplan

import (
	"github.com/google/uuid"

	"go.viam.com/motionplan/spatialmath"
)

// Path is a read-only, ordered sequence of states produced by a planner
// (spec.md §3). It holds at least two states, except when the start state
// already satisfies the goal: the tree planners then return a path holding
// only the start. Every Path carries a unique ID so a caller can
// correlate it with the planner's log lines about the same solve.
type Path struct {
	id     uuid.UUID
	states []spatialmath.State
}

func newPath(states []spatialmath.State) *Path {
	return &Path{id: uuid.New(), states: states}
}

// ID is this path's unique identifier.
func (p *Path) ID() uuid.UUID { return p.id }

// States returns the path's states in start-to-goal order.
func (p *Path) States() []spatialmath.State { return p.states }

// Len is the number of states in the path.
func (p *Path) Len() int { return len(p.states) }
