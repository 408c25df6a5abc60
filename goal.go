package motionplan

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"

	"go.viam.com/motionplan/spatialmath"
)

// goalRegionSampleAttempts bounds the rejection-sampling fallback SampleGoal
// falls back to for a state-space kind sampleNear does not recognise.
const goalRegionSampleAttempts = 1000

// Goal is the weakest goal capability: a membership test over states
// (spec.md §4.3).
type Goal interface {
	IsSatisfied(state spatialmath.State) bool
}

// GoalRegion refines Goal with a distance function; distanceGoal == 0 must
// imply IsSatisfied.
type GoalRegion interface {
	Goal
	DistanceGoal(state spatialmath.State) float64
}

// GoalSampleable refines GoalRegion with the ability to draw states from the
// satisfied set. RRT, RRT-Connect, and RRT* require this for goal biasing;
// PRM only requires GoalRegion.
type GoalSampleable interface {
	GoalRegion
	SampleGoal(rng *rand.Rand) (spatialmath.State, error)
}

// goalRegion is a ball of the given radius around target, measured with the
// owning space's own Distance.
type goalRegion struct {
	space  spatialmath.StateSpace
	target spatialmath.State
	radius float64
}

// NewGoalRegion builds a GoalSampleable goal region: the set of states
// within radius of target under space.Distance. radius must be
// non-negative.
func NewGoalRegion(space spatialmath.StateSpace, target spatialmath.State, radius float64) (GoalSampleable, error) {
	if radius < 0 {
		return nil, ErrInvalidBounds
	}
	return &goalRegion{space: space, target: target, radius: radius}, nil
}

func (g *goalRegion) IsSatisfied(state spatialmath.State) bool {
	return g.DistanceGoal(state) <= g.radius
}

func (g *goalRegion) DistanceGoal(state spatialmath.State) float64 {
	return g.space.Distance(g.target, state)
}

// SampleGoal draws a state inside the goal ball via a kind-specific
// closed-form construction (a random offset inside the radius ball for
// RealVector/SE2/SE3, a random angle within an arc for SO2, a random
// quaternion within a geodesic cap for SO3), falling back to rejection
// sampling only for a state-space kind sampleNear does not recognise.
func (g *goalRegion) SampleGoal(rng *rand.Rand) (spatialmath.State, error) {
	if s, ok := sampleNear(g.space, g.target, g.radius, rng); ok {
		return s, nil
	}
	for i := 0; i < goalRegionSampleAttempts; i++ {
		s, err := g.space.SampleUniform(rng)
		if err != nil {
			continue
		}
		if g.IsSatisfied(s) {
			return s, nil
		}
	}
	return nil, newPlanningError(KindGoalRegionUnsatisfiable, ErrGoalRegionUnsatisfiable)
}

// compoundGoalRegion constrains only the subspace at index to within radius
// of target under that subspace's own Distance; every other component is
// unconstrained ("any value"). This is the shape spec.md §8 scenario 4
// needs: a translation ball with the heading left free.
type compoundGoalRegion struct {
	space  *spatialmath.CompoundSpace
	index  int
	target spatialmath.State
	radius float64
}

// NewCompoundGoalRegion builds a GoalSampleable goal over a CompoundSpace
// that only constrains the component at index, leaving the rest free.
// radius must be non-negative and index must be a valid subspace index.
func NewCompoundGoalRegion(space *spatialmath.CompoundSpace, index int, target spatialmath.State, radius float64) (GoalSampleable, error) {
	if radius < 0 {
		return nil, ErrInvalidBounds
	}
	if index < 0 || index >= len(space.Subspaces()) {
		return nil, ErrInvalidDimension
	}
	return &compoundGoalRegion{space: space, index: index, target: target, radius: radius}, nil
}

func (g *compoundGoalRegion) IsSatisfied(state spatialmath.State) bool {
	return g.DistanceGoal(state) <= g.radius
}

func (g *compoundGoalRegion) DistanceGoal(state spatialmath.State) float64 {
	sv := state.(*spatialmath.CompoundState)
	sub := g.space.Subspaces()[g.index]
	return sub.Distance(g.target, sv.Components[g.index])
}

func (g *compoundGoalRegion) SampleGoal(rng *rand.Rand) (spatialmath.State, error) {
	subspaces := g.space.Subspaces()
	components := make([]spatialmath.State, len(subspaces))
	for i, sub := range subspaces {
		if i == g.index {
			s, ok := sampleNear(sub, g.target, g.radius, rng)
			if !ok {
				return nil, newPlanningError(KindGoalRegionUnsatisfiable, ErrGoalRegionUnsatisfiable)
			}
			components[i] = s
			continue
		}
		s, err := sub.SampleUniform(rng)
		if err != nil {
			return nil, newPlanningError(KindGoalRegionUnsatisfiable, ErrGoalRegionUnsatisfiable)
		}
		components[i] = s
	}
	return spatialmath.NewCompoundState(components...), nil
}

// sampleNear draws a state within radius of target under space's own
// distance, via a closed-form construction specific to the space's
// concrete kind. The second return is false when space is a kind this
// function does not recognise (e.g. a caller-supplied StateSpace), letting
// callers fall back to rejection sampling.
func sampleNear(space spatialmath.StateSpace, target spatialmath.State, radius float64, rng *rand.Rand) (spatialmath.State, bool) {
	switch sp := space.(type) {
	case *spatialmath.RealVectorSpace:
		t := target.(*spatialmath.RealVectorState)
		offset := sampleBallOffset(rng, sp.Dimension(), radius)
		values := make([]float64, len(t.Values))
		for i := range values {
			values[i] = t.Values[i] + offset[i]
		}
		return sp.EnforceBounds(spatialmath.NewRealVectorState(values)), true

	case *spatialmath.SO2Space:
		t := target.(*spatialmath.SO2State)
		theta := t.Theta + (rng.Float64()*2-1)*radius
		return sp.EnforceBounds(spatialmath.NewSO2State(theta)), true

	case *spatialmath.SO3Space:
		t := target.(*spatialmath.SO3State)
		cap, err := spatialmath.NewSO3Space(t, math.Min(radius, math.Pi))
		if err != nil {
			return nil, false
		}
		s, err := cap.SampleUniform(rng)
		if err != nil {
			return nil, false
		}
		return s, true

	case *spatialmath.SE2Space:
		t := target.(*spatialmath.SE2State)
		offset := sampleBallOffset(rng, 2, radius)
		near := spatialmath.NewSE2State(t.Translation.X+offset[0], t.Translation.Y+offset[1], t.Rotation.Theta)
		return sp.EnforceBounds(near), true

	case *spatialmath.SE3Space:
		t := target.(*spatialmath.SE3State)
		offset := sampleBallOffset(rng, 3, radius)
		rot := t.Rotation
		near := spatialmath.NewSE3State(r3.Vector{
			X: t.Translation.X + offset[0],
			Y: t.Translation.Y + offset[1],
			Z: t.Translation.Z + offset[2],
		}, &rot)
		return sp.EnforceBounds(near), true

	case *spatialmath.CompoundSpace:
		t := target.(*spatialmath.CompoundState)
		subspaces := sp.Subspaces()
		weights := sp.Weights()
		components := make([]spatialmath.State, len(subspaces))
		for i, sub := range subspaces {
			if i == 0 {
				s, ok := sampleNear(sub, t.Components[0], radius/weights[0], rng)
				if !ok {
					return nil, false
				}
				components[0] = s
				continue
			}
			components[i] = t.Components[i].Clone()
		}
		return spatialmath.NewCompoundState(components...), true

	default:
		return nil, false
	}
}

// sampleBallOffset draws a uniformly-distributed point inside the
// n-dimensional ball of the given radius, via a random direction (a
// normalised Gaussian vector) scaled by radius*u^(1/n); for n=2 this
// collapses to the familiar radius*sqrt(u) disk-sampling draw.
func sampleBallOffset(rng *rand.Rand, n int, radius float64) []float64 {
	offset := make([]float64, n)
	if radius <= 0 {
		return offset
	}
	sumSq := 0.0
	for i := range offset {
		offset[i] = rng.NormFloat64()
		sumSq += offset[i] * offset[i]
	}
	norm := math.Sqrt(sumSq)
	if norm == 0 {
		return offset
	}
	scale := radius * math.Pow(rng.Float64(), 1.0/float64(n)) / norm
	for i := range offset {
		offset[i] *= scale
	}
	return offset
}
