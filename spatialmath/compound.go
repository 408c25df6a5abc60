package spatialmath

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// CompoundState is an ordered, heterogeneous list of component states.
type CompoundState struct {
	Components []State
}

// NewCompoundState wraps components in order.
func NewCompoundState(components ...State) *CompoundState {
	return &CompoundState{Components: components}
}

// Clone implements State.
func (s *CompoundState) Clone() State {
	cloned := make([]State, len(s.Components))
	for i, c := range s.Components {
		cloned[i] = c.Clone()
	}
	return &CompoundState{Components: cloned}
}

// CompoundSpace is a weighted composite of heterogeneous sub-spaces. Length
// and component kinds are fixed at construction; weights are positive and
// fixed at construction.
type CompoundSpace struct {
	subspaces []StateSpace
	weights   []float64
	fraction  float64
}

// NewCompoundSpace constructs a compound space. len(subspaces) must equal
// len(weights) and every weight must be positive.
func NewCompoundSpace(subspaces []StateSpace, weights []float64) (*CompoundSpace, error) {
	if len(subspaces) != len(weights) {
		return nil, errInvalidDimension(errors.Wrapf(ErrInvalidDimension, "subspaces length %d does not match weights length %d", len(subspaces), len(weights)))
	}
	if len(subspaces) == 0 {
		return nil, errInvalidDimension(errors.Wrap(ErrInvalidDimension, "compound space must have at least one subspace"))
	}
	for i, w := range weights {
		if w <= 0 || math.IsNaN(w) {
			return nil, errInvalidBounds(errors.Wrapf(ErrInvalidBounds, "subspace %d: weight must be positive, got %v", i, w))
		}
	}
	return &CompoundSpace{subspaces: subspaces, weights: weights, fraction: defaultLongestValidSegmentFraction}, nil
}

// Subspaces returns the compound space's ordered component subspaces.
func (sp *CompoundSpace) Subspaces() []StateSpace { return sp.subspaces }

// Weights returns the compound space's per-subspace weights, in the same
// order as Subspaces.
func (sp *CompoundSpace) Weights() []float64 { return sp.weights }

// SampleUniform implements StateSpace.
func (sp *CompoundSpace) SampleUniform(rng *rand.Rand) (State, error) {
	components := make([]State, len(sp.subspaces))
	for i, sub := range sp.subspaces {
		s, err := sub.SampleUniform(rng)
		if err != nil {
			return nil, err
		}
		components[i] = s
	}
	return &CompoundState{Components: components}, nil
}

// Distance implements StateSpace: sqrt(sum w_i^2 * d_i^2).
func (sp *CompoundSpace) Distance(a, b State) float64 {
	av, bv := a.(*CompoundState), b.(*CompoundState)
	sumSq := 0.0
	for i, sub := range sp.subspaces {
		d := sub.Distance(av.Components[i], bv.Components[i])
		w := sp.weights[i]
		sumSq += w * w * d * d
	}
	return math.Sqrt(sumSq)
}

// SatisfiesBounds implements StateSpace.
func (sp *CompoundSpace) SatisfiesBounds(s State) bool {
	sv := s.(*CompoundState)
	for i, sub := range sp.subspaces {
		if !sub.SatisfiesBounds(sv.Components[i]) {
			return false
		}
	}
	return true
}

// EnforceBounds implements StateSpace.
func (sp *CompoundSpace) EnforceBounds(s State) State {
	sv := s.(*CompoundState)
	out := make([]State, len(sv.Components))
	for i, sub := range sp.subspaces {
		out[i] = sub.EnforceBounds(sv.Components[i])
	}
	return &CompoundState{Components: out}
}

// Interpolate implements StateSpace: componentwise.
func (sp *CompoundSpace) Interpolate(a, b State, t float64, out State) {
	av, bv, ov := a.(*CompoundState), b.(*CompoundState), out.(*CompoundState)
	if len(ov.Components) != len(av.Components) {
		// out was not pre-seeded with one component per subspace (the
		// expected reuse pattern); seed it from a so every subsequent call
		// with the same out buffer skips this branch.
		ov.Components = make([]State, len(av.Components))
		for i := range av.Components {
			ov.Components[i] = av.Components[i].Clone()
		}
	}
	for i, sub := range sp.subspaces {
		sub.Interpolate(av.Components[i], bv.Components[i], t, ov.Components[i])
	}
}

// MaximumExtent implements StateSpace.
func (sp *CompoundSpace) MaximumExtent() float64 {
	sumSq := 0.0
	for i, sub := range sp.subspaces {
		w := sp.weights[i]
		e := sub.MaximumExtent()
		sumSq += w * w * e * e
	}
	return math.Sqrt(sumSq)
}

// LongestValidSegmentLength implements StateSpace.
func (sp *CompoundSpace) LongestValidSegmentLength() float64 {
	return sp.fraction * sp.MaximumExtent()
}

// SetLongestValidSegmentFraction implements StateSpace.
func (sp *CompoundSpace) SetLongestValidSegmentFraction(fraction float64) error {
	if err := validLongestValidSegmentFraction(fraction); err != nil {
		return err
	}
	sp.fraction = fraction
	return nil
}
