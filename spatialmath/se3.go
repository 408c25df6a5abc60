package spatialmath

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// SE3State is a rigid-body pose in 3D: a translation plus a rotation.
type SE3State struct {
	Translation r3.Vector
	Rotation    SO3State
}

// NewSE3State returns a state at translation with the given rotation.
func NewSE3State(translation r3.Vector, rotation *SO3State) *SE3State {
	return &SE3State{Translation: translation, Rotation: *rotation}
}

// Clone implements State.
func (s *SE3State) Clone() State {
	return &SE3State{Translation: s.Translation, Rotation: SO3State{Q: s.Rotation.Q}}
}

// SE3Space is R^3 x SO(3): translation bounds only, rotation unbounded.
// Weight is stored but not read by any method: SE3Space's own Distance is
// unweighted, and a CompoundSpace applies the weights passed to
// NewCompoundSpace instead.
type SE3Space struct {
	Weight      float64
	translation [3]*r1.Interval
	rotation    *SO3Space
	fraction    float64
}

// NewSE3Space constructs SE(3). translationBounds, if non-nil, must have
// length 3; entries may be nil for an unbounded axis. weight must be
// positive.
func NewSE3Space(weight float64, translationBounds []*r1.Interval) (*SE3Space, error) {
	if weight <= 0 {
		return nil, errInvalidBounds(errors.Wrapf(ErrInvalidBounds, "weight must be positive, got %v", weight))
	}
	sp := &SE3Space{Weight: weight, fraction: defaultLongestValidSegmentFraction}
	if translationBounds != nil {
		if len(translationBounds) != 3 {
			return nil, errInvalidDimension(errors.Wrapf(ErrInvalidDimension, "translation bounds length %d must be 3", len(translationBounds)))
		}
		for i, b := range translationBounds {
			if b == nil {
				continue
			}
			if b.Lo > b.Hi || math.IsNaN(b.Lo) || math.IsNaN(b.Hi) {
				return nil, errInvalidBounds(errors.Wrapf(ErrInvalidBounds, "translation axis %d: invalid bound [%v, %v]", i, b.Lo, b.Hi))
			}
			sp.translation[i] = b
		}
	}
	rot, err := NewSO3Space(nil, 0)
	if err != nil {
		return nil, err
	}
	sp.rotation = rot
	return sp, nil
}

func (sp *SE3Space) translationExtent() float64 {
	sumSq := 0.0
	for _, b := range sp.translation {
		if b == nil {
			return math.Inf(1)
		}
		d := b.Hi - b.Lo
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}

// SampleUniform implements StateSpace.
func (sp *SE3Space) SampleUniform(rng *rand.Rand) (State, error) {
	var coords [3]float64
	for i, axis := range sp.translation {
		if axis == nil {
			return nil, errSamplingFailed(errors.Wrapf(ErrSamplingFailed, "translation axis %d is unbounded", i))
		}
		coords[i] = axis.Lo + rng.Float64()*(axis.Hi-axis.Lo)
	}
	rot, err := sp.rotation.SampleUniform(rng)
	if err != nil {
		return nil, err
	}
	return &SE3State{
		Translation: r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]},
		Rotation:    *rot.(*SO3State),
	}, nil
}

// Distance implements StateSpace: sqrt(translation^2 + rotation^2),
// unweighted.
func (sp *SE3Space) Distance(a, b State) float64 {
	av, bv := a.(*SE3State), b.(*SE3State)
	dTrans := bv.Translation.Sub(av.Translation).Norm()
	dRot := sp.rotation.Distance(&av.Rotation, &bv.Rotation)
	return math.Hypot(dTrans, dRot)
}

// SatisfiesBounds implements StateSpace.
func (sp *SE3Space) SatisfiesBounds(s State) bool {
	sv := s.(*SE3State)
	coords := [3]float64{sv.Translation.X, sv.Translation.Y, sv.Translation.Z}
	for i, b := range sp.translation {
		if b == nil {
			continue
		}
		if coords[i] < b.Lo || coords[i] > b.Hi {
			return false
		}
	}
	return true
}

// EnforceBounds implements StateSpace.
func (sp *SE3Space) EnforceBounds(s State) State {
	sv := s.(*SE3State)
	out := sv.Clone().(*SE3State)
	coords := [3]*float64{&out.Translation.X, &out.Translation.Y, &out.Translation.Z}
	for i, b := range sp.translation {
		if b == nil {
			continue
		}
		if *coords[i] < b.Lo {
			*coords[i] = b.Lo
		} else if *coords[i] > b.Hi {
			*coords[i] = b.Hi
		}
	}
	return out
}

// Interpolate implements StateSpace: componentwise.
func (sp *SE3Space) Interpolate(a, b State, t float64, out State) {
	av, bv, ov := a.(*SE3State), b.(*SE3State), out.(*SE3State)
	ov.Translation = av.Translation.Add(bv.Translation.Sub(av.Translation).Mul(t))
	sp.rotation.Interpolate(&av.Rotation, &bv.Rotation, t, &ov.Rotation)
}

// MaximumExtent implements StateSpace.
func (sp *SE3Space) MaximumExtent() float64 {
	return math.Hypot(sp.translationExtent(), sp.rotation.MaximumExtent())
}

// LongestValidSegmentLength implements StateSpace.
func (sp *SE3Space) LongestValidSegmentLength() float64 {
	return sp.fraction * sp.MaximumExtent()
}

// SetLongestValidSegmentFraction implements StateSpace.
func (sp *SE3Space) SetLongestValidSegmentFraction(fraction float64) error {
	if err := validLongestValidSegmentFraction(fraction); err != nil {
		return err
	}
	sp.fraction = fraction
	return nil
}
