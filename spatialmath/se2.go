package spatialmath

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// SE2State is a rigid-body pose in the plane: a translation plus a
// heading.
type SE2State struct {
	Translation r2.Point
	Rotation    SO2State
}

// NewSE2State returns a state at (x, y, theta).
func NewSE2State(x, y, theta float64) *SE2State {
	return &SE2State{Translation: r2.Point{X: x, Y: y}, Rotation: SO2State{Theta: theta}}
}

// Clone implements State.
func (s *SE2State) Clone() State {
	return &SE2State{Translation: s.Translation, Rotation: SO2State{Theta: s.Rotation.Theta}}
}

// SE2Space is R^2 x SO(2): translation bounds only, rotation unbounded.
// Weight is stored but not read by any method: SE2Space's own Distance is
// unweighted, and a CompoundSpace applies the weights passed to
// NewCompoundSpace instead.
type SE2Space struct {
	Weight      float64
	translation [2]*r1.Interval
	rotation    *SO2Space
	fraction    float64
}

// NewSE2Space constructs SE(2). translationBounds, if non-nil, must have
// length 2 ([x bounds, y bounds]); either entry may itself be nil for an
// unbounded axis. weight must be positive.
func NewSE2Space(weight float64, translationBounds []*r1.Interval) (*SE2Space, error) {
	if weight <= 0 {
		return nil, errInvalidBounds(errors.Wrapf(ErrInvalidBounds, "weight must be positive, got %v", weight))
	}
	sp := &SE2Space{Weight: weight, fraction: defaultLongestValidSegmentFraction}
	if translationBounds != nil {
		if len(translationBounds) != 2 {
			return nil, errInvalidDimension(errors.Wrapf(ErrInvalidDimension, "translation bounds length %d must be 2", len(translationBounds)))
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
	rot, err := NewSO2Space(nil)
	if err != nil {
		return nil, err
	}
	sp.rotation = rot
	return sp, nil
}

func (sp *SE2Space) translationExtent() float64 {
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
func (sp *SE2Space) SampleUniform(rng *rand.Rand) (State, error) {
	var x, y float64
	for i, axis := range sp.translation {
		if axis == nil {
			return nil, errSamplingFailed(errors.Wrapf(ErrSamplingFailed, "translation axis %d is unbounded", i))
		}
		v := axis.Lo + rng.Float64()*(axis.Hi-axis.Lo)
		if i == 0 {
			x = v
		} else {
			y = v
		}
	}
	rot, err := sp.rotation.SampleUniform(rng)
	if err != nil {
		return nil, err
	}
	return &SE2State{Translation: r2.Point{X: x, Y: y}, Rotation: *rot.(*SO2State)}, nil
}

// Distance implements StateSpace: sqrt(translation^2 + rotation^2),
// unweighted.
func (sp *SE2Space) Distance(a, b State) float64 {
	av, bv := a.(*SE2State), b.(*SE2State)
	dx := bv.Translation.X - av.Translation.X
	dy := bv.Translation.Y - av.Translation.Y
	dTrans := math.Hypot(dx, dy)
	dRot := sp.rotation.Distance(&av.Rotation, &bv.Rotation)
	return math.Hypot(dTrans, dRot)
}

// SatisfiesBounds implements StateSpace.
func (sp *SE2Space) SatisfiesBounds(s State) bool {
	sv := s.(*SE2State)
	coords := [2]float64{sv.Translation.X, sv.Translation.Y}
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
func (sp *SE2Space) EnforceBounds(s State) State {
	sv := s.(*SE2State)
	out := sv.Clone().(*SE2State)
	coords := [2]*float64{&out.Translation.X, &out.Translation.Y}
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
func (sp *SE2Space) Interpolate(a, b State, t float64, out State) {
	av, bv, ov := a.(*SE2State), b.(*SE2State), out.(*SE2State)
	ov.Translation.X = av.Translation.X + t*(bv.Translation.X-av.Translation.X)
	ov.Translation.Y = av.Translation.Y + t*(bv.Translation.Y-av.Translation.Y)
	sp.rotation.Interpolate(&av.Rotation, &bv.Rotation, t, &ov.Rotation)
}

// MaximumExtent implements StateSpace.
func (sp *SE2Space) MaximumExtent() float64 {
	return math.Hypot(sp.translationExtent(), sp.rotation.MaximumExtent())
}

// LongestValidSegmentLength implements StateSpace.
func (sp *SE2Space) LongestValidSegmentLength() float64 {
	return sp.fraction * sp.MaximumExtent()
}

// SetLongestValidSegmentFraction implements StateSpace.
func (sp *SE2Space) SetLongestValidSegmentFraction(fraction float64) error {
	if err := validLongestValidSegmentFraction(fraction); err != nil {
		return err
	}
	sp.fraction = fraction
	return nil
}
