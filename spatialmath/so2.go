package spatialmath

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/pkg/errors"
)

// SO2State is a single angle, interpreted modulo 2π.
type SO2State struct {
	Theta float64
}

// NewSO2State returns a state wrapping theta, unnormalised.
func NewSO2State(theta float64) *SO2State { return &SO2State{Theta: theta} }

// Clone implements State.
func (s *SO2State) Clone() State { return &SO2State{Theta: s.Theta} }

// normalizeAngle wraps theta into (-π, π].
func normalizeAngle(theta float64) float64 {
	wrapped := math.Mod(theta+math.Pi, 2*math.Pi)
	if wrapped <= 0 {
		wrapped += 2 * math.Pi
	}
	return wrapped - math.Pi
}

// SO2Space is the circle, optionally restricted to a sub-arc [min, max].
type SO2Space struct {
	bounds   *r1.Interval
	fraction float64
}

// NewSO2Space constructs SO(2), optionally bounded to [bounds.Lo, bounds.Hi]
// radians. A nil bounds means the full circle.
func NewSO2Space(bounds *r1.Interval) (*SO2Space, error) {
	if bounds != nil {
		if bounds.Lo > bounds.Hi || math.IsNaN(bounds.Lo) || math.IsNaN(bounds.Hi) {
			return nil, errInvalidBounds(errors.Wrapf(ErrInvalidBounds, "invalid arc [%v, %v]", bounds.Lo, bounds.Hi))
		}
	}
	return &SO2Space{bounds: bounds, fraction: defaultLongestValidSegmentFraction}, nil
}

// SampleUniform implements StateSpace.
func (sp *SO2Space) SampleUniform(rng *rand.Rand) (State, error) {
	if sp.bounds == nil {
		return &SO2State{Theta: normalizeAngle(rng.Float64()*2*math.Pi - math.Pi)}, nil
	}
	theta := sp.bounds.Lo + rng.Float64()*(sp.bounds.Hi-sp.bounds.Lo)
	return &SO2State{Theta: theta}, nil
}

// Distance implements StateSpace: minimal signed wrap-around magnitude, in
// [0, π].
func (sp *SO2Space) Distance(a, b State) float64 {
	av, bv := a.(*SO2State), b.(*SO2State)
	return math.Abs(normalizeAngle(bv.Theta - av.Theta))
}

// SatisfiesBounds implements StateSpace.
func (sp *SO2Space) SatisfiesBounds(s State) bool {
	if sp.bounds == nil {
		return true
	}
	sv := s.(*SO2State)
	theta := normalizeAngle(sv.Theta)
	return theta >= sp.bounds.Lo && theta <= sp.bounds.Hi
}

// EnforceBounds implements StateSpace: normalise, then clamp to the
// configured arc.
func (sp *SO2Space) EnforceBounds(s State) State {
	sv := s.(*SO2State)
	theta := normalizeAngle(sv.Theta)
	if sp.bounds != nil {
		if theta < sp.bounds.Lo {
			theta = sp.bounds.Lo
		} else if theta > sp.bounds.Hi {
			theta = sp.bounds.Hi
		}
	}
	return &SO2State{Theta: theta}
}

// Interpolate implements StateSpace: along the shorter arc; if bounded and
// the shorter arc would cross the arc's edge, the result is wrapped then
// clamped back into the configured arc.
func (sp *SO2Space) Interpolate(a, b State, t float64, out State) {
	av, bv, ov := a.(*SO2State), b.(*SO2State), out.(*SO2State)
	diff := normalizeAngle(bv.Theta - av.Theta)
	theta := normalizeAngle(av.Theta + t*diff)
	if sp.bounds != nil {
		if theta < sp.bounds.Lo {
			theta = sp.bounds.Lo
		} else if theta > sp.bounds.Hi {
			theta = sp.bounds.Hi
		}
	}
	ov.Theta = theta
}

// MaximumExtent implements StateSpace.
func (sp *SO2Space) MaximumExtent() float64 {
	if sp.bounds == nil {
		return math.Pi
	}
	return sp.bounds.Hi - sp.bounds.Lo
}

// LongestValidSegmentLength implements StateSpace.
func (sp *SO2Space) LongestValidSegmentLength() float64 {
	return sp.fraction * sp.MaximumExtent()
}

// SetLongestValidSegmentFraction implements StateSpace.
func (sp *SO2Space) SetLongestValidSegmentFraction(fraction float64) error {
	if err := validLongestValidSegmentFraction(fraction); err != nil {
		return err
	}
	sp.fraction = fraction
	return nil
}
