package spatialmath

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r1"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// RealVectorState is a point in R^n.
type RealVectorState struct {
	Values []float64
}

// NewRealVectorState returns a state wrapping a copy of values.
func NewRealVectorState(values []float64) *RealVectorState {
	cp := make([]float64, len(values))
	copy(cp, values)
	return &RealVectorState{Values: cp}
}

// Clone implements State.
func (s *RealVectorState) Clone() State {
	return NewRealVectorState(s.Values)
}

// RealVectorSpace is R^n with optional per-axis bounds.
//
// Bounds are stored one *r1.Interval per axis; a nil entry means that axis
// is unbounded. A space is fully unbounded when every entry is nil.
type RealVectorSpace struct {
	dimension int
	bounds    []*r1.Interval
	fraction  float64
}

// NewRealVectorSpace constructs an n-dimensional space. bounds may be nil
// (fully unbounded) or must have length dimension, with individual entries
// nil for an unbounded axis.
func NewRealVectorSpace(dimension int, bounds []*r1.Interval) (*RealVectorSpace, error) {
	if dimension <= 0 {
		return nil, errInvalidDimension(errors.Wrapf(ErrInvalidDimension, "dimension must be positive, got %d", dimension))
	}
	if bounds != nil {
		if len(bounds) != dimension {
			return nil, errInvalidDimension(errors.Wrapf(ErrInvalidDimension, "bounds length %d does not match dimension %d", len(bounds), dimension))
		}
		for i, b := range bounds {
			if b == nil {
				continue
			}
			if b.Lo > b.Hi || math.IsNaN(b.Lo) || math.IsNaN(b.Hi) {
				return nil, errInvalidBounds(errors.Wrapf(ErrInvalidBounds, "axis %d: invalid bound [%v, %v]", i, b.Lo, b.Hi))
			}
		}
	}
	return &RealVectorSpace{dimension: dimension, bounds: bounds, fraction: defaultLongestValidSegmentFraction}, nil
}

// Dimension returns the number of axes.
func (sp *RealVectorSpace) Dimension() int { return sp.dimension }

// SampleUniform implements StateSpace.
func (sp *RealVectorSpace) SampleUniform(rng *rand.Rand) (State, error) {
	values := make([]float64, sp.dimension)
	for i := 0; i < sp.dimension; i++ {
		var b *r1.Interval
		if sp.bounds != nil {
			b = sp.bounds[i]
		}
		if b == nil {
			return nil, errSamplingFailed(errors.Wrapf(ErrSamplingFailed, "axis %d is unbounded", i))
		}
		values[i] = b.Lo + rng.Float64()*(b.Hi-b.Lo)
	}
	return &RealVectorState{Values: values}, nil
}

// Distance implements StateSpace: Euclidean distance.
func (sp *RealVectorSpace) Distance(a, b State) float64 {
	av, bv := a.(*RealVectorState), b.(*RealVectorState)
	return floats.Distance(av.Values, bv.Values, 2)
}

// SatisfiesBounds implements StateSpace.
func (sp *RealVectorSpace) SatisfiesBounds(s State) bool {
	sv := s.(*RealVectorState)
	if sp.bounds == nil {
		return true
	}
	for i, b := range sp.bounds {
		if b == nil {
			continue
		}
		if sv.Values[i] < b.Lo || sv.Values[i] > b.Hi {
			return false
		}
	}
	return true
}

// EnforceBounds implements StateSpace: componentwise clamp.
func (sp *RealVectorSpace) EnforceBounds(s State) State {
	sv := s.(*RealVectorState)
	out := NewRealVectorState(sv.Values)
	if sp.bounds == nil {
		return out
	}
	for i, b := range sp.bounds {
		if b == nil {
			continue
		}
		if out.Values[i] < b.Lo {
			out.Values[i] = b.Lo
		} else if out.Values[i] > b.Hi {
			out.Values[i] = b.Hi
		}
	}
	return out
}

// Interpolate implements StateSpace: componentwise lerp.
func (sp *RealVectorSpace) Interpolate(a, b State, t float64, out State) {
	av, bv, ov := a.(*RealVectorState), b.(*RealVectorState), out.(*RealVectorState)
	if len(ov.Values) != len(av.Values) {
		ov.Values = make([]float64, len(av.Values))
	}
	for i := range av.Values {
		ov.Values[i] = av.Values[i] + t*(bv.Values[i]-av.Values[i])
	}
}

// MaximumExtent implements StateSpace. An unbounded axis makes the extent
// infinite, collapsing LongestValidSegmentLength to a single motion check
// per edge rather than an undefined resolution.
func (sp *RealVectorSpace) MaximumExtent() float64 {
	if sp.bounds == nil {
		return math.Inf(1)
	}
	sumSq := 0.0
	for _, b := range sp.bounds {
		if b == nil {
			return math.Inf(1)
		}
		d := b.Hi - b.Lo
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}

// LongestValidSegmentLength implements StateSpace.
func (sp *RealVectorSpace) LongestValidSegmentLength() float64 {
	return sp.fraction * sp.MaximumExtent()
}

// SetLongestValidSegmentFraction implements StateSpace.
func (sp *RealVectorSpace) SetLongestValidSegmentFraction(fraction float64) error {
	if err := validLongestValidSegmentFraction(fraction); err != nil {
		return err
	}
	sp.fraction = fraction
	return nil
}
