package spatialmath

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// quaternionColinearEpsilon sets the |cos θ| threshold, 1 minus this value,
// above which SLERP falls back to normalised linear interpolation to avoid a
// near-zero divide-by-sin(θ).
const quaternionColinearEpsilon = 1e-6

// so3RejectionSampleAttempts bounds the rejection loop used to sample a
// bounded SO3Space; a cap this large resolves inside the loop for any
// maxAngle a caller would plausibly configure.
const so3RejectionSampleAttempts = 1000

// SO3State is a unit quaternion rotation; q and -q denote the same
// rotation. The quaternion is kept normalised to unit length at
// construction and after every operation that produces a new state.
type SO3State struct {
	Q quat.Number // Real = w, Imag = x, Jmag = y, Kmag = z
}

// NewSO3State returns a state for the quaternion (x, y, z, w), normalised to
// unit length.
func NewSO3State(x, y, z, w float64) *SO3State {
	return &SO3State{Q: normalizeQuat(quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z})}
}

// IdentitySO3State returns the identity rotation.
func IdentitySO3State() *SO3State { return NewSO3State(0, 0, 0, 1) }

// X, Y, Z, W return the quaternion's components.
func (s *SO3State) X() float64 { return s.Q.Imag }
func (s *SO3State) Y() float64 { return s.Q.Jmag }
func (s *SO3State) Z() float64 { return s.Q.Kmag }
func (s *SO3State) W() float64 { return s.Q.Real }

// Clone implements State.
func (s *SO3State) Clone() State { return &SO3State{Q: s.Q} }

func normalizeQuat(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/n, q)
}

func quatDot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SO3Space is the space of 3D rotations, optionally restricted to those
// within a maximum geodesic angle of a centre quaternion.
type SO3Space struct {
	center    *quat.Number
	maxAngle  float64
	fraction  float64
	isBounded bool
}

// NewSO3Space constructs SO(3). If center/maxAngle is provided, samples and
// bounds checks are restricted to quaternions within maxAngle radians of
// center.
func NewSO3Space(center *SO3State, maxAngle float64) (*SO3Space, error) {
	sp := &SO3Space{fraction: defaultLongestValidSegmentFraction}
	if center != nil {
		if maxAngle < 0 || math.IsNaN(maxAngle) {
			return nil, errInvalidBounds(errors.Wrapf(ErrInvalidBounds, "invalid max angle %v", maxAngle))
		}
		c := center.Q
		sp.center = &c
		sp.maxAngle = maxAngle
		sp.isBounded = true
	}
	return sp, nil
}

// Distance implements StateSpace: 2*arccos(|<a,b>|), the full rotation
// angle in [0, π], treating q and -q as equivalent.
func (sp *SO3Space) Distance(a, b State) float64 {
	av, bv := a.(*SO3State), b.(*SO3State)
	dot := clamp(math.Abs(quatDot(av.Q, bv.Q)), -1, 1)
	return 2 * math.Acos(dot)
}

func shoemakeSample(rng *rand.Rand) quat.Number {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	sqrt1u1 := math.Sqrt(1 - u1)
	sqrtu1 := math.Sqrt(u1)
	x := sqrt1u1 * math.Sin(2*math.Pi*u2)
	y := sqrt1u1 * math.Cos(2*math.Pi*u2)
	z := sqrtu1 * math.Sin(2*math.Pi*u3)
	w := sqrtu1 * math.Cos(2*math.Pi*u3)
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// SampleUniform implements StateSpace.
func (sp *SO3Space) SampleUniform(rng *rand.Rand) (State, error) {
	if !sp.isBounded {
		return &SO3State{Q: shoemakeSample(rng)}, nil
	}
	// Rotation angle omega is drawn by rejection with density proportional to
	// 1-cos(omega), the axis uniformly; the offset is applied to the centre.
	maxAngle := math.Min(sp.maxAngle, math.Pi)
	for attempt := 0; attempt < so3RejectionSampleAttempts; attempt++ {
		omega := rng.Float64() * maxAngle
		if rng.Float64()*(1-math.Cos(maxAngle)) > 1-math.Cos(omega) {
			continue
		}
		z, phi := 2*rng.Float64()-1, 2*math.Pi*rng.Float64()
		s, r := math.Sin(omega/2), math.Sqrt(1-z*z)
		offset := quat.Number{Real: math.Cos(omega / 2), Imag: s * r * math.Cos(phi), Jmag: s * r * math.Sin(phi), Kmag: s * z}
		return &SO3State{Q: normalizeQuat(quat.Mul(*sp.center, offset))}, nil
	}
	return nil, errSamplingFailed(errors.Wrapf(ErrSamplingFailed, "no bounded SO3 sample found within %d attempts", so3RejectionSampleAttempts))
}

// SatisfiesBounds implements StateSpace.
func (sp *SO3Space) SatisfiesBounds(s State) bool {
	if !sp.isBounded {
		return true
	}
	return sp.Distance(&SO3State{Q: *sp.center}, s) <= sp.maxAngle
}

// EnforceBounds implements StateSpace: if s lies outside the configured
// geodesic cap, projects it onto the cap's boundary via SLERP from the
// centre.
func (sp *SO3Space) EnforceBounds(s State) State {
	sv := s.(*SO3State)
	normalised := &SO3State{Q: normalizeQuat(sv.Q)}
	if !sp.isBounded {
		return normalised
	}
	centerState := &SO3State{Q: *sp.center}
	dist := sp.Distance(centerState, normalised)
	if dist <= sp.maxAngle || dist == 0 {
		return normalised
	}
	out := &SO3State{}
	sp.Interpolate(centerState, normalised, sp.maxAngle/dist, out)
	return out
}

// Interpolate implements StateSpace: SLERP along the shorter arc, falling
// back to normalised linear interpolation when the endpoints are nearly
// co-linear.
func (sp *SO3Space) Interpolate(a, b State, t float64, out State) {
	av, bv, ov := a.(*SO3State), b.(*SO3State), out.(*SO3State)
	qa := av.Q
	qb := bv.Q
	dot := quatDot(qa, qb)
	if dot < 0 {
		qb = quat.Scale(-1, qb)
		dot = -dot
	}
	if dot > 1-quaternionColinearEpsilon {
		lerp := quat.Add(qa, quat.Scale(t, quat.Add(qb, quat.Scale(-1, qa))))
		ov.Q = normalizeQuat(lerp)
		return
	}
	theta0 := math.Acos(clamp(dot, -1, 1))
	theta := theta0 * t
	sinTheta0 := math.Sin(theta0)
	sinTheta := math.Sin(theta)
	s0 := math.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0
	result := quat.Add(quat.Scale(s0, qa), quat.Scale(s1, qb))
	ov.Q = normalizeQuat(result)
}

// MaximumExtent implements StateSpace.
func (sp *SO3Space) MaximumExtent() float64 {
	if !sp.isBounded {
		return math.Pi
	}
	return sp.maxAngle
}

// LongestValidSegmentLength implements StateSpace.
func (sp *SO3Space) LongestValidSegmentLength() float64 {
	return sp.fraction * sp.MaximumExtent()
}

// SetLongestValidSegmentFraction implements StateSpace.
func (sp *SO3Space) SetLongestValidSegmentFraction(fraction float64) error {
	if err := validLongestValidSegmentFraction(fraction); err != nil {
		return err
	}
	sp.fraction = fraction
	return nil
}
