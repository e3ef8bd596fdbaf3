package twobody

import (
	"fmt"
	"sync"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// J2000 is the default epoch for states whose caller does not track time.
var J2000 = julian.JDToTime(2451545.0)

// ElementCountError reports a from-elements construction that did not receive
// exactly six orbital elements.
type ElementCountError struct {
	Count int
}

func (e ElementCountError) Error() string {
	return fmt.Sprintf("expected 6 orbital elements, got %d", e.Count)
}

// State represents the position and velocity of a body with respect to its
// attractor at a given epoch. A State is immutable after construction except
// for its element cache, which is populated at most once on first read.
// Propagation returns a brand-new State and never mutates the source.
type State struct {
	Attractor CelestialObject
	Epoch     time.Time
	r, v      []float64 // km and km/s

	elementsOnce sync.Once
	elements     Elements
}

// NewStateFromVectors returns a State from position and velocity vectors.
// The vectors must carry the length and velocity dimensions respectively, in
// the km/km-s working system; a DimensionError aborts construction.
func NewStateFromVectors(attractor CelestialObject, R, V VecQuantity, epoch time.Time) (*State, error) {
	if err := verifyDims([]Dimension{R.Dim, V.Dim}, []Dimension{Length, Velocity}); err != nil {
		return nil, err
	}
	r := make([]float64, 3)
	v := make([]float64, 3)
	copy(r, R.Vec)
	copy(v, V.Vec)
	return &State{Attractor: attractor, Epoch: epoch, r: r, v: v}, nil
}

// NewStateFromElements returns a State from the six classical orbital
// elements (a, e, i, Ω, ω, ν), with angles in radians. Exactly six elements
// must be supplied, carrying the (length, unitless, angle×4) dimensions. The
// element cache is pre-populated from the inputs so that reading the elements
// back does not incur a lossy round-trip through RV2COE.
func NewStateFromElements(attractor CelestialObject, elements []Quantity, epoch time.Time) (*State, error) {
	if len(elements) != 6 {
		return nil, ElementCountError{len(elements)}
	}
	dims := make([]Dimension, len(elements))
	for i, q := range elements {
		dims[i] = q.Dim
	}
	if err := verifyDims(dims, []Dimension{Length, Unitless, Angle, Angle, Angle, Angle}); err != nil {
		return nil, err
	}
	a, ecc := elements[0].Value, elements[1].Value
	inc, raan, argp, ν := elements[2].Value, elements[3].Value, elements[4].Value, elements[5].Value
	R, V := COE2RV(attractor.μ, a, ecc, inc, raan, argp, ν)
	s := &State{Attractor: attractor, Epoch: epoch, r: R, v: V}
	s.elementsOnce.Do(func() {
		s.elements = Elements{a, ecc, Rad2deg(inc), Rad2deg(raan), Rad2deg(argp), Rad2deg(ν)}
	})
	return s, nil
}

// RV returns copies of the position and velocity vectors.
func (s *State) RV() (R, V []float64) {
	R = make([]float64, 3)
	V = make([]float64, 3)
	copy(R, s.r)
	copy(V, s.v)
	return
}

// R returns a copy of the radius vector.
func (s *State) R() []float64 {
	R, _ := s.RV()
	return R
}

// V returns a copy of the velocity vector.
func (s *State) V() []float64 {
	_, V := s.RV()
	return V
}

// RNorm returns the norm of the radius vector.
func (s *State) RNorm() float64 {
	return norm(s.r)
}

// VNorm returns the norm of the velocity vector.
func (s *State) VNorm() float64 {
	return norm(s.v)
}

// HVec returns the orbital angular momentum vector.
func (s *State) HVec() []float64 {
	return cross(s.r, s.v)
}

// HNorm returns the norm of the orbital angular momentum.
func (s *State) HNorm() float64 {
	return norm(s.HVec())
}

// Energyξ returns the specific mechanical energy ξ.
func (s *State) Energyξ() float64 {
	return s.VNorm()*s.VNorm()/2 - s.Attractor.μ/s.RNorm()
}

// EpochJD returns the epoch as a Julian day.
func (s *State) EpochJD() float64 {
	return julian.TimeToJD(s.Epoch)
}

// Elements returns the classical orbital elements of this state, with the
// angles in degrees. They are computed on first read and cached; concurrent
// first reads are safe and the computation happens at most once. In the
// degenerate geometries (e≈0, i≈0 or ≈π) the angular elements are
// numerically unstable, see RV2COE.
func (s *State) Elements() Elements {
	s.elementsOnce.Do(func() {
		a, ecc, inc, raan, argp, ν := RV2COE(s.Attractor.μ, s.r, s.v)
		s.elements = Elements{a, ecc, Rad2deg(inc), Rad2deg(raan), Rad2deg(argp), Rad2deg(ν)}
	})
	return s.elements
}

// Propagate advances this state by the given time of flight with the
// configured solver and returns the result as a new State. The time of
// flight may be negative. The receiver is left untouched.
func (s *State) Propagate(tof time.Duration) (*State, error) {
	return s.PropagateWith(defaultSolver(), tof)
}

// PropagateWith is Propagate with an explicitly injected anomaly solver.
func (s *State) PropagateWith(solver AnomalySolver, tof time.Duration) (*State, error) {
	prop := NewKeplerPropagator(solver)
	R1, V1, err := prop.Propagate(s.Attractor.μ, s.r, s.v, tof.Seconds())
	if err != nil {
		return nil, err
	}
	return &State{Attractor: s.Attractor, Epoch: s.Epoch.Add(tof), r: R1, v: V1}, nil
}

// String implements the stringer interface.
func (s *State) String() string {
	return fmt.Sprintf("%s @ %s: R=%+v km V=%+v km/s", s.Attractor.Name, s.Epoch.Format(time.RFC3339), s.r, s.v)
}
