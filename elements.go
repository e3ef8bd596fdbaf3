package twobody

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	eccentricityε = 5e-5 // 0.00005
	angleε        = 5e-3 // 0.005 degrees
	distanceε     = 2e1  // 20 km
)

// COE2RV converts the six classical orbital elements into ECI position and
// velocity vectors. Angles are in radians, a in km, k in km^3/s^2.
// From Vallado's COE2RV: the perifocal state is rotated by -ω about z, then
// -i about x, then -Ω about z.
// WARNING: the perifocal radius divides by 1+e·cosν, so a parabolic orbit
// (e=1) at ν=π is not supported by this formulation.
func COE2RV(k, a, ecc, inc, raan, argp, nu float64) (R, V []float64) {
	p := a * (1 - ecc*ecc)
	sinν, cosν := math.Sincos(nu)
	rPQW := []float64{p * cosν / (1 + ecc*cosν), p * sinν / (1 + ecc*cosν), 0}
	vPQW := []float64{-math.Sqrt(k/p) * sinν, math.Sqrt(k/p) * (ecc + cosν), 0}
	R = PQW2ECI(inc, argp, raan, rPQW)
	V = PQW2ECI(inc, argp, raan, vPQW)
	return
}

// RV2COE converts ECI position and velocity vectors into the six classical
// orbital elements. From Vallado's RV2COE, page 113, with the atan2 forms for
// ω and ν to resolve the quadrant where a plain arccos would not.
// All angles are returned in radians, normalized into [0, 2π).
// Degenerate geometries (e≈0, i≈0 or ≈π) leave Ω, ω and ν individually
// ill-defined: the returned values are numerically unstable in that regime
// but no error is raised, as the orbit itself remains well-defined.
func RV2COE(k float64, R, V []float64) (a, ecc, inc, raan, argp, nu float64) {
	hVec := cross(R, V)
	h := norm(hVec)
	n := unit(cross([]float64{0, 0, 1}, hVec))
	r := norm(R)
	v := norm(V)
	eVec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		eVec[i] = ((v*v-k/r)*R[i] - dot(R, V)*V[i]) / k
	}
	ecc = norm(eVec)
	p := dot(hVec, hVec) / k
	// A parabola cannot be defined via its semi-major axis, so this divides
	// by zero at e=1.
	a = p / (1 - ecc*ecc)

	inc = math.Acos(hVec[2] / h)
	raan = mod2π(math.Atan2(n[1], n[0]))
	argp = mod2π(math.Atan2(dot(hVec, cross(n, eVec))/h, dot(eVec, n)))
	nu = mod2π(math.Atan2(dot(hVec, cross(eVec, R))/h, dot(R, eVec)))
	return
}

// Elements holds the six classical orbital elements as returned by the State
// accessor: a in km, e dimensionless, and all angles in degrees.
type Elements struct {
	A    float64 // semi-major axis (km)
	Ecc  float64 // eccentricity
	Inc  float64 // inclination (degrees)
	RAAN float64 // right ascension of the ascending node (degrees)
	ArgP float64 // argument of perigee (degrees)
	Nu   float64 // true anomaly (degrees)
}

// SemiParameter returns the semi-latus rectum.
func (e Elements) SemiParameter() float64 {
	return e.A * (1 - e.Ecc*e.Ecc)
}

// Apoapsis returns the apoapsis radius.
func (e Elements) Apoapsis() float64 {
	return e.A * (1 + e.Ecc)
}

// Periapsis returns the periapsis radius.
func (e Elements) Periapsis() float64 {
	return e.A * (1 - e.Ecc)
}

// Energyξ returns the specific mechanical energy ξ for the provided
// gravitational parameter.
func (e Elements) Energyξ(k float64) float64 {
	return -k / (2 * e.A)
}

// Period returns the orbital period for the provided gravitational parameter.
func (e Elements) Period(k float64) time.Duration {
	// The time package does not trivially handle fractions of a second, so
	// let's compute this in a convoluted way...
	seconds := 2 * math.Pi * math.Sqrt(math.Pow(e.A, 3)/k)
	duration, _ := time.ParseDuration(fmt.Sprintf("%.6fs", seconds))
	return duration
}

// Equals returns whether the two element sets describe the same orbit within
// numerical tolerance. Only meaningful away from the degenerate geometries.
func (e Elements) Equals(e1 Elements) (bool, error) {
	if !scalar.EqualWithinAbs(e.A, e1.A, distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !scalar.EqualWithinAbs(e.Ecc, e1.Ecc, eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	if !scalar.EqualWithinAbs(e.Inc, e1.Inc, angleε) {
		return false, errors.New("inclination invalid")
	}
	if !scalar.EqualWithinAbs(e.RAAN, e1.RAAN, angleε) {
		return false, errors.New("RAAN invalid")
	}
	if !scalar.EqualWithinAbs(e.ArgP, e1.ArgP, angleε) {
		return false, errors.New("argument of perigee invalid")
	}
	if !scalar.EqualWithinAbs(e.Nu, e1.Nu, angleε) {
		return false, errors.New("true anomaly invalid")
	}
	return true, nil
}

// String implements the stringer interface.
func (e Elements) String() string {
	return fmt.Sprintf("a=%.1f e=%.4f i=%.3f Ω=%.3f ω=%.3f ν=%.3f", e.A, e.Ecc, e.Inc, e.RAAN, e.ArgP, e.Nu)
}
