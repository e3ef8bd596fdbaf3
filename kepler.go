package twobody

import (
	"errors"
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/log"
	"gonum.org/v1/gonum/floats/scalar"
)

// Solver failure reasons. A solver wraps these with the relevant detail.
var (
	// ErrBadInput is returned by a solver whose input state is unusable.
	ErrBadInput = errors.New("invalid input")
	// ErrDivergence is returned by a solver whose iteration did not converge.
	ErrDivergence = errors.New("did not converge")
)

// AnomalySolver advances a Cartesian state by a time of flight in seconds,
// solving Kepler's equation in whichever anomaly formulation it implements.
// A nil error is the "ok" status; any non-nil error is a failure and the
// returned vectors must be discarded.
type AnomalySolver interface {
	Solve(k float64, R0, V0 []float64, tof float64) (R1, V1 []float64, err error)
}

// PropagationError is returned when the anomaly solver reports any non-ok
// status. The solver's reason is carried verbatim.
type PropagationError struct {
	Reason error
}

func (e PropagationError) Error() string {
	return fmt.Sprintf("propagation failed: %s", e.Reason)
}

func (e PropagationError) Unwrap() error {
	return e.Reason
}

// KeplerPropagator advances a two-body state by a given time of flight,
// delegating the numerical solve to its anomaly solver.
type KeplerPropagator struct {
	solver AnomalySolver
	logger kitlog.Logger
}

// NewKeplerPropagator returns a propagator delegating to the provided solver.
func NewKeplerPropagator(solver AnomalySolver) *KeplerPropagator {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "kepler")
	return &KeplerPropagator{solver, klog}
}

// Propagate advances the (R0, V0) state by tof seconds around an attractor of
// gravitational parameter k (km^3/s^2). The time of flight may be negative to
// propagate backward. The solver is invoked exactly once; on any non-ok
// status no partial result is returned.
func (p *KeplerPropagator) Propagate(k float64, R0, V0 []float64, tof float64) (R1, V1 []float64, err error) {
	R1, V1, serr := p.solver.Solve(k, R0, V0, tof)
	if serr != nil {
		p.logger.Log("level", "error", "tof(s)", tof, "err", serr)
		return nil, nil, PropagationError{serr}
	}
	return R1, V1, nil
}

// validateSolverInput performs the sanity checks shared by the bundled
// solvers.
func validateSolverInput(k float64, R0, V0 []float64) error {
	if k <= 0 {
		return fmt.Errorf("%w: gravitational parameter must be positive", ErrBadInput)
	}
	if len(R0) != 3 || len(V0) != 3 {
		return fmt.Errorf("%w: R0 and V0 must be 3x1 vectors", ErrBadInput)
	}
	if norm(R0) == 0 {
		return fmt.Errorf("%w: R0 must not be the zero vector", ErrBadInput)
	}
	return nil
}

// UniversalSolver solves Kepler's equation in the universal-variable
// formulation, from Vallado's KEPLER algorithm. It handles elliptical,
// parabolic and hyperbolic orbits.
type UniversalSolver struct {
	Tolerance float64 // convergence tolerance on the universal anomaly χ
	MaxIters  uint    // iteration cap before reporting divergence
}

// NewUniversalSolver returns a universal-variable solver with the configured
// tolerance and iteration cap.
func NewUniversalSolver() UniversalSolver {
	conf := tbConfig()
	return UniversalSolver{conf.tolerance, conf.maxIters}
}

// Solve advances the state by tof seconds via Newton iteration on the
// universal anomaly.
func (s UniversalSolver) Solve(k float64, R0, V0 []float64, tof float64) (R1, V1 []float64, err error) {
	if err = validateSolverInput(k, R0, V0); err != nil {
		return nil, nil, err
	}
	r0 := norm(R0)
	v0 := norm(V0)
	if tof == 0 {
		R1 = make([]float64, 3)
		V1 = make([]float64, 3)
		copy(R1, R0)
		copy(V1, V0)
		return
	}
	sqrtμ := math.Sqrt(k)
	rDotV := dot(R0, V0)
	α := -v0*v0/k + 2/r0 // reciprocal of the semi-major axis
	var χ float64
	switch {
	case α > 1e-6:
		// Ellipse
		χ = sqrtμ * tof * α
		if scalar.EqualWithinAbs(α, 1, 1e-9) {
			// First guess too close to converge from (cf. Vallado)
			χ *= 0.97
		}
	case math.Abs(α) < 1e-6:
		// Parabola
		hVec := cross(R0, V0)
		p := dot(hVec, hVec) / k
		cot2s := 3 * math.Sqrt(k/math.Pow(p, 3)) * tof
		σ := 0.5 * math.Atan(1/cot2s)
		w := math.Atan(math.Cbrt(math.Tan(σ)))
		χ = 2 * math.Sqrt(p) / math.Tan(2*w)
	default:
		// Hyperbola
		a := 1 / α
		χ = sign(tof) * math.Sqrt(-a) *
			math.Log(-2*k*α*tof/(rDotV+sign(tof)*math.Sqrt(-k*a)*(1-r0*α)))
	}

	var r, ψ, c2, c3 float64
	for iter := uint(0); ; iter++ {
		if iter >= s.MaxIters {
			return nil, nil, fmt.Errorf("%w after %d iterations", ErrDivergence, s.MaxIters)
		}
		ψ = χ * χ * α
		c2, c3 = c2c3(ψ)
		r = χ*χ*c2 + rDotV/sqrtμ*χ*(1-ψ*c3) + r0*(1-ψ*c2)
		χNew := χ + (sqrtμ*tof-χ*χ*χ*c3-rDotV/sqrtμ*χ*χ*c2-r0*χ*(1-ψ*c3))/r
		if math.Abs(χNew-χ) < s.Tolerance {
			χ = χNew
			break
		}
		χ = χNew
	}
	// Recompute the auxiliary values with the converged χ before building the
	// Lagrange coefficients.
	ψ = χ * χ * α
	c2, c3 = c2c3(ψ)
	r = χ*χ*c2 + rDotV/sqrtμ*χ*(1-ψ*c3) + r0*(1-ψ*c2)

	f := 1 - χ*χ*c2/r0
	g := tof - χ*χ*χ*c3/sqrtμ
	fDot := sqrtμ * χ * (ψ*c3 - 1) / (r * r0)
	gDot := 1 - χ*χ*c2/r

	R1 = make([]float64, 3)
	V1 = make([]float64, 3)
	for i := 0; i < 3; i++ {
		R1[i] = f*R0[i] + g*V0[i]
		V1[i] = fDot*R0[i] + gDot*V0[i]
	}
	return R1, V1, nil
}

// c2c3 returns the Stumpff functions c2(ψ) and c3(ψ).
func c2c3(ψ float64) (c2, c3 float64) {
	if ψ > 1e-6 {
		sψ := math.Sqrt(ψ)
		ssψ, csψ := math.Sincos(sψ)
		c2 = (1 - csψ) / ψ
		c3 = (sψ - ssψ) / math.Sqrt(math.Pow(ψ, 3))
	} else if ψ < -1e-6 {
		sψ := math.Sqrt(-ψ)
		c2 = (1 - math.Cosh(sψ)) / ψ
		c3 = (math.Sinh(sψ) - sψ) / math.Sqrt(math.Pow(-ψ, 3))
	} else {
		c2 = 1 / 2.
		c3 = 1 / 6.
	}
	return
}

// MeanAnomalySolver solves Kepler's equation M = E - e·sinE with
// Newton-Raphson after advancing the mean anomaly by the time of flight.
// Elliptical orbits only.
type MeanAnomalySolver struct {
	Tolerance float64 // convergence tolerance on the eccentric anomaly
	MaxIters  uint    // iteration cap before reporting divergence
}

// NewMeanAnomalySolver returns a mean-anomaly solver with the configured
// tolerance and iteration cap.
func NewMeanAnomalySolver() MeanAnomalySolver {
	conf := tbConfig()
	return MeanAnomalySolver{conf.tolerance, conf.maxIters}
}

// Solve advances the state by tof seconds through the element conversions.
func (s MeanAnomalySolver) Solve(k float64, R0, V0 []float64, tof float64) (R1, V1 []float64, err error) {
	if err = validateSolverInput(k, R0, V0); err != nil {
		return nil, nil, err
	}
	a, ecc, inc, raan, argp, ν := RV2COE(k, R0, V0)
	if ecc >= 1 {
		return nil, nil, fmt.Errorf("%w: only elliptical orbits are supported (e=%f)", ErrBadInput, ecc)
	}
	// Eccentric anomaly at departure, quadrant resolved via atan2.
	sinν, cosν := math.Sincos(ν)
	denom := 1 + ecc*cosν
	E := math.Atan2(math.Sqrt(1-ecc*ecc)*sinν/denom, (ecc+cosν)/denom)
	M := E - ecc*math.Sin(E)
	M += math.Sqrt(k/math.Pow(a, 3)) * tof

	// Newton-Raphson on Kepler's equation.
	E = M
	if ecc > 0.8 {
		E = math.Pi
	}
	converged := false
	for iter := uint(0); iter < s.MaxIters; iter++ {
		ΔE := (E - ecc*math.Sin(E) - M) / (1 - ecc*math.Cos(E))
		E -= ΔE
		if math.Abs(ΔE) < s.Tolerance {
			converged = true
			break
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("%w after %d iterations", ErrDivergence, s.MaxIters)
	}

	ν1 := 2 * math.Atan2(math.Sqrt(1+ecc)*math.Sin(E/2), math.Sqrt(1-ecc)*math.Cos(E/2))
	R1, V1 = COE2RV(k, a, ecc, inc, raan, argp, mod2π(ν1))
	return R1, V1, nil
}
