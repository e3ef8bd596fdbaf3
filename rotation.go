package twobody

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Axis denotes a principal rotation axis.
type Axis uint8

// The three principal axes.
const (
	XAxis Axis = iota + 1
	YAxis
	ZAxis
)

func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	case ZAxis:
		return "z"
	default:
		return "?"
	}
}

// Rot rotates the provided 3x1 vector about the given principal axis by the
// signed angle θ (in radians). Any finite angle is valid.
// Panics on an unknown axis.
func Rot(v []float64, θ float64, axis Axis) []float64 {
	switch axis {
	case XAxis:
		return MxV33(R1(θ), v)
	case YAxis:
		return MxV33(R2(θ), v)
	case ZAxis:
		return MxV33(R3(θ), v)
	default:
		panic(fmt.Errorf("unknown rotation axis %s", axis))
	}
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat.Dense, v []float64) []float64 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(len(v), v))
	return []float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}

// PQW2ECI converts a given vector from the PQW frame to the ECI frame for the
// provided inclination, argument of periapsis and RAAN (all in radians).
// The sequence is -ω about z, then -i about x, then -Ω about z.
func PQW2ECI(i, ω, Ω float64, vI []float64) []float64 {
	return Rot(Rot(Rot(vI, -ω, ZAxis), -i, XAxis), -Ω, ZAxis)
}
