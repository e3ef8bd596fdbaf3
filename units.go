package twobody

import "fmt"

// Dimension identifies the physical dimension a quantity carries.
// The working unit system is km, km/s and radians throughout.
type Dimension uint8

// Supported dimensions.
const (
	Unitless Dimension = iota
	Length
	Velocity
	Angle
)

func (d Dimension) String() string {
	switch d {
	case Unitless:
		return "unitless"
	case Length:
		return "length"
	case Velocity:
		return "velocity"
	case Angle:
		return "angle"
	default:
		return "unknown"
	}
}

// Quantity is a scalar value tagged with its dimension.
type Quantity struct {
	Value float64
	Dim   Dimension
}

// Km returns a length quantity in kilometers.
func Km(v float64) Quantity {
	return Quantity{v, Length}
}

// KmPerSec returns a velocity quantity in km/s.
func KmPerSec(v float64) Quantity {
	return Quantity{v, Velocity}
}

// Rad returns an angle quantity in radians.
func Rad(v float64) Quantity {
	return Quantity{v, Angle}
}

// Deg returns an angle quantity, converting the provided degrees to radians.
func Deg(v float64) Quantity {
	return Quantity{Deg2rad(v), Angle}
}

// Scalar returns a dimensionless quantity.
func Scalar(v float64) Quantity {
	return Quantity{v, Unitless}
}

// VecQuantity is a 3x1 vector tagged with its dimension.
type VecQuantity struct {
	Vec []float64
	Dim Dimension
}

// KmVec returns a position vector in kilometers.
func KmVec(x, y, z float64) VecQuantity {
	return VecQuantity{[]float64{x, y, z}, Length}
}

// KmPerSecVec returns a velocity vector in km/s.
func KmPerSecVec(x, y, z float64) VecQuantity {
	return VecQuantity{[]float64{x, y, z}, Velocity}
}

// DimensionError reports a quantity whose dimension does not match the one
// expected at that position.
type DimensionError struct {
	Position  int
	Got, Want Dimension
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("quantity %d must be a %s, got a %s", e.Position, e.Want, e.Got)
}

// verifyDims checks that the provided dimensions match the expected ones,
// position by position.
func verifyDims(got, want []Dimension) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d quantities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			return DimensionError{Position: i, Got: got[i], Want: want[i]}
		}
	}
	return nil
}
