package twobody

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// vectorsEqual returns whether two vectors match within the loose tolerance
// used for textbook fixtures.
func vectorsEqual(a, b []float64) bool {
	return vectorsEqualTol(a, b, 1e-3, 1e-3)
}

func vectorsEqualTol(a, b []float64, absTol, relTol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := len(a) - 1; i >= 0; i-- {
		if !scalar.EqualWithinAbsOrRel(a[i], b[i], absTol, relTol) {
			return false
		}
	}
	return true
}

// anglesEqualDeg returns whether two angles in degrees are equal modulo 360.
func anglesEqualDeg(a, b float64) (bool, error) {
	diff := math.Mod(math.Abs(a-b), 360)
	if diff > 180 {
		diff = 360 - diff
	}
	if diff < angleε {
		return true, nil
	}
	return false, fmt.Errorf("difference of %3.10f degrees", diff)
}
