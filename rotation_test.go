package twobody

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestRotQuadrants(t *testing.T) {
	// Rotating by -θ about z turns x̂ toward ŷ, the sequence used to bring a
	// perifocal vector into the inertial frame.
	if !vectorsEqual(Rot([]float64{1, 0, 0}, -math.Pi/2, ZAxis), []float64{0, 1, 0}) {
		t.Fatal("-π/2 about z must turn x̂ into ŷ")
	}
	if !vectorsEqual(Rot([]float64{0, 1, 0}, -math.Pi/2, XAxis), []float64{0, 0, 1}) {
		t.Fatal("-π/2 about x must turn ŷ into ẑ")
	}
	if !vectorsEqual(Rot([]float64{0, 0, 1}, -math.Pi/2, YAxis), []float64{1, 0, 0}) {
		t.Fatal("-π/2 about y must turn ẑ into x̂")
	}
}

func TestRotProperties(t *testing.T) {
	v := []float64{1.5, -2.25, 3.125}
	for _, axis := range []Axis{XAxis, YAxis, ZAxis} {
		for θ := -2 * math.Pi; θ <= 2*math.Pi; θ += math.Pi / 7 {
			rotated := Rot(v, θ, axis)
			if !scalar.EqualWithinAbs(norm(rotated), norm(v), 1e-12) {
				t.Fatalf("rotation about %s by %f does not preserve the norm", axis, θ)
			}
			if !vectorsEqualTol(Rot(rotated, -θ, axis), v, 1e-12, 1e-12) {
				t.Fatalf("rotation about %s by %f is not inverted by -%f", axis, θ, θ)
			}
		}
		if !vectorsEqualTol(Rot(v, 0, axis), v, 1e-12, 1e-12) {
			t.Fatalf("rotation about %s by 0 must be the identity", axis)
		}
	}
}

func TestRotUnknownAxis(t *testing.T) {
	assertPanic(t, func() {
		Rot([]float64{1, 0, 0}, 1, Axis(42))
	})
}

func TestPQW2ECI(t *testing.T) {
	v := []float64{8000, 150, 0}
	if !vectorsEqualTol(PQW2ECI(0, 0, 0, v), v, 1e-9, 1e-12) {
		t.Fatal("PQW2ECI with zero angles must be the identity")
	}
	// The composed sequence must match the three explicit rotations.
	i, ω, Ω := Deg2rad(28.5), Deg2rad(45), Deg2rad(120)
	expected := Rot(Rot(Rot(v, -ω, ZAxis), -i, XAxis), -Ω, ZAxis)
	if !vectorsEqualTol(PQW2ECI(i, ω, Ω, v), expected, 1e-9, 1e-12) {
		t.Fatal("PQW2ECI does not match the explicit -ω, -i, -Ω sequence")
	}
	if !scalar.EqualWithinAbs(norm(PQW2ECI(i, ω, Ω, v)), norm(v), 1e-9) {
		t.Fatal("PQW2ECI must preserve the norm")
	}
}
