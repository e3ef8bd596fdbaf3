package twobody

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestQuantityConstructors(t *testing.T) {
	for _, tc := range []struct {
		q   Quantity
		dim Dimension
	}{
		{Km(7000), Length},
		{KmPerSec(7.5), Velocity},
		{Rad(1.2), Angle},
		{Deg(90), Angle},
		{Scalar(0.1), Unitless},
	} {
		if tc.q.Dim != tc.dim {
			t.Fatalf("expected %s, got %s", tc.dim, tc.q.Dim)
		}
	}
	if !scalar.EqualWithinAbs(Deg(90).Value, math.Pi/2, 1e-12) {
		t.Fatal("Deg must convert to radians")
	}
	if KmVec(1, 2, 3).Dim != Length || KmPerSecVec(1, 2, 3).Dim != Velocity {
		t.Fatal("vector constructors carry the wrong dimension")
	}
}

func TestVerifyDims(t *testing.T) {
	if err := verifyDims([]Dimension{Length, Velocity}, []Dimension{Length, Velocity}); err != nil {
		t.Fatal(err)
	}
	err := verifyDims([]Dimension{Length, Length}, []Dimension{Length, Velocity})
	if err == nil {
		t.Fatal("mismatching dimensions must be rejected")
	}
	dErr, ok := err.(DimensionError)
	if !ok {
		t.Fatalf("expected a DimensionError, got %T", err)
	}
	if dErr.Position != 1 || dErr.Got != Length || dErr.Want != Velocity {
		t.Fatalf("unexpected error detail: %+v", dErr)
	}
	if !strings.Contains(dErr.Error(), "velocity") {
		t.Fatalf("error must name the expected dimension: %s", dErr)
	}
	if err := verifyDims([]Dimension{Length}, []Dimension{Length, Velocity}); err == nil {
		t.Fatal("a missing quantity must be rejected")
	}
}
