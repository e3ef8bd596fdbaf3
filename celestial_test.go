package twobody

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCelestialFromString(t *testing.T) {
	for _, object := range []CelestialObject{Sun, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Pluto} {
		found, err := CelestialObjectFromString(object.Name)
		if err != nil {
			t.Fatalf("could not find %s: %s", object.Name, err)
		}
		if !found.Equals(object) {
			t.Fatalf("%s does not match its constant", object.Name)
		}
	}
	if _, err := CelestialObjectFromString("Vulcan"); err == nil {
		t.Fatal("Vulcan should not be found")
	}
}

func TestCelestialGM(t *testing.T) {
	if !scalar.EqualWithinAbs(Earth.GM(), 3.98600433e5, 1e-3) {
		t.Fatalf("Earth μ=%f", Earth.GM())
	}
	if Sun.GM() <= Jupiter.GM() || Jupiter.GM() <= Earth.GM() {
		t.Fatal("gravitational parameters out of order")
	}
}

func TestCelestialEquals(t *testing.T) {
	if !Earth.Equals(Earth) {
		t.Fatal("Earth is not Earth")
	}
	if Earth.Equals(Mars) {
		t.Fatal("Earth is Mars")
	}
	if Earth.String() != "Earth body" {
		t.Fatalf("stringer returned %q", Earth.String())
	}
}
