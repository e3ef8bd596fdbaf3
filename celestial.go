package twobody

import (
	"fmt"
	"strings"
)

// CelestialObject defines a celestial object acting as the gravitational
// attractor of an orbit.
type CelestialObject struct {
	Name   string
	Radius float64 // mean equatorial radius in km
	a      float64 // semi-major axis of the heliocentric orbit in km
	μ      float64 // gravitational parameter in km^3/s^2
	SOI    float64 // sphere of influence with respect to the Sun, in km
}

// GM returns μ (which is unexported because it's a lowercase letter).
func (c CelestialObject) GM() float64 {
	return c.μ
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.a == b.a && c.μ == b.μ && c.SOI == b.SOI
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "pluto":
		return Pluto, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined celestial object '%s'", name)
	}
}

/* Definitions */

// Sun is the center of the solar system.
var Sun = CelestialObject{"Sun", 695700, -1, 1.32712440017987e11, -1}

// Venus is almost Earth sized.
var Venus = CelestialObject{"Venus", 6051.8, 108208601, 3.24858599e5, 0.616e6}

// Earth is the usual attractor.
var Earth = CelestialObject{"Earth", 6378.1363, 149598023, 3.98600433e5, 924645.0}

// Mars is the neighbor.
var Mars = CelestialObject{"Mars", 3396.19, 227939282.5616, 4.28283100e4, 576000}

// Jupiter dominates everything beyond the belt.
var Jupiter = CelestialObject{"Jupiter", 71492.0, 778298361, 1.266865361e8, 48.2e6}

// Saturn has rings.
// TODO: SOI
var Saturn = CelestialObject{"Saturn", 60268.0, 1429394133, 3.7931208e7, 0}

// Uranus is tilted.
// TODO: SOI
var Uranus = CelestialObject{"Uranus", 25559.0, 2875038615, 5.7939513e6, 0}

// Pluto is here for completeness.
// WARNING: Pluto SOI is not defined.
var Pluto = CelestialObject{"Pluto", 1151.0, 5915799000, 9e2, 1}
