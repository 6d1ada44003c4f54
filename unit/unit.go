// Package unit defines the measurement units used by pages and dimension
// annotations.
package unit

import "fmt"

// Unit identifies a measurement unit. The string value is the wire token.
type Unit string

const (
	// Millimeters is the default unit for captured drawings.
	Millimeters Unit = "mm"

	// Centimeters represents centimeters.
	Centimeters Unit = "cm"

	// Meters represents meters.
	Meters Unit = "m"

	// Inches represents inches.
	Inches Unit = "in"

	// Feet represents feet.
	Feet Unit = "ft"
)

// factors maps each unit to its size in millimeters.
var factors = map[Unit]float64{
	Millimeters: 1.0,
	Centimeters: 10.0,
	Meters:      1000.0,
	Inches:      25.4,
	Feet:        304.8,
}

// IsValid returns true if the unit is one of the supported values.
func (u Unit) IsValid() bool {
	switch u {
	case Millimeters, Centimeters, Meters, Inches, Feet:
		return true
	default:
		return false
	}
}

// String returns the wire token for the unit.
func (u Unit) String() string {
	return string(u)
}

// Factor returns the unit's size in millimeters.
// Returns 0.0 for invalid units.
func (u Unit) Factor() float64 {
	if f, ok := factors[u]; ok {
		return f
	}
	return 0.0
}

// Parse parses a wire token into a Unit value.
// Returns an error if the token is not a supported unit.
func Parse(s string) (Unit, error) {
	u := Unit(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid unit: %q", s)
	}
	return u, nil
}

// All returns all supported units from smallest to largest.
func All() []Unit {
	return []Unit{
		Millimeters,
		Centimeters,
		Inches,
		Feet,
		Meters,
	}
}
