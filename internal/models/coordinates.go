package models

import (
	"errors"
	"fmt"
	"strings"
)

// Coordinates represents a geographical point in signed decimal degrees.
// It is comparable and is used directly as a grouping key.
type Coordinates struct {
	Latitude  float64 // Latitude of the geographical point, positive north.
	Longitude float64 // Longitude of the geographical point, positive east.
}

// Triple is a sexagesimal coordinate component as stored in EXIF.
type Triple struct {
	Degrees float64
	Minutes float64
	Seconds float64
}

// Hemisphere is the reference letter paired with a Triple.
type Hemisphere string

// Hemisphere references.
const (
	North Hemisphere = "N"
	South Hemisphere = "S"
	East  Hemisphere = "E"
	West  Hemisphere = "W"
)

// ErrInvalidHemisphere is returned for a reference outside of N, S, E and W.
var ErrInvalidHemisphere = errors.New("invalid hemisphere reference")

// ParseHemisphere parses an EXIF GPS reference value.
func ParseHemisphere(value string) (Hemisphere, error) {
	ref := Hemisphere(strings.TrimSpace(strings.Trim(value, "\x00")))
	switch ref {
	case North, South, East, West:
		return ref, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidHemisphere, value)
	}
}

// Negative reports whether the hemisphere maps to negative decimal degrees.
func (h Hemisphere) Negative() bool {
	return h == South || h == West
}
