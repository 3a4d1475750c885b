// Package geo turns location strings into geographic coordinates.
package geo

import (
	"regexp"
	"strconv"
	"strings"
)

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String renders the pair as "lat, lon" with minimal decimals.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Valid reports whether both components are in range.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Matches "sign digits optional-decimal, separator, same" with nothing
// before or after. Degree marks, cardinal letters and friends are left to
// the geocoder.
var coordinatePattern = regexp.MustCompile(`^(-?\d+\.?\d*)[,\s]+(-?\d+\.?\d*)$`)

// ParseCoordinates recognizes a raw coordinate pair such as
// "40.7128, -74.0060" or "(51.5074 -0.1278)". Surrounding whitespace and
// parentheses are ignored. Malformed or out-of-range input is a no-match,
// never an error.
func ParseCoordinates(s string) (Coordinate, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "(", "")
	s = strings.ReplaceAll(s, ")", "")
	s = strings.TrimSpace(s)

	m := coordinatePattern.FindStringSubmatch(s)
	if m == nil {
		return Coordinate{}, false
	}

	lat, err1 := strconv.ParseFloat(m[1], 64)
	lon, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return Coordinate{}, false
	}

	c := Coordinate{Latitude: lat, Longitude: lon}
	if !c.Valid() {
		return Coordinate{}, false
	}
	return c, true
}
