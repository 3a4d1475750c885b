package geo

import "strings"

type city struct {
	name  string
	coord Coordinate
}

// Last-resort table for when the geocoder is unreachable. Order matters:
// lookup scans top to bottom and the first substring match wins.
var cities = []city{
	{"london", Coordinate{51.5074, -0.1278}},
	{"new york", Coordinate{40.7128, -74.0060}},
	{"paris", Coordinate{48.8566, 2.3522}},
	{"tokyo", Coordinate{35.6762, 139.6503}},
	{"sydney", Coordinate{-33.8688, 151.2093}},
	{"berlin", Coordinate{52.5200, 13.4050}},
	{"madrid", Coordinate{40.4168, -3.7038}},
	{"rome", Coordinate{41.9028, 12.4964}},
	{"kyiv", Coordinate{50.44973, 30.52474}},
	{"beijing", Coordinate{39.9042, 116.4074}},
}

// lookupCity matches a city name appearing anywhere in the location, so
// "greater london area" still finds london.
func lookupCity(location string) (Coordinate, bool) {
	loc := strings.ToLower(location)
	for _, c := range cities {
		if strings.Contains(loc, c.name) {
			return c.coord, true
		}
	}
	return Coordinate{}, false
}
