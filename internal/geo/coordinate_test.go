package geo

import "testing"

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{name: "comma separated", input: "40.7128, -74.0060", wantLat: 40.7128, wantLon: -74.0060, wantOK: true},
		{name: "space separated", input: "51.5074 -0.1278", wantLat: 51.5074, wantLon: -0.1278, wantOK: true},
		{name: "parentheses", input: "(35.6762, 139.6503)", wantLat: 35.6762, wantLon: 139.6503, wantOK: true},
		{name: "surrounding whitespace", input: "  40.7128 , -74.0060  ", wantLat: 40.7128, wantLon: -74.0060, wantOK: true},
		{name: "integers", input: "52, 13", wantLat: 52, wantLon: 13, wantOK: true},
		{name: "trailing decimal point", input: "52., 13.", wantLat: 52, wantLon: 13, wantOK: true},
		{name: "upper bounds", input: "90, 180", wantLat: 90, wantLon: 180, wantOK: true},
		{name: "lower bounds", input: "-90, -180", wantLat: -90, wantLon: -180, wantOK: true},
		{name: "null island", input: "0, 0", wantLat: 0, wantLon: 0, wantOK: true},
		{name: "latitude out of range", input: "91, 0"},
		{name: "longitude out of range", input: "0, -181"},
		{name: "city name", input: "London"},
		{name: "single number", input: "40.7128"},
		{name: "three numbers", input: "40.7, -74.0, 10"},
		{name: "cardinal letters", input: "40.7N, 74.0W"},
		{name: "missing leading digit", input: ".5, .5"},
		{name: "empty", input: ""},
		{name: "pair embedded in text", input: "around 40.7, -74.0 somewhere"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCoordinates(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseCoordinates(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Latitude != tt.wantLat || got.Longitude != tt.wantLon {
				t.Errorf("ParseCoordinates(%q) = %v, want {%v %v}", tt.input, got, tt.wantLat, tt.wantLon)
			}
		})
	}
}

func TestCoordinateString(t *testing.T) {
	c := Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	if got := c.String(); got != "40.7128, -74.006" {
		t.Errorf("String() = %q, want %q", got, "40.7128, -74.006")
	}
}
