package weather

import (
	"encoding/json"
	"testing"

	"github.com/brisa-ai/brisa/internal/geo"
)

func TestTypeNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input Type
		want  Type
	}{
		{name: "current", input: TypeCurrent, want: TypeCurrent},
		{name: "forecast", input: TypeForecast, want: TypeForecast},
		{name: "empty", input: Type(""), want: TypeCurrent},
		{name: "unknown", input: Type("hourly"), want: TypeCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestCoordinates(t *testing.T) {
	var r Request
	if r.HasCoordinates() {
		t.Error("empty request reports coordinates")
	}
	if _, ok := r.Coordinates(); ok {
		t.Error("Coordinates() ok = true for empty request")
	}

	lat := 40.7128
	r.Latitude = &lat
	if r.HasCoordinates() {
		t.Error("request with only latitude reports coordinates")
	}

	r.SetCoordinates(geo.Coordinate{Latitude: 35.6762, Longitude: 139.6503})
	coord, ok := r.Coordinates()
	if !ok {
		t.Fatal("Coordinates() ok = false after SetCoordinates")
	}
	if coord.Latitude != 35.6762 || coord.Longitude != 139.6503 {
		t.Errorf("Coordinates() = %v, want {35.6762 139.6503}", coord)
	}
}

func TestRequestUnmarshalZeroCoordinates(t *testing.T) {
	// Zero is a valid coordinate and must survive decoding.
	data := `{"location":"Null Island","latitude":0,"longitude":0,"weather_type":"forecast","specific_requirements":"rain chances"}`

	var r Request
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !r.HasCoordinates() {
		t.Fatal("explicit zero coordinates decoded as absent")
	}
	if *r.Latitude != 0 || *r.Longitude != 0 {
		t.Errorf("coordinates = %v, %v, want 0, 0", *r.Latitude, *r.Longitude)
	}
	if r.Type != TypeForecast {
		t.Errorf("Type = %q, want %q", r.Type, TypeForecast)
	}
}

func TestRequestUnmarshalNullCoordinates(t *testing.T) {
	data := `{"location":"Paris","latitude":null,"longitude":null,"weather_type":"current","specific_requirements":""}`

	var r Request
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if r.HasCoordinates() {
		t.Error("null coordinates decoded as present")
	}
	if r.Location != "Paris" {
		t.Errorf("Location = %q, want %q", r.Location, "Paris")
	}
}
