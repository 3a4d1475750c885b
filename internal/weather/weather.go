// Package weather defines the core domain types for brisa.
package weather

import (
	"errors"
	"time"

	"github.com/brisa-ai/brisa/internal/geo"
)

// Domain errors.
var (
	ErrEmptyQuery    = errors.New("query cannot be empty")
	ErrNoCoordinates = errors.New("request has no coordinates")
)

// Type says whether the user wants current conditions or a forecast.
type Type string

const (
	TypeCurrent  Type = "current"
	TypeForecast Type = "forecast"
)

// Valid returns true if the type is a known value.
func (t Type) Valid() bool {
	switch t {
	case TypeCurrent, TypeForecast:
		return true
	default:
		return false
	}
}

// Normalize maps empty or unrecognized values to TypeCurrent.
func (t Type) Normalize() Type {
	if t.Valid() {
		return t
	}
	return TypeCurrent
}

// Request is one interpreted user query. The JSON tags match the shape
// the extraction prompt asks the model for. Latitude and Longitude are
// pointers so an absent value is distinguishable from 0.0: the equator
// is a real place.
type Request struct {
	Location             string   `json:"location"`
	Latitude             *float64 `json:"latitude"`
	Longitude            *float64 `json:"longitude"`
	Type                 Type     `json:"weather_type"`
	SpecificRequirements string   `json:"specific_requirements"`

	// RawResponse holds the undecodable model reply when interpretation
	// fell back to defaults. Never serialized.
	RawResponse string `json:"-"`
}

// HasCoordinates reports whether both components are set.
func (r *Request) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Coordinates returns the request position when both components are set.
func (r *Request) Coordinates() (geo.Coordinate, bool) {
	if !r.HasCoordinates() {
		return geo.Coordinate{}, false
	}
	return geo.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}, true
}

// SetCoordinates fills both components.
func (r *Request) SetCoordinates(c geo.Coordinate) {
	r.Latitude = &c.Latitude
	r.Longitude = &c.Longitude
}

// Lookup is the persisted record of one completed weather turn.
type Lookup struct {
	ID        int64
	Query     string
	Location  string
	Latitude  float64
	Longitude float64
	Type      Type
	Source    geo.Source
	Summary   string
	CreatedAt time.Time
}
