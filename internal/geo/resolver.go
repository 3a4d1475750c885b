package geo

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Source identifies which resolution tier produced a coordinate.
type Source string

const (
	SourceCoordinates Source = "coordinates"
	SourceGeocoder    Source = "geocoder"
	SourceCityTable   Source = "city_table"
	SourceDefault     Source = "default"
)

// Valid returns true if the source is a known value.
func (s Source) Valid() bool {
	switch s {
	case SourceCoordinates, SourceGeocoder, SourceCityTable, SourceDefault:
		return true
	default:
		return false
	}
}

// Resolution is the outcome of resolving a location string.
type Resolution struct {
	Coordinate Coordinate
	Source     Source
}

// Fallback when no tier can place a location.
var londonCoordinate = Coordinate{Latitude: 51.5074, Longitude: -0.1278}

type strategy func(ctx context.Context, location string) (Coordinate, Source, bool)

// Resolver turns location strings into coordinates by trying an ordered
// list of strategies; the first one that succeeds wins.
type Resolver struct {
	strategies []strategy
}

// NewResolver builds the standard chain: coordinate literal, live
// geocoding, static city table. geocoder may be nil, which skips the
// network tier entirely.
func NewResolver(geocoder Geocoder) *Resolver {
	r := &Resolver{}
	r.strategies = append(r.strategies, parseStrategy)
	if geocoder != nil {
		r.strategies = append(r.strategies, geocodeStrategy(geocoder))
	}
	r.strategies = append(r.strategies, cityTableStrategy)
	return r
}

// Resolve never fails: when every strategy declines it falls back to
// London and reports SourceDefault so callers can tell the user.
func (r *Resolver) Resolve(ctx context.Context, location string) Resolution {
	for _, s := range r.strategies {
		if coord, source, ok := s(ctx, location); ok {
			return Resolution{Coordinate: coord, Source: source}
		}
	}
	log.Debug().Str("location", location).Msg("location not found, defaulting to London")
	return Resolution{Coordinate: londonCoordinate, Source: SourceDefault}
}

func parseStrategy(_ context.Context, location string) (Coordinate, Source, bool) {
	coord, ok := ParseCoordinates(location)
	return coord, SourceCoordinates, ok
}

// Geocoding failures are logged and swallowed so resolution can fall
// through to the city table.
func geocodeStrategy(g Geocoder) strategy {
	return func(ctx context.Context, location string) (Coordinate, Source, bool) {
		coord, err := g.Geocode(ctx, location)
		if err != nil {
			log.Debug().Err(err).Str("location", location).Msg("geocoding failed")
			return Coordinate{}, SourceGeocoder, false
		}
		return coord, SourceGeocoder, true
	}
}

func cityTableStrategy(_ context.Context, location string) (Coordinate, Source, bool) {
	coord, ok := lookupCity(location)
	return coord, SourceCityTable, ok
}
