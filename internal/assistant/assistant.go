// Package assistant orchestrates one weather turn: interpreting the user's
// request, resolving it to coordinates, fetching the forecast, and writing
// the summary. Every CLI entry point goes through this package.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/brisa-ai/brisa/internal/geo"
	"github.com/brisa-ai/brisa/internal/llm"
	"github.com/brisa-ai/brisa/internal/weather"
)

// Forecaster fetches raw weather data for a position.
type Forecaster interface {
	Forecast(ctx context.Context, latitude, longitude float64) (json.RawMessage, error)
}

// Assistant coordinates the LLM, the location resolver, and the weather
// service. All dependencies are injected; it keeps no hidden clients.
type Assistant struct {
	client     llm.Client
	resolver   *geo.Resolver
	forecaster Forecaster
}

// New creates an Assistant with the given dependencies.
func New(client llm.Client, resolver *geo.Resolver, forecaster Forecaster) *Assistant {
	return &Assistant{
		client:     client,
		resolver:   resolver,
		forecaster: forecaster,
	}
}

// Interpretation is the outcome of understanding one user utterance.
type Interpretation struct {
	Request *weather.Request

	// Resolution records which tier produced the coordinates, so the UI
	// can tell the user when the London default kicked in.
	Resolution geo.Resolution
}

// Greet asks the model for a short opening line.
func (a *Assistant) Greet(ctx context.Context) (string, error) {
	reply, err := a.client.Chat(ctx, []llm.Message{
		{Role: "system", Content: greetingSystemPrompt},
		{Role: "user", Content: greetingUserPrompt},
	})
	if err != nil {
		return "", fmt.Errorf("generating greeting: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// Interpret turns a free-form utterance into a fully-resolved request.
// A raw coordinate pair skips the model entirely. Replies the model
// mangles degrade to a fallback request; the only hard failure is the
// chat transport itself.
func (a *Assistant) Interpret(ctx context.Context, input string) (*Interpretation, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, weather.ErrEmptyQuery
	}

	if coord, ok := geo.ParseCoordinates(input); ok {
		req := &weather.Request{
			Location:             coord.String(),
			Type:                 weather.TypeCurrent,
			SpecificRequirements: "weather information for coordinates",
		}
		req.SetCoordinates(coord)
		return &Interpretation{
			Request:    req,
			Resolution: geo.Resolution{Coordinate: coord, Source: geo.SourceCoordinates},
		}, nil
	}

	req, err := a.parse(ctx, input)
	if err != nil {
		return nil, err
	}

	if coord, ok := req.Coordinates(); ok {
		return &Interpretation{
			Request:    req,
			Resolution: geo.Resolution{Coordinate: coord, Source: geo.SourceCoordinates},
		}, nil
	}

	res := a.resolver.Resolve(ctx, req.Location)
	req.SetCoordinates(res.Coordinate)
	return &Interpretation{Request: req, Resolution: res}, nil
}

// parse runs the extraction turn and normalizes the model's answer.
func (a *Assistant) parse(ctx context.Context, input string) (*weather.Request, error) {
	messages := []llm.Message{
		{Role: "system", Content: parseSystemPrompt},
		{Role: "user", Content: "Parse this: " + input},
	}

	var req weather.Request
	err := a.client.ChatJSON(ctx, messages, &req)

	var parseErr *llm.ParseError
	switch {
	case errors.As(err, &parseErr):
		// The model ignored the format. Fall back to defaults and keep
		// the raw reply for diagnostics.
		log.Debug().Err(parseErr.Err).Msg("model reply not valid JSON, using fallback request")
		req = weather.Request{
			Location:             "unknown",
			Type:                 weather.TypeCurrent,
			SpecificRequirements: input,
			RawResponse:          parseErr.Raw,
		}
	case err != nil:
		return nil, fmt.Errorf("interpreting request: %w", err)
	}

	req.Type = req.Type.Normalize()
	if strings.TrimSpace(req.Location) == "" {
		req.Location = "London"
	}
	if strings.TrimSpace(req.SpecificRequirements) == "" {
		req.SpecificRequirements = input
	}

	return &req, nil
}

// Forecast fetches raw weather data for an interpreted request.
func (a *Assistant) Forecast(ctx context.Context, req *weather.Request) (json.RawMessage, error) {
	coord, ok := req.Coordinates()
	if !ok {
		return nil, weather.ErrNoCoordinates
	}

	data, err := a.forecaster.Forecast(ctx, coord.Latitude, coord.Longitude)
	if err != nil {
		return nil, fmt.Errorf("fetching weather data: %w", err)
	}
	return data, nil
}

// Summarize asks the model to turn the raw payload into short prose.
func (a *Assistant) Summarize(ctx context.Context, req *weather.Request, data json.RawMessage) (string, error) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(data)
	}

	userPrompt := fmt.Sprintf("User requested: %s\n\nWeather data: %s", req.SpecificRequirements, pretty.String())
	reply, err := a.client.Chat(ctx, []llm.Message{
		{Role: "system", Content: summarySystemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return "", fmt.Errorf("generating summary: %w", err)
	}
	return strings.TrimSpace(reply), nil
}
