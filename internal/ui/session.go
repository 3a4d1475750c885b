package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"github.com/brisa-ai/brisa/internal/assistant"
	"github.com/brisa-ai/brisa/internal/geo"
	"github.com/brisa-ai/brisa/internal/llm"
	"github.com/brisa-ai/brisa/internal/meteo"
	"github.com/brisa-ai/brisa/internal/weather"
)

const cannedGreeting = "Hello! I'm brisa, your weather assistant. Tell me a place " +
	"and what you'd like to know about its weather."

// turnOptions adjusts how a single weather turn presents its result.
type turnOptions struct {
	raw  bool // print the forecast payload instead of a summary
	copy bool // copy the result to the clipboard
}

// newAssistant wires the LLM client, geocoder, and forecaster from config.
// All clients are built here and injected; nothing is created mid-turn.
func (a *App) newAssistant(modelOverride string) (*assistant.Assistant, error) {
	model := modelOverride
	if model == "" {
		model = a.config.LLM.Model
	}

	client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating LLM client: %w", err)
	}

	geocoder := geo.NewNominatimClient(
		a.config.Geocoding.BaseURL,
		a.config.Geocoding.UserAgent,
		a.config.Geocoding.Timeout(),
	)
	forecaster := meteo.NewClient(a.config.Weather.BaseURL, a.config.Weather.Timeout())

	return assistant.New(client, geo.NewResolver(geocoder), forecaster), nil
}

// runInteractive is the root command: greet, read one line, answer, exit.
func (a *App) runInteractive(ctx context.Context) error {
	fmt.Println(formatHeader("=== brisa ==="))
	fmt.Println()

	asst, err := a.newAssistant("")
	if err != nil {
		return err
	}

	greeting, err := a.greet(ctx, asst)
	if err != nil {
		log.Debug().Err(err).Msg("greeting failed, using canned text")
		greeting = cannedGreeting
	}
	fmt.Println(RenderSummary(greeting))
	fmt.Println()

	input, err := readInput(a.config.UI.Prompt)
	if err != nil {
		return err
	}
	if input == "" {
		fmt.Println(formatMuted("Nothing asked."))
		return nil
	}

	return a.runTurn(ctx, asst, input, turnOptions{})
}

// runTurn executes one full weather turn: interpret, fetch, present, record.
// Stage failures become formatted error text and a nil return, so the process
// still exits 0 (the summary slot shows the error instead).
func (a *App) runTurn(ctx context.Context, asst *assistant.Assistant, input string, opts turnOptions) error {
	fmt.Println(formatMuted("Interpreting your request..."))

	interp, err := a.interpret(ctx, asst, input)
	if err != nil {
		if errors.Is(err, weather.ErrEmptyQuery) {
			return err
		}
		printTurnError(err)
		return nil
	}
	req := interp.Request

	if interp.Resolution.Source == geo.SourceDefault {
		fmt.Println(formatNotice("Location not found, using London"))
	}

	coord, _ := req.Coordinates()
	fmt.Println(formatMuted(fmt.Sprintf("Fetching %s weather for %s (%s)...", req.Type, req.Location, coord)))

	data, err := asst.Forecast(ctx, req)
	if err != nil {
		printTurnError(err)
		return nil
	}

	var output string
	if opts.raw {
		output = prettyJSON(data)
		fmt.Println(output)
	} else {
		fmt.Println(formatMuted("Summarizing..."))

		summary, err := a.summarize(ctx, asst, req, data)
		if err != nil {
			printTurnError(err)
			return nil
		}
		output = summary

		fmt.Println()
		fmt.Println(formatHeader("=== Weather Summary ==="))
		fmt.Println(RenderSummary(summary))
	}

	summary := output
	if opts.raw {
		summary = "" // raw turns skip the summarizer, nothing to record
	}
	a.saveLookup(ctx, input, interp, summary)

	if opts.copy {
		if err := clipboard.WriteAll(output); err != nil {
			log.Warn().Err(err).Msg("copying to clipboard failed")
			fmt.Println(formatMuted("(could not copy to clipboard)"))
		} else {
			fmt.Println(formatMuted("(copied to clipboard)"))
		}
	}

	return nil
}

// greet, interpret, and summarize wrap the assistant calls with the chat
// timeout from config, so a stuck model cannot stall the turn forever.
func (a *App) greet(ctx context.Context, asst *assistant.Assistant) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.LLM.Timeout())
	defer cancel()
	return asst.Greet(ctx)
}

func (a *App) interpret(ctx context.Context, asst *assistant.Assistant, input string) (*assistant.Interpretation, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.LLM.Timeout())
	defer cancel()
	return asst.Interpret(ctx, input)
}

func (a *App) summarize(ctx context.Context, asst *assistant.Assistant, req *weather.Request, data json.RawMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.LLM.Timeout())
	defer cancel()
	return asst.Summarize(ctx, req, data)
}

// saveLookup records the turn in history. Failures are logged, never
// surfaced: history is not worth failing a successful turn over.
func (a *App) saveLookup(ctx context.Context, query string, interp *assistant.Interpretation, summary string) {
	if err := a.ensureRepo(); err != nil {
		log.Warn().Err(err).Msg("history unavailable")
		return
	}

	coord, _ := interp.Request.Coordinates()
	lookup := &weather.Lookup{
		Query:     query,
		Location:  interp.Request.Location,
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
		Type:      interp.Request.Type,
		Source:    interp.Resolution.Source,
		Summary:   summary,
		CreatedAt: time.Now(),
	}
	if err := a.repo.SaveLookup(ctx, lookup); err != nil {
		log.Warn().Err(err).Msg("saving lookup failed")
	}
}

func printTurnError(err error) {
	fmt.Println(formatError(fmt.Sprintf("Error: unable to fetch weather data. %v", err)))
}

func prettyJSON(data json.RawMessage) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return string(data)
	}
	return pretty.String()
}
