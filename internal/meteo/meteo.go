// Package meteo fetches forecasts from the Open-Meteo API.
package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Fields requested on every call. Current conditions and the daily
// outlook are always fetched together so the summarizer sees both.
const (
	currentFields = "temperature_2m,relative_humidity_2m,weather_code"
	dailyFields   = "temperature_2m_max,temperature_2m_min,precipitation_sum"
)

// Client fetches forecasts from an Open-Meteo compatible endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a forecast client for the given endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Forecast fetches weather for a position. The payload is returned as-is:
// interpreting it is the summarizer's job, not ours.
func (c *Client) Forecast(ctx context.Context, latitude, longitude float64) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building forecast request: %w", err)
	}

	q := req.URL.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", currentFields)
	q.Set("daily", dailyFields)
	q.Set("timezone", "auto")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling weather service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading weather response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("weather service returned invalid JSON")
	}

	return json.RawMessage(body), nil
}
