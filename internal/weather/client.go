// Package weather provides a stateless client for the upstream weather and
// IP geolocation endpoints. No retries happen at this layer; retry policy,
// if any, lives in the caller.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"tasker/internal/config"
	"tasker/internal/errors"
	"tasker/internal/logging"
)

// Reading is a normalized weather observation
type Reading struct {
	Temp        float64
	ConditionID int
	Condition   string
	Place       string
}

// IPLocation is the result of an IP-based geolocation lookup
type IPLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
}

// Client defines the interface for weather lookups
type Client interface {
	// CurrentByCoords fetches the current weather for a coordinate pair
	CurrentByCoords(ctx context.Context, lat, lon float64) (*Reading, error)

	// CurrentByCity fetches the current weather for a city by name
	CurrentByCity(ctx context.Context, city string) (*Reading, error)

	// LocationByIP resolves the caller's location from their IP address
	LocationByIP(ctx context.Context) (*IPLocation, error)
}

// currentResponse mirrors the upstream current-weather payload
type currentResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		ID   int    `json:"id"`
		Main string `json:"main"`
	} `json:"weather"`
	Name string `json:"name"`
}

// HTTPClient implements the Client interface over HTTP
type HTTPClient struct {
	baseURL     string
	ipLookupURL string
	apiKey      string
	units       string
	httpClient  *http.Client
}

// NewHTTPClient creates a new weather client from configuration
func NewHTTPClient(cfg config.WeatherConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:     cfg.BaseURL,
		ipLookupURL: cfg.IPLookupURL,
		apiKey:      cfg.APIKey,
		units:       cfg.Units,
		httpClient:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// CurrentByCoords fetches the current weather for a coordinate pair
func (c *HTTPClient) CurrentByCoords(ctx context.Context, lat, lon float64) (*Reading, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%g", lat))
	params.Set("lon", fmt.Sprintf("%g", lon))
	return c.current(ctx, params)
}

// CurrentByCity fetches the current weather for a city by name
func (c *HTTPClient) CurrentByCity(ctx context.Context, city string) (*Reading, error) {
	params := url.Values{}
	params.Set("q", city)
	return c.current(ctx, params)
}

// current performs a current-weather request with the given lookup params
func (c *HTTPClient) current(ctx context.Context, params url.Values) (*Reading, error) {
	params.Set("units", c.units)
	params.Set("appid", c.apiKey)
	requestURL := c.baseURL + "/weather?" + params.Encode()

	var payload currentResponse
	if err := c.getJSON(ctx, requestURL, &payload); err != nil {
		return nil, err
	}

	reading := &Reading{
		Temp:  payload.Main.Temp,
		Place: payload.Name,
	}
	if len(payload.Weather) > 0 {
		reading.ConditionID = payload.Weather[0].ID
		reading.Condition = payload.Weather[0].Main
	}
	return reading, nil
}

// LocationByIP resolves the caller's location from their IP address
func (c *HTTPClient) LocationByIP(ctx context.Context) (*IPLocation, error) {
	var location IPLocation
	if err := c.getJSON(ctx, c.ipLookupURL, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

// getJSON performs a GET request and decodes the JSON response body.
// Non-2xx responses and transport errors both surface as weather errors.
func (c *HTTPClient) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.NewWeatherError("build request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewWeatherError("weather request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debugf("weather request to %s returned %d\n", requestURL, resp.StatusCode)
		return errors.NewWeatherError("weather data not available", nil).
			WithContext("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewWeatherError("decode response", err)
	}
	return nil
}
