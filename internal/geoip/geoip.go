// Package geoip looks up the approximate location of the current public IP
// address from an ipapi.co style JSON endpoint.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the public lookup service.
const DefaultEndpoint = "https://ipapi.co/json/"

const maxBody = 64 << 10

// Result is the subset of the geolocation response that is used. Any field
// may be empty.
type Result struct {
	Timezone    string   `json:"timezone"`
	CountryCode string   `json:"country_code"`
	CountryName string   `json:"country_name"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// HasCoordinates reports whether both latitude and longitude were returned.
func (r Result) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Usable reports whether the response carries anything a location can be
// built from.
func (r Result) Usable() bool {
	return r.Timezone != "" || r.CountryCode != "" || r.City != "" || r.HasCoordinates()
}

// Client queries a geolocation endpoint.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// New creates a Client for endpoint with the given request timeout.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// Lookup performs a single request. It does not retry.
func (c *Client) Lookup(ctx context.Context) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint, nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "yearprogress")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return Result{}, fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxBody {
		return Result{}, fmt.Errorf("response larger than %d bytes", maxBody)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("geolocation returned %d", resp.StatusCode)
	}

	var payload struct {
		Result
		Error  bool   `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, fmt.Errorf("parse response: %w", err)
	}
	if payload.Error {
		return Result{}, fmt.Errorf("geolocation error: %s", payload.Reason)
	}
	return payload.Result, nil
}
