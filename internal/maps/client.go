package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yatrika/service-planner/internal/domain/apperr"
	"github.com/yatrika/service-planner/internal/domain/trip"
)

const defaultBaseURL = "https://maps.googleapis.com"

// Client calls the Google Geocoding and Directions APIs. The API key is
// injected at construction; nothing here reads the process environment.
type Client struct {
	apiKey     string
	region     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests to point at a fake upstream).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Google Maps API client.
func NewClient(apiKey, region string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		region:  region,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Geocode resolves a free-text place name to coordinates and a canonical
// formatted address. A single call, no caching, no retry.
func (c *Client) Geocode(ctx context.Context, place string) (*trip.Place, error) {
	params := url.Values{}
	params.Set("address", place)
	params.Set("key", c.apiKey)
	if c.region != "" {
		params.Set("region", c.region)
	}

	var resp geocodeResponse
	if err := c.getJSON(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		c.logger.Warn("geocoding returned no results",
			zap.String("place", place),
			zap.String("status", resp.Status),
		)
		return nil, apperr.NewLookupError(fmt.Sprintf("could not geocode %q (status %s)", place, resp.Status))
	}

	result := resp.Results[0]
	return &trip.Place{
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
	}, nil
}

// FetchRoutes queries the directions API once per strategy applicable to
// the travel mode, requesting alternatives each time. A failed strategy
// query is isolated: it is logged and contributes zero routes. Only when
// every strategy fails does the fetch return an error.
func (c *Client) FetchRoutes(ctx context.Context, origin, destination string, mode trip.TravelMode) ([]trip.Route, error) {
	strategies := trip.StrategiesFor(mode)

	var routes []trip.Route
	var lastErr error
	failed := 0

	for _, strategy := range strategies {
		strategyRoutes, err := c.fetchStrategy(ctx, origin, destination, mode, strategy)
		if err != nil {
			failed++
			lastErr = err
			c.logger.Warn("directions query failed for strategy",
				zap.String("strategy", strategy.Name),
				zap.String("mode", mode.String()),
				zap.Error(err),
			)
			continue
		}
		routes = append(routes, strategyRoutes...)
	}

	if failed == len(strategies) {
		return nil, apperr.NewUpstreamError("all directions queries failed", lastErr)
	}
	return routes, nil
}

// fetchStrategy issues one directions query and normalizes each returned
// alternative into a Route tagged with the strategy name.
func (c *Client) fetchStrategy(ctx context.Context, origin, destination string, mode trip.TravelMode, strategy trip.Strategy) ([]trip.Route, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", strings.ToLower(mode.String()))
	params.Set("alternatives", "true")
	params.Set("key", c.apiKey)
	if strategy.Avoid != "" {
		params.Set("avoid", strategy.Avoid)
	}

	var resp directionsResponse
	if err := c.getJSON(ctx, "/maps/api/directions/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "OK" {
		return nil, apperr.NewUpstreamError(
			fmt.Sprintf("directions API returned status %s: %s", resp.Status, resp.ErrorMessage), nil)
	}

	routes := make([]trip.Route, 0, len(resp.Routes))
	for _, r := range resp.Routes {
		if len(r.Legs) == 0 {
			continue
		}
		leg := r.Legs[0]
		routes = append(routes, trip.Route{
			Summary:        r.Summary,
			DistanceMeters: leg.Distance.Value,
			DurationSecs:   leg.Duration.Value,
			DistanceText:   leg.Distance.Text,
			DurationText:   leg.Duration.Text,
			Polyline:       r.OverviewPolyline.Points,
			Strategy:       strategy.Name,
		})
	}
	return routes, nil
}

// getJSON performs a GET against the API and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return apperr.NewInternalError("failed to build maps API request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.NewUpstreamError("maps API request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return apperr.NewUpstreamError(
			fmt.Sprintf("maps API returned HTTP %d: %s", resp.StatusCode, string(body)), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.NewUpstreamError("failed to decode maps API response", err)
	}
	return nil
}
