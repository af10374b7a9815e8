package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// GetStop returns information about a stop.
func (c *Client) GetStop(ctx context.Context, key int, usage Usage) (*Stop, error) {
	params := url.Values{}
	usage.apply(params)

	body, err := c.Get(ctx, fmt.Sprintf("/stops/%d.json", key), params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Stop *Stop `json:"stop"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse stop response: %w", err)
	}
	if result.Stop == nil {
		return nil, &ErrorResponse{
			StatusCode: 404,
			Message:    fmt.Sprintf("Stop %d not found", key),
		}
	}

	return result.Stop, nil
}

// ListStopsNearby returns stops within distance metres of a point, with
// walking distances filled in.
func (c *Client) ListStopsNearby(ctx context.Context, lat, lon float64, distance int, usage Usage) ([]Stop, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("distance", strconv.Itoa(distance))
	params.Set("walking", "true")
	usage.apply(params)

	body, err := c.Get(ctx, "/stops.json", params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Stops []Stop `json:"stops"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse stops response: %w", err)
	}

	return result.Stops, nil
}

// ListStopFeatures returns the amenities at a stop.
func (c *Client) ListStopFeatures(ctx context.Context, key int, usage Usage) ([]Feature, error) {
	params := url.Values{}
	usage.apply(params)

	body, err := c.Get(ctx, fmt.Sprintf("/stops/%d/features.json", key), params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Features []Feature `json:"stop-features"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse stop features response: %w", err)
	}

	return result.Features, nil
}
