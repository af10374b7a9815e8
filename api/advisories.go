package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListServiceAdvisoriesOptions filters the advisory list.
type ListServiceAdvisoriesOptions struct {
	Priority Priority // only this priority or more urgent
	Category Category
	MaxAge   int // days
	Limit    int
	Usage    Usage
}

// ListServiceAdvisories returns current service advisories.
func (c *Client) ListServiceAdvisories(ctx context.Context, opts *ListServiceAdvisoriesOptions) ([]ServiceAdvisory, error) {
	params := url.Values{}

	if opts != nil {
		if opts.Priority.Valid() {
			params.Set("priority", strconv.Itoa(int(opts.Priority)))
		}
		if opts.Category != "" {
			params.Set("category", opts.Category.param())
		}
		if opts.MaxAge > 0 {
			params.Set("max_age", strconv.Itoa(opts.MaxAge))
		}
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		opts.Usage.apply(params)
	}

	body, err := c.Get(ctx, "/service-advisories.json", params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Advisories []ServiceAdvisory `json:"service-advisories"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse service advisories response: %w", err)
	}

	return result.Advisories, nil
}

// GetServiceAdvisory returns a single advisory by key.
func (c *Client) GetServiceAdvisory(ctx context.Context, key int, usage Usage) (*ServiceAdvisory, error) {
	params := url.Values{}
	usage.apply(params)

	body, err := c.Get(ctx, fmt.Sprintf("/service-advisories/%d.json", key), params)
	if err != nil {
		return nil, err
	}

	var result struct {
		Advisory *ServiceAdvisory `json:"service-advisory"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse service advisory response: %w", err)
	}
	if result.Advisory == nil {
		return nil, &ErrorResponse{
			StatusCode: 404,
			Message:    fmt.Sprintf("Service advisory %d not found", key),
		}
	}

	return result.Advisory, nil
}

// Ping checks that the endpoint answers and accepts the API key by asking
// for a single advisory.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListServiceAdvisories(ctx, &ListServiceAdvisoriesOptions{Limit: 1})
	return err
}
