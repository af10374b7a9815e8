package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Winnipeg Transit v3 endpoint.
	DefaultBaseURL = "https://api.winnipegtransit.com/v3"

	defaultTimeout = 30 * time.Second
)

// Client is the Winnipeg Transit API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Winnipeg Transit API client. An empty baseURL
// selects DefaultBaseURL.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do executes an HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api-key", c.apiKey)

	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		errResp := ErrorResponse{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Message == "" {
			errResp.Message = strings.TrimSpace(string(respBody))
		}
		return nil, &errResp
	}

	return respBody, nil
}

// Get performs a GET request. params may be nil.
func (c *Client) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, params)
}
