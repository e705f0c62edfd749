// Package client is a typed HTTP client for the listing API. The
// map-driven frontend uses it through MapWatcher; scripts and tests use
// the direct methods.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homefinder/internal/models"
	"homefinder/internal/search"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithToken attaches a bearer token to every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, into interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}
	if into == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

// SearchProperties runs a filtered, paginated search.
func (c *Client) SearchProperties(ctx context.Context, query url.Values) (*search.Page, error) {
	var page search.Page
	if err := c.do(ctx, http.MethodGet, "/api/properties", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FeaturedProperties fetches the n newest active listings.
func (c *Client) FeaturedProperties(ctx context.Context, n int) ([]models.Property, error) {
	query := url.Values{"featured": {strconv.Itoa(n)}}
	var result search.FeaturedResult
	if err := c.do(ctx, http.MethodGet, "/api/properties", query, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// MapResult is the flat response of a viewport query.
type MapResult struct {
	Data  []models.Property `json:"data"`
	Total int64             `json:"total"`
}

// MapSearch fetches the pins inside the viewport. Extra filters may be
// passed alongside the bounds.
func (c *Client) MapSearch(ctx context.Context, bounds search.Bounds, extra url.Values) (*MapResult, error) {
	query := url.Values{}
	for k, vs := range extra {
		query[k] = vs
	}
	query.Set("north", formatCoord(bounds.North))
	query.Set("south", formatCoord(bounds.South))
	query.Set("east", formatCoord(bounds.East))
	query.Set("west", formatCoord(bounds.West))

	var result MapResult
	if err := c.do(ctx, http.MethodGet, "/api/properties/map", query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GetProperty fetches a single listing.
func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodGet, "/api/properties/"+id, nil, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}
