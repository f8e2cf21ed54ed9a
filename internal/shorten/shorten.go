// Package shorten provides the link-shortening boundary: a client for
// the v.gd simple-format API. It is consumed by the QR generator when a
// URL payload exceeds compact code capacity.
package shorten

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

// DefaultEndpoint is the v.gd shortener creation endpoint.
const DefaultEndpoint = "https://v.gd/create.php"

// DefaultTimeout bounds a single shortening attempt. The generator falls
// back to a standard code on timeout, so this also bounds how long one
// record can stall the batch.
const DefaultTimeout = 5 * time.Second

// Client shortens URLs over HTTP. Construct with New.
type Client struct {
	endpoint string
	http     *resty.Client
}

// New creates a shortener client for the given endpoint. Zero values
// select DefaultEndpoint and DefaultTimeout.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     resty.New().SetTimeout(timeout),
	}
}

// Close releases the underlying HTTP client resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// Shorten asks the service for a short equivalent of url. A single
// attempt is made; any transport or service failure is returned to the
// caller, which decides how to degrade.
func (c *Client) Shorten(ctx context.Context, url string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("format", "simple").
		SetQueryParam("url", url).
		Get(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("shortening request failed: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("shortening service returned status %d", res.StatusCode())
	}

	short := strings.TrimSpace(res.String())
	if short == "" {
		return "", fmt.Errorf("shortening service returned an empty response")
	}
	return short, nil
}
