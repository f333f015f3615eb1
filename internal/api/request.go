package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// APIError represents a non-success response from the Kalshi API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kalshi api error %d: %s", e.StatusCode, e.Message)
}

// TruncatedBody returns at most n bytes of the response body for logging.
func (e *APIError) TruncatedBody(n int) string {
	if len(e.Body) <= n {
		return string(e.Body)
	}
	return string(e.Body[:n])
}

// IsInsufficientVolume reports whether err is an order rejection caused by a
// lack of resting liquidity at the requested price.
func IsInsufficientVolume(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return strings.Contains(strings.ToLower(string(apiErr.Body)), "insufficient_resting_volume")
}

// do waits on the rate limiter, performs the request once, and decodes the
// JSON response into result.
func (c *Client) do(req *http.Request, result any) error {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// get performs an unauthenticated GET request.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, result)
}

// postSigned performs a signed POST request. The body is serialized compactly
// and the signature covers the full request path (base URL path included),
// never the query string or the body.
func (c *Client) postSigned(ctx context.Context, path string, payload, result any) error {
	if c.creds == nil {
		return errors.New("credentials required for signed request")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}

	fullURL := c.baseURL + path
	u, err := url.Parse(fullURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	headers, err := c.creds.Headers(http.MethodPost, u.Path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.do(req, result)
}
