// Package islamicapi is a thin client for the IslamicAPI Ramadan endpoint.
package islamicapi

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
	"time"
)

const (
	DefaultBaseURL = "https://islamicapi.com/api/v1/ramadan/"
	DefaultTimeout = 15 * time.Second

	// upstream error bodies are echoed back to the caller; keep them short
	maxErrorBody = 4 << 10
)

var ErrNotJSON = errors.New("response body is not valid JSON")

// StatusError is returned when IslamicAPI answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("islamicapi: HTTP %d - %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client against baseURL with a fixed per-call timeout.
// Empty values fall back to the public endpoint and 15s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Ramadan issues a single GET for the fasting schedule at lat/lon and returns
// the raw JSON document. No retries.
func (c *Client) Ramadan(ctx context.Context, lat, lon, apiKey string) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("islamicapi: bad base url: %w", err)
	}
	q := u.Query()
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("api_key", apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, redactKey(err, apiKey)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: errorBody(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, redactKey(err, apiKey)
	}
	if !json.Valid(body) {
		return nil, ErrNotJSON
	}
	return body, nil
}

// errorBody renders an upstream error body, compacting it when it is JSON.
func errorBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		return buf.String()
	}
	return strings.TrimSpace(string(body))
}

// redactKey strips the api key out of *url.Error messages, which embed the
// full request URL.
func redactKey(err error, apiKey string) error {
	var uerr *url.Error
	if apiKey == "" || !errors.As(err, &uerr) {
		return err
	}
	return &url.Error{
		Op:  uerr.Op,
		URL: strings.ReplaceAll(uerr.URL, url.QueryEscape(apiKey), "REDACTED"),
		Err: uerr.Err,
	}
}
