// Package httpclient is the single outbound HTTP capability every provider
// integration goes through: one JSON call, one form call, one error shape.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	hc *http.Client
}

func New() *Client {
	return &Client{hc: &http.Client{Timeout: 30 * time.Second}}
}

// NewWithHTTPClient lets tests inject a transport.
func NewWithHTTPClient(hc *http.Client) *Client {
	return &Client{hc: hc}
}

// StatusError is a non-2xx provider response. The body is kept verbatim so
// callers can surface the provider's own diagnostics.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// PostJSON sends a JSON body and decodes a JSON response into out (if non-nil).
func (c *Client) PostJSON(ctx context.Context, rawURL string, headers map[string]string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, rawURL, headers, "application/json", bytes.NewReader(payload), out)
}

// PostForm sends url-encoded form data and decodes a JSON response into out.
func (c *Client) PostForm(ctx context.Context, rawURL string, headers map[string]string, form url.Values, out any) error {
	return c.do(ctx, rawURL, headers, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), out)
}

func (c *Client) do(ctx context.Context, rawURL string, headers map[string]string, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Body: string(data)}
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
