package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrNotFound marks a 404 on a per-entity fetch: the entity does not exist
var ErrNotFound = errors.New("upstream entity not found")

// Error is a non-2xx upstream response carrying the server's structured
// message when one was present
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err marks a missing upstream entity
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Message returns the server-supplied error message from err when err wraps
// an upstream Error, else the empty string
func Message(err error) string {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Message
	}
	return ""
}

// Client is the one HTTP client every resource service shares. No retries,
// no authentication headers; the timeout comes from configuration.
type Client struct {
	HTTP      *http.Client
	Endpoints Endpoints
}

// NewClient builds the shared client for the configured base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		Endpoints: NewEndpoints(baseURL),
	}
}

func (c *Client) do(ctx context.Context, method, url, contentType string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s %s: %w", method, url, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zap.S().Warnw("upstream request failed",
			"method", method,
			"url", url,
			"status", resp.StatusCode,
		)
		return nil, &Error{StatusCode: resp.StatusCode, Message: serverMessage(raw)}
	}
	return raw, nil
}

// serverMessage digs a structured error message out of a failure body. The
// upstream has used several envelopes over time.
func serverMessage(raw []byte) string {
	var envelope struct {
		Message  string `json:"message"`
		Error    string `json:"error"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		for _, m := range []string{envelope.Message, envelope.Error, envelope.Response} {
			if m != "" {
				return m
			}
		}
	}
	if len(raw) > 0 && len(raw) <= 512 {
		return string(raw)
	}
	return "upstream request failed"
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	raw, err := c.do(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c *Client) getRaw(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, "", nil)
}

func (c *Client) postJSON(ctx context.Context, url string, in interface{}) ([]byte, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, url, "application/json", body)
}

func (c *Client) patchJSON(ctx context.Context, url string, in interface{}) ([]byte, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPatch, url, "application/json", body)
}

// postPlain sends a bare text/plain body. The unit and reason resources take
// their values this way so a JSON-stringified name never lands in storage.
func (c *Client) postPlain(ctx context.Context, url, value string) error {
	_, err := c.do(ctx, http.MethodPost, url, "text/plain; charset=utf-8", []byte(value))
	return err
}

func (c *Client) delete(ctx context.Context, url string) error {
	_, err := c.do(ctx, http.MethodDelete, url, "", nil)
	return err
}
