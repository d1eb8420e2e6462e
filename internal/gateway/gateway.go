package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/lumenwell/lumen/internal/constants"
	"github.com/lumenwell/lumen/internal/models"
)

// Failure kinds reported by NetworkError.
const (
	KindTimeout     = "timeout"
	KindUnreachable = "unreachable"
	KindStatus      = "status"
	KindMalformed   = "malformed"
)

// NetworkError normalizes remote failures into a small set of kinds so
// callers can decide between retry, queue, and give-up without inspecting
// transport internals. Status is only set for KindStatus.
type NetworkError struct {
	Op     string
	Kind   string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: remote returned status %d", e.Op, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is a NetworkError, returning it if so.
func IsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// Client talks to the remote wellbeing API. All methods return a
// *NetworkError on failure; a zero Client is not usable, construct one
// with New.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New builds a Client from settings. token may be empty, in which case
// requests are sent unauthenticated.
func New(settings models.Settings, token string) *Client {
	baseURL := settings.RemoteURL
	if baseURL == "" {
		baseURL = constants.DefaultRemoteURL
	}
	timeout := time.Duration(settings.RequestTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeoutSec * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the normalized remote base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON performs one JSON request. body may be nil for GETs. When out is
// non-nil the response body is decoded into it.
func (c *Client) doJSON(ctx context.Context, method, path string, body []byte, out any) error {
	op := fmt.Sprintf("%s %s", method, path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &NetworkError{Op: op, Kind: KindMalformed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Kind: classify(err), Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		io.Copy(io.Discard, res.Body)
		return &NetworkError{Op: op, Kind: KindStatus, Status: res.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return &NetworkError{Op: op, Kind: KindMalformed, Err: err}
		}
	}
	return nil
}

func classify(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindUnreachable
}
