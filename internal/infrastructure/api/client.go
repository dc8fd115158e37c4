// Package api implements the REST adapters for the LandMarket backend.
// One adapter per aggregate (auth, wishlist, lands, users) shares a single
// transport. Transport and status failures never escape this package raw:
// they are normalized into the domain error taxonomy at this boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/metrics"
)

// Client is the shared transport for all backend adapters.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New builds a Client for the given base URL (including any path prefix,
// e.g. "…/api/v1").
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// httpError is a non-2xx response. Message carries the backend's own error
// text when the body held one, otherwise it is empty.
type httpError struct {
	Status  int
	Message string
}

func (e *httpError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend responded %d", e.Status)
}

// transportError is a failure before any response arrived: DNS, refused
// connection, timeout.
type transportError struct {
	Cause error
}

func (e *transportError) Error() string { return fmt.Sprintf("backend unreachable: %v", e.Cause) }
func (e *transportError) Unwrap() error { return e.Cause }

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

// apiCall describes one round-trip. endpoint is the stable metric label,
// not the concrete path.
type apiCall struct {
	endpoint string
	method   string
	path     string
	token    string
	body     any
	out      any
}

func (c *Client) do(ctx context.Context, call apiCall) error {
	var payload io.Reader
	if call.body != nil {
		data, err := json.Marshal(call.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", call.endpoint, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, call.method, c.baseURL+call.path, payload)
	if err != nil {
		return fmt.Errorf("build %s request: %w", call.endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if call.token != "" {
		req.Header.Set("Authorization", "Bearer "+call.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.APIRequestDuration.WithLabelValues(call.endpoint, "network").Observe(time.Since(start).Seconds())
		c.log.Debug().Err(err).Str("endpoint", call.endpoint).Msg("request failed before response")
		return &transportError{Cause: err}
	}
	defer resp.Body.Close()

	outcome := "ok"
	switch {
	case resp.StatusCode >= 500:
		outcome = "server_error"
	case resp.StatusCode >= 400:
		outcome = "client_error"
	}
	metrics.APIRequestDuration.WithLabelValues(call.endpoint, outcome).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("endpoint", call.endpoint).
			Str("message", eb.Message).
			Msg("backend rejected request")
		return &httpError{Status: resp.StatusCode, Message: eb.Message}
	}

	if call.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(call.out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s response: %w", call.endpoint, err)
		}
	}
	return nil
}

// normalize converts the shared failure shapes of authenticated endpoints
// into domain errors. notFound is substituted for 404; pass nil when the
// endpoint has no per-resource identity.
func normalize(err error, notFound error) error {
	var he *httpError
	if errors.As(err, &he) {
		switch {
		case he.Status == http.StatusUnauthorized:
			return domain.ErrSessionExpired
		case he.Status == http.StatusNotFound && notFound != nil:
			return notFound
		}
	}
	return err
}
