// Package client is a typed client for the lumbungwarga API. It owns the
// authenticated fetch discipline the web pages used to reimplement by hand:
// bearer tokens come from an injected session provider, mutations update
// local collection state only after the server confirms them, and every
// failure surfaces as a user-facing notification.
package client

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
)

// ErrUnauthorized is returned before any network call when the session
// provider has no token.
var ErrUnauthorized = errors.New("no active session")

// ValidationError is a client-side form check that failed before any
// request was issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(message string) error {
	return &ValidationError{Message: message}
}

// TokenSource supplies the current access token. It is consulted on every
// call rather than cached, so token refresh stays the provider's problem.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed token, useful in tests and scripts.
type StaticTokenSource string

func (s StaticTokenSource) AccessToken(ctx context.Context) (string, error) {
	return string(s), nil
}

// APIError is a non-2xx response. Message is taken from the server's JSON
// error body when present, falling back to the HTTP status text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	notifier   Notifier

	Needs     *NeedsService
	Donations *DonationsService
	Stock     *StockService
	Habits    *HabitsService
	Profile   *ProfileService
	Events    *EventsService
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(baseURL string, tokens TokenSource, notifier Notifier, opts ...Option) *Client {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		notifier:   notifier,
	}

	c.Needs = newNeedsService(c)
	c.Donations = newDonationsService(c)
	c.Stock = newStockService(c)
	c.Habits = newHabitsService(c)
	c.Profile = newProfileService(c)
	c.Events = newEventsService(c)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do issues one authenticated request. The token check happens before any
// network I/O; a missing token never produces an HTTP call. On non-2xx the
// returned error is an *APIError; decoding problems in the error body fall
// back to a generic message instead of failing the caller twice.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil || token == "" {
		return ErrUnauthorized
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
		}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func errorMessage(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "could not process error response"
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}

	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return "could not process error response"
}

// fail raises the failure notification and passes the error through. State
// is never touched on this path, so there is nothing to roll back.
func (c *Client) fail(err error) error {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrUnauthorized):
		c.notifier.Error("Akses ditolak", "Sesi tidak ditemukan, silakan masuk kembali.")
	case errors.As(err, &verr):
		c.notifier.Error("Periksa kembali", verr.Message)
	default:
		c.notifier.Error("Gagal", err.Error())
	}
	return err
}
