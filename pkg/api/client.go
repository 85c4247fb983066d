package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/gymbuddy/gymbuddy/internal/logging"
	"github.com/gymbuddy/gymbuddy/pkg/domain"
)

// Client talks to the coach service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger configures a logger for request debugging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the service at baseURL. The default
// HTTP client carries no timeout: a request runs to completion or
// failure and is never cancelled by the client itself.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProfile looks up the stored profile. A server without a profile
// answers ok:false; that is a valid lookup, not an error. Only
// transport or decoding failures return a non-nil error.
func (c *Client) FetchProfile(ctx context.Context) (*ProfileLookup, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathProfile, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}

	var env profileEnvelope
	if err := c.do(req, &env); err != nil {
		return nil, err
	}

	lookup := &ProfileLookup{OK: env.OK && env.Profile != nil, Summary: env.ProfileSummary}
	if lookup.OK {
		var p domain.Profile
		if err := mapstructure.WeakDecode(env.Profile, &p); err != nil {
			return nil, fmt.Errorf("decode profile object: %w", err)
		}
		lookup.Profile = &p
	}
	return lookup, nil
}

// SubmitOnboarding posts the onboarding payload and returns the profile
// summary on success. A server-reported rejection comes back as a
// *domain.ServerError carrying the verbatim error string.
func (c *Client) SubmitOnboarding(ctx context.Context, payload domain.Profile) (string, error) {
	req, err := c.post(ctx, PathOnboarding, payload)
	if err != nil {
		return "", err
	}

	var env onboardingEnvelope
	if err := c.do(req, &env); err != nil {
		return "", err
	}
	if !env.OK {
		return "", &domain.ServerError{Message: env.Error}
	}
	return env.ProfileSummary, nil
}

// SendChat posts one chat message and returns the assistant reply. A
// server-reported rejection comes back as a *domain.ServerError.
func (c *Client) SendChat(ctx context.Context, message string) (string, error) {
	req, err := c.post(ctx, PathChat, chatRequest{Message: message})
	if err != nil {
		return "", err
	}

	var env chatEnvelope
	if err := c.do(req, &env); err != nil {
		return "", err
	}
	if !env.OK {
		return "", &domain.ServerError{Message: env.Error}
	}
	return env.Reply, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do performs the round trip and decodes the JSON envelope. The body is
// decoded regardless of HTTP status: the service reports logical
// failures in-band via ok:false.
func (c *Client) do(req *http.Request, out any) error {
	c.logger.Debug("api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", req.URL.Path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}

	c.logger.Debug("api response", "url", req.URL.String(), "status", resp.StatusCode)
	return nil
}
