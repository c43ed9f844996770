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

	"github.com/studiowebux/trending/internal/apperr"
	"github.com/studiowebux/trending/internal/types"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the public trending API
	DefaultBaseURL = "https://github-trending-api.now.sh"
	// DefaultTimeout bounds a single request
	DefaultTimeout = 30 * time.Second
)

// BodyFilter rewrites a raw response body before it is decoded
type BodyFilter func(body []byte) ([]byte, error)

// Client talks to the trending API
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent sets the User-Agent header sent with each request
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client for the API rooted at baseURL.
// A zero timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Transport: &http.Transport{Proxy: http.ProxyFromEnvironment}},
		userAgent:  "trending",
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LanguagesURL returns the languages endpoint
func (c *Client) LanguagesURL() string {
	return c.baseURL + "/languages"
}

// RepositoriesURL returns the repositories endpoint for the query
func (c *Client) RepositoriesURL(q types.Query) string {
	return RepositoriesURL(c.baseURL, q)
}

// RepositoriesURL builds the repositories query URL.
// The language parameter is inserted verbatim and omitted for the "All" sentinel.
func RepositoriesURL(baseURL string, q types.Query) string {
	base := strings.TrimRight(baseURL, "/")
	if !q.Filtered() {
		return fmt.Sprintf("%s/repositories?since=%s", base, q.Since)
	}
	return fmt.Sprintf("%s/repositories?language=%s&since=%s", base, q.Language, q.Since)
}

// FetchLanguages loads the language list and appends the "All" entry
func (c *Client) FetchLanguages(ctx context.Context) ([]types.Language, error) {
	body, err := c.get(ctx, c.LanguagesURL())
	if err != nil {
		return nil, err
	}

	var langs []types.Language
	if err := decodeArray(body, &langs); err != nil {
		return nil, apperr.Decode("failed to decode languages", err)
	}
	for i, l := range langs {
		if err := l.Validate(); err != nil {
			return nil, apperr.Decode(fmt.Sprintf("invalid language at index %d", i), err)
		}
	}

	c.logger.Debug("languages loaded", zap.Int("count", len(langs)))
	return types.WithAll(langs), nil
}

// FetchRepositories loads trending projects from rawURL, as built by RepositoriesURL.
// Filters run in order on the raw body before decoding.
func (c *Client) FetchRepositories(ctx context.Context, rawURL string, filters ...BodyFilter) ([]types.Project, error) {
	body, err := c.get(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	for _, f := range filters {
		body, err = f(body)
		if err != nil {
			return nil, apperr.Decode("failed to filter repositories", err)
		}
	}

	projects, err := DecodeProjects(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("repositories loaded", zap.Int("count", len(projects)))
	return projects, nil
}

// DecodeProjects decodes a JSON array of projects.
// Each record must carry a name, a url and an author.
func DecodeProjects(body []byte) ([]types.Project, error) {
	var projects []types.Project
	if err := decodeArray(body, &projects); err != nil {
		return nil, apperr.Decode("failed to decode repositories", err)
	}
	for i := range projects {
		if err := projects[i].Validate(); err != nil {
			return nil, apperr.Decode(fmt.Sprintf("invalid repository at index %d", i), err)
		}
	}
	return projects, nil
}

// decodeArray decodes body into v, rejecting anything but a top-level JSON array.
// json.Unmarshal alone turns null into a nil slice.
func decodeArray(body []byte, v any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return errors.New("expected a JSON array")
	}
	return json.Unmarshal(trimmed, v)
}

// get performs a GET and returns the body of a successful response
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperr.Network("failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Network(fmt.Sprintf("GET %s failed", rawURL), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Network("failed to read response body", err)
	}

	c.logger.Debug("request completed",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Int("size", len(body)),
		zap.Duration("duration", time.Since(startTime)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.Network(fmt.Sprintf("GET %s returned %s", rawURL, resp.Status), nil)
	}

	return body, nil
}
