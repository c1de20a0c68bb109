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
	"strconv"
	"sync"
	"time"

	"k8s.io/klog/v2"

	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/audit"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/cache"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/clock"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/config"
	"github.com/elevated-systems/compute-gardener-regionmap/pkg/regionmap/metrics"
)

// Endpoint names used in metrics and audit records
const (
	EndpointLogin         = "login"
	EndpointRegionFromLoc = "region-from-loc"
)

// maxBodyBytes bounds how much of a response is read
const maxBodyBytes = 1 << 20

var (
	// ErrUnauthorized is returned when WattTime answers 401
	ErrUnauthorized = errors.New("unauthorized (401), check WattTime credentials")

	// ErrMissingToken is returned when the login response has no token
	ErrMissingToken = errors.New("login response did not contain a token")
)

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized.Error()
	}
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// Unwrap lets errors.Is match ErrUnauthorized on 401 responses
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// RawResult is the decoded region-from-loc payload. Its shape is not fixed;
// see the normalize package.
type RawResult = any

// HTTPClient interface allows mocking http.Client in tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CacheInterface stores successful lookups
type CacheInterface interface {
	Get(key string) (any, bool)
	Set(key string, data any)
}

// Client handles interactions with the WattTime API
type Client struct {
	apiConfig  config.APIConfig
	httpClient HTTPClient
	clock      clock.Clock
	cache      CacheInterface
	auditor    audit.Sink
	runID      string

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time
}

// ClientOption allows customizing the client
type ClientOption func(*Client)

// WithHTTPClient allows injecting a custom HTTP client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithCache adds a lookup cache to the client
func WithCache(cache CacheInterface) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithClock replaces the clock used for backoff and token expiry
func WithClock(clk clock.Clock) ClientOption {
	return func(c *Client) {
		c.clock = clk
	}
}

// WithAuditor records every HTTP call in sink, tagged with runID
func WithAuditor(sink audit.Sink, runID string) ClientOption {
	return func(c *Client) {
		c.auditor = sink
		c.runID = runID
	}
}

// NewClient creates a new API client
func NewClient(apiCfg config.APIConfig, opts ...ClientOption) *Client {
	client := &Client{
		apiConfig: apiCfg,
		httpClient: &http.Client{
			Timeout: apiCfg.Timeout,
		},
		clock:   clock.RealClock{},
		auditor: audit.NopSink{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Login exchanges the configured username and password for a bearer token
// and caches it for TokenTTL.
func (c *Client) Login(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiConfig.LoginURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.SetBasicAuth(c.apiConfig.Username, c.apiConfig.Password)
	req.Header.Set("Accept", "application/json")

	body, err := c.do(ctx, req, audit.CallRecord{Endpoint: EndpointLogin, Attempt: 1})
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}

	var payload struct {
		Token any `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	token, ok := payload.Token.(string)
	if !ok || token == "" {
		return "", ErrMissingToken
	}

	c.tokenMu.Lock()
	c.token = token
	c.tokenExpiry = c.clock.Now().Add(c.apiConfig.TokenTTL)
	expiry := c.tokenExpiry
	c.tokenMu.Unlock()

	klog.V(2).InfoS("WattTime token acquired", "expiresAt", expiry)
	return token, nil
}

// currentToken returns the cached token, logging in again when it is
// missing or expired.
func (c *Client) currentToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	token, expiry := c.token, c.tokenExpiry
	c.tokenMu.Unlock()

	if token != "" && (c.apiConfig.TokenTTL <= 0 || c.clock.Now().Before(expiry)) {
		return token, nil
	}
	if token != "" {
		metrics.TokenRefreshesTotal.WithLabelValues("expired").Inc()
		klog.V(2).InfoS("WattTime token expired, logging in again", "expiredAt", expiry)
	}
	return c.Login(ctx)
}

func (c *Client) invalidateToken() {
	c.tokenMu.Lock()
	c.token = ""
	c.tokenMu.Unlock()
}

// RegionFromLoc resolves a coordinate to a WattTime region. Failed attempts
// are retried with linear backoff (RetryDelay * attempt). A 401 triggers one
// token refresh; a second 401 fails immediately. The decoded body is
// returned unmodified.
func (c *Client) RegionFromLoc(ctx context.Context, lat, lon float64, signalType string) (RawResult, error) {
	key := cache.Key(lat, lon, signalType)
	if c.cache != nil {
		if data, ok := c.cache.Get(key); ok {
			klog.V(2).InfoS("Using cached region lookup", "latitude", lat, "longitude", lon, "signalType", signalType)
			return data, nil
		}
	}

	maxAttempts := c.apiConfig.MaxRetries
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	refreshed := false
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled: %w", err)
		}

		data, err := c.lookupOnce(ctx, lat, lon, signalType, attempt)
		if errors.Is(err, ErrUnauthorized) && !refreshed {
			refreshed = true
			metrics.TokenRefreshesTotal.WithLabelValues("unauthorized").Inc()
			klog.InfoS("WattTime returned 401, refreshing token", "latitude", lat, "longitude", lon)
			c.invalidateToken()
			data, err = c.lookupOnce(ctx, lat, lon, signalType, attempt)
		}
		if err == nil {
			if c.cache != nil {
				c.cache.Set(key, data)
			}
			return data, nil
		}
		if errors.Is(err, ErrUnauthorized) {
			return nil, err
		}

		lastErr = err
		if attempt == maxAttempts {
			break
		}

		backoff := c.apiConfig.RetryDelay * time.Duration(attempt)
		metrics.LookupRetriesTotal.Inc()
		klog.V(2).InfoS("Region lookup failed, retrying",
			"attempt", attempt,
			"maxRetries", maxAttempts,
			"backoff", backoff,
			"error", err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during backoff: %w", ctx.Err())
		case <-c.clock.After(backoff):
		}
	}
	return nil, fmt.Errorf("all %d attempts failed: %w", maxAttempts, lastErr)
}

func (c *Client) lookupOnce(ctx context.Context, lat, lon float64, signalType string, attempt int) (RawResult, error) {
	token, err := c.currentToken(ctx)
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(c.apiConfig.RegionURL)
	if err != nil {
		return nil, fmt.Errorf("invalid region URL: %w", err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("signal_type", signalType)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	body, err := c.do(ctx, req, audit.CallRecord{
		Endpoint:   EndpointRegionFromLoc,
		Latitude:   &lat,
		Longitude:  &lon,
		SignalType: signalType,
		Attempt:    attempt,
	})
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var data RawResult
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return data, nil
}

// do executes req, records metrics and an audit entry, and returns the body
// of a 2xx response.
func (c *Client) do(ctx context.Context, req *http.Request, rec audit.CallRecord) ([]byte, error) {
	start := c.clock.Now()
	rec.RunID = c.runID
	rec.Method = req.Method
	rec.RequestURL = req.URL.String()
	rec.Timestamp = start

	body, status, err := c.execute(req)

	rec.StatusCode = status
	rec.Success = err == nil
	rec.Duration = c.clock.Since(start)
	rec.Response = string(body)
	if err != nil {
		rec.Error = err.Error()
	}

	metrics.APIRequestsTotal.WithLabelValues(rec.Endpoint, metrics.StatusCode(status)).Inc()
	metrics.APIRequestDuration.WithLabelValues(rec.Endpoint).Observe(rec.Duration.Seconds())
	if auditErr := c.auditor.Record(ctx, rec); auditErr != nil {
		klog.ErrorS(auditErr, "Failed to record WattTime call", "endpoint", rec.Endpoint)
	}

	return body, err
}

func (c *Client) execute(req *http.Request) ([]byte, int, error) {
	klog.V(3).InfoS("Making WattTime API request", "url", req.URL.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, resp.StatusCode, nil
}

// GetURL returns the region lookup URL
func (c *Client) GetURL() string {
	return c.apiConfig.RegionURL
}
