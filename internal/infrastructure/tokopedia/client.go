package tokopedia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tokoclient/backend/internal/domain"
	"github.com/tokoclient/backend/internal/jsonutil"
)

const (
	// DefaultEndpoint is the provider's public GraphQL gateway
	DefaultEndpoint = "https://gql.tokopedia.com/graphql/PDPGetLayoutQuery"

	// DefaultUserAgent is sent when no user agent is configured
	DefaultUserAgent = "PostmanRuntime/7.32.3"

	// DefaultTimeout bounds a single upstream call
	DefaultTimeout = 5 * time.Second
)

// ClientConfig holds settings for the provider client
type ClientConfig struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
	// RateLimit is the maximum number of upstream calls per second; 0 disables limiting
	RateLimit float64
	Burst     int
}

// Client handles communication with the provider's GraphQL API.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	userAgent   string
	rateLimiter *rate.Limiter
	log         zerolog.Logger
}

// NewClient creates a new provider client
func NewClient(cfg ClientConfig, log zerolog.Logger) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint:    cfg.Endpoint,
		userAgent:   cfg.UserAgent,
		rateLimiter: limiter,
		log:         log.With().Str("component", "tokopedia").Logger(),
	}
}

// Execute posts a single operation as a batched GraphQL call and returns the
// raw response body. Bodies of non-5xx responses are returned as-is so the
// caller can inspect provider error text.
func (c *Client) Execute(ctx context.Context, request domain.GraphQLRequest, headers map[string]string) (string, error) {
	payload, err := jsonutil.Marshal([]domain.GraphQLRequest{request})
	if err != nil {
		return "", fmt.Errorf("failed to encode %s request: %w", request.OperationName, err)
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limiter: %w", domain.ErrUpstreamTransport, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("operation", request.OperationName).Msg("upstream request failed")
		return "", fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %w", domain.ErrUpstreamTransport, err)
	}

	c.log.Debug().
		Str("operation", request.OperationName).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("upstream response")

	if resp.StatusCode >= http.StatusInternalServerError {
		return "", fmt.Errorf("%w: status %d", domain.ErrUpstreamTransport, resp.StatusCode)
	}

	return string(body), nil
}
