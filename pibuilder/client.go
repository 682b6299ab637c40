// Package pibuilder is the Go client for the Pi Builder resource
// management API. A Client exposes the agents, tasks, providers, metrics
// and health endpoints as typed methods; every call runs through one
// execution engine that owns URL construction, bearer authentication,
// response envelope unwrapping and a bounded retry loop with exponential
// backoff. Calls block until they succeed or the retry budget is spent.
package pibuilder

import (
	"time"

	"github.com/pi-builder/sdk-go/internal/config"
	"github.com/pi-builder/sdk-go/internal/transport"
)

// Client is a Pi Builder API client. Its configuration is fixed at
// construction time and a single instance may be shared freely.
type Client struct {
	config *config.Config
	engine *transport.Engine
}

// Option adjusts the session configuration at construction time.
type Option func(*config.Config)

// WithAPIKey enables bearer authentication with the given key. Without it
// requests carry no Authorization header.
func WithAPIKey(apiKey string) Option {
	return func(c *config.Config) {
		c.APIKey = apiKey
	}
}

// WithTimeout overrides the default 30 second per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config.Config) {
		c.Timeout = timeout
	}
}

// WithRetries overrides the default budget of 3 attempts per call.
func WithRetries(retries int) Option {
	return func(c *config.Config) {
		c.Retries = retries
	}
}

// WithLogLevel sets how chatty the client is, using logrus level names.
// The default is "warning", which reports retries and nothing else; "debug"
// traces every attempt.
func WithLogLevel(level string) Option {
	return func(c *config.Config) {
		c.LogLevel = level
	}
}

// New builds a client for the API at apiURL. Trailing slashes on the URL
// are tolerated and stripped.
func New(apiURL string, opts ...Option) (*Client, error) {
	cfg := config.New(apiURL)

	for _, opt := range opts {
		opt(cfg)
	}

	return newClient(cfg)
}

// NewFromEnvironment builds a client from the PIBUILDER_API_URL,
// PIBUILDER_API_KEY, PIBUILDER_TIMEOUT and PIBUILDER_RETRIES environment
// variables, honoring a local .env file and an optional config.yaml (in the
// working directory, under ~/.config/pibuilder, or named by
// PIBUILDER_CONFIG; environment variables win over the file). Options are
// applied on top of all of it.
func NewFromEnvironment(opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return newClient(cfg)
}

func newClient(cfg *config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: cfg,
		engine: transport.New(cfg),
	}, nil
}
