package rynko

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is the production Rynko API endpoint.
const DefaultBaseURL = "https://api.rynko.dev/api/v1"

// Defaults applied by NewClient for zero-valued Config fields.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxRetries   = 5
	DefaultInitialDelay = 1 * time.Second
	DefaultMaxDelay     = 30 * time.Second
	DefaultMaxJitter    = 1 * time.Second
)

// DefaultRetryableStatuses are the HTTP status codes that trigger an
// automatic retry with backoff.
var DefaultRetryableStatuses = []int{
	http.StatusTooManyRequests,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// Config holds configuration for a Rynko client. The zero value of every
// field except APIKey is usable; NewClient fills in defaults. A Config is
// copied at construction time and never mutated afterwards, so a client is
// safe for concurrent use.
type Config struct {
	// APIKey authenticates every request. Required.
	APIKey string

	// BaseURL is the API endpoint (default: DefaultBaseURL).
	BaseURL string

	// Timeout is the per-request HTTP timeout applied to each individual
	// round trip, including each attempt of a retried call (default: 30s).
	Timeout time.Duration

	// MaxRetries is the total number of attempts, not the number of
	// retries after the first attempt (default: 5).
	MaxRetries int

	// InitialDelay seeds the exponential backoff schedule (default: 1s).
	InitialDelay time.Duration

	// MaxDelay caps any computed backoff delay (default: 30s).
	MaxDelay time.Duration

	// MaxJitter bounds the random jitter added to each delay (default: 1s).
	MaxJitter time.Duration

	// RetryableStatuses are the HTTP status codes that trigger a retry
	// (default: 429, 503, 504).
	RetryableStatuses []int

	// DisableRetry turns the request executor into a single-attempt
	// client. Retry is enabled by default.
	DisableRetry bool

	// Logger is used for debug logging (default: a no-op logger).
	Logger hclog.Logger

	// HTTPClient overrides the underlying *http.Client. Mainly useful
	// for tests and custom transports.
	HTTPClient *http.Client
}

// Validate checks that the configuration is usable before any network
// activity happens.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required.Error("API key is required")),
		validation.Field(&c.BaseURL, validation.By(validBaseURL)),
		validation.Field(&c.MaxRetries, validation.Min(0)),
	)
}

func validBaseURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("must be a valid URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute URL")
	}
	return nil
}

// withDefaults returns a copy of the config with zero-valued fields
// replaced by defaults.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.InitialDelay == 0 {
		c.InitialDelay = DefaultInitialDelay
	}
	if c.MaxDelay == 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	if c.MaxJitter == 0 {
		c.MaxJitter = DefaultMaxJitter
	}
	if c.RetryableStatuses == nil {
		c.RetryableStatuses = DefaultRetryableStatuses
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
	return c
}
