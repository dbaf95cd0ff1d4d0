package httpclient

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultBaseURL is the local development endpoint used when no base URL
// is configured.
const DefaultBaseURL = "http://localhost:8000/api"

// Config configures the marketplace HTTP client.
type Config struct {
	// BaseURL is the API root prepended to all request paths.
	// Defaults to DefaultBaseURL.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each outbound call. Zero disables the client-side
	// timeout; cancellation is then governed by the request context.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	// Per-request headers override them on conflict.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// RequestID enables a generated X-Request-ID header on each request
	// that does not already carry one.
	RequestID bool `yaml:"request_id" mapstructure:"request_id"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("httpclient: invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("httpclient: base URL must be http or https (got: %s)", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("httpclient: timeout must not be negative")
	}
	return nil
}
