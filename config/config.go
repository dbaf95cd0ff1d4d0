package config

import (
	"fmt"
	"time"

	"github.com/loppen/marketplace-go/httpclient"
	"github.com/loppen/marketplace-go/logger"
)

// Config contains the SDK settings an application needs to talk to the
// marketplace API.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	// Timeout bounds each outbound call. Zero disables the client timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// RequestID enables generated X-Request-ID headers.
	RequestID bool `yaml:"request_id" mapstructure:"request_id"`
	// Logging configures the SDK logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = httpclient.DefaultBaseURL
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base_url is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ClientConfig converts the SDK settings into an httpclient.Config.
func (c *Config) ClientConfig() httpclient.Config {
	return httpclient.Config{
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		RequestID: c.RequestID,
	}
}
