// Package config loads CLI configuration. The SDK itself takes its API
// key as an explicit construction parameter; reading config files and
// environment variables is the CLI's job.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/rynko-dev/rynko-go/pkg/rynko"
)

// Environment variables recognized as fallbacks for unset fields.
const (
	EnvAPIKey  = "RYNKO_API_KEY"
	EnvBaseURL = "RYNKO_BASE_URL"
)

// Config is the CLI configuration file shape (HCL):
//
//	api_key    = "rk_live_..."
//	base_url   = "https://api.rynko.dev/api/v1"
//	timeout_ms = 30000
type Config struct {
	APIKey    string `hcl:"api_key,optional"`
	BaseURL   string `hcl:"base_url,optional"`
	TimeoutMs int    `hcl:"timeout_ms,optional"`
}

// Resolve builds the effective configuration: the HCL file at path (when
// given), then environment variables for any fields still unset.
func Resolve(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKey)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv(EnvBaseURL)
	}
	return &cfg, nil
}

// Client constructs an SDK client from the resolved configuration.
func (c *Config) Client(logger hclog.Logger) (*rynko.Client, error) {
	return rynko.NewClient(rynko.Config{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
		Timeout: time.Duration(c.TimeoutMs) * time.Millisecond,
		Logger:  logger,
	})
}
