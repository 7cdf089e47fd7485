// Package config loads terminal configuration from the environment, mirroring
// the .env-driven setup of the hosted SmartSales365 clients.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the SmartSales365 backend, without a trailing slash.
	APIBaseURL string `env:"SMARTSALES_API_URL, default=http://localhost:8000"`
	// StateDir holds the persisted session token and cart snapshot.
	// Defaults to ~/.smartsales365.
	StateDir  string `env:"SMARTSALES_STATE_DIR"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=true"`

	Stripe StripeConfig
}

type StripeConfig struct {
	// PublishableKey authorises client-side payment confirmation, exactly
	// like the key embedded in the web checkout.
	PublishableKey string `env:"STRIPE_PUBLISHABLE_KEY"`
	APIURL         string `env:"STRIPE_API_URL, default=https://api.stripe.com"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve state dir: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".smartsales365")
	}
	return &cfg, nil
}
