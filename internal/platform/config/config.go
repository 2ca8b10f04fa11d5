// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the flow, the OTP store and the server via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/langgate/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for langgate.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Key-Value store for OTP challenges. Empty keeps challenges in memory.
	RedisURL string `env:"REDIS_URL"`

	// CatalogPath points at a YAML language catalog. Empty uses the embedded one.
	CatalogPath string `env:"CATALOG_PATH"`

	// OTP issuing
	OTPCode string        `env:"OTP_CODE" envDefault:"1234"`
	OTPTTL  time.Duration `env:"OTP_TTL"  envDefault:"0s"`

	// Autopilot fills in and submits the issued code on its own.
	Autopilot bool `env:"LANGGATE_AUTOPILOT" envDefault:"true"`

	// Flow timing
	SendDelay       time.Duration `env:"DELAY_SEND"       envDefault:"2s"`
	AutoFillDelay   time.Duration `env:"DELAY_AUTOFILL"   envDefault:"1500ms"`
	AutoSubmitDelay time.Duration `env:"DELAY_AUTOSUBMIT" envDefault:"1s"`
	BannerTTL       time.Duration `env:"BANNER_TTL"       envDefault:"3s"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.OTPCode) == "" {
		return fmt.Errorf("config: OTP_CODE must not be empty")
	}
	for name, d := range map[string]time.Duration{
		"DELAY_SEND":       c.SendDelay,
		"DELAY_AUTOFILL":   c.AutoFillDelay,
		"DELAY_AUTOSUBMIT": c.AutoSubmitDelay,
		"BANNER_TTL":       c.BannerTTL,
		"OTP_TTL":          c.OTPTTL,
	} {
		if d < 0 {
			return fmt.Errorf("config: %s must not be negative", name)
		}
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RandomOTP reports whether every challenge gets a fresh random code.
func (c *Config) RandomOTP() bool {
	return strings.EqualFold(strings.TrimSpace(c.OTPCode), constants.OTPCodeRandom)
}

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS as a trimmed list.
func (c *Config) AllowedOrigins() []string {
	if c == nil || c.ExtraOrigins == "" {
		return nil
	}
	parts := strings.Split(c.ExtraOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
