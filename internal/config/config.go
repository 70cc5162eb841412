// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sh3r4rd/flow_uploads/internal/logging"
)

// Environment variable names.
const (
	EnvFlowURL   = "FLOW_URL"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// Config holds the function's settings.
type Config struct {
	// FlowURL is the webhook that receives validated uploads.
	// Empty disables forwarding.
	FlowURL string

	// LogLevel is a logrus level name. Default: "info".
	LogLevel string

	// LogFormat is "json" or "text". Default: "json".
	LogFormat string
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		FlowURL:   get(EnvFlowURL, ""),
		LogLevel:  get(EnvLogLevel, logrus.InfoLevel.String()),
		LogFormat: strings.ToLower(get(EnvLogFormat, logging.FormatJSON)),
	}
	return cfg, cfg.Validate()
}

// Lenient returns c with an invalid log level or format replaced by its
// default. FlowURL is kept as given, so a bad value fails, and is logged, at
// forward time instead of preventing startup.
func (c Config) Lenient() Config {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = logrus.InfoLevel.String()
	}
	switch c.LogFormat {
	case logging.FormatJSON, logging.FormatText:
	default:
		c.LogFormat = logging.FormatJSON
	}
	return c
}

// Validate checks the settings that can be wrong.
func (c Config) Validate() error {
	if c.FlowURL != "" {
		u, err := url.Parse(c.FlowURL)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvFlowURL, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config: %s must be an absolute http(s) URL, got %q", EnvFlowURL, c.FlowURL)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}
	switch c.LogFormat {
	case logging.FormatJSON, logging.FormatText:
	default:
		return fmt.Errorf("config: %s must be %q or %q, got %q", EnvLogFormat, logging.FormatJSON, logging.FormatText, c.LogFormat)
	}
	return nil
}
