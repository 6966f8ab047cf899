package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url is required. Set %s or edit the config file (create with 'reels config init')", EnvBaseURL)
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return errors.New("api.base_url is missing a host")
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("api.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q", c.Output.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
