// Package config loads and validates the TOML configuration for the reels CLI.
package config
