// Package logging wires log/slog with console and JSON handlers for the CLI.
package logging
