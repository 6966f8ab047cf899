package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/btccrack27/ai-reels/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.DownloadDir = filepath.Join(base, "downloads")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Output.Color = false

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithBaseURL points the test config at the given API server.
func WithBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.API.BaseURL = url
	}
}

// WithOutputFormat overrides the rendering format on the test config.
func WithOutputFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Format = format
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
