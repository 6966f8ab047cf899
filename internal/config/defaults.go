package config

const (
	defaultBaseURL           = "http://localhost:8000"
	defaultAPITimeoutSeconds = 120
	defaultStateDir          = "~/.local/share/reels"
	defaultDownloadDir       = "~/.local/share/reels/exports"
	defaultLogDir            = "~/.local/share/reels/logs"
	defaultOutputFormat      = "table"
	defaultLogLevel          = "info"
	defaultLogFormat         = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultAPITimeoutSeconds,
		},
		Paths: Paths{
			StateDir:    defaultStateDir,
			DownloadDir: defaultDownloadDir,
			LogDir:      defaultLogDir,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  true,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
