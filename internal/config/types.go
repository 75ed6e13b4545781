package config

// GeminiConfig holds upstream model settings.
type GeminiConfig struct {
	APIKeys        []string
	Model          string
	Temperature    float64
	TimeoutSeconds int
}

// PrimaryKey returns the first configured API key.
func (g GeminiConfig) PrimaryKey() string {
	if len(g.APIKeys) == 0 {
		return ""
	}
	return g.APIKeys[0]
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPAuthConfig holds the optional inbound API key.
type HTTPAuthConfig struct {
	APIKey string
}

// CORSConfig holds cross-origin settings. Empty origins means allow any.
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// ImageConfig bounds inbound image payloads.
type ImageConfig struct {
	MaxBytes  int
	MaxFrames int
}

// Config is the full application configuration.
type Config struct {
	Gemini   GeminiConfig
	HTTP     HTTPConfig
	HTTPAuth HTTPAuthConfig
	CORS     CORSConfig
	Logging  LoggingConfig
	Image    ImageConfig
}
