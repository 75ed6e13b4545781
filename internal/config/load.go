package config

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load reads configuration from the environment, once per process.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig loads and validates the configuration.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants that would otherwise surface
// as per-request failures.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return errors.New("missing GOOGLE_API_KEY")
	}
	if c.Gemini.Model == "" {
		return errors.New("missing GEMINI_MODEL")
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		return errors.New("GEMINI_TIMEOUT_SECONDS must be positive")
	}
	if c.Image.MaxBytes <= 0 {
		return errors.New("IMAGE_MAX_BYTES must be positive")
	}
	return nil
}

// LogEnvStatus logs the effective configuration with secrets masked.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"gemini_keys", len(cfg.Gemini.APIKeys),
		"primary_key", maskSecret(cfg.Gemini.PrimaryKey()),
		"model", cfg.Gemini.Model,
		"timeout", cfg.Gemini.TimeoutSeconds,
		"image_max_bytes", cfg.Image.MaxBytes,
		"image_max_frames", cfg.Image.MaxFrames,
	)

	if len(cfg.Gemini.APIKeys) == 0 {
		logger.Error("env_missing_google_api_key")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKeys:        parseAPIKeys(),
			Model:          getEnvString("GEMINI_MODEL", "gemini-2.0-flash"),
			Temperature:    getEnvFloat("GEMINI_TEMPERATURE", 0.2),
			TimeoutSeconds: getEnvInt("GEMINI_TIMEOUT_SECONDS", 60),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "0.0.0.0"),
			Port:         getEnvInt("HTTP_PORT", 8080),
			HTTP2Enabled: getEnvBool("HTTP_HTTP2_ENABLED", false),
		},
		HTTPAuth: HTTPAuthConfig{
			APIKey: getEnvString("HTTP_AUTH_API_KEY", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnvString("CORS_ALLOWED_ORIGINS", "")),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 50),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 14),
			Compress:   getEnvBool("LOG_COMPRESS", true),
		},
		Image: ImageConfig{
			MaxBytes:  getEnvInt("IMAGE_MAX_BYTES", 8*1024*1024),
			MaxFrames: getEnvInt("IMAGE_MAX_FRAMES", 10),
		},
	}
}
