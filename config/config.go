// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"moviehub/logging"
	"moviehub/validation"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config keys. They double as environment variable names.
const (
	KeyDatabasePath     = "DATABASE_PATH"
	KeyPort             = "PORT"
	KeyFrontendURL      = "FRONTEND_URL"
	KeyEnv              = "ENV"
	KeyLogLevel         = "LOG_LEVEL"
	KeyLogFormat        = "LOG_FORMAT"
	KeyLogFile          = "LOG_FILE"
	KeyContactRateLimit = "CONTACT_RATE_LIMIT"
	KeyShutdownTimeout  = "SHUTDOWN_TIMEOUT"
)

// Config holds all runtime settings. It is read once at startup.
type Config struct {
	DatabasePath     string        `mapstructure:"DATABASE_PATH" validate:"required"`
	Port             int           `mapstructure:"PORT" validate:"min=1,max=65535"`
	FrontendURL      string        `mapstructure:"FRONTEND_URL"`
	Env              string        `mapstructure:"ENV"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	LogFormat        string        `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	LogFile          string        `mapstructure:"LOG_FILE"`
	ContactRateLimit int           `mapstructure:"CONTACT_RATE_LIMIT" validate:"min=0"`
	ShutdownTimeout  time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"min=0"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// New returns a viper instance with defaults set and the environment bound.
// Command line flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDatabasePath, "data/movies.db")
	v.SetDefault(KeyPort, 5000)
	v.SetDefault(KeyFrontendURL, "http://localhost:5173")
	v.SetDefault(KeyEnv, "development")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyContactRateLimit, 5)
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads environment variables from .env style files, the local
// .env when none are given. A missing file is only a warning.
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Warn().Msg("No .env file found, using environment")
			return
		}
		logging.Warn().Err(err).Msg("Could not load .env file")
	}
}

// Load decodes and checks the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := validation.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	// Production logs are always machine readable.
	if cfg.IsProduction() {
		cfg.LogFormat = "json"
	}
	return &cfg, nil
}
