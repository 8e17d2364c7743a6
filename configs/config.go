// Package configs loads the process configuration from environment variables
// (prefix "GONG_") with an optional YAML file underneath. Environment
// variables always win over file values.
package configs

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileConfig is the subset of settings loadable from the YAML file.
type FileConfig struct {
	BaseURL  string `yaml:"base_url,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Config is the final merged application configuration.
type Config struct {
	// ConfigFilePath points at an optional YAML file (GONG_CONFIG_FILE).
	ConfigFilePath string `envconfig:"CONFIG_FILE"`

	// The static Gong credential pair. Required; the process refuses to
	// start without them.
	AccessKey       string `envconfig:"ACCESS_KEY"`
	AccessKeySecret string `envconfig:"ACCESS_KEY_SECRET"`

	BaseURL           string        `envconfig:"BASE_URL" default:"https://api.gong.io/v2"`
	ListenAddr        string        `envconfig:"LISTEN_ADDR" default:":8080"`
	HTTPClientTimeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	LogLevel          string        `envconfig:"LOG_LEVEL" default:"info"`

	OtelExporterOtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

// ParsedLogLevel returns the slog.Level for the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// Load reads environment variables (to locate the optional file), overlays
// the YAML file, then processes the environment again so env vars override
// file settings. Missing credentials are a hard error: there is no anonymous
// mode against the Gong API.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("gong", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.ConfigFilePath != "" {
		raw, err := os.ReadFile(cfg.ConfigFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfg.ConfigFilePath, err)
		}
		var fileCfg FileConfig
		if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file %q: %w", cfg.ConfigFilePath, err)
		}
		// Env vars win over file settings; a second envconfig pass would
		// re-apply defaults over the file values, so the override is explicit.
		if fileCfg.BaseURL != "" {
			cfg.BaseURL = fileCfg.BaseURL
		}
		if fileCfg.LogLevel != "" {
			cfg.LogLevel = fileCfg.LogLevel
		}
		if v, ok := os.LookupEnv("GONG_BASE_URL"); ok {
			cfg.BaseURL = v
		}
		if v, ok := os.LookupEnv("GONG_LOG_LEVEL"); ok {
			cfg.LogLevel = v
		}
	}

	if cfg.AccessKey == "" || cfg.AccessKeySecret == "" {
		return nil, errors.New("GONG_ACCESS_KEY and GONG_ACCESS_KEY_SECRET must be set")
	}

	return &cfg, nil
}
