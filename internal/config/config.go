// Package config loads service configuration from YAML files with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mss-eng/reportpdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Config holds all configuration for the PDF generation service.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Spool  SpoolConfig  `yaml:"spool"`
	CORS   CORSConfig   `yaml:"cors"`
}

// ServerConfig defines the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig defines log level and destinations.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // empty = no file output
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// RenderConfig defines PDF rendering behavior.
type RenderConfig struct {
	Backend        string `yaml:"backend"` // "chrome" or "weasyprint"
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Workers        int    `yaml:"workers"`    // 0 = auto-size from CPU count
	LogoPath       string `yaml:"logo_path"`  // empty = reports render without a logo
	AssetsDir      string `yaml:"assets_dir"` // empty = embedded styles and templates only
}

// SpoolConfig defines where generated PDFs are staged and how long they live.
type SpoolConfig struct {
	Dir               string `yaml:"dir"` // empty = subdirectory of the OS temp dir
	GraceSeconds      int    `yaml:"grace_seconds"`
	SweepEveryMinutes int    `yaml:"sweep_every_minutes"`
	MaxAgeMinutes     int    `yaml:"max_age_minutes"`
}

// CORSConfig defines cross-origin access for browser clients.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Default returns the configuration used when no file or overrides are
// provided. The port matches the service this one replaces.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 5000},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Render: RenderConfig{Backend: "chrome", TimeoutSeconds: 30},
		Spool:  SpoolConfig{GraceSeconds: 5, SweepEveryMinutes: 15, MaxAgeMinutes: 60},
		CORS:   CORSConfig{AllowOrigins: []string{"*"}},
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// when path is non-empty, then environment overrides. A missing file is
// an error only when a path was explicitly given (no silent fallback).
func Load(path string) (*Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- config path comes from the operator
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yamlutil.DecodeStrict(data, c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	envOverride(&c.Server.Host, "HOST")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverride(&c.Render.Backend, "BACKEND")
	envOverride(&c.Render.LogoPath, "LOGO_PATH")
	envOverride(&c.Render.AssetsDir, "ASSETS_DIR")
	envOverrideInt(&c.Render.Workers, "WORKERS")
	envOverride(&c.Spool.Dir, "SPOOL_DIR")

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the effective configuration is usable.
// Called automatically by Load, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Render.Backend {
	case "chrome", "weasyprint":
		// valid
	default:
		return fmt.Errorf("%w: render.backend %q (must be chrome or weasyprint)", ErrInvalidConfig, c.Render.Backend)
	}
	if c.Render.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: render.timeout_seconds must be positive", ErrInvalidConfig)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers must not be negative", ErrInvalidConfig)
	}
	if c.Spool.GraceSeconds < 0 {
		return fmt.Errorf("%w: spool.grace_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Spool.SweepEveryMinutes <= 0 {
		return fmt.Errorf("%w: spool.sweep_every_minutes must be positive", ErrInvalidConfig)
	}
	if c.Spool.MaxAgeMinutes <= 0 {
		return fmt.Errorf("%w: spool.max_age_minutes must be positive", ErrInvalidConfig)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Timeout returns the per-conversion render timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Render.TimeoutSeconds) * time.Second
}

// Grace returns how long a released artifact stays on disk.
func (c *Config) Grace() time.Duration {
	return time.Duration(c.Spool.GraceSeconds) * time.Second
}

// SweepEvery returns the interval between spool sweeps.
func (c *Config) SweepEvery() time.Duration {
	return time.Duration(c.Spool.SweepEveryMinutes) * time.Minute
}

// SweepMaxAge returns the age at which spooled files are swept.
func (c *Config) SweepMaxAge() time.Duration {
	return time.Duration(c.Spool.MaxAgeMinutes) * time.Minute
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
