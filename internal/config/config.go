// Package config holds the funcsig command configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	EnvConfig   = "FUNCSIG_CONFIG"
	EnvLogLevel = "FUNCSIG_LOG_LEVEL"
	EnvLogFile  = "FUNCSIG_LOG_FILE"
)

// Config is the top-level configuration for the funcsig command.
type Config struct {
	Log     LogOptions     `json:"log"`
	Extract ExtractOptions `json:"extract"`
}

// LogOptions configures the command logger. An empty FilePath logs to stderr
// only.
type LogOptions struct {
	Level      string `json:"level"`
	FilePath   string `json:"file_path,omitempty"`
	MaxSize    int    `json:"max_size"`    // megabytes
	MaxBackups int    `json:"max_backups"` // rotated files kept
	MaxAge     int    `json:"max_age"`     // days
	Compress   bool   `json:"compress"`
}

// ExtractOptions configures source scanning.
type ExtractOptions struct {
	// Extensions selects files when walking a directory.
	Extensions []string `json:"extensions,omitempty"`
	// Workers bounds concurrent file scans. 0 means one per input.
	Workers int `json:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogOptions{
			Level:      "warn",
			MaxSize:    100,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		},
		Extract: ExtractOptions{
			Extensions: []string{".sol"},
			Workers:    8,
		},
	}
}

// Load reads path, or the file named by FUNCSIG_CONFIG when path is empty,
// and applies environment overrides. With neither set the defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFile(path)
		if err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from a specific file. Fields the file leaves
// out keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = Default().Log.Level
	}
	if len(c.Extract.Extensions) == 0 {
		c.Extract.Extensions = Default().Extract.Extensions
	}
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.Log.FilePath = v
	}
}

// Validate rejects settings the command cannot act on.
func (c *Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return err
	}
	if c.Extract.Workers < 0 {
		return fmt.Errorf("extract.workers must be >= 0 (got %d)", c.Extract.Workers)
	}
	for _, ext := range c.Extract.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extract.extensions entry %q must start with '.'", ext)
		}
	}
	return nil
}

// ZapLevel parses Level.
func (o LogOptions) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(o.Level))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q", o.Level)
	}
	return lvl, nil
}
