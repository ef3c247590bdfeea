// Package config loads benchmark settings from an optional YAML file and
// .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the benchmark configuration
type Config struct {
	Input       string    `yaml:"input"`
	Lines       int       `yaml:"lines"`
	Report      string    `yaml:"report"`
	InitialSize int       `yaml:"initial_size"`
	Seed        uint64    `yaml:"seed"`
	MetricsFile string    `yaml:"metrics_file,omitempty"`
	Log         LogConfig `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Report:      "analysis.txt",
		InitialSize: 101,
		Seed:        1,
		Log: LogConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Load reads configPath over the defaults. An empty path returns the defaults.
// Environment variables in the file are expanded after .env files are loaded.
// The result is not validated; callers apply their overrides first and then
// call Validate.
func Load(configPath string) (*Config, error) {
	if err := LoadEnvFiles(".env", ".env.local"); err != nil {
		return nil, err
	}

	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Log.Level = NormalizeLogLevel(string(cfg.Log.Level))
	cfg.Log.Format = NormalizeLogFormat(string(cfg.Log.Format))
	return cfg, nil
}

// LoadEnvFiles loads every existing file in paths. Variables already set in
// the process environment win.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// Validate checks the values a run depends on.
func (c *Config) Validate() error {
	if c.Lines < 0 {
		return fmt.Errorf("lines must not be negative, got %d", c.Lines)
	}
	if c.InitialSize < 1 {
		return fmt.Errorf("initial_size must be positive, got %d", c.InitialSize)
	}
	if c.Report == "" {
		return errors.New("report path is required")
	}
	return nil
}
