// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-ats/internal/ats"
	"github.com/jonathan/resume-ats/internal/fetch"
	"github.com/jonathan/resume-ats/internal/parsing"
)

// Default values applied by Defaults.
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "json"
	DefaultShutdownTimeoutSecs = 15
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from
// environment variables and CLI flags.
type Config struct {
	// Server
	Port                   int      `json:"port,omitempty"`                     // HTTP listen port
	AllowedOrigins         []string `json:"allowed_origins,omitempty"`          // CORS origins; empty allows any
	ShutdownTimeoutSeconds int      `json:"shutdown_timeout_seconds,omitempty"` // Graceful shutdown budget

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or console

	// Parser
	ContactWindow  int `json:"contact_window,omitempty"`   // Leading lines scanned for contact details
	MaxHeaderWords int `json:"max_header_words,omitempty"` // Longest line treated as a section header

	// Match engine
	MaxSuggestions int `json:"max_suggestions,omitempty"` // Suggestions per report
	Concurrency    int `json:"concurrency,omitempty"`     // Parallel job descriptions in batch matching

	// Fetching
	FetchTimeoutSeconds int `json:"fetch_timeout_seconds,omitempty"` // Job posting HTTP timeout

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:                   DefaultPort,
		ShutdownTimeoutSeconds: DefaultShutdownTimeoutSecs,
		LogLevel:               DefaultLogLevel,
		LogFormat:              DefaultLogFormat,
		ContactWindow:          parsing.DefaultContactWindow,
		MaxHeaderWords:         parsing.DefaultMaxHeaderWords,
		MaxSuggestions:         ats.DefaultMaxSuggestions,
		Concurrency:            ats.DefaultConcurrency,
		FetchTimeoutSeconds:    int(fetch.DefaultTimeout / time.Second),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load builds the effective configuration: the optional JSON file at path,
// then environment overrides, then defaults for anything still unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate numeric ranges
	if c.ContactWindow < 0 {
		return fmt.Errorf("config error: 'contact_window' must be non-negative")
	}
	if c.MaxHeaderWords < 0 {
		return fmt.Errorf("config error: 'max_header_words' must be non-negative")
	}
	if c.MaxSuggestions < 0 {
		return fmt.Errorf("config error: 'max_suggestions' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.FetchTimeoutSeconds < 0 || c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("config error: timeouts must be non-negative")
	}

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}
	if c.LogFormat != "" && c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("config error: 'log_format' must be json or console")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ShutdownTimeoutSeconds == 0 {
		result.ShutdownTimeoutSeconds = defaults.ShutdownTimeoutSeconds
	}
	if result.ContactWindow == 0 {
		result.ContactWindow = defaults.ContactWindow
	}
	if result.MaxHeaderWords == 0 {
		result.MaxHeaderWords = defaults.MaxHeaderWords
	}
	if result.MaxSuggestions == 0 {
		result.MaxSuggestions = defaults.MaxSuggestions
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ParserOptions returns the parser settings carried by the configuration.
func (c *Config) ParserOptions() parsing.Options {
	return parsing.Options{
		ContactWindow:  c.ContactWindow,
		MaxHeaderWords: c.MaxHeaderWords,
	}
}

// MatcherOptions returns the match engine settings carried by the configuration.
func (c *Config) MatcherOptions() ats.Options {
	return ats.Options{
		MaxSuggestions: c.MaxSuggestions,
		Concurrency:    c.Concurrency,
	}
}

// FetchOptions returns the job posting fetch settings carried by the configuration.
func (c *Config) FetchOptions() *fetch.Options {
	opts := fetch.DefaultOptions()
	if c.FetchTimeoutSeconds > 0 {
		opts.Timeout = time.Duration(c.FetchTimeoutSeconds) * time.Second
	}
	return opts
}

// ShutdownTimeout returns the graceful shutdown budget.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
