// Package config loads and validates tool configuration from defaults, an
// optional YAML config file, and environment variables (highest priority).
// A .env file in the working directory is folded into the environment first.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the flightdb tool.
// Values are populated by Load; every field has a working default, so an
// empty environment and no config file is a valid setup.
type Config struct {
	// Output is the path the accepted-flights JSON database is written to.
	// Defaults to "db.json".
	Output string `yaml:"output"`

	// Errors is the path the error log is written to when a parse rejects
	// at least one row. Defaults to "errors.txt".
	Errors string `yaml:"errors"`

	// ResponsePrefix is the filename prefix for query response files.
	// A run writes results to "<prefix>_<YYYYMMDD_HHMM>.json".
	// Defaults to "response".
	ResponsePrefix string `yaml:"response_prefix"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Delimiter is the single character separating cells in input files.
	// Defaults to ",".
	Delimiter string `yaml:"delimiter"`

	// CommentPrefix is the single character that marks a row as a comment.
	// Defaults to "#".
	CommentPrefix string `yaml:"comment_prefix"`
}

// Load builds the configuration: defaults, then the YAML file at path (when
// given), then FLIGHTDB_* environment variables. A .env file is loaded into
// the environment first when present, without overriding variables already
// set. Returns an error for an unreadable config file or an invalid value.
func Load(path string) (Config, error) {
	// Absence of .env is not an error.
	_ = godotenv.Load()

	cfg := Config{
		Output:         "db.json",
		Errors:         "errors.txt",
		ResponsePrefix: "response",
		LogLevel:       "info",
		Delimiter:      ",",
		CommentPrefix:  "#",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config.Load: parse %s: %w", path, err)
		}
	}

	cfg.Output = getEnv("FLIGHTDB_OUTPUT", cfg.Output)
	cfg.Errors = getEnv("FLIGHTDB_ERRORS", cfg.Errors)
	cfg.ResponsePrefix = getEnv("FLIGHTDB_RESPONSE_PREFIX", cfg.ResponsePrefix)
	cfg.LogLevel = getEnv("FLIGHTDB_LOG_LEVEL", cfg.LogLevel)
	cfg.Delimiter = getEnv("FLIGHTDB_DELIMITER", cfg.Delimiter)
	cfg.CommentPrefix = getEnv("FLIGHTDB_COMMENT_PREFIX", cfg.CommentPrefix)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects values the rest of the tool cannot work with.
func (c Config) validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config.Load: invalid log level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("config.Load: delimiter must be a single character, got %q", c.Delimiter)
	}
	if utf8.RuneCountInString(c.CommentPrefix) != 1 {
		return fmt.Errorf("config.Load: comment prefix must be a single character, got %q", c.CommentPrefix)
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
