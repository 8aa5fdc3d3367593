// Package config loads tasklist settings from defaults, a TOML file,
// the environment and command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Default values.
const (
	DefaultConfigFile = "tasklist.toml"
	DefaultTimeFormat = "1/2/2006, 3:04:05 PM"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds the settings of the tasklist TUI.
type Config struct {
	// TimeFormat is the layout used to print start and update dates
	TimeFormat string `toml:"time_format"`

	// Logging. An empty LogFile discards all log output.
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	LogFormat string `toml:"log_format"` // text, json, logfmt
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TimeFormat: DefaultTimeFormat,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// Load builds the configuration. Later sources win:
// defaults, the TOML file, .env and the environment, then flags.
func Load(fset *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()

	path := fset.String("config", DefaultConfigFile, "Path to config file")
	logFile := fset.String("log", "", "Path to log file")
	logLevel := fset.String("log-level", "", "Log level (debug, info, warn, error)")
	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	if err := loadFile(&cfg, *path); err != nil {
		return cfg, err
	}
	if err := loadDotEnv(".env"); err != nil {
		return cfg, err
	}
	loadFromEnv(&cfg)

	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	return cfg, cfg.Validate()
}

// loadFile decodes the TOML file at path into cfg. A missing file is not an error.
func loadFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	_, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// loadDotEnv exports the variables of a .env file that are not already set.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLIST_TIME_FORMAT"); v != "" {
		cfg.TimeFormat = v
	}
	if v := os.Getenv("TASKLIST_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TASKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TimeFormat) == "" {
		return errors.New("time_format is empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	return nil
}
