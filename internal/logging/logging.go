// Package logging builds the structured logger used by the TUI.
// The terminal belongs to the UI, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/td0m/tasklist/internal/config"
)

// Prefix is prepended to every log line.
const Prefix = "tasklist"

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(format) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// NewWithWriter creates a logger writing to w with the level and format of cfg.
func NewWithWriter(w io.Writer, cfg config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(cfg.LogLevel),
		Formatter:       ParseFormatter(cfg.LogFormat),
		ReportTimestamp: true,
		Prefix:          Prefix,
	})
}

// New creates a logger from cfg. With no log file set the logger discards
// everything. The returned closer must be closed when the program exits.
func New(cfg config.Config) (*log.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return NewWithWriter(io.Discard, cfg), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, cfg), f, nil
}
