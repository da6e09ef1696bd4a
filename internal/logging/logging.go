// Package logging wraps charmbracelet/log behind the small surface
// the rest of rulekit uses.
//
// Everything goes to stderr (or a configured file): stdout carries
// the MCP stdio transport and must stay clean. RULEKIT_DEBUG=1
// forces debug level regardless of configuration.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Options controls how the logger is built. Zero value means info
// level on stderr.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown or empty
	// falls back to info.
	Level string
	// File, when set, receives log output (append mode) instead of
	// stderr.
	File string
	// Verbose forces debug level, same as RULEKIT_DEBUG=1.
	Verbose bool
}

// AppLogger is the application logger handed to every component that
// reports progress or skipped work.
type AppLogger struct {
	logger *log.Logger
	closer io.Closer
}

// New builds a logger from opts. The caller must Close it on
// shutdown so a configured log file is flushed and released.
func New(opts Options) (*AppLogger, error) {
	level := parseLevel(opts.Level)
	if opts.Verbose || os.Getenv("RULEKIT_DEBUG") != "" {
		level = log.DebugLevel
	}

	out := io.Writer(os.Stderr)
	var closer io.Closer
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "rulekit",
	})
	logger.SetLevel(level)

	return &AppLogger{logger: logger, closer: closer}, nil
}

// parseLevel maps a config string onto a charm log level. Unknown
// input falls back to info rather than failing startup.
func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "info", "":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}

// Debug logs at debug level.
func (l *AppLogger) Debug(msg string, keyvals ...any) {
	l.logger.Debug(msg, keyvals...)
}

// Info logs at info level.
func (l *AppLogger) Info(msg string, keyvals ...any) {
	l.logger.Info(msg, keyvals...)
}

// Warn logs at warn level.
func (l *AppLogger) Warn(msg string, keyvals ...any) {
	l.logger.Warn(msg, keyvals...)
}

// Error logs at error level.
func (l *AppLogger) Error(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
}

// Close releases the log file, if one was configured.
func (l *AppLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// NewTestLogger returns a debug-level logger writing into a buffer,
// for asserting on log output in tests.
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer

	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "test",
	})
	logger.SetLevel(log.DebugLevel)

	return &AppLogger{logger: logger}, &buf
}
