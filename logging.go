package oak

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogOptions holds configuration for the store's logger
type LogOptions struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultLogOptions returns quiet text logging suited to an interactive terminal
func DefaultLogOptions() LogOptions {
	return LogOptions{
		Level:     log.WarnLevel,
		Formatter: log.TextFormatter,
		Prefix:    "oak",
	}
}

// NewLogger creates a charmbracelet logger writing to w
func NewLogger(w io.Writer, opts LogOptions) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// ParseLogLevel parses a string log level, defaulting to warn
func ParseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseLogFormatter parses a formatter name: text, json or logfmt
func ParseLogFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// discardLogger is used when no logger is configured
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
