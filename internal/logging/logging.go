// Package logging provides structured logging using Go's slog package.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

var (
	// defaultLogger is the global logger instance.
	defaultLogger *slog.Logger
)

func init() {
	// Initialize with a default logger (text format, Info level)
	InitLogger(LevelInfo, FormatText)
}

// Level represents a log level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// Format represents a log output format.
type Format int

const (
	// FormatText outputs logs in human-readable text format.
	FormatText Format = iota
	// FormatJSON outputs logs in JSON format.
	FormatJSON
)

// InitLogger initializes the global logger with the specified level and
// format, writing to stderr.
func InitLogger(level Level, format Format) {
	defaultLogger = NewLogger(os.Stderr, level, format)
	slog.SetDefault(defaultLogger)
}

// NewLogger builds a logger writing to w. Batch runs use this to direct
// warnings into a conversion log file.
func NewLogger(w io.Writer, level Level, format Format) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	case LevelInfo:
		slogLevel = slog.LevelInfo
	case LevelWarn:
		slogLevel = slog.LevelWarn
	case LevelError:
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Customize timestamp format
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}

	var handler slog.Handler
	if format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// GetLogger returns the global logger instance.
func GetLogger() *slog.Logger {
	return defaultLogger
}

// Helper functions for common logging patterns

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// SkippedLine logs a malformed annotation line that was excluded from a
// conversion.
func SkippedLine(file, line string, args ...any) {
	allArgs := []any{
		"file", file,
		"line", line,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Warn("skipped_line", allArgs...)
}

// DocumentConverted logs completion of one document conversion.
func DocumentConverted(file, fingerprint string, annotations int, args ...any) {
	allArgs := []any{
		"file", file,
		"fingerprint", fingerprint,
		"annotations", annotations,
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("document_converted", allArgs...)
}

// BatchSummary logs the outcome of a batch run.
func BatchSummary(files, annotations, warnings int, duration time.Duration, args ...any) {
	allArgs := []any{
		"files", files,
		"annotations", annotations,
		"warnings", warnings,
		"duration_ms", duration.Milliseconds(),
	}
	allArgs = append(allArgs, args...)
	defaultLogger.Info("batch_summary", allArgs...)
}
