// Package log provides structured logging for canopy tools.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error")
// to a Level. The empty string parses as InfoLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Fields is a map of field names to values.
type Fields map[string]interface{}

// Format selects the output encoding.
type Format int

// Output formats
const (
	TextFormat Format = iota
	JSONFormat
)

// ParseFormat converts a format name ("text", "json") to a Format.
// The empty string parses as TextFormat.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	default:
		return TextFormat, fmt.Errorf("unknown log format %q", s)
	}
}

// Logger is the logging interface canopy components depend on.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, fields ...interface{})

	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithComponent(component string) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// LoggerOption configures a logger under construction.
type LoggerOption func(*options)

type options struct {
	level  Level
	format Format
	out    io.Writer
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(o *options) { o.level = level }
}

// WithFormat sets the output encoding.
func WithFormat(format Format) LoggerOption {
	return func(o *options) { o.format = format }
}

// WithOutput sets the output writer. Defaults to stderr.
func WithOutput(w io.Writer) LoggerOption {
	return func(o *options) { o.out = w }
}

// BaseLogger implements Logger on top of log/slog.
type BaseLogger struct {
	level *slog.LevelVar
	sl    *slog.Logger
}

// NewLogger creates a new logger with the given options.
func NewLogger(opts ...LoggerOption) Logger {
	o := options{level: InfoLevel, format: TextFormat, out: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	lv := &slog.LevelVar{}
	lv.Set(toSlogLevel(o.level))
	hopts := &slog.HandlerOptions{Level: lv}

	var h slog.Handler
	switch o.format {
	case JSONFormat:
		h = slog.NewJSONHandler(o.out, hopts)
	default:
		h = slog.NewTextHandler(o.out, hopts)
	}
	return &BaseLogger{level: lv, sl: slog.New(h)}
}

// Debug logs at debug level with optional key-value pairs.
func (l *BaseLogger) Debug(msg string, fields ...interface{}) { l.sl.Debug(msg, fields...) }

// Info logs at info level with optional key-value pairs.
func (l *BaseLogger) Info(msg string, fields ...interface{}) { l.sl.Info(msg, fields...) }

// Warn logs at warn level with optional key-value pairs.
func (l *BaseLogger) Warn(msg string, fields ...interface{}) { l.sl.Warn(msg, fields...) }

// Error logs at error level with optional key-value pairs.
func (l *BaseLogger) Error(msg string, fields ...interface{}) { l.sl.Error(msg, fields...) }

// WithField returns a logger with an extra field attached to every entry.
func (l *BaseLogger) WithField(key string, value interface{}) Logger {
	return &BaseLogger{level: l.level, sl: l.sl.With(key, value)}
}

// WithFields returns a logger with extra fields attached to every entry.
func (l *BaseLogger) WithFields(fields Fields) Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &BaseLogger{level: l.level, sl: l.sl.With(args...)}
}

// WithError returns a logger with the error attached as a field.
func (l *BaseLogger) WithError(err error) Logger {
	return l.WithField("error", err)
}

// WithComponent tags entries with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return l.WithField("component", component)
}

// SetLevel sets the minimum log level.
func (l *BaseLogger) SetLevel(level Level) { l.level.Set(toSlogLevel(level)) }

// GetLevel returns the current minimum log level.
func (l *BaseLogger) GetLevel() Level { return fromSlogLevel(l.level.Level()) }

func toSlogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fromSlogLevel(level slog.Level) Level {
	switch {
	case level <= slog.LevelDebug:
		return DebugLevel
	case level < slog.LevelWarn:
		return InfoLevel
	case level < slog.LevelError:
		return WarnLevel
	default:
		return ErrorLevel
	}
}
