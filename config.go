package utl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogFormat selects the log output encoding.
type LogFormat string

const (
	// LogFormatText writes key=value lines.
	LogFormatText LogFormat = "text"
	// LogFormatJSON writes one JSON object per line.
	LogFormatJSON LogFormat = "json"
)

// Environment variables consulted by LogConfigFromEnv.
const (
	EnvLogLevel  = "UTL_LOG_LEVEL"
	EnvLogFormat = "UTL_LOG_FORMAT"
)

// LogConfig configures NewLoggerFromConfig.
type LogConfig struct {
	Level  string
	Format LogFormat
}

// DefaultLogConfig returns info-level text logging.
func DefaultLogConfig() LogConfig {
	return LogConfig{Level: "info", Format: LogFormatText}
}

// LogConfigFromEnv returns the default config overridden by UTL_LOG_LEVEL
// and UTL_LOG_FORMAT when set.
func LogConfigFromEnv() LogConfig {
	cfg := DefaultLogConfig()
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Format = LogFormat(v)
	}
	return cfg
}

// ParseLevel parses debug, info, warn or error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, &ErrInvalidLogConfig{Field: "level", Value: s, cause: err}
	}
	return level, nil
}

// NewLoggerFromConfig builds a Logger writing to w.
func NewLoggerFromConfig(w io.Writer, cfg LogConfig) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	switch LogFormat(strings.ToLower(string(cfg.Format))) {
	case LogFormatText, "":
		return NewTextLogger(w, level), nil
	case LogFormatJSON:
		return NewJSONLogger(w, level), nil
	default:
		return nil, &ErrInvalidLogConfig{Field: "format", Value: string(cfg.Format)}
	}
}

// ErrInvalidLogConfig indicates an unusable logging setting.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidLogConfig struct {
	Field string
	Value string
	cause error
}

func (e *ErrInvalidLogConfig) Error() string {
	return fmt.Sprintf("invalid log %s: %q", e.Field, e.Value)
}

func (e *ErrInvalidLogConfig) Unwrap() error { return e.cause }
