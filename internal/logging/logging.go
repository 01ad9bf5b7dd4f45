// Package logging builds the logr.Logger shared by every component. The
// backend is zap; stdout stays reserved for command output so loggers are
// normally pointed at stderr.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatJSON    = "json"
	FormatConsole = "console"

	// DebugVerbosity is the logr V-level that maps to zap's debug level.
	DebugVerbosity = 1

	SeverityKey      = "severity"
	SeverityCritical = "critical"
)

type Options struct {
	Level  string
	Format string
}

// New returns a logger writing to w. Empty options select info level and
// JSON output.
func New(opts Options, w io.Writer) (logr.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return logr.Discard(), err
	}
	encoder, err := newEncoder(opts.Format)
	if err != nil {
		return logr.Discard(), err
	}
	if w == nil {
		w = io.Discard
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)
	return zapr.NewLogger(zap.New(core)), nil
}

// ParseLevel accepts debug, info, warn (or warning) and error.
func ParseLevel(value string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", LevelInfo:
		return zapcore.InfoLevel, nil
	case LevelDebug:
		return zapcore.DebugLevel, nil
	case LevelWarn, "warning":
		return zapcore.WarnLevel, nil
	case LevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unsupported log level %q", value)
	}
}

func ValidFormat(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", FormatJSON, FormatConsole:
		return true
	default:
		return false
	}
}

// Critical logs err at error level tagged severity=critical.
func Critical(logger logr.Logger, err error, msg string, keysAndValues ...any) {
	kv := make([]any, 0, len(keysAndValues)+2)
	kv = append(kv, SeverityKey, SeverityCritical)
	kv = append(kv, keysAndValues...)
	logger.Error(err, msg, kv...)
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	case FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}
