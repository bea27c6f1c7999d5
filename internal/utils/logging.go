// internal/utils/logging.go
package utils

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFileMode = 0644
)

var Logger *zap.Logger

// LogOptions controls where and how verbosely the service logs.
type LogOptions struct {
	// Level is a zap level name ("debug", "info", ...). Empty means info.
	Level string
	// File, when set, receives a JSON copy of every entry.
	File string
	// Console is the human-readable sink. Defaults to stdout.
	Console io.Writer
}

// Init configures zap with a console core and, optionally, a JSON file core.
// This should be called once at application startup.
func Init(opts LogOptions) error {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level, levelErr := ParseLevel(opts.Level)

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(console), level),
	}

	if opts.File != "" {
		logFile, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, LogFileMode)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", opts.File, err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logFile), level))
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	if levelErr != nil {
		Logger.Warn("unknown log level, defaulting to info", zap.String(FieldLogLevel, opts.Level))
	}
	Logger.Info("logging initialized", zap.String(FieldLogLevel, level.String()))

	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names fall back to
// info and return the parse error so the caller can report it.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel, err
	}
	return level, nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

// WithComponent returns a logger pre-bound with a `component` field so callers
// don't have to repeat the same field across messages in a component.
// A nil global logger yields a no-op logger.
func WithComponent(component string) *zap.Logger {
	if Logger == nil {
		return zap.NewNop()
	}
	return Logger.With(zap.String(FieldComponent, component))
}
