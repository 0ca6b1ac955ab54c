// Package logging wraps zap behind a small package-level API so the rest
// of the harness never carries a logger handle around.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Config controls the process-wide logger.
type Config struct {
	Level  string // "debug", "info", "warn", or "error"
	Format string // "console" or "json"
}

var logger = zap.NewNop()

// Init builds the process-wide logger from cfg. It may be called again to
// reconfigure; the previous logger is replaced.
func Init(cfg *Config) error {
	zapConfig := zap.NewProductionConfig()

	switch cfg.Level {
	case "debug":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info", "":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return fmt.Errorf("unknown log level: %s", cfg.Level)
	}

	switch cfg.Format {
	case "console", "":
		zapConfig.Development = true
		zapConfig.Encoding = "console"
		zapConfig.EncoderConfig.TimeKey = ""
		zapConfig.EncoderConfig.CallerKey = ""
	case "json":
		zapConfig.Encoding = "json"
	default:
		return fmt.Errorf("unknown log format: %s", cfg.Format)
	}

	built, err := zapConfig.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// Logger returns the current process-wide logger.
func Logger() *zap.Logger {
	return logger
}

// Sync flushes any buffered log entries.
func Sync() error {
	return logger.Sync()
}

// Debug logs a message at debug level.
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs a message at info level.
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs a message at warn level.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs a message at error level.
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Fatal logs a message at fatal level, then exits the process.
func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
