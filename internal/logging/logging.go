// Package logging builds the zap loggers used by the floormap tools.
package logging

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production zap logger at the given level ("debug", "info",
// "warn" or "error"). When json is false the console encoder is used.
func New(level string, json bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	if !json {
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Stage starts timing a named step. Calling the returned function logs the
// step at debug level with its duration and any extra fields.
func Stage(l *zap.Logger, name string) func(fields ...zap.Field) {
	start := time.Now()
	return func(fields ...zap.Field) {
		fields = append(fields, zap.String("stage", name), zap.Duration("elapsed", time.Since(start)))
		l.Debug("stage done", fields...)
	}
}
