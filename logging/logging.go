// Package logging builds the zap loggers used by every service.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger tagged with the service name.
// format is "json" or "console"; level is any zap level name.
func New(service, level, format string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build(zap.Fields(zap.String("service", service)))
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// MustNew is New for service entry points. It installs the logger as the
// zap global and falls back to a production logger when the configured
// level is invalid.
func MustNew(service, level, format string) *zap.SugaredLogger {
	logger, err := New(service, level, format)
	if err != nil {
		fallback := zap.Must(zap.NewProduction(zap.Fields(zap.String("service", service))))
		fallback.Sugar().Warnf("Falling back to default logger: %v", err)
		logger = fallback.Sugar()
	}
	zap.ReplaceGlobals(logger.Desugar())
	return logger
}
