// Package logging builds the zap loggers used by the demo hosts.
package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Option func(*zap.Config)

// WithLevel sets the minimum level. Unknown names fall back to info.
func WithLevel(level string) Option {
	return func(cfg *zap.Config) {
		cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	}
}

// WithDevelopment switches to the human-readable console encoder.
func WithDevelopment(dev bool) Option {
	return func(cfg *zap.Config) {
		if !dev {
			return
		}
		level := cfg.Level
		*cfg = zap.NewDevelopmentConfig()
		cfg.Level = level
	}
}

// WithOutput replaces stdout/stderr, which the terminal host needs to keep clean.
func WithOutput(paths ...string) Option {
	return func(cfg *zap.Config) {
		if len(paths) == 0 {
			return
		}
		cfg.OutputPaths = paths
		cfg.ErrorOutputPaths = paths
	}
}

// WithFields attaches fields to every entry.
func WithFields(fields map[string]interface{}) Option {
	return func(cfg *zap.Config) {
		if cfg.InitialFields == nil {
			cfg.InitialFields = map[string]interface{}{}
		}
		for k, v := range fields {
			if k == "" {
				continue
			}
			cfg.InitialFields[k] = v
		}
	}
}

// New builds a production logger adjusted by opts.
func New(opts ...Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Build()
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
