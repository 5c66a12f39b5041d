package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trivia-cli/internal/config"
)

// New builds the application logger. The TUI owns stdout/stderr, so logs go
// to the configured file; without a path the logger is a no-op.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.Log.Path == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if cfg.Log.Level != "" {
		if parsed, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
			level = parsed
		}
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{cfg.Log.Path}
	zcfg.ErrorOutputPaths = []string{cfg.Log.Path}
	return zcfg.Build()
}
