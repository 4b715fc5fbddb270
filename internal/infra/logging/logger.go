// Where: cli/internal/infra/logging/logger.go
// What: Diagnostic logger construction.
// Why: Keep user-facing output on the UI while --verbose traces go to stderr as JSON.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var buildConfig = func(cfg zap.Config) (*zap.Logger, error) {
	return cfg.Build()
}

// New returns a nop logger unless verbose is set, in which case debug-level
// production logs are written to stderr.
func New(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	logger, err := buildConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}

// OrNop returns logger, or a nop logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
