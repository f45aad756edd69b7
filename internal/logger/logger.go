package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// It is a no-op logger until Initialize is called, so packages may log
// unconditionally during startup and in tests.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces the global logger with a production zap logger
// at the given level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}
