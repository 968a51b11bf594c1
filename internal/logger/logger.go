// Package logger wraps zap to provide application-wide structured logging
// with a configurable level.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger so callers can initialize the level after construction.
type Logger struct {
	// Log is the underlying zap logger. It is safe for concurrent use.
	Log *zap.Logger
}

// New returns a Logger backed by a no-op zap logger until Init is called.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init configures the logger with the given level ("Debug", "Info", "Warn",
// "Error"). Returns an error if the level cannot be parsed or the logger
// cannot be built.
func (l *Logger) Init(level string) error {
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
	l.Log = logger
	return nil
}
