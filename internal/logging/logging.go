// Package logging builds the zap loggers used at the CLI boundary. The
// computation packages stay log-free.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a production console logger. verbosity > 0 enables
// debug output.
func NewLogger(verbosity int) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbosity > 0 {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		// The static config above always builds.
		panic(err)
	}
	return logger
}

// NewTestLogger returns a development-mode logger for tests.
func NewTestLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
