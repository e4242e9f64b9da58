// Package tracing implements an interface behind which a third-party,
// levelled logger can sit, so heredocscan can print each token as it is
// emitted without the scanner package itself taking a logging
// dependency. Its needs are basic: DEBUG level lines for a --trace flag,
// nothing more.
package tracing

import "go.uber.org/zap"

// Logger is the interface behind which a trace logger can sit.
type Logger interface {
	// Sync flushes the logs to stderr.
	Sync() error
	// Debug outputs a debug level log line.
	Debug(format string, args ...any)
}

// ZapLogger is a Logger backed by zap.
type ZapLogger struct {
	inner *zap.SugaredLogger
}

// NewZapLogger builds a ZapLogger. verbose=false raises the level so
// Debug calls are dropped, matching heredocscan's default (quiet) mode.
func NewZapLogger(verbose bool) (*ZapLogger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	logger, err := cfg.Build(zap.IncreaseLevel(level))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{inner: logger.Sugar()}, nil
}

// Sync flushes the logs.
func (z *ZapLogger) Sync() error {
	return z.inner.Sync()
}

// Debug outputs a debug level log line.
func (z *ZapLogger) Debug(format string, args ...any) {
	z.inner.Debugf(format, args...)
}

// Noop is a Logger that discards everything, used when --trace is off so
// callers don't need a nil check.
type Noop struct{}

func (Noop) Sync() error                    { return nil }
func (Noop) Debug(format string, args ...any) {}
