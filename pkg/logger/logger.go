// pkg/logger/logger.go

package logger

import (
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log *zap.Logger
)

// SetLogger replaces the package-level logger and the zap/otelzap globals.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the package-level logger, installing a fallback if none exists yet.
func L() *zap.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}
	fallback := NewFallbackLogger()
	SetLogger(fallback)
	return fallback
}

// GetLogger is an alias kept for call sites that read better with a verb.
func GetLogger() *zap.Logger {
	return L()
}

// Sync flushes any buffered log entries. Sync errors on stdout are ignored
// because some platforms do not support syncing character devices.
func Sync() error {
	l := L()
	if l == nil {
		return nil
	}
	_ = l.Sync()
	return nil
}

// ParseLogLevel converts a LOG_LEVEL string into a zap level, defaulting to info.
func ParseLogLevel(level string) zapcore.Level {
	switch level {
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

// DefaultConsoleEncoderConfig is the human-facing console encoder layout.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}
