/* pkg/logger/fallback.go */

package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFallbackLogger builds a console-only logger for environments where no
// writable log path exists (containers, restricted CI runners).
func NewFallbackLogger() *zap.Logger {
	cfg := DefaultConsoleEncoderConfig()

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// InitializeWithFallback installs a tee of console + JSON file logging, or a
// console-only logger when no log path is writable.
func InitializeWithFallback() {
	path, err := FindWritableLogPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  No writable log path found. Logging to console only.")
		SetLogger(NewFallbackLogger())
		return
	}

	cfg := DefaultConsoleEncoderConfig()
	jsonCfg := zap.NewProductionEncoderConfig()
	jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	writer, err := GetLogFileWriter(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "⚠️  Could not write to log file, falling back to stderr:", err)
		writer = zapcore.AddSync(os.Stderr)
	}

	level := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(os.Stderr), level),
		zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, level),
	)

	l := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	SetLogger(l)
	l.Debug("Logger initialized",
		zap.String("log_level", os.Getenv("LOG_LEVEL")),
		zap.String("log_path", path),
	)
}
