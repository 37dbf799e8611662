/* pkg/logger/paths.go */

package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap/zapcore"
)

// PlatformLogPaths returns candidate log paths in order of priority for the platform.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			filepath.Join(os.Getenv("HOME"), ".local", "state", "nifictl", "nifictl.log"),
			"./nifictl.log",
			"/tmp/nifictl/nifictl.log",
		}
	case "linux":
		return []string{
			"/var/log/nifictl/nifictl.log", // best if writable (sudo or service user)
			filepath.Join(os.Getenv("HOME"), ".local", "state", "nifictl", "nifictl.log"),
			"./nifictl.log", // current working dir - ideal for devs
			"/tmp/nifictl/nifictl.log",
		}
	default:
		return []string{"./nifictl.log"}
	}
}

// GetLogFileWriter tries to create a file writer at the specified path.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return zapcore.AddSync(os.Stderr), fmt.Errorf("log directory error: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return zapcore.AddSync(os.Stderr), fmt.Errorf("failed to open log file: %w", err)
	}

	return zapcore.AddSync(file), nil
}

// FindWritableLogPath returns the first usable log path.
func FindWritableLogPath() (string, error) {
	for _, path := range PlatformLogPaths() {
		if _, err := GetLogFileWriter(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no writable log path found")
}
