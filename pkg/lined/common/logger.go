package common

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a LOG_LEVEL configuration value to a zap level.
// Unrecognized values fall back to Info.
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "ERROR":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// NewLogger creates a production logger writing to stdout and, when logFile
// is non-empty, to logFile as well.
func NewLogger(level zapcore.Level, logFile string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stdout"}
	if logFile != "" {
		config.OutputPaths = append(config.OutputPaths, logFile)
	}
	return config.Build()
}

// NewDefaultLogger creates a logger with Info level and stdout output.
func NewDefaultLogger() (*zap.Logger, error) {
	return NewLogger(zapcore.InfoLevel, "")
}
