// Package observability holds the shared application loggers.
package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// CLILogger is used for CLI commands (console output).
	CLILogger = zap.NewNop()

	// ServerLogger is used for the HTTP server (structured JSON output).
	ServerLogger = zap.NewNop()
)

// InitCLILogger initializes the CLI logger. Verbose lowers the level to
// debug; otherwise only warnings and errors reach the console.
func InitCLILogger(verbose bool) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	CLILogger = zap.Must(cfg.Build())
}

// InitServerLogger initializes the server logger with JSON output on
// stderr at the configured level.
func InitServerLogger(level string) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))

	ServerLogger = zap.Must(cfg.Build())
}

// ParseLevel converts a config log level string to a zap level, defaulting
// to info for unrecognized values.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
