package observability

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
		" DEBUG ": zapcore.DebugLevel,
	}

	for input, want := range tests {
		require.Equal(t, want, ParseLevel(input), input)
	}
}

func TestInitCLILogger(t *testing.T) {
	InitCLILogger(false)
	require.NotNil(t, CLILogger)
	require.False(t, CLILogger.Core().Enabled(zapcore.DebugLevel))

	InitCLILogger(true)
	require.True(t, CLILogger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitServerLogger(t *testing.T) {
	InitServerLogger("warn")
	require.NotNil(t, ServerLogger)
	require.True(t, ServerLogger.Core().Enabled(zapcore.WarnLevel))
	require.False(t, ServerLogger.Core().Enabled(zapcore.InfoLevel))
}
