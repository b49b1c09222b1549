package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		ok       bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{" INFO ", zapcore.InfoLevel, true},
		{"", zapcore.InfoLevel, true},
		{"warning", zapcore.WarnLevel, true},
		{"error", zapcore.ErrorLevel, true},
		{"loud", zapcore.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := ParseLogLevel(tt.input)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, level)
		})
	}
}

func TestConfigure(t *testing.T) {
	defer SetLogger(nil)
	defer SetLevel(zapcore.InfoLevel)

	require.Error(t, Configure(true, "loud"))

	require.NoError(t, Configure(true, "debug"))
	require.Equal(t, zapcore.DebugLevel, Level())

	require.NoError(t, Configure(false, "debug"))
	require.False(t, Logger().Desugar().Core().Enabled(zapcore.ErrorLevel))
}

func TestSetLoggerCapturesMessages(t *testing.T) {
	defer SetLogger(nil)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core).Sugar())

	Logger().Infof("[Test] hello %d", 1)

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "[Test] hello 1", logs.All()[0].Message)
}
