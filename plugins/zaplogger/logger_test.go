//go:build unit

package zaplogger_test

import (
	"testing"

	"github.com/hugolhafner/go-logline"
	"github.com/hugolhafner/go-logline/logger"
	"github.com/hugolhafner/go-logline/plugins/zaplogger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_MapsLevelsAndFields(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)

	l := zaplogger.New(zap.New(core)).With("component", "sink")
	l.Warn("send failed", "attempt", 2, 42, "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "send failed", entries[0].Message)
	require.Equal(
		t, map[string]any{"component": "sink", "attempt": int64(2)}, entries[0].ContextMap(),
	)
}

func TestLogger_Level(t *testing.T) {
	t.Parallel()
	core, _ := observer.New(zapcore.WarnLevel)

	l := zaplogger.New(zap.New(core))
	require.Equal(t, logger.WarnLevel, l.Level())
}

func TestCallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity logline.Severity
		want     zapcore.Level
	}{
		{logline.Info, zapcore.InfoLevel},
		{logline.Warning, zapcore.WarnLevel},
		{logline.Error, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(
			tt.severity.String(), func(t *testing.T) {
				t.Parallel()
				core, logs := observer.New(zapcore.DebugLevel)
				cb := zaplogger.Callback(zap.New(core), zap.String("source", "test"))

				line := logline.Begin(tt.severity, cb).Append("value=").Append(42)
				require.NoError(t, line.Close())

				entries := logs.All()
				require.Len(t, entries, 1)
				require.Equal(t, tt.want, entries[0].Level)
				require.Equal(t, "value=42", entries[0].Message)
				require.Equal(t, map[string]any{"source": "test"}, entries[0].ContextMap())
			},
		)
	}
}
