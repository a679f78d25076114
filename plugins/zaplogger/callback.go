package zaplogger

import (
	"github.com/hugolhafner/go-logline"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Callback writes flushed log lines to l. zap cores are safe for concurrent
// use, so no extra locking is needed.
func Callback(l *zap.Logger, fields ...zap.Field) logline.Callback {
	l = l.With(fields...)
	return logline.Handle(
		func(e logline.Entry) {
			l.Log(severityToZapLevel(e.Severity), e.Message)
		},
	)
}

func severityToZapLevel(sev logline.Severity) zapcore.Level {
	switch sev {
	case logline.Info:
		return zap.InfoLevel
	case logline.Warning:
		return zap.WarnLevel
	case logline.Error:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
