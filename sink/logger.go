package sink

import (
	"github.com/hugolhafner/go-logline"
	"github.com/hugolhafner/go-logline/logger"
)

// Logger forwards lines into l, with the line severity mapped to a LogLevel.
func Logger(l logger.Base, kv ...any) logline.Callback {
	return logline.Handle(
		func(e logline.Entry) {
			l.Log(ToLogLevel(e.Severity), e.Message, kv...)
		},
	)
}

func ToLogLevel(sev logline.Severity) logger.LogLevel {
	switch sev {
	case logline.Info:
		return logger.InfoLevel
	case logline.Warning:
		return logger.WarnLevel
	case logline.Error:
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
