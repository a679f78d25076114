package sink

import (
	"io"
	"sync"

	"github.com/hugolhafner/go-logline"
	"github.com/hugolhafner/go-logline/logger"
)

type WriterConfig struct {
	Logger logger.Logger
	Format func(e logline.Entry) string
}

type WriterOption func(*WriterConfig)

func WithLogger(l logger.Logger) WriterOption {
	return func(c *WriterConfig) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithFormat replaces the default "SEVERITY message\n" rendering.
func WithFormat(fn func(e logline.Entry) string) WriterOption {
	return func(c *WriterConfig) {
		if fn != nil {
			c.Format = fn
		}
	}
}

func defaultWriterConfig() WriterConfig {
	return WriterConfig{
		Logger: logger.NewNoopLogger(),
		Format: DefaultFormat,
	}
}

func DefaultFormat(e logline.Entry) string {
	return e.Severity.String() + " " + e.Message + "\n"
}

// Writer returns a Callback writing every line to w. Writes are serialised so
// concurrent lines never interleave.
func Writer(w io.Writer, opts ...WriterOption) logline.Callback {
	cfg := defaultWriterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var mu sync.Mutex
	return logline.Handle(
		func(e logline.Entry) {
			out := cfg.Format(e)

			mu.Lock()
			_, err := io.WriteString(w, out)
			mu.Unlock()

			if err != nil {
				cfg.Logger.Error("failed to write log line", "error", err, "severity", e.Severity.String())
			}
		},
	)
}
