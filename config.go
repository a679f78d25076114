package logline

import (
	"github.com/hugolhafner/go-logline/logger"
)

type Config struct {
	// Logger receives failures that cannot be returned to the caller, such as
	// a callback panicking while a deferred Close discards its error.
	Logger logger.Logger
}

type Option func(*Config)

func WithLogger(l logger.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

func defaultConfig() Config {
	return Config{
		Logger: logger.NewNoopLogger(),
	}
}

func newConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
