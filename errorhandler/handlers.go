package errorhandler

import (
	"context"
	"time"

	"github.com/hugolhafner/dskit/backoff"
	"github.com/hugolhafner/go-logline"
	"github.com/hugolhafner/go-logline/logger"
)

// SilentContinue drops the line without logging
func SilentContinue() Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			return ActionContinue{}
		},
	)
}

// LogAndContinue logs error and drops the line
func LogAndContinue(logger logger.Logger) Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			logger.Error(
				"failed to deliver log line, dropping",
				"error", ec.Error,
				"severity", ec.Entry.Severity.String(),
				"destination", ec.Destination,
				"attempt", ec.Attempt,
				"phase", ec.Phase.String(),
			)
			return ActionContinue{}
		},
	)
}

// WithMaxAttempts wraps a handler with retry logic
// When the max attempts is reached, the fallback handler is called
// A nil fallback drops the line silently
func WithMaxAttempts(maxAttempts int, b backoff.Backoff, fallback Handler) Handler {
	if fallback == nil {
		fallback = SilentContinue()
	}

	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			if ec.Attempt >= maxAttempts {
				return fallback.Handle(ctx, ec)
			}

			select {
			case <-ctx.Done():
				return fallback.Handle(ctx, ec)
			case <-time.After(b.Next(uint(ec.Attempt))):
			}

			return ActionRetry{}
		},
	)
}

// WithFallback returns a Fallback action when inner would Continue
// Useful for: WithMaxAttempts(3, backoff, WithFallback(stderr, inner))
func WithFallback(cb logline.Callback, inner Handler) Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			var action Action = ActionContinue{}
			if inner != nil {
				action = inner.Handle(ctx, ec)
			}

			if action.Type() == ActionTypeContinue && cb != nil {
				return ActionFallback{callback: cb}
			}

			return action
		},
	)
}

// ActionLogger logs the action decided by the next handler
func ActionLogger(l logger.Logger, level logger.LogLevel, next Handler) Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			action := next.Handle(ctx, ec)

			l.Log(
				level,
				"Error handler decision",
				"action", action.Type().String(),
				"error", ec.Error,
				"severity", ec.Entry.Severity.String(),
				"destination", ec.Destination,
				"attempt", ec.Attempt,
				"phase", ec.Phase.String(),
			)
			return action
		},
	)
}
