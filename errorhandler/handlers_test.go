//go:build unit

package errorhandler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugolhafner/dskit/backoff"
	"github.com/hugolhafner/go-logline"
	"github.com/hugolhafner/go-logline/errorhandler"
	"github.com/hugolhafner/go-logline/logger"
	mocklogger "github.com/hugolhafner/go-logline/logger/mock"
	"github.com/stretchr/testify/require"
)

var testEntry = logline.Entry{Severity: logline.Error, Message: "disk full"}

// actionHandler returns a handler that always returns the given action.
func actionHandler(a errorhandler.Action) errorhandler.Handler {
	return errorhandler.HandlerFunc(
		func(_ context.Context, _ errorhandler.ErrorContext) errorhandler.Action {
			return a
		},
	)
}

func TestLogAndContinue(t *testing.T) {
	t.Parallel()
	var testErr = errors.New("send failed")

	tests := []struct {
		name string
		err  error
	}{
		{"simple error", testErr},
		{"nil error", nil},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				ec := errorhandler.NewErrorContext(testEntry, nil).WithDestination("logs")

				l := mocklogger.New()
				h := errorhandler.LogAndContinue(l)
				action := h.Handle(context.Background(), ec.WithError(tt.err))

				require.Equal(t, errorhandler.ActionContinue{}, action)
				l.AssertCalledWithLevelAndMessage(t, logger.ErrorLevel, "failed to deliver log line, dropping")
			},
		)
	}
}

func TestSilentContinue(t *testing.T) {
	t.Parallel()
	action := errorhandler.SilentContinue().Handle(context.Background(), errorhandler.NewErrorContext(testEntry, nil))
	require.Equal(t, errorhandler.ActionContinue{}, action)
}

func TestWithMaxAttempts(t *testing.T) {
	t.Parallel()
	t.Run(
		"should call fallback after max attempts", func(t *testing.T) {
			t.Parallel()
			var maxAttempts = 3
			ec := errorhandler.NewErrorContext(testEntry, errors.New("send failed"))

			fallbackCalled := false
			fallback := errorhandler.HandlerFunc(
				func(ctx context.Context, ec errorhandler.ErrorContext) errorhandler.Action {
					fallbackCalled = true
					return errorhandler.ActionContinue{}
				},
			)

			h := errorhandler.WithMaxAttempts(maxAttempts, backoff.NewFixed(0), fallback)

			for i := 1; i < maxAttempts; i++ {
				action := h.Handle(context.Background(), ec.WithAttempt(i))
				require.False(t, fallbackCalled, "fallback should not be called yet on attempt %d", i)
				require.Equal(t, errorhandler.ActionRetry{}, action)
			}

			action := h.Handle(context.Background(), ec.WithAttempt(maxAttempts))
			require.True(t, fallbackCalled, "fallback should have been called")
			require.Equal(t, errorhandler.ActionContinue{}, action)
		},
	)

	t.Run(
		"should wait for backoff before retrying", func(t *testing.T) {
			t.Parallel()
			ec := errorhandler.NewErrorContext(testEntry, errors.New("send failed"))
			h := errorhandler.WithMaxAttempts(3, backoff.NewFixed(50*time.Millisecond), errorhandler.SilentContinue())

			start := time.Now()
			action := h.Handle(context.Background(), ec)
			require.Equal(t, errorhandler.ActionRetry{}, action)
			require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
		},
	)

	t.Run(
		"should hand over to fallback on context cancellation", func(t *testing.T) {
			t.Parallel()
			ec := errorhandler.NewErrorContext(testEntry, errors.New("send failed"))
			h := errorhandler.WithMaxAttempts(3, backoff.NewFixed(time.Hour), errorhandler.SilentContinue())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			action := h.Handle(ctx, ec)
			require.Equal(t, errorhandler.ActionContinue{}, action)
		},
	)

	t.Run(
		"should drop silently with nil fallback", func(t *testing.T) {
			t.Parallel()
			ec := errorhandler.NewErrorContext(testEntry, errors.New("send failed"))
			h := errorhandler.WithMaxAttempts(2, backoff.NewFixed(0), nil)

			require.NotPanics(
				t, func() {
					require.Equal(t, errorhandler.ActionContinue{}, h.Handle(context.Background(), ec.WithAttempt(2)))
				},
			)
		},
	)
}

func TestWithFallback(t *testing.T) {
	t.Parallel()
	var delivered []string
	cb := logline.Callback(
		func(text string) {
			delivered = append(delivered, text)
		},
	)
	ec := errorhandler.NewErrorContext(testEntry, errors.New("send failed"))

	t.Run(
		"continue becomes fallback", func(t *testing.T) {
			action := errorhandler.WithFallback(cb, actionHandler(errorhandler.ActionContinue{})).
				Handle(context.Background(), ec)

			require.Equal(t, errorhandler.ActionTypeFallback, action.Type())
			fb, ok := action.(errorhandler.ActionFallback)
			require.True(t, ok)
			fb.Callback()("x")
			require.Equal(t, []string{"x"}, delivered)
		},
	)

	t.Run(
		"retry is preserved", func(t *testing.T) {
			action := errorhandler.WithFallback(cb, actionHandler(errorhandler.ActionRetry{})).
				Handle(context.Background(), ec)
			require.Equal(t, errorhandler.ActionRetry{}, action)
		},
	)

	t.Run(
		"nil inner falls back", func(t *testing.T) {
			action := errorhandler.WithFallback(cb, nil).Handle(context.Background(), ec)
			require.Equal(t, errorhandler.ActionTypeFallback, action.Type())
		},
	)
}

func TestActionLogger(t *testing.T) {
	t.Parallel()
	l := mocklogger.New()
	h := errorhandler.ActionLogger(l, logger.WarnLevel, actionHandler(errorhandler.ActionRetry{}))

	action := h.Handle(context.Background(), errorhandler.NewErrorContext(testEntry, errors.New("send failed")))
	require.Equal(t, errorhandler.ActionRetry{}, action)
	l.AssertCalledWithLevelAndMessage(t, logger.WarnLevel, "Error handler decision")
}
