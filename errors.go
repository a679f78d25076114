package logline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCallback is returned when a Line is built without a callback.
	ErrInvalidCallback = errors.New("logline: callback must not be nil")

	// ErrLineClosed is returned by operations on a Line that has already flushed.
	ErrLineClosed = errors.New("logline: line already closed")

	// ErrCallbackPanicked matches every *CallbackError via errors.Is.
	ErrCallbackPanicked = errors.New("logline: callback panicked")

	ErrUnknownSeverity = errors.New("logline: unknown severity")
)

// CallbackError wraps a panic raised by a Callback while a Line was flushing.
type CallbackError struct {
	Value any
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("%s: %v", ErrCallbackPanicked.Error(), e.Value)
}

func (e *CallbackError) Is(target error) bool {
	return target == ErrCallbackPanicked
}

// Unwrap exposes the panic value when it was itself an error.
func (e *CallbackError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func AsCallbackError(err error) (*CallbackError, bool) {
	var ce *CallbackError
	if errors.As(err, &ce) {
		return ce, true
	}

	return nil, false
}
