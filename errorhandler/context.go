package errorhandler

import (
	"github.com/hugolhafner/go-logline"
)

// ErrorContext describes a failed attempt to deliver a log line to a sink.
type ErrorContext struct {
	// Entry is the line that could not be delivered.
	Entry logline.Entry

	// Destination names where the line was going, eg. a Kafka topic.
	Destination string

	Error error

	// Attempt is current attempt number, 1 indexed.
	Attempt int

	Phase ErrorPhase
}

func NewErrorContext(entry logline.Entry, err error) ErrorContext {
	return ErrorContext{
		Entry:   entry,
		Error:   err,
		Attempt: 1,
	}
}

func (ec ErrorContext) WithError(err error) ErrorContext {
	ec.Error = err
	return ec
}

func (ec ErrorContext) WithAttempt(attempt int) ErrorContext {
	ec.Attempt = attempt
	return ec
}

func (ec ErrorContext) WithDestination(destination string) ErrorContext {
	ec.Destination = destination
	return ec
}

func (ec ErrorContext) WithPhase(phase ErrorPhase) ErrorContext {
	ec.Phase = phase
	return ec
}

func (ec ErrorContext) IncrementAttempt() ErrorContext {
	ec.Attempt++
	return ec
}
