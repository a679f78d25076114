package errorhandler

import (
	"context"
)

// ErrorPhase indicates where in delivery an error occurred
type ErrorPhase int

const (
	PhaseUnknown ErrorPhase = iota // zero value - uninitialized phase
	PhaseEncode                    // error while serialising the entry
	PhaseSend                      // error while handing the record to the transport
)

func (p ErrorPhase) String() string {
	switch p {
	case PhaseUnknown:
		return "unknown"
	case PhaseEncode:
		return "encode"
	case PhaseSend:
		return "send"
	default:
		return "unknown"
	}
}

var _ Handler = (*PhaseRouter)(nil)

type PhaseRouter struct {
	handler       Handler
	encodeHandler Handler
	sendHandler   Handler
}

// NewPhaseRouter creates a new PhaseRouter with the provided handlers for each phase.
// If a handler for a specific phase is nil, the router will fall back to the default handler.
// If the default handler is unset, defaults to SilentContinue.
func NewPhaseRouter(handler Handler, encodeHandler Handler, sendHandler Handler) *PhaseRouter {
	if handler == nil {
		handler = SilentContinue()
	}

	return &PhaseRouter{
		handler:       handler,
		encodeHandler: encodeHandler,
		sendHandler:   sendHandler,
	}
}

func (r *PhaseRouter) Handle(ctx context.Context, ec ErrorContext) Action {
	switch ec.Phase {
	case PhaseEncode:
		if r.encodeHandler != nil {
			return r.encodeHandler.Handle(ctx, ec)
		}
	case PhaseSend:
		if r.sendHandler != nil {
			return r.sendHandler.Handle(ctx, ec)
		}
	}

	return r.handler.Handle(ctx, ec)
}
