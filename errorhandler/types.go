package errorhandler

import (
	"context"

	"github.com/hugolhafner/go-logline"
)

type ActionType int

const (
	ActionTypeContinue ActionType = iota // Drop the line and carry on
	ActionTypeRetry                      // Try delivering the same line again
	ActionTypeFallback                   // Hand the line to a fallback callback
)

func (a ActionType) String() string {
	switch a {
	case ActionTypeContinue:
		return "Continue"
	case ActionTypeRetry:
		return "Retry"
	case ActionTypeFallback:
		return "Fallback"
	default:
		return "Unknown"
	}
}

var _ Action = ActionContinue{}
var _ Action = ActionRetry{}
var _ Action = ActionFallback{}

type Action interface {
	Type() ActionType
}

type ActionContinue struct{}

func (a ActionContinue) Type() ActionType {
	return ActionTypeContinue
}

type ActionRetry struct{}

func (a ActionRetry) Type() ActionType {
	return ActionTypeRetry
}

type ActionFallback struct {
	callback logline.Callback
}

func (a ActionFallback) Type() ActionType {
	return ActionTypeFallback
}

func (a ActionFallback) Callback() logline.Callback {
	return a.callback
}

type Handler interface {
	Handle(ctx context.Context, ec ErrorContext) Action
}

type HandlerFunc func(ctx context.Context, ec ErrorContext) Action

func (f HandlerFunc) Handle(ctx context.Context, ec ErrorContext) Action {
	return f(ctx, ec)
}
