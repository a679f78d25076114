package otel

import (
	"go.opentelemetry.io/otel/attribute"
)

const (
	AttrSeverity    = attribute.Key("logline.severity")
	AttrDestination = attribute.Key("logline.destination")
	AttrSendStatus  = attribute.Key("logline.send.status")
	AttrErrorAction = attribute.Key("logline.error.action")
	AttrErrorPhase  = attribute.Key("logline.error.phase")
)

// Send status values
const (
	StatusSuccess  = "success"
	StatusDropped  = "dropped"
	StatusFallback = "fallback"
	StatusError    = "error"
)
