package kafka

import (
	"context"
)

// Producer is the transport the Sink writes records to.
type Producer interface {
	Send(ctx context.Context, topic string, key, value []byte, headers []Header) error
	Flush(ctx context.Context) error
	Close()
}
