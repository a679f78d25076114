package mockkafka

import (
	"context"
	"sync"

	"github.com/hugolhafner/go-logline/kafka"
)

var _ kafka.Producer = (*Producer)(nil)

// ProducedRecord represents a record that was sent via the mock producer.
type ProducedRecord struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers []kafka.Header
}

type Producer struct {
	mu sync.RWMutex

	producedRecords []ProducedRecord
	sendCalls       int
	flushCalls      int

	sendErr  func(topic string, key, value []byte) error
	flushErr error

	closed bool
}

func NewProducer(opts ...Option) *Producer {
	p := &Producer{
		producedRecords: make([]ProducedRecord, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Send stores the record so it can be verified using ProducedRecords().
// Failed sends are counted but not stored.
func (p *Producer) Send(ctx context.Context, topic string, key, value []byte, headers []kafka.Header) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sendCalls++

	if err := ctx.Err(); err != nil {
		return err
	}

	if p.sendErr != nil {
		if err := p.sendErr(topic, key, value); err != nil {
			return err
		}
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	p.producedRecords = append(
		p.producedRecords, ProducedRecord{
			Topic:   topic,
			Key:     keyCopy,
			Value:   valueCopy,
			Headers: kafka.CopyHeaders(headers),
		},
	)

	return nil
}

// Flush is a no-op since Send is synchronous.
// It respects context cancellation for realistic behavior.
func (p *Producer) Flush(ctx context.Context) error {
	p.mu.Lock()
	p.flushCalls++
	err := p.flushErr
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return err
	}
}

func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
}

func (p *Producer) SetSendError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err == nil {
		p.sendErr = nil
		return
	}
	p.sendErr = func(string, []byte, []byte) error { return err }
}

func (p *Producer) SetSendErrorFunc(fn func(topic string, key, value []byte) error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sendErr = fn
}

func (p *Producer) ProducedRecords() []ProducedRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]ProducedRecord, len(p.producedRecords))
	copy(out, p.producedRecords)
	return out
}

func (p *Producer) ProducedRecordsForTopic(topic string) []ProducedRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []ProducedRecord
	for _, r := range p.producedRecords {
		if r.Topic == topic {
			out = append(out, r)
		}
	}
	return out
}

// SendCalls counts every Send, failed ones included.
func (p *Producer) SendCalls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sendCalls
}

func (p *Producer) FlushCalls() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.flushCalls
}

func (p *Producer) IsClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// Reset clears recorded records and counters but keeps configured errors.
func (p *Producer) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.producedRecords = make([]ProducedRecord, 0)
	p.sendCalls = 0
	p.flushCalls = 0
	p.closed = false
}
