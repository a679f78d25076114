package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugolhafner/go-logline"
	"github.com/hugolhafner/go-logline/errorhandler"
	"github.com/hugolhafner/go-logline/logger"
	"github.com/hugolhafner/go-logline/otel"
	"github.com/hugolhafner/go-logline/serde"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// HeaderSeverity carries the severity name on every record.
const HeaderSeverity = "logline-severity"

var ErrLineDropped = errors.New("kafka: log line dropped")

type SinkConfig struct {
	Serde        serde.Serialiser[logline.Entry]
	SendTimeout  time.Duration
	ErrorHandler errorhandler.Handler
	Logger       logger.Logger
	Telemetry    *otel.Telemetry
}

type SinkOption func(*SinkConfig)

// WithSerde sets the value encoding, serde.Text by default.
func WithSerde(s serde.Serialiser[logline.Entry]) SinkOption {
	return func(c *SinkConfig) {
		if s != nil {
			c.Serde = s
		}
	}
}

func WithSendTimeout(d time.Duration) SinkOption {
	return func(c *SinkConfig) {
		if d > 0 {
			c.SendTimeout = d
		}
	}
}

// WithErrorHandler decides what happens to a line that failed to send. The
// default logs the failure and drops the line.
func WithErrorHandler(h errorhandler.Handler) SinkOption {
	return func(c *SinkConfig) {
		c.ErrorHandler = h
	}
}

func WithSinkLogger(l logger.Logger) SinkOption {
	return func(c *SinkConfig) {
		if l != nil {
			c.Logger = l
		}
	}
}

func WithTelemetry(t *otel.Telemetry) SinkOption {
	return func(c *SinkConfig) {
		if t != nil {
			c.Telemetry = t
		}
	}
}

func defaultSinkConfig() SinkConfig {
	return SinkConfig{
		Serde:       serde.Text(),
		SendTimeout: 5 * time.Second,
		Logger:      logger.NewNoopLogger(),
		Telemetry:   otel.Noop(),
	}
}

// Sink publishes log lines to a single topic. Each line becomes one record
// keyed by its severity name.
type Sink struct {
	producer Producer
	topic    string
	keys     serde.Serialiser[string]
	config   SinkConfig
}

func NewSink(p Producer, topic string, opts ...SinkOption) *Sink {
	cfg := defaultSinkConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.Logger = cfg.Logger.With("sink", "kafka", "topic", topic)
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = errorhandler.LogAndContinue(cfg.Logger)
	}

	return &Sink{
		producer: p,
		topic:    topic,
		keys:     serde.String(),
		config:   cfg,
	}
}

// Callback returns a logline.Callback delivering through this sink. Delivery
// failures are resolved by the configured error handler.
func (s *Sink) Callback() logline.Callback {
	return logline.Handle(
		func(e logline.Entry) {
			_ = s.Deliver(context.Background(), e)
		},
	)
}

// Deliver sends e, consulting the error handler after every failed attempt.
// It returns nil once the line was sent or handed to a fallback, and an
// error wrapping ErrLineDropped when the handler gave up on it.
func (s *Sink) Deliver(ctx context.Context, e logline.Entry) error {
	ec := errorhandler.NewErrorContext(e, nil).WithDestination(s.topic)

	for {
		phase, err := s.attempt(ctx, e)
		if err == nil {
			s.recordOutcome(ctx, e, otel.StatusSuccess)
			return nil
		}

		ec = ec.WithError(err).WithPhase(phase)
		action := s.config.ErrorHandler.Handle(ctx, ec)
		s.config.Telemetry.HandlerActions.Add(
			ctx, 1, metric.WithAttributes(
				otel.AttrErrorAction.String(action.Type().String()),
				otel.AttrErrorPhase.String(phase.String()),
			),
		)

		switch a := action.(type) {
		case errorhandler.ActionRetry:
			ec = ec.IncrementAttempt()
			continue
		case errorhandler.ActionFallback:
			if cb := a.Callback(); cb != nil {
				cb(e.String())
			}
			s.recordOutcome(ctx, e, otel.StatusFallback)
			return nil
		default:
			s.recordOutcome(ctx, e, otel.StatusDropped)
			return fmt.Errorf("%w: %w", ErrLineDropped, err)
		}
	}
}

func (s *Sink) recordOutcome(ctx context.Context, e logline.Entry, status string) {
	s.config.Telemetry.LinesSent.Add(
		ctx, 1, metric.WithAttributes(
			otel.AttrSeverity.String(e.Severity.String()),
			otel.AttrDestination.String(s.topic),
			otel.AttrSendStatus.String(status),
		),
	)
}

func (s *Sink) attempt(ctx context.Context, e logline.Entry) (errorhandler.ErrorPhase, error) {
	tel := s.config.Telemetry
	attrs := []attribute.KeyValue{
		otel.AttrSeverity.String(e.Severity.String()),
		otel.AttrDestination.String(s.topic),
	}

	ctx, span := tel.Tracer.Start(
		ctx, "logline.send "+s.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	fail := func(phase errorhandler.ErrorPhase, err error) (errorhandler.ErrorPhase, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		tel.SendErrors.Add(
			ctx, 1, metric.WithAttributes(append(attrs, otel.AttrErrorPhase.String(phase.String()))...),
		)
		return phase, err
	}

	key, err := s.keys.Serialise(s.topic, e.Severity.String())
	if err != nil {
		return fail(errorhandler.PhaseEncode, fmt.Errorf("serialise key: %w", err))
	}

	value, err := s.config.Serde.Serialise(s.topic, e)
	if err != nil {
		return fail(errorhandler.PhaseEncode, fmt.Errorf("serialise entry: %w", err))
	}

	headers := []Header{{Key: HeaderSeverity, Value: []byte(e.Severity.String())}}
	tel.Propagator.Inject(ctx, NewHeadersCarrier(&headers))

	sendCtx, cancel := context.WithTimeout(ctx, s.config.SendTimeout)
	defer cancel()

	start := time.Now()
	err = s.producer.Send(sendCtx, s.topic, key, value, headers)
	status := otel.StatusSuccess
	if err != nil {
		status = otel.StatusError
	}
	tel.SendDuration.Record(
		ctx, time.Since(start).Seconds(),
		metric.WithAttributes(append(attrs, otel.AttrSendStatus.String(status))...),
	)

	if err != nil {
		return fail(errorhandler.PhaseSend, fmt.Errorf("send: %w", err))
	}

	return errorhandler.PhaseSend, nil
}

// Flush waits for buffered records to reach the broker.
func (s *Sink) Flush(ctx context.Context) error {
	return s.producer.Flush(ctx)
}

// Close flushes outstanding records and closes the producer.
func (s *Sink) Close(ctx context.Context) error {
	err := s.producer.Flush(ctx)
	s.producer.Close()
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
