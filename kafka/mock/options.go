package mockkafka

// Option is a functional option for configuring a mock Producer.
type Option func(*Producer)

// WithSendError configures an error to be returned by all Send calls.
func WithSendError(err error) Option {
	return func(p *Producer) {
		p.sendErr = func(string, []byte, []byte) error { return err }
	}
}

// WithFailFirst makes the first n Send calls fail with err.
func WithFailFirst(n int, err error) Option {
	return func(p *Producer) {
		remaining := n
		p.sendErr = func(string, []byte, []byte) error {
			if remaining > 0 {
				remaining--
				return err
			}
			return nil
		}
	}
}

// WithFlushError configures an error to be returned by Flush.
func WithFlushError(err error) Option {
	return func(p *Producer) {
		p.flushErr = err
	}
}
