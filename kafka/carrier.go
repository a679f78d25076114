package kafka

import "go.opentelemetry.io/otel/propagation"

var _ propagation.TextMapCarrier = HeadersCarrier{}

// HeadersCarrier lets an OpenTelemetry propagator read and write record headers.
type HeadersCarrier struct {
	Headers *[]Header
}

func NewHeadersCarrier(headers *[]Header) HeadersCarrier {
	return HeadersCarrier{Headers: headers}
}

func (c HeadersCarrier) Get(key string) string {
	if v, ok := HeaderValue(*c.Headers, key); ok {
		return string(v)
	}
	return ""
}

func (c HeadersCarrier) Set(key, value string) {
	// overwrite every header with the same key, or add a new one
	found := false
	for i, h := range *c.Headers {
		if h.Key == key {
			(*c.Headers)[i].Value = []byte(value)
			found = true
		}
	}

	if !found {
		*c.Headers = append(*c.Headers, Header{Key: key, Value: []byte(value)})
	}
}

func (c HeadersCarrier) Keys() []string {
	keys := make([]string, len(*c.Headers))
	for i, h := range *c.Headers {
		keys[i] = h.Key
	}
	return keys
}
