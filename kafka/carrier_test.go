//go:build unit

package kafka_test

import (
	"testing"

	"github.com/hugolhafner/go-logline/kafka"
	"github.com/stretchr/testify/assert"
)

func TestHeadersCarrier_Get(t *testing.T) {
	headers := []kafka.Header{
		{Key: "traceparent", Value: []byte("00-abc-def-01")},
		{Key: "other", Value: []byte("value")},
	}
	carrier := kafka.NewHeadersCarrier(&headers)

	assert.Equal(t, "00-abc-def-01", carrier.Get("traceparent"))
	assert.Equal(t, "value", carrier.Get("other"))
	assert.Equal(t, "", carrier.Get("missing"))
}

func TestHeadersCarrier_Set(t *testing.T) {
	headers := []kafka.Header{
		{Key: "traceparent", Value: []byte("old-value")},
	}
	carrier := kafka.NewHeadersCarrier(&headers)

	carrier.Set("traceparent", "new-value")
	carrier.Set("tracestate", "k=v")

	assert.Len(t, headers, 2)
	assert.Equal(t, []byte("new-value"), headers[0].Value)
	assert.Equal(t, "tracestate", headers[1].Key)
	assert.Equal(t, []string{"traceparent", "tracestate"}, carrier.Keys())
}

func TestCopyHeaders(t *testing.T) {
	headers := []kafka.Header{{Key: "k", Value: []byte("v")}}
	copied := kafka.CopyHeaders(headers)

	headers[0].Value[0] = 'x'
	assert.Equal(t, []byte("v"), copied[0].Value)
}
