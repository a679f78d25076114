package mockkafka

import (
	"bytes"
	"testing"

	"github.com/hugolhafner/go-logline/kafka"
	"github.com/stretchr/testify/require"
)

// AssertProducedCount verifies that exactly n records were produced.
func (p *Producer) AssertProducedCount(tb testing.TB, expected int) {
	tb.Helper()

	actual := len(p.ProducedRecords())
	require.Equal(tb, expected, actual, "expected %d records, got %d", expected, actual)
}

// AssertProduced verifies that a record with the given key and value was produced to the topic.
func (p *Producer) AssertProduced(tb testing.TB, topic string, key, value []byte) {
	tb.Helper()

	for _, r := range p.ProducedRecordsForTopic(topic) {
		if bytes.Equal(r.Key, key) && bytes.Equal(r.Value, value) {
			return
		}
	}

	tb.Errorf(
		"expected record with key=%q value=%q to be produced to topic %q, but it was not found",
		string(key), string(value), topic,
	)
}

// AssertProducedString is a convenience method for string keys and values.
func (p *Producer) AssertProducedString(tb testing.TB, topic, key, value string) {
	tb.Helper()
	p.AssertProduced(tb, topic, []byte(key), []byte(value))
}

// AssertNoProducedRecords verifies that no records were produced.
func (p *Producer) AssertNoProducedRecords(tb testing.TB) {
	tb.Helper()

	records := p.ProducedRecords()
	require.Empty(tb, records, "expected no produced records, got %d", len(records))
}

// AssertHeader verifies that a produced record has a specific header.
func (p *Producer) AssertHeader(tb testing.TB, topic string, key []byte, headerKey string, headerValue []byte) {
	tb.Helper()

	for _, r := range p.ProducedRecordsForTopic(topic) {
		if bytes.Equal(r.Key, key) {
			actual, ok := kafka.HeaderValue(r.Headers, headerKey)
			require.True(tb, ok, "record with key=%q missing header %q", string(key), headerKey)
			require.True(
				tb, bytes.Equal(actual, headerValue), "record with key=%q has header %q=%q, expected %q", string(key),
				headerKey, string(actual), string(headerValue),
			)
			return
		}
	}

	tb.Errorf("no record with key=%q found in topic %q", string(key), topic)
}

// AssertClosed verifies that Close() was called.
func (p *Producer) AssertClosed(tb testing.TB) {
	tb.Helper()

	require.True(tb, p.IsClosed(), "expected producer to be closed")
}
