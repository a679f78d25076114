//go:build unit

package logline_test

import (
	"testing"

	"github.com/hugolhafner/go-logline"
	"github.com/stretchr/testify/require"
)

func TestSeverityOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want logline.Severity
	}{
		{"empty defaults to info", "", logline.Info},
		{"marker only", "\x01", logline.Warning},
		{"marker and message", "\x02disk full", logline.Error},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				require.Equal(t, tt.want, logline.SeverityOf(tt.text))
			},
		)
	}
}

func TestMessageOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", ""},
		{"marker only", "\x00", ""},
		{"marker and message", "\x01hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				require.Equal(t, tt.want, logline.MessageOf(tt.text))
			},
		)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	messages := []string{"", "x", "value=42, ok=true", "\x02starts with a marker byte", "ünïcödé"}
	for _, sev := range []logline.Severity{logline.Info, logline.Warning, logline.Error} {
		for _, msg := range messages {
			text := logline.Encode(sev, msg)
			require.Equal(t, sev, logline.SeverityOf(text))
			require.Equal(t, msg, logline.MessageOf(text))
			require.Equal(t, logline.Entry{Severity: sev, Message: msg}, logline.Decode(text))
			require.Equal(t, text, logline.Decode(text).String())
		}
	}
}

func TestHandle(t *testing.T) {
	t.Parallel()

	var got []logline.Entry
	cb := logline.Handle(
		func(e logline.Entry) {
			got = append(got, e)
		},
	)

	l := logline.Begin(logline.Warning, cb)
	l.Append("low memory")
	require.NoError(t, l.Close())

	require.Equal(t, []logline.Entry{{Severity: logline.Warning, Message: "low memory"}}, got)
}
