// Package logline buffers a single log line and hands it, exactly once, to a
// caller supplied callback.
//
//	line := logline.Begin(logline.Warning, send)
//	defer line.Close()
//	line.Append("exception occurred: ").Append(err)
//
// Begin writes the severity as a one byte marker at the start of the buffer,
// so the callback receives Encode(severity, message). Callbacks use
// SeverityOf, MessageOf or Handle to split it back apart.
package logline

import (
	"bytes"
	"fmt"
	"io"
)

// Callback receives the flushed text of a Line. It is the only output of this
// package; destinations are implemented entirely by the callback.
//
// Callbacks may run concurrently when several Lines close at once, so a
// callback writing to a shared destination must do its own locking.
type Callback func(text string)

var (
	_ io.Writer       = (*Line)(nil)
	_ io.StringWriter = (*Line)(nil)
	_ io.Closer       = (*Line)(nil)
)

// Line accumulates values into a single log line. The zero value is not
// usable; build one with New or Begin. A Line must not be shared between
// goroutines.
type Line struct {
	buf      bytes.Buffer
	callback Callback
	severity Severity
	config   Config

	closed bool
}

// New returns an empty Line bound to cb.
func New(cb Callback, opts ...Option) (*Line, error) {
	if cb == nil {
		return nil, ErrInvalidCallback
	}

	return &Line{
		callback: cb,
		severity: Info,
		config:   newConfig(opts),
	}, nil
}

// Begin returns a Line bound to cb with the severity marker already written.
// A nil cb is reported by Close as ErrInvalidCallback.
func Begin(sev Severity, cb Callback, opts ...Option) *Line {
	l := &Line{
		callback: cb,
		severity: sev,
		config:   newConfig(opts),
	}
	l.buf.WriteByte(byte(sev))

	return l
}

// Do begins a Line, passes it to fn and closes it on every exit path. A panic
// in fn still flushes whatever was appended before propagating.
func Do(sev Severity, cb Callback, fn func(l *Line), opts ...Option) (err error) {
	l := Begin(sev, cb, opts...)
	defer func() {
		if cerr := l.Close(); err == nil {
			err = cerr
		}
	}()

	fn(l)
	return nil
}

// Append writes the default text form of v, as produced by fmt.Fprint, and
// returns l for chaining. Values are concatenated without separators.
func (l *Line) Append(v any) *Line {
	if l.closed {
		return l
	}

	fmt.Fprint(&l.buf, v)
	return l
}

// Appendf writes fmt.Sprintf(format, args...) and returns l for chaining.
func (l *Line) Appendf(format string, args ...any) *Line {
	if l.closed {
		return l
	}

	fmt.Fprintf(&l.buf, format, args...)
	return l
}

func (l *Line) Write(p []byte) (int, error) {
	if l.closed {
		return 0, ErrLineClosed
	}
	return l.buf.Write(p)
}

func (l *Line) WriteString(s string) (int, error) {
	if l.closed {
		return 0, ErrLineClosed
	}
	return l.buf.WriteString(s)
}

// Buffer exposes the internal buffer, severity marker included.
func (l *Line) Buffer() *bytes.Buffer {
	return &l.buf
}

// Severity returns the severity the line was begun with. Lines built with New
// report Info.
func (l *Line) Severity() Severity {
	return l.severity
}

// Closed reports whether the line has flushed.
func (l *Line) Closed() bool {
	return l.closed
}

// Close delivers the buffer to the callback. Only the first call delivers;
// later calls return ErrLineClosed. A panicking callback is recovered and
// returned as a *CallbackError.
func (l *Line) Close() error {
	if l.closed {
		return ErrLineClosed
	}
	l.closed = true

	if l.callback == nil {
		l.config.Logger.Error("log line dropped", "error", ErrInvalidCallback, "severity", l.severity.String())
		return ErrInvalidCallback
	}

	if err := l.deliver(l.buf.String()); err != nil {
		l.config.Logger.Error("log line callback failed", "error", err, "severity", l.severity.String())
		return err
	}

	return nil
}

func (l *Line) deliver(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackError{Value: r}
		}
	}()

	l.callback(text)
	return nil
}
