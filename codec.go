package logline

// Entry is the decoded form of a flushed line.
type Entry struct {
	Severity Severity
	Message  string
}

// String returns the wire text of e, see Encode.
func (e Entry) String() string {
	return Encode(e.Severity, e.Message)
}

// Encode prefixes msg with the one byte severity marker.
func Encode(sev Severity, msg string) string {
	return string([]byte{byte(sev)}) + msg
}

// SeverityOf returns the leading marker of text, or Info for empty text.
func SeverityOf(text string) Severity {
	if len(text) > 0 {
		return Severity(text[0])
	}
	return Info
}

// MessageOf returns text without its leading marker.
func MessageOf(text string) string {
	if len(text) > 1 {
		return text[1:]
	}
	return ""
}

func Decode(text string) Entry {
	return Entry{
		Severity: SeverityOf(text),
		Message:  MessageOf(text),
	}
}

// Handle adapts a structured handler into a Callback.
func Handle(fn func(e Entry)) Callback {
	return func(text string) {
		fn(Decode(text))
	}
}
