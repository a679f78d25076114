package logline

import (
	"fmt"
	"strings"
)

// Severity is the coarse importance tag carried by a log line. It is data
// only, nothing in this package filters on it.
type Severity uint8

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether s is one of the defined severities.
func (s Severity) Valid() bool {
	return s <= Error
}

// ParseSeverity converts a severity name, case-insensitively, into a Severity.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "INFO":
		return Info, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "ERROR":
		return Error, nil
	default:
		return Info, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
	}
}
