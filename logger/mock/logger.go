package mocklogger

import (
	"sync"

	"github.com/hugolhafner/go-logline/logger"
)

var _ logger.Logger = (*MockLogger)(nil)

type LogEntry struct {
	Level   logger.LogLevel
	Message string
	KV      []any
}

// MockLogger records every call. Loggers derived through With share the
// recorded entries with their parent.
type MockLogger struct {
	mu      *sync.Mutex
	entries *[]LogEntry
	args    []any
}

func New() *MockLogger {
	return &MockLogger{
		mu:      &sync.Mutex{},
		entries: &[]LogEntry{},
	}
}

func (m *MockLogger) Log(level logger.LogLevel, msg string, kv ...any) {
	all := make([]any, 0, len(m.args)+len(kv))
	all = append(all, m.args...)
	all = append(all, kv...)

	m.mu.Lock()
	defer m.mu.Unlock()
	*m.entries = append(
		*m.entries, LogEntry{
			Level:   level,
			Message: msg,
			KV:      all,
		},
	)
}

// Entries returns a copy of the recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(*m.entries))
	copy(out, *m.entries)
	return out
}

func (m *MockLogger) Level() logger.LogLevel {
	return logger.DebugLevel
}

func (m *MockLogger) With(kv ...any) logger.Logger {
	args := make([]any, 0, len(m.args)+len(kv))
	args = append(args, m.args...)
	args = append(args, kv...)
	return &MockLogger{
		mu:      m.mu,
		entries: m.entries,
		args:    args,
	}
}

func (m *MockLogger) Debug(msg string, kv ...any) {
	m.Log(logger.DebugLevel, msg, kv...)
}

func (m *MockLogger) Info(msg string, kv ...any) {
	m.Log(logger.InfoLevel, msg, kv...)
}

func (m *MockLogger) Warn(msg string, kv ...any) {
	m.Log(logger.WarnLevel, msg, kv...)
}

func (m *MockLogger) Error(msg string, kv ...any) {
	m.Log(logger.ErrorLevel, msg, kv...)
}
