package logging

import "github.com/vvka-141/seedscan/pkg/seedscan"

// NullLogger is a no-op logger that discards all log messages.
// Used by tests and by commands running with diagnostics off.
type NullLogger struct{}

var _ seedscan.Logger = (*NullLogger)(nil)

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(format string, args ...interface{}) {}

func (l *NullLogger) Info(format string, args ...interface{}) {}

func (l *NullLogger) Error(format string, args ...interface{}) {}
