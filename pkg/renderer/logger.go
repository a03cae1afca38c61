package renderer

import "fmt"

// Logger receives progress and diagnostic output from the renderers.
// Callers can substitute their own implementation to capture that output
// instead of writing to stdout.
type Logger interface {
	Printf(format string, args ...any)
}

// DefaultLogger writes to stdout.
type DefaultLogger struct{}

// NewDefaultLogger returns a Logger that writes to stdout.
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

func (DefaultLogger) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}
