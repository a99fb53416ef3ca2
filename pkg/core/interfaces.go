package core

// Logger interface for texture diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
