// Package logging provides a minimal logging interface and adapters for the
// caikit client.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) the client uses for request observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (the client default)
//   - WithRequest for attaching per-request correlation attributes
package logging

import "log/slog"

// Logger is the minimal logging interface accepted by the client. Users can
// plug any structured logger behind it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NoOpLogger discards all log records.
type NoOpLogger struct{}

// NewNoOpLogger creates a Logger that discards everything.
func NewNoOpLogger() Logger { return NoOpLogger{} }

// Debug discards the record.
func (NoOpLogger) Debug(string, ...any) {}

// Info discards the record.
func (NoOpLogger) Info(string, ...any) {}

// Warn discards the record.
func (NoOpLogger) Warn(string, ...any) {}

// Error discards the record.
func (NoOpLogger) Error(string, ...any) {}

// requestLogger decorates a Logger with fixed per-request attributes.
type requestLogger struct {
	base  Logger
	attrs []any
}

// WithRequest returns a Logger that appends the request correlation id, the
// endpoint and the model id to every record.
func WithRequest(base Logger, requestID, endpoint, modelID string) Logger {
	return &requestLogger{
		base:  base,
		attrs: []any{"request_id", requestID, "endpoint", endpoint, "model_id", modelID},
	}
}

func (l *requestLogger) Debug(msg string, args ...any) { l.base.Debug(msg, append(args, l.attrs...)...) }
func (l *requestLogger) Info(msg string, args ...any)  { l.base.Info(msg, append(args, l.attrs...)...) }
func (l *requestLogger) Warn(msg string, args ...any)  { l.base.Warn(msg, append(args, l.attrs...)...) }
func (l *requestLogger) Error(msg string, args ...any) { l.base.Error(msg, append(args, l.attrs...)...) }
