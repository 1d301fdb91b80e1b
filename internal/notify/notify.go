// Package notify delivers transient user-facing messages.
//
// The core treats the sink as a collaborator: it fires messages and never
// waits for, or learns about, their fate. Hosts pick an implementation —
// a Toaster for interactive displays, a LogSink for headless runs.
package notify

import "log/slog"

// Sink receives transient user-facing messages. Implementations must not
// block and must not fail the caller.
type Sink interface {
	Notify(message string)
}

// LogSink routes messages to the default slog logger.
type LogSink struct{}

// Notify logs the message at info level.
func (LogSink) Notify(message string) {
	slog.Info("toast", "message", message)
}

// Multi fans a message out to several sinks in order.
type Multi []Sink

// Notify delivers the message to every sink.
func (m Multi) Notify(message string) {
	for _, sink := range m {
		sink.Notify(message)
	}
}
