// Package auditlog carries the human-readable audit trail of a pipeline run.
package auditlog

import (
	"fmt"
	"sync"
)

// Sink receives audit lines. destination names the audit file; when
// suppressConsole is false the line is echoed to the process log as well.
type Sink interface {
	Message(destination, message string, suppressConsole bool)
}

// Logger binds a sink to one destination and console setting.
type Logger struct {
	sink        Sink
	destination string
	console     bool
}

// New returns a Logger writing to destination through sink.
func New(sink Sink, destination string, console bool) Logger {
	return Logger{sink: sink, destination: destination, console: console}
}

// Printf formats and emits one audit line. A zero Logger discards everything.
func (l Logger) Printf(format string, args ...any) {
	if l.sink == nil {
		return
	}
	l.sink.Message(l.destination, fmt.Sprintf(format, args...), !l.console)
}

// Nop discards all messages.
type Nop struct{}

// Message implements Sink.
func (Nop) Message(string, string, bool) {}

// Entry is one line captured by a Recorder.
type Entry struct {
	Destination     string
	Message         string
	SuppressConsole bool
}

// Recorder keeps audit lines in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// Message implements Sink.
func (r *Recorder) Message(destination, message string, suppressConsole bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Destination: destination, Message: message, SuppressConsole: suppressConsole})
}

// Entries returns a copy of the recorded lines.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the recorded message texts in order.
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}
