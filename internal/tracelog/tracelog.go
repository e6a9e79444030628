// Package tracelog provides the machine's optional per-instruction execution
// trace.
// Plain, line-oriented diagnostic output like this has no other use in the
// module, so it stays on the standard log package rather than pulling in a
// structured-logging dependency for a single call site.
package tracelog

import (
	"log"
)

// Tracer receives a line of execution trace per instruction cycle. A nil
// Tracer (the zero value of the interface) means tracing is off; callers
// must check for nil rather than relying on a no-op implementation, since
// trace formatting runs on the machine's hot path.
type Tracer interface {
	Tracef(format string, args ...interface{})
}

// Logger is a Tracer backed by the standard library logger.
type Logger struct {
	l *log.Logger
}

// New returns a Logger writing through l.
func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

func (t *Logger) Tracef(format string, args ...interface{}) {
	t.l.Printf(format, args...)
}
