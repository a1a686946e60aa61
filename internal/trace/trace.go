// Package trace provides an optional, structured step logger for the
// resolver. A Logger is always present on a Query — never nil — so
// resolver code never needs a nil check; callers that don't want tracing
// get NoOp, which discards everything at zero cost beyond the interface
// call. The concrete backend is github.com/hashicorp/go-hclog, for
// leveled, structured logging.
package trace

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// Logger receives key/value diagnostic events from the resolver. keyvals
// is an alternating name/value sequence, matching hclog's convention.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
}

// noopLogger discards every event.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}

// NoOp returns a Logger that discards all events.
func NoOp() Logger { return noopLogger{} }

// hclogAdapter wraps an hclog.Logger to satisfy Logger.
type hclogAdapter struct {
	l hclog.Logger
}

func (h hclogAdapter) Debug(msg string, keyvals ...interface{}) {
	h.l.Debug(msg, keyvals...)
}

// New returns a Logger backed by hclog, with the given name, writing to
// stderr at the given level name (e.g. "debug", "warn", "off"). An
// unrecognized level falls back to hclog's default (Info).
func New(name, level string) Logger {
	return hclogAdapter{l: hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})}
}
