package pulpgo

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Logger receives diagnostic output from a Solver while it drives an
// external process: the command line invoked and the process's combined
// stdout/stderr, both only when msg verbosity is enabled.
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns a Logger backed by the given zerolog.Logger,
// emitting each Print call as a single debug-level event.
func NewZerologLogger(log zerolog.Logger) Logger {
	return &zerologLogger{log: log}
}

func (z *zerologLogger) Print(v ...interface{}) {
	if len(v) == 1 {
		if s, ok := v[0].(string); ok {
			z.log.Debug().Msg(s)
			return
		}
	}
	z.log.Debug().Msg(fmt.Sprint(v...))
}
