package pulpgo

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNoopLoggerDiscardsOutput(t *testing.T) {
	var l Logger = noopLogger{}
	l.Print("anything")
}

func TestZerologLoggerEmitsDebugEvent(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	l := NewZerologLogger(zl)

	l.Print("running solver")

	assert.Contains(t, buf.String(), "running solver")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}

func TestZerologLoggerJoinsMultipleArgs(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	l := NewZerologLogger(zl)

	l.Print("status:", 42)

	assert.Contains(t, buf.String(), "status:42")
}
