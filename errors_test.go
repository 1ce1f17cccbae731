package pulpgo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrPreservesSentinel(t *testing.T) {
	err := wrapErr(ErrDomain, "something went wrong")
	assert.ErrorIs(t, err, ErrDomain)
	assert.Contains(t, err.Error(), "something went wrong")
}

func TestWrapErrfFormats(t *testing.T) {
	err := wrapErrf(ErrValue, "bad value: %d", 42)
	assert.ErrorIs(t, err, ErrValue)
	assert.Contains(t, err.Error(), "bad value: 42")
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrType, ErrValue))
	assert.False(t, errors.Is(ErrIO, ErrState))
}
