package pulpgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSolverReturnsNilWhenNoBackendAvailable(t *testing.T) {
	opts := []Option{
		WithPath("/no/such/executable"),
	}
	s := DefaultSolver(opts...)
	assert.Nil(t, s)
}
