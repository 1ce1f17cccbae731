package pulpgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverCLPDefaultsPath(t *testing.T) {
	s := NewSolverCLP()
	assert.Equal(t, "clp", s.settings.path)
}

func TestSolverCLPUnavailableFailsFast(t *testing.T) {
	s := NewSolverCLP(WithPath("/no/such/clp"))
	assert.False(t, s.Available())

	p := NewProblem("p", Minimize)
	err := s.Solve(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
