package pulpgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverCPLEXDefaultsPath(t *testing.T) {
	s := NewSolverCPLEX()
	assert.Equal(t, "cplex", s.settings.path)
}

func TestSolverCPLEXUnavailableFailsFast(t *testing.T) {
	s := NewSolverCPLEX(WithPath("/no/such/cplex"))
	assert.False(t, s.Available())

	p := NewProblem("p", Minimize)
	err := s.Solve(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
