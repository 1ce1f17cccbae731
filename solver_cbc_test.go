package pulpgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverCBCDefaultsPath(t *testing.T) {
	s := NewSolverCBC()
	assert.Equal(t, "cbc", s.settings.path)
}

func TestSolverCBCUnavailableFailsFast(t *testing.T) {
	s := NewSolverCBC(WithPath("/no/such/cbc"))
	assert.False(t, s.Available())

	p := NewProblem("p", Minimize)
	err := s.Solve(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
