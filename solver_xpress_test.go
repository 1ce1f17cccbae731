package pulpgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverXPRESSDefaultsPath(t *testing.T) {
	s := NewSolverXPRESS()
	assert.Equal(t, "optimizer", s.settings.path)
}

func TestSolverXPRESSUnavailableFailsFast(t *testing.T) {
	s := NewSolverXPRESS(WithPath("/no/such/optimizer"))
	assert.False(t, s.Available())

	p := NewProblem("p", Minimize)
	err := s.Solve(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
