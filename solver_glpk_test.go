package pulpgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverGLPKDefaultsPath(t *testing.T) {
	s := NewSolverGLPK()
	assert.Equal(t, "glpsol", s.settings.path)
}

func TestNewSolverGLPKRespectsExplicitPath(t *testing.T) {
	s := NewSolverGLPK(WithPath("/custom/glpsol"))
	assert.Equal(t, "/custom/glpsol", s.settings.path)
}

func TestSolverGLPKUnavailableFailsFast(t *testing.T) {
	s := NewSolverGLPK(WithPath("/no/such/glpsol"))
	assert.False(t, s.Available())

	p := NewProblem("p", Minimize)
	err := s.Solve(context.Background(), p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
