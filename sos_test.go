package pulpgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSOSSetAddPreservesOrder(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	s := NewSOSSet("set1")
	s.Add(y, 2)
	s.Add(x, 1)

	members := s.Members()
	require := assert.New(t)
	require.Equal(2, s.Len())
	require.Equal("y", members[0].Name())
	require.Equal("x", members[1].Name())
	require.Equal(1.0, s.Weight(x))
}

func TestSOSSetAddOverwritesWeightWithoutReordering(t *testing.T) {
	x := NewVariable("x")
	s := NewSOSSet("set1")
	s.Add(x, 1)
	s.Add(x, 5)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 5.0, s.Weight(x))
}

func TestSOSSetCopyIsIndependent(t *testing.T) {
	x := NewVariable("x")
	s := NewSOSSet("set1")
	s.Add(x, 1)
	cp := s.Copy()
	cp.Add(NewVariable("y"), 2)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, cp.Len())
}
