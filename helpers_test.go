package pulpgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLPSumMixedTerms(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	e, err := LPSum(Coef(2, x), y, 5.0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.Coefficient(x))
	assert.Equal(t, 1.0, e.Coefficient(y))
	assert.Equal(t, 5.0, e.Constant())
}

func TestLPDotMismatchedLengths(t *testing.T) {
	x := NewVariable("x")
	_, err := LPDot([]*Variable{x}, []float64{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValue)
}

func TestLPDotBuildsWeightedSum(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	e, err := LPDot([]*Variable{x, y}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3.0, e.Coefficient(x))
	assert.Equal(t, 4.0, e.Coefficient(y))
}

func TestValueHelper(t *testing.T) {
	x := NewVariable("x")
	_, ok := Value(x)
	assert.False(t, ok)

	x.SetValue(7)
	v, ok := Value(x)
	require.True(t, ok)
	assert.Equal(t, 7.0, v)

	c, ok := Value(3.5)
	require.True(t, ok)
	assert.Equal(t, 3.5, c)
}

func TestValueOrDefaultHelper(t *testing.T) {
	x := NewVariable("x").Positive()
	assert.Equal(t, 0.0, ValueOrDefault(x))
}

func TestFormatG12TrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "3", formatG12(3.0))
	assert.Equal(t, "3.5", formatG12(3.5))
}

func TestFormatE5Sign(t *testing.T) {
	assert.Equal(t, " 1.00000e+00", formatE5(1.0))
	assert.Equal(t, "-1.00000e+00", formatE5(-1.0))
}
