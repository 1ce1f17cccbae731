package pulpgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCBCSolutionReadsValuesAndReportsUndefined(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	input := "1 x 3.5 0\n2 y 5.5 0\n"
	status, values, err := parseCBCSolution(strings.NewReader(input), []*Variable{x, y})
	require.NoError(t, err)
	assert.Equal(t, Undefined, status)
	assert.Equal(t, 3.5, values["x"])
	assert.Equal(t, 5.5, values["y"])
}

func TestParseCBCSolutionLeavesUnmentionedVariablesAtZero(t *testing.T) {
	x := NewVariable("x")
	y := NewVariable("y")
	input := "1 x 3.5 0\n"
	_, values, err := parseCBCSolution(strings.NewReader(input), []*Variable{x, y})
	require.NoError(t, err)
	assert.Equal(t, 3.5, values["x"])
	assert.Equal(t, 0.0, values["y"])
}

func TestParseCLPSolutionDetectsInfeasibleRows(t *testing.T) {
	x := NewVariable("x")
	input := "**1 x 3.5 0\n"
	status, values, err := parseCLPSolution(strings.NewReader(input), []*Variable{x}, nil)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, status)
	assert.Equal(t, 3.5, values["x"])
}

func TestParseCLPSolutionAppliesReverseNames(t *testing.T) {
	x := NewVariable("x")
	input := "1 X0000000 3.5 0\n"
	reverse := map[string]string{"X0000000": "x"}
	status, values, err := parseCLPSolution(strings.NewReader(input), []*Variable{x}, reverse)
	require.NoError(t, err)
	assert.Equal(t, Optimal, status)
	assert.Equal(t, 3.5, values["x"])
}

func TestParseCLPSolutionStopsOnShortLine(t *testing.T) {
	x := NewVariable("x")
	input := "1 x 3.5 0\n\n1 y 9.0 0\n"
	_, values, err := parseCLPSolution(strings.NewReader(input), []*Variable{x}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.5, values["x"])
	_, hasY := values["y"]
	assert.False(t, hasY)
}
