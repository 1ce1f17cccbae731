package pulpgo

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLPBasicProblem(t *testing.T) {
	p := NewProblem("example", Minimize)
	x := NewVariable("x").Bounds(0, 4)
	y := NewVariable("y").Bounds(-1, 1)

	obj, err := LPSum(x, Coef(4, y))
	require.NoError(t, err)
	p.SetObjective(obj, "")

	c, err := x.Add(y)
	require.NoError(t, err)
	lhs, err := c.LE(5.0)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(lhs, "c1"))

	var buf strings.Builder
	vars, err := p.WriteLP(&buf, true, false)
	require.NoError(t, err)
	assert.Len(t, vars, 2)

	out := buf.String()
	assert.Contains(t, out, "\\* example *\\\n")
	assert.Contains(t, out, "Minimize\n")
	assert.Contains(t, out, "OBJ: x + 4 y\n")
	assert.Contains(t, out, "Subject To\n")
	assert.Contains(t, out, "c1: x + y <= 5\n")
	assert.Contains(t, out, "Bounds\n")
	assert.Contains(t, out, "End\n")
}

func TestWriteLPObjectiveIncludesConstant(t *testing.T) {
	p := NewProblem("withconst", Minimize)
	x := NewVariable("x").Positive()
	obj, err := LPSum(x, 7.0)
	require.NoError(t, err)
	p.SetObjective(obj, "")

	var buf strings.Builder
	_, err = p.WriteLP(&buf, false, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "OBJ: x + 7\n")
}

func TestWriteLPMIPSectionsGeneralsAndBinaries(t *testing.T) {
	p := NewProblem("mip", Minimize)
	i := NewBoundedVariable("i", 0, 10, Integer)
	b := NewBinaryVariable("b")

	obj, err := LPSum(i, b)
	require.NoError(t, err)
	p.SetObjective(obj, "")
	c, err := i.Add(b)
	require.NoError(t, err)
	lhs, err := c.LE(5.0)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(lhs, ""))

	var buf strings.Builder
	_, err = p.WriteLP(&buf, false, true)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Generals\n")
	assert.Contains(t, out, "i\n")
	assert.Contains(t, out, "Binaries\n")
	assert.Contains(t, out, "b\n")
}

func TestWriteLPConstraintSuppressesNegativeZeroRHS(t *testing.T) {
	p := NewProblem("volumebalance", Minimize)
	a := NewVariable("a")
	b := NewVariable("b")
	p.SetObjective(NewExpressionFromVariable(a), "")

	diff, err := a.Sub(b)
	require.NoError(t, err)
	c, err := diff.EQ(0.0)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(c, "balance"))

	var buf strings.Builder
	_, err = p.WriteLP(&buf, false, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "balance: a - b = 0\n")
	assert.NotContains(t, buf.String(), "-0")
}

func TestLPVariableBoundLineKeepsIntegerLowerBoundWithUnboundedUpper(t *testing.T) {
	z := NewBoundedVariable("z", 0, math.Inf(1), Integer)
	assert.Equal(t, "z", lpVariableBoundLine(z))

	free := NewBoundedVariable("w", math.Inf(-1), math.Inf(1), Integer)
	assert.True(t, free.IsFree())
}

func TestLPVariableBoundLineUnsetLowerBoundRendersNegInf(t *testing.T) {
	v := NewBoundedVariable("v", math.Inf(-1), 5, Continuous)
	assert.Equal(t, "-inf <= v <= 5", lpVariableBoundLine(v))
}

func TestWriteLPFixObjectiveRestoresAfterWrite(t *testing.T) {
	p := NewProblem("noobj", Minimize)
	var buf strings.Builder
	_, err := p.WriteLP(&buf, false, false)
	require.NoError(t, err)
	assert.Nil(t, p.Objective())
}
