package pulpgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteMPSBasicSections(t *testing.T) {
	p := NewProblem("example", Minimize)
	x := NewVariable("x").Bounds(0, 4)
	y := NewVariable("y").Positive()

	obj, err := LPSum(x, Coef(4, y))
	require.NoError(t, err)
	p.SetObjective(obj, "")

	c, err := x.Add(y)
	require.NoError(t, err)
	lhs, err := c.LE(5.0)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(lhs, "c1"))

	var buf strings.Builder
	vars, varNames, rowNames, objName, err := p.WriteMPS(&buf, 0, false, false)
	require.NoError(t, err)
	assert.Len(t, vars, 2)
	assert.Nil(t, varNames)
	assert.Nil(t, rowNames)
	assert.Equal(t, "OBJ", objName)

	out := buf.String()
	assert.Contains(t, out, "*SENSE:Minimize\n")
	assert.Contains(t, out, "ROWS\n")
	assert.Contains(t, out, " N  OBJ\n")
	assert.Contains(t, out, " L  c1\n")
	assert.Contains(t, out, "COLUMNS\n")
	assert.Contains(t, out, "RHS\n")
	assert.Contains(t, out, "BOUNDS\n")
	assert.Contains(t, out, "ENDATA\n")
}

func TestWriteMPSRenameProducesNormalizedNames(t *testing.T) {
	p := NewProblem("example", Minimize)
	x := NewVariable("x").Positive()
	obj := NewExpressionFromVariable(x)
	p.SetObjective(obj, "")
	c, err := x.LE(5.0)
	require.NoError(t, err)
	require.NoError(t, p.AddConstraint(c, "cap"))

	var buf strings.Builder
	_, varNames, rowNames, objName, err := p.WriteMPS(&buf, 0, true, false)
	require.NoError(t, err)
	assert.Equal(t, "X0000000", varNames[x.Name()])
	assert.Equal(t, "C0000000", rowNames["cap"])
	assert.Equal(t, "OBJ", objName)
	assert.Contains(t, buf.String(), "NAME          MODEL\n")
}

func TestWriteMPSFixedBoundUsesFX(t *testing.T) {
	p := NewProblem("fixed", Minimize)
	x := NewBoundedVariable("x", 3, 3, Continuous)
	p.SetObjective(NewExpressionFromVariable(x), "")

	var buf strings.Builder
	_, _, _, _, err := p.WriteMPS(&buf, 0, false, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), " FX BND       x")
}

func TestWriteMPSBinaryUsesBV(t *testing.T) {
	p := NewProblem("bin", Minimize)
	b := NewBinaryVariable("b")
	p.SetObjective(NewExpressionFromVariable(b), "")

	var buf strings.Builder
	_, _, _, _, err := p.WriteMPS(&buf, 0, false, true)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), " BV BND       b")
}

func TestWriteMPSSuppressesNegativeZeroRHS(t *testing.T) {
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
	_, _, _, _, err = p.WriteMPS(&buf, 0, false, false)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, formatE5(0))
	assert.NotContains(t, out, "-0.00000e+00")
}

func TestWriteMPSNegatesObjectiveWhenSenseDiffers(t *testing.T) {
	p := NewProblem("negated", Minimize)
	x := NewVariable("x").Positive()
	p.SetObjective(NewExpressionFromVariable(x), "")

	var buf strings.Builder
	_, _, _, _, err := p.WriteMPS(&buf, Maximize, false, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "*SENSE:Maximize\n")
	assert.Contains(t, buf.String(), formatE5(-1))
}
