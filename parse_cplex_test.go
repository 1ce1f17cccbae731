package pulpgo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cplexFixture(statusSuffix string) string {
	lines := []string{
		"header0",
		"header1",
		"header2",
		strings.Repeat(" ", 18) + statusSuffix,
		" SECTION 2",
		"colheader1",
		"colheader2",
		"colheader3",
		"  C1 x 0 3.5",
		"  C2 y 0 5.5",
		"",
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestParseCPLEXSolutionOptimal(t *testing.T) {
	status, values, err := parseCPLEXSolution(strings.NewReader(cplexFixture("OPTIMAL SOLN extra")))
	require.NoError(t, err)
	assert.Equal(t, Optimal, status)
	assert.Equal(t, 3.5, values["x"])
	assert.Equal(t, 5.5, values["y"])
}

func TestParseCPLEXSolutionUnknownStatus(t *testing.T) {
	_, _, err := parseCPLEXSolution(strings.NewReader(cplexFixture("GARBAGE SOLN extra")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValue)
}

func TestParseCPLEXSolutionMissingStatusLine(t *testing.T) {
	_, _, err := parseCPLEXSolution(strings.NewReader("a\nb\nc\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}
