package pulpgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Not Solved", NotSolved.String())
	assert.Equal(t, "Optimal", Optimal.String())
	assert.Equal(t, "Infeasible", Infeasible.String())
	assert.Equal(t, "Unbounded", Unbounded.String())
}
