package varmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-adf/adfbdd/internal/bddx"
	"github.com/go-adf/adfbdd/internal/model"
)

func TestDualMapAssignsAdjacentPositiveNegativePairs(t *testing.T) {
	m := NewDualMap([]model.Statement{0, 1})

	p0, n0, err := m.Lookup(0)
	require.NoError(t, err)
	assert.Equal(t, 1, p0)
	assert.Equal(t, 2, n0)

	p1, n1, err := m.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, 5, p1)
	assert.Equal(t, 6, n1)
}

func TestDualMapPositivePrecedesNegativeInOrder(t *testing.T) {
	m := NewDualMap([]model.Statement{0, 1, 2})
	pos := m.PositiveVariableIDs()
	neg := m.NegativeVariableIDs()

	for i := range pos {
		assert.Less(t, pos[i], neg[i])
	}
}

func TestDualMapLookupUnknownStatement(t *testing.T) {
	m := NewDualMap([]model.Statement{0})
	_, _, err := m.Lookup(42)
	require.Error(t, err)
}

func TestDualMapLiterals(t *testing.T) {
	m := NewDualMap([]model.Statement{0})
	h, err := bddx.New(4)
	require.NoError(t, err)

	pos, err := m.MakePositiveLiteral(h, 0, true)
	require.NoError(t, err)
	assert.True(t, h.StructuralEqual(pos, h.Literal(1, true)))

	neg, err := m.MakeNegativeLiteral(h, 0, true)
	require.NoError(t, err)
	assert.True(t, h.StructuralEqual(neg, h.Literal(2, true)))
}

func TestDualMapLen(t *testing.T) {
	assert.Equal(t, 2, NewDualMap([]model.Statement{0, 1}).Len())
}
