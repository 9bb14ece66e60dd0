package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-adf/adfbdd/internal/model"
)

func mustAdf(t *testing.T, statements []model.Statement, conditions map[model.Statement]*model.ConditionExpression) *model.ExpressionAdf {
	t.Helper()
	adf, err := model.NewExpressionAdf(statements, conditions)
	require.NoError(t, err)
	return adf
}

func TestBuildDirectEncodingRoundTripsConstantCondition(t *testing.T) {
	raw := mustAdf(t, []model.Statement{0}, map[model.Statement]*model.ConditionExpression{
		0: model.Constant(true),
	})

	compiled, err := Build(raw)
	require.NoError(t, err)

	direct := compiled.DirectEncoding()
	h := direct.Handle()

	cond, ok := direct.Condition(0)
	require.True(t, ok)
	assert.True(t, h.IsTrue(cond))
}

func TestBuildDirectEncodingTranslatesStatementReference(t *testing.T) {
	raw := mustAdf(t, []model.Statement{0, 1}, map[model.Statement]*model.ConditionExpression{
		1: model.StatementRef(0),
	})

	compiled, err := Build(raw)
	require.NoError(t, err)

	direct := compiled.DirectEncoding()
	h := direct.Handle()
	v0, err := direct.VarMap().Lookup(0)
	require.NoError(t, err)

	cond, ok := direct.Condition(1)
	require.True(t, ok)
	assert.True(t, h.StructuralEqual(cond, h.Literal(v0, true)))
}

func TestBuildFreeStatementHasNoConditionInEitherEncoding(t *testing.T) {
	raw := mustAdf(t, []model.Statement{0, 1}, map[model.Statement]*model.ConditionExpression{
		0: model.Constant(true),
	})

	compiled, err := Build(raw)
	require.NoError(t, err)

	_, ok := compiled.DirectEncoding().Condition(1)
	assert.False(t, ok)
	_, _, ok = compiled.DualEncoding().Condition(1)
	assert.False(t, ok)
}

func TestBuildAndOrFoldsChildrenLeftToRight(t *testing.T) {
	raw := mustAdf(t, []model.Statement{0, 1, 2, 3}, map[model.Statement]*model.ConditionExpression{
		3: model.And(model.StatementRef(0), model.StatementRef(1), model.StatementRef(2)),
	})

	compiled, err := Build(raw)
	require.NoError(t, err)

	direct := compiled.DirectEncoding()
	h := direct.Handle()
	v0, _ := direct.VarMap().Lookup(0)
	v1, _ := direct.VarMap().Lookup(1)
	v2, _ := direct.VarMap().Lookup(2)

	cond, ok := direct.Condition(3)
	require.True(t, ok)
	expected := h.And(h.Literal(v0, true), h.Literal(v1, true), h.Literal(v2, true))
	assert.True(t, h.StructuralEqual(cond, expected))
}

func TestBuildDualConditionsAreComplementary(t *testing.T) {
	raw := mustAdf(t, []model.Statement{0, 1}, map[model.Statement]*model.ConditionExpression{
		1: model.StatementRef(0),
	})

	compiled, err := Build(raw)
	require.NoError(t, err)

	dual := compiled.DualEncoding()
	h := dual.Handle()

	canBeTrue, canBeFalse, ok := dual.Condition(1)
	require.True(t, ok)

	// Every valid dual valuation must make at least one of
	// can_be_true/can_be_false hold, since the direct condition is always
	// definitely true or false; lift only admits valid valuations.
	assert.True(t, h.StructuralEqual(h.Or(canBeTrue, canBeFalse), dual.Validity()))
}

func TestIsDirectEncodedRejectsForeignVariables(t *testing.T) {
	raw := mustAdf(t, []model.Statement{0}, map[model.Statement]*model.ConditionExpression{
		0: model.Constant(true),
	})
	compiled, err := Build(raw)
	require.NoError(t, err)

	direct := compiled.DirectEncoding()
	h := direct.Handle()

	// A dual variable id is never among the direct encoding's variables.
	dualVar, _, _ := compiled.DualEncoding().VarMap().Lookup(0)
	assert.False(t, direct.IsDirectEncoded(h.Literal(dualVar, true)))
	assert.True(t, direct.IsDirectEncoded(h.True()))
}

func TestValidityAssertsNoStatementIsImpossible(t *testing.T) {
	raw := mustAdf(t, []model.Statement{0, 1}, nil)
	compiled, err := Build(raw)
	require.NoError(t, err)

	dual := compiled.DualEncoding()

	// 3^2 = 9 dual valuations are valid out of the encoding's own
	// 2-bits-per-statement space (4 combinations per statement, one of
	// which -- both bits false -- is excluded by validity).
	count := dual.CountDualValuations(dual.Validity())
	assert.Equal(t, float64(9), count)
}
