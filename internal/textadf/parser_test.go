package textadf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-adf/adfbdd/internal/model"
)

func TestParseDeclarationsAndConditions(t *testing.T) {
	src := `
		s(0).
		s(1).
		s(2).
		ac(0, c(v)).
		ac(1, and(0, neg(2))).
	`
	adf, err := Parse(src, "test")
	require.NoError(t, err)

	assert.Equal(t, []model.Statement{0, 1, 2}, adf.Statements())
	assert.True(t, adf.IsFree(2))
	assert.False(t, adf.IsFree(0))

	v, ok := adf.Condition(0).AsConstant()
	require.True(t, ok)
	assert.True(t, v)
}

func TestParseAllExpressionForms(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind model.ExprKind
	}{
		{"const-true", "s(0). ac(0, c(v)).", model.ExprConstant},
		{"const-false", "s(0). ac(0, c(f)).", model.ExprConstant},
		{"statement-ref", "s(0). s(1). ac(0, 1).", model.ExprStatement},
		{"negation", "s(0). ac(0, neg(c(v))).", model.ExprNegation},
		{"conjunction", "s(0). ac(0, and(c(v), c(f))).", model.ExprAnd},
		{"disjunction", "s(0). ac(0, or(c(v), c(f))).", model.ExprOr},
		{"implication", "s(0). ac(0, imp(c(v), c(f))).", model.ExprImplication},
		{"equivalence", "s(0). ac(0, iff(c(v), c(f))).", model.ExprEquivalence},
		{"exclusive-or", "s(0). ac(0, xor(c(v), c(f))).", model.ExprExclusiveOr},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			adf, err := Parse(test.src, "test")
			require.NoError(t, err)
			assert.Equal(t, test.kind, adf.Condition(0).Kind())
		})
	}
}

func TestParseAndOrAcceptMoreThanTwoChildren(t *testing.T) {
	adf, err := Parse("s(0). s(1). s(2). ac(0, and(1, 2, c(v))).", "test")
	require.NoError(t, err)

	children, ok := adf.Condition(0).AsAnd()
	require.True(t, ok)
	assert.Len(t, children, 3)
}

func TestParseRejectsUnknownStatementInConditon(t *testing.T) {
	_, err := Parse("s(0). ac(0, 99).", "test")
	assert.Error(t, err)
}

func TestParseRejectsConditionForUndeclaredStatement(t *testing.T) {
	_, err := Parse("ac(0, c(v)).", "test")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseRejectsDuplicateStatementDeclaration(t *testing.T) {
	_, err := Parse("s(0). s(0).", "test")
	assert.Error(t, err)
}

func TestParseRejectsDuplicateCondition(t *testing.T) {
	_, err := Parse("s(0). ac(0, c(v)). ac(0, c(f)).", "test")
	assert.Error(t, err)
}

func TestParseRejectsMalformedSyntax(t *testing.T) {
	cases := []string{
		"s(0",
		"s(0).\nac(0, bogus(1)).",
		"xyz(0).",
		"s(0). ac(0, c(xyz)).",
	}
	for _, src := range cases {
		_, err := Parse(src, "test")
		assert.Error(t, err, src)
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := Parse("s(0).\nac(5, c(v)).", "fixture.adf")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "fixture.adf", parseErr.Pos.Filename)
	assert.Equal(t, 2, parseErr.Pos.Line)
}
