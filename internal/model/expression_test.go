package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionExpressionAccessors(t *testing.T) {
	tests := []struct {
		name string
		expr *ConditionExpression
		kind ExprKind
	}{
		{"constant", Constant(true), ExprConstant},
		{"statement", StatementRef(3), ExprStatement},
		{"negation", Negate(Constant(false)), ExprNegation},
		{"and", And(Constant(true), Constant(false)), ExprAnd},
		{"or", Or(Constant(true), Constant(false)), ExprOr},
		{"implication", Implies(Constant(true), Constant(false)), ExprImplication},
		{"equivalence", Equiv(Constant(true), Constant(false)), ExprEquivalence},
		{"xor", Xor(Constant(true), Constant(false)), ExprExclusiveOr},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.kind, test.expr.Kind())
		})
	}
}

func TestConstantAccessor(t *testing.T) {
	v, ok := Constant(true).AsConstant()
	require.True(t, ok)
	assert.True(t, v)

	_, ok = StatementRef(0).AsConstant()
	assert.False(t, ok)
}

func TestAndOrPanicOnEmpty(t *testing.T) {
	assert.Panics(t, func() { And() })
	assert.Panics(t, func() { Or() })
}

func TestAndOrPreserveChildOrder(t *testing.T) {
	a, b, c := StatementRef(0), StatementRef(1), StatementRef(2)
	children, ok := And(a, b, c).AsAnd()
	require.True(t, ok)
	assert.Equal(t, []*ConditionExpression{a, b, c}, children)
}

func TestWalkVisitsEveryNode(t *testing.T) {
	expr := Implies(And(StatementRef(0), Negate(StatementRef(1))), Constant(true))

	var kinds []ExprKind
	Walk(expr, func(e *ConditionExpression) {
		kinds = append(kinds, e.Kind())
	})

	assert.Len(t, kinds, 6)
	assert.Contains(t, kinds, ExprImplication)
	assert.Contains(t, kinds, ExprAnd)
	assert.Contains(t, kinds, ExprNegation)
	assert.Contains(t, kinds, ExprStatement)
	assert.Contains(t, kinds, ExprConstant)
}

func TestWalkDeepNestingDoesNotOverflow(t *testing.T) {
	expr := Constant(true)
	for i := 0; i < 100000; i++ {
		expr = Negate(expr)
	}

	count := 0
	assert.NotPanics(t, func() {
		Walk(expr, func(*ConditionExpression) { count++ })
	})
	assert.Equal(t, 100001, count)
}
