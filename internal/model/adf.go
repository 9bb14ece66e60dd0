package model

import (
	"fmt"
	"sort"
)

// UnknownStatementError reports a reference to a statement that the ADF does
// not know about, either as a lookup argument or inside a condition.
type UnknownStatementError struct {
	Statement Statement
}

func (e *UnknownStatementError) Error() string {
	return fmt.Sprintf("model: unknown statement %s", e.Statement)
}

// ExpressionAdf is an in-memory Abstract Dialectical Framework: an ordered
// set of statements, each optionally carrying a ConditionExpression. A
// statement with no condition is free.
//
// Once built, an ExpressionAdf is immutable; the parser (or tests) populate
// one with NewExpressionAdf, then it is handed to the symbolic encoder.
type ExpressionAdf struct {
	order      []Statement
	conditions map[Statement]*ConditionExpression
	known      map[Statement]struct{}
}

// NewExpressionAdf builds an ExpressionAdf from an ordered, duplicate-free
// list of statements and a map from statement to its (optional) condition.
// Conditions referencing a statement absent from statements are rejected,
// per the data model's invariant.
func NewExpressionAdf(statements []Statement, conditions map[Statement]*ConditionExpression) (*ExpressionAdf, error) {
	known := make(map[Statement]struct{}, len(statements))
	for _, s := range statements {
		known[s] = struct{}{}
	}

	order := append([]Statement(nil), statements...)
	sort.Slice(order, func(i, j int) bool { return order[i].Less(order[j]) })

	adf := &ExpressionAdf{
		order:      order,
		conditions: make(map[Statement]*ConditionExpression, len(conditions)),
		known:      known,
	}

	for _, s := range order {
		cond, ok := conditions[s]
		if !ok || cond == nil {
			continue
		}
		var err error
		Walk(cond, func(e *ConditionExpression) {
			if err != nil {
				return
			}
			if ref, isRef := e.AsStatement(); isRef {
				if _, exists := known[ref]; !exists {
					err = &UnknownStatementError{Statement: ref}
				}
			}
		})
		if err != nil {
			return nil, err
		}
		adf.conditions[s] = cond
	}

	return adf, nil
}

// Statements returns all statements in canonical (ascending id) order.
func (a *ExpressionAdf) Statements() []Statement {
	return append([]Statement(nil), a.order...)
}

// Condition returns the condition expression for stmt, or nil if stmt is
// free or unknown. Use Has to distinguish "unknown" from "free".
func (a *ExpressionAdf) Condition(stmt Statement) *ConditionExpression {
	return a.conditions[stmt]
}

// Has reports whether stmt is part of this ADF.
func (a *ExpressionAdf) Has(stmt Statement) bool {
	_, ok := a.known[stmt]
	return ok
}

// IsFree reports whether stmt exists and carries no condition.
func (a *ExpressionAdf) IsFree(stmt Statement) bool {
	if !a.Has(stmt) {
		return false
	}
	return a.conditions[stmt] == nil
}
