// Package adf is the public API of the symbolic Abstract Dialectical
// Framework reasoning engine: build an ExpressionAdf, compile it to a
// SymbolicAdf, then solve for its complete two-valued or admissible
// three-valued interpretations with a Solver.
//
// Basic usage:
//
//	raw, err := adf.NewExpressionAdf(
//		[]adf.Statement{0, 1},
//		map[adf.Statement]*adf.Condition{1: adf.Stmt(0)},
//	)
//	compiled, err := adf.Build(raw)
//	solver, err := adf.NewSolver(adf.DefaultConfig())
//	complete, err := solver.SolveCompleteTwoValued(context.Background(), compiled)
package adf

import (
	"context"
	"fmt"
	"time"

	"github.com/go-adf/adfbdd/internal/conjunction"
	"github.com/go-adf/adfbdd/internal/interpretation"
	"github.com/go-adf/adfbdd/internal/model"
)

// Statement is an opaque, totally ordered statement identifier.
type Statement = model.Statement

// Condition is a Boolean acceptance-condition expression over Statements.
// Build one with Const, Stmt, Not, And, Or, Implies, Equiv, and Xor.
type Condition = model.ConditionExpression

// Const builds a constant-valued condition.
func Const(v bool) *Condition { return model.Constant(v) }

// Stmt builds a condition that is true exactly when stmt holds.
func Stmt(stmt Statement) *Condition { return model.StatementRef(stmt) }

// Not builds the negation of child.
func Not(child *Condition) *Condition { return model.Negate(child) }

// And builds a conjunction over a non-empty sequence of children.
func And(children ...*Condition) *Condition { return model.And(children...) }

// Or builds a disjunction over a non-empty sequence of children.
func Or(children ...*Condition) *Condition { return model.Or(children...) }

// Implies builds the implication l -> r.
func Implies(l, r *Condition) *Condition { return model.Implies(l, r) }

// Equiv builds the bi-implication l <-> r.
func Equiv(l, r *Condition) *Condition { return model.Equiv(l, r) }

// Xor builds the exclusive-or l xor r.
func Xor(l, r *Condition) *Condition { return model.Xor(l, r) }

// ExpressionAdf is an in-memory Abstract Dialectical Framework: an ordered,
// duplicate-free set of statements, each optionally carrying a Condition. A
// statement with no condition is free (spec §3).
type ExpressionAdf struct {
	inner *model.ExpressionAdf
}

// NewExpressionAdf builds an ExpressionAdf. Conditions referencing a
// statement absent from statements return an error wrapping
// ErrUnknownStatement.
func NewExpressionAdf(statements []Statement, conditions map[Statement]*Condition) (*ExpressionAdf, error) {
	inner, err := model.NewExpressionAdf(statements, conditions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStatement, err)
	}
	return &ExpressionAdf{inner: inner}, nil
}

// Statements returns all statements in canonical (ascending id) order.
func (a *ExpressionAdf) Statements() []Statement { return a.inner.Statements() }

// IsFree reports whether stmt exists in a and carries no condition.
func (a *ExpressionAdf) IsFree(stmt Statement) bool { return a.inner.IsFree(stmt) }

// Solver runs the conjunction.Strategy selected by a Config against a
// SymbolicAdf's encodings, turning the resulting BDD into a public model
// set (spec §4.3/§4.4). A Solver is safe for concurrent use across distinct
// SymbolicAdf values, since it carries no per-run state of its own.
type Solver struct {
	cfg      Config
	strategy conjunction.Strategy
}

// NewSolver builds a Solver from cfg, resolving its SolverStrategy and
// filling in any zero-valued fields with their defaults.
func NewSolver(cfg Config) (*Solver, error) {
	normalized, strategy, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	return &Solver{cfg: normalized, strategy: strategy}, nil
}

// SolveCompleteTwoValued computes the set of complete two-valued
// interpretations of adf (spec §4.4): for every statement with a condition,
// its truth value must agree with its condition evaluated under the whole
// interpretation; this is a fixed-point characterisation solved by
// conjoining per-statement equivalence constraints.
func (s *Solver) SolveCompleteTwoValued(ctx context.Context, adf *SymbolicAdf) (*ModelSetTwoValued, error) {
	s.cfg.Logger.Debug("solving complete two-valued interpretations", "strategy", s.cfg.SolverStrategy)

	bdd, err := interpretation.SolveCompleteTwoValued(ctx, s.strategy, adf.inner.DirectEncoding())
	if err != nil {
		return nil, translateSolveErr(err)
	}
	return &ModelSetTwoValued{bdd: bdd, encoding: adf.direct}, nil
}

// SolveAdmissible computes the set of admissible three-valued
// interpretations of adf (spec §4.4): every statement's possibility of a
// value must be consistent with its condition's possibility, starting from
// the validity constraint that no statement is impossible.
func (s *Solver) SolveAdmissible(ctx context.Context, adf *SymbolicAdf) (*ModelSetThreeValued, error) {
	s.cfg.Logger.Debug("solving admissible three-valued interpretations", "strategy", s.cfg.SolverStrategy)

	bdd, err := interpretation.SolveAdmissible(ctx, s.strategy, adf.inner.DualEncoding())
	if err != nil {
		return nil, translateSolveErr(err)
	}
	return &ModelSetThreeValued{bdd: bdd, encoding: adf.dual}, nil
}

// SolveCompleteTwoValuedWithTimeout is SolveCompleteTwoValued with a
// background context bounded by timeout, for callers that would rather not
// manage a context.Context themselves.
func (s *Solver) SolveCompleteTwoValuedWithTimeout(timeout time.Duration, adf *SymbolicAdf) (*ModelSetTwoValued, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.SolveCompleteTwoValued(ctx, adf)
}

// SolveAdmissibleWithTimeout is SolveAdmissible with a background context
// bounded by timeout.
func (s *Solver) SolveAdmissibleWithTimeout(timeout time.Duration, adf *SymbolicAdf) (*ModelSetThreeValued, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.SolveAdmissible(ctx, adf)
}

// translateSolveErr maps the internal cancellation error to the public
// ErrCancelled sentinel; every other error is a programmer or BDD-library
// failure and is propagated unchanged.
func translateSolveErr(err error) error {
	if _, ok := err.(*conjunction.CancelledError); ok {
		return ErrCancelled
	}
	return err
}
