// Package interpretation implements the interpretation solver (C5): it
// turns a SymbolicAdf's per-statement condition BDDs into the fixed-point
// (complete two-valued) or monotone-pre-fixed-point (admissible
// three-valued) constraint set, then delegates the reduction to a
// conjunction.Strategy. It returns the raw result BDD; pkg/adf is
// responsible for wrapping that BDD with the encoding it belongs to, since
// model sets are public API and this package stays internal.
package interpretation

import (
	"context"

	"github.com/go-adf/adfbdd/internal/bddx"
	"github.com/go-adf/adfbdd/internal/conjunction"
	"github.com/go-adf/adfbdd/internal/symbolic"
)

// SolveCompleteTwoValued computes the BDD of all complete two-valued
// interpretations of direct: for every statement i with condition C_i, the
// constraint v_i <-> C_i; free statements contribute nothing (spec §4.4).
func SolveCompleteTwoValued(ctx context.Context, strategy conjunction.Strategy, direct *symbolic.DirectEncoding) (bddx.Node, error) {
	h := direct.Handle()
	vm := direct.VarMap()

	constraints := make([]bddx.Node, 0, vm.Len())
	for _, stmt := range vm.Statements() {
		if isCancelled(ctx) {
			return nil, &conjunction.CancelledError{}
		}

		condition, ok := direct.Condition(stmt)
		if !ok {
			// Free statement: genuinely unconstrained, so omitting its
			// constraint is both correct and an optimisation.
			continue
		}

		lit, err := vm.MakeLiteral(h, stmt, true)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, h.Iff(lit, condition))
	}

	return strategy.SolveConjunction(ctx, h, constraints)
}

// SolveAdmissible computes the BDD of all admissible three-valued
// interpretations of dual. It starts from the validity constraint (no
// statement is "impossible") and, for every statement i with dual
// conditions (P_i, N_i), adds P_i -> t_i and N_i -> f_i: the condition's
// possibility of a value gates the corresponding committed-value literal.
// Encoding both gates as implication rather than equivalence is what
// distinguishes admissibility from completeness (spec §4.4).
func SolveAdmissible(ctx context.Context, strategy conjunction.Strategy, dual *symbolic.DualEncoding) (bddx.Node, error) {
	h := dual.Handle()
	vm := dual.VarMap()

	constraints := make([]bddx.Node, 0, 1+2*vm.Len())
	constraints = append(constraints, dual.Validity())

	for _, stmt := range vm.Statements() {
		if isCancelled(ctx) {
			return nil, &conjunction.CancelledError{}
		}

		canBeTrue, canBeFalse, ok := dual.Condition(stmt)
		if !ok {
			continue
		}

		tLit, err := vm.MakePositiveLiteral(h, stmt, true)
		if err != nil {
			return nil, err
		}
		fLit, err := vm.MakeNegativeLiteral(h, stmt, true)
		if err != nil {
			return nil, err
		}

		constraints = append(constraints, h.Imp(canBeTrue, tLit), h.Imp(canBeFalse, fLit))
	}

	return strategy.SolveConjunction(ctx, h, constraints)
}

func isCancelled(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
