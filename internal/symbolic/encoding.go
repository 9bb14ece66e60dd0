// Package symbolic builds the two BDD encodings of an Abstract Dialectical
// Framework (direct and dual, spec §3/§4.2) from an in-memory ExpressionAdf.
// It is the symbolic-ADF half of C3 in the core's component design: the
// counterpart of the teacher's internal/compiler, translating an AST
// (here, a Boolean condition tree) down to a lower-level representation
// (here, BDD nodes instead of bytecode).
package symbolic

import (
	"fmt"
	"math/big"

	"github.com/go-adf/adfbdd/internal/bddx"
	"github.com/go-adf/adfbdd/internal/model"
	"github.com/go-adf/adfbdd/internal/varmap"
)

// stride mirrors varmap's internal stride; it is re-declared here (rather
// than exported from varmap) because only the encoding builder needs to
// reason about the total variable budget of the shared Handle.
const stride = 4

// DirectEncoding holds a DirectMap and the per-statement condition BDDs
// built over it. Statements absent from conditions are free.
type DirectEncoding struct {
	handle     *bddx.Handle
	varMap     *varmap.DirectMap
	conditions map[model.Statement]bddx.Node
}

// VarMap returns the direct variable map.
func (e *DirectEncoding) VarMap() *varmap.DirectMap { return e.varMap }

// Handle returns the shared BDD handle backing this encoding.
func (e *DirectEncoding) Handle() *bddx.Handle { return e.handle }

// Condition returns the direct-encoded BDD condition for stmt, if any.
func (e *DirectEncoding) Condition(stmt model.Statement) (bddx.Node, bool) {
	n, ok := e.conditions[stmt]
	return n, ok
}

// ConditionalStatements returns the statements that carry a condition, in
// no particular order.
func (e *DirectEncoding) ConditionalStatements() []model.Statement {
	out := make([]model.Statement, 0, len(e.conditions))
	for s := range e.conditions {
		out = append(out, s)
	}
	return out
}

// IsDirectEncoded reports whether n's BDD variables are all among this
// encoding's direct variables. Used to validate a ModelSetTwoValued at
// construction time (spec §3's "every BDD variable of s is among E's
// direct variables" invariant).
func (e *DirectEncoding) IsDirectEncoded(n bddx.Node) bool {
	direct := make(map[int]struct{}, e.varMap.Len())
	for _, v := range e.varMap.VariableIDs() {
		direct[v] = struct{}{}
	}
	for _, v := range e.handle.Support(n) {
		if _, ok := direct[v]; !ok {
			return false
		}
	}
	return true
}

// CountDirectValuations counts the satisfying assignments of n over this
// encoding's direct variables alone (spec §4.5's model_count), correcting
// for the fact that the shared Handle reserves many more variables (dual
// and spare stride slots) than the direct encoding uses. Overflow saturates
// to +Inf rather than erroring.
func (e *DirectEncoding) CountDirectValuations(n bddx.Node) float64 {
	return normalizedCount(e.handle, n, e.varMap.Len())
}

// DualEncoding holds a DualMap and the per-statement (can_be_true,
// can_be_false) BDD pairs built over it. Statements absent from conditions
// are free.
type DualEncoding struct {
	handle     *bddx.Handle
	varMap     *varmap.DualMap
	conditions map[model.Statement][2]bddx.Node
}

// VarMap returns the dual variable map.
func (e *DualEncoding) VarMap() *varmap.DualMap { return e.varMap }

// Handle returns the shared BDD handle backing this encoding.
func (e *DualEncoding) Handle() *bddx.Handle { return e.handle }

// Condition returns (can_be_true, can_be_false) for stmt, if any.
func (e *DualEncoding) Condition(stmt model.Statement) (canBeTrue, canBeFalse bddx.Node, ok bool) {
	pair, found := e.conditions[stmt]
	if !found {
		return nil, nil, false
	}
	return pair[0], pair[1], true
}

// ConditionalStatements returns the statements that carry a condition, in
// no particular order.
func (e *DualEncoding) ConditionalStatements() []model.Statement {
	out := make([]model.Statement, 0, len(e.conditions))
	for s := range e.conditions {
		out = append(out, s)
	}
	return out
}

// IsDualEncoded reports whether n's BDD variables are all among this
// encoding's dual variables.
func (e *DualEncoding) IsDualEncoded(n bddx.Node) bool {
	dual := make(map[int]struct{}, 2*e.varMap.Len())
	for _, v := range e.varMap.PositiveVariableIDs() {
		dual[v] = struct{}{}
	}
	for _, v := range e.varMap.NegativeVariableIDs() {
		dual[v] = struct{}{}
	}
	for _, v := range e.handle.Support(n) {
		if _, ok := dual[v]; !ok {
			return false
		}
	}
	return true
}

// CountDualValuations counts the satisfying assignments of n over this
// encoding's dual variables alone (spec §4.5: "the encoding's
// count_dual_valuations is the authoritative counter", since raw 2^(2n)
// counting would be wrong -- each statement contributes three valid dual
// assignments, not four). n is therefore restricted to Validity() before
// counting. Overflow saturates to +Inf.
func (e *DualEncoding) CountDualValuations(n bddx.Node) float64 {
	return normalizedCount(e.handle, e.handle.And(n, e.Validity()), 2*e.varMap.Len())
}

// Validity returns the BDD asserting that every statement has at least one
// of (t_i, f_i) set -- i.e. no statement is "impossible" -- which is the
// starting point for solve_admissible (spec §4.4).
func (e *DualEncoding) Validity() bddx.Node {
	clauses := make([]bddx.Node, 0, e.varMap.Len())
	for _, s := range e.varMap.Statements() {
		p, n, _ := e.varMap.Lookup(s)
		clauses = append(clauses, e.handle.Or(e.handle.Literal(p, true), e.handle.Literal(n, true)))
	}
	return e.handle.And(clauses...)
}

// normalizedCount divides rudd's raw, full-Varnum-scaled satisfying
// assignment count by 2^(handle.Varnum()-usedVars) so the result reflects
// only the usedVars variables that the given encoding actually occupies,
// per spec §4.5. Saturates to +Inf on overflow.
func normalizedCount(h *bddx.Handle, n bddx.Node, usedVars int) float64 {
	raw := h.RawSatCount(n)
	shift := h.Varnum() - usedVars
	if shift > 0 {
		raw = new(big.Int).Rsh(raw, uint(shift))
	}
	f := new(big.Float).SetInt(raw)
	result, _ := f.Float64()
	return result
}

// errorf is a small helper so construction errors read consistently with
// the rest of the core's error style (see pkg/adf/errors.go).
func errorf(format string, args ...any) error {
	return fmt.Errorf("symbolic: "+format, args...)
}
