// Package varmap assigns BDD variable identifiers to ADF statements under
// the two schemes the core uses: one variable per statement (DirectMap) and
// a positive/negative pair per statement (DualMap). Both maps share a single
// stride of 4 variable ids per statement, which leaves room for a dual pair
// alongside the direct variable without renumbering anything (spec §3/§4.1).
package varmap

import (
	"fmt"

	"github.com/go-adf/adfbdd/internal/bddx"
	"github.com/go-adf/adfbdd/internal/model"
)

// stride is the number of BDD variable ids reserved per statement. Offset 0
// is the direct variable, offsets 1 and 2 are the dual positive/negative
// pair, and offset 3 is left unused so a future auxiliary variable could be
// added without renumbering anything already allocated.
const stride = 4

// UnknownStatementError reports a lookup for a statement absent from a map.
type UnknownStatementError struct {
	Statement model.Statement
}

func (e *UnknownStatementError) Error() string {
	return fmt.Sprintf("varmap: unknown statement %s", e.Statement)
}

// DirectMap is an injective mapping from Statement to a single BDD variable
// id. The order of variable ids agrees with the order of statements.
type DirectMap struct {
	order []model.Statement
	vars  map[model.Statement]int
}

// NewDirectMap builds a DirectMap from statements in canonical order.
func NewDirectMap(statements []model.Statement) *DirectMap {
	vars := make(map[model.Statement]int, len(statements))
	for i, s := range statements {
		vars[s] = i * stride
	}
	return &DirectMap{order: append([]model.Statement(nil), statements...), vars: vars}
}

// Lookup returns the BDD variable id for stmt.
func (m *DirectMap) Lookup(stmt model.Statement) (int, error) {
	v, ok := m.vars[stmt]
	if !ok {
		return 0, &UnknownStatementError{Statement: stmt}
	}
	return v, nil
}

// Statements returns all mapped statements in statement order.
func (m *DirectMap) Statements() []model.Statement {
	return append([]model.Statement(nil), m.order...)
}

// VariableIDs returns the direct BDD variable ids, in statement order.
func (m *DirectMap) VariableIDs() []int {
	ids := make([]int, len(m.order))
	for i, s := range m.order {
		ids[i] = m.vars[s]
	}
	return ids
}

// Len returns the number of mapped statements.
func (m *DirectMap) Len() int {
	return len(m.order)
}

// MakeLiteral returns the BDD literal for stmt under the given handle, with
// the given polarity (spec §4.1's make_literal).
func (m *DirectMap) MakeLiteral(h *bddx.Handle, stmt model.Statement, polarity bool) (bddx.Node, error) {
	v, err := m.Lookup(stmt)
	if err != nil {
		return nil, err
	}
	return h.Literal(v, polarity), nil
}

// MaxVariableID returns the highest variable id used by this map, or -1 if
// the map is empty.
func (m *DirectMap) MaxVariableID() int {
	if len(m.order) == 0 {
		return -1
	}
	return (len(m.order)-1)*stride + 0
}
