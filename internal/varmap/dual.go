package varmap

import (
	"github.com/go-adf/adfbdd/internal/bddx"
	"github.com/go-adf/adfbdd/internal/model"
)

// DualMap is an injective mapping from Statement to a (positive, negative)
// pair of BDD variable ids, with positive preceding negative in BDD order,
// both following statement order. Each pair is allocated adjacent to, and
// after, the corresponding DirectMap variable (offsets stride*i+1 and
// stride*i+2), so direct and dual variables can be mixed in one BDD.
type DualMap struct {
	order []model.Statement
	pos   map[model.Statement]int
	neg   map[model.Statement]int
}

// NewDualMap builds a DualMap from statements in canonical order.
func NewDualMap(statements []model.Statement) *DualMap {
	pos := make(map[model.Statement]int, len(statements))
	neg := make(map[model.Statement]int, len(statements))
	for i, s := range statements {
		pos[s] = i*stride + 1
		neg[s] = i*stride + 2
	}
	return &DualMap{order: append([]model.Statement(nil), statements...), pos: pos, neg: neg}
}

// Lookup returns the (positive, negative) BDD variable ids for stmt.
func (m *DualMap) Lookup(stmt model.Statement) (positive, negative int, err error) {
	p, ok := m.pos[stmt]
	if !ok {
		return 0, 0, &UnknownStatementError{Statement: stmt}
	}
	return p, m.neg[stmt], nil
}

// Statements returns all mapped statements in statement order.
func (m *DualMap) Statements() []model.Statement {
	return append([]model.Statement(nil), m.order...)
}

// PositiveVariableIDs returns the positive ("can be true") variable ids, in
// statement order.
func (m *DualMap) PositiveVariableIDs() []int {
	ids := make([]int, len(m.order))
	for i, s := range m.order {
		ids[i] = m.pos[s]
	}
	return ids
}

// NegativeVariableIDs returns the negative ("can be false") variable ids, in
// statement order.
func (m *DualMap) NegativeVariableIDs() []int {
	ids := make([]int, len(m.order))
	for i, s := range m.order {
		ids[i] = m.neg[s]
	}
	return ids
}

// Len returns the number of mapped statements.
func (m *DualMap) Len() int {
	return len(m.order)
}

// MakePositiveLiteral returns the "can be true" literal for stmt.
func (m *DualMap) MakePositiveLiteral(h *bddx.Handle, stmt model.Statement, polarity bool) (bddx.Node, error) {
	p, _, err := m.Lookup(stmt)
	if err != nil {
		return nil, err
	}
	return h.Literal(p, polarity), nil
}

// MakeNegativeLiteral returns the "can be false" literal for stmt.
func (m *DualMap) MakeNegativeLiteral(h *bddx.Handle, stmt model.Statement, polarity bool) (bddx.Node, error) {
	_, n, err := m.Lookup(stmt)
	if err != nil {
		return nil, err
	}
	return h.Literal(n, polarity), nil
}
