package adf

import (
	"github.com/go-adf/adfbdd/internal/bddx"
	"github.com/go-adf/adfbdd/internal/model"
)

// ModelSetTwoValued is a symbolic set of complete two-valued interpretations
// of an Abstract Dialectical Framework, represented as a BDD over its
// DirectEncoding's variables (spec §3, §4.5).
type ModelSetTwoValued struct {
	bdd      bddx.Node
	encoding *DirectEncoding
}

// NewModelSetTwoValued wraps n as a model set over encoding. n must mention
// only encoding's direct variables, or ErrEncodingMismatch is returned.
func NewModelSetTwoValued(encoding *DirectEncoding, n bddx.Node) (*ModelSetTwoValued, error) {
	if !encoding.inner.IsDirectEncoded(n) {
		return nil, ErrEncodingMismatch
	}
	return &ModelSetTwoValued{bdd: n, encoding: encoding}, nil
}

// SymbolicSet returns the underlying BDD.
func (s *ModelSetTwoValued) SymbolicSet() bddx.Node { return s.bdd }

// Encoding returns the DirectEncoding this set is built over.
func (s *ModelSetTwoValued) Encoding() *DirectEncoding { return s.encoding }

// ModelCount returns the number of interpretations this set contains,
// saturating to +Inf rather than overflowing (spec §4.5).
func (s *ModelSetTwoValued) ModelCount() float64 {
	return s.encoding.inner.CountDirectValuations(s.bdd)
}

// IsEmpty reports whether this set contains no interpretations.
func (s *ModelSetTwoValued) IsEmpty() bool {
	return s.encoding.inner.Handle().IsFalse(s.bdd)
}

// Equal reports whether s and other denote the same set of interpretations
// over the same encoding.
func (s *ModelSetTwoValued) Equal(other *ModelSetTwoValued) bool {
	if s.encoding.inner != other.encoding.inner {
		return false
	}
	return s.encoding.inner.Handle().StructuralEqual(s.bdd, other.bdd)
}

// Intersect returns the set of interpretations in both s and other.
func (s *ModelSetTwoValued) Intersect(other *ModelSetTwoValued) (*ModelSetTwoValued, error) {
	if s.encoding.inner != other.encoding.inner {
		return nil, ErrEncodingMismatch
	}
	h := s.encoding.inner.Handle()
	return &ModelSetTwoValued{bdd: h.And(s.bdd, other.bdd), encoding: s.encoding}, nil
}

// Union returns the set of interpretations in either s or other.
func (s *ModelSetTwoValued) Union(other *ModelSetTwoValued) (*ModelSetTwoValued, error) {
	if s.encoding.inner != other.encoding.inner {
		return nil, ErrEncodingMismatch
	}
	h := s.encoding.inner.Handle()
	return &ModelSetTwoValued{bdd: h.Or(s.bdd, other.bdd), encoding: s.encoding}, nil
}

// Minus returns the set of interpretations in s but not other.
func (s *ModelSetTwoValued) Minus(other *ModelSetTwoValued) (*ModelSetTwoValued, error) {
	if s.encoding.inner != other.encoding.inner {
		return nil, ErrEncodingMismatch
	}
	h := s.encoding.inner.Handle()
	return &ModelSetTwoValued{bdd: h.And(s.bdd, h.Not(other.bdd)), encoding: s.encoding}, nil
}

// MostZeroModel extracts the interpretation of s with the fewest statements
// set to true, breaking ties in favour of zeros at earlier statements (spec
// §9's fixed tie-break rule, needed so the result is deterministic). It first
// restricts s to its interpretations with the fewest ones, then greedily
// tries false for each statement in ascending order, keeping that choice
// whenever the remaining set stays satisfiable.
func (s *ModelSetTwoValued) MostZeroModel() (map[model.Statement]bool, error) {
	if s.IsEmpty() {
		return nil, ErrEmpty
	}

	h := s.encoding.inner.Handle()
	vm := s.encoding.inner.VarMap()

	current := s.bdd
	vars := vm.VariableIDs()
	for k := 0; k <= len(vars); k++ {
		withK := h.And(s.bdd, h.ExactlyK(k, vars))
		if !h.IsFalse(withK) {
			current = withK
			break
		}
	}

	assignment := make(map[model.Statement]bool, vm.Len())
	for _, stmt := range vm.Statements() {
		v, err := vm.Lookup(stmt)
		if err != nil {
			return nil, err
		}
		withFalse := h.And(current, h.Literal(v, false))
		if !h.IsFalse(withFalse) {
			current = withFalse
			assignment[stmt] = false
			continue
		}
		current = h.And(current, h.Literal(v, true))
		assignment[stmt] = true
	}

	return assignment, nil
}

// MkExactlyKOneStatements builds the model set of every interpretation over
// encoding that sets exactly k statements to true, independent of any ADF's
// conditions (spec §4.5).
func MkExactlyKOneStatements(encoding *DirectEncoding, k int) *ModelSetTwoValued {
	h := encoding.inner.Handle()
	vars := encoding.inner.VarMap().VariableIDs()
	return &ModelSetTwoValued{bdd: h.ExactlyK(k, vars), encoding: encoding}
}

// ExtendWithMoreOnes returns the upward closure of s: every interpretation
// that agrees with some interpretation in s wherever that interpretation is
// true, and is true for zero or more additional statements (spec §4.5). For
// each direct variable v, in reverse statement order, the interpretations
// that have v false are projected out and re-added with v forced true, then
// unioned back in; variables that contribute nothing are left alone.
func (s *ModelSetTwoValued) ExtendWithMoreOnes() *ModelSetTwoValued {
	h := s.encoding.inner.Handle()
	vars := s.encoding.inner.VarMap().VariableIDs()

	result := s.bdd
	for i := len(vars) - 1; i >= 0; i-- {
		v := vars[i]
		withoutV := h.AndExists([]int{v}, result, h.Literal(v, false))
		forcedOn := h.And(withoutV, h.Literal(v, true))
		extended := h.Or(result, forcedOn)
		if h.StructuralEqual(extended, result) {
			continue
		}
		result = extended
	}

	return &ModelSetTwoValued{bdd: result, encoding: s.encoding}
}
