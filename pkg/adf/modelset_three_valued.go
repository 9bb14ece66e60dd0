package adf

import (
	"github.com/go-adf/adfbdd/internal/bddx"
)

// ModelSetThreeValued is a symbolic set of three-valued interpretations of an
// Abstract Dialectical Framework, represented as a BDD over its
// DualEncoding's (can_be_true, can_be_false) variable pairs (spec §3, §4.5).
type ModelSetThreeValued struct {
	bdd      bddx.Node
	encoding *DualEncoding
}

// NewModelSetThreeValued wraps n as a model set over encoding. n must mention
// only encoding's dual variables, or ErrEncodingMismatch is returned.
func NewModelSetThreeValued(encoding *DualEncoding, n bddx.Node) (*ModelSetThreeValued, error) {
	if !encoding.inner.IsDualEncoded(n) {
		return nil, ErrEncodingMismatch
	}
	return &ModelSetThreeValued{bdd: n, encoding: encoding}, nil
}

// SymbolicSet returns the underlying BDD.
func (s *ModelSetThreeValued) SymbolicSet() bddx.Node { return s.bdd }

// Encoding returns the DualEncoding this set is built over.
func (s *ModelSetThreeValued) Encoding() *DualEncoding { return s.encoding }

// ModelCount returns the number of interpretations this set contains. The
// dual encoding's own counter is authoritative here: a raw 2^(2n) count would
// be wrong, since each statement only has three valid (can_be_true,
// can_be_false) combinations, not four (spec §4.5).
func (s *ModelSetThreeValued) ModelCount() float64 {
	return s.encoding.inner.CountDualValuations(s.bdd)
}

// IsEmpty reports whether this set contains no interpretations.
func (s *ModelSetThreeValued) IsEmpty() bool {
	return s.encoding.inner.Handle().IsFalse(s.bdd)
}

// Equal reports whether s and other denote the same set of interpretations
// over the same encoding.
func (s *ModelSetThreeValued) Equal(other *ModelSetThreeValued) bool {
	if s.encoding.inner != other.encoding.inner {
		return false
	}
	return s.encoding.inner.Handle().StructuralEqual(s.bdd, other.bdd)
}

// Intersect returns the set of interpretations in both s and other.
func (s *ModelSetThreeValued) Intersect(other *ModelSetThreeValued) (*ModelSetThreeValued, error) {
	if s.encoding.inner != other.encoding.inner {
		return nil, ErrEncodingMismatch
	}
	h := s.encoding.inner.Handle()
	return &ModelSetThreeValued{bdd: h.And(s.bdd, other.bdd), encoding: s.encoding}, nil
}

// Union returns the set of interpretations in either s or other.
func (s *ModelSetThreeValued) Union(other *ModelSetThreeValued) (*ModelSetThreeValued, error) {
	if s.encoding.inner != other.encoding.inner {
		return nil, ErrEncodingMismatch
	}
	h := s.encoding.inner.Handle()
	return &ModelSetThreeValued{bdd: h.Or(s.bdd, other.bdd), encoding: s.encoding}, nil
}

// Minus returns the set of interpretations in s but not other.
func (s *ModelSetThreeValued) Minus(other *ModelSetThreeValued) (*ModelSetThreeValued, error) {
	if s.encoding.inner != other.encoding.inner {
		return nil, ErrEncodingMismatch
	}
	h := s.encoding.inner.Handle()
	return &ModelSetThreeValued{bdd: h.And(s.bdd, h.Not(other.bdd)), encoding: s.encoding}, nil
}
