// Package bddx adapts github.com/dalzilio/rudd to the capability set the
// core reasoning engine assumes of its BDD collaborator (spec §6): literal
// construction, the standard Boolean connectives, existential quantification
// (plain and fused with a binary operator), satisfying-assignment counting,
// node counting, and a symbolic "exactly k" cardinality constraint. rudd
// supplies everything except the latter two, which this package builds on
// top of rudd's Allnodes traversal and Ite/Apply primitives respectively.
//
// The rest of the core codes against this package, never against rudd
// directly, the same way the teacher's internal/runtime is the only package
// that touches the Python VM's opcode dispatch.
package bddx

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/dalzilio/rudd"
)

// Node is a reference to a node in a Handle's BDD. Nodes from different
// Handles must never be mixed.
type Node = rudd.Node

// Handle owns one rudd BDD instance and exposes the operations the core
// needs over it. A SymbolicAdf owns exactly one Handle so that direct and
// dual variables can coexist in a single variable space (spec §4.1, §4.2);
// both encodings of that SymbolicAdf share it, and each Build call creates a
// new Handle.
type Handle struct {
	bdd    *rudd.BDD
	varnum int
}

// New creates a Handle with totalVarnum BDD variables.
func New(totalVarnum int) (*Handle, error) {
	if totalVarnum <= 0 {
		totalVarnum = 1
	}
	b, err := rudd.New(totalVarnum)
	if err != nil {
		return nil, fmt.Errorf("bddx: creating BDD: %w", err)
	}
	return &Handle{bdd: b, varnum: totalVarnum}, nil
}

// Varnum returns the total number of BDD variables reserved in this Handle.
func (h *Handle) Varnum() int { return h.varnum }

// True returns the constant-true node.
func (h *Handle) True() Node { return h.bdd.True() }

// False returns the constant-false node.
func (h *Handle) False() Node { return h.bdd.False() }

// Literal returns the literal for variable v, negated when polarity is false.
func (h *Handle) Literal(v int, polarity bool) Node {
	if polarity {
		return h.bdd.Ithvar(v)
	}
	return h.bdd.NIthvar(v)
}

// Not returns the negation of n.
func (h *Handle) Not(n Node) Node { return h.bdd.Not(n) }

// And folds n left-to-right with the AND connective, starting from true
// (spec §4.2: "left-fold over children starting from BDD true/false").
// And of zero nodes is true; of one node is that node, unchanged.
func (h *Handle) And(n ...Node) Node {
	if len(n) == 0 {
		return h.bdd.True()
	}
	acc := n[0]
	for _, x := range n[1:] {
		acc = h.bdd.Apply(acc, x, rudd.OPand)
	}
	return acc
}

// Or folds n left-to-right with the OR connective, starting from false.
func (h *Handle) Or(n ...Node) Node {
	if len(n) == 0 {
		return h.bdd.False()
	}
	acc := n[0]
	for _, x := range n[1:] {
		acc = h.bdd.Apply(acc, x, rudd.OPor)
	}
	return acc
}

// Xor returns the exclusive-or of a and b.
func (h *Handle) Xor(a, b Node) Node { return h.bdd.Apply(a, b, rudd.OPxor) }

// Iff returns the bi-implication (equivalence) of a and b.
func (h *Handle) Iff(a, b Node) Node { return h.bdd.Apply(a, b, rudd.OPbiimp) }

// Imp returns the material implication a -> b.
func (h *Handle) Imp(a, b Node) Node { return h.bdd.Apply(a, b, rudd.OPimp) }

// Ite computes if f then g else h.
func (h *Handle) Ite(f, g, elseN Node) Node { return h.bdd.Ite(f, g, elseN) }

// Exists existentially quantifies n over the variables in vars.
func (h *Handle) Exists(n Node, vars []int) Node {
	if len(vars) == 0 {
		return n
	}
	varset := h.bdd.Makeset(vars)
	return h.bdd.Exist(n, varset)
}

// AndExists computes the fused operation ∃vars. (a ∧ b), the
// binary_op_with_exists of spec §6, specialised to AND since that is the
// only fusion the reasoning engine needs (the dual-lift step and
// extend_with_more_ones).
func (h *Handle) AndExists(vars []int, a, b Node) Node {
	if len(vars) == 0 {
		return h.bdd.Apply(a, b, rudd.OPand)
	}
	varset := h.bdd.Makeset(vars)
	return h.bdd.AppEx(a, b, rudd.OPand, varset)
}

// IsTrue reports whether n is the constant-true node.
func (h *Handle) IsTrue(n Node) bool { return h.StructuralEqual(n, h.bdd.True()) }

// IsFalse reports whether n is the constant-false node.
func (h *Handle) IsFalse(n Node) bool { return h.StructuralEqual(n, h.bdd.False()) }

// StructuralEqual reports whether a and b denote the same BDD node.
func (h *Handle) StructuralEqual(a, b Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// NodeCount returns the number of BDD nodes reachable from n, used by the
// conjunction solver's smallest-first heuristic. rudd does not expose this
// directly, so we derive it from Allnodes, which already performs exactly
// this reachability walk for diagnostic/export purposes.
func (h *Handle) NodeCount(n Node) int {
	count := 0
	_ = h.bdd.Allnodes(func(id, level, low, high int) error {
		count++
		return nil
	}, n)
	return count
}

// Support returns the sorted, de-duplicated set of variable ids that n's
// Boolean function actually depends on. Used to validate that a model set's
// BDD only mentions variables known to its encoding (spec §3's "every BDD
// variable of s is among E's direct variables" invariant).
func (h *Handle) Support(n Node) []int {
	seen := make(map[int]struct{})
	_ = h.bdd.Allnodes(func(id, level, low, high int) error {
		if id <= 1 {
			// ids 0 and 1 are the constant nodes, which carry no variable.
			return nil
		}
		seen[level] = struct{}{}
		return nil
	}, n)
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// RawSatCount returns rudd's satisfying-assignment count for n, scaled to
// this Handle's full variable space (all Varnum variables, not just the
// ones the encoding that produced n actually uses). Callers normalise this
// down to the variables of interest; see symbolic.DirectEncoding and
// symbolic.DualEncoding's Count* methods.
func (h *Handle) RawSatCount(n Node) *big.Int {
	return h.bdd.Satcount(n)
}

// Err returns the accumulated error state of the underlying BDD, or nil.
// rudd reports failures by accumulating them on the BDD instance rather
// than returning them from every call (see rudd's errors.go); callers that
// perform a sequence of operations check this once at the end, the same
// way rudd's own example code does.
func (h *Handle) Err() error {
	if !h.bdd.Errored() {
		return nil
	}
	return fmt.Errorf("bddx: %s", h.bdd.Error())
}

// ExactlyK builds a BDD whose models are exactly the valuations of vars
// that set precisely k of them to true. rudd has no new_sat_exactly_k of
// its own, so this builds the standard cardinality-network BDD directly: a
// dynamic-programming table over (variable index, remaining count), folded
// right to left with Ite, linear in len(vars) for a fixed k.
func (h *Handle) ExactlyK(k int, vars []int) Node {
	m := len(vars)
	if k < 0 || k > m {
		return h.bdd.False()
	}

	// column[j] holds the BDD for "exactly j more ones are needed among the
	// variables processed so far" (processed right to left).
	column := make([]Node, k+1)
	column[0] = h.bdd.True()
	for j := 1; j <= k; j++ {
		column[j] = h.bdd.False()
	}

	for i := m - 1; i >= 0; i-- {
		next := make([]Node, k+1)
		lit := h.bdd.Ithvar(vars[i])
		next[0] = h.bdd.Ite(lit, h.bdd.False(), column[0])
		for j := 1; j <= k; j++ {
			next[j] = h.bdd.Ite(lit, column[j-1], column[j])
		}
		column = next
	}

	return column[k]
}
