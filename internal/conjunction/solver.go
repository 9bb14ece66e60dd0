// Package conjunction implements the pluggable BDD conjunction solver (C4):
// reducing an ordered collection of BDDs to a single BDD equivalent to
// their conjunction, cancellable via context.Context the same way the
// teacher's VM checks for cancellation between opcodes
// (internal/runtime/vm.go, ExecuteWithContext).
package conjunction

import (
	"context"
	"fmt"

	"github.com/go-adf/adfbdd/internal/bddx"
)

// CancelledError is returned when a solve is aborted because its context
// was cancelled. It is the only recoverable failure a Strategy may return
// (spec §4.3); anything else is a programmer error or propagated unchanged
// from the underlying BDD library.
type CancelledError struct{}

func (e *CancelledError) Error() string {
	return "conjunction solve was cancelled"
}

// Strategy is the capability abstraction every conjunction strategy
// implements (spec §4.3/§9): solve_conjunction(&[BDD]) -> Cancellable<BDD>.
// Implementations are value objects; the interpretation solver dispatches
// to one dynamically so alternative heuristics can be swapped in without
// touching callers.
type Strategy interface {
	SolveConjunction(ctx context.Context, h *bddx.Handle, bdds []bddx.Node) (bddx.Node, error)
}

// NaiveGreedy is the reference strategy of spec §4.3: repeatedly conjoin
// the two smallest-node-count BDDs in the working set until one remains.
// Ties on node count are broken by insertion order (stable). Empty input
// returns BDD true; a single input is returned unchanged.
type NaiveGreedy struct{}

// SolveConjunction implements Strategy.
func (NaiveGreedy) SolveConjunction(ctx context.Context, h *bddx.Handle, bdds []bddx.Node) (bddx.Node, error) {
	if len(bdds) == 0 {
		return h.True(), nil
	}
	if len(bdds) == 1 {
		return bdds[0], nil
	}

	working := make([]bddx.Node, len(bdds))
	copy(working, bdds)

	for len(working) > 1 {
		if isCancelled(ctx) {
			return nil, &CancelledError{}
		}

		i, j := smallestTwo(h, working)
		a, b := working[i], working[j]

		merged := h.And(a, b)
		if err := h.Err(); err != nil {
			return nil, fmt.Errorf("conjunction: %w", err)
		}

		// Remove j first (j > i, since smallestTwo returns i<j), then
		// replace i with the merged result, preserving the insertion
		// order of everything else -- the tie-break rule for future
		// rounds.
		working = append(working[:j], working[j+1:]...)
		working[i] = merged

		if isCancelled(ctx) {
			return nil, &CancelledError{}
		}
	}

	return working[0], nil
}

// smallestTwo returns the indices (i < j) of the two smallest-node-count
// BDDs in working, breaking ties by the lower index (stable, i.e.
// insertion order).
func smallestTwo(h *bddx.Handle, working []bddx.Node) (int, int) {
	sizes := make([]int, len(working))
	for i, n := range working {
		sizes[i] = h.NodeCount(n)
	}

	first, second := 0, 1
	if sizes[second] < sizes[first] {
		first, second = second, first
	}
	for k := 2; k < len(working); k++ {
		switch {
		case sizes[k] < sizes[first]:
			first, second = k, first
		case sizes[k] < sizes[second]:
			second = k
		}
	}

	if first > second {
		first, second = second, first
	}
	return first, second
}

// isCancelled reports whether ctx has already been cancelled, without
// blocking -- the "process-observable cancellation flag" of spec §5.
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
