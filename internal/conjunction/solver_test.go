package conjunction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-adf/adfbdd/internal/bddx"
)

func TestNaiveGreedyEmptyInputReturnsTrue(t *testing.T) {
	h, err := bddx.New(4)
	require.NoError(t, err)

	result, err := NaiveGreedy{}.SolveConjunction(context.Background(), h, nil)
	require.NoError(t, err)
	assert.True(t, h.IsTrue(result))
}

func TestNaiveGreedySingleInputReturnedUnchanged(t *testing.T) {
	h, err := bddx.New(4)
	require.NoError(t, err)

	lit := h.Literal(0, true)
	result, err := NaiveGreedy{}.SolveConjunction(context.Background(), h, []bddx.Node{lit})
	require.NoError(t, err)
	assert.True(t, h.StructuralEqual(result, lit))
}

func TestNaiveGreedyConjoinsAllInputs(t *testing.T) {
	h, err := bddx.New(8)
	require.NoError(t, err)

	bdds := []bddx.Node{
		h.Literal(0, true),
		h.Literal(1, true),
		h.Literal(2, false),
	}

	result, err := NaiveGreedy{}.SolveConjunction(context.Background(), h, bdds)
	require.NoError(t, err)

	expected := h.And(bdds...)
	assert.True(t, h.StructuralEqual(result, expected))
}

func TestNaiveGreedyRespectsCancellation(t *testing.T) {
	h, err := bddx.New(8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bdds := []bddx.Node{h.Literal(0, true), h.Literal(1, true)}
	_, err = NaiveGreedy{}.SolveConjunction(ctx, h, bdds)
	require.Error(t, err)

	var cancelled *CancelledError
	assert.ErrorAs(t, err, &cancelled)
}

func TestNaiveGreedyNotCancelledWithLiveContext(t *testing.T) {
	h, err := bddx.New(4)
	require.NoError(t, err)
	bdds := []bddx.Node{h.Literal(0, true), h.Literal(1, false)}

	_, err = NaiveGreedy{}.SolveConjunction(context.Background(), h, bdds)
	assert.NoError(t, err)
}
