package textadf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedSizeFormula(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want uint64
	}{
		{"constant", "s(0). ac(0, c(v)).", 1},
		{"statement-ref", "s(0). s(1). ac(0, 1).", 1},
		{"negation", "s(0). ac(0, neg(c(v))).", 2},
		{"and-three", "s(0). s(1). s(2). ac(0, and(1, 2, c(v))).", 6}, // 3 + (1+1+1)
		{"implication", "s(0). ac(0, imp(c(v), c(f))).", 3},
		{"equivalence", "s(0). ac(0, iff(c(v), c(f))).", 7}, // 3 + 2*(1+1)
		{"xor", "s(0). ac(0, xor(c(v), c(f))).", 7},
		{"free-statement-contributes-zero", "s(0). s(1). ac(0, c(v)).", 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			adf, err := Parse(test.src, "test")
			require.NoError(t, err)
			assert.Equal(t, test.want, ExpectedSize(adf))
		})
	}
}

func TestWriteBnetFreeStatementSelfUpdates(t *testing.T) {
	adf, err := Parse("s(0). s(1). ac(0, c(v)).", "test")
	require.NoError(t, err)

	out, err := WriteBnet(adf, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "v1, v1\n")
	assert.Contains(t, out, "v0, 1\n")
}

func TestWriteBnetConnectivesExpandToAndOrNot(t *testing.T) {
	adf, err := Parse("s(0). s(1). ac(0, and(1, neg(1))).", "test")
	require.NoError(t, err)

	out, err := WriteBnet(adf, 0)
	require.NoError(t, err)
	assert.Contains(t, out, "v0, v1 & !v1\n")
}

func TestWriteBnetRefusesAboveBound(t *testing.T) {
	adf, err := Parse("s(0). s(1). s(2). ac(0, and(1, 2, c(v))).", "test")
	require.NoError(t, err)

	_, err = WriteBnet(adf, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooLarge)

	out, err := WriteBnet(adf, 100)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestWriteBnetZeroBoundMeansUnbounded(t *testing.T) {
	adf, err := Parse("s(0). ac(0, c(v)).", "test")
	require.NoError(t, err)

	_, err = WriteBnet(adf, 0)
	assert.NoError(t, err)
}
