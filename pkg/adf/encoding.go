package adf

import (
	"github.com/go-adf/adfbdd/internal/model"
	"github.com/go-adf/adfbdd/internal/symbolic"
)

// DirectEncoding is the public handle to an ADF's direct (one-variable-per-
// statement) BDD encoding. It wraps the internal representation the same
// way pkg/rage.State wraps the teacher's internal VM: callers outside this
// module can hold and pass the value around, but cannot reach into it.
type DirectEncoding struct {
	inner *symbolic.DirectEncoding
}

// Statements returns the statements carrying an explicit condition under
// this encoding.
func (e *DirectEncoding) Statements() []model.Statement {
	return e.inner.ConditionalStatements()
}

// DualEncoding is the public handle to an ADF's dual (possibility-bit-pair)
// BDD encoding.
type DualEncoding struct {
	inner *symbolic.DualEncoding
}

// Statements returns the statements carrying an explicit condition under
// this encoding.
func (e *DualEncoding) Statements() []model.Statement {
	return e.inner.ConditionalStatements()
}

// SymbolicAdf is the public handle to an ADF compiled down to its two BDD
// encodings (spec §4.2). Build one with Build.
type SymbolicAdf struct {
	inner  *symbolic.SymbolicAdf
	direct *DirectEncoding
	dual   *DualEncoding
}

// Direct returns the direct encoding.
func (a *SymbolicAdf) Direct() *DirectEncoding { return a.direct }

// Dual returns the dual encoding.
func (a *SymbolicAdf) Dual() *DualEncoding { return a.dual }

// Build compiles adf into its symbolic BDD encodings.
func Build(adf *ExpressionAdf) (*SymbolicAdf, error) {
	inner, err := symbolic.Build(adf.inner)
	if err != nil {
		return nil, err
	}
	return &SymbolicAdf{
		inner:  inner,
		direct: &DirectEncoding{inner: inner.DirectEncoding()},
		dual:   &DualEncoding{inner: inner.DualEncoding()},
	}, nil
}
