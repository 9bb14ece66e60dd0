package adf

import "errors"

// ErrCancelled is returned by Solver methods when solving was aborted via
// the context passed to them. It is the only recoverable failure kind in
// the solver paths (spec §7); every other error kind below is a
// programmer error and should be treated as fatal rather than retried.
var ErrCancelled = errors.New("adf: solve was cancelled")

// ErrEncodingMismatch is returned by binary model-set operations (Intersect,
// Union, Minus) when the two operands were built from different encoding
// instances, and by model-set construction when a BDD mentions variables
// outside its encoding.
var ErrEncodingMismatch = errors.New("adf: model sets reference different encodings")

// ErrUnknownStatement is wrapped by NewExpressionAdf when a condition
// references a statement that does not belong to the ADF.
var ErrUnknownStatement = errors.New("adf: unknown statement")

// ErrEmpty is returned by extraction operations (such as MostZeroModel)
// called on an empty model set.
var ErrEmpty = errors.New("adf: model set is empty")
