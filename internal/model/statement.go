// Package model holds the in-memory representation of an Abstract Dialectical
// Framework: statements and the acceptance condition expressions that govern
// them. It plays the same role here that internal/model's AST types play for
// the teacher's compiler front end, except the tree being modeled is a
// Boolean condition instead of a Python program.
package model

import "fmt"

// Statement is an opaque, totally ordered identifier. Statements are created
// by the (external) parser and referenced thereafter by id; the zero value is
// a valid statement (id 0).
type Statement uint32

// String implements fmt.Stringer for diagnostics and log lines.
func (s Statement) String() string {
	return fmt.Sprintf("s(%d)", uint32(s))
}

// Less orders statements by id, which is also the canonical order used when
// assigning BDD variables.
func (s Statement) Less(other Statement) bool {
	return s < other
}
