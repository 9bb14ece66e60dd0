package textadf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-adf/adfbdd/internal/model"
)

// ErrTooLarge is returned by WriteBnet when an ADF's expected output size
// exceeds the caller's maxOutputEstimate (spec §6's writer refusal).
var ErrTooLarge = fmt.Errorf("textadf: expected output size exceeds configured bound")

// ExpectedSize estimates the number of output tokens writing adf's
// conditions would take, following the formula named in spec §6: a
// statement reference or constant costs 1; a negation costs 1 plus its
// child; an n-ary and/or costs n plus the sum of its children; an
// implication costs 1 plus the sum of its sides; an equivalence or
// exclusive-or costs 3 plus twice the sum of its sides (their expansion
// into and/or/not roughly doubles each side).
func ExpectedSize(adf *model.ExpressionAdf) uint64 {
	var total uint64
	for _, stmt := range adf.Statements() {
		cond := adf.Condition(stmt)
		if cond == nil {
			continue
		}
		total += expressionSize(cond)
	}
	return total
}

func expressionSize(root *model.ConditionExpression) uint64 {
	type frame struct {
		expr    *model.ConditionExpression
		entered bool
	}

	sizes := make(map[*model.ConditionExpression]uint64)
	stack := []frame{{expr: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		e := top.expr
		if _, done := sizes[e]; done {
			stack = stack[:len(stack)-1]
			continue
		}

		children := childrenOf(e)
		if !top.entered {
			top.entered = true
			for i := len(children) - 1; i >= 0; i-- {
				if _, done := sizes[children[i]]; !done {
					stack = append(stack, frame{expr: children[i]})
				}
			}
			continue
		}

		switch e.Kind() {
		case model.ExprConstant, model.ExprStatement:
			sizes[e] = 1
		case model.ExprNegation:
			sizes[e] = 1 + sizes[children[0]]
		case model.ExprAnd, model.ExprOr:
			s := uint64(len(children))
			for _, c := range children {
				s += sizes[c]
			}
			sizes[e] = s
		case model.ExprImplication:
			sizes[e] = 1 + sizes[children[0]] + sizes[children[1]]
		case model.ExprEquivalence, model.ExprExclusiveOr:
			sizes[e] = 3 + 2*(sizes[children[0]]+sizes[children[1]])
		}
		stack = stack[:len(stack)-1]
	}

	return sizes[root]
}

func childrenOf(e *model.ConditionExpression) []*model.ConditionExpression {
	switch e.Kind() {
	case model.ExprNegation:
		child, _ := e.AsNegation()
		return []*model.ConditionExpression{child}
	case model.ExprAnd:
		children, _ := e.AsAnd()
		return children
	case model.ExprOr:
		children, _ := e.AsOr()
		return children
	case model.ExprImplication:
		l, r, _ := e.AsImplication()
		return []*model.ConditionExpression{l, r}
	case model.ExprEquivalence:
		l, r, _ := e.AsEquivalence()
		return []*model.ConditionExpression{l, r}
	case model.ExprExclusiveOr:
		l, r, _ := e.AsExclusiveOr()
		return []*model.ConditionExpression{l, r}
	default:
		return nil
	}
}

// WriteBnet renders adf as a Boolean-network text file (spec §6): one node
// per statement, with an update function equal to its condition. Free
// statements get the identity update `v <- v`, the conventional bnet
// encoding of "unconstrained input". Refuses with ErrTooLarge if
// ExpectedSize(adf) exceeds maxOutputEstimate.
func WriteBnet(adf *model.ExpressionAdf, maxOutputEstimate int) (string, error) {
	if maxOutputEstimate > 0 {
		if size := ExpectedSize(adf); size > uint64(maxOutputEstimate) {
			return "", fmt.Errorf("%w: estimated %d, bound %d", ErrTooLarge, size, maxOutputEstimate)
		}
	}

	statements := append([]model.Statement(nil), adf.Statements()...)
	sort.Slice(statements, func(i, j int) bool { return statements[i] < statements[j] })

	var b strings.Builder
	b.WriteString("targets, factors\n")
	for _, stmt := range statements {
		name := nodeName(stmt)
		cond := adf.Condition(stmt)
		var rhs string
		if cond == nil {
			rhs = name
		} else {
			rhs = renderExpr(cond)
		}
		fmt.Fprintf(&b, "%s, %s\n", name, rhs)
	}
	return b.String(), nil
}

func nodeName(stmt model.Statement) string {
	return fmt.Sprintf("v%d", uint32(stmt))
}

// renderExpr prints e in bnet syntax, whose only native connectives are !,
// &, and |; implication, equivalence, and exclusive-or are expanded into
// those three, matching the bnet dialect's limited operator set.
func renderExpr(root *model.ConditionExpression) string {
	type frame struct {
		expr    *model.ConditionExpression
		entered bool
	}

	rendered := make(map[*model.ConditionExpression]string)
	stack := []frame{{expr: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		e := top.expr
		if _, done := rendered[e]; done {
			stack = stack[:len(stack)-1]
			continue
		}

		children := childrenOf(e)
		if !top.entered {
			top.entered = true
			for i := len(children) - 1; i >= 0; i-- {
				if _, done := rendered[children[i]]; !done {
					stack = append(stack, frame{expr: children[i]})
				}
			}
			continue
		}

		switch e.Kind() {
		case model.ExprConstant:
			v, _ := e.AsConstant()
			if v {
				rendered[e] = "1"
			} else {
				rendered[e] = "0"
			}
		case model.ExprStatement:
			stmt, _ := e.AsStatement()
			rendered[e] = nodeName(stmt)
		case model.ExprNegation:
			rendered[e] = fmt.Sprintf("!%s", parenthesize(rendered[children[0]]))
		case model.ExprAnd:
			parts := make([]string, len(children))
			for i, c := range children {
				parts[i] = parenthesize(rendered[c])
			}
			rendered[e] = strings.Join(parts, " & ")
		case model.ExprOr:
			parts := make([]string, len(children))
			for i, c := range children {
				parts[i] = parenthesize(rendered[c])
			}
			rendered[e] = strings.Join(parts, " | ")
		case model.ExprImplication:
			l, r := parenthesize(rendered[children[0]]), parenthesize(rendered[children[1]])
			rendered[e] = fmt.Sprintf("!%s | %s", l, r)
		case model.ExprEquivalence:
			l, r := parenthesize(rendered[children[0]]), parenthesize(rendered[children[1]])
			rendered[e] = fmt.Sprintf("(%s & %s) | (!%s & !%s)", l, r, l, r)
		case model.ExprExclusiveOr:
			l, r := parenthesize(rendered[children[0]]), parenthesize(rendered[children[1]])
			rendered[e] = fmt.Sprintf("(%s & !%s) | (!%s & %s)", l, r, l, r)
		}
		stack = stack[:len(stack)-1]
	}

	return rendered[root]
}

func parenthesize(s string) string {
	if strings.ContainsAny(s, " ") {
		return "(" + s + ")"
	}
	return s
}
