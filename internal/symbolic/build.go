package symbolic

import (
	"github.com/go-adf/adfbdd/internal/bddx"
	"github.com/go-adf/adfbdd/internal/model"
	"github.com/go-adf/adfbdd/internal/varmap"
)

// SymbolicAdf bundles a DirectEncoding and a DualEncoding built from the
// same statement set and sharing one BDD variable space, so that the
// dual-lift step (which mixes direct and dual variables in one formula) is
// possible without cross-Handle translation.
type SymbolicAdf struct {
	handle *bddx.Handle
	direct *DirectEncoding
	dual   *DualEncoding
}

// DirectEncoding returns the direct encoding of this ADF.
func (a *SymbolicAdf) DirectEncoding() *DirectEncoding { return a.direct }

// DualEncoding returns the dual encoding of this ADF.
func (a *SymbolicAdf) DualEncoding() *DualEncoding { return a.dual }

// Handle returns the shared BDD handle.
func (a *SymbolicAdf) Handle() *bddx.Handle { return a.handle }

// Build constructs a SymbolicAdf from an ExpressionAdf, following the three
// steps of spec §4.2: allocate variable maps, translate each statement's
// condition to a direct BDD, then lift each direct condition (and its
// negation) into the dual encoding.
func Build(adf *model.ExpressionAdf) (*SymbolicAdf, error) {
	statements := adf.Statements()

	directMap := varmap.NewDirectMap(statements)
	dualMap := varmap.NewDualMap(statements)

	totalVars := len(statements) * stride
	handle, err := bddx.New(totalVars)
	if err != nil {
		return nil, err
	}

	directConditions := make(map[model.Statement]bddx.Node, len(statements))
	for _, s := range statements {
		expr := adf.Condition(s)
		if expr == nil {
			continue
		}
		bdd, err := translate(handle, directMap, expr)
		if err != nil {
			return nil, err
		}
		directConditions[s] = bdd
	}

	dualConditions := make(map[model.Statement][2]bddx.Node, len(directConditions))
	for s, directBdd := range directConditions {
		canBeTrue := lift(handle, directMap, dualMap, directBdd)
		canBeFalse := lift(handle, directMap, dualMap, handle.Not(directBdd))
		dualConditions[s] = [2]bddx.Node{canBeTrue, canBeFalse}
	}

	if err := handle.Err(); err != nil {
		return nil, err
	}

	return &SymbolicAdf{
		handle: handle,
		direct: &DirectEncoding{handle: handle, varMap: directMap, conditions: directConditions},
		dual:   &DualEncoding{handle: handle, varMap: dualMap, conditions: dualConditions},
	}, nil
}

// translate converts a ConditionExpression to a BDD over the DirectMap,
// following the rules of spec §4.2 step 2. It uses an explicit stack
// instead of native recursion so arbitrarily deep expression trees cannot
// overflow the call stack.
func translate(h *bddx.Handle, vm *varmap.DirectMap, root *model.ConditionExpression) (bddx.Node, error) {
	type stackEntry struct {
		expr    *model.ConditionExpression
		entered bool
	}

	results := make(map[*model.ConditionExpression]bddx.Node)
	stack := []stackEntry{{expr: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		e := top.expr

		if _, done := results[e]; done {
			stack = stack[:len(stack)-1]
			continue
		}

		children := childrenOf(e)
		if !top.entered {
			top.entered = true
			for i := len(children) - 1; i >= 0; i-- {
				if _, done := results[children[i]]; !done {
					stack = append(stack, stackEntry{expr: children[i]})
				}
			}
			continue
		}

		bdd, err := combine(h, vm, e, results)
		if err != nil {
			return nil, err
		}
		results[e] = bdd
		stack = stack[:len(stack)-1]
	}

	return results[root], nil
}

// childrenOf returns the direct subexpressions of e, in evaluation order.
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

// combine builds the BDD for e given that every child already has a result
// in results, applying the translation rules of spec §4.2 step 2.
func combine(h *bddx.Handle, vm *varmap.DirectMap, e *model.ConditionExpression, results map[*model.ConditionExpression]bddx.Node) (bddx.Node, error) {
	switch e.Kind() {
	case model.ExprConstant:
		v, _ := e.AsConstant()
		if v {
			return h.True(), nil
		}
		return h.False(), nil
	case model.ExprStatement:
		stmt, _ := e.AsStatement()
		return vm.MakeLiteral(h, stmt, true)
	case model.ExprNegation:
		child, _ := e.AsNegation()
		return h.Not(results[child]), nil
	case model.ExprAnd:
		children, _ := e.AsAnd()
		acc := h.True()
		for _, c := range children {
			acc = h.And(acc, results[c])
		}
		return acc, nil
	case model.ExprOr:
		children, _ := e.AsOr()
		acc := h.False()
		for _, c := range children {
			acc = h.Or(acc, results[c])
		}
		return acc, nil
	case model.ExprImplication:
		l, r, _ := e.AsImplication()
		return h.Or(h.Not(results[l]), results[r]), nil
	case model.ExprEquivalence:
		l, r, _ := e.AsEquivalence()
		return h.Iff(results[l], results[r]), nil
	case model.ExprExclusiveOr:
		l, r, _ := e.AsExclusiveOr()
		return h.Xor(results[l], results[r]), nil
	default:
		return nil, errorf("unknown expression kind %d", e.Kind())
	}
}

// lift converts a direct-encoded BDD into its dual-encoded counterpart,
// following spec §4.2 step 3: for each statement i in reverse statement
// order, with direct variable v_i and dual pair (t_i, f_i),
//
//	F <- Exists v_i . (F & (v_i -> t_i) & (not v_i -> f_i))
//
// The reverse-order traversal minimises intermediate BDD sizes because
// later variables sit near the top of the BDD under the chosen ordering.
func lift(h *bddx.Handle, directMap *varmap.DirectMap, dualMap *varmap.DualMap, direct bddx.Node) bddx.Node {
	statements := directMap.Statements()
	result := direct
	for i := len(statements) - 1; i >= 0; i-- {
		stmt := statements[i]
		v, _ := directMap.Lookup(stmt)
		tVar, fVar, _ := dualMap.Lookup(stmt)

		vImpliesT := h.Or(h.Literal(v, false), h.Literal(tVar, true))
		notVImpliesF := h.Or(h.Literal(v, true), h.Literal(fVar, true))
		inSpace := h.And(vImpliesT, notVImpliesF)

		result = h.AndExists([]int{v}, result, inSpace)
	}
	return result
}
