package ast

import "github.com/orneryd/ocypher/pkg/position"

// NewUnaryOperator constructs a UNARY_OPERATOR node.
func NewUnaryOperator(op Operator, operand *Node, rng position.Range) (*Node, error) {
	if err := requireKind("UnaryOperator", operand, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindUnaryOperator, rng, []*Node{operand}, UnaryOperatorPayload{Op: op, Operand: operand}), nil
}

// NewBinaryOperator constructs a BINARY_OPERATOR node.
func NewBinaryOperator(op Operator, left, right *Node, rng position.Range) (*Node, error) {
	if err := requireKind("BinaryOperator", left, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("BinaryOperator", right, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindBinaryOperator, rng, []*Node{left, right},
		BinaryOperatorPayload{Op: op, Left: left, Right: right}), nil
}

// NewComparison constructs a COMPARISON node: the n-ary chain
// `left ops[0] args[0] ops[1] args[1] ...`.
func NewComparison(left *Node, ops []Operator, args []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("Comparison", left, KindExpression); err != nil {
		return nil, err
	}
	if len(ops) == 0 || len(ops) != len(args) {
		return nil, &InvalidChildError{Constructor: "Comparison", Want: KindExpression}
	}
	if err := requireKindAll("Comparison", args, KindExpression); err != nil {
		return nil, err
	}
	children := append([]*Node{left}, args...)
	return newNode(KindComparison, rng, children,
		ComparisonPayload{Left: left, Ops: append([]Operator{}, ops...), Args: args}), nil
}

// NewApplyOperator constructs an APPLY_OPERATOR node: `func(args...)`.
func NewApplyOperator(funcName *Node, distinct bool, args []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("ApplyOperator", funcName, KindFunctionName); err != nil {
		return nil, err
	}
	if err := requireKindAll("ApplyOperator", args, KindExpression); err != nil {
		return nil, err
	}
	children := append([]*Node{funcName}, args...)
	return newNode(KindApplyOperator, rng, children,
		ApplyOperatorPayload{FuncName: funcName, Distinct: distinct, Args: args}), nil
}

// NewApplyAllOperator constructs an APPLY_ALL_OPERATOR node: `func(*)`.
func NewApplyAllOperator(funcName *Node, distinct bool, rng position.Range) (*Node, error) {
	if err := requireKind("ApplyAllOperator", funcName, KindFunctionName); err != nil {
		return nil, err
	}
	return newNode(KindApplyAllOperator, rng, []*Node{funcName},
		ApplyAllOperatorPayload{FuncName: funcName, Distinct: distinct}), nil
}

// NewPropertyOperator constructs a PROPERTY_OPERATOR node: `expr.prop`.
func NewPropertyOperator(expr, propName *Node, rng position.Range) (*Node, error) {
	if err := requireKind("PropertyOperator", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("PropertyOperator", propName, KindPropName); err != nil {
		return nil, err
	}
	return newNode(KindPropertyOperator, rng, []*Node{expr, propName},
		PropertyOperatorPayload{Expression: expr, PropName: propName}), nil
}

// NewSubscriptOperator constructs a SUBSCRIPT_OPERATOR node: `expr[idx]`.
func NewSubscriptOperator(expr, index *Node, rng position.Range) (*Node, error) {
	if err := requireKind("SubscriptOperator", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("SubscriptOperator", index, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindSubscriptOperator, rng, []*Node{expr, index},
		SubscriptOperatorPayload{Expression: expr, Index: index}), nil
}

// NewSliceOperator constructs a SLICE_OPERATOR node: `expr[from..to]`.
func NewSliceOperator(expr, from, to *Node, rng position.Range) (*Node, error) {
	if err := requireKind("SliceOperator", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("SliceOperator", from, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("SliceOperator", to, KindExpression); err != nil {
		return nil, err
	}
	children := []*Node{expr}
	if from != nil {
		children = append(children, from)
	}
	if to != nil {
		children = append(children, to)
	}
	return newNode(KindSliceOperator, rng, children,
		SliceOperatorPayload{Expression: expr, From: from, To: to}), nil
}

// NewLabelsOperator constructs a LABELS_OPERATOR node: `expr:Label:Other`.
func NewLabelsOperator(expr *Node, labels []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("LabelsOperator", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKindAll("LabelsOperator", labels, KindLabel); err != nil {
		return nil, err
	}
	children := append([]*Node{expr}, labels...)
	return newNode(KindLabelsOperator, rng, children,
		LabelsOperatorPayload{Expression: expr, Labels: labels}), nil
}

// NewListComprehension constructs a LIST_COMPREHENSION node:
// `[x IN expr WHERE pred | eval]`.
func NewListComprehension(identifier, expr, predicate, eval *Node, rng position.Range) (*Node, error) {
	if err := requireKind("ListComprehension", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("ListComprehension", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("ListComprehension", predicate, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("ListComprehension", eval, KindExpression); err != nil {
		return nil, err
	}
	children := []*Node{identifier, expr}
	if predicate != nil {
		children = append(children, predicate)
	}
	if eval != nil {
		children = append(children, eval)
	}
	return newNode(KindListComprehension, rng, children,
		ListComprehensionPayload{Identifier: identifier, Expression: expr, Predicate: predicate, Eval: eval}), nil
}

// NewCase constructs a CASE node. len(whens) must equal len(thens) and
// be positive.
func NewCase(expr *Node, whens, thens []*Node, deflt *Node, rng position.Range) (*Node, error) {
	if err := requireOptionalKind("Case", expr, KindExpression); err != nil {
		return nil, err
	}
	if len(whens) == 0 || len(whens) != len(thens) {
		return nil, &InvalidChildError{Constructor: "Case", Want: KindExpression}
	}
	if err := requireKindAll("Case", whens, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKindAll("Case", thens, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Case", deflt, KindExpression); err != nil {
		return nil, err
	}
	var children []*Node
	if expr != nil {
		children = append(children, expr)
	}
	for i := range whens {
		children = append(children, whens[i], thens[i])
	}
	if deflt != nil {
		children = append(children, deflt)
	}
	return newNode(KindCase, rng, children,
		CasePayload{Expression: expr, Whens: whens, Thens: thens, Default: deflt}), nil
}

func newQuantifier(kind Kind, ctorName string, identifier, expr, predicate *Node, rng position.Range) (*Node, error) {
	if err := requireKind(ctorName, identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind(ctorName, expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind(ctorName, predicate, KindExpression); err != nil {
		return nil, err
	}
	children := []*Node{identifier, expr}
	if predicate != nil {
		children = append(children, predicate)
	}
	return newNode(kind, rng, children,
		QuantifierPayload{Identifier: identifier, Expression: expr, Predicate: predicate}), nil
}

// NewFilter/NewAll/NewAny/NewSingle/NewNone construct the five
// identically-shaped quantifier expressions.
func NewFilter(identifier, expr, predicate *Node, rng position.Range) (*Node, error) {
	return newQuantifier(KindFilter, "Filter", identifier, expr, predicate, rng)
}
func NewAll(identifier, expr, predicate *Node, rng position.Range) (*Node, error) {
	return newQuantifier(KindAll, "All", identifier, expr, predicate, rng)
}
func NewAny(identifier, expr, predicate *Node, rng position.Range) (*Node, error) {
	return newQuantifier(KindAny, "Any", identifier, expr, predicate, rng)
}
func NewSingle(identifier, expr, predicate *Node, rng position.Range) (*Node, error) {
	return newQuantifier(KindSingle, "Single", identifier, expr, predicate, rng)
}
func NewNone(identifier, expr, predicate *Node, rng position.Range) (*Node, error) {
	return newQuantifier(KindNone, "None", identifier, expr, predicate, rng)
}

// NewExtract constructs an EXTRACT node: `extract(x IN expr | eval)`.
func NewExtract(identifier, expr, predicate, eval *Node, rng position.Range) (*Node, error) {
	if err := requireKind("Extract", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("Extract", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Extract", predicate, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("Extract", eval, KindExpression); err != nil {
		return nil, err
	}
	children := []*Node{identifier, expr}
	if predicate != nil {
		children = append(children, predicate)
	}
	children = append(children, eval)
	return newNode(KindExtract, rng, children,
		ExtractPayload{Identifier: identifier, Expression: expr, Predicate: predicate, Eval: eval}), nil
}

// NewReduce constructs a REDUCE node:
// `reduce(acc = init, x IN expr | eval)`.
func NewReduce(accumulator, init, identifier, expr, eval *Node, rng position.Range) (*Node, error) {
	if err := requireKind("Reduce", accumulator, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("Reduce", init, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("Reduce", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("Reduce", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("Reduce", eval, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindReduce, rng, []*Node{accumulator, init, identifier, expr, eval},
		ReducePayload{Accumulator: accumulator, Init: init, Identifier: identifier, Expression: expr, Eval: eval}), nil
}

// NewCollection constructs a COLLECTION node: `[e1, e2, ...]`.
func NewCollection(elements []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Collection", elements, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindCollection, rng, elements, CollectionPayload{Elements: elements}), nil
}

// NewMap constructs a MAP node: `{k1: v1, k2: v2}`.
func NewMap(keys, values []*Node, rng position.Range) (*Node, error) {
	if len(keys) != len(values) {
		return nil, &InvalidChildError{Constructor: "Map", Want: KindPropName}
	}
	if err := requireKindAll("Map", keys, KindPropName); err != nil {
		return nil, err
	}
	if err := requireKindAll("Map", values, KindExpression); err != nil {
		return nil, err
	}
	var children []*Node
	for i := range keys {
		children = append(children, keys[i], values[i])
	}
	return newNode(KindMap, rng, children, MapPayload{Keys: keys, Values: values}), nil
}
