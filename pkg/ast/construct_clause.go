package ast

import "github.com/orneryd/ocypher/pkg/position"

// NewMatch constructs a MATCH node.
func NewMatch(optional bool, pattern *Node, hints []*Node, predicate *Node, rng position.Range) (*Node, error) {
	if err := requireKind("Match", pattern, KindPattern); err != nil {
		return nil, err
	}
	if err := requireKindAll("Match", hints, KindHint); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Match", predicate, KindExpression); err != nil {
		return nil, err
	}
	children := append([]*Node{pattern}, hints...)
	if predicate != nil {
		children = append(children, predicate)
	}
	return newNode(KindMatch, rng, children,
		MatchPayload{Optional: optional, Pattern: pattern, Hints: hints, Predicate: predicate}), nil
}

// NewUsingIndexHint constructs a USING_INDEX_HINT node.
func NewUsingIndexHint(identifier, label *Node, propNames []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("UsingIndexHint", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("UsingIndexHint", label, KindLabel); err != nil {
		return nil, err
	}
	if err := requireKindAll("UsingIndexHint", propNames, KindPropName); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier, label}, propNames...)
	return newNode(KindUsingIndexHint, rng, children,
		UsingIndexHintPayload{Identifier: identifier, Label: label, PropNames: propNames}), nil
}

// NewUsingJoinHint constructs a USING_JOIN_HINT node.
func NewUsingJoinHint(identifiers []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("UsingJoinHint", identifiers, KindIdentifier); err != nil {
		return nil, err
	}
	return newNode(KindUsingJoinHint, rng, identifiers, UsingJoinHintPayload{Identifiers: identifiers}), nil
}

// NewUsingScanHint constructs a USING_SCAN_HINT node.
func NewUsingScanHint(identifier, label *Node, rng position.Range) (*Node, error) {
	if err := requireKind("UsingScanHint", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("UsingScanHint", label, KindLabel); err != nil {
		return nil, err
	}
	return newNode(KindUsingScanHint, rng, []*Node{identifier, label},
		UsingScanHintPayload{Identifier: identifier, Label: label}), nil
}

// NewMerge constructs a MERGE node.
func NewMerge(path *Node, actions []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("Merge", path, KindExpression); err != nil {
		return nil, err
	}
	for _, a := range actions {
		if !(a.InstanceOf(KindOnMatch) || a.InstanceOf(KindOnCreate)) {
			return nil, &InvalidChildError{Constructor: "Merge", Want: KindOnMatch, Got: a}
		}
	}
	children := append([]*Node{path}, actions...)
	return newNode(KindMerge, rng, children, MergePayload{Path: path, Actions: actions}), nil
}

// NewOnMatch constructs an ON_MATCH action list.
func NewOnMatch(items []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("OnMatch", items, KindSetItem); err != nil {
		return nil, err
	}
	return newNode(KindOnMatch, rng, items, ActionListPayload{Items: items}), nil
}

// NewOnCreate constructs an ON_CREATE action list.
func NewOnCreate(items []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("OnCreate", items, KindSetItem); err != nil {
		return nil, err
	}
	return newNode(KindOnCreate, rng, items, ActionListPayload{Items: items}), nil
}

// NewCreate constructs a CREATE node.
func NewCreate(pattern *Node, rng position.Range) (*Node, error) {
	if err := requireKind("Create", pattern, KindPattern); err != nil {
		return nil, err
	}
	return newNode(KindCreate, rng, []*Node{pattern}, CreatePayload{Pattern: pattern}), nil
}

// NewSet constructs a SET node.
func NewSet(items []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Set", items, KindSetItem); err != nil {
		return nil, err
	}
	return newNode(KindSet, rng, items, SetPayload{Items: items}), nil
}

// NewSetProperty constructs a SET_PROPERTY item: `n.prop = expr`.
func NewSetProperty(property, expr *Node, rng position.Range) (*Node, error) {
	if err := requireKind("SetProperty", property, KindPropertyOperator); err != nil {
		return nil, err
	}
	if err := requireKind("SetProperty", expr, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindSetProperty, rng, []*Node{property, expr},
		SetPropertyPayload{Property: property, Expression: expr}), nil
}

// NewSetAllProperties constructs a SET_ALL_PROPERTIES item: `n = expr`.
func NewSetAllProperties(identifier, expr *Node, rng position.Range) (*Node, error) {
	if err := requireKind("SetAllProperties", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("SetAllProperties", expr, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindSetAllProperties, rng, []*Node{identifier, expr},
		SetAllPropertiesPayload{Identifier: identifier, Expression: expr}), nil
}

// NewMergeProperties constructs a MERGE_PROPERTIES item: `n += expr`.
func NewMergeProperties(identifier, expr *Node, rng position.Range) (*Node, error) {
	if err := requireKind("MergeProperties", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("MergeProperties", expr, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindMergeProperties, rng, []*Node{identifier, expr},
		MergePropertiesPayload{Identifier: identifier, Expression: expr}), nil
}

// NewSetLabels constructs a SET_LABELS item: `n:Label:Other`.
func NewSetLabels(identifier *Node, labels []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("SetLabels", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKindAll("SetLabels", labels, KindLabel); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, labels...)
	return newNode(KindSetLabels, rng, children, SetLabelsPayload{Identifier: identifier, Labels: labels}), nil
}

// NewDelete constructs a DELETE node.
func NewDelete(detach bool, expressions []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Delete", expressions, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindDelete, rng, expressions, DeletePayload{Detach: detach, Expressions: expressions}), nil
}

// NewRemove constructs a REMOVE node.
func NewRemove(items []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Remove", items, KindRemoveItem); err != nil {
		return nil, err
	}
	return newNode(KindRemove, rng, items, RemovePayload{Items: items}), nil
}

// NewRemoveProperty constructs a REMOVE_PROPERTY item: `REMOVE n.prop`.
func NewRemoveProperty(property *Node, rng position.Range) (*Node, error) {
	if err := requireKind("RemoveProperty", property, KindPropertyOperator); err != nil {
		return nil, err
	}
	return newNode(KindRemoveProperty, rng, []*Node{property}, RemovePropertyPayload{Property: property}), nil
}

// NewRemoveLabels constructs a REMOVE_LABELS item: `REMOVE n:Label`.
func NewRemoveLabels(identifier *Node, labels []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("RemoveLabels", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKindAll("RemoveLabels", labels, KindLabel); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, labels...)
	return newNode(KindRemoveLabels, rng, children, RemoveLabelsPayload{Identifier: identifier, Labels: labels}), nil
}

// NewForeach constructs a FOREACH node.
func NewForeach(identifier, expr *Node, clauses []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("Foreach", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind("Foreach", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKindAll("Foreach", clauses, KindClause); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier, expr}, clauses...)
	return newNode(KindForeach, rng, children,
		ForeachPayload{Identifier: identifier, Expression: expr, Clauses: clauses}), nil
}

func withChildren(items []*Node, orderBy, skip, limit, predicate *Node) []*Node {
	children := append([]*Node{}, items...)
	if orderBy != nil {
		children = append(children, orderBy)
	}
	if skip != nil {
		children = append(children, skip)
	}
	if limit != nil {
		children = append(children, limit)
	}
	if predicate != nil {
		children = append(children, predicate)
	}
	return children
}

// NewWith constructs a WITH node.
func NewWith(distinct, includeExisting bool, items []*Node, orderBy, skip, limit, predicate *Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("With", items, KindProjection); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("With", orderBy, KindOrderBy); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("With", skip, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("With", limit, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("With", predicate, KindExpression); err != nil {
		return nil, err
	}
	if !includeExisting && len(items) == 0 {
		return nil, &InvalidChildError{Constructor: "With: WITH without items and without *", Want: KindProjection}
	}
	return newNode(KindWith, rng, withChildren(items, orderBy, skip, limit, predicate),
		WithPayload{Distinct: distinct, IncludeExisting: includeExisting, Items: items,
			OrderBy: orderBy, Skip: skip, Limit: limit, Predicate: predicate}), nil
}

// NewUnwind constructs an UNWIND node.
func NewUnwind(expr, identifier *Node, rng position.Range) (*Node, error) {
	if err := requireKind("Unwind", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("Unwind", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	return newNode(KindUnwind, rng, []*Node{expr, identifier},
		UnwindPayload{Expression: expr, Identifier: identifier}), nil
}

// NewCall constructs a CALL node.
func NewCall(procName *Node, args, yield []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("Call", procName, KindProcName); err != nil {
		return nil, err
	}
	if err := requireKindAll("Call", args, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKindAll("Call", yield, KindProjection); err != nil {
		return nil, err
	}
	children := append([]*Node{procName}, args...)
	children = append(children, yield...)
	return newNode(KindCall, rng, children, CallPayload{ProcName: procName, Args: args, Yield: yield}), nil
}

// NewReturn constructs a RETURN node.
func NewReturn(distinct, includeExisting bool, items []*Node, orderBy, skip, limit *Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Return", items, KindProjection); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Return", orderBy, KindOrderBy); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Return", skip, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Return", limit, KindExpression); err != nil {
		return nil, err
	}
	if !includeExisting && len(items) == 0 {
		return nil, &InvalidChildError{Constructor: "Return: RETURN without items and without *", Want: KindProjection}
	}
	return newNode(KindReturn, rng, withChildren(items, orderBy, skip, limit, nil),
		ReturnPayload{Distinct: distinct, IncludeExisting: includeExisting, Items: items,
			OrderBy: orderBy, Skip: skip, Limit: limit}), nil
}

// NewProjection constructs a PROJECTION node: `expr [AS alias]`.
func NewProjection(expr, alias *Node, rng position.Range) (*Node, error) {
	if err := requireKind("Projection", expr, KindExpression); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Projection", alias, KindIdentifier); err != nil {
		return nil, err
	}
	children := []*Node{expr}
	if alias != nil {
		children = append(children, alias)
	}
	return newNode(KindProjection, rng, children, ProjectionPayload{Expression: expr, Alias: alias}), nil
}

// NewOrderBy constructs an ORDER_BY node.
func NewOrderBy(items []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("OrderBy", items, KindSortItem); err != nil {
		return nil, err
	}
	return newNode(KindOrderBy, rng, items, OrderByPayload{Items: items}), nil
}

// NewSortItem constructs a SORT_ITEM node.
func NewSortItem(expr *Node, descending bool, rng position.Range) (*Node, error) {
	if err := requireKind("SortItem", expr, KindExpression); err != nil {
		return nil, err
	}
	return newNode(KindSortItem, rng, []*Node{expr}, SortItemPayload{Expression: expr, Descending: descending}), nil
}
