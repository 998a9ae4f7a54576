package ast

import "github.com/orneryd/ocypher/pkg/position"

func newIndexCommand(kind Kind, ctorName string, label *Node, propNames []*Node, rng position.Range) (*Node, error) {
	if err := requireKind(ctorName, label, KindLabel); err != nil {
		return nil, err
	}
	if err := requireKindAll(ctorName, propNames, KindPropName); err != nil {
		return nil, err
	}
	children := append([]*Node{label}, propNames...)
	return newNode(kind, rng, children, IndexPayload{Label: label, PropNames: propNames}), nil
}

// NewCreateIndex / NewDropIndex construct `CREATE/DROP INDEX ON :Label(prop)`.
func NewCreateIndex(label, propName *Node, rng position.Range) (*Node, error) {
	return newIndexCommand(KindCreateIndex, "CreateIndex", label, []*Node{propName}, rng)
}

func NewDropIndex(label, propName *Node, rng position.Range) (*Node, error) {
	return newIndexCommand(KindDropIndex, "DropIndex", label, []*Node{propName}, rng)
}

func newConstraint(kind Kind, ctorName string, identifier, label, expression *Node, rng position.Range) (*Node, error) {
	if err := requireKind(ctorName, identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if label != nil && !(label.InstanceOf(KindLabel) || label.InstanceOf(KindRelType)) {
		return nil, &InvalidChildError{Constructor: ctorName, Want: KindLabel, Got: label}
	}
	if err := requireKind(ctorName, expression, KindExpression); err != nil {
		return nil, err
	}
	children := []*Node{identifier}
	if label != nil {
		children = append(children, label)
	}
	children = append(children, expression)
	return newNode(kind, rng, children,
		ConstraintPayload{Identifier: identifier, Label: label, Expression: expression}), nil
}

// NewCreateUniqueConstraint / NewDropUniqueConstraint construct the
// `CREATE/DROP CONSTRAINT ON (n:Label) ASSERT n.prop IS UNIQUE` forms.
func NewCreateUniqueConstraint(identifier, label, expression *Node, rng position.Range) (*Node, error) {
	return newConstraint(KindCreateUniqueNodePropConstraint, "CreateUniqueConstraint", identifier, label, expression, rng)
}

func NewDropUniqueConstraint(identifier, label, expression *Node, rng position.Range) (*Node, error) {
	return newConstraint(KindDropUniqueNodePropConstraint, "DropUniqueConstraint", identifier, label, expression, rng)
}

// NewCreateNodePropExistsConstraint / NewDropNodePropExistsConstraint
// construct the node-property-existence constraint forms.
func NewCreateNodePropExistsConstraint(identifier, label, expression *Node, rng position.Range) (*Node, error) {
	return newConstraint(KindCreateNodePropExistsConstraint, "CreateNodePropExistsConstraint", identifier, label, expression, rng)
}

func NewDropNodePropExistsConstraint(identifier, label, expression *Node, rng position.Range) (*Node, error) {
	return newConstraint(KindDropNodePropExistsConstraint, "DropNodePropExistsConstraint", identifier, label, expression, rng)
}

// NewCreateRelPropExistsConstraint / NewDropRelPropExistsConstraint
// construct the relationship-property-existence constraint forms.
func NewCreateRelPropExistsConstraint(identifier, relType, expression *Node, rng position.Range) (*Node, error) {
	return newConstraint(KindCreateRelPropExistsConstraint, "CreateRelPropExistsConstraint", identifier, relType, expression, rng)
}

func NewDropRelPropExistsConstraint(identifier, relType, expression *Node, rng position.Range) (*Node, error) {
	return newConstraint(KindDropRelPropExistsConstraint, "DropRelPropExistsConstraint", identifier, relType, expression, rng)
}

// NewCommand constructs a COMMAND node: `:name arg1 arg2`.
func NewCommand(name *Node, args []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("Command", name, KindString); err != nil {
		return nil, err
	}
	if err := requireKindAll("Command", args, KindString); err != nil {
		return nil, err
	}
	children := append([]*Node{name}, args...)
	return newNode(KindCommand, rng, children, CommandPayload{Name: name, Args: args}), nil
}

// NewStart constructs a START clause from a list of start points and an
// optional WHERE predicate (retained by some callers directly on MATCH).
func NewStart(points []*Node, predicate *Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Start", points, KindStartPoint); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("Start", predicate, KindExpression); err != nil {
		return nil, err
	}
	children := append([]*Node{}, points...)
	if predicate != nil {
		children = append(children, predicate)
	}
	return newNode(KindStart, rng, children, StartPayload{Points: points, Predicate: predicate}), nil
}

// NewNodeIDLookup constructs `identifier = node(1, 2, 3)`.
func NewNodeIDLookup(identifier *Node, ids []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("NodeIDLookup", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKindAll("NodeIDLookup", ids, KindInteger); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, ids...)
	return newNode(KindNodeIDLookup, rng, children, NodeIDLookupPayload{Identifier: identifier, IDs: ids}), nil
}

// NewRelIDLookup constructs `identifier = relationship(1, 2, 3)`.
func NewRelIDLookup(identifier *Node, ids []*Node, rng position.Range) (*Node, error) {
	if err := requireKind("RelIDLookup", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKindAll("RelIDLookup", ids, KindInteger); err != nil {
		return nil, err
	}
	children := append([]*Node{identifier}, ids...)
	return newNode(KindRelIDLookup, rng, children, RelIDLookupPayload{Identifier: identifier, IDs: ids}), nil
}

func newIndexLookup(kind Kind, ctorName string, identifier, indexName, propName, lookup *Node, rng position.Range) (*Node, error) {
	if err := requireKind(ctorName, identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind(ctorName, indexName, KindIndexName); err != nil {
		return nil, err
	}
	if err := requireKind(ctorName, propName, KindPropName); err != nil {
		return nil, err
	}
	if err := requireKind(ctorName, lookup, KindExpression); err != nil {
		return nil, err
	}
	return newNode(kind, rng, []*Node{identifier, indexName, propName, lookup},
		IndexLookupPayload{Identifier: identifier, IndexName: indexName, PropName: propName, Lookup: lookup}), nil
}

// NewNodeIndexLookup constructs `identifier = node:indexName(key = "value")`.
func NewNodeIndexLookup(identifier, indexName, propName, lookup *Node, rng position.Range) (*Node, error) {
	return newIndexLookup(KindNodeIndexLookup, "NodeIndexLookup", identifier, indexName, propName, lookup, rng)
}

// NewRelIndexLookup constructs the relationship analogue of NewNodeIndexLookup.
func NewRelIndexLookup(identifier, indexName, propName, lookup *Node, rng position.Range) (*Node, error) {
	return newIndexLookup(KindRelIndexLookup, "RelIndexLookup", identifier, indexName, propName, lookup, rng)
}

func newIndexQuery(kind Kind, ctorName string, identifier, indexName, query *Node, rng position.Range) (*Node, error) {
	if err := requireKind(ctorName, identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireKind(ctorName, indexName, KindIndexName); err != nil {
		return nil, err
	}
	if err := requireKind(ctorName, query, KindExpression); err != nil {
		return nil, err
	}
	return newNode(kind, rng, []*Node{identifier, indexName, query},
		IndexQueryPayload{Identifier: identifier, IndexName: indexName, Query: query}), nil
}

// NewNodeIndexQuery constructs `identifier = node:indexName("lucene query")`.
func NewNodeIndexQuery(identifier, indexName, query *Node, rng position.Range) (*Node, error) {
	return newIndexQuery(KindNodeIndexQuery, "NodeIndexQuery", identifier, indexName, query, rng)
}

// NewRelIndexQuery constructs the relationship analogue of NewNodeIndexQuery.
func NewRelIndexQuery(identifier, indexName, query *Node, rng position.Range) (*Node, error) {
	return newIndexQuery(KindRelIndexQuery, "RelIndexQuery", identifier, indexName, query, rng)
}

func newAllScan(kind Kind, ctorName string, identifier *Node, rng position.Range) (*Node, error) {
	if err := requireKind(ctorName, identifier, KindIdentifier); err != nil {
		return nil, err
	}
	return newNode(kind, rng, []*Node{identifier}, AllScanPayload{Identifier: identifier}), nil
}

// NewAllNodesScan constructs `identifier = node(*)`.
func NewAllNodesScan(identifier *Node, rng position.Range) (*Node, error) {
	return newAllScan(KindAllNodesScan, "AllNodesScan", identifier, rng)
}

// NewAllRelsScan constructs `identifier = relationship(*)`.
func NewAllRelsScan(identifier *Node, rng position.Range) (*Node, error) {
	return newAllScan(KindAllRelsScan, "AllRelsScan", identifier, rng)
}
