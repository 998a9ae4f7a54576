package ast

import "github.com/orneryd/ocypher/pkg/position"

// NewStatement constructs a STATEMENT node: ordered options + one body.
// The body is a query, a UNION chain, a schema command, or — under the
// parameters-only parse mode — a single STRING holding the unparsed
// remainder.
func NewStatement(options []*Node, body *Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Statement", options, KindStatementOption); err != nil {
		return nil, err
	}
	if body == nil || !(body.InstanceOf(KindQuery) || body.InstanceOf(KindSchemaCommand) ||
		body.InstanceOf(KindUnion) || body.InstanceOf(KindString)) {
		return nil, &InvalidChildError{Constructor: "Statement", Want: KindQuery, Got: body}
	}
	children := append(append([]*Node{}, options...), body)
	return newNode(KindStatement, rng, children, StatementPayload{Options: options, Body: body}), nil
}

// NewCypherOption constructs a CYPHER_OPTION node.
func NewCypherOption(version *Node, params []*Node, rng position.Range) (*Node, error) {
	if err := requireOptionalKind("CypherOption", version, KindString); err != nil {
		return nil, err
	}
	if err := requireKindAll("CypherOption", params, KindCypherOptionParam); err != nil {
		return nil, err
	}
	var children []*Node
	if version != nil {
		children = append(children, version)
	}
	children = append(children, params...)
	return newNode(KindCypherOption, rng, children,
		CypherOptionPayload{Version: version, Params: params}), nil
}

// NewCypherOptionParam constructs a CYPHER_OPTION_PARAM node.
func NewCypherOptionParam(name, value *Node, rng position.Range) (*Node, error) {
	if err := requireKind("CypherOptionParam", name, KindString); err != nil {
		return nil, err
	}
	if err := requireKind("CypherOptionParam", value, KindString); err != nil {
		return nil, err
	}
	return newNode(KindCypherOptionParam, rng, []*Node{name, value},
		CypherOptionParamPayload{Name: name, Value: value}), nil
}

// NewExplainOption / NewProfileOption construct the payload-less query
// prefix options.
func NewExplainOption(rng position.Range) *Node { return newNode(KindExplainOption, rng, nil, nil) }
func NewProfileOption(rng position.Range) *Node { return newNode(KindProfileOption, rng, nil, nil) }

// NewUsingPeriodicCommit constructs a USING_PERIODIC_COMMIT node.
func NewUsingPeriodicCommit(limit *Node, rng position.Range) (*Node, error) {
	if err := requireOptionalKind("UsingPeriodicCommit", limit, KindInteger); err != nil {
		return nil, err
	}
	var children []*Node
	if limit != nil {
		children = append(children, limit)
	}
	return newNode(KindUsingPeriodicCommit, rng, children, UsingPeriodicCommitPayload{Limit: limit}), nil
}

// NewQuery constructs a QUERY node.
func NewQuery(options, clauses []*Node, rng position.Range) (*Node, error) {
	if err := requireKindAll("Query", clauses, KindClause); err != nil {
		return nil, err
	}
	children := append(append([]*Node{}, options...), clauses...)
	return newNode(KindQuery, rng, children, QueryPayload{Options: options, Clauses: clauses}), nil
}

// NewUnion constructs a UNION node chaining 2+ queries.
func NewUnion(queries []*Node, all []bool, rng position.Range) (*Node, error) {
	if len(queries) < 2 || len(all) != len(queries)-1 {
		return nil, &InvalidChildError{Constructor: "Union", Want: KindQuery}
	}
	if err := requireKindAll("Union", queries, KindQuery); err != nil {
		return nil, err
	}
	return newNode(KindUnion, rng, queries, UnionPayload{Queries: queries, All: append([]bool{}, all...)}), nil
}

// NewLoadCSV constructs a LOAD_CSV node.
func NewLoadCSV(withHeaders bool, url, identifier, fieldTerminator *Node, rng position.Range) (*Node, error) {
	if err := requireKind("LoadCSV", url, KindExpression); err != nil {
		return nil, err
	}
	if err := requireKind("LoadCSV", identifier, KindIdentifier); err != nil {
		return nil, err
	}
	if err := requireOptionalKind("LoadCSV", fieldTerminator, KindExpression); err != nil {
		return nil, err
	}
	children := []*Node{url, identifier}
	if fieldTerminator != nil {
		children = append(children, fieldTerminator)
	}
	return newNode(KindLoadCSV, rng, children, LoadCSVPayload{
		WithHeaders: withHeaders, URL: url, Identifier: identifier, FieldTerminator: fieldTerminator,
	}), nil
}
