// Package ast defines the typed openCypher AST: the closed set of node
// kinds, the per-kind descriptor registry, the node shape shared by
// every kind, and the Cypher operator table.
package ast

// Kind is the closed enumeration of AST node kinds: a small integer
// tag, never a pointer-identity vtable. A single tagged variant type
// plus a static parent-kind table backs the instanceof check.
type Kind uint16

const (
	KindInvalid Kind = iota

	// Abstract supertypes. No constructor ever produces a node whose
	// Kind() equals one of these; they exist only as instanceof
	// ancestors in the parent table.
	KindExpression
	KindStatementOption
	KindSchemaCommand
	KindClause
	KindSetItem
	KindRemoveItem
	KindHint
	KindStartPoint

	KindStatement
	KindCypherOption
	KindCypherOptionParam
	KindExplainOption
	KindProfileOption
	KindUsingPeriodicCommit

	KindCreateIndex
	KindDropIndex
	KindCreateUniqueNodePropConstraint
	KindDropUniqueNodePropConstraint
	KindCreateNodePropExistsConstraint
	KindDropNodePropExistsConstraint
	KindCreateRelPropExistsConstraint
	KindDropRelPropExistsConstraint

	KindQuery

	KindLoadCSV
	KindStart
	KindNodeIndexLookup
	KindNodeIndexQuery
	KindNodeIDLookup
	KindAllNodesScan
	KindRelIndexLookup
	KindRelIndexQuery
	KindRelIDLookup
	KindAllRelsScan

	KindMatch
	KindUsingIndexHint
	KindUsingJoinHint
	KindUsingScanHint
	KindMerge
	KindOnMatch
	KindOnCreate
	KindCreate
	KindSet
	KindSetProperty
	KindSetAllProperties
	KindMergeProperties
	KindSetLabels
	KindDelete
	KindRemove
	KindRemoveProperty
	KindRemoveLabels
	KindForeach
	KindWith
	KindUnwind
	KindCall
	KindReturn
	KindProjection
	KindOrderBy
	KindSortItem
	KindUnion

	KindUnaryOperator
	KindBinaryOperator
	KindComparison
	KindApplyOperator
	KindApplyAllOperator
	KindPropertyOperator
	KindSubscriptOperator
	KindSliceOperator
	KindLabelsOperator
	KindListComprehension
	KindCase
	KindFilter
	KindExtract
	KindReduce
	KindAll
	KindAny
	KindSingle
	KindNone

	KindCollection
	KindMap
	KindIdentifier
	KindParameter
	KindString
	KindInteger
	KindFloat
	KindTrue
	KindFalse
	KindNull
	KindLabel
	KindRelType
	KindPropName
	KindFunctionName
	KindIndexName
	KindProcName

	KindPattern
	KindNamedPath
	KindShortestPath
	KindPatternPath
	KindNodePattern
	KindRelPattern
	KindRange

	KindCommand
	KindLineComment
	KindBlockComment
	KindError

	kindCount
)

// Descriptor is the static, per-kind metadata: printable name and the
// kind's direct supertypes for the instanceof DAG walk. Per-kind detail
// rendering lives in pkg/render (which owns formatting), so ast has no
// render dependency; Clone is a generic deep-copy shared by every
// kind (see clone.go) and does not need per-kind overrides.
type Descriptor struct {
	Name    string
	Parents []Kind
}

var descriptors = make([]Descriptor, kindCount)

func define(k Kind, name string, parents ...Kind) {
	descriptors[k] = Descriptor{Name: name, Parents: parents}
}

func init() {
	define(KindExpression, "expression")
	define(KindStatementOption, "statement option")
	define(KindSchemaCommand, "schema command")
	define(KindClause, "clause")
	define(KindSetItem, "set item")
	define(KindRemoveItem, "remove item")
	define(KindHint, "hint")
	define(KindStartPoint, "start point")

	define(KindStatement, "statement")
	define(KindCypherOption, "CYPHER", KindStatementOption)
	define(KindCypherOptionParam, "cypher parameter")
	define(KindExplainOption, "EXPLAIN", KindStatementOption)
	define(KindProfileOption, "PROFILE", KindStatementOption)
	define(KindUsingPeriodicCommit, "USING PERIODIC COMMIT", KindStatementOption)

	define(KindCreateIndex, "CREATE INDEX", KindSchemaCommand)
	define(KindDropIndex, "DROP INDEX", KindSchemaCommand)
	define(KindCreateUniqueNodePropConstraint, "CREATE CONSTRAINT ON ... UNIQUE", KindSchemaCommand)
	define(KindDropUniqueNodePropConstraint, "DROP CONSTRAINT ON ... UNIQUE", KindSchemaCommand)
	define(KindCreateNodePropExistsConstraint, "CREATE CONSTRAINT ON ... EXISTS", KindSchemaCommand)
	define(KindDropNodePropExistsConstraint, "DROP CONSTRAINT ON ... EXISTS", KindSchemaCommand)
	define(KindCreateRelPropExistsConstraint, "CREATE CONSTRAINT ON ()-[]-() ... EXISTS", KindSchemaCommand)
	define(KindDropRelPropExistsConstraint, "DROP CONSTRAINT ON ()-[]-() ... EXISTS", KindSchemaCommand)

	define(KindQuery, "query")

	define(KindLoadCSV, "LOAD CSV", KindClause)
	define(KindStart, "START", KindClause)
	define(KindNodeIndexLookup, "node index lookup", KindStartPoint)
	define(KindNodeIndexQuery, "node index query", KindStartPoint)
	define(KindNodeIDLookup, "node id lookup", KindStartPoint)
	define(KindAllNodesScan, "all nodes scan", KindStartPoint)
	define(KindRelIndexLookup, "relationship index lookup", KindStartPoint)
	define(KindRelIndexQuery, "relationship index query", KindStartPoint)
	define(KindRelIDLookup, "relationship id lookup", KindStartPoint)
	define(KindAllRelsScan, "all relationships scan", KindStartPoint)

	define(KindMatch, "MATCH", KindClause)
	define(KindUsingIndexHint, "USING INDEX", KindHint)
	define(KindUsingJoinHint, "USING JOIN", KindHint)
	define(KindUsingScanHint, "USING SCAN", KindHint)
	define(KindMerge, "MERGE", KindClause)
	define(KindOnMatch, "ON MATCH")
	define(KindOnCreate, "ON CREATE")
	define(KindCreate, "CREATE", KindClause)
	define(KindSet, "SET", KindClause)
	define(KindSetProperty, "set property", KindSetItem)
	define(KindSetAllProperties, "set all properties", KindSetItem)
	define(KindMergeProperties, "merge properties", KindSetItem)
	define(KindSetLabels, "set labels", KindSetItem)
	define(KindDelete, "DELETE", KindClause)
	define(KindRemove, "REMOVE", KindClause)
	define(KindRemoveProperty, "remove property", KindRemoveItem)
	define(KindRemoveLabels, "remove labels", KindRemoveItem)
	define(KindForeach, "FOREACH", KindClause)
	define(KindWith, "WITH", KindClause)
	define(KindUnwind, "UNWIND", KindClause)
	define(KindCall, "CALL", KindClause)
	define(KindReturn, "RETURN", KindClause)
	define(KindProjection, "projection")
	define(KindOrderBy, "ORDER BY")
	define(KindSortItem, "sort item")
	define(KindUnion, "UNION")

	define(KindUnaryOperator, "unary operator", KindExpression)
	define(KindBinaryOperator, "binary operator", KindExpression)
	define(KindComparison, "comparison", KindExpression)
	define(KindApplyOperator, "apply", KindExpression)
	define(KindApplyAllOperator, "apply all", KindExpression)
	define(KindPropertyOperator, "property", KindExpression)
	define(KindSubscriptOperator, "subscript", KindExpression)
	define(KindSliceOperator, "slice", KindExpression)
	define(KindLabelsOperator, "has labels", KindExpression)
	define(KindListComprehension, "list comprehension", KindExpression)
	define(KindCase, "case", KindExpression)
	define(KindFilter, "filter", KindExpression)
	define(KindExtract, "extract", KindExpression)
	define(KindReduce, "reduce", KindExpression)
	define(KindAll, "all", KindExpression)
	define(KindAny, "any", KindExpression)
	define(KindSingle, "single", KindExpression)
	define(KindNone, "none", KindExpression)

	define(KindCollection, "collection", KindExpression)
	define(KindMap, "map", KindExpression)
	define(KindIdentifier, "identifier", KindExpression)
	define(KindParameter, "parameter", KindExpression)
	define(KindString, "string", KindExpression)
	define(KindInteger, "integer", KindExpression)
	define(KindFloat, "float", KindExpression)
	define(KindTrue, "true", KindExpression)
	define(KindFalse, "false", KindExpression)
	define(KindNull, "null", KindExpression)
	define(KindLabel, "label")
	define(KindRelType, "reltype")
	define(KindPropName, "prop name")
	define(KindFunctionName, "function name")
	define(KindIndexName, "index name")
	define(KindProcName, "proc name")

	define(KindPattern, "pattern")
	define(KindNamedPath, "named path", KindExpression)
	define(KindShortestPath, "shortestPath", KindExpression)
	define(KindPatternPath, "pattern path", KindExpression)
	define(KindNodePattern, "node pattern")
	define(KindRelPattern, "rel pattern")
	define(KindRange, "range")

	define(KindCommand, "command")
	define(KindLineComment, "line comment")
	define(KindBlockComment, "block comment")
	define(KindError, "error")
}

// Name returns the registry's printable name for k.
func (k Kind) Name() string {
	if int(k) >= len(descriptors) {
		return "unknown"
	}
	return descriptors[k].Name
}

// InstanceOf reports whether k is exactly target or has target as a
// transitive ancestor in the parent DAG.
func (k Kind) InstanceOf(target Kind) bool {
	if k == target {
		return true
	}
	for _, p := range descriptors[k].Parents {
		if p.InstanceOf(target) {
			return true
		}
	}
	return false
}
