package parser

import (
	"testing"

	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/perrors"
	"github.com/orneryd/ocypher/pkg/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, src string, flags Flags) ([]*ast.Node, bool) {
	t.Helper()
	p := New([]byte(src), DefaultConfig(), flags)
	elements, errs, eof := p.Elements()
	require.Empty(t, errs, "unexpected diagnostics for %q", src)
	return elements, eof
}

func leafText(t *testing.T, n *ast.Node) string {
	t.Helper()
	leaf, ok := n.Payload().(ast.LeafPayload)
	require.True(t, ok, "node %s has no leaf payload", n.Kind().Name())
	return leaf.Text
}

func TestParser_SimpleMatchReturn(t *testing.T) {
	elements, eof := parseAll(t, "MATCH (n) RETURN n;", Default)
	require.True(t, eof)
	require.Len(t, elements, 1)
	stmt := elements[0]
	assert.True(t, stmt.InstanceOf(ast.KindStatement))
	require.Equal(t, 1, stmt.NChildren())
	query := stmt.Child(0)
	assert.True(t, query.InstanceOf(ast.KindQuery))
	require.Len(t, query.Children(), 2)
	assert.True(t, query.Children()[0].InstanceOf(ast.KindMatch))
	assert.True(t, query.Children()[1].InstanceOf(ast.KindReturn))
}

func TestParser_CommandWithNoArgs(t *testing.T) {
	p := New([]byte(":hunter\n"), DefaultConfig(), Default)
	elements, errs, eof := p.Elements()
	require.Empty(t, errs)
	require.True(t, eof)
	require.Len(t, elements, 1)

	cmd := elements[0]
	require.True(t, cmd.InstanceOf(ast.KindCommand))
	assert.Equal(t, uint64(0), cmd.Range().Start.Offset)
	assert.Equal(t, uint64(7), cmd.Range().End.Offset)

	payload := cmd.Payload().(ast.CommandPayload)
	assert.Equal(t, "hunter", leafText(t, payload.Name))
	assert.Equal(t, uint64(1), payload.Name.Range().Start.Offset)
	assert.Equal(t, uint64(7), payload.Name.Range().End.Offset)
	assert.Empty(t, payload.Args)
	assert.Equal(t, uint64(8), p.LastPos().Offset)
}

func TestParser_CommandWithArgs(t *testing.T) {
	elements, _ := parseAll(t, ":hunter s thompson\n", Default)
	require.Len(t, elements, 1)
	cmd := elements[0]
	assert.Equal(t, uint64(18), cmd.Range().End.Offset)

	payload := cmd.Payload().(ast.CommandPayload)
	require.Len(t, payload.Args, 2)
	assert.Equal(t, "s", leafText(t, payload.Args[0]))
	assert.Equal(t, uint64(8), payload.Args[0].Range().Start.Offset)
	assert.Equal(t, uint64(9), payload.Args[0].Range().End.Offset)
	assert.Equal(t, "thompson", leafText(t, payload.Args[1]))
	assert.Equal(t, uint64(10), payload.Args[1].Range().Start.Offset)
	assert.Equal(t, uint64(18), payload.Args[1].Range().End.Offset)
}

func TestParser_CommandWithQuotedArg(t *testing.T) {
	elements, _ := parseAll(t, ":thompson 'hunter s'\n", Default)
	payload := elements[0].Payload().(ast.CommandPayload)
	assert.Equal(t, "thompson", leafText(t, payload.Name))
	require.Len(t, payload.Args, 1)
	assert.Equal(t, "hunter s", leafText(t, payload.Args[0]))
	assert.Equal(t, uint64(20), elements[0].Range().End.Offset)
}

func TestParser_CommandWithPartialQuotedArg(t *testing.T) {
	elements, _ := parseAll(t, ":thompson lastname='hunter s'\n", Default)
	payload := elements[0].Payload().(ast.CommandPayload)
	require.Len(t, payload.Args, 1)
	assert.Equal(t, "lastname=hunter s", leafText(t, payload.Args[0]))
	assert.Equal(t, uint64(10), payload.Args[0].Range().Start.Offset)
	assert.Equal(t, uint64(29), payload.Args[0].Range().End.Offset)
}

func TestParser_CommandContinuationAndComments(t *testing.T) {
	elements, _ := parseAll(t, ":hunter \\ //firstname\ns \\\nthompson //lastname\n", Default)
	require.Len(t, elements, 1)
	cmd := elements[0]
	payload := cmd.Payload().(ast.CommandPayload)
	assert.Equal(t, "hunter", leafText(t, payload.Name))
	require.Len(t, payload.Args, 2)
	assert.Equal(t, "s", leafText(t, payload.Args[0]))
	assert.Equal(t, "thompson", leafText(t, payload.Args[1]))

	var comments int
	for _, c := range cmd.Children() {
		if c.InstanceOf(ast.KindLineComment) {
			comments++
		}
	}
	assert.Equal(t, 2, comments)
}

func TestParser_CommandEscapes(t *testing.T) {
	elements, _ := parseAll(t, ":hunter\\;s\\ thompson\n", Default)
	payload := elements[0].Payload().(ast.CommandPayload)
	assert.Equal(t, "hunter;s thompson", leafText(t, payload.Name))
	assert.Empty(t, payload.Args)
}

func TestParser_CypherOptionWithVersionAndProfile(t *testing.T) {
	elements, _ := parseAll(t, "CYPHER 3.0 PROFILE RETURN 1;", Default)
	stmt := elements[0]
	assert.True(t, stmt.InstanceOf(ast.KindStatement))
	require.Len(t, stmt.Children(), 3) // CYPHER option, PROFILE option, query

	opt := stmt.Children()[0]
	require.True(t, opt.InstanceOf(ast.KindCypherOption))
	optPayload := opt.Payload().(ast.CypherOptionPayload)
	require.NotNil(t, optPayload.Version)
	assert.Equal(t, "3.0", leafText(t, optPayload.Version))
	assert.True(t, stmt.Children()[1].InstanceOf(ast.KindProfileOption))

	query := stmt.Children()[2]
	ret := query.Payload().(ast.QueryPayload).Clauses[0]
	require.True(t, ret.InstanceOf(ast.KindReturn))
	items := ret.Payload().(ast.ReturnPayload).Items
	require.Len(t, items, 1)
	proj := items[0].Payload().(ast.ProjectionPayload)
	assert.True(t, proj.Expression.InstanceOf(ast.KindInteger))
	assert.Equal(t, "1", leafText(t, proj.Expression))
	require.NotNil(t, proj.Alias)
	assert.True(t, proj.Alias.InstanceOf(ast.KindIdentifier))
	assert.Equal(t, "1", leafText(t, proj.Alias))
}

func TestParser_CypherOptionParams(t *testing.T) {
	elements, _ := parseAll(t, "CYPHER param1=1 param2='str' RETURN 1;", Default)
	opt := elements[0].Children()[0]
	payload := opt.Payload().(ast.CypherOptionPayload)
	require.Len(t, payload.Params, 2)
	p1 := payload.Params[0].Payload().(ast.CypherOptionParamPayload)
	assert.Equal(t, "param1", leafText(t, p1.Name))
	assert.Equal(t, "1", leafText(t, p1.Value))
	p2 := payload.Params[1].Payload().(ast.CypherOptionParamPayload)
	assert.Equal(t, "param2", leafText(t, p2.Name))
	assert.Equal(t, "str", leafText(t, p2.Value))
}

func TestParser_CreateIndexIsSchemaCommand(t *testing.T) {
	elements, _ := parseAll(t, "CREATE INDEX ON :Foo(bar);", Default)
	require.Len(t, elements, 1)
	stmt := elements[0]
	assert.Equal(t, uint64(26), stmt.Range().End.Offset)
	require.Equal(t, 1, stmt.NChildren())
	index := stmt.Child(0)
	require.True(t, index.InstanceOf(ast.KindCreateIndex))
	payload := index.Payload().(ast.IndexPayload)
	assert.Equal(t, "Foo", leafText(t, payload.Label))
	require.Len(t, payload.PropNames, 1)
	assert.Equal(t, "bar", leafText(t, payload.PropNames[0]))
}

func TestParser_CreateClauseIsNotSchemaCommand(t *testing.T) {
	elements, _ := parseAll(t, "CREATE (n:Foo);", Default)
	require.Len(t, elements, 1)
	query := elements[0].Child(0)
	assert.True(t, query.InstanceOf(ast.KindQuery))
	assert.True(t, query.Children()[0].InstanceOf(ast.KindCreate))
}

func TestParser_UniqueConstraint(t *testing.T) {
	elements, _ := parseAll(t, "CREATE CONSTRAINT ON (n:Person) ASSERT n.id IS UNIQUE;", Default)
	body := elements[0].Child(0)
	require.True(t, body.InstanceOf(ast.KindCreateUniqueNodePropConstraint))
	payload := body.Payload().(ast.ConstraintPayload)
	assert.Equal(t, "n", leafText(t, payload.Identifier))
	assert.Equal(t, "Person", leafText(t, payload.Label))
	assert.True(t, payload.Expression.InstanceOf(ast.KindPropertyOperator))
}

func TestParser_RelPropExistsConstraint(t *testing.T) {
	elements, _ := parseAll(t, "DROP CONSTRAINT ON ()-[r:KNOWS]-() ASSERT exists(r.since);", Default)
	body := elements[0].Child(0)
	require.True(t, body.InstanceOf(ast.KindDropRelPropExistsConstraint))
	payload := body.Payload().(ast.ConstraintPayload)
	assert.True(t, payload.Label.InstanceOf(ast.KindRelType))
	assert.True(t, payload.Expression.InstanceOf(ast.KindApplyOperator))
}

func TestParser_UnionChainsQueries(t *testing.T) {
	elements, _ := parseAll(t, "MATCH (n) RETURN n UNION MATCH (m) RETURN m;", Default)
	body := elements[0].Child(0)
	assert.True(t, body.InstanceOf(ast.KindUnion))
	assert.Equal(t, 2, body.NChildren())
}

func TestParser_MixedUnionAllIsInvalidStructure(t *testing.T) {
	p := New([]byte("RETURN 1 UNION RETURN 2 UNION ALL RETURN 3;"), DefaultConfig(), Default)
	elements, errs, _ := p.Elements()
	require.Len(t, elements, 1)
	assert.True(t, elements[0].InstanceOf(ast.KindStatement))
	require.Len(t, errs, 1)
	assert.Equal(t, perrors.CategoryInvalidStructure, errs[0].Category())
	assert.Equal(t, "Invalid combination of UNION and UNION ALL", errs[0].Message())
}

func TestParser_UsingPeriodicCommitIsQueryOption(t *testing.T) {
	elements, _ := parseAll(t,
		"USING PERIODIC COMMIT 500 LOAD CSV WITH HEADERS FROM 'file:///a.csv' AS line CREATE (n);",
		Default)
	query := elements[0].Child(0)
	payload := query.Payload().(ast.QueryPayload)
	require.Len(t, payload.Options, 1)
	opt := payload.Options[0]
	require.True(t, opt.InstanceOf(ast.KindUsingPeriodicCommit))
	limit := opt.Payload().(ast.UsingPeriodicCommitPayload).Limit
	require.NotNil(t, limit)
	assert.Equal(t, "500", leafText(t, limit))

	load := payload.Clauses[0]
	require.True(t, load.InstanceOf(ast.KindLoadCSV))
	loadPayload := load.Payload().(ast.LoadCSVPayload)
	assert.True(t, loadPayload.WithHeaders)
	assert.Equal(t, "line", leafText(t, loadPayload.Identifier))
}

func TestParser_StartClauseIDLookup(t *testing.T) {
	elements, _ := parseAll(t, "START n = node(1, 2) RETURN n;", Default)
	query := elements[0].Child(0)
	start := query.Payload().(ast.QueryPayload).Clauses[0]
	require.True(t, start.InstanceOf(ast.KindStart))
	points := start.Payload().(ast.StartPayload).Points
	require.Len(t, points, 1)
	require.True(t, points[0].InstanceOf(ast.KindNodeIDLookup))
	ids := points[0].Payload().(ast.NodeIDLookupPayload).IDs
	require.Len(t, ids, 2)
	assert.Equal(t, "1", leafText(t, ids[0]))
	assert.Equal(t, "2", leafText(t, ids[1]))
}

func TestParser_StartClauseAllScans(t *testing.T) {
	elements, _ := parseAll(t, "START n = node(*), r = relationship(*) RETURN n;", Default)
	query := elements[0].Child(0)
	startClause := query.Payload().(ast.QueryPayload).Clauses[0]
	points := startClause.Payload().(ast.StartPayload).Points
	require.Len(t, points, 2)

	require.True(t, points[0].InstanceOf(ast.KindAllNodesScan))
	assert.Equal(t, "n", leafText(t, points[0].Payload().(ast.AllScanPayload).Identifier))

	require.True(t, points[1].InstanceOf(ast.KindAllRelsScan))
	assert.Equal(t, "r", leafText(t, points[1].Payload().(ast.AllScanPayload).Identifier))
}

func TestParser_VarLengthRelPattern(t *testing.T) {
	elements, _ := parseAll(t, "MATCH (a)-[r:KNOWS|LIKES*1..3]->(b) RETURN r;", Default)
	match := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	pattern := match.Payload().(ast.MatchPayload).Pattern
	path := pattern.Payload().(ast.PatternPayload).Paths[0]
	elementsSeq := path.Payload().(ast.PatternPathPayload).Elements
	require.Len(t, elementsSeq, 3)

	rel := elementsSeq[1].Payload().(ast.RelPatternPayload)
	assert.Equal(t, ast.DirOutbound, rel.Direction)
	require.Len(t, rel.RelTypes, 2)
	assert.Equal(t, "KNOWS", leafText(t, rel.RelTypes[0]))
	assert.Equal(t, "LIKES", leafText(t, rel.RelTypes[1]))
	require.NotNil(t, rel.VarLength)
	varlen := rel.VarLength.Payload().(ast.RangePayload)
	assert.Equal(t, "1", leafText(t, varlen.Start))
	assert.Equal(t, "3", leafText(t, varlen.End))
}

func TestParser_ComparisonChainIsNAry(t *testing.T) {
	elements, _ := parseAll(t, "RETURN 1 < 2 <= 3;", Default)
	ret := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	expr := ret.Payload().(ast.ReturnPayload).Items[0].Payload().(ast.ProjectionPayload).Expression
	require.True(t, expr.InstanceOf(ast.KindComparison))
	payload := expr.Payload().(ast.ComparisonPayload)
	require.Len(t, payload.Ops, 2)
	assert.Equal(t, ast.OpLess, payload.Ops[0])
	assert.Equal(t, ast.OpLessEqual, payload.Ops[1])
	require.Len(t, payload.Args, 2)
}

func TestParser_IsNullIsPostfixUnary(t *testing.T) {
	elements, _ := parseAll(t, "MATCH (n) WHERE n.x IS NOT NULL RETURN n;", Default)
	match := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	pred := match.Payload().(ast.MatchPayload).Predicate
	require.NotNil(t, pred)
	require.True(t, pred.InstanceOf(ast.KindUnaryOperator))
	assert.Equal(t, ast.OpIsNotNull, pred.Payload().(ast.UnaryOperatorPayload).Op)
}

func TestParser_SliceOperator(t *testing.T) {
	elements, _ := parseAll(t, "RETURN a[1..2], a[..2], a[3];", Default)
	ret := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	items := ret.Payload().(ast.ReturnPayload).Items

	slice := items[0].Payload().(ast.ProjectionPayload).Expression
	require.True(t, slice.InstanceOf(ast.KindSliceOperator))
	sp := slice.Payload().(ast.SliceOperatorPayload)
	assert.Equal(t, "1", leafText(t, sp.From))
	assert.Equal(t, "2", leafText(t, sp.To))

	open := items[1].Payload().(ast.ProjectionPayload).Expression
	require.True(t, open.InstanceOf(ast.KindSliceOperator))
	assert.Nil(t, open.Payload().(ast.SliceOperatorPayload).From)

	sub := items[2].Payload().(ast.ProjectionPayload).Expression
	assert.True(t, sub.InstanceOf(ast.KindSubscriptOperator))
}

func TestParser_ExpressionAtomsSmoke(t *testing.T) {
	elements, _ := parseAll(t,
		"RETURN reduce(acc = 0, x IN list | acc + x), extract(x IN xs | x.p), "+
			"all(x IN xs WHERE x > 0), [y IN ys WHERE y > 1 | y * 2], "+
			"CASE WHEN true THEN 1 ELSE 2 END, {a: 1, b: 'two'}, count(*), $param;",
		Default)
	ret := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	items := ret.Payload().(ast.ReturnPayload).Items
	require.Len(t, items, 8)
	kinds := []ast.Kind{
		ast.KindReduce, ast.KindExtract, ast.KindAll, ast.KindListComprehension,
		ast.KindCase, ast.KindMap, ast.KindApplyAllOperator, ast.KindParameter,
	}
	for i, k := range kinds {
		expr := items[i].Payload().(ast.ProjectionPayload).Expression
		assert.True(t, expr.InstanceOf(k), "item %d: got %s, want %s", i, expr.Kind().Name(), k.Name())
	}
}

func TestParser_CallClauseWithYield(t *testing.T) {
	elements, _ := parseAll(t, "CALL db.labels() YIELD label RETURN label;", Default)
	call := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	require.True(t, call.InstanceOf(ast.KindCall))
	payload := call.Payload().(ast.CallPayload)
	assert.Equal(t, "db.labels", leafText(t, payload.ProcName))
	assert.Empty(t, payload.Args)
	require.Len(t, payload.Yield, 1)
}

func TestParser_ForeachClause(t *testing.T) {
	elements, _ := parseAll(t, "MATCH (n) FOREACH (x IN n.list | SET n.count = x);", Default)
	clauses := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses
	require.Len(t, clauses, 2)
	foreach := clauses[1]
	require.True(t, foreach.InstanceOf(ast.KindForeach))
	payload := foreach.Payload().(ast.ForeachPayload)
	assert.Equal(t, "x", leafText(t, payload.Identifier))
	require.Len(t, payload.Clauses, 1)
	assert.True(t, payload.Clauses[0].InstanceOf(ast.KindSet))
}

func TestParser_CommandParsing(t *testing.T) {
	elements, eof := parseAll(t, ":hunter\n", Default)
	require.True(t, eof)
	require.Len(t, elements, 1)
	assert.True(t, elements[0].InstanceOf(ast.KindCommand))
}

func TestParser_OnlyStatementsFlagRejectsCommandPrefix(t *testing.T) {
	p := New([]byte(":hunter\n"), DefaultConfig(), OnlyStatements)
	elements, errs, eof := p.Elements()
	require.True(t, eof)
	require.Len(t, elements, 1)
	assert.True(t, elements[0].InstanceOf(ast.KindError))
	assert.NotEmpty(t, errs)
}

func TestParser_SingleFlagStopsAfterFirstElement(t *testing.T) {
	elements, eof := parseAll(t, "RETURN 1; RETURN 2;", Single)
	require.False(t, eof)
	require.Len(t, elements, 1)
}

func TestParser_OnlyParametersCapturesRemainderAsString(t *testing.T) {
	elements, _ := parseAll(t,
		"CYPHER param1=1 param2='str' MATCH (n) WHERE n.x = $param1 and n.y = $param2 RETURN n;",
		OnlyParameters)
	stmt := elements[0]
	require.Len(t, stmt.Children(), 2)
	assert.True(t, stmt.Children()[0].InstanceOf(ast.KindCypherOption))
	body := stmt.Children()[1]
	require.True(t, body.InstanceOf(ast.KindString))
	assert.Equal(t, "MATCH (n) WHERE n.x = $param1 and n.y = $param2 RETURN n", leafText(t, body))
}

func TestParser_OnlyParametersWithoutCypherOption(t *testing.T) {
	elements, _ := parseAll(t, "MATCH (n) RETURN n;", OnlyParameters)
	stmt := elements[0]
	require.Len(t, stmt.Children(), 1)
	assert.True(t, stmt.Children()[0].InstanceOf(ast.KindString))
}

func TestParser_SyntaxErrorRecoversToNextStatement(t *testing.T) {
	p := New([]byte("RETURN ***; RETURN 1;"), DefaultConfig(), Default)
	elements, errs, eof := p.Elements()
	require.True(t, eof)
	require.Len(t, elements, 2)
	assert.True(t, elements[0].InstanceOf(ast.KindError))
	assert.True(t, elements[1].InstanceOf(ast.KindStatement))
	assert.NotEmpty(t, errs)
}

func TestParser_ExpectedMessageAtFurthestPosition(t *testing.T) {
	p := New([]byte("MATCH (n) RETURN;"), DefaultConfig(), Default)
	elements, errs, _ := p.Elements()
	require.Len(t, elements, 1)
	assert.True(t, elements[0].InstanceOf(ast.KindError))
	require.Len(t, errs, 1)
	e := errs[0]
	assert.Equal(t, perrors.CategoryExpected, e.Category())
	assert.Equal(t, "Invalid input ';': expected an expression", e.Message())
	assert.Equal(t, uint64(16), e.Position().Offset)
	assert.Equal(t, "MATCH (n) RETURN;", e.Context())
	assert.Equal(t, 16, e.ContextOffset())
}

func TestParser_UnterminatedStringDiagnostic(t *testing.T) {
	p := New([]byte("RETURN 'abc"), DefaultConfig(), Default)
	elements, errs, _ := p.Elements()
	require.Len(t, elements, 1)
	assert.True(t, elements[0].InstanceOf(ast.KindStatement))
	require.NotEmpty(t, errs)
	assert.Equal(t, perrors.CategoryUnterminated, errs[0].Category())
	assert.Equal(t, uint64(7), errs[0].Position().Offset)
}

func TestParser_MalformedUnicodeEscapeDiagnostic(t *testing.T) {
	p := New([]byte("RETURN '\\uZZ99';"), DefaultConfig(), Default)
	elements, errs, _ := p.Elements()
	require.Len(t, elements, 1)
	require.NotEmpty(t, errs)
	assert.Equal(t, perrors.CategoryInvalidLiteral, errs[0].Category())
}

func TestParser_UnicodeEscapeDecodes(t *testing.T) {
	elements, _ := parseAll(t, "RETURN '\\u0041';", Default)
	ret := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	expr := ret.Payload().(ast.ReturnPayload).Items[0].Payload().(ast.ProjectionPayload).Expression
	assert.Equal(t, "A", leafText(t, expr))
}

func TestParser_CommentsBetweenDirectivesAreElements(t *testing.T) {
	p := New([]byte("// lead\nRETURN 1; /* mid */ RETURN 2;"), DefaultConfig(), Default)
	elements, errs, _ := p.Elements()
	require.Empty(t, errs)
	require.Len(t, elements, 4)
	assert.True(t, elements[0].InstanceOf(ast.KindLineComment))
	assert.True(t, elements[1].InstanceOf(ast.KindStatement))
	assert.True(t, elements[2].InstanceOf(ast.KindBlockComment))
	assert.True(t, elements[3].InstanceOf(ast.KindStatement))
}

func TestParser_CommentInsideStatementIsChild(t *testing.T) {
	elements, _ := parseAll(t, "RETURN /* note */ 1;", Default)
	stmt := elements[0]
	require.Equal(t, 2, stmt.NChildren())
	assert.True(t, stmt.Child(0).InstanceOf(ast.KindQuery))
	comment := stmt.Child(1)
	require.True(t, comment.InstanceOf(ast.KindBlockComment))
	assert.Equal(t, " note ", leafText(t, comment))
	assert.True(t, stmt.Range().Contains(comment.Range()))
}

func TestParser_NumericLexemesPreserved(t *testing.T) {
	elements, _ := parseAll(t, "RETURN 2.30, 007, 1e10;", Default)
	ret := elements[0].Child(0).Payload().(ast.QueryPayload).Clauses[0]
	items := ret.Payload().(ast.ReturnPayload).Items
	require.Len(t, items, 3)
	assert.Equal(t, "2.30", leafText(t, items[0].Payload().(ast.ProjectionPayload).Expression))
	assert.Equal(t, "007", leafText(t, items[1].Payload().(ast.ProjectionPayload).Expression))
	assert.Equal(t, "1e10", leafText(t, items[2].Payload().(ast.ProjectionPayload).Expression))
}

func TestParser_InitialPositionAndOrdinalShiftResults(t *testing.T) {
	src := "MATCH (n) RETURN n;"
	base, _ := parseAll(t, src, Default)

	cfg := DefaultConfig()
	cfg.InitialPosition = position.Position{Line: 4, Column: 1, Offset: 100}
	cfg.InitialOrdinal = 10
	p := New([]byte(src), cfg, Default)
	shifted, errs, _ := p.Elements()
	require.Empty(t, errs)
	require.Len(t, shifted, len(base))

	var walk func(a, b *ast.Node)
	walk = func(a, b *ast.Node) {
		assert.Equal(t, a.Kind(), b.Kind())
		assert.Equal(t, a.Range().Start.Offset+100, b.Range().Start.Offset)
		assert.Equal(t, a.Range().End.Offset+100, b.Range().End.Offset)
		assert.Equal(t, a.Ordinal()+10, b.Ordinal())
		require.Equal(t, a.NChildren(), b.NChildren())
		for i := range a.Children() {
			walk(a.Child(i), b.Child(i))
		}
	}
	for i := range base {
		walk(base[i], shifted[i])
	}
}

func TestParser_OrdinalsAreAssignedDepthFirstAndMonotonic(t *testing.T) {
	elements, _ := parseAll(t, "MATCH (n) RETURN n;", Default)
	var prev uint
	var walk func(n *ast.Node)
	first := true
	walk = func(n *ast.Node) {
		if !first {
			assert.Greater(t, n.Ordinal(), prev)
		}
		prev, first = n.Ordinal(), false
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, n := range elements {
		walk(n)
	}
}

func TestParser_RangeContainmentHoldsEverywhere(t *testing.T) {
	elements, _ := parseAll(t,
		"MATCH (a:Person {name: 'x'})-[r:KNOWS*2..]->(b) WHERE a.age > 21 "+
			"WITH a, count(r) AS c ORDER BY c DESC SKIP 1 LIMIT 5 RETURN a, c;",
		Default)
	var walk func(n *ast.Node)
	walk = func(n *ast.Node) {
		for _, c := range n.Children() {
			assert.True(t, n.Range().Contains(c.Range()),
				"%s %s does not contain child %s %s",
				n.Kind().Name(), n.Range(), c.Kind().Name(), c.Range())
			walk(c)
		}
	}
	for _, n := range elements {
		walk(n)
	}
}
