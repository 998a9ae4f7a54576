package result

import (
	"strings"
	"testing"

	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ElementsAndDirectives(t *testing.T) {
	res := Parse([]byte("MATCH (n) RETURN n; :hunter\n"), parser.DefaultConfig(), parser.Default)
	require.Empty(t, res.Errors())
	require.Len(t, res.Elements(), 2)
	assert.True(t, res.Element(0).InstanceOf(ast.KindStatement))
	assert.True(t, res.Element(1).InstanceOf(ast.KindCommand))

	directives := res.Directives()
	require.Len(t, directives, 2)
	assert.Equal(t, res.Element(0), res.Directive(0))
	assert.True(t, res.EOF())
}

func TestParse_NodeCountIncludesRoots(t *testing.T) {
	res := Parse([]byte("RETURN 1;"), parser.DefaultConfig(), parser.Default)
	require.Empty(t, res.Errors())
	// statement -> query -> return -> projection -> integer: at least 5 nodes.
	assert.GreaterOrEqual(t, res.NodeCount(), 5)
}

func TestParse_ErrorsAccessor(t *testing.T) {
	res := Parse([]byte("RETURN ***;"), parser.DefaultConfig(), parser.Default)
	require.NotEmpty(t, res.Errors())
	assert.Equal(t, res.Errors()[0], res.Error(0))
}

func TestParse_LastPositionReportsCursorEnd(t *testing.T) {
	res := Parse([]byte(":hunter\n"), parser.DefaultConfig(), parser.Default)
	assert.Equal(t, uint64(8), res.LastPosition().Offset)
	assert.Equal(t, uint(2), res.LastPosition().Line)
}

func TestParseStream_MatchesInMemoryParse(t *testing.T) {
	src := "MATCH (n) RETURN n;"
	fromBytes := Parse([]byte(src), parser.DefaultConfig(), parser.Default)
	fromStream := ParseStream(strings.NewReader(src), parser.DefaultConfig(), parser.Default)
	assert.Equal(t, fromBytes.NodeCount(), fromStream.NodeCount())
	assert.Equal(t, len(fromBytes.Elements()), len(fromStream.Elements()))
}
