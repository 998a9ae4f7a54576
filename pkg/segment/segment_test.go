package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(input string, flags Flags) []Segment {
	var out []Segment
	QuickParse([]byte(input), flags, func(s Segment) int {
		out = append(out, s)
		return 0
	})
	return out
}

func TestQuickParse_SingleStatementTrimsTerminator(t *testing.T) {
	segs := collect("return 1;", Default)
	require.Len(t, segs, 1)
	assert.Equal(t, KindStatement, segs[0].Kind)
	assert.Equal(t, "return 1", string(segs[0].Text))
	assert.Equal(t, uint64(0), segs[0].Range.Start.Offset)
	assert.Equal(t, uint64(8), segs[0].Range.End.Offset)
	assert.False(t, segs[0].EOF)
}

func TestQuickParse_MultipleStatementsTrimTrailingBlanks(t *testing.T) {
	segs := collect("return 1; return 2;\n   return 3    ;", Default)
	require.Len(t, segs, 3)

	assert.Equal(t, "return 1", string(segs[0].Text))
	assert.Equal(t, uint64(0), segs[0].Range.Start.Offset)
	assert.Equal(t, uint64(8), segs[0].Range.End.Offset)

	assert.Equal(t, "return 2", string(segs[1].Text))
	assert.Equal(t, uint64(10), segs[1].Range.Start.Offset)
	assert.Equal(t, uint64(18), segs[1].Range.End.Offset)

	assert.Equal(t, "return 3", string(segs[2].Text))
	assert.Equal(t, uint64(23), segs[2].Range.Start.Offset)
	assert.Equal(t, uint(2), segs[2].Range.Start.Line)
	assert.Equal(t, uint(4), segs[2].Range.Start.Column)
	assert.Equal(t, uint64(31), segs[2].Range.End.Offset)
	assert.False(t, segs[2].EOF)
}

func TestQuickParse_StatementWithoutTerminatorFlagsEOF(t *testing.T) {
	segs := collect("return 1; return 2", Default)
	require.Len(t, segs, 2)
	assert.False(t, segs[0].EOF)
	assert.Equal(t, "return 2", string(segs[1].Text))
	assert.Equal(t, uint64(18), segs[1].Range.End.Offset)
	assert.True(t, segs[1].EOF)
}

func TestQuickParse_CommandsTerminateAtNewlineOrSemicolon(t *testing.T) {
	segs := collect(":hunter\n:s;:thompson // loathing", Default)
	require.Len(t, segs, 3)

	assert.Equal(t, KindCommand, segs[0].Kind)
	assert.Equal(t, ":hunter", string(segs[0].Text))
	assert.Equal(t, uint64(7), segs[0].Range.End.Offset)
	assert.False(t, segs[0].EOF)

	assert.Equal(t, ":s", string(segs[1].Text))
	assert.Equal(t, uint64(8), segs[1].Range.Start.Offset)
	assert.Equal(t, uint64(10), segs[1].Range.End.Offset)
	assert.False(t, segs[1].EOF)

	assert.Equal(t, ":thompson", string(segs[2].Text))
	assert.Equal(t, uint64(11), segs[2].Range.Start.Offset)
	assert.Equal(t, uint64(20), segs[2].Range.End.Offset)
	assert.True(t, segs[2].EOF)
}

func TestQuickParse_CommandContinuationJoinsLines(t *testing.T) {
	segs := collect(":hunter \\ //firstname\ns \\\nthompson //lastname\n", Default)
	require.Len(t, segs, 1)
	assert.Equal(t, KindCommand, segs[0].Kind)
	assert.Equal(t, ":hunter \\ //firstname\ns \\\nthompson", string(segs[0].Text))
	assert.Equal(t, uint64(0), segs[0].Range.Start.Offset)
	assert.Equal(t, uint64(34), segs[0].Range.End.Offset)
	assert.False(t, segs[0].EOF)
}

func TestQuickParse_CommandEscapesAndQuotesGuardTerminators(t *testing.T) {
	segs := collect(":hunter\\;s\\\"thom\\\\\"pson;\"\n", Default)
	require.Len(t, segs, 1)
	assert.Equal(t, KindCommand, segs[0].Kind)
	assert.Equal(t, ":hunter\\;s\\\"thom\\\\\"pson;\"", string(segs[0].Text))
	assert.Equal(t, uint64(25), segs[0].Range.End.Offset)
	assert.False(t, segs[0].EOF)
}

func TestQuickParse_CommandBlockCommentDoesNotTerminate(t *testing.T) {
	segs := collect(":hunter /*;s\n*/thompson\n", Default)
	require.Len(t, segs, 1)
	assert.Equal(t, ":hunter /*;s\n*/thompson", string(segs[0].Text))
	assert.Equal(t, uint64(23), segs[0].Range.End.Offset)
	assert.False(t, segs[0].EOF)
}

func TestQuickParse_CommandQuotesHideComments(t *testing.T) {
	segs := collect(":hunter //;s\n:thompson \"fear /*\"\n:and \"*/loathing\"", Default)
	require.Len(t, segs, 3)
	assert.Equal(t, ":hunter", string(segs[0].Text))
	assert.Equal(t, ":thompson \"fear /*\"", string(segs[1].Text))
	assert.Equal(t, uint64(13), segs[1].Range.Start.Offset)
	assert.Equal(t, uint64(32), segs[1].Range.End.Offset)
	assert.Equal(t, ":and \"*/loathing\"", string(segs[2].Text))
	assert.True(t, segs[2].EOF)
}

func TestQuickParse_OnlyStatementsFoldsColonIntoStatement(t *testing.T) {
	segs := collect("return 1; :foo bar\"baz\"\n return 2;", OnlyStatements)
	require.Len(t, segs, 2)
	assert.Equal(t, KindStatement, segs[0].Kind)
	assert.Equal(t, "return 1", string(segs[0].Text))
	assert.Equal(t, KindStatement, segs[1].Kind)
	assert.Equal(t, ":foo bar\"baz\"\n return 2", string(segs[1].Text))
	assert.Equal(t, uint64(10), segs[1].Range.Start.Offset)
	assert.Equal(t, uint64(33), segs[1].Range.End.Offset)
}

func TestQuickParse_EmptyInputYieldsNoSegments(t *testing.T) {
	assert.Empty(t, collect("", Default))
}

func TestQuickParse_WhitespaceOnlyInputYieldsNoSegments(t *testing.T) {
	assert.Empty(t, collect("   \n\t  ", Default))
	assert.Empty(t, collect("// just a comment\n", Default))
}

func TestQuickParse_BareSemicolonIsEmptyStatement(t *testing.T) {
	segs := collect("  ; ", Default)
	require.Len(t, segs, 1)
	assert.Equal(t, KindStatement, segs[0].Kind)
	assert.Equal(t, "", string(segs[0].Text))
	assert.Equal(t, uint64(2), segs[0].Range.Start.Offset)
	assert.Equal(t, uint64(2), segs[0].Range.End.Offset)
	assert.False(t, segs[0].EOF)
}

func TestQuickParse_SemicolonInsideStringDoesNotTerminate(t *testing.T) {
	segs := collect(`RETURN 'a;b';`, Default)
	require.Len(t, segs, 1)
	assert.Equal(t, `RETURN 'a;b'`, string(segs[0].Text))
}

func TestQuickParse_SemicolonInsideCommentDoesNotTerminate(t *testing.T) {
	segs := collect("RETURN 1 /* a;b */;", Default)
	require.Len(t, segs, 1)
	assert.Equal(t, "RETURN 1", string(segs[0].Text))
}

func TestQuickParse_AbortPropagatesNonZeroReturn(t *testing.T) {
	calls := 0
	rc := QuickParse([]byte("RETURN 1; RETURN 2;"), Default, func(s Segment) int {
		calls++
		return 7
	})
	assert.Equal(t, 7, rc)
	assert.Equal(t, 1, calls)
}

func TestQuickParseStream_MatchesInMemory(t *testing.T) {
	input := "return 1; :cmd arg\nreturn 2"
	fromBytes := collect(input, Default)
	var fromStream []Segment
	QuickParseStream(strings.NewReader(input), Default, func(s Segment) int {
		fromStream = append(fromStream, s)
		return 0
	})
	require.Equal(t, len(fromBytes), len(fromStream))
	for i := range fromBytes {
		assert.Equal(t, fromBytes[i].Kind, fromStream[i].Kind)
		assert.Equal(t, string(fromBytes[i].Text), string(fromStream[i].Text))
		assert.Equal(t, fromBytes[i].Range, fromStream[i].Range)
		assert.Equal(t, fromBytes[i].EOF, fromStream[i].EOF)
	}
}
