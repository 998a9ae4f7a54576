package ast

import (
	"testing"

	"github.com/orneryd/ocypher/pkg/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(start, end uint64) position.Range {
	return position.Range{
		Start: position.Position{Line: 1, Column: uint(start) + 1, Offset: start},
		End:   position.Position{Line: 1, Column: uint(end) + 1, Offset: end},
	}
}

func TestKind_InstanceOfReflexiveAndAncestor(t *testing.T) {
	assert.True(t, KindMatch.InstanceOf(KindMatch))
	assert.True(t, KindMatch.InstanceOf(KindClause))
	assert.False(t, KindMatch.InstanceOf(KindReturn))
}

func TestKind_NameIsStableAndNonEmpty(t *testing.T) {
	assert.Equal(t, "MATCH", KindMatch.Name())
	assert.NotEmpty(t, KindStatement.Name())
}

func TestNewStatement_RejectsNonQueryBody(t *testing.T) {
	bogus := NewIdentifier("n", rng(0, 1))
	_, err := NewStatement(nil, bogus, rng(0, 1))
	require.Error(t, err)
	var ice *InvalidChildError
	assert.ErrorAs(t, err, &ice)
}

func TestNewMatch_OwnershipInvariant(t *testing.T) {
	pattern, err := NewPattern(nil, rng(0, 1))
	require.NoError(t, err)
	match, err := NewMatch(false, pattern, nil, nil, rng(0, 1))
	require.NoError(t, err)

	require.Equal(t, 1, match.NChildren())
	assert.Same(t, pattern, match.Child(0))

	payload, ok := match.Payload().(MatchPayload)
	require.True(t, ok)
	assert.Same(t, pattern, payload.Pattern)
}

func TestAssignOrdinals_DepthFirstPreOrder(t *testing.T) {
	ident := NewIdentifier("n", rng(0, 1))
	ret, err := NewReturn(false, false, []*Node{mustProjection(t, ident)}, nil, nil, nil, rng(0, 1))
	require.NoError(t, err)
	query, err := NewQuery(nil, []*Node{ret}, rng(0, 1))
	require.NoError(t, err)

	next := AssignOrdinals(query, 5)
	assert.Equal(t, uint(5), query.Ordinal())
	assert.Equal(t, uint(6), ret.Ordinal())
	assert.Greater(t, next, ret.Ordinal())
}

func mustProjection(t *testing.T, expr *Node) *Node {
	t.Helper()
	p, err := NewProjection(expr, nil, expr.Range())
	require.NoError(t, err)
	return p
}

func TestClone_DeepCopiesAndRemapsPayloadReferences(t *testing.T) {
	ident := NewIdentifier("n", rng(0, 1))
	pattern, err := NewPattern(nil, rng(0, 1))
	require.NoError(t, err)
	match, err := NewMatch(false, pattern, nil, ident, rng(0, 2))
	require.NoError(t, err)

	clone := Clone(match)
	require.NotSame(t, match, clone)
	require.Equal(t, match.NChildren(), clone.NChildren())
	assert.NotSame(t, match.Child(0), clone.Child(0))

	payload, ok := clone.Payload().(MatchPayload)
	require.True(t, ok)
	assert.Same(t, clone.Child(0), payload.Pattern)
	assert.NotSame(t, match.Payload().(MatchPayload).Predicate, payload.Predicate)
}

func TestAttachComments_AppendsToChildrenOnly(t *testing.T) {
	pattern, err := NewPattern(nil, rng(0, 1))
	require.NoError(t, err)
	match, err := NewMatch(false, pattern, nil, nil, rng(0, 10))
	require.NoError(t, err)

	comment := NewLineComment(" note", rng(4, 9))
	require.NoError(t, AttachComments(match, []*Node{comment}))
	require.Equal(t, 2, match.NChildren())
	assert.Same(t, comment, match.Child(1))
	// payload slots are untouched
	assert.Same(t, pattern, match.Payload().(MatchPayload).Pattern)

	bogus := NewIdentifier("x", rng(0, 1))
	assert.Error(t, AttachComments(match, []*Node{bogus}))
}

func TestRange_ContainsChildRanges(t *testing.T) {
	outer := rng(0, 10)
	inner := rng(2, 5)
	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
}
