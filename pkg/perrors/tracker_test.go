package perrors

import (
	"testing"

	"github.com/orneryd/ocypher/pkg/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pos1 = position.Position{Line: 1, Column: 1, Offset: 0}

func TestTracker_NoLabels(t *testing.T) {
	tr := New(Plain)
	assert.False(t, tr.HasPotentials())
	assert.Nil(t, tr.ReifyExpected(nil))
}

func TestTracker_OneLabel(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, 'x', true, "label")
	e := tr.ReifyExpected(nil)
	require.NotNil(t, e)
	assert.Equal(t, "Invalid input 'x': expected label", e.Message())
}

func TestTracker_TwoLabels(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, 'x', true, "label1")
	tr.NotePotential(pos1, 'x', true, "label2")
	e := tr.ReifyExpected(nil)
	require.NotNil(t, e)
	assert.Equal(t, "Invalid input 'x': expected label1 or label2", e.Message())
}

func TestTracker_ThreeLabels(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, 'x', true, "label1")
	tr.NotePotential(pos1, 'x', true, "label2")
	tr.NotePotential(pos1, 'x', true, "label3")
	e := tr.ReifyExpected(nil)
	require.NotNil(t, e)
	assert.Equal(t, "Invalid input 'x': expected label1, label2 or label3", e.Message())
}

func TestTracker_NewlineChar(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, '\n', true, "label")
	e := tr.ReifyExpected(nil)
	require.NotNil(t, e)
	assert.Equal(t, `Invalid input '\n': expected label`, e.Message())
}

func TestTracker_DuplicateLabels(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, 'x', true, "label1")
	tr.NotePotential(pos1, 'x', true, "label2")
	tr.NotePotential(pos1, 'x', true, "label1")
	e := tr.ReifyExpected(nil)
	require.NotNil(t, e)
	assert.Equal(t, "Invalid input 'x': expected label1 or label2", e.Message())
}

func TestTracker_EndOfInput(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, 0, false, "label")
	e := tr.ReifyExpected(nil)
	require.NotNil(t, e)
	assert.Equal(t, "Invalid input <end of input>: expected label", e.Message())
}

func TestTracker_CommitDiscardsEarlier(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, 'x', true, "early")
	later := position.Position{Line: 1, Column: 5, Offset: 4}
	tr.Commit(later)
	assert.False(t, tr.HasPotentials())
}

func TestTracker_FurthestWins(t *testing.T) {
	tr := New(Plain)
	later := position.Position{Line: 1, Column: 5, Offset: 4}
	tr.NotePotential(pos1, 'a', true, "near")
	tr.NotePotential(later, 'b', true, "far")
	e := tr.ReifyExpected(nil)
	require.NotNil(t, e)
	assert.Equal(t, "Invalid input 'b': expected far", e.Message())
}

func TestTracker_Reset(t *testing.T) {
	tr := New(Plain)
	tr.NotePotential(pos1, 'x', true, "label")
	tr.Reset()
	assert.False(t, tr.HasPotentials())
	assert.Equal(t, position.Position{}, tr.Furthest())
}
