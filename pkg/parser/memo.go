package parser

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/position"
)

// ruleID identifies a memoised grammar rule. Only rules that are
// genuinely re-entered at the same offset during backtracking need an
// id here — leaf lexical rules are cheap enough to re-run.
type ruleID uint16

const (
	ruleExpression ruleID = iota
	ruleAtom
	rulePatternPath
)

// memoEntry records the outcome of attempting rule at a given offset:
// either a successful node plus the end cursor mark, or the failure it
// produced, so the same rule never re-executes at the same position.
type memoEntry struct {
	ok   bool
	node *ast.Node
	end  position.Mark
	err  error
}

// memoTable is a flat hash map keyed by xxhash(ruleID, offset),
// trading a composite struct key for one 64-bit lookup on the hot
// path.
type memoTable struct {
	entries map[uint64]memoEntry
}

func newMemoTable() *memoTable {
	return &memoTable{entries: make(map[uint64]memoEntry)}
}

func memoKey(r ruleID, offset uint64) uint64 {
	var buf [10]byte
	binary.LittleEndian.PutUint16(buf[0:2], uint16(r))
	binary.LittleEndian.PutUint64(buf[2:10], offset)
	return xxhash.Sum64(buf[:])
}

func (m *memoTable) get(r ruleID, offset uint64) (memoEntry, bool) {
	e, ok := m.entries[memoKey(r, offset)]
	return e, ok
}

func (m *memoTable) put(r ruleID, offset uint64, e memoEntry) {
	m.entries[memoKey(r, offset)] = e
}

// reset purges the cache; called once per top-level invocation.
func (m *memoTable) reset() {
	m.entries = make(map[uint64]memoEntry)
}

func (m *memoTable) size() int { return len(m.entries) }

// memoised runs rule r at the current offset through the packrat cache:
// a hit replays the recorded outcome (restoring the end cursor on
// success) without re-executing the rule body.
func (p *Parser) memoised(r ruleID, parse func() (*ast.Node, error)) (*ast.Node, error) {
	p.skipLayout()
	off := p.src.Pos().Offset
	if e, ok := p.memo.get(r, off); ok {
		if !e.ok {
			return nil, e.err
		}
		p.src.Restore(e.end)
		return e.node, nil
	}
	n, err := parse()
	if err != nil {
		p.memo.put(r, off, memoEntry{err: err})
		return nil, err
	}
	p.memo.put(r, off, memoEntry{ok: true, node: n, end: p.src.Mark()})
	return n, nil
}
