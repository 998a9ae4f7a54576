package parser

import (
	"fmt"
	"io"

	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/perrors"
	"github.com/orneryd/ocypher/pkg/position"
)

// Parser holds all per-call state for a single top-level parse
// invocation: the input cursor, packrat memo table, error tracker, and
// flags. Nothing is shared between invocations, so concurrent parses
// on distinct Parsers are safe.
type Parser struct {
	src             *position.Source
	tracker         *perrors.Tracker
	memo            *memoTable
	flags           Flags
	cfg             Config
	pendingComments []*ast.Node
	errors          []*perrors.ParseError
	ordinalNext     uint

	// commentNext is the offset past the last comment already collected,
	// so a backtracked-and-rescanned comment is not recorded twice.
	commentNext uint64
	// lexErrSeen dedupes lexical diagnostics (unterminated, invalid
	// literal) that backtracking may re-scan, keyed by opener offset.
	lexErrSeen map[uint64]bool
}

// New constructs a Parser over in-memory bytes.
func New(input []byte, cfg Config, flags Flags) *Parser {
	return newParser(position.NewFromBytes(input, cfg.InitialPosition), cfg, flags)
}

// NewStream constructs a Parser over a chunked io.Reader.
func NewStream(r io.Reader, cfg Config, flags Flags) *Parser {
	return newParser(position.NewFromReader(r, cfg.InitialPosition), cfg, flags)
}

func newParser(src *position.Source, cfg Config, flags Flags) *Parser {
	return &Parser{
		src:         src,
		tracker:     perrors.New(cfg.ErrorColorization),
		memo:        newMemoTable(),
		flags:       flags,
		cfg:         cfg,
		ordinalNext: cfg.InitialOrdinal,
	}
}

// fail notes a potential error at the current position — the failed
// alternative's expected-label plus the offending input character, if
// any — and returns a host-side error for the grammar to propagate. The potential is only reified into a ParseError if this
// failure turns out to be at the furthest position when recovery fires.
func (p *Parser) fail(label string) error {
	pos := p.src.Pos()
	b, ok := p.src.Peek()
	p.tracker.NotePotential(pos, rune(b), ok, label)
	return fmt.Errorf("expected %s at %s", label, pos)
}

// LastPos reports the input position the cursor reached, for callers
// embedding this parse in a larger document.
func (p *Parser) LastPos() position.Position { return p.src.Pos() }

// Elements drives the top-level parse loop to end-of-input,
// returning every top-level element plus the
// accumulated diagnostics and whether end-of-input was reached. Called
// by pkg/result.Parse; not normally called directly by end users.
func (p *Parser) Elements() (elements []*ast.Node, errs []*perrors.ParseError, eof bool) {
	p.memo.reset()
	for {
		p.tracker.Reset()
		if p.atEOF() {
			eof = true
			break
		}
		for _, c := range p.drainComments() {
			elements = append(elements, c)
		}
		el := p.parseDirective()
		if el != nil {
			elements = append(elements, el)
		}
		for _, c := range p.drainComments() {
			elements = append(elements, c)
		}
		if p.flags&Single != 0 {
			eof = p.src.AtEOF()
			break
		}
	}
	for _, n := range elements {
		p.ordinalNext = ast.AssignOrdinals(n, p.ordinalNext)
	}
	if p.cfg.Logger != nil {
		p.cfg.Logger.WithField("memo_entries", p.memo.size()).
			WithField("elements", len(elements)).
			Debugf("parse finished")
	}
	return elements, p.errors, eof
}

// parseDirective parses one directive (command or statement) starting
// at the current position, or recovers from a syntax error by consuming
// to the next `;`/EOF and emitting an ERROR node.
func (p *Parser) parseDirective() *ast.Node {
	start := p.src.Mark()
	if p.peekByteIs(':') && p.flags&OnlyStatements == 0 {
		return p.parseCommand()
	}
	n, err := p.parseStatement()
	if err == nil {
		if cs := p.drainComments(); len(cs) > 0 {
			ast.AttachComments(n, cs)
		}
		return n
	}
	return p.recover(start)
}

func (p *Parser) peekByteIs(b byte) bool {
	p.skipLayout()
	got, ok := p.src.Peek()
	return ok && got == b
}

// recover implements statement-level recovery: consume to the
// next `;` or end-of-input, emit an ERROR node over the consumed range,
// and reify the furthest-position diagnostic noted while the failed
// attempt backtracked. Comments collected during the failed attempt are
// dropped; their raw text survives inside the ERROR lexeme.
func (p *Parser) recover(start position.Mark) *ast.Node {
	p.pendingComments = nil
	for {
		b, ok := p.src.Peek()
		if !ok || b == ';' {
			break
		}
		p.src.Advance()
	}
	p.matchByte(';')
	rng := p.src.RangeFrom(start)
	if e := p.tracker.ReifyExpected(p.src); e != nil {
		p.errors = append(p.errors, e)
	} else {
		p.errors = append(p.errors, perrors.NewSyntaxError(start.Pos(), p.src))
	}
	if p.cfg.Logger != nil {
		p.cfg.Logger.WithField("offset", rng.Start.Offset).
			Warnf("recovering from syntax error")
	}
	return ast.NewError(string(p.src.Slice(rng)), rng)
}

func perrorsUnterminated(p *Parser, what string, opener position.Mark) *perrors.ParseError {
	return perrors.NewUnterminated(what, opener.Pos(), p.src)
}

// noteLexError records a lexical diagnostic once per source position,
// even when backtracking re-scans the offending lexeme.
func (p *Parser) noteLexError(at uint64, e *perrors.ParseError) {
	if p.lexErrSeen == nil {
		p.lexErrSeen = make(map[uint64]bool)
	}
	if p.lexErrSeen[at] {
		return
	}
	p.lexErrSeen[at] = true
	p.errors = append(p.errors, e)
}
