// Package segment implements the quick segmenter: boundary
// recognition over the grammar's lexical layer (whitespace, comments,
// string literals) without constructing any AST, for callers that only
// need statement/command byte ranges (e.g. a REPL's multi-line input
// buffering).
package segment

import (
	"io"

	"github.com/orneryd/ocypher/pkg/position"
)

// Kind distinguishes the two segment shapes the segmenter reports.
type Kind int

const (
	KindStatement Kind = iota
	KindCommand
)

// Flags mirrors pkg/parser's flag bitset for the one flag the
// segmenter honours.
type Flags uint8

const (
	Default        Flags = 0
	OnlyStatements Flags = 1 << 1
)

// Segment is one reported boundary: its kind, byte range, a stable
// slice of the source buffer, and whether it was the final segment
// (i.e. no terminator was found before end-of-input). The range is
// trimmed: it excludes the terminator and any trailing whitespace or
// comments between the last significant byte and the terminator.
type Segment struct {
	Kind  Kind
	Range position.Range
	Text  []byte
	EOF   bool
}

// Callback is invoked once per segment; a non-zero return aborts
// segmentation and is propagated verbatim as QuickParse's result.
type Callback func(Segment) int

// QuickParse segments in-memory input.
func QuickParse(input []byte, flags Flags, cb Callback) int {
	return run(position.NewFromBytes(input, position.Origin), flags, cb)
}

// QuickParseStream segments a chunked io.Reader.
func QuickParseStream(r io.Reader, flags Flags, cb Callback) int {
	return run(position.NewFromReader(r, position.Origin), flags, cb)
}

func run(src *position.Source, flags Flags, cb Callback) int {
	for {
		skipLayout(src)
		if src.AtEOF() {
			return 0
		}
		b, _ := src.Peek()
		if b == ';' {
			start := src.Mark()
			src.Advance()
			if rc := report(cb, KindStatement, src, start, start, false); rc != 0 {
				return rc
			}
			continue
		}
		if b == ':' && flags&OnlyStatements == 0 {
			if rc := scanCommand(src, cb); rc != 0 {
				return rc
			}
			continue
		}
		if rc := scanStatement(src, cb); rc != 0 {
			return rc
		}
	}
}

func skipLayout(src *position.Source) {
	for {
		b, ok := src.Peek()
		if !ok {
			return
		}
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			src.Advance()
		case b == '/' && peekAt(src, 1) == '*':
			skipBlockComment(src)
		case b == '/' && peekAt(src, 1) == '/':
			skipLineComment(src)
		default:
			return
		}
	}
}

func peekAt(src *position.Source, n int) byte {
	b, ok := src.PeekAt(n)
	if !ok {
		return 0
	}
	return b
}

func skipBlockComment(src *position.Source) {
	src.Advance()
	src.Advance()
	for {
		b, ok := src.Peek()
		if !ok {
			return
		}
		if b == '*' && peekAt(src, 1) == '/' {
			src.Advance()
			src.Advance()
			return
		}
		src.Advance()
	}
}

func skipLineComment(src *position.Source) {
	for {
		b, ok := src.Peek()
		if !ok || b == '\n' {
			return
		}
		src.Advance()
	}
}

func skipString(src *position.Source, quote byte) {
	src.Advance()
	for {
		b, ok := src.Advance()
		if !ok || b == quote {
			return
		}
		if b == '\\' {
			src.Advance()
		}
	}
}

// scanStatement consumes up to the next `;` that is not inside a
// string or comment, reporting one KindStatement segment whose range
// ends at the last significant byte (possibly the EOF-terminated final
// one).
func scanStatement(src *position.Source, cb Callback) int {
	start := src.Mark()
	last := start
	for {
		b, ok := src.Peek()
		if !ok {
			return report(cb, KindStatement, src, start, last, true)
		}
		switch {
		case b == ';':
			src.Advance()
			return report(cb, KindStatement, src, start, last, false)
		case b == '\'' || b == '"':
			skipString(src, b)
			last = src.Mark()
		case b == '/' && peekAt(src, 1) == '*':
			skipBlockComment(src)
		case b == '/' && peekAt(src, 1) == '/':
			skipLineComment(src)
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			src.Advance()
		default:
			src.Advance()
			last = src.Mark()
		}
	}
}

// scanCommand consumes up to the next unescaped end-of-line or `;`,
// honouring backslash continuation (a `\` followed by optional blanks
// and a line comment, then a newline, joins the next line), quoted
// segments, and comments.
func scanCommand(src *position.Source, cb Callback) int {
	start := src.Mark()
	src.Advance() // ':'
	last := src.Mark()
	for {
		b, ok := src.Peek()
		if !ok {
			return report(cb, KindCommand, src, start, last, true)
		}
		switch {
		case b == ';':
			src.Advance()
			return report(cb, KindCommand, src, start, last, false)
		case b == '\n':
			src.Advance()
			return report(cb, KindCommand, src, start, last, false)
		case b == '\\':
			if !skipContinuation(src) {
				src.Advance()
				src.Advance()
				last = src.Mark()
			}
		case b == '\'' || b == '"':
			skipString(src, b)
			last = src.Mark()
		case b == '/' && peekAt(src, 1) == '*':
			skipBlockComment(src)
		case b == '/' && peekAt(src, 1) == '/':
			skipLineComment(src)
			eof := src.AtEOF()
			if !eof {
				src.Advance()
			}
			return report(cb, KindCommand, src, start, last, eof)
		case b == ' ' || b == '\t' || b == '\r':
			src.Advance()
		default:
			src.Advance()
			last = src.Mark()
		}
	}
}

// skipContinuation consumes a `\` line continuation (optionally with
// trailing blanks and a line comment before the newline) and reports
// whether one was present; otherwise the cursor is left untouched and
// the `\` is an ordinary escape for the caller to consume.
func skipContinuation(src *position.Source) bool {
	m := src.Mark()
	src.Advance() // '\'
	for {
		b, ok := src.Peek()
		if !ok || (b != ' ' && b != '\t' && b != '\r') {
			break
		}
		src.Advance()
	}
	if b, ok := src.Peek(); ok && b == '/' && peekAt(src, 1) == '/' {
		skipLineComment(src)
	}
	if b, ok := src.Peek(); ok && b == '\n' {
		src.Advance()
		return true
	}
	src.Restore(m)
	return false
}

func report(cb Callback, kind Kind, src *position.Source, start, last position.Mark, eof bool) int {
	rng := position.Range{Start: start.Pos(), End: last.Pos()}
	return cb(Segment{Kind: kind, Range: rng, Text: src.Slice(rng), EOF: eof})
}
