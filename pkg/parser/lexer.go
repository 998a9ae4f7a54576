package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/perrors"
	"github.com/orneryd/ocypher/pkg/position"
)

// skipLayout consumes whitespace and comments between tokens,
// collecting each comment as a pending node to be attached as a
// sibling of the innermost construct that ends up containing it.
func (p *Parser) skipLayout() {
	for {
		b, ok := p.src.Peek()
		if !ok {
			return
		}
		switch {
		case isSpace(b):
			p.src.Advance()
		case b == '/' && p.peekAt(1) == '*':
			p.scanBlockComment()
		case b == '/' && p.peekAt(1) == '/':
			p.scanLineComment()
		default:
			return
		}
	}
}

func (p *Parser) peekAt(n int) byte {
	b, ok := p.src.PeekAt(n)
	if !ok {
		return 0
	}
	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func (p *Parser) scanLineComment() {
	start := p.src.Mark()
	p.src.Advance()
	p.src.Advance()
	var text strings.Builder
	for {
		b, ok := p.src.Peek()
		if !ok || b == '\n' {
			break
		}
		text.WriteByte(b)
		p.src.Advance()
	}
	rng := p.src.RangeFrom(start)
	if rng.Start.Offset < p.commentNext {
		return // already collected during an earlier, backtracked attempt
	}
	p.commentNext = rng.End.Offset
	p.pendingComments = append(p.pendingComments, ast.NewLineComment(text.String(), rng))
}

func (p *Parser) scanBlockComment() {
	start := p.src.Mark()
	p.src.Advance()
	p.src.Advance()
	var text strings.Builder
	unterminated := true
	for {
		b, ok := p.src.Peek()
		if !ok {
			break
		}
		if b == '*' && p.peekAt(1) == '/' {
			p.src.Advance()
			p.src.Advance()
			unterminated = false
			break
		}
		text.WriteByte(b)
		p.src.Advance()
	}
	rng := p.src.RangeFrom(start)
	if unterminated {
		p.noteLexError(rng.Start.Offset, perrorsUnterminated(p, "comment", start))
	}
	if rng.Start.Offset < p.commentNext {
		return
	}
	p.commentNext = rng.End.Offset
	p.pendingComments = append(p.pendingComments, ast.NewBlockComment(text.String(), rng))
}

// drainComments returns and clears pending comments, for callers
// attaching them as children of the construct they fell inside.
func (p *Parser) drainComments() []*ast.Node {
	if len(p.pendingComments) == 0 {
		return nil
	}
	out := p.pendingComments
	p.pendingComments = nil
	return out
}

// atEOF reports whether the cursor (ignoring layout) is at end-of-input.
func (p *Parser) atEOF() bool {
	p.skipLayout()
	return p.src.AtEOF()
}

// matchKeyword consumes kw case-insensitively if it appears next,
// bounded by a non-identifier character, and returns true on success.
func (p *Parser) matchKeyword(kw string) bool {
	p.skipLayout()
	m := p.src.Mark()
	for i := 0; i < len(kw); i++ {
		b, ok := p.src.Peek()
		if !ok || lower(b) != lower(kw[i]) {
			p.src.Restore(m)
			return false
		}
		p.src.Advance()
	}
	if b, ok := p.src.Peek(); ok && isIdentByte(b) {
		p.src.Restore(m)
		return false
	}
	return true
}

// matchByte consumes b if it's next (after layout).
func (p *Parser) matchByte(b byte) bool {
	p.skipLayout()
	if got, ok := p.src.Peek(); ok && got == b {
		p.src.Advance()
		return true
	}
	return false
}

// peekKeyword reports whether kw appears next without consuming it.
func (p *Parser) peekKeyword(kw string) bool {
	m := p.src.Mark()
	ok := p.matchKeyword(kw)
	p.src.Restore(m)
	return ok
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

// scanIdentifier reads a bare identifier token (no keyword check — the
// caller decides whether the lexeme is reserved in context).
func (p *Parser) scanIdentifier() (string, position.Range, bool) {
	p.skipLayout()
	start := p.src.Mark()
	b, ok := p.src.Peek()
	if !ok || !isIdentStart(b) {
		return "", position.Range{}, false
	}
	var sb strings.Builder
	for {
		b, ok := p.src.Peek()
		if !ok || !isIdentByte(b) {
			break
		}
		sb.WriteByte(b)
		p.src.Advance()
	}
	return sb.String(), p.src.RangeFrom(start), true
}

// scanBacktickIdentifier reads a backtick-quoted identifier `like this`, where a
// doubled backtick escapes a literal backtick.
func (p *Parser) scanBacktickIdentifier() (string, position.Range, bool) {
	p.skipLayout()
	if !p.matchByte('`') {
		return "", position.Range{}, false
	}
	start := p.src.Mark()
	var sb strings.Builder
	for {
		b, ok := p.src.Advance()
		if !ok {
			break
		}
		if b == '`' {
			if nb, ok := p.src.Peek(); ok && nb == '`' {
				sb.WriteByte('`')
				p.src.Advance()
				continue
			}
			return sb.String(), p.src.RangeFrom(start), true
		}
		sb.WriteByte(b)
	}
	return sb.String(), p.src.RangeFrom(start), true
}

// scanString reads a single- or double-quoted string literal with
// backslash escapes, returning the decoded text.
func (p *Parser) scanString() (string, position.Range, bool) {
	p.skipLayout()
	b, ok := p.src.Peek()
	if !ok || (b != '\'' && b != '"') {
		return "", position.Range{}, false
	}
	quote := b
	start := p.src.Mark()
	p.src.Advance()
	var sb strings.Builder
	for {
		b, ok := p.src.Advance()
		if !ok {
			p.noteLexError(start.Pos().Offset, perrorsUnterminated(p, "string", start))
			break
		}
		if b == quote {
			break
		}
		if b == '\\' {
			escStart := p.src.Mark()
			nb, ok := p.src.Advance()
			if !ok {
				break
			}
			if nb == 'u' || nb == 'U' {
				width := 4
				if nb == 'U' {
					width = 8
				}
				r, ok := p.scanHexRune(width)
				if !ok {
					p.noteLexError(escStart.Pos().Offset,
						perrors.NewInvalidLiteral("malformed unicode escape", escStart.Pos(), p.src))
					sb.WriteByte(nb)
					continue
				}
				sb.WriteRune(r)
				continue
			}
			sb.WriteByte(decodeEscape(nb))
			continue
		}
		sb.WriteByte(b)
	}
	return sb.String(), p.src.RangeFrom(start), true
}

// scanHexRune reads exactly width hex digits and decodes them as a
// code point. On malformed input nothing past the failure is consumed.
func (p *Parser) scanHexRune(width int) (rune, bool) {
	var r rune
	for i := 0; i < width; i++ {
		b, ok := p.src.Peek()
		if !ok {
			return 0, false
		}
		var v rune
		switch {
		case b >= '0' && b <= '9':
			v = rune(b - '0')
		case b >= 'a' && b <= 'f':
			v = rune(b-'a') + 10
		case b >= 'A' && b <= 'F':
			v = rune(b-'A') + 10
		default:
			return 0, false
		}
		r = r<<4 | v
		p.src.Advance()
	}
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

func decodeEscape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case '0':
		return 0
	default:
		return b
	}
}

// scanNumber reads an integer or float literal, preserving the literal
// lexeme verbatim so round-trip printing is exact.
func (p *Parser) scanNumber() (lexeme string, isFloat bool, rng position.Range, ok bool) {
	p.skipLayout()
	start := p.src.Mark()
	b, has := p.src.Peek()
	if !has || !isDigit(b) {
		return "", false, position.Range{}, false
	}
	var sb strings.Builder
	for {
		b, has := p.src.Peek()
		if !has || !isDigit(b) {
			break
		}
		sb.WriteByte(b)
		p.src.Advance()
	}
	if b, has := p.src.Peek(); has && b == '.' {
		if nb, ok2 := p.src.PeekAt(1); ok2 && isDigit(nb) {
			isFloat = true
			sb.WriteByte('.')
			p.src.Advance()
			for {
				b, has := p.src.Peek()
				if !has || !isDigit(b) {
					break
				}
				sb.WriteByte(b)
				p.src.Advance()
			}
		}
	}
	if b, has := p.src.Peek(); has && (b == 'e' || b == 'E') {
		m := p.src.Mark()
		exp := strings.Builder{}
		exp.WriteByte(b)
		p.src.Advance()
		if b, has := p.src.Peek(); has && (b == '+' || b == '-') {
			exp.WriteByte(b)
			p.src.Advance()
		}
		digits := 0
		for {
			b, has := p.src.Peek()
			if !has || !isDigit(b) {
				break
			}
			exp.WriteByte(b)
			p.src.Advance()
			digits++
		}
		if digits > 0 {
			isFloat = true
			sb.WriteString(exp.String())
		} else {
			p.src.Restore(m)
		}
	}
	return sb.String(), isFloat, p.src.RangeFrom(start), true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

