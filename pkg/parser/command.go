package parser

import (
	"strings"

	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/position"
)

// parseCommand implements interpreter command syntax: starts with `:` at
// the first non-whitespace of a line, arguments are whitespace-separated
// with quoting and backslash-escape support, terminates at unescaped
// newline or `;`. The command's range ends at its last argument (or
// trailing comment), never at the terminator.
func (p *Parser) parseCommand() *ast.Node {
	start := p.src.Mark()
	p.src.Advance() // ':'
	nameStart := p.src.Mark()
	name := p.scanCommandToken()
	nameNode := ast.NewString(name, p.src.RangeFrom(nameStart))
	last := p.src.Mark()

	var args []*ast.Node
	for {
		p.skipCommandSpace()
		b, ok := p.src.Peek()
		if !ok {
			break
		}
		if b == '\n' {
			p.src.Advance()
			break
		}
		if b == ';' {
			p.src.Advance()
			break
		}
		if b == '/' && p.peekAt(1) == '*' {
			p.scanBlockComment()
			continue
		}
		if b == '/' && p.peekAt(1) == '/' {
			p.scanLineComment()
			if nb, ok := p.src.Peek(); ok && nb == '\n' {
				p.src.Advance()
			}
			break
		}
		argStart := p.src.Mark()
		arg := p.scanCommandToken()
		args = append(args, ast.NewString(arg, p.src.RangeFrom(argStart)))
		last = p.src.Mark()
	}

	comments := p.drainComments()
	end := last.Pos()
	for _, c := range comments {
		if c.Range().End.Offset > end.Offset {
			end = c.Range().End
		}
	}
	rng := position.Range{Start: start.Pos(), End: end}
	n, err := ast.NewCommand(nameNode, args, rng)
	if err != nil {
		return ast.NewError(string(p.src.Slice(rng)), rng)
	}
	ast.AttachComments(n, comments)
	return n
}

// skipCommandSpace consumes plain spaces/tabs and line continuations: a
// backslash followed (possibly after whitespace and a line comment) by
// a newline joins the next line onto the command.
func (p *Parser) skipCommandSpace() {
	for {
		b, ok := p.src.Peek()
		if !ok {
			return
		}
		if b == ' ' || b == '\t' || b == '\r' {
			p.src.Advance()
			continue
		}
		if b == '\\' {
			m := p.src.Mark()
			p.src.Advance()
			for {
				sb, ok := p.src.Peek()
				if !ok || (sb != ' ' && sb != '\t' && sb != '\r') {
					break
				}
				p.src.Advance()
			}
			if sb, ok := p.src.Peek(); ok && sb == '/' && p.peekAt(1) == '/' {
				p.scanLineComment()
			}
			if nb, ok := p.src.Peek(); ok && nb == '\n' {
				p.src.Advance()
				continue
			}
			if p.src.AtEOF() {
				return
			}
			p.src.Restore(m)
			return
		}
		return
	}
}

// scanCommandToken reads one whitespace-delimited argument, honouring
// quoted segments (which may contain spaces) and backslash escapes of a
// single following character, including partial quoting like
// `key='value with spaces'` which joins into one argument.
func (p *Parser) scanCommandToken() string {
	var sb strings.Builder
	for {
		b, ok := p.src.Peek()
		if !ok || b == '\n' || b == ';' || isSpace(b) {
			break
		}
		switch b {
		case '\'', '"':
			p.scanCommandQuoted(b, &sb)
		case '\\':
			p.src.Advance()
			if nb, ok := p.src.Advance(); ok {
				sb.WriteByte(nb)
			}
		default:
			sb.WriteByte(b)
			p.src.Advance()
		}
	}
	return sb.String()
}

// scanCommandQuoted consumes a quoted segment inside a command token,
// appending the decoded contents (quotes stripped). A newline before
// the closing quote leaves the quote unterminated: the consumed text is
// kept and a diagnostic recorded at the opener.
func (p *Parser) scanCommandQuoted(quote byte, sb *strings.Builder) {
	opener := p.src.Mark()
	p.src.Advance()
	for {
		b, ok := p.src.Peek()
		if !ok || b == '\n' {
			p.noteLexError(opener.Pos().Offset, perrorsUnterminated(p, "command argument", opener))
			return
		}
		p.src.Advance()
		if b == quote {
			return
		}
		if b == '\\' {
			if nb, ok := p.src.Advance(); ok {
				sb.WriteByte(nb)
			}
			continue
		}
		sb.WriteByte(b)
	}
}
