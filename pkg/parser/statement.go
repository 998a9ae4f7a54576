package parser

import (
	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/position"
)

// parseStatement recognises `[CYPHER ...] [EXPLAIN|PROFILE] body ;?`
// where body is a schema command or a (possibly UNION-chained) query.
// The statement's range includes the terminating `;`, when present.
func (p *Parser) parseStatement() (*ast.Node, error) {
	p.skipLayout()
	start := p.src.Mark()
	var options []*ast.Node

	if p.peekKeyword("CYPHER") {
		m := p.src.Mark()
		p.matchKeyword("CYPHER")
		opt, err := p.parseCypherOption(m)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	for {
		p.skipLayout()
		m := p.src.Mark()
		if p.matchKeyword("EXPLAIN") {
			options = append(options, ast.NewExplainOption(p.src.RangeFrom(m)))
		} else if p.matchKeyword("PROFILE") {
			options = append(options, ast.NewProfileOption(p.src.RangeFrom(m)))
		} else {
			break
		}
	}
	if p.flags&OnlyParameters != 0 {
		body := p.parseParametersOnlyBody()
		p.matchByte(';')
		return ast.NewStatement(options, body, p.src.RangeFrom(start))
	}

	var body *ast.Node
	if schema, ok := p.tryParseSchemaCommand(); ok {
		if schema == nil {
			return nil, p.fail("a schema command")
		}
		p.skipLayout()
		if b, ok := p.src.Peek(); ok && b != ';' {
			return nil, p.fail("';'")
		}
		body = schema
	} else {
		q, err := p.parseQueryOrUnion()
		if err != nil {
			return nil, err
		}
		body = q
	}
	if p.matchByte(';') {
		p.tracker.Commit(p.src.Pos())
	}
	return ast.NewStatement(options, body, p.src.RangeFrom(start))
}

// parseParametersOnlyBody implements the parameters-only mode: having
// already parsed any leading CYPHER option, the remainder of the
// directive (up to the next unescaped `;` or end-of-input) is taken
// verbatim as a single STRING node rather than being parsed as a
// query or schema command.
func (p *Parser) parseParametersOnlyBody() *ast.Node {
	p.skipLayout()
	start := p.src.Mark()
	for {
		b, ok := p.src.Peek()
		if !ok || b == ';' {
			break
		}
		switch {
		case b == '\'' || b == '"':
			quote := b
			p.src.Advance()
			for {
				c, ok := p.src.Advance()
				if !ok || c == quote {
					break
				}
				if c == '\\' {
					p.src.Advance()
				}
			}
		case b == '/' && p.peekAt(1) == '*':
			p.scanBlockComment()
		case b == '/' && p.peekAt(1) == '/':
			p.scanLineComment()
		default:
			p.src.Advance()
		}
	}
	rng := p.src.RangeFrom(start)
	return ast.NewString(string(p.src.Slice(rng)), rng)
}

// parseCypherOption recognises `CYPHER [version] [name=value ...]`,
// with start marking the position of the already-consumed CYPHER
// keyword so the option's range covers it.
func (p *Parser) parseCypherOption(start position.Mark) (*ast.Node, error) {
	var version *ast.Node
	if lex, _, rng, ok := p.scanNumber(); ok {
		version = ast.NewString(lex, rng)
	}
	var params []*ast.Node
	for {
		m := p.src.Mark()
		name, nameRng, ok := p.scanIdentifier()
		if !ok || !p.matchByte('=') {
			p.src.Restore(m)
			break
		}
		value, ok := p.scanCypherOptionValue()
		if !ok {
			p.src.Restore(m)
			break
		}
		nameNode := ast.NewString(name, nameRng)
		param, err := ast.NewCypherOptionParam(nameNode, value, p.src.RangeFrom(m))
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return ast.NewCypherOption(version, params, p.src.RangeFrom(start))
}

// scanCypherOptionValue reads one `name=value` right-hand side: a
// number, a quoted string, or a bare word, always stored as a STRING.
func (p *Parser) scanCypherOptionValue() (*ast.Node, bool) {
	if lex, _, rng, ok := p.scanNumber(); ok {
		return ast.NewString(lex, rng), true
	}
	if text, rng, ok := p.scanString(); ok {
		return ast.NewString(text, rng), true
	}
	if text, rng, ok := p.scanIdentifier(); ok {
		return ast.NewString(text, rng), true
	}
	return nil, false
}
