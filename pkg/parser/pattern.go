package parser

import (
	"github.com/orneryd/ocypher/pkg/ast"
)

// parsePattern parses a comma-separated list of pattern paths, each
// optionally named (`p = ...`) or wrapped in shortestPath(...).
func (p *Parser) parsePattern() (*ast.Node, error) {
	start := p.src.Mark()
	var paths []*ast.Node
	for {
		path, err := p.parsePatternPathOrNamed()
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
		if !p.matchByte(',') {
			break
		}
	}
	return ast.NewPattern(paths, p.src.RangeFrom(start))
}

func (p *Parser) parsePatternPathOrNamed() (*ast.Node, error) {
	return p.memoised(rulePatternPath, p.parsePatternPathOrNamedUncached)
}

func (p *Parser) parsePatternPathOrNamedUncached() (*ast.Node, error) {
	start := p.src.Mark()

	if p.peekKeyword("SHORTESTPATH") || p.peekKeyword("ALLSHORTESTPATHS") {
		single := p.matchKeyword("SHORTESTPATH")
		if !single {
			p.matchKeyword("ALLSHORTESTPATHS")
		}
		p.matchByte('(')
		path, err := p.parsePatternPath()
		if err != nil {
			return nil, err
		}
		p.matchByte(')')
		return ast.NewShortestPath(single, path, p.src.RangeFrom(start))
	}

	m := p.src.Mark()
	if idText, idRng, ok := p.scanIdentifier(); ok && p.matchByte('=') {
		identifier := ast.NewIdentifier(idText, idRng)
		path, err := p.parsePatternPath()
		if err != nil {
			return nil, err
		}
		return ast.NewNamedPath(identifier, path, p.src.RangeFrom(start))
	}
	p.src.Restore(m)
	return p.parsePatternPath()
}

// parsePatternPath parses the alternating node/rel/node/.../node chain:
// `(a)-[r]->(b)-->(c)`.
func (p *Parser) parsePatternPath() (*ast.Node, error) {
	start := p.src.Mark()
	first, err := p.parseNodePattern()
	if err != nil {
		return nil, err
	}
	elements := []*ast.Node{first}
	for {
		rel, ok, err := p.tryParseRelPattern()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		node, err := p.parseNodePattern()
		if err != nil {
			return nil, err
		}
		elements = append(elements, rel, node)
	}
	return ast.NewPatternPath(elements, p.src.RangeFrom(start))
}

// parseNodePattern parses `(identifier:Label1:Label2 {props})`.
func (p *Parser) parseNodePattern() (*ast.Node, error) {
	start := p.src.Mark()
	if !p.matchByte('(') {
		return nil, p.fail("a node pattern")
	}
	var identifier *ast.Node
	if p.peekIdentifier() {
		text, rng, _ := p.scanIdentifier()
		identifier = ast.NewIdentifier(text, rng)
	}
	var labels []*ast.Node
	for p.matchByte(':') {
		text, rng, ok := p.scanIdentifier()
		if !ok {
			return nil, p.fail("a label")
		}
		labels = append(labels, ast.NewLabel(text, rng))
	}
	var properties *ast.Node
	p.skipLayout()
	if p.peekByteIs('{') {
		props, err := p.parseMapLiteral()
		if err != nil {
			return nil, err
		}
		properties = props
	} else if p.peekByteIs('$') {
		param, err := p.parseParameter()
		if err != nil {
			return nil, err
		}
		properties = param
	}
	if !p.matchByte(')') {
		return nil, p.fail("')'")
	}
	return ast.NewNodePattern(identifier, labels, properties, p.src.RangeFrom(start))
}

// tryParseRelPattern parses one of the three relationship trailer
// shapes: `-->`, `<--`, `--`, `-[...]->`, `<-[...]-`, `-[...]-`. Returns
// ok=false with no error and no cursor movement if nothing matches.
func (p *Parser) tryParseRelPattern() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.skipLayout()

	leftArrow := p.matchByte('<')
	if !p.matchByte('-') {
		p.src.Restore(start)
		return nil, false, nil
	}

	var identifier *ast.Node
	var reltypes []*ast.Node
	var varlength *ast.Node
	var properties *ast.Node
	hasBracket := p.matchByte('[')
	if hasBracket {
		if p.peekIdentifier() {
			text, rng, _ := p.scanIdentifier()
			identifier = ast.NewIdentifier(text, rng)
		}
		if p.matchByte(':') {
			for {
				text, rng, ok := p.scanIdentifier()
				if !ok {
					text, rng, ok = p.scanBacktickIdentifier()
				}
				if !ok {
					return nil, false, p.fail("a relationship type")
				}
				reltypes = append(reltypes, ast.NewRelType(text, rng))
				if !p.matchByte('|') {
					break
				}
				p.matchByte(':') // `:A|B` and `:A|:B` both allowed
			}
		}
		if p.peekByteIs('*') {
			vr, err := p.parseVarLength()
			if err != nil {
				return nil, false, err
			}
			varlength = vr
		}
		p.skipLayout()
		if p.peekByteIs('{') {
			props, err := p.parseMapLiteral()
			if err != nil {
				return nil, false, err
			}
			properties = props
		} else if p.peekByteIs('$') {
			param, err := p.parseParameter()
			if err != nil {
				return nil, false, err
			}
			properties = param
		}
		if !p.matchByte(']') {
			return nil, false, p.fail("']'")
		}
	}

	if !p.matchByte('-') {
		return nil, false, p.fail("'-'")
	}
	rightArrow := p.matchByte('>')

	direction := ast.DirEither
	switch {
	case leftArrow && !rightArrow:
		direction = ast.DirInbound
	case rightArrow && !leftArrow:
		direction = ast.DirOutbound
	}

	rng := p.src.RangeFrom(start)
	n, err := ast.NewRelPattern(direction, identifier, reltypes, varlength, properties, rng)
	if err != nil {
		return nil, false, err
	}
	return n, true, nil
}

// parseVarLength parses the `*`, `*N`, `*N..`, `*..M`, `*N..M` variable
// length range that may trail a relationship type list.
func (p *Parser) parseVarLength() (*ast.Node, error) {
	start := p.src.Mark()
	p.matchByte('*')
	var from, to *ast.Node
	if lex, _, rng, ok := p.scanNumber(); ok {
		from = ast.NewInteger(lex, rng)
	}
	if p.matchLiteral("..") {
		if lex, _, rng, ok := p.scanNumber(); ok {
			to = ast.NewInteger(lex, rng)
		}
	} else if from != nil {
		to = from
	}
	return ast.NewRange(from, to, p.src.RangeFrom(start))
}
