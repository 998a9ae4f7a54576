package parser

import (
	"github.com/orneryd/ocypher/pkg/ast"
)

// parseAtom recognises the grammar's base expression forms: literals,
// parameters, parenthesised expressions, collection/map literals, list
// comprehensions, CASE, the five quantifiers, extract, reduce,
// function application, and bare identifiers. Memoised alongside
// parseExpression: backtracking alternatives re-enter atoms at the
// same offset far more often than any other rule.
func (p *Parser) parseAtom() (*ast.Node, error) {
	return p.memoised(ruleAtom, p.parseAtomUncached)
}

func (p *Parser) parseAtomUncached() (*ast.Node, error) {
	p.skipLayout()

	if lex, isFloat, rng, ok := p.scanNumber(); ok {
		if isFloat {
			return ast.NewFloat(lex, rng), nil
		}
		return ast.NewInteger(lex, rng), nil
	}
	if text, rng, ok := p.scanString(); ok {
		return ast.NewString(text, rng), nil
	}
	if p.peekByteIs('$') {
		return p.parseParameter()
	}
	if start := p.src.Mark(); p.matchKeyword("TRUE") {
		return ast.NewTrue(p.src.RangeFrom(start)), nil
	} else if p.matchKeyword("FALSE") {
		return ast.NewFalse(p.src.RangeFrom(start)), nil
	} else if p.matchKeyword("NULL") {
		return ast.NewNull(p.src.RangeFrom(start)), nil
	}
	if p.matchByte('(') {
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.matchByte(')')
		return inner, nil
	}
	if p.peekByteIs('[') {
		return p.parseCollectionOrComprehension()
	}
	if p.peekByteIs('{') {
		return p.parseMapLiteral()
	}
	if n, ok, err := p.tryParseQuantifier(); ok || err != nil {
		return n, err
	}
	if p.peekKeyword("EXTRACT") {
		return p.parseExtract()
	}
	if p.peekKeyword("REDUCE") {
		return p.parseReduce()
	}
	if p.peekKeyword("CASE") {
		return p.parseCase()
	}
	if p.peekByteIs('`') {
		return p.parseIdentifierOrCall(true)
	}
	if p.peekIdentifier() {
		return p.parseIdentifierOrCall(false)
	}
	return nil, p.fail("an expression")
}

// peekIdentifier reports whether an identifier starts at the cursor,
// without consuming it.
func (p *Parser) peekIdentifier() bool {
	m := p.src.Mark()
	_, _, ok := p.scanIdentifier()
	p.src.Restore(m)
	return ok
}

func (p *Parser) parseParameter() (*ast.Node, error) {
	start := p.src.Mark()
	p.src.Advance() // '$'
	if name, _, ok := p.scanIdentifier(); ok {
		return ast.NewParameter(name, p.src.RangeFrom(start)), nil
	}
	if lex, _, _, ok := p.scanNumber(); ok {
		return ast.NewParameter(lex, p.src.RangeFrom(start)), nil
	}
	return nil, p.fail("a parameter name")
}

// parseIdentifierOrCall scans one identifier and, if immediately
// followed by `(`, builds a function application (or the `func(*)`
// apply-all form); otherwise returns a bare IDENTIFIER reference.
func (p *Parser) parseIdentifierOrCall(backtick bool) (*ast.Node, error) {
	start := p.src.Mark()
	var name string
	if backtick {
		name, _, _ = p.scanBacktickIdentifier()
	} else {
		name, _, _ = p.scanIdentifier()
	}
	nameRng := p.src.RangeFrom(start)

	if p.matchByte('(') {
		distinct := p.matchKeyword("DISTINCT")
		if p.matchByte('*') {
			p.matchByte(')')
			fn := ast.NewFunctionName(name, nameRng)
			return ast.NewApplyAllOperator(fn, distinct, p.src.RangeFrom(start))
		}
		var args []*ast.Node
		if !p.peekByteIs(')') {
			for {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.matchByte(',') {
					break
				}
			}
		}
		p.matchByte(')')
		fn := ast.NewFunctionName(name, nameRng)
		return ast.NewApplyOperator(fn, distinct, args, p.src.RangeFrom(start))
	}
	return ast.NewIdentifier(name, nameRng), nil
}

func (p *Parser) parseCollectionOrComprehension() (*ast.Node, error) {
	start := p.src.Mark()
	p.matchByte('[')
	if p.peekByteIs(']') {
		p.matchByte(']')
		return ast.NewCollection(nil, p.src.RangeFrom(start))
	}
	m := p.src.Mark()
	if idText, idRng, ok := p.scanIdentifier(); ok && p.matchKeyword("IN") {
		identifier := ast.NewIdentifier(idText, idRng)
		coll, err := p.parseExpression()
		if err == nil {
			var predicate, eval *ast.Node
			if p.matchKeyword("WHERE") {
				predicate, err = p.parseExpression()
				if err != nil {
					return nil, err
				}
			}
			if p.matchByte('|') {
				eval, err = p.parseExpression()
				if err != nil {
					return nil, err
				}
			}
			p.matchByte(']')
			return ast.NewListComprehension(identifier, coll, predicate, eval, p.src.RangeFrom(start))
		}
		p.src.Restore(m)
	} else {
		p.src.Restore(m)
	}
	var elements []*ast.Node
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
		if !p.matchByte(',') {
			break
		}
	}
	p.matchByte(']')
	return ast.NewCollection(elements, p.src.RangeFrom(start))
}

func (p *Parser) parseMapLiteral() (*ast.Node, error) {
	start := p.src.Mark()
	p.matchByte('{')
	var keys, values []*ast.Node
	if !p.peekByteIs('}') {
		for {
			keyText, keyRng, ok := p.scanIdentifier()
			if !ok {
				return nil, p.fail("a property name")
			}
			p.matchByte(':')
			val, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			keys = append(keys, ast.NewPropName(keyText, keyRng))
			values = append(values, val)
			if !p.matchByte(',') {
				break
			}
		}
	}
	p.matchByte('}')
	return ast.NewMap(keys, values, p.src.RangeFrom(start))
}

// tryParseQuantifier recognises FILTER/ALL/ANY/SINGLE/NONE(ident IN
// expr [WHERE pred]). ok is false (with a nil error) if none of the
// five keywords matches, letting the caller fall through to other atom
// forms.
func (p *Parser) tryParseQuantifier() (*ast.Node, bool, error) {
	for _, kw := range []string{"FILTER", "ALL", "ANY", "SINGLE", "NONE"} {
		if !p.peekKeyword(kw) {
			continue
		}
		start := p.src.Mark()
		p.matchKeyword(kw)
		if !p.matchByte('(') {
			p.src.Restore(start)
			return nil, false, nil
		}
		idText, idRng, ok := p.scanIdentifier()
		if !ok || !p.matchKeyword("IN") {
			p.src.Restore(start)
			return nil, false, nil
		}
		identifier := ast.NewIdentifier(idText, idRng)
		expr, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		var predicate *ast.Node
		if p.matchKeyword("WHERE") {
			predicate, err = p.parseExpression()
			if err != nil {
				return nil, true, err
			}
		}
		p.matchByte(')')
		rng := p.src.RangeFrom(start)
		var n *ast.Node
		switch kw {
		case "FILTER":
			n, err = ast.NewFilter(identifier, expr, predicate, rng)
		case "ALL":
			n, err = ast.NewAll(identifier, expr, predicate, rng)
		case "ANY":
			n, err = ast.NewAny(identifier, expr, predicate, rng)
		case "SINGLE":
			n, err = ast.NewSingle(identifier, expr, predicate, rng)
		case "NONE":
			n, err = ast.NewNone(identifier, expr, predicate, rng)
		}
		return n, true, err
	}
	return nil, false, nil
}

func (p *Parser) parseExtract() (*ast.Node, error) {
	start := p.src.Mark()
	p.matchKeyword("EXTRACT")
	p.matchByte('(')
	idText, idRng, _ := p.scanIdentifier()
	identifier := ast.NewIdentifier(idText, idRng)
	p.matchKeyword("IN")
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var predicate *ast.Node
	if p.matchKeyword("WHERE") {
		predicate, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	p.matchByte('|')
	eval, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.matchByte(')')
	return ast.NewExtract(identifier, expr, predicate, eval, p.src.RangeFrom(start))
}

func (p *Parser) parseReduce() (*ast.Node, error) {
	start := p.src.Mark()
	p.matchKeyword("REDUCE")
	p.matchByte('(')
	accText, accRng, _ := p.scanIdentifier()
	accumulator := ast.NewIdentifier(accText, accRng)
	p.matchByte('=')
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.matchByte(',')
	idText, idRng, _ := p.scanIdentifier()
	identifier := ast.NewIdentifier(idText, idRng)
	p.matchKeyword("IN")
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.matchByte('|')
	eval, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.matchByte(')')
	return ast.NewReduce(accumulator, init, identifier, expr, eval, p.src.RangeFrom(start))
}

func (p *Parser) parseCase() (*ast.Node, error) {
	start := p.src.Mark()
	p.matchKeyword("CASE")
	var expr *ast.Node
	if !p.peekKeyword("WHEN") {
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr = e
	}
	var whens, thens []*ast.Node
	for p.matchKeyword("WHEN") {
		w, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.matchKeyword("THEN")
		t, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		whens = append(whens, w)
		thens = append(thens, t)
	}
	var deflt *ast.Node
	if p.matchKeyword("ELSE") {
		d, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		deflt = d
	}
	p.matchKeyword("END")
	return ast.NewCase(expr, whens, thens, deflt, p.src.RangeFrom(start))
}
