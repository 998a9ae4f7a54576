package parser

import (
	"github.com/orneryd/ocypher/pkg/ast"
)

// parseExpression is the entry point into the precedence-climb
// expression grammar, one level of recursive descent per precedence
// tier of pkg/ast's fixed operator table. Results are
// packrat-memoised by input offset, so the same expression is never
// reparsed when an enclosing alternative backtracks over it.
func (p *Parser) parseExpression() (*ast.Node, error) {
	return p.memoised(ruleExpression, p.parseOr)
}

func (p *Parser) parseOr() (*ast.Node, error) {
	left, err := p.parseXor()
	if err != nil {
		return nil, err
	}
	for p.matchKeyword("OR") {
		right, err := p.parseXor()
		if err != nil {
			return nil, err
		}
		left, err = ast.NewBinaryOperator(ast.OpOr, left, right, spanFrom(left.Range().Start, right))
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseXor() (*ast.Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.matchKeyword("XOR") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left, err = ast.NewBinaryOperator(ast.OpXor, left, right, spanFrom(left.Range().Start, right))
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseAnd() (*ast.Node, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.matchKeyword("AND") {
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left, err = ast.NewBinaryOperator(ast.OpAnd, left, right, spanFrom(left.Range().Start, right))
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNot() (*ast.Node, error) {
	p.skipLayout()
	start := p.src.Pos()
	if p.matchKeyword("NOT") {
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperator(ast.OpNot, operand, spanFrom(start, operand))
	}
	return p.parseComparison()
}

// parseComparison builds the n-ary COMPARISON chain: parallel
// operator/operand arrays so `a < b <= c` stays one node. IS NULL / IS NOT
// NULL are postfix-unary and wrap left immediately rather than
// contributing an entry to the comparison chain.
func (p *Parser) parseComparison() (*ast.Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	var ops []ast.Operator
	var args []*ast.Node
	for {
		if op, ok := p.matchPostfixNullOp(); ok {
			end := p.src.Pos()
			left, err = ast.NewUnaryOperator(op, left, spanFromPos(left.Range().Start, end))
			if err != nil {
				return nil, err
			}
			continue
		}
		op, ok := p.matchComparisonOp()
		if !ok {
			break
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		args = append(args, right)
	}
	if len(ops) == 0 {
		return left, nil
	}
	rng := spanFrom(left.Range().Start, args[len(args)-1])
	return ast.NewComparison(left, ops, args, rng)
}

// matchPostfixNullOp recognises the IS NULL / IS NOT NULL postfix forms.
func (p *Parser) matchPostfixNullOp() (ast.Operator, bool) {
	m := p.src.Mark()
	if !p.matchKeyword("IS") {
		return ast.OpInvalid, false
	}
	if p.matchKeyword("NOT") {
		if p.matchKeyword("NULL") {
			return ast.OpIsNotNull, true
		}
		p.src.Restore(m)
		return ast.OpInvalid, false
	}
	if p.matchKeyword("NULL") {
		return ast.OpIsNull, true
	}
	p.src.Restore(m)
	return ast.OpInvalid, false
}

// matchComparisonOp recognises one binary comparison-precedence
// operator token: =, <>, <, >, <=, >=, =~, IN, STARTS WITH, ENDS WITH,
// CONTAINS.
func (p *Parser) matchComparisonOp() (ast.Operator, bool) {
	p.skipLayout()
	switch {
	case p.matchLiteral("<>"):
		return ast.OpNotEqual, true
	case p.matchLiteral("<="):
		return ast.OpLessEqual, true
	case p.matchLiteral(">="):
		return ast.OpGreaterEqual, true
	case p.matchLiteral("=~"):
		return ast.OpRegex, true
	case p.matchByte('='):
		return ast.OpEqual, true
	case p.matchByte('<'):
		return ast.OpLess, true
	case p.matchByte('>'):
		return ast.OpGreater, true
	case p.matchKeyword("IN"):
		return ast.OpIn, true
	case p.matchKeywordPair("STARTS", "WITH"):
		return ast.OpStartsWith, true
	case p.matchKeywordPair("ENDS", "WITH"):
		return ast.OpEndsWith, true
	case p.matchKeyword("CONTAINS"):
		return ast.OpContains, true
	}
	return ast.OpInvalid, false
}

// matchKeywordPair consumes two adjacent keywords, or nothing.
func (p *Parser) matchKeywordPair(first, second string) bool {
	m := p.src.Mark()
	if p.matchKeyword(first) && p.matchKeyword(second) {
		return true
	}
	p.src.Restore(m)
	return false
}

func (p *Parser) matchLiteral(s string) bool {
	m := p.src.Mark()
	p.skipLayout()
	for i := 0; i < len(s); i++ {
		b, ok := p.src.Peek()
		if !ok || b != s[i] {
			p.src.Restore(m)
			return false
		}
		p.src.Advance()
	}
	return true
}

func (p *Parser) parseAdditive() (*ast.Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		p.skipLayout()
		var op ast.Operator
		switch {
		case p.matchByte('+'):
			op = ast.OpPlus
		case p.matchByte('-'):
			op = ast.OpMinus
		default:
			return left, nil
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left, err = ast.NewBinaryOperator(op, left, right, spanFrom(left.Range().Start, right))
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseMultiplicative() (*ast.Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		p.skipLayout()
		var op ast.Operator
		switch {
		case p.matchByte('*'):
			op = ast.OpMult
		case p.matchByte('/'):
			op = ast.OpDiv
		case p.matchByte('%'):
			op = ast.OpMod
		default:
			return left, nil
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left, err = ast.NewBinaryOperator(op, left, right, spanFrom(left.Range().Start, right))
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parsePower() (*ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	p.skipLayout()
	if p.matchByte('^') {
		right, err := p.parsePower() // right-associative
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryOperator(ast.OpPow, left, right, spanFrom(left.Range().Start, right))
	}
	return left, nil
}

func (p *Parser) parseUnary() (*ast.Node, error) {
	p.skipLayout()
	start := p.src.Pos()
	if p.matchByte('-') {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperator(ast.OpUnaryMinus, operand, spanFrom(start, operand))
	}
	if p.matchByte('+') {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOperator(ast.OpUnaryPlus, operand, spanFrom(start, operand))
	}
	return p.parsePostfix()
}

// parsePostfix parses an atom followed by any number of trailers:
// property access (.prop), labels (:Label), subscript ([expr]) and
// slice ([from..to]).
func (p *Parser) parsePostfix() (*ast.Node, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		p.skipLayout()
		switch {
		case p.peekByteIs('.') && p.peekAt(1) != '.':
			p.matchByte('.')
			propText, propRng, ok := p.scanIdentifier()
			if !ok {
				propText, propRng, ok = p.scanBacktickIdentifier()
			}
			if !ok {
				return nil, p.fail("a property name")
			}
			prop := ast.NewPropName(propText, propRng)
			expr, err = ast.NewPropertyOperator(expr, prop, spanFrom(expr.Range().Start, prop))
			if err != nil {
				return nil, err
			}
		case p.peekByteIs(':') && p.peekLabelAfterColon():
			p.matchByte(':')
			var labels []*ast.Node
			for {
				labelText, labelRng, ok := p.scanIdentifier()
				if !ok {
					break
				}
				labels = append(labels, ast.NewLabel(labelText, labelRng))
				if !p.matchByte(':') {
					break
				}
			}
			if len(labels) == 0 {
				return expr, nil
			}
			expr, err = ast.NewLabelsOperator(expr, labels, spanFrom(expr.Range().Start, labels[len(labels)-1]))
			if err != nil {
				return nil, err
			}
		case p.peekByteIs('['):
			p.matchByte('[')
			if p.matchLiteral("..") {
				to, err := p.maybeExpression()
				if err != nil {
					return nil, err
				}
				end := p.src.Pos()
				p.matchByte(']')
				expr, err = ast.NewSliceOperator(expr, nil, to, spanFromPos(expr.Range().Start, end))
				if err != nil {
					return nil, err
				}
				continue
			}
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if p.matchLiteral("..") {
				to, err := p.maybeExpression()
				if err != nil {
					return nil, err
				}
				end := p.src.Pos()
				p.matchByte(']')
				expr, err = ast.NewSliceOperator(expr, idx, to, spanFromPos(expr.Range().Start, end))
				if err != nil {
					return nil, err
				}
				continue
			}
			end := p.src.Pos()
			p.matchByte(']')
			expr, err = ast.NewSubscriptOperator(expr, idx, spanFromPos(expr.Range().Start, end))
			if err != nil {
				return nil, err
			}
		default:
			return expr, nil
		}
	}
}

// peekLabelAfterColon distinguishes a trailing `:Label` from a
// relationship-pattern colon or map-key colon that happens to follow an
// expression in contexts where this parser is reused loosely; here it
// simply requires an identifier-start character after the colon.
func (p *Parser) peekLabelAfterColon() bool {
	m := p.src.Mark()
	p.src.Advance()
	b, ok := p.src.Peek()
	p.src.Restore(m)
	return ok && isIdentStart(b)
}

// maybeExpression parses an expression if one is present, returning nil
// otherwise (used for the optional bounds of a slice).
func (p *Parser) maybeExpression() (*ast.Node, error) {
	p.skipLayout()
	if p.peekByteIs(']') {
		return nil, nil
	}
	return p.parseExpression()
}
