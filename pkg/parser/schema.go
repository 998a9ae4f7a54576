package parser

import (
	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/position"
)

// tryParseSchemaCommand disambiguates the schema-command prefix from a
// query: `DROP` is always a schema command; `CREATE` is a schema
// command only when immediately followed by INDEX or CONSTRAINT,
// otherwise it's left untouched for the CREATE clause to consume.
func (p *Parser) tryParseSchemaCommand() (*ast.Node, bool) {
	start := p.src.Mark()
	if p.matchKeyword("DROP") {
		return p.parseSchemaCommand(start, false), true
	}
	if p.peekKeyword("CREATE") {
		m := p.src.Mark()
		p.matchKeyword("CREATE")
		if p.peekKeyword("INDEX") || p.peekKeyword("CONSTRAINT") {
			return p.parseSchemaCommand(start, true), true
		}
		p.src.Restore(m)
	}
	return nil, false
}

// parseSchemaCommand parses the INDEX/CONSTRAINT body common to both
// CREATE and DROP forms, dispatching to the matching constructor.
func (p *Parser) parseSchemaCommand(start position.Mark, create bool) *ast.Node {
	if p.matchKeyword("INDEX") {
		return p.parseIndexSchema(start, create)
	}
	if p.matchKeyword("CONSTRAINT") {
		return p.parseConstraintSchema(start, create)
	}
	p.fail("INDEX or CONSTRAINT")
	return nil
}

func (p *Parser) parseIndexSchema(start position.Mark, create bool) *ast.Node {
	p.matchKeyword("ON")
	p.matchByte(':')
	labelText, labelRng, _ := p.scanIdentifier()
	label := ast.NewLabel(labelText, labelRng)
	p.matchByte('(')
	propText, propRng, _ := p.scanIdentifier()
	prop := ast.NewPropName(propText, propRng)
	p.matchByte(')')
	rng := p.src.RangeFrom(start)
	var n *ast.Node
	var err error
	if create {
		n, err = ast.NewCreateIndex(label, prop, rng)
	} else {
		n, err = ast.NewDropIndex(label, prop, rng)
	}
	if err != nil {
		return nil
	}
	return n
}

// parseConstraintSchema parses the two CONSTRAINT forms:
//
//	ON (n:Label) ASSERT n.prop IS UNIQUE
//	ON (n:Label) ASSERT exists(n.prop)
//	ON ()-[r:TYPE]-() ASSERT exists(r.prop)
func (p *Parser) parseConstraintSchema(start position.Mark, create bool) *ast.Node {
	p.matchKeyword("ON")
	isRel := false
	p.matchByte('(')
	var identifier, label *ast.Node
	if p.matchByte(')') {
		// relationship form: ()-[r:TYPE]-()
		isRel = true
		p.matchByte('-')
		p.matchByte('[')
		idText, idRng, _ := p.scanIdentifier()
		identifier = ast.NewIdentifier(idText, idRng)
		p.matchByte(':')
		relText, relRng, _ := p.scanIdentifier()
		label = ast.NewRelType(relText, relRng)
		p.matchByte(']')
		p.matchByte('-')
		p.matchByte('(')
		p.matchByte(')')
	} else {
		idText, idRng, _ := p.scanIdentifier()
		identifier = ast.NewIdentifier(idText, idRng)
		p.matchByte(':')
		labelText, labelRng, _ := p.scanIdentifier()
		label = ast.NewLabel(labelText, labelRng)
		p.matchByte(')')
	}

	p.matchKeyword("ASSERT")

	var expr *ast.Node
	unique := false
	if p.peekKeyword("EXISTS") {
		m := p.src.Mark()
		p.matchKeyword("EXISTS")
		fnNameRng := p.src.RangeFrom(m)
		p.matchByte('(')
		target, err := p.parseExpression()
		if err != nil {
			return nil
		}
		p.matchByte(')')
		fn := ast.NewFunctionName("exists", fnNameRng)
		expr, err = ast.NewApplyOperator(fn, false, []*ast.Node{target}, p.src.RangeFrom(m))
		if err != nil {
			return nil
		}
	} else {
		target, err := p.parseExpression()
		if err != nil {
			return nil
		}
		expr = target
		if p.matchKeywordPair("IS", "UNIQUE") {
			unique = true
		}
	}

	rng := p.src.RangeFrom(start)
	var n *ast.Node
	var err error
	switch {
	case unique && create:
		n, err = ast.NewCreateUniqueConstraint(identifier, label, expr, rng)
	case unique && !create:
		n, err = ast.NewDropUniqueConstraint(identifier, label, expr, rng)
	case isRel && create:
		n, err = ast.NewCreateRelPropExistsConstraint(identifier, label, expr, rng)
	case isRel && !create:
		n, err = ast.NewDropRelPropExistsConstraint(identifier, label, expr, rng)
	case create:
		n, err = ast.NewCreateNodePropExistsConstraint(identifier, label, expr, rng)
	default:
		n, err = ast.NewDropNodePropExistsConstraint(identifier, label, expr, rng)
	}
	if err != nil {
		return nil
	}
	return n
}
