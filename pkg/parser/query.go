package parser

import (
	"github.com/orneryd/ocypher/pkg/ast"
	"github.com/orneryd/ocypher/pkg/perrors"
)

// parseQueryOrUnion parses a query and any UNION [ALL] chain following
// it into one n-ary UNION node (len(all) == len(queries)-1). A chain
// mixing UNION and UNION ALL parses but is flagged with an
// invalid-structure diagnostic.
func (p *Parser) parseQueryOrUnion() (*ast.Node, error) {
	start := p.src.Mark()
	first, err := p.parseQuery()
	if err != nil {
		return nil, err
	}
	queries := []*ast.Node{first}
	var all []bool
	for {
		m := p.src.Mark()
		if !p.matchKeyword("UNION") {
			break
		}
		isAll := p.matchKeyword("ALL")
		if len(all) > 0 && isAll != all[0] {
			p.errors = append(p.errors, perrors.NewInvalidStructure(
				"Invalid combination of UNION and UNION ALL", m.Pos(), p.src))
		}
		next, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		queries = append(queries, next)
		all = append(all, isAll)
	}
	if len(queries) == 1 {
		return first, nil
	}
	return ast.NewUnion(queries, all, p.src.RangeFrom(start))
}

// parseQuery parses a single query: any leading USING PERIODIC COMMIT
// option, then a loop of clauses.
func (p *Parser) parseQuery() (*ast.Node, error) {
	start := p.src.Mark()
	var options []*ast.Node
	var clauses []*ast.Node
	if p.peekKeyword("USING") {
		m := p.src.Mark()
		p.matchKeyword("USING")
		if p.matchKeyword("PERIODIC") {
			if !p.matchKeyword("COMMIT") {
				return nil, p.fail("COMMIT")
			}
			var limit *ast.Node
			if lex, _, rng, ok := p.scanNumber(); ok {
				limit = ast.NewInteger(lex, rng)
			}
			opt, err := ast.NewUsingPeriodicCommit(limit, p.src.RangeFrom(m))
			if err != nil {
				return nil, err
			}
			options = append(options, opt)
		} else {
			p.src.Restore(m)
		}
	}
	for {
		p.skipLayout()
		if p.peekStatementEnd() {
			break
		}
		clause, ok, err := p.tryParseClause()
		if err != nil {
			return nil, err
		}
		if !ok {
			if len(clauses) == 0 {
				return nil, p.fail("a statement")
			}
			return nil, p.fail("a clause")
		}
		clauses = append(clauses, clause)
		p.tracker.Commit(p.src.Pos())
	}
	if len(clauses) == 0 {
		return nil, p.fail("a statement")
	}
	return ast.NewQuery(options, clauses, p.src.RangeFrom(start))
}

// peekStatementEnd reports whether the cursor is at a position where
// the enclosing query should stop: end of input, a statement
// terminator, or UNION (handled one level up).
func (p *Parser) peekStatementEnd() bool {
	if p.atEOF() {
		return true
	}
	if p.peekByteIs(';') {
		return true
	}
	return p.peekKeyword("UNION")
}

// tryParseClause dispatches on the clause's leading keyword. ok is
// false (no error) when the next tokens don't start any known clause.
func (p *Parser) tryParseClause() (*ast.Node, bool, error) {
	switch {
	case p.peekKeyword("OPTIONAL"):
		return p.parseMatch(true)
	case p.peekKeyword("MATCH"):
		return p.parseMatch(false)
	case p.peekKeyword("MERGE"):
		return p.parseMergeClause()
	case p.peekKeyword("CREATE"):
		return p.parseCreateClause()
	case p.peekKeyword("DETACH"):
		return p.parseDeleteClause()
	case p.peekKeyword("DELETE"):
		return p.parseDeleteClause()
	case p.peekKeyword("SET"):
		return p.parseSetClause()
	case p.peekKeyword("REMOVE"):
		return p.parseRemoveClause()
	case p.peekKeyword("FOREACH"):
		return p.parseForeachClause()
	case p.peekKeyword("WITH"):
		return p.parseWithClause()
	case p.peekKeyword("UNWIND"):
		return p.parseUnwindClause()
	case p.peekKeyword("CALL"):
		return p.parseCallClause()
	case p.peekKeyword("RETURN"):
		return p.parseReturnClause()
	case p.peekKeyword("START"):
		return p.parseStartClause()
	case p.peekKeyword("LOAD"):
		return p.parseLoadCSVClause()
	}
	return nil, false, nil
}

func (p *Parser) parseMatch(optional bool) (*ast.Node, bool, error) {
	start := p.src.Mark()
	if optional {
		p.matchKeyword("OPTIONAL")
	}
	p.matchKeyword("MATCH")
	pattern, err := p.parsePattern()
	if err != nil {
		return nil, true, err
	}
	var hints []*ast.Node
	for {
		hint, ok, err := p.tryParseHint()
		if err != nil {
			return nil, true, err
		}
		if !ok {
			break
		}
		hints = append(hints, hint)
	}
	var predicate *ast.Node
	if p.matchKeyword("WHERE") {
		predicate, err = p.parseExpression()
		if err != nil {
			return nil, true, err
		}
	}
	n, err := ast.NewMatch(optional, pattern, hints, predicate, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) tryParseHint() (*ast.Node, bool, error) {
	if !p.peekKeyword("USING") {
		return nil, false, nil
	}
	start := p.src.Mark()
	p.matchKeyword("USING")
	switch {
	case p.matchKeyword("INDEX"):
		idText, idRng, _ := p.scanIdentifier()
		identifier := ast.NewIdentifier(idText, idRng)
		p.matchByte(':')
		labelText, labelRng, _ := p.scanIdentifier()
		label := ast.NewLabel(labelText, labelRng)
		p.matchByte('(')
		var props []*ast.Node
		for {
			propText, propRng, ok := p.scanIdentifier()
			if !ok {
				break
			}
			props = append(props, ast.NewPropName(propText, propRng))
			if !p.matchByte(',') {
				break
			}
		}
		p.matchByte(')')
		n, err := ast.NewUsingIndexHint(identifier, label, props, p.src.RangeFrom(start))
		return n, true, err
	case p.matchKeyword("JOIN"):
		p.matchKeyword("ON")
		var idents []*ast.Node
		for {
			text, rng, ok := p.scanIdentifier()
			if !ok {
				break
			}
			idents = append(idents, ast.NewIdentifier(text, rng))
			if !p.matchByte(',') {
				break
			}
		}
		n, err := ast.NewUsingJoinHint(idents, p.src.RangeFrom(start))
		return n, true, err
	case p.matchKeyword("SCAN"):
		idText, idRng, _ := p.scanIdentifier()
		identifier := ast.NewIdentifier(idText, idRng)
		p.matchByte(':')
		labelText, labelRng, _ := p.scanIdentifier()
		label := ast.NewLabel(labelText, labelRng)
		n, err := ast.NewUsingScanHint(identifier, label, p.src.RangeFrom(start))
		return n, true, err
	}
	p.src.Restore(start)
	return nil, false, nil
}

func (p *Parser) parseMergeClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("MERGE")
	path, err := p.parsePatternPathOrNamed()
	if err != nil {
		return nil, true, err
	}
	var actions []*ast.Node
	for {
		actionStart := p.src.Mark()
		if p.matchKeyword("ON") {
			if p.matchKeyword("MATCH") {
				items, err := p.parseSetItemList()
				if err != nil {
					return nil, true, err
				}
				n, err := ast.NewOnMatch(items, p.src.RangeFrom(actionStart))
				if err != nil {
					return nil, true, err
				}
				actions = append(actions, n)
				continue
			}
			if p.matchKeyword("CREATE") {
				items, err := p.parseSetItemList()
				if err != nil {
					return nil, true, err
				}
				n, err := ast.NewOnCreate(items, p.src.RangeFrom(actionStart))
				if err != nil {
					return nil, true, err
				}
				actions = append(actions, n)
				continue
			}
			p.src.Restore(actionStart)
		}
		break
	}
	n, err := ast.NewMerge(path, actions, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseCreateClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("CREATE")
	pattern, err := p.parsePattern()
	if err != nil {
		return nil, true, err
	}
	n, err := ast.NewCreate(pattern, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseSetItemList() ([]*ast.Node, error) {
	p.matchKeyword("SET")
	var items []*ast.Node
	for {
		item, err := p.parseSetItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.matchByte(',') {
			break
		}
	}
	return items, nil
}

func (p *Parser) parseSetItem() (*ast.Node, error) {
	start := p.src.Mark()
	idText, idRng, ok := p.scanIdentifier()
	if !ok {
		return nil, p.fail("an identifier")
	}
	identifier := ast.NewIdentifier(idText, idRng)

	if p.matchLiteral("+=") {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewMergeProperties(identifier, expr, p.src.RangeFrom(start))
	}
	if p.peekByteIs(':') {
		var labels []*ast.Node
		for p.matchByte(':') {
			text, rng, ok := p.scanIdentifier()
			if !ok {
				break
			}
			labels = append(labels, ast.NewLabel(text, rng))
		}
		return ast.NewSetLabels(identifier, labels, p.src.RangeFrom(start))
	}
	if p.matchByte('.') {
		propText, propRng, ok := p.scanIdentifier()
		if !ok {
			return nil, p.fail("a property name")
		}
		propName := ast.NewPropName(propText, propRng)
		property, err := ast.NewPropertyOperator(identifier, propName, p.src.RangeFrom(start))
		if err != nil {
			return nil, err
		}
		p.matchByte('=')
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewSetProperty(property, expr, p.src.RangeFrom(start))
	}
	p.matchByte('=')
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewSetAllProperties(identifier, expr, p.src.RangeFrom(start))
}

func (p *Parser) parseSetClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	items, err := p.parseSetItemList()
	if err != nil {
		return nil, true, err
	}
	n, err := ast.NewSet(items, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseDeleteClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	detach := p.matchKeyword("DETACH")
	p.matchKeyword("DELETE")
	var exprs []*ast.Node
	for {
		e, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		exprs = append(exprs, e)
		if !p.matchByte(',') {
			break
		}
	}
	n, err := ast.NewDelete(detach, exprs, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseRemoveClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("REMOVE")
	var items []*ast.Node
	for {
		item, err := p.parseRemoveItem()
		if err != nil {
			return nil, true, err
		}
		items = append(items, item)
		if !p.matchByte(',') {
			break
		}
	}
	n, err := ast.NewRemove(items, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseRemoveItem() (*ast.Node, error) {
	start := p.src.Mark()
	idText, idRng, ok := p.scanIdentifier()
	if !ok {
		return nil, p.fail("an identifier")
	}
	identifier := ast.NewIdentifier(idText, idRng)
	if p.matchByte('.') {
		propText, propRng, ok := p.scanIdentifier()
		if !ok {
			return nil, p.fail("a property name")
		}
		propName := ast.NewPropName(propText, propRng)
		property, err := ast.NewPropertyOperator(identifier, propName, p.src.RangeFrom(start))
		if err != nil {
			return nil, err
		}
		return ast.NewRemoveProperty(property, p.src.RangeFrom(start))
	}
	var labels []*ast.Node
	for p.matchByte(':') {
		text, rng, ok := p.scanIdentifier()
		if !ok {
			break
		}
		labels = append(labels, ast.NewLabel(text, rng))
	}
	return ast.NewRemoveLabels(identifier, labels, p.src.RangeFrom(start))
}

func (p *Parser) parseForeachClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("FOREACH")
	p.matchByte('(')
	idText, idRng, _ := p.scanIdentifier()
	identifier := ast.NewIdentifier(idText, idRng)
	p.matchKeyword("IN")
	expr, err := p.parseExpression()
	if err != nil {
		return nil, true, err
	}
	p.matchByte('|')
	var clauses []*ast.Node
	for {
		clause, ok, err := p.tryParseClause()
		if err != nil {
			return nil, true, err
		}
		if !ok {
			break
		}
		clauses = append(clauses, clause)
	}
	p.matchByte(')')
	n, err := ast.NewForeach(identifier, expr, clauses, p.src.RangeFrom(start))
	return n, true, err
}

// parseProjectionList parses `expr [AS alias], ...` or the bare `*`
// form, returning includeExisting=true for the latter.
func (p *Parser) parseProjectionList() ([]*ast.Node, bool, error) {
	p.skipLayout()
	if p.matchByte('*') {
		return nil, true, nil
	}
	var items []*ast.Node
	for {
		start := p.src.Mark()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, false, err
		}
		var alias *ast.Node
		if p.matchKeyword("AS") {
			text, rng, ok := p.scanIdentifier()
			if !ok {
				text, rng, ok = p.scanBacktickIdentifier()
			}
			if ok {
				alias = ast.NewIdentifier(text, rng)
			}
		}
		if alias == nil {
			// Unaliased projections take the expression's literal
			// source text as their alias, the way interpreters name
			// unlabelled result columns.
			alias = ast.NewIdentifier(string(p.src.Slice(expr.Range())), expr.Range())
		}
		item, err := ast.NewProjection(expr, alias, p.src.RangeFrom(start))
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)
		if !p.matchByte(',') {
			break
		}
	}
	return items, false, nil
}

func (p *Parser) parseOrderSkipLimit() (orderBy, skip, limit *ast.Node, err error) {
	if p.matchKeyword("ORDER") {
		p.matchKeyword("BY")
		start := p.src.Mark()
		var items []*ast.Node
		for {
			itemStart := p.src.Mark()
			expr, err := p.parseExpression()
			if err != nil {
				return nil, nil, nil, err
			}
			descending := p.matchKeyword("DESC") || p.matchKeyword("DESCENDING")
			if !descending {
				p.matchKeyword("ASC")
				p.matchKeyword("ASCENDING")
			}
			item, err := ast.NewSortItem(expr, descending, p.src.RangeFrom(itemStart))
			if err != nil {
				return nil, nil, nil, err
			}
			items = append(items, item)
			if !p.matchByte(',') {
				break
			}
		}
		orderBy, err = ast.NewOrderBy(items, p.src.RangeFrom(start))
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if p.matchKeyword("SKIP") {
		skip, err = p.parseExpression()
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if p.matchKeyword("LIMIT") {
		limit, err = p.parseExpression()
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return orderBy, skip, limit, nil
}

func (p *Parser) parseWithClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("WITH")
	distinct := p.matchKeyword("DISTINCT")
	items, includeExisting, err := p.parseProjectionList()
	if err != nil {
		return nil, true, err
	}
	orderBy, skip, limit, err := p.parseOrderSkipLimit()
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
	n, err := ast.NewWith(distinct, includeExisting, items, orderBy, skip, limit, predicate, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseUnwindClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("UNWIND")
	expr, err := p.parseExpression()
	if err != nil {
		return nil, true, err
	}
	p.matchKeyword("AS")
	idText, idRng, ok := p.scanIdentifier()
	if !ok {
		return nil, true, p.fail("an identifier")
	}
	identifier := ast.NewIdentifier(idText, idRng)
	n, err := ast.NewUnwind(expr, identifier, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseCallClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("CALL")
	nameStart := p.src.Mark()
	nameText, _, _ := p.scanIdentifier()
	for p.matchByte('.') {
		part, _, ok := p.scanIdentifier()
		if !ok {
			break
		}
		nameText = nameText + "." + part
	}
	procName := ast.NewProcName(nameText, p.src.RangeFrom(nameStart))
	var args []*ast.Node
	if p.matchByte('(') {
		if !p.peekByteIs(')') {
			for {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, true, err
				}
				args = append(args, arg)
				if !p.matchByte(',') {
					break
				}
			}
		}
		p.matchByte(')')
	}
	var yield []*ast.Node
	if p.matchKeyword("YIELD") {
		items, _, err := p.parseProjectionList()
		if err != nil {
			return nil, true, err
		}
		yield = items
	}
	n, err := ast.NewCall(procName, args, yield, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseReturnClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("RETURN")
	distinct := p.matchKeyword("DISTINCT")
	items, includeExisting, err := p.parseProjectionList()
	if err != nil {
		return nil, true, err
	}
	orderBy, skip, limit, err := p.parseOrderSkipLimit()
	if err != nil {
		return nil, true, err
	}
	n, err := ast.NewReturn(distinct, includeExisting, items, orderBy, skip, limit, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseStartClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("START")
	var points []*ast.Node
	for {
		point, err := p.parseStartPoint()
		if err != nil {
			return nil, true, err
		}
		points = append(points, point)
		if !p.matchByte(',') {
			break
		}
	}
	var predicate *ast.Node
	var err error
	if p.matchKeyword("WHERE") {
		predicate, err = p.parseExpression()
		if err != nil {
			return nil, true, err
		}
	}
	n, err := ast.NewStart(points, predicate, p.src.RangeFrom(start))
	return n, true, err
}

func (p *Parser) parseStartPoint() (*ast.Node, error) {
	start := p.src.Mark()
	idText, idRng, ok := p.scanIdentifier()
	if !ok {
		return nil, p.fail("an identifier")
	}
	identifier := ast.NewIdentifier(idText, idRng)
	p.matchByte('=')
	rel := false
	switch {
	case p.matchKeyword("NODE"):
	case p.matchKeyword("RELATIONSHIP"):
		rel = true
	case p.matchKeyword("REL"):
		rel = true
	}
	p.matchByte(':')
	if p.peekIdentifierAhead() && !p.peekByteIs('(') {
		nameText, nameRng, _ := p.scanIdentifier()
		indexName := ast.NewIndexName(nameText, nameRng)
		if p.matchByte('(') {
			if p.matchByte('*') {
				p.matchByte(')')
				if rel {
					n, err := ast.NewAllRelsScan(identifier, p.src.RangeFrom(start))
					return n, err
				}
				n, err := ast.NewAllNodesScan(identifier, p.src.RangeFrom(start))
				return n, err
			}
			m := p.src.Mark()
			if text, rng, ok := p.scanString(); ok && p.peekByteIs(')') {
				p.matchByte(')')
				lookup := ast.NewString(text, rng)
				if rel {
					n, err := ast.NewRelIndexQuery(identifier, indexName, lookup, p.src.RangeFrom(start))
					return n, err
				}
				n, err := ast.NewNodeIndexQuery(identifier, indexName, lookup, p.src.RangeFrom(start))
				return n, err
			}
			p.src.Restore(m)
			propText, propRng, _ := p.scanIdentifier()
			propName := ast.NewPropName(propText, propRng)
			p.matchByte('=')
			lookup, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			p.matchByte(')')
			if rel {
				n, err := ast.NewRelIndexLookup(identifier, indexName, propName, lookup, p.src.RangeFrom(start))
				return n, err
			}
			n, err := ast.NewNodeIndexLookup(identifier, indexName, propName, lookup, p.src.RangeFrom(start))
			return n, err
		}
	}
	p.matchByte('(')
	if p.matchByte('*') {
		p.matchByte(')')
		if rel {
			return ast.NewAllRelsScan(identifier, p.src.RangeFrom(start))
		}
		return ast.NewAllNodesScan(identifier, p.src.RangeFrom(start))
	}
	ids, err := p.parseStartIDList()
	if err != nil {
		return nil, err
	}
	p.matchByte(')')
	if rel {
		return ast.NewRelIDLookup(identifier, ids, p.src.RangeFrom(start))
	}
	return ast.NewNodeIDLookup(identifier, ids, p.src.RangeFrom(start))
}

func (p *Parser) peekIdentifierAhead() bool { return p.peekIdentifier() }

func (p *Parser) parseStartIDList() ([]*ast.Node, error) {
	var ids []*ast.Node
	for {
		id, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		if !p.matchByte(',') {
			break
		}
	}
	return ids, nil
}

func (p *Parser) parseLoadCSVClause() (*ast.Node, bool, error) {
	start := p.src.Mark()
	p.matchKeyword("LOAD")
	p.matchKeyword("CSV")
	withHeaders := p.matchKeyword("WITH")
	if withHeaders {
		p.matchKeyword("HEADERS")
	}
	p.matchKeyword("FROM")
	url, err := p.parseExpression()
	if err != nil {
		return nil, true, err
	}
	p.matchKeyword("AS")
	idText, idRng, ok := p.scanIdentifier()
	if !ok {
		return nil, true, p.fail("an identifier")
	}
	identifier := ast.NewIdentifier(idText, idRng)
	var fieldTerminator *ast.Node
	if p.matchKeyword("FIELDTERMINATOR") {
		ft, err := p.parseExpression()
		if err != nil {
			return nil, true, err
		}
		fieldTerminator = ft
	}
	n, err := ast.NewLoadCSV(withHeaders, url, identifier, fieldTerminator, p.src.RangeFrom(start))
	return n, true, err
}
