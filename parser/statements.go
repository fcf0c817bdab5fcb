// Statement, guard, and type-specification-body grammar. Egg's grammar is
// hand-written recursive descent: one small parseX method per grammar
// production, each returning a Partial, dispatching one token at a time.
package parser

import (
	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/token"
)

// isTypeLeadToken reports whether t can start a type expression: a type
// keyword or an identifier (whose type-ness is ambiguous until a following
// token disambiguates it). `var` is deliberately excluded; its
// inferred-type statements have their own dedicated parse path.
func isTypeLeadToken(t token.Token) bool {
	if t.Kind == token.Identifier {
		return true
	}
	if t.Kind != token.Keyword_ {
		return false
	}
	switch t.Keyword {
	case token.KeywordAny, token.KeywordVoid, token.KeywordBool, token.KeywordInt,
		token.KeywordFloat, token.KeywordString, token.KeywordObject, token.KeywordType:
		return true
	default:
		return false
	}
}

// applyAttrs attaches a statement's leading @attribute names, if any.
func applyAttrs(n *ast.Node, attrs []string) {
	if len(attrs) > 0 {
		n.Attributes = attrs
	}
}

// collectAttributes consumes zero or more leading Attribute tokens,
// returning their dotted names in source order for the statement that
// follows to carry.
func (p *Parser) collectAttributes() []string {
	var attrs []string
	for p.cur().Kind == token.Attribute {
		t := p.advance()
		attrs = append(attrs, t.Str)
	}
	return attrs
}

// parseModule parses the whole resource as a flat sequence of top-level
// statements under a root Module node.
func (p *Parser) parseModule() *ast.Node {
	start := tokLoc(p.cur())
	n := ast.NewNode(ast.KindModuleRoot, ast.SourceRange{Begin: start, End: start})
	for !p.atEnd() {
		stmt := p.parseStatement()
		if !stmt.Succeeded() {
			return nil
		}
		n.Append(stmt.Node)
	}
	return n
}

// parseBlock parses a `{ stmt* }` block.
func (p *Parser) parseBlock() (*ast.Node, bool) {
	open, ok := p.expectOperator(token.OpLBrace, "'{'")
	if !ok {
		return nil, false
	}
	n := ast.NewNode(ast.KindStmtBlock, singleTokRange(open))
	for !p.atOperator(token.OpRBrace) && !p.atEnd() {
		stmt := p.parseStatement()
		if !stmt.Succeeded() {
			return nil, false
		}
		n.Append(stmt.Node)
	}
	close, ok := p.expectOperator(token.OpRBrace, "'}'")
	if !ok {
		return nil, false
	}
	n.Range = n.Range.Extend(tokEnd(close))
	return n, true
}

// parseStatement dispatches on the current token: keywords select their
// matching statement parser (`void(expr)` selects a simple statement, the
// discard call); otherwise a '{' starts a block, and anything else is tried
// as a type-led statement (variable declaration/definition, function
// definition) and then as a simple statement.
func (p *Parser) parseStatement() Partial {
	attrs := p.collectAttributes()

	if t := p.cur(); t.Kind == token.Keyword_ {
		switch t.Keyword {
		case token.KeywordBreak:
			return p.parseBreakStatement(attrs)
		case token.KeywordContinue:
			return p.parseContinueStatement(attrs)
		case token.KeywordReturn:
			return p.parseReturnStatement(attrs)
		case token.KeywordThrow:
			return p.parseThrowStatement(attrs)
		case token.KeywordYield:
			return p.parseYieldStatement(attrs)
		case token.KeywordIf:
			return p.parseIfStatement(attrs)
		case token.KeywordWhile:
			return p.parseWhileStatement(attrs)
		case token.KeywordDo:
			return p.parseDoStatement(attrs)
		case token.KeywordFor:
			return p.parseForStatement(attrs)
		case token.KeywordSwitch:
			return p.parseSwitchStatement(attrs)
		case token.KeywordTry:
			return p.parseTryStatement(attrs)
		case token.KeywordType:
			return p.parseTypeDefinitionStatement(attrs)
		case token.KeywordVoid:
			if next := p.peek(1); next.Kind == token.Operator_ && next.Operator == token.OpLParen {
				if after := p.peek(2); after.Kind != token.Operator_ || after.Operator != token.OpRParen {
					return p.parseSimpleStatement(attrs)
				}
			}
		}
	}

	if p.atOperator(token.OpLBrace) {
		body, ok := p.parseBlock()
		if !ok {
			return p.fail()
		}
		applyAttrs(body, attrs)
		return p.succeed(body)
	}

	return p.parseNonKeywordStatement(attrs)
}

// parseNonKeywordStatement tries a type-led statement (declaration,
// definition, or function definition) before falling back to a simple
// statement.
func (p *Parser) parseNonKeywordStatement(attrs []string) Partial {
	if isTypeLeadToken(p.cur()) {
		part := p.tryTypeLedStatement(attrs)
		if !part.Skipped() {
			return part
		}
	}
	return p.parseSimpleStatement(attrs)
}

// tryTypeLedStatement attempts `type ident ...`: a variable declaration
// (`type ident;`), a variable definition (`type ident = expr;`), or a
// function definition (`type ident(params) { block }`). It reports Skipped,
// consuming nothing, if the parsed type is not immediately followed by an
// identifier - letting callers fall back to parsing a plain expression
// statement, which is how a call like `print("x");` or `a.b(c.d);` is
// accepted despite `print` / `a.b` superficially parsing as a type.
func (p *Parser) tryTypeLedStatement(attrs []string) Partial {
	m := p.mark()
	typ, ok := p.parseType()
	if !ok {
		return p.fail()
	}
	if p.cur().Kind != token.Identifier {
		return p.skip(m)
	}
	name, nameRange, ok := p.expectIdentifier("a name")
	if !ok {
		return p.fail()
	}

	switch {
	case p.atOperator(token.OpLParen):
		_, sig, ok := p.parseFunctionSignatureSuffix(typ)
		if !ok {
			return p.fail()
		}
		body, ok := p.parseBlock()
		if !ok {
			return p.fail()
		}
		n := ast.NewNode(ast.KindStmtDefineFunction, typ.Range, sig, body)
		n.Name = name
		n.Range = n.Range.Extend(body.Range.End)
		applyAttrs(n, attrs)
		return p.succeed(n)

	case p.atOperator(token.OpAssign):
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return p.fail()
		}
		if !p.expectSemicolon() {
			return p.fail()
		}
		n := ast.NewNode(ast.KindStmtDefineVariable, typ.Range, typ, value)
		n.Name = name
		n.Range = n.Range.Extend(value.Range.End)
		applyAttrs(n, attrs)
		return p.succeed(n)

	case p.atOperator(token.OpSemicolon):
		p.advance()
		n := ast.NewNode(ast.KindStmtDeclareVariable, typ.Range, typ)
		n.Name = name
		n.Range = n.Range.Extend(nameRange.End)
		applyAttrs(n, attrs)
		return p.succeed(n)

	default:
		p.errorExpected("';', '=', or '('", p.cur())
		return p.fail()
	}
}

// parseSimpleStatement parses the remaining simple statements:
// `var[?] ident = expr;` definition, `++x;`/`--x;` and `target op= expr;`
// mutation, and bare call-expression statements (including the
// `void(expr);` discard form, which falls out of manifestation + call
// parsing with no dedicated AST node).
func (p *Parser) parseSimpleStatement(attrs []string) Partial {
	if p.atKeyword(token.KeywordVar) {
		return p.parseVarDefineStatement(attrs)
	}

	if p.atOperator(token.OpIncrement) || p.atOperator(token.OpDecrement) {
		opTok := p.advance()
		target, ok := p.parsePostfix()
		if !ok {
			return p.fail()
		}
		if !p.expectSemicolon() {
			return p.fail()
		}
		n := ast.NewNode(ast.KindStmtMutate, singleTokRange(opTok), target)
		if opTok.Operator == token.OpIncrement {
			n.Op.Mutation = ast.MutationIncrement
		} else {
			n.Op.Mutation = ast.MutationDecrement
		}
		n.Range = n.Range.Extend(target.Range.End)
		applyAttrs(n, attrs)
		return p.succeed(n)
	}

	target, ok := p.parseExpr()
	if !ok {
		return p.fail()
	}

	if t := p.cur(); t.Kind == token.Operator_ {
		if mutOp, ok := mutationOpTag[t.Operator]; ok {
			p.advance()
			value, ok := p.parseExpr()
			if !ok {
				return p.fail()
			}
			if !p.expectSemicolon() {
				return p.fail()
			}
			n := ast.NewNode(ast.KindStmtMutate, target.Range, target, value)
			n.Op.Mutation = mutOp
			n.Range = n.Range.Extend(value.Range.End)
			applyAttrs(n, attrs)
			return p.succeed(n)
		}
	}

	if target.Kind != ast.KindExprCall {
		p.errorAt(target.Range, "Unexpected expression statement")
		return p.fail()
	}
	if !p.expectSemicolon() {
		return p.fail()
	}
	applyAttrs(target, attrs)
	return p.succeed(target)
}

// parseVarDefineStatement parses `var[?] ident = expr;`.
func (p *Parser) parseVarDefineStatement(attrs []string) Partial {
	kw := p.advance() // 'var'
	rng := singleTokRange(kw)
	kind := ast.KindTypeInfer
	if p.atOperator(token.OpQuestion) {
		q := p.advance()
		kind = ast.KindTypeInferQ
		rng = rng.Extend(tokEnd(q))
	}
	name, _, ok := p.expectIdentifier("a variable name")
	if !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpAssign, "'='"); !ok {
		return p.fail()
	}
	value, ok := p.parseExpr()
	if !ok {
		return p.fail()
	}
	if !p.expectSemicolon() {
		return p.fail()
	}
	typeNode := ast.NewNode(kind, rng)
	n := ast.NewNode(ast.KindStmtDefineVariable, rng, typeNode, value)
	n.Name = name
	n.Range = n.Range.Extend(value.Range.End)
	applyAttrs(n, attrs)
	return p.succeed(n)
}

func (p *Parser) parseBreakStatement(attrs []string) Partial {
	kw := p.advance()
	if !p.expectSemicolon() {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtBreak, singleTokRange(kw))
	applyAttrs(n, attrs)
	return p.succeed(n)
}

func (p *Parser) parseContinueStatement(attrs []string) Partial {
	kw := p.advance()
	if !p.expectSemicolon() {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtContinue, singleTokRange(kw))
	applyAttrs(n, attrs)
	return p.succeed(n)
}

func (p *Parser) parseReturnStatement(attrs []string) Partial {
	kw := p.advance()
	n := ast.NewNode(ast.KindStmtReturn, singleTokRange(kw))
	if !p.atOperator(token.OpSemicolon) {
		expr, ok := p.parseExpr()
		if !ok {
			return p.fail()
		}
		n.Append(expr)
	}
	if !p.expectSemicolon() {
		return p.fail()
	}
	applyAttrs(n, attrs)
	return p.succeed(n)
}

func (p *Parser) parseThrowStatement(attrs []string) Partial {
	kw := p.advance()
	n := ast.NewNode(ast.KindStmtThrow, singleTokRange(kw))
	if !p.atOperator(token.OpSemicolon) {
		expr, ok := p.parseExpr()
		if !ok {
			return p.fail()
		}
		n.Append(expr)
	}
	if !p.expectSemicolon() {
		return p.fail()
	}
	applyAttrs(n, attrs)
	return p.succeed(n)
}

// parseYieldStatement parses `yield (expr | break | continue | ... expr);`.
// The break/continue/ellipsis forms are represented with their usual node
// kinds nested as the StmtYield's single child, rather than inventing
// dedicated yield-variant kinds.
func (p *Parser) parseYieldStatement(attrs []string) Partial {
	kw := p.advance()
	rng := singleTokRange(kw)

	var payload *ast.Node
	switch {
	case p.atKeyword(token.KeywordBreak):
		bkw := p.advance()
		payload = ast.NewNode(ast.KindStmtBreak, singleTokRange(bkw))
	case p.atKeyword(token.KeywordContinue):
		ckw := p.advance()
		payload = ast.NewNode(ast.KindStmtContinue, singleTokRange(ckw))
	case p.atOperator(token.OpEllipsis):
		dots := p.advance()
		expr, ok := p.parseExpr()
		if !ok {
			return p.fail()
		}
		payload = ast.NewNode(ast.KindExprEllipsis, singleTokRange(dots), expr)
		payload.Range = payload.Range.Extend(expr.Range.End)
	default:
		expr, ok := p.parseExpr()
		if !ok {
			return p.fail()
		}
		payload = expr
	}
	if !p.expectSemicolon() {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtYield, rng, payload)
	n.Range = n.Range.Extend(payload.Range.End)
	applyAttrs(n, attrs)
	return p.succeed(n)
}

// parseGuard parses the guard expression accepted in `if`/`while`/`switch`
// parentheses: an explicit-type binding `type ident = expr`, an inferred
// binding `var[?] ident = expr`, or a plain value expression.
func (p *Parser) parseGuard() (*ast.Node, bool) {
	if isTypeLeadToken(p.cur()) {
		m := p.mark()
		typ, ok := p.parseType()
		if !ok {
			return nil, false
		}
		if p.cur().Kind == token.Identifier {
			name, _, ok := p.expectIdentifier("a name")
			if !ok {
				return nil, false
			}
			if _, ok := p.expectOperator(token.OpAssign, "'=' in guard"); !ok {
				return nil, false
			}
			value, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			n := ast.NewNode(ast.KindExprGuard, typ.Range, typ, value)
			n.Name = name
			n.Range = n.Range.Extend(value.Range.End)
			return n, true
		}
		p.pos = m.pos
	}

	if p.atKeyword(token.KeywordVar) {
		kw := p.advance()
		rng := singleTokRange(kw)
		kind := ast.KindTypeInfer
		if p.atOperator(token.OpQuestion) {
			q := p.advance()
			kind = ast.KindTypeInferQ
			rng = rng.Extend(tokEnd(q))
		}
		name, _, ok := p.expectIdentifier("a name")
		if !ok {
			return nil, false
		}
		if _, ok := p.expectOperator(token.OpAssign, "'=' in guard"); !ok {
			return nil, false
		}
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		typeNode := ast.NewNode(kind, rng)
		n := ast.NewNode(ast.KindExprGuard, rng, typeNode, value)
		n.Name = name
		n.Range = n.Range.Extend(value.Range.End)
		return n, true
	}

	return p.parseExpr()
}

func (p *Parser) parseIfStatement(attrs []string) Partial {
	kw := p.advance()
	if _, ok := p.expectOperator(token.OpLParen, "'('"); !ok {
		return p.fail()
	}
	cond, ok := p.parseGuard()
	if !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
		return p.fail()
	}
	truthy, ok := p.parseBlock()
	if !ok {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtIf, singleTokRange(kw), cond, truthy)
	n.Range = n.Range.Extend(truthy.Range.End)

	if p.atKeyword(token.KeywordElse) {
		p.advance()
		if p.atKeyword(token.KeywordIf) {
			part := p.parseIfStatement(nil)
			if !part.Succeeded() {
				return part
			}
			n.Append(part.Node)
		} else {
			falsy, ok := p.parseBlock()
			if !ok {
				return p.fail()
			}
			n.Append(falsy)
		}
	}
	applyAttrs(n, attrs)
	return p.succeed(n)
}

func (p *Parser) parseWhileStatement(attrs []string) Partial {
	kw := p.advance()
	if _, ok := p.expectOperator(token.OpLParen, "'('"); !ok {
		return p.fail()
	}
	cond, ok := p.parseGuard()
	if !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
		return p.fail()
	}
	body, ok := p.parseBlock()
	if !ok {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtWhile, singleTokRange(kw), cond, body)
	n.Range = n.Range.Extend(body.Range.End)
	applyAttrs(n, attrs)
	return p.succeed(n)
}

// parseDoStatement parses `do { } while (expr);`. Unlike if/while/switch,
// the trailing condition is a plain expression, not a guard - there is no
// binding position a trailing-condition loop body could see the bound name
// from.
func (p *Parser) parseDoStatement(attrs []string) Partial {
	kw := p.advance()
	body, ok := p.parseBlock()
	if !ok {
		return p.fail()
	}
	if _, ok := p.expectKeyword(token.KeywordWhile, "'while'"); !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpLParen, "'('"); !ok {
		return p.fail()
	}
	cond, ok := p.parseExpr()
	if !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
		return p.fail()
	}
	if !p.expectSemicolon() {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtDo, singleTokRange(kw), body, cond)
	n.Range = n.Range.Extend(cond.Range.End)
	applyAttrs(n, attrs)
	return p.succeed(n)
}

// parseForStatement parses both for-loop forms: the explicit three-clause
// `for (init; cond; adv) { }` and the for-each
// `for (type ident : expr) { }` / `for (var[?] ident : expr) { }`.
func (p *Parser) parseForStatement(attrs []string) Partial {
	kw := p.advance()
	if _, ok := p.expectOperator(token.OpLParen, "'('"); !ok {
		return p.fail()
	}

	typ, name, iterable, matched, ok := p.tryParseForEachHeader()
	if matched {
		if !ok {
			return p.fail()
		}
		if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
			return p.fail()
		}
		body, ok := p.parseBlock()
		if !ok {
			return p.fail()
		}
		n := ast.NewNode(ast.KindStmtForEach, singleTokRange(kw), typ, iterable, body)
		n.Name = name
		n.Range = n.Range.Extend(body.Range.End)
		applyAttrs(n, attrs)
		return p.succeed(n)
	}

	init, ok := p.parseForInitClause()
	if !ok {
		return p.fail()
	}
	cond, ok := p.parseForCondClause()
	if !ok {
		return p.fail()
	}
	adv, ok := p.parseForAdvClause()
	if !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
		return p.fail()
	}
	body, ok := p.parseBlock()
	if !ok {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtForLoop, singleTokRange(kw), init, cond, adv, body)
	n.Range = n.Range.Extend(body.Range.End)
	applyAttrs(n, attrs)
	return p.succeed(n)
}

// tryParseForEachHeader attempts the for-each header `[var[?]|type] ident :
// expr` immediately following the for-loop's opening '('. matched is false
// (with the buffer rewound) if the header does not end in ':', letting the
// caller retry as the three-clause form's init clause; matched is true with
// ok false if a hard parse error was recorded partway through.
func (p *Parser) tryParseForEachHeader() (typ *ast.Node, name string, iterable *ast.Node, matched bool, ok bool) {
	m := p.mark()

	if p.atKeyword(token.KeywordVar) {
		kw := p.advance()
		rng := singleTokRange(kw)
		kind := ast.KindTypeInfer
		if p.atOperator(token.OpQuestion) {
			q := p.advance()
			kind = ast.KindTypeInferQ
			rng = rng.Extend(tokEnd(q))
		}
		if p.cur().Kind != token.Identifier {
			p.pos = m.pos
			return nil, "", nil, false, true
		}
		nm, _, idOk := p.expectIdentifier("a loop variable name")
		if !idOk {
			return nil, "", nil, true, false
		}
		if !p.atOperator(token.OpColon) {
			p.pos = m.pos
			return nil, "", nil, false, true
		}
		p.advance() // ':'
		it, itOk := p.parseExpr()
		if !itOk {
			return nil, "", nil, true, false
		}
		return ast.NewNode(kind, rng), nm, it, true, true
	}

	if isTypeLeadToken(p.cur()) {
		t, typOk := p.parseType()
		if !typOk {
			return nil, "", nil, true, false
		}
		if p.cur().Kind == token.Identifier {
			nm, _, idOk := p.expectIdentifier("a loop variable name")
			if !idOk {
				return nil, "", nil, true, false
			}
			if p.atOperator(token.OpColon) {
				p.advance()
				it, itOk := p.parseExpr()
				if !itOk {
					return nil, "", nil, true, false
				}
				return t, nm, it, true, true
			}
		}
		p.pos = m.pos
		return nil, "", nil, false, true
	}

	return nil, "", nil, false, true
}

// parseForInitClause parses the first of a three-clause for-loop's clauses:
// empty (-> Missing), or any statement parseNonKeywordStatement/
// parseVarDefineStatement accepts, consuming its own trailing ';'.
func (p *Parser) parseForInitClause() (*ast.Node, bool) {
	if p.atOperator(token.OpSemicolon) {
		loc := tokLoc(p.cur())
		p.advance()
		return ast.NewMissing(loc), true
	}
	part := p.parseNonKeywordStatement(nil)
	if !part.Succeeded() {
		return nil, false
	}
	return part.Node, true
}

// parseForCondClause parses the loop's condition clause: empty (-> Missing)
// or a plain value expression, consuming the trailing ';'.
func (p *Parser) parseForCondClause() (*ast.Node, bool) {
	if p.atOperator(token.OpSemicolon) {
		loc := tokLoc(p.cur())
		p.advance()
		return ast.NewMissing(loc), true
	}
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return expr, true
}

// parseForAdvClause parses the loop's advance clause: empty (-> Missing),
// `++x`/`--x`, `target op= expr`, or a bare expression - none of these
// consume a trailing terminator, since the caller expects ')' next.
func (p *Parser) parseForAdvClause() (*ast.Node, bool) {
	if p.atOperator(token.OpRParen) {
		loc := tokLoc(p.cur())
		return ast.NewMissing(loc), true
	}
	if p.atOperator(token.OpIncrement) || p.atOperator(token.OpDecrement) {
		opTok := p.advance()
		target, ok := p.parsePostfix()
		if !ok {
			return nil, false
		}
		n := ast.NewNode(ast.KindStmtMutate, singleTokRange(opTok), target)
		if opTok.Operator == token.OpIncrement {
			n.Op.Mutation = ast.MutationIncrement
		} else {
			n.Op.Mutation = ast.MutationDecrement
		}
		n.Range = n.Range.Extend(target.Range.End)
		return n, true
	}
	target, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if t := p.cur(); t.Kind == token.Operator_ {
		if mutOp, ok := mutationOpTag[t.Operator]; ok {
			p.advance()
			value, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			n := ast.NewNode(ast.KindStmtMutate, target.Range, target, value)
			n.Op.Mutation = mutOp
			n.Range = n.Range.Extend(value.Range.End)
			return n, true
		}
	}
	return target, true
}

// parseSwitchStatement parses `switch (guard) { (case expr: | default: |
// stmt)* }`: case/default labels and ordinary statements are interleaved as
// a flat child list in source order (fallthrough
// switch), matching StmtCase/StmtDefault's role as label markers rather
// than nested-body containers.
func (p *Parser) parseSwitchStatement(attrs []string) Partial {
	kw := p.advance()
	if _, ok := p.expectOperator(token.OpLParen, "'('"); !ok {
		return p.fail()
	}
	guard, ok := p.parseGuard()
	if !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
		return p.fail()
	}
	if _, ok := p.expectOperator(token.OpLBrace, "'{'"); !ok {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtSwitch, singleTokRange(kw), guard)

	for !p.atOperator(token.OpRBrace) && !p.atEnd() {
		switch {
		case p.atKeyword(token.KeywordCase):
			ckw := p.advance()
			expr, ok := p.parseExpr()
			if !ok {
				return p.fail()
			}
			if _, ok := p.expectOperator(token.OpColon, "':'"); !ok {
				return p.fail()
			}
			label := ast.NewNode(ast.KindStmtCase, singleTokRange(ckw), expr)
			label.Range = label.Range.Extend(expr.Range.End)
			n.Append(label)
		case p.atKeyword(token.KeywordDefault):
			dkw := p.advance()
			if _, ok := p.expectOperator(token.OpColon, "':'"); !ok {
				return p.fail()
			}
			n.Append(ast.NewNode(ast.KindStmtDefault, singleTokRange(dkw)))
		default:
			stmt := p.parseStatement()
			if !stmt.Succeeded() {
				return stmt
			}
			n.Append(stmt.Node)
		}
	}
	close, ok := p.expectOperator(token.OpRBrace, "'}'")
	if !ok {
		return p.fail()
	}
	n.Range = n.Range.Extend(tokEnd(close))
	applyAttrs(n, attrs)
	return p.succeed(n)
}

// parseTryStatement parses `try { } (catch (type ident) { })* [finally {
// }]`, requiring at least one catch or a finally.
func (p *Parser) parseTryStatement(attrs []string) Partial {
	kw := p.advance()
	body, ok := p.parseBlock()
	if !ok {
		return p.fail()
	}
	n := ast.NewNode(ast.KindStmtTry, singleTokRange(kw), body)
	n.Range = n.Range.Extend(body.Range.End)

	catchCount := 0
	for p.atKeyword(token.KeywordCatch) {
		ckw := p.advance()
		if _, ok := p.expectOperator(token.OpLParen, "'('"); !ok {
			return p.fail()
		}
		typ, ok := p.parseType()
		if !ok {
			return p.fail()
		}
		name, _, ok := p.expectIdentifier("an exception variable name")
		if !ok {
			return p.fail()
		}
		if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
			return p.fail()
		}
		cbody, ok := p.parseBlock()
		if !ok {
			return p.fail()
		}
		c := ast.NewNode(ast.KindStmtCatch, singleTokRange(ckw), typ, cbody)
		c.Name = name
		c.Range = c.Range.Extend(cbody.Range.End)
		n.Append(c)
		catchCount++
	}

	hasFinally := false
	if p.atKeyword(token.KeywordFinally) {
		fkw := p.advance()
		fbody, ok := p.parseBlock()
		if !ok {
			return p.fail()
		}
		f := ast.NewNode(ast.KindStmtFinally, singleTokRange(fkw), fbody)
		f.Range = f.Range.Extend(fbody.Range.End)
		n.Append(f)
		hasFinally = true
	}

	if catchCount == 0 && !hasFinally {
		p.errorExpected("'catch' or 'finally'", p.cur())
		return p.fail()
	}
	applyAttrs(n, attrs)
	return p.succeed(n)
}

// parseTypeDefinitionStatement parses `type ident = typeExpr;` (type alias)
// or `type ident { members }` (type specification). A trailing semicolon
// after the closing brace of the brace form (`type Class { ... };`) is
// accepted but not required.
func (p *Parser) parseTypeDefinitionStatement(attrs []string) Partial {
	kw := p.advance() // 'type'
	name, _, ok := p.expectIdentifier("a type name")
	if !ok {
		return p.fail()
	}

	switch {
	case p.atOperator(token.OpAssign):
		p.advance()
		aliased, ok := p.parseType()
		if !ok {
			return p.fail()
		}
		if !p.expectSemicolon() {
			return p.fail()
		}
		n := ast.NewNode(ast.KindStmtDefineType, singleTokRange(kw), aliased)
		n.Name = name
		n.Range = n.Range.Extend(aliased.Range.End)
		applyAttrs(n, attrs)
		return p.succeed(n)

	case p.atOperator(token.OpLBrace):
		spec, ok := p.parseTypeSpecificationBody()
		if !ok {
			return p.fail()
		}
		n := ast.NewNode(ast.KindStmtDefineType, singleTokRange(kw), spec)
		n.Name = name
		n.Range = n.Range.Extend(spec.Range.End)
		if p.atOperator(token.OpSemicolon) {
			semi := p.advance()
			n.Range = n.Range.Extend(tokEnd(semi))
		}
		applyAttrs(n, attrs)
		return p.succeed(n)

	default:
		p.errorExpected("'=' or '{'", p.cur())
		return p.fail()
	}
}

// parseTypeSpecificationBody parses the `{ clause* }` body of a `type ident
// { ... }` definition.
func (p *Parser) parseTypeSpecificationBody() (*ast.Node, bool) {
	open := p.advance() // '{'
	n := ast.NewNode(ast.KindTypeSpecification, singleTokRange(open))
	for !p.atOperator(token.OpRBrace) && !p.atEnd() {
		member, ok := p.parseTypeSpecMember()
		if !ok {
			return nil, false
		}
		n.Append(member)
	}
	close, ok := p.expectOperator(token.OpRBrace, "'}'")
	if !ok {
		return nil, false
	}
	n.Range = n.Range.Extend(tokEnd(close))
	return n, true
}

// parseTypeSpecMember parses one type-specification clause. A forward
// declaration prefixed `static` with no body records the exact "not yet
// supported" wording (see DESIGN.md's Open Question log), rather than
// silently accepting or synthesizing behavior the grammar doesn't define.
func (p *Parser) parseTypeSpecMember() (*ast.Node, bool) {
	isStatic := false
	if p.atKeyword(token.KeywordStatic) {
		p.advance()
		isStatic = true
	}
	memberType, ok := p.parseType()
	if !ok {
		return nil, false
	}
	name, nameRange, ok := p.expectIdentifier("a member name")
	if !ok {
		return nil, false
	}

	switch {
	case p.atOperator(token.OpLParen):
		_, sig, ok := p.parseFunctionSignatureSuffix(memberType)
		if !ok {
			return nil, false
		}
		if p.atOperator(token.OpLBrace) {
			body, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			if !isStatic {
				p.errorAt(sig.Range, "Unexpected function body on a non-static member")
				return nil, false
			}
			n := ast.NewNode(ast.KindTypeSpecificationStaticFunction, memberType.Range, sig, body)
			n.Name = name
			n.Range = n.Range.Extend(body.Range.End)
			return n, true
		}
		if !p.expectSemicolon() {
			return nil, false
		}
		if isStatic {
			p.errorAt(sig.Range, "static function forward declarations are not yet supported")
			return nil, false
		}
		n := ast.NewNode(ast.KindTypeSpecificationInstanceFunction, memberType.Range, sig)
		n.Name = name
		return n, true

	case p.atOperator(token.OpLBrace):
		open := p.advance()
		n := ast.NewNode(ast.KindTypeSpecificationInstanceData, memberType.Range, memberType)
		n.Name = name
		count := 0
		for !p.atOperator(token.OpRBrace) && !p.atEnd() {
			acc, ok := p.parseAccessClause()
			if !ok {
				return nil, false
			}
			n.Append(acc)
			count++
		}
		close, ok := p.expectOperator(token.OpRBrace, "'}'")
		if !ok {
			return nil, false
		}
		if count == 0 {
			p.errorAt(singleTokRange(open), "at least one access clause is required")
			return nil, false
		}
		if isStatic {
			p.errorAt(n.Range, "static accessor members are not yet supported")
			return nil, false
		}
		n.Range = n.Range.Extend(tokEnd(close))
		return n, true

	case p.atOperator(token.OpAssign):
		if !isStatic {
			p.errorExpected("';' or '('", p.cur())
			return nil, false
		}
		p.advance()
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if !p.expectSemicolon() {
			return nil, false
		}
		n := ast.NewNode(ast.KindTypeSpecificationStaticData, memberType.Range, memberType, value)
		n.Name = name
		n.Range = n.Range.Extend(value.Range.End)
		return n, true

	case p.atOperator(token.OpSemicolon):
		p.advance()
		if isStatic {
			p.errorAt(nameRange, "static data forward declarations are not yet supported")
			return nil, false
		}
		n := ast.NewNode(ast.KindTypeSpecificationInstanceData, memberType.Range, memberType)
		n.Name = name
		n.Range = n.Range.Extend(nameRange.End)
		return n, true

	default:
		p.errorExpected("';', '(', '{', or '='", p.cur())
		return nil, false
	}
}

// accessClauseNames maps the contextual (non-keyword) identifiers a type
// specification's accessor list recognizes to their Accessability tag.
// These five names are deliberately not part of the closed 29-entry keyword
// set: they're only meaningful in this one grammar position.
var accessClauseNames = map[string]ast.Accessability{
	"get": ast.AccessGet,
	"set": ast.AccessSet,
	"mut": ast.AccessMut,
	"ref": ast.AccessRef,
	"del": ast.AccessDel,
}

// parseAccessClause parses one `get|set|mut|ref|del;` clause inside a
// type-specification-property-access block.
func (p *Parser) parseAccessClause() (*ast.Node, bool) {
	t := p.cur()
	if t.Kind != token.Identifier {
		p.errorExpected("'get', 'set', 'mut', 'ref', or 'del'", t)
		return nil, false
	}
	acc, ok := accessClauseNames[t.Str]
	if !ok {
		p.errorExpected("'get', 'set', 'mut', 'ref', or 'del'", t)
		return nil, false
	}
	p.advance()
	rng := singleTokRange(t)
	if !p.expectSemicolon() {
		return nil, false
	}
	n := ast.NewNode(ast.KindTypeSpecificationAccess, rng)
	n.Op.Access = acc
	return n, true
}
