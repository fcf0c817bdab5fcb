package parser

import (
	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/token"
)

// binaryPrecedence is the binary-operator precedence table, higher number
// binds tighter.
var binaryPrecedence = map[token.Operator]int{
	token.OpIfVoid: 1, token.OpIfNull: 1,
	token.OpIfFalse: 2,
	token.OpIfTrue:  3,
	token.OpBitwiseOr: 4,
	token.OpCaret:     5,
	token.OpBitwiseAnd: 6,
	token.OpEqual: 7, token.OpNotEqual: 7,
	token.OpLess: 8, token.OpLessEqual: 8, token.OpGreaterEqual: 8, token.OpGreater: 8,
	token.OpMinimum: 9, token.OpMaximum: 9,
	token.OpShiftLeft: 10, token.OpShiftRight: 10, token.OpShiftRightUnsigned: 10,
	token.OpPlus: 11, token.OpMinus: 11,
	token.OpMultiply: 12, token.OpDivide: 12, token.OpRemainder: 12,
}

var binaryOpTag = map[token.Operator]ast.ValueBinaryOp{
	token.OpIfVoid: ast.BinaryIfVoid, token.OpIfNull: ast.BinaryIfNull,
	token.OpIfFalse: ast.BinaryIfFalse, token.OpIfTrue: ast.BinaryIfTrue,
	token.OpBitwiseOr: ast.BinaryBitwiseOr, token.OpCaret: ast.BinaryBitwiseXor, token.OpBitwiseAnd: ast.BinaryBitwiseAnd,
	token.OpEqual: ast.BinaryEqual, token.OpNotEqual: ast.BinaryNotEqual,
	token.OpLess: ast.BinaryLess, token.OpLessEqual: ast.BinaryLessEqual,
	token.OpGreaterEqual: ast.BinaryGreaterEqual, token.OpGreater: ast.BinaryGreater,
	token.OpMinimum: ast.BinaryMinimum, token.OpMaximum: ast.BinaryMaximum,
	token.OpShiftLeft: ast.BinaryShiftLeft, token.OpShiftRight: ast.BinaryShiftRight,
	token.OpShiftRightUnsigned: ast.BinaryShiftRightUnsigned,
	token.OpPlus: ast.BinaryAdd, token.OpMinus: ast.BinarySubtract,
	token.OpMultiply: ast.BinaryMultiply, token.OpDivide: ast.BinaryDivide, token.OpRemainder: ast.BinaryRemainder,
}

// mutationOpTag maps a statement-level `target op= expr` operator to its
// ValueMutationOp tag.
var mutationOpTag = map[token.Operator]ast.ValueMutationOp{
	token.OpAssign: ast.MutationAssign,
	token.OpPlusAssign: ast.MutationAdd, token.OpMinusAssign: ast.MutationSubtract,
	token.OpMultiplyAssign: ast.MutationMultiply, token.OpDivideAssign: ast.MutationDivide,
	token.OpRemainderAssign: ast.MutationRemainder,
	token.OpBitwiseAndAssign: ast.MutationBitwiseAnd, token.OpBitwiseOrAssign: ast.MutationBitwiseOr,
	token.OpCaretAssign: ast.MutationBitwiseXor,
	token.OpShiftLeftAssign: ast.MutationShiftLeft, token.OpShiftRightAssign: ast.MutationShiftRight,
	token.OpShiftRightUnsignedAssign: ast.MutationShiftRightUnsigned,
	token.OpIfNullAssign: ast.MutationIfNull, token.OpIfFalseAssign: ast.MutationIfFalse,
	token.OpIfTrueAssign: ast.MutationIfTrue, token.OpIfVoidAssign: ast.MutationIfVoid,
	token.OpMinimumAssign: ast.MutationMinimum, token.OpMaximumAssign: ast.MutationMaximum,
}

// parseExpr parses a full value expression, entering at the ternary level.
func (p *Parser) parseExpr() (*ast.Node, bool) {
	return p.parseTernary()
}

// parseTernary implements the right-associative `? :` level, lower than every
// binary operator.
func (p *Parser) parseTernary() (*ast.Node, bool) {
	cond, ok := p.parseBinary(1)
	if !ok {
		return nil, false
	}
	if !p.atOperator(token.OpQuestion) {
		return cond, true
	}
	p.advance()
	truthy, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectOperator(token.OpColon, "':'"); !ok {
		return nil, false
	}
	falsy, ok := p.parseTernary()
	if !ok {
		return nil, false
	}
	n := ast.NewNode(ast.KindExprTernary, cond.Range, cond, truthy, falsy)
	n.Op.Ternary = ast.TernaryConditional
	n.Range = n.Range.Extend(falsy.Range.End)
	return n, true
}

// parseBinary is a standard min-precedence-climbing recursion: it recurses
// with level+1 on the right-hand side, which by construction always yields a
// left-associative tree at every precedence level without needing a
// post-hoc rotation step. This produces identical trees to a recurse-then-
// rotate formulation for this left-associative, single-direction precedence
// table; the climbing form is simpler to get right in Go (see DESIGN.md).
func (p *Parser) parseBinary(minLevel int) (*ast.Node, bool) {
	lhs, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		t := p.cur()
		if t.Kind != token.Operator_ {
			break
		}
		level, isBinary := binaryPrecedence[t.Operator]
		if !isBinary || level < minLevel {
			break
		}
		p.advance()
		rhs, ok := p.parseBinary(level + 1)
		if !ok {
			return nil, false
		}
		n := ast.NewNode(ast.KindExprBinary, lhs.Range, lhs, rhs)
		n.Op.Binary = binaryOpTag[t.Operator]
		n.Range = n.Range.Extend(rhs.Range.End)
		lhs = n
	}
	return lhs, true
}

// parseUnary handles prefix `! - ~` and the `* &` dereference/reference
// wrappers; `++`/`--` are rejected inside expressions.
func (p *Parser) parseUnary() (*ast.Node, bool) {
	t := p.cur()
	if t.Kind == token.Operator_ && (t.Operator == token.OpIncrement || t.Operator == token.OpDecrement) {
		p.errorUnexpected("mutation operator inside an expression", t)
		return nil, false
	}
	var unaryOp ast.ValueUnaryOp
	var kind ast.NodeKind
	switch {
	case t.Kind == token.Operator_ && t.Operator == token.OpNot:
		unaryOp, kind = ast.UnaryLogicalNot, ast.KindExprUnary
	case t.Kind == token.Operator_ && t.Operator == token.OpMinus:
		unaryOp, kind = ast.UnaryNegate, ast.KindExprUnary
	case t.Kind == token.Operator_ && t.Operator == token.OpTilde:
		unaryOp, kind = ast.UnaryBitwiseNot, ast.KindExprUnary
	case t.Kind == token.Operator_ && t.Operator == token.OpMultiply:
		kind = ast.KindExprDereference
	case t.Kind == token.Operator_ && t.Operator == token.OpBitwiseAnd:
		kind = ast.KindExprReference
	default:
		return p.parsePostfix()
	}
	p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	n := ast.NewNode(kind, singleTokRange(t), operand)
	n.Op.Unary = unaryOp
	n.Range = n.Range.Extend(operand.Range.End)
	return n, true
}

// parsePostfix parses a primary expression followed by any chain of
// `(args)` / `[index]` / `.name` suffixes.
func (p *Parser) parsePostfix() (*ast.Node, bool) {
	n, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		switch {
		case p.atOperator(token.OpLParen):
			n, ok = p.parseCallSuffix(n)
		case p.atOperator(token.OpLBracket):
			n, ok = p.parseIndexSuffix(n)
		case p.atOperator(token.OpDot):
			n, ok = p.parsePropertySuffix(n)
		default:
			return n, true
		}
		if !ok {
			return nil, false
		}
	}
}

func (p *Parser) parseCallSuffix(callee *ast.Node) (*ast.Node, bool) {
	p.advance() // '('
	n := ast.NewNode(ast.KindExprCall, callee.Range, callee)
	if !p.atOperator(token.OpRParen) {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			n.Append(arg)
			if !p.atOperator(token.OpComma) {
				break
			}
			p.advance()
		}
	}
	close, ok := p.expectOperator(token.OpRParen, "')'")
	if !ok {
		return nil, false
	}
	n.Range = n.Range.Extend(tokEnd(close))
	return n, true
}

func (p *Parser) parseIndexSuffix(obj *ast.Node) (*ast.Node, bool) {
	p.advance() // '['
	index, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	close, ok := p.expectOperator(token.OpRBracket, "']'")
	if !ok {
		return nil, false
	}
	n := ast.NewNode(ast.KindExprIndex, obj.Range, obj, index)
	n.Range = n.Range.Extend(tokEnd(close))
	return n, true
}

func (p *Parser) parsePropertySuffix(obj *ast.Node) (*ast.Node, bool) {
	p.advance() // '.'
	name, rng, ok := p.propertyName()
	if !ok {
		return nil, false
	}
	nameNode := ast.NewLeaf(ast.KindLiteral, rng, ast.StringValue(name))
	n := ast.NewNode(ast.KindExprProperty, obj.Range, obj, nameNode)
	n.Range = n.Range.Extend(rng.End)
	return n, true
}

// propertyName accepts an Identifier or any keyword as a property name.
func (p *Parser) propertyName() (string, ast.SourceRange, bool) {
	t := p.cur()
	switch t.Kind {
	case token.Identifier:
		p.advance()
		return t.Str, singleTokRange(t), true
	case token.Keyword_:
		p.advance()
		return t.Keyword.String(), singleTokRange(t), true
	default:
		p.errorExpected("a property name", t)
		return "", ast.SourceRange{}, false
	}
}

// primitiveTypeKind maps a type keyword to its manifestation NodeKind,
// shared by expression-position "keyword type" manifestation and by
// type-expression primaries.
func primitiveTypeKind(kw token.Keyword) (ast.NodeKind, bool) {
	switch kw {
	case token.KeywordAny:
		return ast.KindTypeAny, true
	case token.KeywordVoid:
		return ast.KindTypeVoid, true
	case token.KeywordBool:
		return ast.KindTypeBool, true
	case token.KeywordInt:
		return ast.KindTypeInt, true
	case token.KeywordFloat:
		return ast.KindTypeFloat, true
	case token.KeywordString:
		return ast.KindTypeString, true
	case token.KeywordObject:
		return ast.KindTypeObject, true
	case token.KeywordType:
		return ast.KindTypeType, true
	default:
		return ast.KindInvalid, false
	}
}

// parsePrimary parses a literal, identifier, type-keyword manifestation,
// parenthesized expression, array literal, or EON object literal.
func (p *Parser) parsePrimary() (*ast.Node, bool) {
	t := p.cur()
	switch t.Kind {
	case token.Integer:
		p.advance()
		return ast.NewLeaf(ast.KindLiteral, singleTokRange(t), ast.IntValue(t.Int)), true
	case token.Float:
		p.advance()
		return ast.NewLeaf(ast.KindLiteral, singleTokRange(t), ast.FloatValue(t.Float64)), true
	case token.String:
		p.advance()
		return ast.NewLeaf(ast.KindLiteral, singleTokRange(t), ast.StringValue(t.Str)), true
	case token.Identifier:
		p.advance()
		return ast.NewLeaf(ast.KindVariable, singleTokRange(t), ast.StringValue(t.Str)), true
	case token.Keyword_:
		switch t.Keyword {
		case token.KeywordTrue:
			p.advance()
			return ast.NewLeaf(ast.KindLiteral, singleTokRange(t), ast.BoolValue(true)), true
		case token.KeywordFalse:
			p.advance()
			return ast.NewLeaf(ast.KindLiteral, singleTokRange(t), ast.BoolValue(false)), true
		case token.KeywordNull:
			p.advance()
			return ast.NewLeaf(ast.KindLiteral, singleTokRange(t), ast.NullValue()), true
		default:
			if kind, ok := primitiveTypeKind(t.Keyword); ok {
				p.advance()
				n := ast.NewNode(kind, singleTokRange(t))
				if p.atOperator(token.OpLBrace) {
					return p.parseObjectExpressionBody(n)
				}
				return n, true
			}
			p.errorUnexpected("token", t)
			return nil, false
		}
	case token.Operator_:
		switch t.Operator {
		case token.OpLParen:
			return p.parseParenExpr()
		case token.OpLBracket:
			return p.parseArrayLiteral()
		case token.OpLBrace:
			return p.parseEonLiteral()
		default:
			p.errorUnexpected("token", t)
			return nil, false
		}
	default:
		p.errorUnexpected("token", t)
		return nil, false
	}
}

// parseParenExpr parses `(expr)`. The parens are transparent grouping: the
// inner node is returned as-is rather than wrapped, since Egg's grammar
// attaches no semantics to parenthesization beyond precedence override,
// which the recursive descent already resolves structurally.
func (p *Parser) parseParenExpr() (*ast.Node, bool) {
	p.advance() // '('
	inner, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectOperator(token.OpRParen, "')'"); !ok {
		return nil, false
	}
	return inner, true
}

func (p *Parser) parseArrayLiteral() (*ast.Node, bool) {
	open := p.advance() // '['
	n := ast.NewNode(ast.KindExprArray, singleTokRange(open))
	if !p.atOperator(token.OpRBracket) {
		for {
			elem, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			n.Append(elem)
			if !p.atOperator(token.OpComma) {
				break
			}
			p.advance()
		}
	}
	close, ok := p.expectOperator(token.OpRBracket, "']'")
	if !ok {
		return nil, false
	}
	n.Range = n.Range.Extend(tokEnd(close))
	return n, true
}

// parseEonLiteral parses an object-expression literal (EON), `{ name: expr,
// ... }`.
func (p *Parser) parseEonLiteral() (*ast.Node, bool) {
	open := p.advance() // '{'
	n := ast.NewNode(ast.KindExprEon, singleTokRange(open))
	if !p.atOperator(token.OpRBrace) {
		for {
			name, nameRange, ok := p.propertyName()
			if !ok {
				return nil, false
			}
			if _, ok := p.expectOperator(token.OpColon, "':'"); !ok {
				return nil, false
			}
			value, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			clause := ast.NewNode(ast.KindObjectSpecificationData, nameRange, value)
			clause.Name = name
			n.Append(clause)
			if !p.atOperator(token.OpComma) {
				break
			}
			p.advance()
		}
	}
	close, ok := p.expectOperator(token.OpRBrace, "'}'")
	if !ok {
		return nil, false
	}
	n.Range = n.Range.Extend(tokEnd(close))
	return n, true
}
