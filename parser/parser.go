// Package parser is a hand-written recursive-descent parser over the token
// stream tokenizer.Tokenizer produces, assembling a typed ast.Node tree: a
// pull-based lookahead buffer plus small per-construct methods, rather than
// a generated table-driven grammar.
package parser

import (
	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/internal/intern"
	"github.com/eggscript/egg/lexer"
	"github.com/eggscript/egg/reporter"
	"github.com/eggscript/egg/token"
	"github.com/eggscript/egg/tokenizer"
)

// Parser holds the lookahead buffer and issue sink for a single source.
// Unexported: construction only happens through Parse.
type Parser struct {
	resource string
	buf      *buffer
	pos      int
	handler  *reporter.Handler
	interned *intern.Table
}

// Parse lexes, tokenizes, and parses a single source, returning the root
// Module node and the ordered issue list. The root is non-nil if and only
// if the issue list contains no Error-severity issue; a non-nil root may
// still carry Warning/Information issues.
func Parse(resource string, data []byte) (*ast.Node, []ast.Issue) {
	return ParseWithReporter(resource, data, nil)
}

// ParseWithReporter is Parse with an explicit reporter.ReportFunc, which
// decides what the Handler records as its sticky abort error. The parse
// itself stops at the first syntax error whatever the ReportFunc returns.
func ParseWithReporter(resource string, data []byte, reportError reporter.ReportFunc) (*ast.Node, []ast.Issue) {
	table := intern.New()
	lex := lexer.New(resource, data)
	tok := tokenizer.New(resource, lex, table)
	p := &Parser{
		resource: resource,
		buf:      newBuffer(tok),
		handler:  reporter.NewHandler(reportError),
		interned: table,
	}

	root := p.parseModule()
	if p.handler.HasErrors() {
		return nil, p.handler.Issues()
	}
	return root, p.handler.Issues()
}

// cur returns the token at the cursor without consuming it.
func (p *Parser) cur() token.Token {
	return p.peek(0)
}

// peek returns the token offset tokens ahead of the cursor, bridging a
// tokenizer-origin error into the issue list and returning a synthetic
// EndOfFile token so callers can keep treating "ran out of input" and "lexer
// failed" uniformly.
func (p *Parser) peek(offset int) token.Token {
	t, err := p.buf.at(p.pos + offset)
	if err != nil {
		p.bridgeTokenizerError(err)
		return token.Token{Kind: token.EndOfFile}
	}
	return t
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	t := p.cur()
	p.pos++
	return t
}

// atEnd reports whether the cursor sits on the tokenizer's terminal
// EndOfFile token.
func (p *Parser) atEnd() bool {
	return p.cur().Kind == token.EndOfFile
}

// atKeyword reports whether the current token is the given keyword.
func (p *Parser) atKeyword(kw token.Keyword) bool {
	t := p.cur()
	return t.Kind == token.Keyword_ && t.Keyword == kw
}

// atOperator reports whether the current token is the given operator.
func (p *Parser) atOperator(op token.Operator) bool {
	t := p.cur()
	return t.Kind == token.Operator_ && t.Operator == op
}

// expectOperator consumes the current token if it is op, recording an
// "Expected …" issue and returning ok=false otherwise.
func (p *Parser) expectOperator(op token.Operator, want string) (token.Token, bool) {
	if p.atOperator(op) {
		return p.advance(), true
	}
	p.errorExpected(want, p.cur())
	return token.Token{}, false
}

// expectKeyword consumes the current token if it is kw, recording an
// "Expected …" issue and returning ok=false otherwise.
func (p *Parser) expectKeyword(kw token.Keyword, want string) (token.Token, bool) {
	if p.atKeyword(kw) {
		return p.advance(), true
	}
	p.errorExpected(want, p.cur())
	return token.Token{}, false
}

// expectIdentifier consumes the current token if it's an Identifier,
// returning its name (already interned by the tokenizer).
func (p *Parser) expectIdentifier(want string) (string, ast.SourceRange, bool) {
	t := p.cur()
	if t.Kind == token.Identifier {
		p.advance()
		return t.Str, singleTokRange(t), true
	}
	p.errorExpected(want, t)
	return "", ast.SourceRange{}, false
}

// expectSemicolon consumes a trailing `;`, the terminator for every simple
// statement.
func (p *Parser) expectSemicolon() bool {
	_, ok := p.expectOperator(token.OpSemicolon, "';'")
	return ok
}
