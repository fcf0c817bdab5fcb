package parser

import (
	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/reporter"
	"github.com/eggscript/egg/token"
)

// tokLoc and tokEnd give a token's begin/end source locations. End is
// computed from Width, which is a byte count - adequate for every token kind
// except a multi-line backquoted string, whose printed end column would
// technically need the string's embedded newlines accounted for. Egg source
// diagnostics never need to point past such a string's opening quote in
// practice, so this simplification is left as-is rather than plumbing a
// second FileInfo through the token layer.
func tokLoc(t token.Token) ast.SourceLocation {
	return ast.SourceLocation{Line: t.Line, Column: t.Column}
}

func tokEnd(t token.Token) ast.SourceLocation {
	return ast.SourceLocation{Line: t.Line, Column: t.Column + t.Width}
}

func singleTokRange(t token.Token) ast.SourceRange {
	return ast.SourceRange{Begin: tokLoc(t), End: tokEnd(t)}
}

func (p *Parser) span(rng ast.SourceRange) ast.SourceSpan {
	return ast.SourceSpan{Resource: p.resource, Range: rng}
}

// errorExpected records an "Expected … but instead got …" issue through the
// shared Handler, which decides abort policy; every call site that reaches
// this has already committed to reporting Failed, since an alternative may
// only report Skipped when it has recorded no new issue.
func (p *Parser) errorExpected(want string, got token.Token) {
	rng := singleTokRange(got)
	p.handler.HandleError(reporter.Errorf(p.span(rng), "Expected %s but instead got %s", want, got.Pretty()))
}

// errorUnexpected records an "Unexpected …" issue.
func (p *Parser) errorUnexpected(what string, got token.Token) {
	rng := singleTokRange(got)
	p.handler.HandleError(reporter.Errorf(p.span(rng), "Unexpected %s: %s", what, got.Pretty()))
}

// errorAt records a free-form Error issue at an explicit range, for the
// handful of rules whose wording doesn't reduce to "expected X" / "unexpected
// X" (e.g. the type-specification "not yet supported" paths).
func (p *Parser) errorAt(rng ast.SourceRange, format string, args ...interface{}) {
	p.handler.HandleError(reporter.Errorf(p.span(rng), format, args...))
}

// warn records a non-fatal Warning issue (e.g. the redundant `??` type
// suffix warning); warnings never abort the parse.
func (p *Parser) warn(rng ast.SourceRange, format string, args ...interface{}) {
	p.handler.HandleWarning(reporter.Errorf(p.span(rng), format, args...))
}

// bridgeTokenizerError converts a tokenizer/lexer-origin error into the
// Handler's Error channel, preserving the tokenizer's own recorded span.
func (p *Parser) bridgeTokenizerError(err error) {
	if ewp, ok := err.(reporter.ErrorWithPos); ok {
		p.handler.HandleError(ewp)
		return
	}
	p.handler.HandleError(reporter.Errorf(p.span(ast.SourceRange{}), "%s", err.Error()))
}
