// Package tokenizer disambiguates a lexer.Item stream into token.Tokens: it
// skips whitespace and comments while tracking contiguity, resolves
// identifier-vs-keyword, longest-matches operator runs against the closed
// operator set, and merges `@ident(.ident)*` attribute sequences into a
// single Attribute token.
package tokenizer

import (
	"strings"

	"github.com/eggscript/egg/ast"
	"github.com/eggscript/egg/internal/intern"
	"github.com/eggscript/egg/lexer"
	"github.com/eggscript/egg/reporter"
	"github.com/eggscript/egg/token"
)

// opRun is the leftover tail of a lexer Operator item that the longest-match
// pass in Next did not fully consume; its remainder carries over to the
// next token.
type opRun struct {
	text string
	loc  ast.SourceLocation
}

// Tokenizer consumes a *lexer.Lexer and produces token.Tokens one at a time.
type Tokenizer struct {
	resource string
	lex      *lexer.Lexer
	interned *intern.Table

	pending []lexer.Item // one-ahead-of-one-ahead lookahead, used by attribute merging
	run     *opRun
}

// New creates a Tokenizer reading from lex, interning identifier and string
// text into table so repeated spellings share backing storage for the
// lifetime of the resulting AST.
func New(resource string, lex *lexer.Lexer, table *intern.Table) *Tokenizer {
	return &Tokenizer{resource: resource, lex: lex, interned: table}
}

func (t *Tokenizer) readItem() (lexer.Item, error) {
	if n := len(t.pending); n > 0 {
		it := t.pending[n-1]
		t.pending = t.pending[:n-1]
		return it, nil
	}
	return t.lex.Next()
}

func (t *Tokenizer) unreadItem(it lexer.Item) {
	t.pending = append(t.pending, it)
}

func (t *Tokenizer) errAt(loc ast.SourceLocation, format string, args ...interface{}) error {
	span := ast.SourceSpan{Resource: t.resource, Range: ast.SourceRange{Begin: loc, End: loc}}
	return reporter.Errorf(span, format, args...)
}

// Next returns the next disambiguated token. After EndOfFile it repeats
// EndOfFile tokens forever, same as the underlying lexer.
func (t *Tokenizer) Next() (token.Token, error) {
	if t.run != nil {
		return t.nextFromRun()
	}

	contiguous := true
	for {
		it, err := t.readItem()
		if err != nil {
			return token.Token{}, err
		}
		switch it.Kind {
		case lexer.Whitespace, lexer.Comment:
			contiguous = false
			continue
		default:
			return t.classify(it, contiguous)
		}
	}
}

func (t *Tokenizer) classify(it lexer.Item, contiguous bool) (token.Token, error) {
	base := token.Token{Line: it.Location.Line, Column: it.Location.Column, Contiguous: contiguous}

	switch it.Kind {
	case lexer.Integer:
		if it.Value.I < 0 {
			return token.Token{}, t.errAt(it.Location, "Invalid integer constant")
		}
		base.Kind = token.Integer
		base.Int = it.Value.I
		base.Width = len(it.Verbatim)
		return base, nil

	case lexer.Float:
		base.Kind = token.Float
		base.Float64 = it.Value.F
		base.Width = len(it.Verbatim)
		return base, nil

	case lexer.String:
		base.Kind = token.String
		base.Str = t.interned.Intern(it.Value.S)
		base.Width = len(it.Verbatim)
		return base, nil

	case lexer.Identifier:
		if kw, ok := token.LookupKeyword(it.Verbatim); ok {
			base.Kind = token.Keyword_
			base.Keyword = kw
		} else {
			base.Kind = token.Identifier
			base.Str = t.interned.Intern(it.Verbatim)
		}
		base.Width = len(it.Verbatim)
		return base, nil

	case lexer.Operator:
		if strings.HasPrefix(it.Verbatim, "@") {
			return t.classifyAttribute(it, contiguous)
		}
		return t.classifyOperator(it.Verbatim, it.Location, contiguous)

	case lexer.EndOfFile:
		base.Kind = token.EndOfFile
		return base, nil

	default:
		return token.Token{}, t.errAt(it.Location, "Unexpected lexer item")
	}
}

// classifyOperator performs the longest-prefix match against text, which may
// be the lexer's full Operator item or a leftover opRun tail. Any characters
// text does not fully consume are stashed as the new opRun so the next
// Next() call picks them up, with its column advanced by the number of
// bytes just consumed - the operator alphabet contains no line terminator,
// so the leftover never crosses a line.
func (t *Tokenizer) classifyOperator(text string, loc ast.SourceLocation, contiguous bool) (token.Token, error) {
	op, length, ok := token.MatchOperator(text)
	if !ok {
		return token.Token{}, t.errAt(loc, "Unknown operator: %q", text)
	}
	tok := token.Token{
		Kind:       token.Operator_,
		Operator:   op,
		Line:       loc.Line,
		Column:     loc.Column,
		Width:      length,
		Contiguous: contiguous,
	}
	if length < len(text) {
		t.run = &opRun{
			text: text[length:],
			loc:  ast.SourceLocation{Line: loc.Line, Column: loc.Column + length},
		}
	}
	return tok, nil
}

func (t *Tokenizer) nextFromRun() (token.Token, error) {
	r := t.run
	t.run = nil
	return t.classifyOperator(r.text, r.loc, true)
}

// classifyAttribute merges an Attribute token: the lexer Operator item
// beginning with '@' must consist entirely of '@' characters, immediately
// followed by an Identifier, optionally followed by further ".Identifier"
// links with no intervening whitespace.
func (t *Tokenizer) classifyAttribute(at lexer.Item, contiguous bool) (token.Token, error) {
	for _, r := range at.Verbatim {
		if r != '@' {
			return token.Token{}, t.errAt(at.Location, "invalid attribute form: %q", at.Verbatim)
		}
	}

	consumed := at.Verbatim

	idItem, err := t.readItem()
	if err != nil {
		return token.Token{}, err
	}
	if idItem.Kind != lexer.Identifier {
		return token.Token{}, t.errAt(idItem.Location, "invalid attribute form: expected identifier after '@'")
	}
	name := idItem.Verbatim
	consumed += idItem.Verbatim

	for {
		dotItem, err := t.readItem()
		if err != nil {
			return token.Token{}, err
		}
		if dotItem.Kind != lexer.Operator || dotItem.Verbatim != "." {
			t.unreadItem(dotItem)
			break
		}
		nextIdItem, err := t.readItem()
		if err != nil {
			return token.Token{}, err
		}
		if nextIdItem.Kind != lexer.Identifier {
			t.unreadItem(nextIdItem)
			t.unreadItem(dotItem)
			break
		}
		name += "." + nextIdItem.Verbatim
		consumed += dotItem.Verbatim + nextIdItem.Verbatim
	}

	return token.Token{
		Kind:       token.Attribute,
		Str:        t.interned.Intern(name),
		Line:       at.Location.Line,
		Column:     at.Location.Column,
		Width:      len(consumed),
		Contiguous: contiguous,
	}, nil
}
