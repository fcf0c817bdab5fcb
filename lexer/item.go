// Package lexer classifies a UTF-8 byte stream into coarse lexical Items
// (whitespace, comment, integer, float, string, an undifferentiated operator
// run, or identifier), preserving verbatim text and source location for
// each. It does not know about keywords or which operator spelling within a
// run will eventually be used - that disambiguation is the tokenizer's job.
package lexer

import "github.com/eggscript/egg/ast"

// ItemKind is the closed lexer item classification.
type ItemKind int

const (
	Whitespace ItemKind = iota
	Comment
	Integer
	Float
	String
	Operator
	Identifier
	EndOfFile
)

func (k ItemKind) String() string {
	switch k {
	case Whitespace:
		return "whitespace"
	case Comment:
		return "comment"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Operator:
		return "operator"
	case Identifier:
		return "identifier"
	case EndOfFile:
		return "end of file"
	default:
		return "invalid"
	}
}

// Item is a single classified lexeme.
type Item struct {
	Kind     ItemKind
	Verbatim string
	// Value carries the decoded literal for Integer/Float/String items and the
	// text, as a string value, for Identifier items; it is the zero value for
	// the other kinds.
	Value    ast.LiteralValue
	Location ast.SourceLocation
}
