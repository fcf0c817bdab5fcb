// Package token defines the Token type the tokenizer emits and the parser
// consumes, plus the closed Keyword and Operator enumerations the lexer's
// coarse items are disambiguated into.
package token

import "fmt"

// Kind is the closed set of token kinds.
type Kind int

const (
	Invalid Kind = iota
	Integer
	Float
	String
	Keyword_
	Identifier
	Operator_
	Attribute
	EndOfFile
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Keyword_:
		return "keyword"
	case Identifier:
		return "identifier"
	case Operator_:
		return "operator"
	case Attribute:
		return "attribute"
	case EndOfFile:
		return "end of file"
	default:
		return "invalid"
	}
}

// Token is a single disambiguated lexical unit, carrying its own source
// position independent of any FileInfo lookup, plus a contiguity flag
// recording whether whitespace or a comment preceded it.
type Token struct {
	Kind Kind

	// exactly one of the following is populated, selected by Kind.
	Int      int64
	Float64  float64
	Str      string
	Keyword  Keyword
	Operator Operator

	Line       int
	Column     int
	Width      int
	Contiguous bool
}

// Pretty renders the token the way diagnostic messages quote it.
func (t Token) Pretty() string {
	switch t.Kind {
	case Integer:
		return fmt.Sprintf("%d", t.Int)
	case Float:
		return fmt.Sprintf("%g", t.Float64)
	case String:
		return fmt.Sprintf("%q", t.Str)
	case Keyword_:
		return t.Keyword.String()
	case Identifier:
		return t.Str
	case Operator_:
		return t.Operator.String()
	case Attribute:
		return "@" + t.Str
	case EndOfFile:
		return "end of file"
	default:
		return "?"
	}
}
