package parser

import "github.com/eggscript/egg/token"

// tokenSource is the minimal pull interface the lookahead buffer needs;
// *tokenizer.Tokenizer satisfies it.
type tokenSource interface {
	Next() (token.Token, error)
}

// buffer is the append-only, absolute-index lookahead buffer: accessing
// index i pulls from the tokenizer until reaching i, and tokens already
// pulled are never discarded, so any earlier index can be revisited by a
// backtracking alternative at no re-lex cost.
type buffer struct {
	src    tokenSource
	tokens []token.Token
	err    error
}

func newBuffer(src tokenSource) *buffer {
	return &buffer{src: src}
}

// at returns the token at absolute index i, pulling from the tokenizer as
// needed. Once the tokenizer reports a fatal error, at returns that error for
// every subsequent index (mirroring the tokenizer's own "EOF repeats"
// behavior for the error case).
func (b *buffer) at(i int) (token.Token, error) {
	for len(b.tokens) <= i {
		if b.err != nil {
			return token.Token{}, b.err
		}
		t, err := b.src.Next()
		if err != nil {
			b.err = err
			return token.Token{}, err
		}
		b.tokens = append(b.tokens, t)
	}
	return b.tokens[i], nil
}
