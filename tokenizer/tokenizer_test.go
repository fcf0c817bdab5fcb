package tokenizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eggscript/egg/internal/intern"
	"github.com/eggscript/egg/lexer"
	"github.com/eggscript/egg/token"
	"github.com/eggscript/egg/tokenizer"
)

func tokenizeAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := lexer.New("test.egg", []byte(src))
	tok := tokenizer.New("test.egg", l, intern.New())
	var toks []token.Token
	for {
		tk, err := tok.Next()
		require.NoError(t, err)
		toks = append(toks, tk)
		if tk.Kind == token.EndOfFile {
			break
		}
	}
	return toks
}

func TestTokenizerSkipsWhitespaceAndComments(t *testing.T) {
	t.Parallel()
	toks := tokenizeAll(t, "x // comment\n /* block */ y")
	require.Len(t, toks, 3) // x, y, EndOfFile
	require.Equal(t, token.Identifier, toks[0].Kind)
	require.Equal(t, "x", toks[0].Str)
	require.Equal(t, token.Identifier, toks[1].Kind)
	require.Equal(t, "y", toks[1].Str)
}

func TestTokenizerRecognizesKeywords(t *testing.T) {
	t.Parallel()
	toks := tokenizeAll(t, "if int print")
	require.Equal(t, token.Keyword_, toks[0].Kind)
	require.Equal(t, token.KeywordIf, toks[0].Keyword)
	require.Equal(t, token.Keyword_, toks[1].Kind)
	require.Equal(t, token.KeywordInt, toks[1].Keyword)
	require.Equal(t, token.Identifier, toks[2].Kind)
	require.Equal(t, "print", toks[2].Str)
}

func TestTokenizerContiguityTracksAdjacency(t *testing.T) {
	t.Parallel()
	toks := tokenizeAll(t, "a+ b")
	// 'a' starts a fresh run (its own Contiguous flag is irrelevant at start
	// of input); '+' is contiguous with 'a'; 'b' is not contiguous, since a
	// space precedes it.
	require.True(t, toks[1].Contiguous) // '+'
	require.False(t, toks[2].Contiguous) // 'b'
}

func TestTokenizerLongestMatchSplitsOperatorRun(t *testing.T) {
	t.Parallel()
	toks := tokenizeAll(t, "a+++b")
	require.Equal(t, token.Operator_, toks[1].Kind)
	require.Equal(t, token.OpIncrement, toks[1].Operator)
	require.Equal(t, token.Operator_, toks[2].Kind)
	require.Equal(t, token.OpPlus, toks[2].Operator)
	require.True(t, toks[2].Contiguous)
}

func TestTokenizerMergesDottedAttribute(t *testing.T) {
	t.Parallel()
	toks := tokenizeAll(t, "@deprecated.since x")
	require.Equal(t, token.Attribute, toks[0].Kind)
	require.Equal(t, "deprecated.since", toks[0].Str)
	require.Equal(t, token.Identifier, toks[1].Kind)
}

func TestTokenizerAttributeRequiresIdentifierAfterAt(t *testing.T) {
	t.Parallel()
	l := lexer.New("test.egg", []byte("@ 5"))
	tok := tokenizer.New("test.egg", l, intern.New())
	_, err := tok.Next()
	require.Error(t, err)
}

func TestTokenizerRepeatsEndOfFile(t *testing.T) {
	t.Parallel()
	l := lexer.New("test.egg", []byte(""))
	tok := tokenizer.New("test.egg", l, intern.New())
	first, err := tok.Next()
	require.NoError(t, err)
	require.Equal(t, token.EndOfFile, first.Kind)
	second, err := tok.Next()
	require.NoError(t, err)
	require.Equal(t, token.EndOfFile, second.Kind)
}

func TestTokenizerRejectsIntegerMagnitudeOverflow(t *testing.T) {
	t.Parallel()
	for _, src := range []string{"18446744073709551615", "0xFFFFFFFFFFFFFFFF"} {
		l := lexer.New("test.egg", []byte(src))
		tok := tokenizer.New("test.egg", l, intern.New())
		_, err := tok.Next()
		require.Error(t, err, src)
	}
}

func TestTokenizerInternsRepeatedIdentifiers(t *testing.T) {
	t.Parallel()
	table := intern.New()
	l := lexer.New("test.egg", []byte("foo foo"))
	tok := tokenizer.New("test.egg", l, table)
	first, err := tok.Next()
	require.NoError(t, err)
	second, err := tok.Next()
	require.NoError(t, err)
	require.Equal(t, "foo", first.Str)
	require.Equal(t, "foo", second.Str)
	require.Equal(t, 1, table.Len())
}
