package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/cascas"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBracket(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	for _, tc := range []struct {
		text string
		open int
		end  int
		ok   bool
	}{
		{"()", 0, 1, true},
		{"(a(b)c)d", 0, 6, true},
		{"(a(b)c)d", 2, 4, true},
		{"x((()))", 1, 6, true},
		{"((a)", 0, -1, false},
		{"a)", 0, -1, false},
		{"(", 3, -1, false},
	} {
		end, ok := MatchBracket([]byte(tc.text), tc.open)
		assert.Equal(t, tc.ok, ok, tc.text)
		assert.Equal(t, tc.end, end, tc.text)
	}
}

func TestTokenizeSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	tokens, err := Tokenize("a+b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "+", "b"}, Lexemes(tokens))
	assert.Equal(t, []TokKind{Identifier, Operator, Identifier},
		[]TokKind{tokens[0].Kind, tokens[1].Kind, tokens[2].Kind})
	assert.True(t, tokens[1].IsOperator('+'))
	assert.Equal(t, cascas.Span{2, 3}, tokens[2].Span)
	//
	tokens, err = Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	for _, tc := range []struct {
		source  string
		lexemes []string
	}{
		{"5+37 +4/ 6- 7*8",
			[]string{"5", "+", "37", "+", "4", "/", "6", "-", "7", "*", "8"}},
		{"5-(5 + 6) /99*(22-8*2 )- (23 *2)",
			[]string{"5", "-", "(5 + 6)", "/", "99", "*", "(22-8*2 )", "-", "(23 *2)"}},
		{"5  +   9    *10\n-22  /    2",
			[]string{"5", "+", "9", "*", "10", "-", "22", "/", "2"}},
		{"sin(22 +  99)-22+9*arccos(22)/ln( 4 *2)",
			[]string{"sin(22 +  99)", "-", "22", "+", "9", "*", "arccos(22)", "/", "ln( 4 *2)"}},
		{"tan(22.8+6)-6.665/811.28",
			[]string{"tan(22.8+6)", "-", "6.665", "/", "811.28"}},
		{"log(x)/csc(cooka)*k+88*j",
			[]string{"log(x)", "/", "csc(cooka)", "*", "k", "+", "88", "*", "j"}},
		{"sin(-2)+(-4)+(-x)*(-k)",
			[]string{"sin(-2)", "+", "(-4)", "+", "(-x)", "*", "(-k)"}},
		{"x^(y^(2))", []string{"x", "^", "(y^(2))"}},
		{"f(g(x))", []string{"f(g(x))"}},
		{"x2 (3)", []string{"x2", "(3)"}},
	} {
		tokens, err := Tokenize(tc.source)
		require.NoError(t, err, tc.source)
		assert.Equal(t, tc.lexemes, Lexemes(tokens), tc.source)
	}
}

func TestTokenKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	tokens, err := Tokenize("sin(x) * (1.5 - y) ^ foo")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	kinds := make([]TokKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokKind{FuncCall, Operator, Group, Operator, Identifier}, kinds)
	assert.Equal(t, "sin", tokens[0].FuncName())
	assert.Equal(t, "", tokens[2].FuncName())
	assert.Equal(t, cascas.Span{4, 5}, tokens[0].Inner())
	assert.Equal(t, cascas.Span{10, 17}, tokens[2].Inner())
	assert.Equal(t, cascas.Span{9, 18}, Extent(tokens[2:3]))
}

func TestTokenizeRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	source := "2*(a + 13)"
	tokens, err := TokenizeRange(source, cascas.Span{3, 9})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "+", "13"}, Lexemes(tokens))
	assert.Equal(t, cascas.Span{7, 9}, tokens[2].Span)
	//
	_, err = TokenizeRange(source, cascas.Span{3, 99})
	assert.Error(t, err)
}

func TestLexErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	for _, tc := range []struct {
		source   string
		position int
		char     rune
		unclosed bool
	}{
		{"5 $ 3", 2, '$', false},
		{"3 + )", 4, ')', false},
		{"x_1", 1, '_', false},
		{"sin(2", 3, '(', true},
		{"(1+(2)", 0, '(', true},
		{"2 * ä", 4, 'ä', false},
	} {
		tokens, err := Tokenize(tc.source)
		assert.Nil(t, tokens, tc.source)
		var lexerr *LexError
		require.True(t, errors.As(err, &lexerr), "%q: expected a lex error, got %v", tc.source, err)
		assert.Equal(t, tc.position, lexerr.Position, tc.source)
		assert.Equal(t, tc.char, lexerr.Char, tc.source)
		assert.Equal(t, tc.unclosed, lexerr.Unclosed, tc.source)
		assert.Equal(t, tc.source, lexerr.Source)
	}
}

func TestLexErrorInRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	source := "1 + (2 # 3)"
	_, err := TokenizeRange(source, cascas.Span{5, 10})
	var lexerr *LexError
	require.True(t, errors.As(err, &lexerr))
	assert.Equal(t, 7, lexerr.Position)
	assert.Equal(t, '#', lexerr.Char)
	assert.Equal(t, "1 + (2 # 3)\n       ^", lexerr.Context())
}

func TestSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.scanner")
	defer teardown()
	//
	tokens, err := Tokenize("  x *sin( 2)")
	require.NoError(t, err)
	source, err := Source(tokens)
	require.NoError(t, err)
	assert.Equal(t, "  x *sin( 2)", source)
	//
	_, err = Source([]Token{tokens[1], tokens[0]})
	assert.Error(t, err)
}
