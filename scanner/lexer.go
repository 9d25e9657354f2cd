package scanner

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/cascas"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Operators lists the single-character operators, in no particular order.
var Operators = []string{"+", "-", "*", "/", "^"}

var (
	lexer    *lexmachine.Lexer
	lexerErr error
	initOnce sync.Once // monitors one-time compilation of the DFA
)

// compiledLexer returns the lexer shared by all calls of Tokenize. The lexer
// is read-only after compilation.
func compiledLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lx := lexmachine.NewLexer()
		for _, op := range Operators {
			lx.Add([]byte(`\`+op), makeToken(Operator))
		}
		lx.Add([]byte(`[0-9]+(\.[0-9]+)?`), makeToken(Number))
		lx.Add([]byte(`\(`), group)
		lx.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9])*`), identifier)
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// Tokenize splits source into tokens. If source contains a character which
// does not start a token, or a bracket which is never closed, a *LexError is
// returned and no tokens at all.
func Tokenize(source string) ([]Token, error) {
	return TokenizeRange(source, cascas.Span{0, uint64(len(source))})
}

// TokenizeRange splits the part span of source into tokens. Spans of tokens
// and positions of errors are absolute, i.e. relative to the start of source.
func TokenizeRange(source string, span cascas.Span) ([]Token, error) {
	if span.From() > span.To() || span.To() > uint64(len(source)) {
		return nil, fmt.Errorf("span %v out of range for source of length %d", span, len(source))
	}
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	scan, err := lx.Scanner([]byte(source[span.From():span.To()]))
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for {
		tok, err, eos := scan.Next()
		if err != nil {
			err = lexError(source, span.From(), err)
			tracer().Debugf("tokenizing %q: %v", source, err)
			return nil, err
		}
		if eos {
			break
		}
		t := *tok.(*Token)
		t.Span = t.Span.Shift(span.From())
		tokens = append(tokens, t)
	}
	tracer().Debugf("tokens %v: [%s]", span, strings.Join(Lexemes(tokens), " | "))
	return tokens, nil
}

func lexError(source string, base uint64, err error) error {
	var ui *machines.UnconsumedInput
	if errors.As(err, &ui) {
		return lexErrorAt(source, int(base)+ui.StartTC)
	}
	var ub unclosedBracket
	if errors.As(err, &ub) {
		e := lexErrorAt(source, int(base)+int(ub))
		e.Unclosed = true
		return e
	}
	return err
}

// unclosedBracket is returned from lexer actions, carrying the relative
// position of a '(' without matching ')'.
type unclosedBracket int

func (ub unclosedBracket) Error() string {
	return fmt.Sprintf("unclosed bracket at position %d", int(ub))
}

// --- Lexer actions ---------------------------------------------------------

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind TokKind) lexmachine.Action {
	return func(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return newToken(kind, scan.Text, m.TC, m.TC+len(m.Bytes)), nil
	}
}

// group extends a '(' up to its matching ')'.
func group(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	end, ok := MatchBracket(scan.Text, m.TC)
	if !ok {
		return nil, unclosedBracket(m.TC)
	}
	scan.TC = end + 1
	return newToken(Group, scan.Text, m.TC, end+1), nil
}

// identifier extends an identifier immediately followed by '(' to a
// function call.
func identifier(scan *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	tc := m.TC + len(m.Bytes)
	if tc >= len(scan.Text) || scan.Text[tc] != '(' {
		return newToken(Identifier, scan.Text, m.TC, tc), nil
	}
	end, ok := MatchBracket(scan.Text, tc)
	if !ok {
		return nil, unclosedBracket(tc)
	}
	scan.TC = end + 1
	return newToken(FuncCall, scan.Text, m.TC, end+1), nil
}

func newToken(kind TokKind, text []byte, from, to int) *Token {
	return &Token{
		Kind:   kind,
		Lexeme: string(text[from:to]),
		Span:   cascas.Span{uint64(from), uint64(to)},
	}
}
