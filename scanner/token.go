package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cascas"
)

// TokKind is the class of a token.
type TokKind int8

// Token classes.
const (
	Operator   TokKind = iota + 1 // one of + - * / ^
	Number                        // [0-9]+(\.[0-9]+)?
	Group                         // ( … )
	Identifier                    // [A-Za-z][A-Za-z0-9]*
	FuncCall                      // identifier immediately followed by ( … )
)

func (k TokKind) String() string {
	switch k {
	case Operator:
		return "Operator"
	case Number:
		return "Number"
	case Group:
		return "Group"
	case Identifier:
		return "Identifier"
	case FuncCall:
		return "FuncCall"
	}
	return fmt.Sprintf("TokKind(%d)", int(k))
}

// Token is a lexeme together with its class and its position in the source.
type Token struct {
	Kind   TokKind
	Lexeme string
	Span   cascas.Span // absolute byte positions
}

func (t Token) String() string {
	return t.Lexeme
}

// IsOperator is a predicate: is t the operator op?
func (t Token) IsOperator(op byte) bool {
	return t.Kind == Operator && len(t.Lexeme) == 1 && t.Lexeme[0] == op
}

// FuncName returns the name part of a function call token. For all other
// tokens it returns the empty string.
func (t Token) FuncName() string {
	if t.Kind != FuncCall {
		return ""
	}
	return t.Lexeme[:strings.IndexByte(t.Lexeme, '(')]
}

// Inner returns the span of the text between the outermost brackets of a
// group or of a function call. For all other tokens it returns the empty
// span at the end of t.
func (t Token) Inner() cascas.Span {
	if t.Kind != Group && t.Kind != FuncCall {
		return cascas.Span{t.Span.To(), t.Span.To()}
	}
	open := uint64(strings.IndexByte(t.Lexeme, '('))
	return cascas.Span{t.Span.From() + open + 1, t.Span.To() - 1}
}

// Lexemes returns the lexemes of a token sequence.
func Lexemes(tokens []Token) []string {
	l := make([]string, len(tokens))
	for i, t := range tokens {
		l[i] = t.Lexeme
	}
	return l
}

// Extent returns the span covered by a token sequence.
func Extent(tokens []Token) cascas.Span {
	var span cascas.Span
	for _, t := range tokens {
		span = span.Extend(t.Span)
	}
	return span
}

// Source reassembles a text the tokens could have been produced from: every
// lexeme is placed at its span, gaps are filled with blanks. Tokens have to
// be sorted and must not overlap.
func Source(tokens []Token) (string, error) {
	var sb strings.Builder
	for _, t := range tokens {
		if t.Span.Len() != uint64(len(t.Lexeme)) {
			return "", fmt.Errorf("token %q does not fit its span %v", t.Lexeme, t.Span)
		}
		if t.Span.From() < uint64(sb.Len()) {
			return "", fmt.Errorf("token %q at %v overlaps its predecessor", t.Lexeme, t.Span)
		}
		for uint64(sb.Len()) < t.Span.From() {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Lexeme)
	}
	return sb.String(), nil
}
