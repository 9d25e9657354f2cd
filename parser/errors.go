package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cascas"
	"github.com/npillmayer/cascas/scanner"
)

// Reasons for parse errors. A *ParseError unwraps to one of these.
var (
	ErrMissingOperand   = errors.New("missing operand")
	ErrEmptyGroup       = errors.New("empty group")
	ErrNoOperator       = errors.New("operands without operator")
	ErrDanglingOperator = errors.New("dangling operator")
	ErrTooDeep          = errors.New("expression nested too deeply")
)

// ParseError is returned for token sequences which do not form an
// expression.
type ParseError struct {
	Source string          // complete source
	Span   cascas.Span     // part of the source which failed to parse
	Tokens []scanner.Token // tokens of Span, if any
	Reason error
}

func (e *ParseError) Error() string {
	if len(e.Tokens) == 0 {
		return fmt.Sprintf("%v at %v", e.Reason, e.Span)
	}
	return fmt.Sprintf("%v at %v: %s", e.Reason, e.Span,
		strings.Join(scanner.Lexemes(e.Tokens), " "))
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}
