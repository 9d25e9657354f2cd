package scanner

import (
	"fmt"
	"unicode/utf8"
)

// LexError is returned if the source contains a character which does not
// start a valid token, or a bracket which is never closed.
type LexError struct {
	Source   string // complete source
	Position int    // absolute byte position of Char
	Char     rune   // offending character
	Unclosed bool   // Char is a '(' without matching ')'
}

func (e *LexError) Error() string {
	if e.Unclosed {
		return fmt.Sprintf("unclosed bracket at position %d", e.Position)
	}
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Position)
}

// Context returns the source with a marker below the offending character,
// for display in a terminal.
func (e *LexError) Context() string {
	if e.Position < 0 || e.Position > len(e.Source) {
		return e.Source
	}
	col := utf8.RuneCountInString(e.Source[:e.Position])
	marker := make([]byte, col+1)
	for i := range marker {
		marker[i] = ' '
	}
	marker[col] = '^'
	return e.Source + "\n" + string(marker)
}

// lexErrorAt creates a lex error for the character at absolute position pos
// of source.
func lexErrorAt(source string, pos int) *LexError {
	r := utf8.RuneError
	if pos < len(source) {
		r, _ = utf8.DecodeRuneInString(source[pos:])
	}
	return &LexError{Source: source, Position: pos, Char: r}
}
