/*
Package scanner splits an infix expression into a flat sequence of tokens.

Tokens are operators (one of + - * / ^), decimal literals, identifiers,
parenthesized groups, and function calls, i.e. an identifier immediately
followed by a parenthesized group. Groups and calls are opaque: their content
is kept verbatim, including whitespace, and is tokenized again by the parser
when it descends into them.

	tokens, err := scanner.Tokenize("sin(22 +  99)-22+9*x")
	// ⇒  sin(22 +  99)  -  22  +  9  *  x

The token classes apart from groups are recognized by a DFA built with
lexmachine. Brackets are not regular, so a group is matched by a depth
counter (see MatchBracket) from within the action for '('.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascas.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cascas.scanner")
}
