/*
Package parser creates expression trees from infix expressions.

The parser does not use a grammar. It looks at a flat token sequence, in
which parenthesized groups and function calls are single opaque tokens, and
splits it at an operator, in this order:

	1. the first '+', scanning left to right
	2. the last '-', scanning right to left; at the very start it is a
	   unary minus, which becomes a multiplication by -1
	3. the first '*'
	4. the last '/'
	5. the first '^'

Both halves are parsed recursively. A single token is a leaf, or a group or
function call whose content is tokenized and parsed in turn.

	tree, err := parser.Parse("-7*(-6)")
	fmt.Println(tree)   // (* -1 (* 7 (* -1 6)))

Calls of functions which are not well-known, e.g. "f(x)", are treated as
symbols named by their text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascas.parser'.
func tracer() tracing.Trace {
	return tracing.Select("cascas.parser")
}
