/*
Package simplify removes algebraic trivialities from expression trees.

Simplification is a single bottom-up pass of term rewriting. Every node has
its children simplified first, then the rewrite rules for its kind are tried
in order, and the first rule matching the node replaces it. The default rules
are:

	0^0          ⇒  error (indeterminate)
	x^0          ⇒  1
	0^x          ⇒  0
	x^1          ⇒  x
	x - 0        ⇒  x
	x * … * 0    ⇒  0
	1 * x * 1    ⇒  x
	x / 1        ⇒  x
	x / 0        ⇒  error (division by zero)
	0 + x + 0    ⇒  x

Zero and one are recognized syntactically: a rational is zero if its
numerator is 0, and one if numerator and denominator are equal.

The pass does not recurse. Nodes to visit are kept on an explicit stack,
so deep trees cannot exhaust the call stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package simplify

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascas.simplify'.
func tracer() tracing.Trace {
	return tracing.Select("cascas.simplify")
}
