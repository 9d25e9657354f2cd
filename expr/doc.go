/*
Package expr implements expression trees for CasCAS.

Expression trees are homogenous in the sense that every node is of the same
Go type, Node, carrying a tag (Kind) which tells what the node represents:
a rational number, a symbol, one of the arithmetic operations, or the
application of a well-known function. Operators with a variable number of
operands (addition and multiplication) hold an ordered list of children.

Numbers are represented as exact rationals, without any implicit reduction:
1.5 will be read as 15/10 and stays 15/10.

Trees are printed in a fully parenthesized prefix notation, reminiscent of
Lisp s-expressions:

    (+ (* x 5) (^ y 2))

The keyword for exponentiation depends on the output Dialect.

Every node knows the count of nodes in the subtree it is the root of.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascas.expr'.
func tracer() tracing.Trace {
	return tracing.Select("cascas.expr")
}
