/*
Package cascas is a small computer algebra core. It reads arithmetic and
symbolic expressions in infix notation and rewrites them to get rid of
algebraic trivialities.

CasCAS strives to be a smart and lightweight tool for experiments with
expression trees. Package structure is as follows:

■ expr: Package expr implements exact rationals and a homogenous expression
tree with a fixed set of node kinds, together with printing in prefix
(s-expression) notation.

■ scanner: Package scanner splits input strings into tokens, keeping
parenthesized groups and function calls as single tokens.

■ parser: Package parser builds expression trees from token sequences.

■ simplify: Package simplify removes trivial sub-terms like additive and
multiplicative identities from an expression tree.

■ runtime: Package runtime provides scopes and symbol tables for binding
symbols to numeric values.

■ cmd/cascas: Command cascas offers all of the above on the command line and
in an interactive session.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascas
