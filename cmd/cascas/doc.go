/*
Command cascas is a command line front end for tokenizing, parsing,
simplifying and approximating infix expressions.

	cascas tokenize "sin(x) + 2*y"
	cascas parse --tree "x^(3-y) * 2"
	cascas simplify --dialect racket "0 + x^1 * 1"
	cascas approx --let x=2 "x^2 + pi"
	cascas selftest
	cascas repl

Configuration is read from a NestedText file "cascas.nt" at the usual
configuration locations, if present. Recognized keys are

	cascas.dialect            default | racket
	cascas.parser.maxdepth    nesting limit of the parser
	cascas.repl.cachesize     number of cached simplifications in a REPL session
	cascas.repl.history       history file of the REPL
	tracelevel.root           Error | Info | Debug
	tracelevel.cascas.<pkg>   per package trace level

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'cascas.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cascas.cli")
}
