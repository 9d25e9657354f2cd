/*
Package selftest holds the classic example tables for the tokenizer and the
simplifier, and runs them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selftest

import (
	"strings"

	"github.com/npillmayer/cascas/parser"
	"github.com/npillmayer/cascas/scanner"
	"github.com/npillmayer/cascas/simplify"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascas.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cascas.cli")
}

// TokenizerCase is an input together with its expected lexemes.
type TokenizerCase struct {
	Input  string
	Tokens []string
}

// SimplifierCase is an input together with the expected prefix form after
// simplification.
type SimplifierCase struct {
	Input    string
	Expected string
}

// TokenizerCases are the examples for the tokenizer.
var TokenizerCases = []TokenizerCase{
	{"5+37 +4/ 6- 7*8", // simple binary operators
		[]string{"5", "+", "37", "+", "4", "/", "6", "-", "7", "*", "8"}},
	{"5-(5 + 6) /99*(22-8*2 )- (23 *2)", // brackets
		[]string{"5", "-", "(5 + 6)", "/", "99", "*", "(22-8*2 )", "-", "(23 *2)"}},
	{"5  +   9    *10\n-22  /    2", // random whitespace
		[]string{"5", "+", "9", "*", "10", "-", "22", "/", "2"}},
	{"sin(22 +  99)-22+9*arccos(22)/ln( 4 *2)", // function calls
		[]string{"sin(22 +  99)", "-", "22", "+", "9", "*", "arccos(22)", "/", "ln( 4 *2)"}},
	{"tan(22.8+6)-6.665/811.28", // decimal numbers
		[]string{"tan(22.8+6)", "-", "6.665", "/", "811.28"}},
	{"log(x)/csc(cooka)*k+88*j", // symbols
		[]string{"log(x)", "/", "csc(cooka)", "*", "k", "+", "88", "*", "j"}},
	{"sin(-2)+(-4)+(-x)*(-k)", // unary minus
		[]string{"sin(-2)", "+", "(-4)", "+", "(-x)", "*", "(-k)"}},
}

// SimplifierCases are the examples for parsing plus simplification.
var SimplifierCases = []SimplifierCase{
	{"cos(5 + 3)", "(cos (+ 5 3))"},
	{"2 + 3 + 0 + 4", "(+ 2 (+ 3 4))"},
	{"0 + 0 + 33 + 0 + 0 + 0", "33"},
	{"3 - 0 + 5 - 8 + 99 * 20 - 0 + 99 + 0 - 11",
		"(+ 3 (+ (- 5 8) (+ (* 99 20) (+ 99 (- 0 11)))))"},
	{"0 * 9 + 8 * 2 + 7 * 0 * 0 + 9 * 7 * 2 * 0", "(* 8 2)"},
	{"1 * 2 * 3 * 5 * 1 * 1 * 6 * 1 * 1", "(* 2 (* 3 (* 5 6)))"},
	{"x * 5 + 2 / 1 + 8 / 2 / 1 / 5", "(+ (* x 5) (+ 2 (/ (/ 8 2) 5)))"},
	{"e^0 + 5^0", "(+ 1 1)"},
	{"e^1 + 5^1", "(+ e 5)"},
	{"0^e + 0^7", "0"},
	{"1.5", "15/10"},
	{"0.001", "1/1000"},
	{"-24.56+(-x*9)+(-7^y)",
		"(+ (* -1 2456/100) (+ (* -1 (* x 9)) (* -1 (^ 7 y))))"},
	{"-7*(-6)", "(* -1 (* 7 (* -1 6)))"},
	{"8 + 1 + 0 + (8 - 0 + 1) + sin(1 + 3)",
		"(+ 8 (+ 1 (+ (+ 8 1) (sin (+ 1 3)))))"},
	{"sin(4+x)-x^(3-y)+x*y^2/u-6*tan(x)-2*x+y^(x)",
		"(+ (- (sin (+ 4 x)) (^ x (- 3 y))) (+ (- (- (* x (/ (^ y 2) u)) (* 6 (tan x))) (* 2 x)) (^ y x)))"},
	{"1 +0 + 1", "(+ 1 1)"},
}

// Result is the outcome of a single example.
type Result struct {
	Input    string
	Expected string
	Got      string
	Err      error
	Passed   bool
}

// RunTokenizer tokenizes all tokenizer examples.
func RunTokenizer(cases []TokenizerCase) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		r := Result{Input: c.Input, Expected: show(c.Tokens)}
		tokens, err := scanner.Tokenize(c.Input)
		if err != nil {
			r.Err = err
		} else {
			r.Got = show(scanner.Lexemes(tokens))
			r.Passed = r.Got == r.Expected
		}
		tracer().Debugf("tokenizer example #%d passed = %v", i, r.Passed)
		results[i] = r
	}
	return results
}

// RunSimplifier parses and simplifies all simplifier examples.
func RunSimplifier(cases []SimplifierCase) []Result {
	results := make([]Result, len(cases))
	for i, c := range cases {
		r := Result{Input: c.Input, Expected: c.Expected}
		tree, err := parser.Parse(c.Input)
		if err == nil {
			tree, err = simplify.Simplify(tree)
		}
		if err != nil {
			r.Err = err
		} else {
			r.Got = tree.String()
			r.Passed = r.Got == r.Expected
		}
		tracer().Debugf("simplifier example #%d passed = %v", i, r.Passed)
		results[i] = r
	}
	return results
}

// Count returns the number of passed and failed examples.
func Count(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}
	return
}

func show(lexemes []string) string {
	return "[" + strings.Join(lexemes, " | ") + "]"
}
