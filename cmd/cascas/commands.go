package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/npillmayer/cascas/expr"
	"github.com/npillmayer/cascas/internal/selftest"
	"github.com/npillmayer/cascas/scanner"
	"github.com/pterm/pterm"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Expressions may be given as multiple arguments, which are joined by blanks.
func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// --- tokenize --------------------------------------------------------------

type tokenizeCmd struct {
	Expr []string `arg:"" required:"" help:"Infix expression."`
}

func (cmd *tokenizeCmd) Run(s *session) error {
	tokens, err := scanner.Tokenize(joinArgs(cmd.Expr))
	if err != nil {
		return err
	}
	for _, line := range tokenLines(tokens) {
		pterm.Println(line)
	}
	return nil
}

// --- parse -----------------------------------------------------------------

type parseCmd struct {
	Expr  []string `arg:"" required:"" help:"Infix expression."`
	Tree  bool     `help:"Display the syntax tree."`
	Debug bool     `help:"Print the node count along with the prefix form."`
	Dump  bool     `help:"Dump the structure of the syntax tree."`
}

func (cmd *parseCmd) Run(s *session) error {
	tree, err := s.parse(joinArgs(cmd.Expr))
	if err != nil {
		return err
	}
	showTree(s, tree, cmd.Debug, cmd.Tree, cmd.Dump)
	return nil
}

// --- simplify --------------------------------------------------------------

type simplifyCmd struct {
	Expr   []string `arg:"" required:"" help:"Infix expression."`
	Passes int      `help:"Simplify repeatedly until nothing changes, at most N passes." default:"1" placeholder:"N"`
	Tree   bool     `help:"Display the simplified syntax tree."`
	Debug  bool     `help:"Print node counts along with the prefix forms."`
	Dump   bool     `help:"Dump the structure of the simplified tree."`
}

func (cmd *simplifyCmd) Run(s *session) error {
	tree, err := s.parse(joinArgs(cmd.Expr))
	if err != nil {
		return err
	}
	if cmd.Debug {
		pterm.Println(debugString(tree, s.dialect))
	}
	if cmd.Passes > 1 {
		tree, err = s.fixpoint(tree, cmd.Passes)
	} else {
		tree, err = s.simplify(tree)
	}
	showTree(s, tree, cmd.Debug, cmd.Tree, cmd.Dump) // undefined parts are kept
	return err
}

func (cmd *simplifyCmd) Help() string {
	return `Removes trivial sub-terms: additions of 0, multiplications with 0 or 1,
divisions by 1, and powers with exponent 0 or 1 or base 0. 0^0 and
divisions by 0 are reported as errors.`
}

// --- approx ----------------------------------------------------------------

type approxCmd struct {
	Expr     []string           `arg:"" required:"" help:"Infix expression."`
	Let      map[string]float64 `short:"l" help:"Bind a symbol to a value, e.g. --let x=2." placeholder:"NAME=VALUE"`
	Simplify bool               `help:"Simplify before approximating."`
}

func (cmd *approxCmd) Run(s *session) error {
	names := maps.Keys(cmd.Let)
	slices.Sort(names)
	for _, name := range names {
		if err := s.rt.Define(name, cmd.Let[name]); err != nil {
			return err
		}
	}
	tree, err := s.parse(joinArgs(cmd.Expr))
	if err != nil {
		return err
	}
	if cmd.Simplify {
		if tree, err = s.simplify(tree); err != nil {
			return err
		}
	}
	value, err := s.rt.Approx(tree)
	if err != nil {
		return err
	}
	pterm.Println(formatFloat(value))
	return nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// --- selftest --------------------------------------------------------------

type selftestCmd struct {
	Verbose bool `short:"v" help:"List passed examples, too."`
}

func (cmd *selftestCmd) Run(s *session) error {
	failed := 0
	for _, suite := range []struct {
		name    string
		results []selftest.Result
	}{
		{"tokenizer", selftest.RunTokenizer(selftest.TokenizerCases)},
		{"simplifier", selftest.RunSimplifier(selftest.SimplifierCases)},
	} {
		for _, r := range suite.results {
			switch {
			case r.Err != nil:
				pterm.Error.Println(fmt.Sprintf("%s: %q: %v", suite.name, r.Input, r.Err))
			case !r.Passed:
				pterm.Error.Println(fmt.Sprintf("%s: %q: expected %s, got %s",
					suite.name, r.Input, r.Expected, r.Got))
			case cmd.Verbose:
				pterm.Info.Println(fmt.Sprintf("%s: %q ⇒ %s", suite.name, r.Input, r.Got))
			}
		}
		p, f := selftest.Count(suite.results)
		pterm.Info.Println(fmt.Sprintf("%s: %d passed, %d failed", suite.name, p, f))
		failed += f
	}
	if failed > 0 {
		return fmt.Errorf("%d examples failed", failed)
	}
	return nil
}

// --- repl ------------------------------------------------------------------

type replCmd struct {
	Init string `help:"Evaluate the lines of a file before going interactive." type:"path"`
}

func (cmd *replCmd) Run(s *session) error {
	return startREPL(s, cmd.Init)
}

// --- Output helpers --------------------------------------------------------

func showTree(s *session, tree *expr.Tree, debug, display, dump bool) {
	if debug {
		pterm.Println(debugString(tree, s.dialect))
	} else {
		pterm.Println(tree.Format(s.dialect))
	}
	if display {
		printTree("tree", tree, s.dialect)
	}
	if dump {
		pterm.Println(repr.String(expr.ShapeOf(tree.Root()), repr.Indent("  ")))
	}
	tree.Dump("tree") // visible with trace level Debug
}

func debugString(tree *expr.Tree, d expr.Dialect) string {
	return fmt.Sprintf("Syntax tree: %s\nNode count: %d", tree.Format(d), tree.NodeCount())
}
