package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cascas/expr"
	"github.com/npillmayer/cascas/scanner"
	"github.com/npillmayer/schuko/gconf"
	"github.com/pterm/pterm"
)

var replHelp = []string{
	"<expr>                  parse and simplify an expression",
	":tokens <expr>          list the top-level tokens of an expression",
	":tree [<expr>]          display the syntax tree of an expression or of the last result",
	":dump [<expr>]          dump the structure of an expression or of the last result",
	":approx [<expr>]        approximate an expression or the last result",
	":let <name> = <expr>    bind a symbol to the approximated value of an expression",
	":scope                  list the bound symbols",
	":dialect [<name>]       show or select the output dialect (default, racket)",
	":functions              list the well-known functions",
	":help                   show this list",
	":quit                   leave the session",
}

// errQuit is returned by Eval for a ':quit' command.
var errQuit = errors.New("quit")

// Intp is our interpreter object.
type Intp struct {
	s    *session
	repl *readline.Instance
	last *expr.Tree // result of the last evaluation
}

func startREPL(s *session, initf string) error {
	repl, err := readline.NewEx(&readline.Config{
		Prompt:      "cascas> ",
		HistoryFile: gconf.GetString(historyKey),
	})
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := &Intp{s: s, repl: repl}
	pterm.Info.Println("Welcome to cascas, enter :help for a list of commands")
	tracer().Infof("Quit with <ctrl>D")
	intp.loadInitFile(initf)
	intp.REPL()
	return nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	lines := bufio.NewScanner(f)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := intp.Eval(line); err != nil {
			if err == errQuit {
				return
			}
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := lines.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if err = intp.Eval(line); err == errQuit {
			break
		} else if err != nil {
			reportError(err)
		}
	}
	println("Good bye!")
}

// Eval evaluates a single input line, which is either an expression or a
// command starting with ':'.
func (intp *Intp) Eval(line string) error {
	if !strings.HasPrefix(line, ":") {
		tree, err := intp.s.evaluate(line)
		if tree != nil {
			intp.last = tree
			pterm.Info.Println(tree.Format(intp.s.dialect))
		}
		return err
	}
	cmd, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i:])
	}
	tracer().Debugf("command %s, argument %q", cmd, arg)
	switch cmd {
	case ":q", ":quit":
		return errQuit
	case ":h", ":help":
		for _, h := range replHelp {
			pterm.Println(h)
		}
	case ":tokens":
		tokens, err := scanner.Tokenize(arg)
		if err != nil {
			return err
		}
		for _, l := range tokenLines(tokens) {
			pterm.Println(l)
		}
	case ":tree":
		tree, err := intp.argOrLast(arg)
		if err != nil {
			return err
		}
		printTree("tree", tree, intp.s.dialect)
	case ":dump":
		tree, err := intp.argOrLast(arg)
		if err != nil {
			return err
		}
		showTree(intp.s, tree, true, false, true)
	case ":approx":
		tree, err := intp.argOrLast(arg)
		if err != nil {
			return err
		}
		value, err := intp.s.rt.Approx(tree)
		if err != nil {
			return err
		}
		pterm.Info.Println(formatFloat(value))
	case ":let":
		return intp.let(arg)
	case ":scope":
		for _, tag := range intp.s.rt.ScopeTree.Current().Visible() {
			pterm.Println(fmt.Sprintf("%-12s = %s", tag.Name(), formatFloat(tag.Value)))
		}
	case ":dialect":
		if arg != "" {
			d, err := expr.DialectByName(arg)
			if err != nil {
				return err
			}
			intp.s.dialect = d
		}
		pterm.Info.Println("output dialect is " + intp.s.dialect.Name)
	case ":functions":
		pterm.Println(strings.Join(expr.KnownFunctions(), " "))
	default:
		return fmt.Errorf("unknown command %s, enter :help for a list of commands", cmd)
	}
	return nil
}

// argOrLast parses arg, if present, or returns the last result otherwise.
func (intp *Intp) argOrLast(arg string) (*expr.Tree, error) {
	if arg != "" {
		return intp.s.parse(arg)
	}
	if intp.last == nil {
		return nil, errors.New("no expression given and no previous result")
	}
	return intp.last, nil
}

// let handles ':let name = expr'.
func (intp *Intp) let(arg string) error {
	i := strings.IndexByte(arg, '=')
	if i < 0 {
		return errors.New("usage: :let <name> = <expr>")
	}
	name := strings.TrimSpace(arg[:i])
	tree, err := intp.s.parse(strings.TrimSpace(arg[i+1:]))
	if err != nil {
		return err
	}
	value, err := intp.s.rt.Approx(tree)
	if err != nil {
		return err
	}
	if err = intp.s.rt.Define(name, value); err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("%s = %s", name, formatFloat(value)))
	return nil
}
