package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/cascas/expr"
	"github.com/npillmayer/cascas/parser"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

var version = "v0.1.0"

// Configuration keys.
const (
	dialectKey   = "cascas.dialect"
	maxDepthKey  = "cascas.parser.maxdepth"
	cacheSizeKey = "cascas.repl.cachesize"
	historyKey   = "cascas.repl.history"
	tracePrefix  = "tracelevel"
)

// tracerKeys are the trace keys of the packages of this module.
var tracerKeys = []string{
	"cascas.cli",
	"cascas.expr",
	"cascas.parser",
	"cascas.runtime",
	"cascas.scanner",
	"cascas.simplify",
}

// Globals are flags shared by all commands.
type Globals struct {
	Dialect string `help:"Output dialect of prefix forms (default|racket)." short:"d" placeholder:"NAME"`
	Trace   string `help:"Trace level (Error|Info|Debug)." short:"t" placeholder:"LEVEL"`
}

var cli struct {
	Globals

	Version kong.VersionFlag `help:"Print version information and quit."`

	Tokenize tokenizeCmd `cmd:"" help:"Split an infix expression into top-level tokens."`
	Parse    parseCmd    `cmd:"" help:"Parse an infix expression and print it in prefix form."`
	Simplify simplifyCmd `cmd:"" help:"Parse an infix expression and remove trivial sub-terms."`
	Approx   approxCmd   `cmd:"" help:"Calculate a floating point approximation of an expression."`
	Selftest selftestCmd `cmd:"" help:"Run the built-in examples for tokenizer and simplifier."`
	Repl     replCmd     `cmd:"" help:"Start an interactive session."`
}

func main() {
	initDisplay()
	kctx := kong.Parse(&cli,
		kong.Name("cascas"),
		kong.Description("A tiny computer algebra core: parse, simplify and approximate expressions."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	s, err := setup(cli.Globals)
	kctx.FatalIfErrorf(err)
	defer trace2go.Teardown()
	if err = kctx.Run(s); err != nil {
		reportError(err)
		trace2go.Teardown()
		os.Exit(1)
	}
}

// setup initializes configuration and tracing, and creates a session for the
// commands to work on. Flags take precedence over configuration files, which
// take precedence over built-in defaults.
func setup(g Globals) (*session, error) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "cascas", []string{"nt"})
	conf.Set(dialectKey, expr.DefaultDialect.Name)
	conf.Set(maxDepthKey, parser.DefaultMaxDepth)
	conf.Set(cacheSizeKey, 64)
	conf.Set(tracePrefix+".root", "Error")
	gconf.Initialize(conf) // loads config files, if any
	if g.Dialect != "" {
		conf.Set(dialectKey, g.Dialect)
	}
	if g.Trace != "" {
		conf.Set(tracePrefix+".root", g.Trace)
		for _, key := range tracerKeys {
			conf.Set(tracePrefix+"."+key, g.Trace)
		}
	}
	if err := trace2go.ConfigureRoot(conf, tracePrefix, trace2go.ReplaceTracers(true)); err != nil {
		return nil, err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	dialect, err := expr.DialectByName(gconf.GetString(dialectKey))
	if err != nil {
		return nil, err
	}
	tracer().Infof("output dialect is %s", dialect.Name)
	return newSession(dialect, gconf.GetInt(cacheSizeKey)), nil
}
