package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cascas/expr"
	"github.com/npillmayer/cascas/parser"
	"github.com/npillmayer/cascas/scanner"
	"github.com/npillmayer/cascas/simplify"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// --- Trees -----------------------------------------------------------------

func printTree(label string, tree *expr.Tree, d expr.Dialect) {
	pterm.Println(label)
	ll := leveledNode(tree.Root(), d, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledNode appends the sub-tree at n in pre-order.
func leveledNode(n *expr.Node, d expr.Dialect, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(n, d),
	})
	for _, ch := range n.Children() {
		ll = leveledNode(ch, d, ll, level+1)
	}
	return ll
}

func nodeLabel(n *expr.Node, d expr.Dialect) string {
	switch n.Kind() {
	case expr.KindRational:
		return n.Value().String()
	case expr.KindSymbol, expr.KindFuncApp:
		return n.Name()
	}
	return d.Keyword(n.Kind())
}

// --- Tokens ----------------------------------------------------------------

func tokenLines(tokens []scanner.Token) []string {
	lines := make([]string, len(tokens))
	for i, tok := range tokens {
		lines[i] = fmt.Sprintf("%-10s %-20q %v", tok.Kind, tok.Lexeme, tok.Span)
	}
	return lines
}

// --- Errors ----------------------------------------------------------------

// reportError prints err to the terminal. Lexical and syntax errors are
// shown with a marker below the offending part of the input.
func reportError(err error) {
	var lexerr *scanner.LexError
	var perr *parser.ParseError
	var serrs simplify.Errors
	switch {
	case errors.As(err, &lexerr):
		pterm.Error.Println(lexerr.Error())
		pterm.Println(lexerr.Context())
	case errors.As(err, &perr):
		pterm.Error.Println(perr.Error())
		pterm.Println(underline(perr.Source, perr.Span.From(), perr.Span.To()))
	case errors.As(err, &serrs):
		for _, e := range serrs {
			pterm.Error.Println(e.Error())
		}
	default:
		pterm.Error.Println(err.Error())
	}
}

// underline returns source with a line of markers below the bytes from…to.
func underline(source string, from, to uint64) string {
	if to > uint64(len(source)) || from > to {
		return source
	}
	col := utf8.RuneCountInString(source[:from])
	width := utf8.RuneCountInString(source[from:to])
	if width == 0 {
		width = 1
	}
	return source + "\n" + strings.Repeat(" ", col) + strings.Repeat("^", width)
}
