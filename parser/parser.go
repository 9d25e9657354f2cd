package parser

import (
	"github.com/npillmayer/cascas"
	"github.com/npillmayer/cascas/expr"
	"github.com/npillmayer/cascas/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// DefaultMaxDepth limits recursion if neither an option nor the configuration
// key 'cascas.parser.maxdepth' sets a maximum depth.
const DefaultMaxDepth = 10000

// Option configures a parser.
type Option func(p *parser)

// MaxDepth sets the maximum recursion depth of the parser. Every group and
// every operator split descends one level. Values < 1 are ignored.
func MaxDepth(depth int) Option {
	return func(p *parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

type parser struct {
	source   string
	maxDepth int
}

func newParser(source string, opts []Option) *parser {
	p := &parser{source: source, maxDepth: gconf.GetInt("cascas.parser.maxdepth")}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse tokenizes and parses an infix expression. If source is not
// well-formed, either a *scanner.LexError or a *ParseError is returned.
func Parse(source string, opts ...Option) (*expr.Tree, error) {
	tokens, err := scanner.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := newParser(source, opts)
	root, err := p.parse(tokens, cascas.Span{0, uint64(len(source))}, 0)
	if err != nil {
		tracer().Infof("cannot parse %q: %v", source, err)
		return nil, err
	}
	tree := expr.NewTree(root)
	tracer().Debugf("parsed %q as %s", source, tree)
	return tree, nil
}

// ParseTokens parses a token sequence as produced by package scanner.
func ParseTokens(tokens []scanner.Token, opts ...Option) (*expr.Node, error) {
	source, err := scanner.Source(tokens)
	if err != nil {
		return nil, err
	}
	p := newParser(source, opts)
	return p.parse(tokens, scanner.Extent(tokens), 0)
}

// split describes an operator the parser splits a token sequence at.
type split struct {
	op      byte
	fromEnd bool // scan right to left
	combine func(l, r *expr.Node) *expr.Node
}

var splits = []split{
	{'+', false, func(l, r *expr.Node) *expr.Node { return expr.NewAdd(l, r) }},
	{'-', true, expr.NewSub},
	{'*', false, func(l, r *expr.Node) *expr.Node { return expr.NewMult(l, r) }},
	{'/', true, expr.NewDiv},
	{'^', false, expr.NewPow},
}

// parse parses tokens, which cover span of the source.
func (p *parser) parse(tokens []scanner.Token, span cascas.Span, depth int) (*expr.Node, error) {
	if depth > p.maxDepth {
		return nil, p.fail(span, tokens, ErrTooDeep)
	}
	switch len(tokens) {
	case 0:
		return nil, p.fail(span, nil, ErrMissingOperand)
	case 1:
		return p.single(tokens[0], depth)
	}
	for _, s := range splits {
		i := findOperator(tokens, s.op, s.fromEnd)
		if i < 0 {
			continue
		}
		tracer().Debugf("split at %c, position %d", s.op, tokens[i].Span.From())
		if s.op == '-' && i == 0 { // unary minus
			rest, err := p.parse(tokens[1:], cascas.Span{tokens[0].Span.To(), span.To()}, depth+1)
			if err != nil {
				return nil, err
			}
			return expr.NewMult(expr.Int(-1), rest), nil
		}
		left, err := p.parse(tokens[:i], cascas.Span{span.From(), tokens[i].Span.From()}, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := p.parse(tokens[i+1:], cascas.Span{tokens[i].Span.To(), span.To()}, depth+1)
		if err != nil {
			return nil, err
		}
		return s.combine(left, right), nil
	}
	return nil, p.fail(span, tokens, ErrNoOperator)
}

// single parses a sequence consisting of exactly one token.
func (p *parser) single(tok scanner.Token, depth int) (*expr.Node, error) {
	switch tok.Kind {
	case scanner.Operator:
		return nil, p.fail(tok.Span, []scanner.Token{tok}, ErrDanglingOperator)
	case scanner.Number:
		r, err := expr.ParseRational(tok.Lexeme)
		if err != nil {
			return nil, p.fail(tok.Span, []scanner.Token{tok}, err)
		}
		return expr.NewRationalNode(r), nil
	case scanner.Group:
		return p.inner(tok, depth)
	case scanner.FuncCall:
		if !expr.IsKnownFunction(tok.FuncName()) {
			break
		}
		arg, err := p.inner(tok, depth)
		if err != nil {
			return nil, err
		}
		return expr.NewFuncApp(tok.FuncName(), arg), nil
	}
	return expr.NewSymbol(tok.Lexeme), nil
}

// inner parses the content of a group or a function call.
func (p *parser) inner(tok scanner.Token, depth int) (*expr.Node, error) {
	tokens, err := scanner.TokenizeRange(p.source, tok.Inner())
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, p.fail(tok.Span, []scanner.Token{tok}, ErrEmptyGroup)
	}
	return p.parse(tokens, tok.Inner(), depth+1)
}

func (p *parser) fail(span cascas.Span, tokens []scanner.Token, reason error) *ParseError {
	return &ParseError{Source: p.source, Span: span, Tokens: tokens, Reason: reason}
}

// findOperator returns the index of the first (or last, if fromEnd is set)
// operator token op, or -1.
func findOperator(tokens []scanner.Token, op byte, fromEnd bool) int {
	if fromEnd {
		for i := len(tokens) - 1; i >= 0; i-- {
			if tokens[i].IsOperator(op) {
				return i
			}
		}
		return -1
	}
	for i, t := range tokens {
		if t.IsOperator(op) {
			return i
		}
	}
	return -1
}
