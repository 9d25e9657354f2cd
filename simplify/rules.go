package simplify

import (
	"github.com/npillmayer/cascas/expr"
	"golang.org/x/exp/slices"
)

// Rewriter is a function
//
//     node ↦ node
//
// i.e., a term rewriting function. It may refuse to rewrite a node by
// returning an error.
type Rewriter func(n *expr.Node) (*expr.Node, error)

// RewriteRule is a type representing a rule for term rewriting. It applies to
// nodes of Kind. If Match accepts a node, Rewrite is called on it (the redex)
// and its result replaces the node.
type RewriteRule struct {
	Name    string
	Kind    expr.Kind
	Match   func(n *expr.Node) bool
	Rewrite Rewriter
}

// DefaultRules are the rules for removing trivialities. Rules for the same
// kind are tried in order.
var DefaultRules = []RewriteRule{
	{"indeterminate power", expr.KindPow,
		func(n *expr.Node) bool { return n.Child(0).IsZero() && n.Child(1).IsZero() },
		failWith(Indeterminate)},
	{"zero exponent", expr.KindPow,
		func(n *expr.Node) bool { return n.Child(1).IsZero() },
		constant(1)},
	{"zero base", expr.KindPow,
		func(n *expr.Node) bool { return n.Child(0).IsZero() },
		constant(0)},
	{"unit exponent", expr.KindPow,
		func(n *expr.Node) bool { return n.Child(1).IsOne() },
		child(0)},
	{"zero subtrahend", expr.KindSub,
		func(n *expr.Node) bool { return n.Child(1).IsZero() },
		child(0)},
	{"zero factor", expr.KindMult,
		func(n *expr.Node) bool { return slices.IndexFunc(n.Children(), (*expr.Node).IsZero) >= 0 },
		constant(0)},
	{"unit factors", expr.KindMult,
		func(n *expr.Node) bool { _, ok := unique(n.Children(), (*expr.Node).IsOne); return ok },
		remaining((*expr.Node).IsOne)},
	{"unit divisor", expr.KindDiv,
		func(n *expr.Node) bool { return n.Child(1).IsOne() },
		child(0)},
	{"zero divisor", expr.KindDiv,
		func(n *expr.Node) bool { return n.Child(1).IsZero() },
		failWith(DivisionByZero)},
	{"zero addends", expr.KindAdd,
		func(n *expr.Node) bool { _, ok := unique(n.Children(), (*expr.Node).IsZero); return ok },
		remaining((*expr.Node).IsZero)},
}

// --- Rewriters -------------------------------------------------------------

func constant(i int64) Rewriter {
	return func(*expr.Node) (*expr.Node, error) {
		return expr.Int(i), nil
	}
}

func child(i int) Rewriter {
	return func(n *expr.Node) (*expr.Node, error) {
		return n.Child(i), nil
	}
}

// remaining replaces a node by its single operand which is not an identity
// element. If all operands are identities, the first one is kept.
func remaining(isIdentity func(*expr.Node) bool) Rewriter {
	return func(n *expr.Node) (*expr.Node, error) {
		i, _ := unique(n.Children(), isIdentity)
		return n.Child(i), nil
	}
}

func failWith(kind ErrorKind) Rewriter {
	return func(n *expr.Node) (*expr.Node, error) {
		return nil, &SimplificationError{Kind: kind, Subtree: n.Clone()}
	}
}

// unique finds the only operand which is not an identity element. If all
// operands are identities, it returns 0. If more than one operand is not an
// identity, it returns false.
func unique(operands []*expr.Node, isIdentity func(*expr.Node) bool) (int, bool) {
	other := func(n *expr.Node) bool { return !isIdentity(n) }
	i := slices.IndexFunc(operands, other)
	if i < 0 {
		return 0, true
	}
	if slices.IndexFunc(operands[i+1:], other) >= 0 {
		return -1, false
	}
	return i, true
}
