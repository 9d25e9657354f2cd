package simplify

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cascas/expr"
)

// Option configures a simplification pass.
type Option func(s *simplifier)

// WithRules replaces the default rules.
func WithRules(rules []RewriteRule) Option {
	return func(s *simplifier) {
		s.setRules(rules)
	}
}

type simplifier struct {
	rules map[expr.Kind][]RewriteRule
	errs  Errors
}

func newSimplifier(opts []Option) *simplifier {
	s := &simplifier{}
	s.setRules(DefaultRules)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *simplifier) setRules(rules []RewriteRule) {
	s.rules = make(map[expr.Kind][]RewriteRule)
	for _, r := range rules {
		s.rules[r.Kind] = append(s.rules[r.Kind], r)
	}
}

// Simplify removes trivialities from a copy of tree, leaving tree untouched.
//
// Sub-trees denoting undefined values (0^0, division by zero) are not
// rewritten, but their children and the rest of the tree are. In this case
// the simplified tree is returned together with an error of type Errors,
// which lists every offending sub-tree.
func Simplify(tree *expr.Tree, opts ...Option) (*expr.Tree, error) {
	s := newSimplifier(opts)
	root := s.pass(tree.Root().Clone())
	result := expr.NewTree(root)
	tracer().Debugf("simplification: %d nodes ⇒ %d nodes", tree.NodeCount(), result.NodeCount())
	if len(s.errs) > 0 {
		return result, s.errs
	}
	return result, nil
}

// Fixpoint simplifies repeatedly, until a pass does not change the tree any
// more or until maxPasses passes are done. It returns the number of passes.
// With the default rules a single pass is sufficient; Fixpoint is intended
// for custom rule sets.
func Fixpoint(tree *expr.Tree, maxPasses int, opts ...Option) (*expr.Tree, int, error) {
	fp := tree.Fingerprint()
	passes := 0
	for passes < maxPasses {
		t, err := Simplify(tree, opts...)
		passes++
		next := t.Fingerprint()
		if err != nil || next == fp {
			return t, passes, err
		}
		tree, fp = t, next
	}
	return tree, passes, nil
}

// frame is an entry of the work stack. next is the index of the child to
// visit next.
type frame struct {
	node *expr.Node
	next int
}

// pass simplifies the tree at root in post-order. Each finished node is
// rewritten and its replacement is stored into the child slot of the frame
// below, which is the node's parent.
func (s *simplifier) pass(root *expr.Node) *expr.Node {
	stack := arraystack.New()
	stack.Push(&frame{node: root})
	var result *expr.Node
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.next < f.node.Arity() {
			stack.Push(&frame{node: f.node.Child(f.next)})
			f.next++
			continue
		}
		stack.Pop()
		r := s.rewrite(f.node)
		if below, ok := stack.Peek(); ok {
			parent := below.(*frame)
			parent.node.SetChild(parent.next-1, r)
		} else {
			result = r
		}
	}
	return result
}

// rewrite applies the first matching rule to n. All children of n have to
// be simplified already.
func (s *simplifier) rewrite(n *expr.Node) *expr.Node {
	for _, rule := range s.rules[n.Kind()] {
		if !rule.Match(n) {
			continue
		}
		r, err := rule.Rewrite(n)
		if err != nil {
			tracer().Infof("rule '%s' refused to rewrite %s: %v", rule.Name, n, err)
			serr, ok := err.(*SimplificationError)
			if !ok {
				serr = &SimplificationError{Kind: RuleFailure, Subtree: n.Clone(), Reason: err}
			}
			s.errs = append(s.errs, serr)
			return n
		}
		tracer().Debugf("rule '%s': %s ⇒ %s", rule.Name, n, r)
		return r
	}
	return n
}
