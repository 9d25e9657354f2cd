package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind is the tag of an expression node.
type Kind uint8

// The closed set of node kinds.
const (
	KindRational Kind = iota // exact number, no children
	KindSymbol               // named symbol, no children
	KindAdd                  // n-ary addition, n ≥ 2
	KindSub                  // minuend, subtrahend
	KindMult                 // n-ary multiplication, n ≥ 2
	KindDiv                  // dividend, divisor
	KindPow                  // base, exponent
	KindFuncApp              // function name, one argument
)

// Node is a node of an expression tree. Nodes are created by the New…
// constructors and own their children exclusively; sub-trees are never shared
// between trees.
type Node struct {
	kind     Kind
	value    Rational // for KindRational
	name     string   // for KindSymbol and KindFuncApp
	children []*Node
	count    int // nodes in sub-tree, including this one
}

// --- Constructors ----------------------------------------------------------

// NewRationalNode creates a leaf node for a rational number.
func NewRationalNode(r Rational) *Node {
	return &Node{kind: KindRational, value: r, count: 1}
}

// Int creates a leaf node for the integer i.
func Int(i int64) *Node {
	return NewRationalNode(RationalFromInt(i))
}

// NewSymbol creates a leaf node for a symbol.
func NewSymbol(name string) *Node {
	return &Node{kind: KindSymbol, name: name, count: 1}
}

// NewAdd creates an addition of two or more addends.
func NewAdd(a, b *Node, more ...*Node) *Node {
	return newOp(KindAdd, "", append([]*Node{a, b}, more...))
}

// NewSub creates the subtraction minuend − subtrahend.
func NewSub(minuend, subtrahend *Node) *Node {
	return newOp(KindSub, "", []*Node{minuend, subtrahend})
}

// NewMult creates a multiplication of two or more factors.
func NewMult(a, b *Node, more ...*Node) *Node {
	return newOp(KindMult, "", append([]*Node{a, b}, more...))
}

// NewDiv creates the quotient dividend / divisor.
func NewDiv(dividend, divisor *Node) *Node {
	return newOp(KindDiv, "", []*Node{dividend, divisor})
}

// NewPow creates the power base ^ exponent.
func NewPow(base, exponent *Node) *Node {
	return newOp(KindPow, "", []*Node{base, exponent})
}

// NewFuncApp creates the application of a well-known function to an argument.
// It panics if fname is not one of KnownFunctions().
func NewFuncApp(fname string, arg *Node) *Node {
	if !IsKnownFunction(fname) {
		panic(fmt.Sprintf("not a known function: %q", fname))
	}
	return newOp(KindFuncApp, fname, []*Node{arg})
}

func newOp(kind Kind, name string, children []*Node) *Node {
	for _, ch := range children {
		if ch == nil {
			panic(fmt.Sprintf("nil operand for %s node", kind))
		}
	}
	n := &Node{kind: kind, name: name, children: children}
	n.Recount()
	return n
}

// --- Accessors -------------------------------------------------------------

// Kind returns the tag of n.
func (n *Node) Kind() Kind {
	return n.kind
}

// Value returns the rational value of a KindRational node, and the zero
// rational for every other kind.
func (n *Node) Value() Rational {
	return n.value
}

// Name returns the name of a symbol or of an applied function.
func (n *Node) Name() string {
	return n.name
}

// Arity returns the number of children of n.
func (n *Node) Arity() int {
	return len(n.children)
}

// Child returns the i-th child of n.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns the children of n. Clients must not modify the returned
// slice; use SetChild instead.
func (n *Node) Children() []*Node {
	return n.children
}

// NodeCount returns the number of nodes of the sub-tree at n.
func (n *Node) NodeCount() int {
	if n == nil {
		return 0
	}
	return n.count
}

// IsZero is a predicate: is n a rational with numerator 0?
func (n *Node) IsZero() bool {
	return n != nil && n.kind == KindRational && n.value.IsZero()
}

// IsOne is a predicate: is n a rational with numerator equal to denominator?
func (n *Node) IsOne() bool {
	return n != nil && n.kind == KindRational && n.value.IsOne()
}

// IsLeaf is a predicate: does n have no children?
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// --- Restructuring ---------------------------------------------------------

// SetChild replaces the i-th child of n and updates the node count of n.
// Node counts of ancestors of n have to be updated by the caller.
func (n *Node) SetChild(i int, ch *Node) {
	if ch == nil {
		panic(fmt.Sprintf("nil operand for %s node", n.kind))
	}
	n.children[i] = ch
	n.Recount()
}

// Recount sets the node count of n from the counts of its children.
func (n *Node) Recount() {
	n.count = 1
	for _, ch := range n.children {
		n.count += ch.count
	}
}

// Clone returns a deep copy of the sub-tree at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, value: n.value, name: n.name, count: n.count}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, ch := range n.children {
			c.children[i] = ch.Clone()
		}
	}
	return c
}

// --- Trees -----------------------------------------------------------------

// Tree is a handle for an expression tree. It owns the root node.
type Tree struct {
	root *Node
}

// NewTree wraps a root node into a tree handle.
func NewTree(root *Node) *Tree {
	if root == nil {
		panic("tree with nil root")
	}
	return &Tree{root: root}
}

// Root returns the root node of t.
func (t *Tree) Root() *Node {
	return t.root
}

// NodeCount returns the number of nodes in t.
func (t *Tree) NodeCount() int {
	if t == nil {
		return 0
	}
	return t.root.NodeCount()
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	return &Tree{root: t.root.Clone()}
}

// String prints t in the default dialect.
func (t *Tree) String() string {
	return DefaultDialect.Format(t.root)
}

// Format prints t in dialect d.
func (t *Tree) Format(d Dialect) string {
	return d.Format(t.root)
}

// DebugString prints t together with its node count.
func (t *Tree) DebugString() string {
	return fmt.Sprintf("Syntax tree: %s\nNode count: %d", t.String(), t.NodeCount())
}
