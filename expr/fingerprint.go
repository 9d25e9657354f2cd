package expr

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/tracing"
)

// Shape is an exported, value-only mirror of a sub-tree. It is used for
// hashing and for dumping trees.
type Shape struct {
	Kind     string
	Value    string // numerator/denominator, never reduced
	Name     string
	Count    int
	Children []Shape
}

// ShapeOf creates the shape of the sub-tree at n.
func ShapeOf(n *Node) Shape {
	s := Shape{Kind: n.kind.String(), Name: n.name, Count: n.count}
	if n.kind == KindRational {
		s.Value = n.value.n().String() + "/" + n.value.d().String()
	}
	if len(n.children) > 0 {
		s.Children = make([]Shape, len(n.children))
		for i, ch := range n.children {
			s.Children[i] = ShapeOf(ch)
		}
	}
	return s
}

// Fingerprint returns a hash of the structure of t. Trees with equal
// fingerprints print identically in every dialect.
func (t *Tree) Fingerprint() string {
	h, err := structhash.Hash(ShapeOf(t.root), 1)
	if err != nil {
		// structhash fails only for unsupported field types
		panic(err)
	}
	return h
}

// Dump traces the shape of t at debug level.
func (t *Tree) Dump(name string) {
	tracing.With(tracer()).Dump(name, ShapeOf(t.root))
}
