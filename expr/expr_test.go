package expr

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	n := NewAdd(Int(1), NewMult(NewSymbol("x"), Int(2)), NewFuncApp("sin", NewSymbol("y")))
	assert.Equal(t, 7, n.NodeCount())
	assert.Equal(t, 3, n.Arity())
	n.SetChild(1, NewSymbol("z"))
	assert.Equal(t, 5, n.NodeCount())
	assert.Equal(t, "(+ 1 z (sin y))", n.String())
}

func TestConstructorsPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	assert.Panics(t, func() { NewAdd(Int(1), nil) })
	assert.Panics(t, func() { NewFuncApp("f", Int(1)) })
	assert.Panics(t, func() { NewTree(nil) })
}

func TestPrintDialects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	tree := NewTree(NewSub(
		NewPow(NewSymbol("x"), NewRationalNode(NewRational(3, 2))),
		NewDiv(NewMult(Int(-1), NewSymbol("e")), Int(0)),
	))
	assert.Equal(t, "(- (^ x 3/2) (/ (* -1 e) 0))", tree.String())
	assert.Equal(t, "(- (expt x 3/2) (/ (* -1 e) 0))", tree.Format(RacketDialect))
	assert.Equal(t, "Syntax tree: (- (^ x 3/2) (/ (* -1 e) 0))\nNode count: 9", tree.DebugString())
	//
	d, err := DialectByName("Racket")
	require.NoError(t, err)
	assert.Equal(t, RacketDialect, d)
	_, err = DialectByName("fortran")
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	tree := NewTree(NewAdd(NewSymbol("a"), NewMult(Int(2), NewSymbol("b"))))
	c := tree.Clone()
	assert.Equal(t, tree.Fingerprint(), c.Fingerprint())
	c.Root().Child(1).SetChild(0, Int(3))
	c.Root().Recount()
	assert.Equal(t, "(+ a (* 2 b))", tree.String())
	assert.Equal(t, "(+ a (* 3 b))", c.String())
	assert.NotEqual(t, tree.Fingerprint(), c.Fingerprint())
}

func TestFingerprintDistinguishesDenominators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	a := NewTree(NewRationalNode(NewRational(0, 1)))
	b := NewTree(NewRationalNode(NewRational(0, 5)))
	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestKnownFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	names := KnownFunctions()
	assert.Len(t, names, 14)
	assert.Equal(t, "arccos", names[0])
	assert.True(t, IsKnownFunction("ln"))
	assert.False(t, IsKnownFunction("exp"))
	assert.False(t, IsKnownFunction("Sin"))
}

type bindings map[string]float64

func (b bindings) Lookup(name string) (float64, bool) {
	x, ok := b[name]
	return x, ok
}

func TestApprox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	env := bindings{"x": 2, "pi": math.Pi}
	for _, tc := range []struct {
		n *Node
		x float64
	}{
		{NewRationalNode(NewRational(15, 10)), 1.5},
		{NewAdd(Int(1), Int(2), NewSymbol("x")), 5},
		{NewSub(Int(1), NewSymbol("x")), -1},
		{NewMult(Int(3), NewSymbol("x"), Int(-1)), -6},
		{NewDiv(Int(7), NewSymbol("x")), 3.5},
		{NewPow(NewSymbol("x"), Int(10)), 1024},
		{NewFuncApp("log", Int(1000)), 3},
		{NewFuncApp("ln", Int(1)), 0},
		{NewFuncApp("cos", NewSymbol("pi")), -1},
		{NewFuncApp("sec", Int(0)), 1},
		{NewFuncApp("arcsec", Int(1)), 0},
		{NewFuncApp("arccot", Int(1)), math.Pi / 4},
	} {
		x, err := Approx(tc.n, env)
		require.NoError(t, err, tc.n.String())
		assert.InDelta(t, tc.x, x, 1e-9, tc.n.String())
	}
}

func TestApproxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascas.expr")
	defer teardown()
	//
	_, err := Approx(NewAdd(NewSymbol("y"), Int(1)), nil)
	assert.True(t, errors.Is(err, ErrUnbound))
	_, err = Approx(NewDiv(Int(1), Int(0)), nil)
	assert.True(t, errors.Is(err, ErrUndefined))
	_, err = Approx(NewFuncApp("ln", Int(-1)), nil)
	assert.True(t, errors.Is(err, ErrUndefined))
	_, err = Approx(NewRationalNode(NewRational(1, 0)), nil)
	assert.True(t, errors.Is(err, ErrUndefined))
}
