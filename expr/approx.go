package expr

import (
	"errors"
	"fmt"
	"math"
)

// Bindings resolves symbol names to floating point values.
type Bindings interface {
	Lookup(name string) (float64, bool)
}

// ErrUnbound is returned when approximating a symbol without a binding.
var ErrUnbound = errors.New("unbound symbol")

// ErrUndefined is returned when an approximation is not a finite number,
// e.g. for division by zero or logarithms of negative numbers.
var ErrUndefined = errors.New("undefined value")

// Approx calculates a floating point approximation for the sub-tree at n.
// Symbols are looked up in env, which may be nil if n contains no symbols.
func Approx(n *Node, env Bindings) (float64, error) {
	x, err := approx(n, env)
	if err != nil {
		tracer().Debugf("approximation of %s failed: %v", n, err)
		return 0, err
	}
	return x, nil
}

func approx(n *Node, env Bindings) (float64, error) {
	switch n.kind {
	case KindRational:
		return finite(n.value.Float64(), n)
	case KindSymbol:
		if env != nil {
			if x, ok := env.Lookup(n.name); ok {
				return x, nil
			}
		}
		return 0, fmt.Errorf("cannot approximate %q: %w", n.name, ErrUnbound)
	case KindFuncApp:
		arg, err := approx(n.children[0], env)
		if err != nil {
			return 0, err
		}
		return finite(apply(n.name, arg), n)
	}
	args := make([]float64, len(n.children))
	for i, ch := range n.children {
		x, err := approx(ch, env)
		if err != nil {
			return 0, err
		}
		args[i] = x
	}
	var r float64
	switch n.kind {
	case KindAdd:
		for _, x := range args {
			r += x
		}
	case KindMult:
		r = 1
		for _, x := range args {
			r *= x
		}
	case KindSub:
		r = args[0] - args[1]
	case KindDiv:
		if args[1] == 0 {
			return 0, fmt.Errorf("division by zero in %s: %w", n, ErrUndefined)
		}
		r = args[0] / args[1]
	case KindPow:
		r = math.Pow(args[0], args[1])
	default:
		panic(fmt.Sprintf("unknown node kind %d", n.kind))
	}
	return finite(r, n)
}

func finite(x float64, n *Node) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%s is not a finite number: %w", n, ErrUndefined)
	}
	return x, nil
}

// apply calculates a well-known function. Reciprocal functions and their
// inverses are derived from the primary trigonometric functions.
func apply(fname string, x float64) float64 {
	switch fname {
	case "sin":
		return math.Sin(x)
	case "cos":
		return math.Cos(x)
	case "tan":
		return math.Tan(x)
	case "sec":
		return 1 / math.Cos(x)
	case "csc":
		return 1 / math.Sin(x)
	case "cot":
		return 1 / math.Tan(x)
	case "arcsin":
		return math.Asin(x)
	case "arccos":
		return math.Acos(x)
	case "arctan":
		return math.Atan(x)
	case "arcsec":
		return math.Acos(1 / x)
	case "arccsc":
		return math.Asin(1 / x)
	case "arccot":
		return math.Atan(1 / x)
	case "log":
		return math.Log10(x)
	case "ln":
		return math.Log(x)
	}
	panic(fmt.Sprintf("not a known function: %q", fname))
}
