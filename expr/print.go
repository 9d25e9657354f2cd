package expr

import (
	"fmt"
	"strings"
)

// Dialect selects the keywords used when printing a tree in prefix form.
// Dialects are plain values; there is no global output mode.
type Dialect struct {
	Name       string // name used for selection, e.g. in configuration
	PowKeyword string // keyword for KindPow nodes
}

// DefaultDialect prints exponentiation as '^'.
var DefaultDialect = Dialect{Name: "default", PowKeyword: "^"}

// RacketDialect prints exponentiation as 'expt', making output readable by
// Racket and other Scheme dialects.
var RacketDialect = Dialect{Name: "racket", PowKeyword: "expt"}

// DialectByName returns the dialect for a name. An empty name selects the
// default dialect.
func DialectByName(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "", DefaultDialect.Name:
		return DefaultDialect, nil
	case RacketDialect.Name:
		return RacketDialect, nil
	}
	return DefaultDialect, fmt.Errorf("unknown output dialect: %q", name)
}

// Keyword returns the keyword for an operator kind. It panics for leaf kinds
// and for function applications, which print the function name instead.
func (d Dialect) Keyword(k Kind) string {
	switch k {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMult:
		return "*"
	case KindDiv:
		return "/"
	case KindPow:
		if d.PowKeyword == "" {
			return DefaultDialect.PowKeyword
		}
		return d.PowKeyword
	}
	panic(fmt.Sprintf("no keyword for node kind %s", k))
}

// Format prints the sub-tree at n in fully parenthesized prefix form.
func (d Dialect) Format(n *Node) string {
	var sb strings.Builder
	d.write(&sb, n)
	return sb.String()
}

func (d Dialect) write(sb *strings.Builder, n *Node) {
	switch n.kind {
	case KindRational:
		sb.WriteString(n.value.String())
	case KindSymbol:
		sb.WriteString(n.name)
	case KindFuncApp:
		sb.WriteByte('(')
		sb.WriteString(n.name)
		sb.WriteByte(' ')
		d.write(sb, n.children[0])
		sb.WriteByte(')')
	case KindAdd, KindSub, KindMult, KindDiv, KindPow:
		sb.WriteByte('(')
		sb.WriteString(d.Keyword(n.kind))
		for _, ch := range n.children {
			sb.WriteByte(' ')
			d.write(sb, ch)
		}
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("unknown node kind %d", n.kind))
	}
}

// String prints n in the default dialect.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return DefaultDialect.Format(n)
}
