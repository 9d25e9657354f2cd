package simplify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/cascas/expr"
)

// Sentinel errors. A *SimplificationError unwraps to one of these.
var (
	ErrIndeterminate  = errors.New("indeterminate form 0^0")
	ErrDivisionByZero = errors.New("division by zero")
)

// ErrorKind classifies simplification errors.
type ErrorKind int8

// Kinds of simplification errors.
const (
	Indeterminate ErrorKind = iota + 1
	DivisionByZero
	RuleFailure // a custom rule returned an error
)

// SimplificationError reports a sub-tree which has been left as is because
// it denotes an undefined value.
type SimplificationError struct {
	Kind    ErrorKind
	Subtree *expr.Node // copy of the offending sub-tree
	Reason  error      // for RuleFailure
}

func (e *SimplificationError) Error() string {
	return fmt.Sprintf("%v in %s", e.Unwrap(), e.Subtree)
}

func (e *SimplificationError) Unwrap() error {
	switch e.Kind {
	case Indeterminate:
		return ErrIndeterminate
	case DivisionByZero:
		return ErrDivisionByZero
	}
	return e.Reason
}

// Errors collects all simplification errors of a pass, in the order the
// offending sub-trees have been visited.
type Errors []*SimplificationError

func (errs Errors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Is reports whether any of the errors matches target.
func (errs Errors) Is(target error) bool {
	for _, e := range errs {
		if errors.Is(e, target) {
			return true
		}
	}
	return false
}

// As finds the first error which matches target.
func (errs Errors) As(target interface{}) bool {
	for _, e := range errs {
		if errors.As(e, target) {
			return true
		}
	}
	return false
}
