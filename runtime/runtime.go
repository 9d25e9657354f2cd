/*
Package runtime binds symbols to floating point values, for approximating
expressions.

Symbol Table and Scope Tree

This module implements data structures for scope trees and symbol tables
attached to them. Scopes implement expr.Bindings: looking up a symbol walks
up the tree of scopes, up to the global scope. The global scope holds the
constants e and pi.

	rt := runtime.NewRuntime()
	rt.Define("x", 2)
	x, err := rt.Approx(tree)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"fmt"
	"math"

	"github.com/npillmayer/cascas/expr"
	"github.com/npillmayer/cascas/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascas.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("cascas.runtime")
}

// Constants are the pre-defined symbols of the global scope.
var Constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

// Runtime is a type implementing a runtime environment for approximating
// expressions.
type Runtime struct {
	ScopeTree *ScopeTree  // collect scopes
	UData     interface{} // extension point
}

// NewRuntime constructs a new runtime environment. It has a global scope,
// containing the constants, and a scope 'session' on top of it for user
// definitions.
func NewRuntime() *Runtime {
	rt := &Runtime{ScopeTree: new(ScopeTree)}
	globals := rt.ScopeTree.PushNewScope("globals") // push global scope first
	for name, value := range Constants {
		tag, _ := globals.DefineTag(name)
		tag.Value = value
		tag.Const = true
	}
	rt.ScopeTree.PushNewScope("session")
	return rt
}

// Define binds a symbol to a value in the current scope. Symbols have to be
// identifiers, must not name a well-known function, and must not shadow a
// constant.
func (rt *Runtime) Define(name string, value float64) error {
	tokens, err := scanner.Tokenize(name)
	if err != nil || len(tokens) != 1 || tokens[0].Kind != scanner.Identifier {
		return fmt.Errorf("not a valid symbol name: %q", name)
	}
	if expr.IsKnownFunction(name) {
		return fmt.Errorf("cannot define %q: name of a function", name)
	}
	if tag, _ := rt.ScopeTree.Current().ResolveTag(name); tag != nil && tag.Const {
		return fmt.Errorf("cannot redefine constant %q", name)
	}
	tag, _ := rt.ScopeTree.Current().DefineTag(name)
	tag.Value = value
	tracer().P("scope", rt.ScopeTree.Current().Name).Debugf("%s = %g", name, value)
	return nil
}

// Bindings returns the current scope as bindings for approximation.
func (rt *Runtime) Bindings() expr.Bindings {
	return rt.ScopeTree.Current()
}

// Approx calculates a floating point approximation of tree, with symbols
// bound in the current scope.
func (rt *Runtime) Approx(tree *expr.Tree) (float64, error) {
	return expr.Approx(tree.Root(), rt.Bindings())
}
