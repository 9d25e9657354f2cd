package main

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/cascas/expr"
	"github.com/npillmayer/cascas/parser"
	"github.com/npillmayer/cascas/runtime"
	"github.com/npillmayer/cascas/simplify"
)

// session holds the state shared between the commands: the output dialect,
// a runtime with symbol bindings, and a cache of simplification results.
type session struct {
	dialect   expr.Dialect
	rt        *runtime.Runtime
	cache     *linkedhashmap.Map // fingerprint → simplified tree
	cacheSize int
	hits      int
}

func newSession(dialect expr.Dialect, cacheSize int) *session {
	return &session{
		dialect:   dialect,
		rt:        runtime.NewRuntime(),
		cache:     linkedhashmap.New(),
		cacheSize: cacheSize,
	}
}

func (s *session) parse(input string) (*expr.Tree, error) {
	tree, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %q to %s", input, tree.Format(s.dialect))
	return tree, nil
}

// simplify simplifies tree, looking up results of structurally equal trees
// first. Results with errors are never cached.
func (s *session) simplify(tree *expr.Tree) (*expr.Tree, error) {
	if s.cacheSize < 1 {
		return simplify.Simplify(tree)
	}
	fp := tree.Fingerprint()
	if cached, found := s.cache.Get(fp); found {
		s.hits++
		tracer().Debugf("simplification cache hit for %s", tree)
		return cached.(*expr.Tree).Clone(), nil
	}
	result, err := simplify.Simplify(tree)
	if err != nil {
		return result, err
	}
	s.cache.Put(fp, result.Clone())
	if s.cache.Size() > s.cacheSize { // evict the oldest entry
		s.cache.Remove(s.cache.Keys()[0])
	}
	return result, nil
}

// fixpoint simplifies tree repeatedly, for at most maxPasses passes.
func (s *session) fixpoint(tree *expr.Tree, maxPasses int) (*expr.Tree, error) {
	result, passes, err := simplify.Fixpoint(tree, maxPasses)
	tracer().Infof("simplification took %d passes", passes)
	return result, err
}

// evaluate parses and simplifies an input line.
func (s *session) evaluate(input string) (*expr.Tree, error) {
	tree, err := s.parse(input)
	if err != nil {
		return nil, err
	}
	return s.simplify(tree)
}
