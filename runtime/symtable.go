package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Tags ------------------------------------------------------------------

// Tag is a named value stored in a symbol table. The name 'Symbol' is
// reserved for symbol nodes of expression trees.
type Tag struct {
	name  string
	Value float64
	Const bool // constants may not be redefined
}

// NewTag creates a tag with value 0.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

func (s *Tag) String() string {
	if s.Const {
		return fmt.Sprintf("<const %s=%g>", s.name, s.Value)
	}
	return fmt.Sprintf("<tag %s=%g>", s.name, s.Value)
}

// Name returns the name a tag is stored under.
func (s *Tag) Name() string {
	return s.name
}

// --- Symbol tables ---------------------------------------------------------

// SymbolTable maps names to tags.
type SymbolTable struct {
	Table map[string]*Tag
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{Table: map[string]*Tag{}}
}

// ResolveTag returns the tag for tagname, or nil.
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// DefineTag stores a fresh tag for tagname, replacing any tag of the same
// name, and returns it together with the replaced one. Empty names are
// rejected with (nil, nil).
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if tagname == "" {
		return nil, nil
	}
	prev := t.Table[tagname]
	tag := NewTag(tagname)
	t.Table[tagname] = tag
	return tag, prev
}

// Size returns the number of tags in t.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Names returns the names of all tags in the table, sorted.
func (t *SymbolTable) Names() []string {
	names := maps.Keys(t.Table)
	slices.Sort(names)
	return names
}

// --- Scopes ----------------------------------------------------------------

// Scope is a symbol table with a name and a link to an enclosing scope.
// Lookups which fail in a scope continue in the enclosing one.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates an empty scope enclosed by parent, which may be nil.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{Name: nm, Parent: parent, symtab: NewSymbolTable()}
}

func (s *Scope) String() string {
	return "<scope " + s.Name + ">"
}

// Tags returns the local symbol table of s.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines tagname locally in s, see SymbolTable.DefineTag.
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag searches tagname from s outwards. It returns the tag and the
// scope defining it, or (nil, nil).
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if tag := sc.symtab.ResolveTag(tagname); tag != nil {
			return tag, sc
		}
	}
	return nil, nil
}

// Lookup makes scopes usable as expr.Bindings.
func (s *Scope) Lookup(name string) (float64, bool) {
	tag, _ := s.ResolveTag(name)
	if tag == nil {
		return 0, false
	}
	return tag.Value, true
}

// Visible returns all tags visible from s, with inner definitions shadowing
// outer ones, sorted by name.
func (s *Scope) Visible() []*Tag {
	visible := make(map[string]*Tag)
	for sc := s; sc != nil; sc = sc.Parent {
		for name, tag := range sc.symtab.Table {
			if _, shadowed := visible[name]; !shadowed {
				visible[name] = tag
			}
		}
	}
	names := maps.Keys(visible)
	slices.Sort(names)
	tags := make([]*Tag, len(names))
	for i, name := range names {
		tags[i] = visible[name]
	}
	return tags
}

// --- Scope tree ------------------------------------------------------------

// ScopeTree is a stack of nested scopes. The bottom entry is the global
// scope, every pushed scope is enclosed by the previous top. The zero value
// is an empty stack.
type ScopeTree struct {
	scopes *arraystack.Stack
}

func (scst *ScopeTree) top() (*Scope, bool) {
	if scst.scopes == nil {
		return nil, false
	}
	t, ok := scst.scopes.Peek()
	if !ok {
		return nil, false
	}
	return t.(*Scope), true
}

// Current returns the innermost scope. It panics for an empty tree.
func (scst *ScopeTree) Current() *Scope {
	sc, ok := scst.top()
	if !ok {
		panic("no current scope: scope tree is empty")
	}
	return sc
}

// Globals returns the outermost scope. It panics for an empty tree.
func (scst *ScopeTree) Globals() *Scope {
	sc := scst.Current()
	for sc.Parent != nil {
		sc = sc.Parent
	}
	return sc
}

// PushNewScope creates a scope enclosed by the current one and makes it
// current. The first scope pushed is the global scope.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	if scst.scopes == nil {
		scst.scopes = arraystack.New()
	}
	parent, _ := scst.top()
	sc := NewScope(nm, parent)
	scst.scopes.Push(sc)
	tracer().P("scope", nm).Debugf("pushed scope, depth %d", scst.scopes.Size())
	return sc
}

// PopScope removes the current scope and returns it. The global scope stays;
// popping it panics.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.scopes == nil || scst.scopes.Size() < 2 {
		panic("cannot pop the global scope")
	}
	t, _ := scst.scopes.Pop()
	sc := t.(*Scope)
	tracer().P("scope", sc.Name).Debugf("popped scope")
	return sc
}
