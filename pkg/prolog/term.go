// Package prolog implements a small interpreter for a Horn-clause logic
// language in the Prolog family: unification over a term algebra, SLD-style
// depth-first proof search with chronological backtracking, a
// conjunction-scoped cut, hygienic clause renaming, and a handful of
// evaluable built-ins (arithmetic, comparison, I/O, meta-call).
//
// A caller supplies a Database of facts and rules and a goal Term, then
// asks a Query (NewQuery) to prove the goal. On success the goal comes back
// instantiated with the bindings that made it true, plus a resumption
// cursor that can be passed back in to enumerate further solutions.
package prolog

import (
	"strconv"
	"strings"
)

// Term is a value in the term algebra: an atom, a logic variable, an
// integer, a string literal, a compound structure, a cons cell, or the
// empty-list marker. Terms are immutable once constructed; renaming and
// substitution always produce new Terms rather than mutating existing ones.
type Term interface {
	// String renders the term in the canonical printer form (see the
	// String methods below for the exact grammar: atoms print their name, compounds print
	// as name(arg1, arg2, ...), lists print as [e1, e2 | tail]).
	String() string

	// isTerm is unexported so Term can only be implemented by the variants
	// declared in this file.
	isTerm()
}

// Var is a logic variable, identified by name. Two Vars with the same name
// are the same variable; hygienic renaming (see rename.go) is what keeps
// variables from different clause activations from clashing.
type Var struct {
	Name string
}

// NewVar constructs a variable with the given name.
func NewVar(name string) *Var { return &Var{Name: name} }

func (v *Var) String() string { return v.Name }
func (*Var) isTerm()          {}

// Atom is an immutable symbolic constant such as `marge` or `[]`'s sibling
// `true`.
type Atom struct {
	Name string
}

// NewAtom constructs an atom with the given name.
func NewAtom(name string) *Atom { return &Atom{Name: name} }

func (a *Atom) String() string { return a.Name }
func (*Atom) isTerm()          {}

// Integer is a 64-bit signed numeric constant.
type Integer struct {
	Value int64
}

// NewInteger constructs an integer term.
func NewInteger(value int64) *Integer { return &Integer{Value: value} }

func (i *Integer) String() string { return strconv.FormatInt(i.Value, 10) }
func (*Integer) isTerm()          {}

// String is an opaque quoted string literal. Its contents are not escaped
// by the printer.
type String struct {
	Value string
}

// NewString constructs a string term.
func NewString(value string) *String { return &String{Value: value} }

func (s *String) String() string { return "\"" + s.Value + "\"" }
func (*String) isTerm()          {}

// Compound is a structured term `functor(arg1, ..., argN)` with a
// non-empty argument list; a functor with no arguments is an Atom instead.
type Compound struct {
	Functor string
	Args    []Term
}

// NewCompound constructs a compound term. Panics if args is empty — callers
// should construct an Atom instead (the parser and builtins never produce
// a zero-arity compound).
func NewCompound(functor string, args ...Term) *Compound {
	if len(args) == 0 {
		panic("prolog: NewCompound requires at least one argument; use NewAtom")
	}
	return &Compound{Functor: functor, Args: args}
}

func (c *Compound) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Functor + "(" + strings.Join(parts, ", ") + ")"
}
func (*Compound) isTerm() {}

// EmptyListTerm is the list terminator `[]`. There is exactly one logical
// value, but it is not a singleton pointer — callers compare with
// Compare, not with ==.
type EmptyListTerm struct{}

// EmptyList is the canonical empty-list term.
var EmptyList = &EmptyListTerm{}

func (*EmptyListTerm) String() string { return "[]" }
func (*EmptyListTerm) isTerm()        {}

// ListTerm is a cons cell `[Head|Tail]`. A well-formed list has EmptyList
// as its ultimate tail, but partial/improper lists (any other term as the
// final tail) are tolerated by both the printer and the unifier.
type ListTerm struct {
	Head Term
	Tail Term
}

// NewList constructs a cons cell.
func NewList(head, tail Term) *ListTerm { return &ListTerm{Head: head, Tail: tail} }

// ListOf builds a proper list from the given elements, terminated by
// EmptyList.
func ListOf(elems ...Term) Term {
	var tail Term = EmptyList
	for i := len(elems) - 1; i >= 0; i-- {
		tail = NewList(elems[i], tail)
	}
	return tail
}

func (l *ListTerm) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(l.Head.String())

	cur := l.Tail
	for {
		switch t := cur.(type) {
		case *EmptyListTerm:
			b.WriteByte(']')
			return b.String()
		case *ListTerm:
			b.WriteString(", ")
			b.WriteString(t.Head.String())
			cur = t.Tail
		default:
			b.WriteString(" | ")
			b.WriteString(t.String())
			b.WriteByte(']')
			return b.String()
		}
	}
}
func (*ListTerm) isTerm() {}

// Compare reports whether two terms are structurally equal: same variant,
// same payload, recursively for compounds and lists. Two Vars are equal
// iff their names are equal. Used by Bindings.Merge and by the =/2 and
// \=/2 built-ins.
func Compare(a, b Term) bool {
	switch x := a.(type) {
	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x.Name == y.Name
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Value == y.Value
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Compound:
		y, ok := b.(*Compound)
		if !ok || x.Functor != y.Functor || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Compare(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *EmptyListTerm:
		_, ok := b.(*EmptyListTerm)
		return ok
	case *ListTerm:
		y, ok := b.(*ListTerm)
		return ok && Compare(x.Head, y.Head) && Compare(x.Tail, y.Tail)
	default:
		return false
	}
}
