package prolog

// Bindings is an immutable mapping from variable name to Term. Every
// operation returns a new Bindings rather than mutating the receiver, so a
// snapshot captured at one point in the proof search remains valid no
// matter what later search steps do.
type Bindings struct {
	values map[string]Term
}

// EmptyBindings is the substitution with no bindings.
func EmptyBindings() Bindings {
	return Bindings{}
}

// SingletonBindings returns a substitution binding exactly one variable.
func SingletonBindings(name string, term Term) Bindings {
	return Bindings{values: map[string]Term{name: term}}
}

// Lookup returns the term bound to name and true, or (nil, false) if the
// name is unbound in this substitution.
func (b Bindings) Lookup(name string) (Term, bool) {
	if b.values == nil {
		return nil, false
	}
	t, ok := b.values[name]
	return t, ok
}

// Len reports how many variables this substitution binds.
func (b Bindings) Len() int { return len(b.values) }

// Merge combines two substitutions. The result contains every entry of
// both; where a name is bound in both, the two bound terms must be
// structurally equal (Compare) or the merge fails. Merge is commutative in
// its result (though not in which side is scanned first): merging a into b
// and b into a either both fail or produce equal maps.
func (b Bindings) Merge(other Bindings) (Bindings, bool) {
	if len(b.values) == 0 {
		return other, true
	}
	if len(other.values) == 0 {
		return b, true
	}

	merged := make(map[string]Term, len(b.values)+len(other.values))
	for k, v := range b.values {
		merged[k] = v
	}
	for k, v := range other.values {
		if existing, ok := merged[k]; ok {
			if !Compare(existing, v) {
				return Bindings{}, false
			}
			continue
		}
		merged[k] = v
	}
	return Bindings{values: merged}, true
}

// Walk follows a variable binding chain to its final value: if term is an
// unbound variable, or not a variable at all, it is returned unchanged.
// Walk does not recurse into compound/list structure — that's
// Substitute's job.
func (b Bindings) Walk(term Term) Term {
	v, ok := term.(*Var)
	if !ok {
		return term
	}
	bound, ok := b.Lookup(v.Name)
	if !ok {
		return term
	}
	return b.Walk(bound)
}

// Substitute recursively replaces every Var in term whose name is bound by
// this substitution with its (transitively chased) value; unbound
// variables pass through unchanged. Termination relies on the absence of
// cyclic bindings. Unify has no occurs-check, so unifying a variable with a
// term containing itself — directly, or through clause-head unification
// such as goal p(Y, f(Y)) against head p(X, X) — builds a Bindings whose
// Substitute loops forever. That is accepted Prolog semantics.
func (b Bindings) Substitute(term Term) Term {
	switch t := term.(type) {
	case *Var:
		bound, ok := b.Lookup(t.Name)
		if !ok {
			return t
		}
		return b.Substitute(bound)
	case *Compound:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = b.Substitute(a)
		}
		return &Compound{Functor: t.Functor, Args: args}
	case *ListTerm:
		return &ListTerm{Head: b.Substitute(t.Head), Tail: b.Substitute(t.Tail)}
	default:
		// Atom, Integer, String, EmptyList carry no variables.
		return t
	}
}
