package prolog

// Unify attempts to make t1 and t2 structurally equal, returning the
// instantiated term and the bindings that make it so. It is a pure
// function with no occurs-check, over the full term algebra (atoms,
// integers, strings, compounds, proper/improper lists).
//
// Failure — mismatched atoms, arities, functors, or a merge conflict in a
// compound/list's sub-unifications — is reported solely via the boolean
// return; there is no error value.
func Unify(t1, t2 Term) (Term, Bindings, bool) {
	switch a := t1.(type) {
	case *Var:
		if b, ok := t2.(*Var); ok && a.Name == b.Name {
			return a, EmptyBindings(), true
		}
		return t2, SingletonBindings(a.Name, t2), true

	case *Atom:
		if b, ok := t2.(*Var); ok {
			return a, SingletonBindings(b.Name, a), true
		}
		if b, ok := t2.(*Atom); ok && a.Name == b.Name {
			return a, EmptyBindings(), true
		}
		return nil, Bindings{}, false

	case *Integer:
		if b, ok := t2.(*Var); ok {
			return a, SingletonBindings(b.Name, a), true
		}
		if b, ok := t2.(*Integer); ok && a.Value == b.Value {
			return a, EmptyBindings(), true
		}
		return nil, Bindings{}, false

	case *String:
		if b, ok := t2.(*Var); ok {
			return a, SingletonBindings(b.Name, a), true
		}
		if b, ok := t2.(*String); ok && a.Value == b.Value {
			return a, EmptyBindings(), true
		}
		return nil, Bindings{}, false

	case *Compound:
		if b, ok := t2.(*Var); ok {
			return a, SingletonBindings(b.Name, a), true
		}
		b, ok := t2.(*Compound)
		if !ok || a.Functor != b.Functor || len(a.Args) != len(b.Args) {
			return nil, Bindings{}, false
		}
		bindings := EmptyBindings()
		args := make([]Term, len(a.Args))
		for i := range a.Args {
			result, sub, ok := Unify(a.Args[i], b.Args[i])
			if !ok {
				return nil, Bindings{}, false
			}
			merged, ok := bindings.Merge(sub)
			if !ok {
				return nil, Bindings{}, false
			}
			bindings = merged
			args[i] = result
		}
		return &Compound{Functor: a.Functor, Args: args}, bindings, true

	case *EmptyListTerm:
		if b, ok := t2.(*Var); ok {
			return a, SingletonBindings(b.Name, a), true
		}
		if _, ok := t2.(*EmptyListTerm); ok {
			return a, EmptyBindings(), true
		}
		return nil, Bindings{}, false

	case *ListTerm:
		if b, ok := t2.(*Var); ok {
			return a, SingletonBindings(b.Name, a), true
		}
		b, ok := t2.(*ListTerm)
		if !ok {
			return nil, Bindings{}, false
		}
		headResult, headBindings, ok := Unify(a.Head, b.Head)
		if !ok {
			return nil, Bindings{}, false
		}
		tailResult, tailBindings, ok := Unify(a.Tail, b.Tail)
		if !ok {
			return nil, Bindings{}, false
		}
		merged, ok := headBindings.Merge(tailBindings)
		if !ok {
			return nil, Bindings{}, false
		}
		return &ListTerm{Head: headResult, Tail: tailResult}, merged, true

	default:
		return nil, Bindings{}, false
	}
}
