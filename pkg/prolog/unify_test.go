package prolog

import "testing"

func TestUnifyVarWithAtomBinds(t *testing.T) {
	result, bindings, ok := Unify(NewVar("X"), NewAtom("bart"))
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	if bindings.Len() != 1 {
		t.Fatalf("expected one binding, got %d", bindings.Len())
	}
	if !Compare(result, NewAtom("bart")) {
		t.Fatalf("result = %v, want bart", result)
	}
}

func TestUnifyAtomsMustMatch(t *testing.T) {
	if _, _, ok := Unify(NewAtom("bart"), NewAtom("lisa")); ok {
		t.Fatal("distinct atoms should not unify")
	}
}

func TestUnifyCompoundSameFunctorArity(t *testing.T) {
	t1 := NewCompound("parent", NewVar("X"), NewAtom("bart"))
	t2 := NewCompound("parent", NewAtom("marge"), NewAtom("bart"))

	result, bindings, ok := Unify(t1, t2)
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	v, found := bindings.Lookup("X")
	if !found || !Compare(v, NewAtom("marge")) {
		t.Fatalf("X = %v, want marge", v)
	}
	if !Compare(result, t2) {
		t.Fatalf("result = %v, want %v", result, t2)
	}
}

func TestUnifyCompoundArityMismatchFails(t *testing.T) {
	t1 := NewCompound("f", NewAtom("a"))
	t2 := NewCompound("f", NewAtom("a"), NewAtom("b"))
	if _, _, ok := Unify(t1, t2); ok {
		t.Fatal("compounds of different arity should not unify")
	}
}

func TestUnifyListsHeadTail(t *testing.T) {
	l1 := NewList(NewVar("H"), NewVar("T"))
	l2 := ListOf(NewInteger(1), NewInteger(2), NewInteger(3))

	_, bindings, ok := Unify(l1, l2)
	if !ok {
		t.Fatal("expected list unification to succeed")
	}
	h, _ := bindings.Lookup("H")
	if !Compare(h, NewInteger(1)) {
		t.Fatalf("H = %v, want 1", h)
	}
}

func TestUnifySoundness(t *testing.T) {
	t1 := NewCompound("f", NewVar("X"), NewAtom("b"))
	t2 := NewCompound("f", NewAtom("a"), NewVar("Y"))

	result, bindings, ok := Unify(t1, t2)
	if !ok {
		t.Fatal("expected unification to succeed")
	}
	s1 := bindings.Substitute(t1)
	s2 := bindings.Substitute(t2)
	if !Compare(s1, s2) || !Compare(s1, result) {
		t.Fatalf("unification not sound: substitute(t1)=%v substitute(t2)=%v result=%v", s1, s2, result)
	}
}

func TestUnifyNoOccursCheck(t *testing.T) {
	// X unifying with f(X) is accepted with no occurs-check.
	if _, _, ok := Unify(NewVar("X"), NewCompound("f", NewVar("X"))); !ok {
		t.Fatal("expected self-referential unification to succeed (no occurs-check)")
	}
}
