package prolog

import "testing"

// family builds the canonical family-relations database used across this
// file's worked examples: female/male facts, parent facts, and a father
// rule derived from parent+male.
func family() *Database {
	return NewDatabase(
		Fact(NewCompound("female", NewAtom("marge"))),
		Fact(NewCompound("female", NewAtom("lisa"))),
		Fact(NewCompound("male", NewAtom("homer"))),
		Fact(NewCompound("male", NewAtom("bart"))),
		Fact(NewCompound("parent", NewAtom("marge"), NewAtom("bart"))),
		Fact(NewCompound("parent", NewAtom("marge"), NewAtom("lisa"))),
		Fact(NewCompound("parent", NewAtom("homer"), NewAtom("bart"))),
		Fact(NewCompound("parent", NewAtom("homer"), NewAtom("lisa"))),
		Rule(
			NewCompound("father", NewVar("X"), NewVar("Y")),
			&Conjunct{
				Left:  ExprOf(NewCompound("parent", NewVar("X"), NewVar("Y"))),
				Right: ExprOf(NewCompound("male", NewVar("X"))),
			},
		),
	)
}

func TestSolveFactDirectly(t *testing.T) {
	db := family()
	goal := NewCompound("female", NewAtom("marge"))
	q := NewQuery(goal, db)

	partial, ok := q.Solve()
	if !ok {
		t.Fatal("expected female(marge) to succeed")
	}
	if !Compare(partial.Result, goal) {
		t.Fatalf("result = %v, want %v", partial.Result, goal)
	}
}

func TestSolveRuleConjunctionFindsFather(t *testing.T) {
	db := family()
	goal := NewCompound("father", NewVar("X"), NewAtom("bart"))
	q := NewQuery(goal, db)

	partial, ok := q.Solve()
	if !ok {
		t.Fatal("expected father(X, bart) to succeed")
	}
	want := NewCompound("father", NewAtom("homer"), NewAtom("bart"))
	if !Compare(partial.Result, want) {
		t.Fatalf("result = %v, want %v", partial.Result, want)
	}
}

func TestSolveFromEnumeratesFurtherAnswers(t *testing.T) {
	db := family()
	goal := NewCompound("parent", NewVar("X"), NewAtom("bart"))
	q := NewQuery(goal, db)

	first, ok := q.Solve()
	if !ok {
		t.Fatal("expected first parent(X, bart) solution")
	}

	second, ok := q.SolveFrom(first.Cursor + 1)
	if !ok {
		t.Fatal("expected a second parent(X, bart) solution")
	}
	if Compare(first.Result, second.Result) {
		t.Fatal("expected distinct solutions from chronological backtracking")
	}
}

func TestSolveNoMatchFails(t *testing.T) {
	db := family()
	goal := NewCompound("female", NewAtom("bart"))
	if _, ok := NewQuery(goal, db).Solve(); ok {
		t.Fatal("expected female(bart) to fail")
	}
}

func TestCutPrunesLeftConjunctAlternatives(t *testing.T) {
	// not(X) :- X, !, fail.
	// thing.
	// has(thing) :- not(thing).
	db := NewDatabase(
		Rule(
			NewCompound("not", NewVar("X")),
			&Conjunct{
				Left: ExprOf(NewVar("X")),
				Right: &Conjunct{
					Left:  ExprOf(NewAtom("!")),
					Right: ExprOf(NewAtom("fail")),
				},
			},
		),
		Fact(NewAtom("thing")),
		Rule(NewCompound("has", NewAtom("thing")), ExprOf(NewCompound("not", NewAtom("thing")))),
	)

	goal := NewCompound("has", NewAtom("thing"))
	if _, ok := NewQuery(goal, db).Solve(); ok {
		t.Fatal("expected has(thing) to fail: thing holds, so not(thing) must fail via cut+fail")
	}
}

func TestListRecursionTestPredicate(t *testing.T) {
	// test([]).
	// test([X|Xs]) :- test(Xs).
	db := NewDatabase(
		Fact(NewCompound("test", EmptyList)),
		Rule(NewCompound("test", NewList(NewVar("X"), NewVar("Xs"))), ExprOf(NewCompound("test", NewVar("Xs")))),
	)

	goal := NewCompound("test", ListOf(NewAtom("thing"), NewAtom("stuff"), NewAtom("cat")))
	if _, ok := NewQuery(goal, db).Solve(); !ok {
		t.Fatal("expected test([thing, stuff, cat]) to succeed via list recursion")
	}
}

func TestArithmeticAccumulatorNth(t *testing.T) {
	// nth([X|_], 0, X).
	// nth([_|Xs], N, Y) :- is(M, N - 1), nth(Xs, M, Y).
	db := NewDatabase(
		Fact(NewCompound("nth", NewList(NewVar("X"), NewVar("_")), NewInteger(0), NewVar("X"))),
		Rule(
			NewCompound("nth", NewList(NewVar("_"), NewVar("Xs")), NewVar("N"), NewVar("Y")),
			&Conjunct{
				Left:  ExprOf(NewCompound("is", NewVar("M"), NewCompound("-", NewVar("N"), NewInteger(1)))),
				Right: ExprOf(NewCompound("nth", NewVar("Xs"), NewVar("M"), NewVar("Y"))),
			},
		),
	)

	goal := NewCompound("nth", ListOf(NewInteger(1), NewInteger(2), NewInteger(3), NewInteger(4)), NewInteger(2), NewVar("X"))
	partial, ok := NewQuery(goal, db).Solve()
	if !ok {
		t.Fatal("expected nth([1,2,3,4], 2, X) to succeed")
	}
	want := NewCompound("nth", ListOf(NewInteger(1), NewInteger(2), NewInteger(3), NewInteger(4)), NewInteger(2), NewInteger(3))
	if !Compare(partial.Result, want) {
		t.Fatalf("result = %v, want %v", partial.Result, want)
	}
}
