package syntax

import (
	"testing"

	"github.com/gitrdm/gokanlogic/pkg/prolog"
)

// solveFirst parses program and query, then returns the first solution's
// printed result. These exercise the full pipeline (lexer, parser,
// resolver, printer) against worked end-to-end scenarios, rather than
// any single layer in isolation.
func solveFirst(t *testing.T, program, query string) string {
	t.Helper()
	clauses, err := NewParser(program).ParseProgram()
	if err != nil {
		t.Fatalf("parsing program: %v", err)
	}
	db := prolog.NewDatabase(clauses...)

	goal, err := NewParser(query).ParseQuery()
	if err != nil {
		t.Fatalf("parsing query: %v", err)
	}

	partial, ok := prolog.NewQuery(goal, db).Solve()
	if !ok {
		t.Fatalf("expected %q to succeed against:\n%s", query, program)
	}
	return partial.Result.String()
}

func TestIntegrationAppendConcatenatesLists(t *testing.T) {
	program := `
append([], Ys, Ys).
append([X|Xs], Ys, [X|Zs]) :- append(Xs, Ys, Zs).
`
	got := solveFirst(t, program, "append([thing, stuff, cat], [more, cat, stuff], Zs).")
	want := "append([thing, stuff, cat], [more, cat, stuff], [thing, stuff, cat, more, cat, stuff])"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIntegrationDeleteViaNotEqual(t *testing.T) {
	program := `
delete(X, [], []).
delete(X, [X|Ys], Zs) :- delete(X, Ys, Zs).
delete(X, [Y|Ys], [Y|Zs]) :- X \= Y, delete(X, Ys, Zs).
`
	got := solveFirst(t, program, "delete(cat, [cat, thing, stuff, stuff, cat], Ys).")
	want := "delete(cat, [cat, thing, stuff, stuff, cat], [thing, stuff, stuff])"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIntegrationArithmeticAccumulatorNth(t *testing.T) {
	program := `
nth([X|Xs], 0, X).
nth([S|Xs], N, Y) :- M is N - 1, nth(Xs, M, Y).
`
	got := solveFirst(t, program, "nth([1, 8, 904, 234, 42], 3, X).")
	want := "nth([1, 8, 904, 234, 42], 3, 234)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIntegrationQuicksort(t *testing.T) {
	program := `
append([], Ys, Ys).
append([X|Xs], Ys, [X|Zs]) :- append(Xs, Ys, Zs).
partition(X, [], [], []).
partition(X, [Y|Ys], [Y|Ls], Gs) :- Y <= X, partition(X, Ys, Ls, Gs).
partition(X, [Y|Ys], Ls, [Y|Gs]) :- Y > X, partition(X, Ys, Ls, Gs).
quicksort([], []).
quicksort([X|Xs], Sorted) :- partition(X, Xs, Smaller, Bigger), quicksort(Smaller, SortedSmaller), quicksort(Bigger, SortedBigger), append(SortedSmaller, [X|SortedBigger], Sorted).
`
	got := solveFirst(t, program, "quicksort([1, 8, 904, 234, 42], Sorted).")
	want := "quicksort([1, 8, 904, 234, 42], [1, 8, 42, 234, 904])"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestIntegrationFamilyRelations(t *testing.T) {
	program := `
female(marge).
male(homer).
male(bart).
parent(marge, bart).
parent(homer, bart).
father(X, Y) :- parent(X, Y), male(X).
`
	got := solveFirst(t, program, "father(X, bart).")
	want := "father(homer, bart)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
