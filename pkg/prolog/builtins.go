package prolog

import (
	"fmt"
	"strconv"

	"github.com/gitrdm/gokanlogic/internal/trace"
)

// BuiltinFunc is the evaluator signature for an evaluable built-in: given
// the (already-substituted) goal, the bindings in effect, and the cursor
// to report in the result (the resolver passes the database length, so a
// built-in is never retried), it returns a Partial proof record or reports
// failure. Built-ins bypass the clause database
// entirely. tr is threaded through so call/1..N (the only built-in that
// re-enters the resolver) can keep tracing the same session.
type BuiltinFunc func(goal Term, bindings Bindings, cursor int, db *Database, tr trace.Logger) (*Partial, bool)

// builtins is the name/arity keyed registry. A compile-time map literal is
// the idiomatic dispatch table for a closed, fixed built-in set — the same
// "lookup by formatted key" shape used for relation lookups elsewhere,
// generalized from predicate-name keys to name/arity keys so `foo/1` and
// `foo/2` can coexist.
var builtins = map[string]BuiltinFunc{
	"!/0":     builtinCut,
	"fail/0":  builtinFail,
	"nl/0":    builtinNl,
	"write/1": builtinWrite,
	"is/2":    builtinIs,
	"=/2":     builtinEqual,
	"\\=/2":   builtinNotEqual,
	"</2":     builtinLessThan,
	">/2":     builtinGreaterThan,
	"<=/2":    builtinLessOrEqual,
	">=/2":    builtinGreaterOrEqual,
	"+/2":     builtinAdd,
	"-/2":     builtinSubtract,
	"*/2":     builtinMultiply,
	"//2":     builtinDivide,
}

// is/2 is registered in init rather than in the literal above: builtinIs
// reaches the registry again through simplify and lookupBuiltin, and Go
// rejects a package-level initializer that refers back to itself.
func init() {
	builtins["is/2"] = builtinIs
}

// trueAtom is the canonical success result for built-ins that carry no
// interesting value (cut, fail's complement, nl, write, the comparisons).
var trueAtom = NewAtom("true")

// lookupBuiltin returns the registered evaluator for goal's functor/arity,
// if any. Atoms are looked up as name/0; call/N is handled separately
// since its arity is unbounded.
func lookupBuiltin(goal Term) (BuiltinFunc, bool) {
	switch g := goal.(type) {
	case *Atom:
		fn, ok := builtins[g.Name+"/0"]
		return fn, ok
	case *Compound:
		if g.Functor == "call" {
			return builtinCall, true
		}
		fn, ok := builtins[g.Functor+"/"+strconv.Itoa(len(g.Args))]
		return fn, ok
	default:
		return nil, false
	}
}

func builtinCut(_ Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinFail(_ Term, _ Bindings, _ int, _ *Database, _ trace.Logger) (*Partial, bool) {
	return nil, false
}

func builtinNl(_ Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	fmt.Println()
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinWrite(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	args := compoundArgs(goal)
	fmt.Print(args[0].String())
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

// builtinIs evaluates the right-hand side arithmetically (recursively
// simplifying nested arithmetic built-ins) and unifies the left-hand side
// with the result. It fails when the right-hand side does not reduce to an
// Integer (an unbound variable, a non-arithmetic term, or a step that fails
// such as division by zero).
func builtinIs(goal Term, _ Bindings, cursor int, db *Database, tr trace.Logger) (*Partial, bool) {
	args := compoundArgs(goal)
	rhs := simplify(args[1], cursor, db, tr)
	if _, ok := rhs.(*Integer); !ok {
		return nil, false
	}
	result, bindings, ok := Unify(args[0], rhs)
	if !ok {
		return nil, false
	}
	return &Partial{Result: result, Bindings: bindings, Cursor: cursor}, true
}

// builtinEqual implements `=/2` as structural equality, NOT standard
// Prolog unification.
func builtinEqual(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	args := compoundArgs(goal)
	if !Compare(args[0], args[1]) {
		return nil, false
	}
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinNotEqual(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	args := compoundArgs(goal)
	if Compare(args[0], args[1]) {
		return nil, false
	}
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinLessThan(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok || !(n < m) {
		return nil, false
	}
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinGreaterThan(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok || !(n > m) {
		return nil, false
	}
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinLessOrEqual(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok || !(n <= m) {
		return nil, false
	}
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinGreaterOrEqual(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok || !(n >= m) {
		return nil, false
	}
	return &Partial{Result: trueAtom, Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinAdd(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok {
		return nil, false
	}
	return &Partial{Result: NewInteger(n + m), Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinSubtract(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok {
		return nil, false
	}
	return &Partial{Result: NewInteger(n - m), Bindings: EmptyBindings(), Cursor: cursor}, true
}

func builtinMultiply(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok {
		return nil, false
	}
	return &Partial{Result: NewInteger(n * m), Bindings: EmptyBindings(), Cursor: cursor}, true
}

// builtinDivide implements `/2` as integer division. Division by zero
// surfaces as ordinary logical failure rather than a panic.
func builtinDivide(goal Term, _ Bindings, cursor int, _ *Database, _ trace.Logger) (*Partial, bool) {
	n, m, ok := intArgs(goal)
	if !ok || m == 0 {
		return nil, false
	}
	return &Partial{Result: NewInteger(n / m), Bindings: EmptyBindings(), Cursor: cursor}, true
}

// builtinCall implements meta-call: `call(F, X1, ..., Xk)` builds a goal by
// appending the trailing arguments to F (if F is already a Compound, its
// existing args come first) and solves that goal against the database.
func builtinCall(goal Term, _ Bindings, _ int, db *Database, tr trace.Logger) (*Partial, bool) {
	args := compoundArgs(goal)
	if len(args) == 0 {
		return nil, false
	}

	extra := args[1:]
	var built Term
	switch f := args[0].(type) {
	case *Atom:
		if len(extra) == 0 {
			built = f
		} else {
			built = &Compound{Functor: f.Name, Args: append([]Term{}, extra...)}
		}
	case *Compound:
		combined := make([]Term, 0, len(f.Args)+len(extra))
		combined = append(combined, f.Args...)
		combined = append(combined, extra...)
		built = &Compound{Functor: f.Functor, Args: combined}
	default:
		return nil, false
	}

	return solveFrom(built, db, 0, tr)
}

// simplify recursively reduces an arithmetic expression: each Compound
// sub-term has its own arguments simplified first, then — if the
// resulting term's functor/arity names a registered built-in — that
// built-in is applied and its result simplified again. A term with no
// applicable built-in (an Integer literal, an unbound Var, an Atom) is
// returned unchanged.
func simplify(t Term, cursor int, db *Database, tr trace.Logger) Term {
	c, ok := t.(*Compound)
	if !ok {
		return t
	}

	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = simplify(a, cursor, db, tr)
	}
	reduced := &Compound{Functor: c.Functor, Args: args}

	fn, ok := lookupBuiltin(reduced)
	if !ok {
		return reduced
	}
	partial, ok := fn(reduced, EmptyBindings(), cursor, db, tr)
	if !ok {
		return reduced
	}
	return simplify(partial.Result, cursor, db, tr)
}

func compoundArgs(goal Term) []Term {
	c, ok := goal.(*Compound)
	if !ok {
		return nil
	}
	return c.Args
}

func intArgs(goal Term) (int64, int64, bool) {
	args := compoundArgs(goal)
	if len(args) != 2 {
		return 0, 0, false
	}
	n, ok1 := args[0].(*Integer)
	m, ok2 := args[1].(*Integer)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return n.Value, m.Value, true
}
