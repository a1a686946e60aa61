package prolog

import (
	"github.com/gitrdm/gokanlogic/internal/trace"
)

// Partial is a successful proof record: the instantiated goal, the
// bindings that made it true, and the database index of the clause that
// produced it (or, for a built-in, an index placing "next attempt" past
// the end of the database — built-ins are not retryable at this level).
type Partial struct {
	Result   Term
	Bindings Bindings
	Cursor   int
}

// Query is a thin facade over a goal term and a database, exposing the
// resumable Solve/SolveFrom interface.
type Query struct {
	Goal   Term
	DB     *Database
	Tracer trace.Logger
}

// NewQuery constructs a query for the given goal against db, with tracing
// disabled. Use WithTracer to attach an optional step logger.
func NewQuery(goal Term, db *Database) *Query {
	return &Query{Goal: goal, DB: db, Tracer: trace.NoOp()}
}

// WithTracer returns a copy of the query with the given tracer attached.
// A nil tracer is treated the same as trace.NoOp() — tracing is always
// optional, and resolver code never needs a nil check.
func (q *Query) WithTracer(t trace.Logger) *Query {
	if t == nil {
		t = trace.NoOp()
	}
	return &Query{Goal: q.Goal, DB: q.DB, Tracer: t}
}

// Solve attempts to prove the goal from the start of the database. It is
// equivalent to SolveFrom(0).
func (q *Query) Solve() (*Partial, bool) {
	return q.SolveFrom(0)
}

// SolveFrom attempts to prove the goal starting the clause scan at cursor,
// returning the first Partial found (ascending clause order) or false if
// none matches. Re-invoking SolveFrom(partial.Cursor+1) enumerates further
// answers — this is the only backtracking interface exposed at the top
// level.
func (q *Query) SolveFrom(cursor int) (*Partial, bool) {
	return solveFrom(q.Goal, q.DB, cursor, q.Tracer)
}

func solveFrom(goal Term, db *Database, cursor int, tr trace.Logger) (*Partial, bool) {
	if cursor >= db.Len() {
		return nil, false
	}

	if fn, ok := lookupBuiltin(goal); ok {
		tr.Debug("builtin dispatch", "goal", goal.String())
		return fn(goal, EmptyBindings(), db.Len(), db, tr)
	}

	for i := cursor; i < db.Len(); i++ {
		clause := renameClause(db.At(i), nextGeneration())
		tr.Debug("try clause", "index", i, "head", clause.Head.String())

		_, bindings, ok := Unify(goal, clause.Head)
		if !ok {
			continue
		}

		if clause.IsFact() {
			tr.Debug("fact matched", "index", i)
			return &Partial{Result: bindings.Substitute(clause.Head), Bindings: bindings, Cursor: i}, true
		}

		bodyPartial, ok := solveExpression(db, bindings, clause.Body, 0, tr)
		if !ok {
			continue
		}

		merged, ok := bindings.Merge(bodyPartial.Bindings)
		if !ok {
			continue
		}

		tr.Debug("rule matched", "index", i)
		return &Partial{Result: merged.Substitute(clause.Head), Bindings: merged, Cursor: i}, true
	}

	return nil, false
}

// solveExpression proves a rule body under the given incoming bindings,
// starting the search for the relevant sub-goal at the given cursor. It
// implements a weak, conjunction-scoped cut: within
// `Left, Right`, once Right fails after some success of Left, backtracking
// into further alternatives of Left is suppressed if Left is (or reduces
// to) the atom `!`.
func solveExpression(db *Database, bindings Bindings, body Expr, cursor int, tr trace.Logger) (*Partial, bool) {
	switch b := body.(type) {
	case *TermExpr:
		subGoal := bindings.Substitute(b.Term)
		sub, ok := solveFrom(subGoal, db, cursor, tr)
		if !ok {
			return nil, false
		}
		merged, ok := bindings.Merge(sub.Bindings)
		if !ok {
			return nil, false
		}
		return &Partial{Result: sub.Result, Bindings: merged, Cursor: sub.Cursor}, true

	case *Conjunct:
		rule := 0
		for {
			left, ok := solveExpression(db, bindings, b.Left, rule, tr)
			if !ok {
				return nil, false
			}

			merged, ok := bindings.Merge(left.Bindings)
			if !ok {
				return nil, false
			}

			right, ok := solveExpression(db, merged, b.Right, 0, tr)
			if ok {
				return right, true
			}

			if isCut(b.Left) {
				tr.Debug("cut: suppressing backtrack into left conjunct")
				return nil, false
			}

			rule = left.Cursor + 1
		}

	default:
		return nil, false
	}
}

// isCut reports whether an expression is (or reduces to) the bare atom `!`.
func isCut(e Expr) bool {
	te, ok := e.(*TermExpr)
	if !ok {
		return false
	}
	a, ok := te.Term.(*Atom)
	return ok && a.Name == "!"
}
