package prolog

import (
	"strconv"
	"sync/atomic"
)

// generation is the process-wide monotonic counter backing hygienic clause
// renaming: an atomic int64 counter, the same mechanism used to mint a
// fresh variable identity, repointed here to mint a fresh activation
// suffix for an entire clause.
var generation int64

// nextGeneration returns a fresh, process-wide unique generation id.
func nextGeneration() int64 {
	return atomic.AddInt64(&generation, 1)
}

// renameClause renames every variable occurring in a clause's head (and
// body, if a rule) to `name + "_" + gen`, so that two activations of the
// same clause — e.g. two recursive calls to the same rule — never alias
// variables. The original clause is left untouched; a new one is returned.
func renameClause(c Clause, gen int64) Clause {
	suffix := "_" + strconv.FormatInt(gen, 10)
	head := renameTerm(c.Head, suffix)
	if c.IsFact() {
		return Fact(head)
	}
	return Rule(head, renameExpr(c.Body, suffix))
}

func renameTerm(t Term, suffix string) Term {
	switch v := t.(type) {
	case *Var:
		return &Var{Name: v.Name + suffix}
	case *Compound:
		args := make([]Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = renameTerm(a, suffix)
		}
		return &Compound{Functor: v.Functor, Args: args}
	case *ListTerm:
		return &ListTerm{Head: renameTerm(v.Head, suffix), Tail: renameTerm(v.Tail, suffix)}
	default:
		// Atom, Integer, String, EmptyList contain no variables.
		return t
	}
}

func renameExpr(e Expr, suffix string) Expr {
	switch x := e.(type) {
	case *TermExpr:
		return &TermExpr{Term: renameTerm(x.Term, suffix)}
	case *Conjunct:
		return &Conjunct{Left: renameExpr(x.Left, suffix), Right: renameExpr(x.Right, suffix)}
	default:
		return e
	}
}
