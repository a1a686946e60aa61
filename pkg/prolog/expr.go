package prolog

// Expr is a rule body: either a single Term goal, or the conjunction of two
// sub-expressions. The parser builds conjunctions right-associated, but the
// resolver treats Conjunct as a plain binary node and evaluates its two
// sides strictly left-then-right.
type Expr interface {
	isExpr()
}

// TermExpr wraps a single Term as a body expression.
type TermExpr struct {
	Term Term
}

func (*TermExpr) isExpr() {}

// Conjunct is the body expression `Left, Right`.
type Conjunct struct {
	Left  Expr
	Right Expr
}

func (*Conjunct) isExpr() {}

// ExprOf wraps a bare Term as a TermExpr, for callers building an Expr by
// hand rather than through the parser.
func ExprOf(t Term) Expr { return &TermExpr{Term: t} }

// Clause is a fact or a rule. A Fact is a bare head term; a Rule has a
// head term and a body Expr.
type Clause struct {
	Head Term
	// Body is nil for a fact.
	Body Expr
}

// Fact constructs a fact clause.
func Fact(head Term) Clause { return Clause{Head: head} }

// Rule constructs a rule clause.
func Rule(head Term, body Expr) Clause { return Clause{Head: head, Body: body} }

// IsFact reports whether the clause is a fact (has no body).
func (c Clause) IsFact() bool { return c.Body == nil }
