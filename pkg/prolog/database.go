package prolog

// Database is an ordered, append-only sequence of clauses addressed by
// 0-based index. Position is semantically significant: the resolver visits
// clauses in insertion order and resumes search at a specific index on
// backtracking.
//
// Clauses are stored as an ordered list of mixed Fact/Rule entries for
// arbitrarily many predicates, addressed positionally rather than by
// relation name — there is deliberately no predicate indexing here.
type Database struct {
	clauses []Clause
}

// NewDatabase constructs a database from zero or more clauses, in order.
func NewDatabase(clauses ...Clause) *Database {
	db := &Database{clauses: make([]Clause, len(clauses))}
	copy(db.clauses, clauses)
	return db
}

// Add appends a clause to the database and returns its index.
func (db *Database) Add(c Clause) int {
	db.clauses = append(db.clauses, c)
	return len(db.clauses) - 1
}

// Len reports the number of clauses in the database.
func (db *Database) Len() int { return len(db.clauses) }

// At returns the clause at index i. The caller must ensure 0 <= i < Len().
func (db *Database) At(i int) Clause { return db.clauses[i] }
