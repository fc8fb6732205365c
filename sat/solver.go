// Package sat bridges formulas to CNF and to off-the-shelf SAT
// engines. Two interchangeable backends are provided so that results
// can be cross-checked against each other and against exhaustive
// enumeration.
package sat

// A Clause is a disjunction of non-zero DIMACS-style literals: v for a
// positive occurrence of variable v, -v for a negated one.
type Clause []int

// Solver is a minimal clausal solver. Value reports the assignment of
// a variable and is meaningful only after Solve has returned true.
type Solver interface {
	AddClause(Clause)
	Solve() bool
	Value(v int) bool
}

// NewSolverFunc constructs a backend prepared for variables 1 through
// numVars.
type NewSolverFunc func(numVars int) Solver
