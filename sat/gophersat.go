package sat

import (
	"github.com/crillab/gophersat/solver"
)

type gopherSolver struct {
	solver *solver.Solver
}

// NewGopher returns a Solver backed by gophersat. Every variable is
// registered up front through a tautological clause, so that clauses
// added later may mention any of them.
func NewGopher(numVars int) Solver {
	clauses := make([][]int, numVars)
	for v := 1; v <= numVars; v++ {
		clauses[v-1] = []int{v, -v}
	}
	pb := solver.ParseSlice(clauses)
	return &gopherSolver{solver: solver.New(pb)}
}

func (s *gopherSolver) AddClause(clause Clause) {
	lits := make([]solver.Lit, 0, len(clause))
	for _, lit := range clause {
		if lit == 0 {
			panic("literal cannot be zero")
		}
		lits = append(lits, solver.IntToLit(int32(lit)))
	}
	s.solver.AppendClause(solver.NewClause(lits))
}

func (s *gopherSolver) Solve() bool {
	return s.solver.Solve() == solver.Sat
}

func (s *gopherSolver) Value(v int) bool {
	return s.solver.Model()[v-1]
}
