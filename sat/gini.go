package sat

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

type giniSolver struct {
	solver *gini.Gini
}

// NewGini returns a Solver backed by the gini CDCL engine.
func NewGini(numVars int) Solver {
	return &giniSolver{solver: gini.NewV(numVars)}
}

func (s *giniSolver) AddClause(clause Clause) {
	for _, lit := range clause {
		if lit == 0 {
			panic("literal cannot be zero")
		}
		if lit < 0 {
			s.solver.Add(z.Var(-lit).Neg())
		} else {
			s.solver.Add(z.Var(lit).Pos())
		}
	}
	s.solver.Add(0)
}

func (s *giniSolver) Solve() bool {
	return s.solver.Solve() == 1
}

func (s *giniSolver) Value(v int) bool {
	return s.solver.Value(z.Var(v).Pos())
}
