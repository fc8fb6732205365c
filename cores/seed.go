package cores

import (
	"strconv"

	"github.com/crillab/gophersat/maxsat"
)

// SeedSolver proposes unexplored subsets for the enumerator. Each
// element carries a soft clause, so proposed seeds are maximal; the
// blocking clauses added during exploration are hard.
type SeedSolver struct {
	constraints []maxsat.Constr
	elements    IntSet
	model       map[string]bool
}

func NewSeedSolver(elements IntSet) *SeedSolver {
	soft := make([]maxsat.Constr, 0, elements.Cardinality())
	for v := range elements.Iter() {
		soft = append(soft, maxsat.SoftClause(maxsat.Var(strconv.Itoa(v))))
	}
	return &SeedSolver{constraints: soft, elements: elements}
}

// Solve reports whether an unexplored subset remains.
func (s *SeedSolver) Solve() bool {
	pb := maxsat.New(s.constraints...)
	model, _ := pb.Solve()
	s.model = model
	return model != nil
}

// Model returns the subset found by the last successful Solve.
func (s *SeedSolver) Model() IntSet {
	subset := NewIntSet()
	for v := range s.elements.Iter() {
		if s.model[strconv.Itoa(v)] {
			subset.Add(v)
		}
	}
	return subset
}

// AddClause adds a hard clause over element literals: a positive id
// requires the element present, a negative id requires it absent.
func (s *SeedSolver) AddClause(clause IntSet) {
	lits := make([]maxsat.Lit, 0, clause.Cardinality())
	for v := range clause.Iter() {
		if v > 0 {
			lits = append(lits, maxsat.Var(strconv.Itoa(v)))
		} else {
			lits = append(lits, maxsat.Var(strconv.Itoa(-v)).Negation())
		}
	}
	s.constraints = append(s.constraints, maxsat.HardClause(lits...))
}
