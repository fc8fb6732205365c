package sat

import (
	"hilbert/formula"
	"hilbert/semantics"
)

// CNF is the clausal form of a formula. Vars maps the formula's
// variable names to solver variables; auxiliary variables introduced
// for compound subformulas carry no name.
type CNF struct {
	Clauses []Clause
	NumVars int
	Vars    map[string]int
}

// Compile converts f into an equisatisfiable CNF by the Tseitin
// transformation: each distinct subformula receives a solver variable
// constrained to mirror its truth value, and the root variable is
// asserted by a unit clause. Repeated subformulas share one variable.
func Compile(f *formula.Formula) *CNF {
	c := &CNF{Vars: make(map[string]int)}
	root := c.compile(f, make(map[string]int))
	c.Clauses = append(c.Clauses, Clause{root})
	return c
}

func (c *CNF) compile(f *formula.Formula, seen map[string]int) int {
	key := f.String()
	if v, ok := seen[key]; ok {
		return v
	}
	var v int
	switch {
	case formula.IsVariable(f.Root):
		v = c.fresh()
		c.Vars[f.Root] = v
	case formula.IsConstant(f.Root):
		v = c.fresh()
		if f.Root == "T" {
			c.Clauses = append(c.Clauses, Clause{v})
		} else {
			c.Clauses = append(c.Clauses, Clause{-v})
		}
	case formula.IsUnary(f.Root):
		a := c.compile(f.First, seen)
		v = c.fresh()
		c.Clauses = append(c.Clauses, Clause{-v, -a}, Clause{v, a})
	default:
		a := c.compile(f.First, seen)
		b := c.compile(f.Second, seen)
		v = c.fresh()
		c.Clauses = append(c.Clauses, definingClauses(f.Root, v, a, b)...)
	}
	seen[key] = v
	return v
}

func (c *CNF) fresh() int {
	c.NumVars++
	return c.NumVars
}

// definingClauses constrains v to equal (a op b).
func definingClauses(op string, v, a, b int) []Clause {
	switch op {
	case "&":
		return []Clause{{-v, a}, {-v, b}, {v, -a, -b}}
	case "|":
		return []Clause{{-v, a, b}, {v, -a}, {v, -b}}
	case "->":
		return []Clause{{-v, -a, b}, {v, a}, {v, -b}}
	case "+":
		return []Clause{{-v, a, b}, {-v, -a, -b}, {v, -a, b}, {v, a, -b}}
	case "<->":
		return []Clause{{-v, -a, b}, {-v, a, -b}, {v, a, b}, {v, -a, -b}}
	case "-&":
		return []Clause{{-v, -a, -b}, {v, a}, {v, b}}
	case "-|":
		return []Clause{{-v, -a}, {-v, -b}, {v, a, b}}
	}
	panic("unknown operator " + op)
}

// Witness returns a model of f found by the given backend, or false
// when f is unsatisfiable.
func Witness(f *formula.Formula, newSolver NewSolverFunc) (semantics.Model, bool) {
	cnf := Compile(f)
	s := newSolver(cnf.NumVars)
	for _, clause := range cnf.Clauses {
		s.AddClause(clause)
	}
	if !s.Solve() {
		return nil, false
	}
	m := make(semantics.Model, len(cnf.Vars))
	for name, v := range cnf.Vars {
		m[name] = s.Value(v)
	}
	return m, true
}

// Satisfiable reports whether f has a satisfying assignment, deciding
// by CNF translation instead of enumeration.
func Satisfiable(f *formula.Formula, newSolver NewSolverFunc) bool {
	_, ok := Witness(f, newSolver)
	return ok
}

// Tautology reports whether f holds in every model, deciding by the
// unsatisfiability of ~f.
func Tautology(f *formula.Formula, newSolver NewSolverFunc) bool {
	return !Satisfiable(formula.Not(f), newSolver)
}
