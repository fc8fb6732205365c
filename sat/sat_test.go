package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hilbert/formula"
	"hilbert/semantics"
)

var backends = map[string]NewSolverFunc{
	"gini":      NewGini,
	"gophersat": NewGopher,
}

func TestCompileSharesSubformulas(t *testing.T) {
	cnf := Compile(formula.MustParse("((p&q)|(p&q))"))
	// p, q, the shared (p&q) and the disjunction itself.
	assert.Equal(t, 4, cnf.NumVars)
	require.NotEmpty(t, cnf.Clauses)
	assert.Equal(t, Clause{4}, cnf.Clauses[len(cnf.Clauses)-1])
	assert.Equal(t, map[string]int{"p": 1, "q": 2}, cnf.Vars)
}

func TestSolversAgreeWithEnumeration(t *testing.T) {
	corpus := []string{
		"p", "~p", "T", "F", "(p&~p)", "(p|~p)", "(p&F)", "(p|T)",
		"(p->q)", "(p+q)", "(p<->q)", "(p-&q)", "(p-|q)",
		"((p->q)->((q->r)->(p->r)))", "(p<->~p)", "~(p->p)",
		"((p|~q)&(r<->p))", "(p-&(q-|~r))", "((p+q)+(p+q))",
		"(((p->q)&(q->r))&~(p->r))",
	}
	for name, newSolver := range backends {
		for _, text := range corpus {
			f := formula.MustParse(text)
			assert.Equal(t, semantics.IsSatisfiable(f), Satisfiable(f, newSolver),
				"%s: %s", name, text)
			assert.Equal(t, !semantics.IsTautology(f), Satisfiable(formula.Not(f), newSolver),
				"%s: ~%s", name, text)
		}
	}
}

func TestWitness(t *testing.T) {
	for name, newSolver := range backends {
		for _, text := range []string{"(p&q)", "(p-|q)", "((p|~q)&(r<->p))", "(p+q)"} {
			f := formula.MustParse(text)
			m, ok := Witness(f, newSolver)
			require.True(t, ok, "%s: %s", name, text)
			assert.True(t, semantics.Evaluate(f, m), "%s: %s", name, text)
		}

		_, ok := Witness(formula.MustParse("(p&~p)"), newSolver)
		assert.False(t, ok, name)
	}
}

func TestTautology(t *testing.T) {
	for name, newSolver := range backends {
		assert.True(t, Tautology(formula.MustParse("((p->q)->((q->r)->(p->r)))"), newSolver), name)
		assert.True(t, Tautology(formula.MustParse("(p|~p)"), newSolver), name)
		assert.False(t, Tautology(formula.MustParse("(p->q)"), newSolver), name)
	}
}
