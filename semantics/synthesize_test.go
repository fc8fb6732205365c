package semantics

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"

	"hilbert/formula"
)

func TestSynthesizeShape(t *testing.T) {
	// Exclusive or: true exactly where p and q disagree.
	f := Synthesize([]string{"p", "q"}, []bool{false, true, true, false})
	assert.Equal(t, "((~p&q)|(p&~q))", f.String())

	f = Synthesize([]string{"p"}, []bool{true, false})
	assert.Equal(t, "~p", f.String())

	// No satisfying model: a fixed contradiction over the first variable.
	f = Synthesize([]string{"p", "q"}, []bool{false, false, false, false})
	assert.Equal(t, "(p&~p)", f.String())
}

func TestSynthesizeCNFShape(t *testing.T) {
	f := SynthesizeCNF([]string{"p", "q"}, []bool{false, true, true, false})
	assert.Equal(t, "((p|q)&(~p|~q))", f.String())

	f = SynthesizeCNF([]string{"p"}, []bool{true, false})
	assert.Equal(t, "~p", f.String())

	// No falsifying model: a fixed tautology over the first variable.
	f = SynthesizeCNF([]string{"p", "q"}, []bool{true, true, true, true})
	assert.Equal(t, "(p|~p)", f.String())
}

func TestSynthesizeMatchesTable(t *testing.T) {
	dnfOps := mapset.NewSet("~", "&", "|")
	corpus := []string{
		"(p&q)", "(p|q)", "(p->q)", "(p+q)", "(p<->q)", "(p-&q)", "(p-|q)",
		"~(p&q76)", "((p->q)->r)", "(p->(q->p))", "((p|~q)&(r<->p))",
		"(p-&(q-|~r))",
	}
	for _, text := range corpus {
		f := formula.MustParse(text)
		names := sortedVariables(f)
		values := TruthValues(f, AllModels(names))

		dnf := Synthesize(names, values)
		assert.Equal(t, values, TruthValues(dnf, AllModels(names)), text)
		assert.True(t, dnf.Operators().IsSubset(dnfOps), dnf.String())

		cnf := SynthesizeCNF(names, values)
		assert.Equal(t, values, TruthValues(cnf, AllModels(names)), text)
		assert.True(t, cnf.Operators().IsSubset(dnfOps), cnf.String())
	}
}

func TestSynthesizePanics(t *testing.T) {
	assert.Panics(t, func() { Synthesize(nil, nil) })
	assert.Panics(t, func() { Synthesize([]string{"p"}, []bool{true}) })
	assert.Panics(t, func() { SynthesizeCNF(nil, nil) })
	assert.Panics(t, func() { SynthesizeCNF([]string{"p"}, []bool{true, false, true}) })
}
