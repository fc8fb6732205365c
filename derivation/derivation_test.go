package derivation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hilbert/axioms"
	"hilbert/formula"
	"hilbert/proof"
)

func rule(assumptions []string, conclusion string) proof.InferenceRule {
	parsed := make([]*formula.Formula, len(assumptions))
	for i, a := range assumptions {
		parsed[i] = formula.MustParse(a)
	}
	return proof.InferenceRule{Assumptions: parsed, Conclusion: formula.MustParse(conclusion)}
}

func modusPonensProof() *proof.Proof {
	return proof.New(
		rule([]string{"p", "(p->q)"}, "q"),
		proof.NewRuleSet(axioms.MP),
		[]proof.Line{
			proof.AssumptionLine(formula.MustParse("p")),
			proof.AssumptionLine(formula.MustParse("(p->q)")),
			proof.DerivedLine(formula.MustParse("q"), axioms.MP, 0, 1),
		},
	)
}

func TestTerm(t *testing.T) {
	type testcase struct {
		text string
		term string
	}
	cases := []testcase{
		{"p", "p"},
		{"q76", "q76"},
		{"T", "t"},
		{"F", "f"},
		{"~p", "not(p)"},
		{"(p&q)", "and(p, q)"},
		{"(p|q)", "or(p, q)"},
		{"(p->q)", "imp(p, q)"},
		{"(p+q)", "xor(p, q)"},
		{"(p<->q)", "iff(p, q)"},
		{"(p-&q)", "nand(p, q)"},
		{"(p-|q)", "nor(p, q)"},
		{"~(p->~r)", "not(imp(p, not(r)))"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.term, Term(formula.MustParse(tc.text)), tc.text)
	}
}

func TestRender(t *testing.T) {
	program := Render(modusPonensProof())
	for _, fact := range []string{
		"line(0, p).",
		"line(1, imp(p, q)).",
		"line(2, q).",
		"assumption(0).",
		"assumption(1).",
		"step(2, [0, 1]).",
		"derivable(I) :- assumption(I).",
	} {
		assert.True(t, strings.Contains(program, fact), fact)
	}
}

func TestCheckValidProof(t *testing.T) {
	p := modusPonensProof()
	require.True(t, p.IsValid())
	assert.True(t, Check(p))
}

func TestCheckBrokenReference(t *testing.T) {
	p := proof.New(
		rule([]string{"p", "(p->q)"}, "q"),
		proof.NewRuleSet(axioms.MP),
		[]proof.Line{
			proof.AssumptionLine(formula.MustParse("p")),
			proof.AssumptionLine(formula.MustParse("(p->q)")),
			proof.DerivedLine(formula.MustParse("q"), axioms.MP, 0, 5),
		},
	)
	require.False(t, p.IsValid())
	assert.False(t, Check(p))
}

func TestCheckConclusionMismatch(t *testing.T) {
	p := proof.New(
		rule([]string{"p", "(p->q)"}, "(q|q)"),
		proof.NewRuleSet(axioms.MP),
		[]proof.Line{
			proof.AssumptionLine(formula.MustParse("p")),
			proof.AssumptionLine(formula.MustParse("(p->q)")),
			proof.DerivedLine(formula.MustParse("q"), axioms.MP, 0, 1),
		},
	)
	assert.False(t, Check(p))
}

// The replay follows references declaratively, so a line may use a
// later line even though the sequential check rejects that.
func TestCheckForwardReference(t *testing.T) {
	bomb := rule(nil, "(p->q)")
	repeat := rule([]string{"p"}, "p")
	p := proof.New(
		rule([]string{"p"}, "q"),
		proof.NewRuleSet(axioms.MP, bomb, repeat),
		[]proof.Line{
			proof.AssumptionLine(formula.MustParse("p")),
			proof.DerivedLine(formula.MustParse("q"), axioms.MP, 0, 2),
			proof.DerivedLine(formula.MustParse("(p->q)"), bomb),
			proof.DerivedLine(formula.MustParse("q"), repeat, 1),
		},
	)
	require.False(t, p.IsValid())
	assert.True(t, Check(p))
}

func TestCheckEmptyProof(t *testing.T) {
	p := proof.New(rule(nil, "p"), proof.NewRuleSet(), nil)
	assert.False(t, Check(p))
}

func TestConsultAndSolve(t *testing.T) {
	program := Render(modusPonensProof())
	bindings, ok := NewLogic().ConsultAndSolve(program, "line(I, q), derivable(I).")
	require.True(t, ok)
	assert.Equal(t, "2", bindings["I"])

	_, ok = NewLogic().ConsultAndSolve(program, "line(I, r).")
	assert.False(t, ok)
}
