package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"

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

func TestEvaluateInference(t *testing.T) {
	type testcase struct {
		assumptions []string
		conclusion  string
		model       Model
		want        bool
	}
	cases := []testcase{
		{[]string{"p", "(p->q)"}, "q", Model{"p": true, "q": true}, true},
		{[]string{"p", "(p->q)"}, "q", Model{"p": false, "q": false}, true},
		{[]string{"(p|q)"}, "p", Model{"p": false, "q": true}, false},
		{[]string{"~p"}, "q", Model{"p": true, "q": false}, true},
		{nil, "(p->p)", Model{"p": false}, true},
		{nil, "p", Model{"p": false}, false},
	}
	for _, tc := range cases {
		r := rule(tc.assumptions, tc.conclusion)
		assert.Equal(t, tc.want, EvaluateInference(r, tc.model), r.String())
	}
}

func TestIsSoundInference(t *testing.T) {
	type testcase struct {
		assumptions []string
		conclusion  string
		sound       bool
	}
	cases := []testcase{
		{[]string{"p", "(p->q)"}, "q", true},
		{[]string{"p"}, "(p|q)", true},
		{[]string{"(p&q)"}, "p", true},
		{[]string{"(p|q)"}, "p", false},
		{nil, "(p->p)", true},
		{nil, "p", false},
		{[]string{"(p->q)", "(q->r)"}, "(p->r)", true},
		{[]string{"(p->q)"}, "(q->p)", false},
		{[]string{"p", "~p"}, "q", true},
	}
	for _, tc := range cases {
		r := rule(tc.assumptions, tc.conclusion)
		assert.Equal(t, tc.sound, IsSoundInference(r), r.String())
	}
}

func TestAxiomaticSystemIsSound(t *testing.T) {
	for _, axiom := range axioms.System.ToSlice() {
		assert.True(t, IsSoundInference(axiom), axiom.String())
	}
	assert.True(t, IsSoundInference(axioms.I1))
	assert.True(t, IsSoundInference(axioms.I2))
}
