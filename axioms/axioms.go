// Package axioms fixes the rule schemas of the Hilbert-style axiomatic
// system. Every value here is a process-wide immutable constant; MP is
// the only rule that takes assumptions.
package axioms

import (
	"hilbert/formula"
	"hilbert/proof"
)

var (
	// MP: from p and (p->q), infer q.
	MP = proof.InferenceRule{
		Assumptions: []*formula.Formula{formula.MustParse("p"), formula.MustParse("(p->q)")},
		Conclusion:  formula.MustParse("q"),
	}

	// I0: reflexivity of implication.
	I0 = axiom("(p->p)")

	// I1: weakening, a true consequent makes any implication to it true.
	I1 = axiom("(q->(p->q))")

	// D: self-distribution of implication.
	D = axiom("((p->(q->r))->((p->q)->(p->r)))")

	// I2: explosion, a refuted antecedent proves anything.
	I2 = axiom("(~p->(p->q))")

	// N: double-negation elimination via contraposition.
	N = axiom("((~q->~p)->(p->q))")
)

// System is the standard axiomatic system targeted by the deduction
// helpers: MP plus the schemas proofs by way of contradiction end up
// using. Explosion stays outside; only proofs from opposites need it.
var System = proof.NewRuleSet(MP, I0, I1, D, N)

func axiom(conclusion string) proof.InferenceRule {
	return proof.InferenceRule{Conclusion: formula.MustParse(conclusion)}
}
