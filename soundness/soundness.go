// Package soundness turns a counterexample against a proven statement
// into a counterexample against one of the rules its proof invoked.
package soundness

import (
	"hilbert/proof"
	"hilbert/semantics"
)

// GeneralizeCounterexample lifts a model that falsifies a specialized
// rule to a model that falsifies the general rule it specializes: each
// variable of the general rule is assigned the truth value, in m, of
// the formula substituted for it. Panics unless specialization is a
// specialization of general and m falsifies specialization.
func GeneralizeCounterexample(general, specialization proof.InferenceRule, m semantics.Model) semantics.Model {
	sub, ok := general.SpecializationMap(specialization)
	if !ok {
		panic("not a specialization of the general rule")
	}
	if semantics.EvaluateInference(specialization, m) {
		panic("model does not falsify the specialized rule")
	}
	counterexample := make(semantics.Model, len(sub))
	for name, f := range sub {
		counterexample[name] = semantics.Evaluate(f, m)
	}
	return counterexample
}

// FindUnsoundRule returns a rule of p that is not sound, together with
// a model falsifying it. The proof must be valid, its statement must
// fail in m, and m must cover every variable occurring in the proof's
// lines. The first line whose formula evaluates to false pinpoints the
// culprit rule invocation.
func FindUnsoundRule(p *proof.Proof, m semantics.Model) (proof.InferenceRule, semantics.Model) {
	if !p.IsValid() {
		panic("proof is not valid")
	}
	if semantics.EvaluateInference(p.Statement, m) {
		panic("model does not falsify the proven statement")
	}
	for i, line := range p.Lines {
		if semantics.Evaluate(line.Formula, m) {
			continue
		}
		if line.IsAssumption() {
			// An assumption of a falsified statement holds in the model.
			panic("assumption fails in the model")
		}
		specialization, _ := p.RuleForLine(i)
		return *line.Rule, GeneralizeCounterexample(*line.Rule, specialization, m)
	}
	panic("no line fails in the model")
}
