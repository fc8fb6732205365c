// Package deduction builds new Hilbert-style proofs out of existing
// ones: weakening a conclusion, combining two proofs, discharging an
// assumption and refuting by contradiction. Every function returns a
// proof that is valid by construction.
package deduction

import (
	"slices"

	"hilbert/axioms"
	"hilbert/formula"
	"hilbert/proof"
)

// ProveCorollary converts a valid proof of some antecedent into a proof
// of consequent, given an assumptionless rule of which
// (antecedent->consequent) is a specialization. The result proves
// consequent from the same assumptions, via the same rules plus the
// conditional and modus ponens.
func ProveCorollary(antecedentProof *proof.Proof, consequent *formula.Formula, conditional proof.InferenceRule) *proof.Proof {
	if !antecedentProof.IsValid() {
		panic("antecedent proof is not valid")
	}
	antecedent := antecedentProof.Statement.Conclusion
	implication := formula.Implies(antecedent, consequent)
	instance := proof.InferenceRule{Conclusion: implication}
	if !instance.IsSpecializationOf(conditional) {
		panic("conditional does not generalize " + implication.String())
	}

	rules := antecedentProof.Rules.Clone()
	rules.Add(axioms.MP)
	rules.Add(conditional)

	lines := slices.Clone(antecedentProof.Lines)
	lines = append(lines, proof.DerivedLine(implication, conditional))
	lines = append(lines, proof.DerivedLine(consequent, axioms.MP, len(lines)-2, len(lines)-1))
	return proof.New(
		proof.InferenceRule{Assumptions: antecedentProof.Statement.Assumptions, Conclusion: consequent},
		rules, lines)
}

// CombineProofs merges valid proofs of two antecedents into a proof of
// consequent, given an assumptionless rule of which
// (antecedent1->(antecedent2->consequent)) is a specialization. Both
// proofs must share their assumptions and rule set; the second proof's
// references are shifted past the first proof's lines.
func CombineProofs(antecedent1Proof, antecedent2Proof *proof.Proof, consequent *formula.Formula, doubleConditional proof.InferenceRule) *proof.Proof {
	if !antecedent1Proof.IsValid() || !antecedent2Proof.IsValid() {
		panic("antecedent proof is not valid")
	}
	if !sameAssumptions(antecedent1Proof.Statement.Assumptions, antecedent2Proof.Statement.Assumptions) {
		panic("antecedent proofs assume different formulas")
	}
	if !antecedent1Proof.Rules.Equal(antecedent2Proof.Rules) {
		panic("antecedent proofs use different rule sets")
	}
	a1 := antecedent1Proof.Statement.Conclusion
	a2 := antecedent2Proof.Statement.Conclusion
	chained := formula.Implies(a1, formula.Implies(a2, consequent))
	instance := proof.InferenceRule{Conclusion: chained}
	if !instance.IsSpecializationOf(doubleConditional) {
		panic("double conditional does not generalize " + chained.String())
	}

	rules := antecedent1Proof.Rules.Clone()
	rules.Add(axioms.MP)
	rules.Add(doubleConditional)

	lines := slices.Clone(antecedent1Proof.Lines)
	shift := len(lines)
	for _, line := range antecedent2Proof.Lines {
		if line.IsAssumption() {
			lines = append(lines, line)
			continue
		}
		refs := make([]int, len(line.Refs))
		for i, ref := range line.Refs {
			refs[i] = ref + shift
		}
		lines = append(lines, proof.DerivedLine(line.Formula, *line.Rule, refs...))
	}
	idxA1 := shift - 1
	idxA2 := len(lines) - 1
	lines = append(lines, proof.DerivedLine(chained, doubleConditional))
	idxChained := len(lines) - 1
	lines = append(lines, proof.DerivedLine(formula.Implies(a2, consequent), axioms.MP, idxA1, idxChained))
	lines = append(lines, proof.DerivedLine(consequent, axioms.MP, idxA2, len(lines)-1))
	return proof.New(
		proof.InferenceRule{Assumptions: antecedent1Proof.Statement.Assumptions, Conclusion: consequent},
		rules, lines)
}

// RemoveAssumption applies the deduction theorem: a valid proof of a
// conclusion whose last assumption is psi becomes a proof of
// (psi->conclusion) from the remaining assumptions. Every rule of the
// given proof other than modus ponens must be assumptionless; the
// result additionally uses I0, I1, D and modus ponens.
//
// Each original line i maps to a block of new lines whose last line
// proves (psi->phi_i): the psi assumption itself becomes an I0
// instance, other assumptions and axiom instances are weakened through
// I1, and each modus ponens step is replayed under psi through D.
func RemoveAssumption(p *proof.Proof) *proof.Proof {
	if !p.IsValid() {
		panic("proof is not valid")
	}
	if len(p.Statement.Assumptions) == 0 {
		panic("proof has no assumption to remove")
	}
	assertAxiomatic(p.Rules)

	gamma := p.Statement.Assumptions[:len(p.Statement.Assumptions)-1]
	psi := p.Statement.Assumptions[len(p.Statement.Assumptions)-1]

	rules := p.Rules.Clone()
	rules.Add(axioms.MP)
	rules.Add(axioms.I0)
	rules.Add(axioms.I1)
	rules.Add(axioms.D)

	var lines []proof.Line
	mapping := make([]int, len(p.Lines))
	for i, line := range p.Lines {
		phi := line.Formula
		switch {
		case line.IsAssumption() && phi.Equal(psi):
			lines = append(lines, proof.DerivedLine(formula.Implies(psi, psi), axioms.I0))
		case line.IsAssumption() || len(line.Rule.Assumptions) == 0:
			lines = append(lines, line)
			lines = append(lines, proof.DerivedLine(
				formula.Implies(phi, formula.Implies(psi, phi)), axioms.I1))
			lines = append(lines, proof.DerivedLine(
				formula.Implies(psi, phi), axioms.MP, len(lines)-2, len(lines)-1))
		default:
			j, k := line.Refs[0], line.Refs[1]
			phiJ := p.Lines[j].Formula
			lines = append(lines, proof.DerivedLine(
				formula.Implies(
					formula.Implies(psi, formula.Implies(phiJ, phi)),
					formula.Implies(formula.Implies(psi, phiJ), formula.Implies(psi, phi))),
				axioms.D))
			lines = append(lines, proof.DerivedLine(
				formula.Implies(formula.Implies(psi, phiJ), formula.Implies(psi, phi)),
				axioms.MP, mapping[k], len(lines)-1))
			lines = append(lines, proof.DerivedLine(
				formula.Implies(psi, phi), axioms.MP, mapping[j], len(lines)-1))
		}
		mapping[i] = len(lines) - 1
	}
	return proof.New(
		proof.InferenceRule{Assumptions: gamma, Conclusion: formula.Implies(psi, p.Statement.Conclusion)},
		rules, lines)
}

// ProveFromOpposites combines a valid proof of a formula and a valid
// proof of its negation into a proof of an arbitrary conclusion from
// the same assumptions, via the same rules plus I2 and modus ponens.
func ProveFromOpposites(affirmationProof, negationProof *proof.Proof, conclusion *formula.Formula) *proof.Proof {
	if !affirmationProof.IsValid() || !negationProof.IsValid() {
		panic("opposite proof is not valid")
	}
	if !sameAssumptions(affirmationProof.Statement.Assumptions, negationProof.Statement.Assumptions) {
		panic("opposite proofs assume different formulas")
	}
	if !affirmationProof.Rules.Equal(negationProof.Rules) {
		panic("opposite proofs use different rule sets")
	}
	if !formula.Not(affirmationProof.Statement.Conclusion).Equal(negationProof.Statement.Conclusion) {
		panic("proofs do not prove opposite formulas")
	}
	return CombineProofs(negationProof, affirmationProof, conclusion, axioms.I2)
}

var refutation = formula.MustParse("~(p->p)")

// ProveByWayOfContradiction converts a valid proof of ~(p->p) whose
// last assumption has the form ~phi into a proof of phi from the
// remaining assumptions. Every rule of the given proof other than modus
// ponens must be assumptionless; the result additionally uses I0, I1,
// D, N and modus ponens.
func ProveByWayOfContradiction(p *proof.Proof) *proof.Proof {
	if !p.IsValid() {
		panic("proof is not valid")
	}
	if !p.Statement.Conclusion.Equal(refutation) {
		panic("proof does not conclude " + refutation.String())
	}
	if len(p.Statement.Assumptions) == 0 {
		panic("proof has no assumption to remove")
	}
	last := p.Statement.Assumptions[len(p.Statement.Assumptions)-1]
	if !formula.IsUnary(last.Root) {
		panic("last assumption is not a negation: " + last.String())
	}
	assertAxiomatic(p.Rules)

	removed := RemoveAssumption(p)
	phi := last.First
	identity := formula.Implies(formula.Var("p"), formula.Var("p"))

	rules := removed.Rules.Clone()
	rules.Add(axioms.N)

	lines := slices.Clone(removed.Lines)
	idxRemoved := len(lines) - 1
	nInstance := formula.Implies(
		formula.Implies(formula.Not(phi), formula.Not(identity)),
		formula.Implies(identity, phi))
	lines = append(lines, proof.DerivedLine(nInstance, axioms.N))
	idxN := len(lines) - 1
	lines = append(lines, proof.DerivedLine(formula.Implies(identity, phi), axioms.MP, idxRemoved, idxN))
	idxConditional := len(lines) - 1
	lines = append(lines, proof.DerivedLine(identity, axioms.I0))
	idxIdentity := len(lines) - 1
	lines = append(lines, proof.DerivedLine(phi, axioms.MP, idxIdentity, idxConditional))
	return proof.New(
		proof.InferenceRule{Assumptions: removed.Statement.Assumptions, Conclusion: phi},
		rules, lines)
}

func sameAssumptions(a, b []*formula.Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// assertAxiomatic panics unless every rule either is modus ponens or
// has no assumptions.
func assertAxiomatic(rules *proof.RuleSet) {
	for _, r := range rules.ToSlice() {
		if !r.Equal(axioms.MP) && len(r.Assumptions) != 0 {
			panic("rule with assumptions other than modus ponens: " + r.String())
		}
	}
}
