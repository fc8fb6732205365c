package main

import (
	"fmt"
	"slices"

	"hilbert/axioms"
	"hilbert/cores"
	"hilbert/deduction"
	"hilbert/derivation"
	"hilbert/formula"
	"hilbert/proof"
	"hilbert/sat"
	"hilbert/semantics"
	"hilbert/soundness"
)

func main() {
	table := formula.MustParse("~(p&q76)")
	fmt.Println("Truth table for", table)
	fmt.Print(semantics.FormatTruthTable(table))

	names := []string{"p", "q"}
	xor := []bool{false, true, true, false}
	fmt.Println("\nDNF synthesized from the xor table:", semantics.Synthesize(names, xor))
	fmt.Println("CNF synthesized from the xor table:", semantics.SynthesizeCNF(names, xor))

	taut := formula.MustParse("((p->q)->((q->r)->(p->r)))")
	fmt.Println("\nTautology by enumeration:", semantics.IsTautology(taut))
	fmt.Println("Tautology by gini:", sat.Tautology(taut, sat.NewGini))
	fmt.Println("Tautology by gophersat:", sat.Tautology(taut, sat.NewGopher))

	syllogism := proof.New(
		proof.InferenceRule{
			Assumptions: []*formula.Formula{
				formula.MustParse("(p->q)"),
				formula.MustParse("(q->r)"),
				formula.MustParse("p"),
			},
			Conclusion: formula.MustParse("r"),
		},
		proof.NewRuleSet(axioms.MP),
		[]proof.Line{
			proof.AssumptionLine(formula.MustParse("p")),
			proof.AssumptionLine(formula.MustParse("(p->q)")),
			proof.DerivedLine(formula.MustParse("q"), axioms.MP, 0, 1),
			proof.AssumptionLine(formula.MustParse("(q->r)")),
			proof.DerivedLine(formula.MustParse("r"), axioms.MP, 2, 3),
		},
	)
	fmt.Println("\nProof of", syllogism.Statement)
	fmt.Print(syllogism)

	removed := deduction.RemoveAssumption(syllogism)
	fmt.Println("\nAfter discharging the last assumption:", removed.Statement)
	fmt.Println("valid:", removed.IsValid())
	fmt.Println("replays in Prolog:", derivation.Check(removed))

	bogus := proof.InferenceRule{
		Assumptions: []*formula.Formula{formula.MustParse("(p->p)")},
		Conclusion:  formula.MustParse("q"),
	}
	rules := axioms.System.Clone()
	rules.Add(bogus)
	suspect := proof.New(
		proof.InferenceRule{Conclusion: formula.MustParse("q")},
		rules,
		[]proof.Line{
			proof.DerivedLine(formula.MustParse("(p->p)"), axioms.I0),
			proof.DerivedLine(formula.MustParse("q"), bogus, 0),
		},
	)
	unsound, counterexample := soundness.FindUnsoundRule(suspect, semantics.Model{"p": false, "q": false})
	fmt.Println("\nUnsound rule of the suspect proof:", unsound)
	fmt.Println("falsified by:", counterexample)

	enum := cores.ForFormulas([]*formula.Formula{
		formula.MustParse("p"),
		formula.MustParse("~p"),
		formula.MustParse("q"),
		formula.MustParse("~q"),
		formula.MustParse("(p|q)"),
	}, sat.NewGini)
	enum.Run()
	for _, conflict := range enum.Conflicts() {
		fmt.Println("\nConflict over formulas", conflict.Critical)
		for _, mus := range conflict.MUSs {
			fmt.Println("  unsatisfiable core:", sorted(mus))
		}
		for _, mcs := range conflict.MCSs {
			fmt.Println("  minimal correction:", sorted(mcs))
		}
	}
}

func sorted(s cores.IntSet) []int {
	ids := s.ToSlice()
	slices.Sort(ids)
	return ids
}
