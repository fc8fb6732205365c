package semantics

import (
	"slices"

	"hilbert/proof"
)

// EvaluateInference reports whether rule holds in m: either some
// assumption evaluates to false, or the conclusion evaluates to true.
// The model's domain must cover the rule's variables.
func EvaluateInference(rule proof.InferenceRule, m Model) bool {
	for _, assumption := range rule.Assumptions {
		if !Evaluate(assumption, m) {
			return true
		}
	}
	return Evaluate(rule.Conclusion, m)
}

// IsSoundInference reports whether rule holds in every model over its
// variables, i.e. whether no assignment satisfies all assumptions while
// falsifying the conclusion.
func IsSoundInference(rule proof.InferenceRule) bool {
	names := rule.Variables().ToSlice()
	slices.Sort(names)
	for m := range AllModels(names) {
		if !EvaluateInference(rule, m) {
			return false
		}
	}
	return true
}
