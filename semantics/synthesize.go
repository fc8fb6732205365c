package semantics

import (
	"fmt"
	"slices"

	"hilbert/formula"
)

// clauseForModel builds the conjunction of literals that holds in m and
// in no other model over names: each variable in order, negated where m
// assigns it false.
func clauseForModel(names []string, m Model) *formula.Formula {
	var clause *formula.Formula
	for _, name := range names {
		literal := formula.Var(name)
		if !m[name] {
			literal = formula.Not(literal)
		}
		if clause == nil {
			clause = literal
		} else {
			clause = formula.Binary("&", clause, literal)
		}
	}
	return clause
}

// Synthesize builds a DNF formula over names whose truth table is
// exactly values, where values[i] is the desired truth value in the
// i-th model of AllModels(names). A table that is false everywhere
// yields the contradiction (v&~v) over the first name.
func Synthesize(names []string, values []bool) *formula.Formula {
	if len(names) == 0 {
		panic("synthesis needs at least one variable")
	}
	models := slices.Collect(AllModels(names))
	if len(values) != len(models) {
		panic(fmt.Sprintf("need %d truth values, got %d", len(models), len(values)))
	}

	var result *formula.Formula
	for i, m := range models {
		if !values[i] {
			continue
		}
		clause := clauseForModel(names, m)
		if result == nil {
			result = clause
		} else {
			result = formula.Binary("|", result, clause)
		}
	}
	if result == nil {
		v := formula.Var(names[0])
		return formula.Binary("&", v, formula.Not(v))
	}
	return result
}

// clauseForAllExceptModel builds the disjunction of literals that fails
// in m and holds in every other model over names: each variable in
// order, negated where m assigns it true.
func clauseForAllExceptModel(names []string, m Model) *formula.Formula {
	var clause *formula.Formula
	for _, name := range names {
		literal := formula.Var(name)
		if m[name] {
			literal = formula.Not(literal)
		}
		if clause == nil {
			clause = literal
		} else {
			clause = formula.Binary("|", clause, literal)
		}
	}
	return clause
}

// SynthesizeCNF is the dual of Synthesize: it builds a CNF formula over
// names whose truth table is exactly values, conjoining one clause per
// falsifying model. A table that is true everywhere yields the
// tautology (v|~v) over the first name.
func SynthesizeCNF(names []string, values []bool) *formula.Formula {
	if len(names) == 0 {
		panic("synthesis needs at least one variable")
	}
	models := slices.Collect(AllModels(names))
	if len(values) != len(models) {
		panic(fmt.Sprintf("need %d truth values, got %d", len(models), len(values)))
	}

	var result *formula.Formula
	for i, m := range models {
		if values[i] {
			continue
		}
		clause := clauseForAllExceptModel(names, m)
		if result == nil {
			result = clause
		} else {
			result = formula.Binary("&", result, clause)
		}
	}
	if result == nil {
		v := formula.Var(names[0])
		return formula.Binary("|", v, formula.Not(v))
	}
	return result
}
