package semantics

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"hilbert/formula"
)

// Model assigns a truth value to every variable in its domain.
type Model map[string]bool

// IsModel reports whether every key is a variable name.
func IsModel(m Model) bool {
	for name := range m {
		if !formula.IsVariable(name) {
			return false
		}
	}
	return true
}

// Evaluate computes the truth value of f in m. The model's domain must
// cover every variable of f; anything else is a contract violation and
// panics.
func Evaluate(f *formula.Formula, m Model) bool {
	if !IsModel(m) {
		panic("model keys must be variable names")
	}
	return eval(f, m)
}

func eval(f *formula.Formula, m Model) bool {
	switch {
	case formula.IsConstant(f.Root):
		return f.Root == "T"
	case formula.IsVariable(f.Root):
		value, ok := m[f.Root]
		if !ok {
			panic("model does not assign variable " + f.Root)
		}
		return value
	case formula.IsUnary(f.Root):
		return !eval(f.First, m)
	}
	first := eval(f.First, m)
	second := eval(f.Second, m)
	switch f.Root {
	case "&":
		return first && second
	case "|":
		return first || second
	case "->":
		return !first || second
	case "+":
		return first != second
	case "<->":
		return first == second
	case "-&":
		return !(first && second)
	case "-|":
		return !(first || second)
	}
	panic("unknown operator " + f.Root)
}

// AllModels enumerates every assignment over names: 2^n models in
// lexicographic order, the first name most significant and false before
// true. Each model is a fresh map the caller may keep; the sequence is
// lazy and restarts on every range.
func AllModels(names []string) iter.Seq[Model] {
	for _, name := range names {
		if !formula.IsVariable(name) {
			panic("not a variable name: " + name)
		}
	}
	n := len(names)
	return func(yield func(Model) bool) {
		for i := 0; i < 1<<uint(n); i++ {
			m := make(Model, n)
			for j, name := range names {
				m[name] = i>>uint(n-1-j)&1 == 1
			}
			if !yield(m) {
				return
			}
		}
	}
}

// TruthValues evaluates f in each of the given models, in order.
func TruthValues(f *formula.Formula, models iter.Seq[Model]) []bool {
	values := make([]bool, 0)
	for m := range models {
		values = append(values, Evaluate(f, m))
	}
	return values
}

// FormatTruthTable renders the truth table of f with variable columns
// sorted alphabetically:
//
//	| p | q76 | ~(p&q76) |
//	|---|-----|----------|
//	| F | F   | T        |
//	| F | T   | T        |
//	| T | F   | T        |
//	| T | T   | F        |
func FormatTruthTable(f *formula.Formula) string {
	names := sortedVariables(f)
	text := f.String()

	var b strings.Builder
	b.WriteString("|")
	for _, name := range names {
		b.WriteString(" " + name + " |")
	}
	b.WriteString(" " + text + " |\n|")
	for _, name := range names {
		b.WriteString(strings.Repeat("-", len(name)+2) + "|")
	}
	b.WriteString(strings.Repeat("-", len(text)+2) + "|\n")

	for m := range AllModels(names) {
		b.WriteString("|")
		for _, name := range names {
			fmt.Fprintf(&b, " %-*s |", len(name), cell(m[name]))
		}
		fmt.Fprintf(&b, " %-*s |\n", len(text), cell(Evaluate(f, m)))
	}
	return b.String()
}

func cell(value bool) string {
	if value {
		return "T"
	}
	return "F"
}

// IsTautology reports whether f holds in every model over its
// variables, by exhaustive enumeration.
func IsTautology(f *formula.Formula) bool {
	for m := range AllModels(sortedVariables(f)) {
		if !Evaluate(f, m) {
			return false
		}
	}
	return true
}

func IsContradiction(f *formula.Formula) bool {
	for m := range AllModels(sortedVariables(f)) {
		if Evaluate(f, m) {
			return false
		}
	}
	return true
}

func IsSatisfiable(f *formula.Formula) bool {
	return !IsContradiction(f)
}

func sortedVariables(f *formula.Formula) []string {
	names := f.Variables().ToSlice()
	slices.Sort(names)
	return names
}
