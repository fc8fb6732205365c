package formula

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// IsVariable reports whether s is a variable name: a letter in 'p'..'z'
// optionally followed by digits.
func IsVariable(s string) bool {
	if len(s) == 0 || s[0] < 'p' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func IsConstant(s string) bool {
	return s == "T" || s == "F"
}

func IsUnary(s string) bool {
	return s == "~"
}

func IsBinary(s string) bool {
	switch s {
	case "&", "|", "->", "+", "<->", "-&", "-|":
		return true
	}
	return false
}

// Formula is an immutable propositional formula. Root is a constant, a
// variable name, the negation operator or a binary operator; First and
// Second are the operands where the root takes any. Formulas are shared
// freely and never mutated after construction.
type Formula struct {
	Root   string
	First  *Formula
	Second *Formula
}

func Var(name string) *Formula {
	if !IsVariable(name) {
		panic("not a variable name: " + name)
	}
	return &Formula{Root: name}
}

func Const(value bool) *Formula {
	if value {
		return &Formula{Root: "T"}
	}
	return &Formula{Root: "F"}
}

func Not(f *Formula) *Formula {
	if f == nil {
		panic("negation of a nil formula")
	}
	return &Formula{Root: "~", First: f}
}

func Binary(op string, first, second *Formula) *Formula {
	if !IsBinary(op) {
		panic("not a binary operator: " + op)
	}
	if first == nil || second == nil {
		panic("binary formula with a nil operand")
	}
	return &Formula{Root: op, First: first, Second: second}
}

// Implies builds (antecedent->consequent). The deduction machinery leans
// on it heavily.
func Implies(antecedent, consequent *Formula) *Formula {
	return Binary("->", antecedent, consequent)
}

// String renders the canonical form: every binary application fully
// parenthesized, no whitespace. Parse inverts it exactly.
func (f *Formula) String() string {
	switch {
	case IsUnary(f.Root):
		return "~" + f.First.String()
	case IsBinary(f.Root):
		return "(" + f.First.String() + f.Root + f.Second.String() + ")"
	default:
		return f.Root
	}
}

// Equal reports structural equality.
func (f *Formula) Equal(other *Formula) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Root == other.Root && f.First.Equal(other.First) && f.Second.Equal(other.Second)
}

// Variables returns the set of variable names occurring in the formula.
func (f *Formula) Variables() mapset.Set[string] {
	vars := mapset.NewSet[string]()
	f.collectVariables(vars)
	return vars
}

func (f *Formula) collectVariables(vars mapset.Set[string]) {
	switch {
	case IsVariable(f.Root):
		vars.Add(f.Root)
	case IsUnary(f.Root):
		f.First.collectVariables(vars)
	case IsBinary(f.Root):
		f.First.collectVariables(vars)
		f.Second.collectVariables(vars)
	}
}

// Operators returns the set of operators used in the formula; the
// constants T and F count as operators.
func (f *Formula) Operators() mapset.Set[string] {
	ops := mapset.NewSet[string]()
	f.collectOperators(ops)
	return ops
}

func (f *Formula) collectOperators(ops mapset.Set[string]) {
	switch {
	case IsConstant(f.Root):
		ops.Add(f.Root)
	case IsUnary(f.Root):
		ops.Add(f.Root)
		f.First.collectOperators(ops)
	case IsBinary(f.Root):
		ops.Add(f.Root)
		f.First.collectOperators(ops)
		f.Second.collectOperators(ops)
	}
}
