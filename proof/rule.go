package proof

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"hilbert/formula"
)

// InferenceRule pairs an ordered list of assumption formulas with a
// conclusion. Rules are values and are never mutated; a rule with free
// variables stands for every specialization of itself.
type InferenceRule struct {
	Assumptions []*formula.Formula
	Conclusion  *formula.Formula
}

func (r InferenceRule) String() string {
	parts := make([]string, len(r.Assumptions))
	for i, a := range r.Assumptions {
		parts[i] = a.String()
	}
	return "[" + strings.Join(parts, ", ") + "] ==> " + r.Conclusion.String()
}

func (r InferenceRule) Equal(other InferenceRule) bool {
	if len(r.Assumptions) != len(other.Assumptions) {
		return false
	}
	for i := range r.Assumptions {
		if !r.Assumptions[i].Equal(other.Assumptions[i]) {
			return false
		}
	}
	return r.Conclusion.Equal(other.Conclusion)
}

// Variables returns the set of variable names occurring anywhere in the
// rule.
func (r InferenceRule) Variables() mapset.Set[string] {
	vars := mapset.NewSet[string]()
	for _, a := range r.Assumptions {
		vars = vars.Union(a.Variables())
	}
	return vars.Union(r.Conclusion.Variables())
}

// SpecializationMap maps variable names of a general rule to the
// formulas substituted for them in a specialization.
type SpecializationMap map[string]*formula.Formula

// Specialize applies the substitution uniformly to every assumption and
// the conclusion.
func (r InferenceRule) Specialize(sub SpecializationMap) InferenceRule {
	assumptions := make([]*formula.Formula, len(r.Assumptions))
	for i, a := range r.Assumptions {
		assumptions[i] = a.SubstituteVariables(sub)
	}
	return InferenceRule{
		Assumptions: assumptions,
		Conclusion:  r.Conclusion.SubstituteVariables(sub),
	}
}

// mergeSpecializationMaps combines two substitutions, failing when they
// disagree on a shared variable.
func mergeSpecializationMaps(m1, m2 SpecializationMap) (SpecializationMap, bool) {
	merged := make(SpecializationMap, len(m1)+len(m2))
	for name, f := range m1 {
		merged[name] = f
	}
	for name, f := range m2 {
		if existing, ok := merged[name]; ok && !existing.Equal(f) {
			return nil, false
		}
		merged[name] = f
	}
	return merged, true
}

// formulaSpecializationMap finds the substitution turning general into
// specialization, matching the two trees node by node.
func formulaSpecializationMap(general, specialization *formula.Formula) (SpecializationMap, bool) {
	switch {
	case formula.IsVariable(general.Root):
		return SpecializationMap{general.Root: specialization}, true
	case formula.IsConstant(general.Root):
		if general.Root == specialization.Root {
			return SpecializationMap{}, true
		}
		return nil, false
	case formula.IsUnary(general.Root):
		if specialization.Root != general.Root {
			return nil, false
		}
		return formulaSpecializationMap(general.First, specialization.First)
	default:
		if specialization.Root != general.Root {
			return nil, false
		}
		first, ok := formulaSpecializationMap(general.First, specialization.First)
		if !ok {
			return nil, false
		}
		second, ok := formulaSpecializationMap(general.Second, specialization.Second)
		if !ok {
			return nil, false
		}
		return mergeSpecializationMaps(first, second)
	}
}

// SpecializationMap computes the substitution that turns the receiver
// into the given specialization. The substitution must be consistent
// across every assumption pair and the conclusion pair; assumption
// counts must agree.
func (r InferenceRule) SpecializationMap(specialization InferenceRule) (SpecializationMap, bool) {
	if len(r.Assumptions) != len(specialization.Assumptions) {
		return nil, false
	}
	merged := SpecializationMap{}
	for i := range r.Assumptions {
		m, ok := formulaSpecializationMap(r.Assumptions[i], specialization.Assumptions[i])
		if !ok {
			return nil, false
		}
		if merged, ok = mergeSpecializationMaps(merged, m); !ok {
			return nil, false
		}
	}
	m, ok := formulaSpecializationMap(r.Conclusion, specialization.Conclusion)
	if !ok {
		return nil, false
	}
	return mergeSpecializationMaps(merged, m)
}

func (r InferenceRule) IsSpecializationOf(general InferenceRule) bool {
	_, ok := general.SpecializationMap(r)
	return ok
}
