package proof

import (
	"maps"
	"slices"
)

// RuleSet is a set of inference rules. Rules hold slices and therefore
// cannot key a Go map directly; the set is keyed by the canonical string
// form instead, which coincides with structural equality.
type RuleSet struct {
	rules map[string]InferenceRule
}

func NewRuleSet(rules ...InferenceRule) *RuleSet {
	s := &RuleSet{rules: make(map[string]InferenceRule, len(rules))}
	for _, r := range rules {
		s.Add(r)
	}
	return s
}

func (s *RuleSet) Add(r InferenceRule) {
	s.rules[r.String()] = r
}

func (s *RuleSet) Contains(r InferenceRule) bool {
	_, ok := s.rules[r.String()]
	return ok
}

func (s *RuleSet) Len() int {
	return len(s.rules)
}

func (s *RuleSet) Clone() *RuleSet {
	return &RuleSet{rules: maps.Clone(s.rules)}
}

// Union returns a new set holding the rules of both operands; neither
// operand is modified.
func (s *RuleSet) Union(other *RuleSet) *RuleSet {
	merged := s.Clone()
	for _, r := range other.rules {
		merged.Add(r)
	}
	return merged
}

func (s *RuleSet) Equal(other *RuleSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for key := range s.rules {
		if _, ok := other.rules[key]; !ok {
			return false
		}
	}
	return true
}

// ToSlice returns the rules sorted by their canonical string form.
func (s *RuleSet) ToSlice() []InferenceRule {
	keys := slices.Sorted(maps.Keys(s.rules))
	rules := make([]InferenceRule, len(keys))
	for i, key := range keys {
		rules[i] = s.rules[key]
	}
	return rules
}
