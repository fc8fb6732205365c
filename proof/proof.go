package proof

import (
	"fmt"
	"slices"
	"strings"

	"hilbert/formula"
	"hilbert/graph"
)

// Line is one step of a proof: either an assumption line restating one
// of the proof's declared assumptions, or a derived line justified by a
// rule specialization applied to strictly earlier lines. Refs are
// absolute indices into the proof's line sequence.
type Line struct {
	Formula *formula.Formula
	Rule    *InferenceRule
	Refs    []int
}

func AssumptionLine(f *formula.Formula) Line {
	return Line{Formula: f}
}

func DerivedLine(f *formula.Formula, rule InferenceRule, refs ...int) Line {
	return Line{Formula: f, Rule: &rule, Refs: slices.Clone(refs)}
}

func (l Line) IsAssumption() bool {
	return l.Rule == nil
}

func (l Line) String() string {
	if l.IsAssumption() {
		return l.Formula.String() + "    (assumption)"
	}
	if len(l.Refs) == 0 {
		return fmt.Sprintf("%s    by %s", l.Formula, *l.Rule)
	}
	return fmt.Sprintf("%s    by %s on %v", l.Formula, *l.Rule, l.Refs)
}

// Proof derives the conclusion of its statement from the statement's
// assumptions, one line at a time, using specializations of the
// permitted rules. Transformations never mutate a proof; they build new
// line sequences and rule sets, sharing the read-only formulas.
type Proof struct {
	Statement InferenceRule
	Rules     *RuleSet
	Lines     []Line
}

func New(statement InferenceRule, rules *RuleSet, lines []Line) *Proof {
	return &Proof{Statement: statement, Rules: rules, Lines: lines}
}

func (p *Proof) String() string {
	var b strings.Builder
	b.WriteString("Proof of " + p.Statement.String() + " via rules:\n")
	for _, r := range p.Rules.ToSlice() {
		b.WriteString("  " + r.String() + "\n")
	}
	b.WriteString("Lines:\n")
	for i, line := range p.Lines {
		fmt.Fprintf(&b, "  %d) %s\n", i, line)
	}
	return b.String()
}

// RuleForLine returns the rule specialization that line i claims to
// apply: its assumptions are the formulas of the referenced lines in
// order, its conclusion the line's own formula. Reports false for
// assumption lines.
func (p *Proof) RuleForLine(i int) (InferenceRule, bool) {
	line := p.Lines[i]
	if line.IsAssumption() {
		return InferenceRule{}, false
	}
	assumptions := make([]*formula.Formula, len(line.Refs))
	for j, ref := range line.Refs {
		assumptions[j] = p.Lines[ref].Formula
	}
	return InferenceRule{Assumptions: assumptions, Conclusion: line.Formula}, true
}

// IsLineValid checks line i in isolation: an assumption line must
// restate a declared assumption; a derived line must use a permitted
// rule, reference only strictly earlier lines, and claim a genuine
// specialization of that rule.
func (p *Proof) IsLineValid(i int) bool {
	line := p.Lines[i]
	if line.IsAssumption() {
		for _, a := range p.Statement.Assumptions {
			if line.Formula.Equal(a) {
				return true
			}
		}
		return false
	}
	if !p.Rules.Contains(*line.Rule) {
		return false
	}
	for _, ref := range line.Refs {
		if ref < 0 || ref >= i {
			return false
		}
	}
	specialization, _ := p.RuleForLine(i)
	return specialization.IsSpecializationOf(*line.Rule)
}

// IsValid reports whether every line checks out and the last line
// proves the statement's conclusion.
func (p *Proof) IsValid() bool {
	if len(p.Lines) == 0 {
		return false
	}
	for i := range p.Lines {
		if !p.IsLineValid(i) {
			return false
		}
	}
	return p.Lines[len(p.Lines)-1].Formula.Equal(p.Statement.Conclusion)
}

// Specialize turns a proof of a general statement into a proof of the
// given specialization by pushing the witness substitution through every
// line; rules and references are untouched, so validity carries over.
// Panics unless specialization really specializes the statement.
func (p *Proof) Specialize(specialization InferenceRule) *Proof {
	sub, ok := p.Statement.SpecializationMap(specialization)
	if !ok {
		panic("not a specialization of the proof statement: " + specialization.String())
	}
	lines := make([]Line, len(p.Lines))
	for i, line := range p.Lines {
		lines[i] = Line{
			Formula: line.Formula.SubstituteVariables(sub),
			Rule:    line.Rule,
			Refs:    slices.Clone(line.Refs),
		}
	}
	return New(specialization, p.Rules.Clone(), lines)
}

// Prune drops every line the conclusion does not depend on, renumbering
// the remaining references. The proof must be valid; the result proves
// the same statement with the same rules.
func (p *Proof) Prune() *Proof {
	if !p.IsValid() {
		panic("pruning an invalid proof")
	}
	dag := graph.NewDigraph(len(p.Lines))
	for i, line := range p.Lines {
		for _, ref := range line.Refs {
			dag.AddEdge(i, ref)
		}
	}
	reachable := dag.Reachable(len(p.Lines) - 1)

	mapping := make(map[int]int, len(p.Lines))
	lines := make([]Line, 0, len(p.Lines))
	for i, line := range p.Lines {
		if !reachable[i] {
			continue
		}
		refs := make([]int, len(line.Refs))
		for j, ref := range line.Refs {
			refs[j] = mapping[ref]
		}
		mapping[i] = len(lines)
		lines = append(lines, Line{Formula: line.Formula, Rule: line.Rule, Refs: refs})
	}
	return New(p.Statement, p.Rules.Clone(), lines)
}
