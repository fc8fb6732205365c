package cores

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hilbert/formula"
	"hilbert/sat"
)

func parseAll(texts ...string) []*formula.Formula {
	parsed := make([]*formula.Formula, len(texts))
	for i, text := range texts {
		parsed[i] = formula.MustParse(text)
	}
	return parsed
}

func sortedSlice(s IntSet) []int {
	ids := s.ToSlice()
	slices.Sort(ids)
	return ids
}

// sortedSets canonicalizes a family of sets for comparison, since
// discovery order is not deterministic.
func sortedSets(sets []IntSet) [][]int {
	out := make([][]int, 0, len(sets))
	for _, s := range sets {
		out = append(out, sortedSlice(s))
	}
	slices.SortFunc(out, slices.Compare)
	return out
}

func TestEnumeratorClauseSelectors(t *testing.T) {
	clauses := []sat.Clause{{1}, {-1}, {2}, {-2}, {1, 2}}
	satFunc := func(ids []int) bool {
		s := sat.NewGini(2)
		for _, id := range ids {
			s.AddClause(clauses[id-1])
		}
		return s.Solve()
	}
	enum := NewEnumerator([]int{1, 2, 3, 4, 5}, satFunc)
	enum.Run()
	assert.Equal(t, [][]int{{1, 2}, {2, 4, 5}, {3, 4}}, sortedSets(enum.MUSs))
}

func TestEnumeratorFormulas(t *testing.T) {
	enum := ForFormulas(parseAll("p", "~p", "q", "~q", "(p|q)"), sat.NewGini)
	enum.Run()

	assert.Equal(t, [][]int{{1, 2}, {2, 4, 5}, {3, 4}}, sortedSets(enum.MUSs))
	assert.Equal(t, [][]int{{1, 3, 5}, {1, 4, 5}, {2, 3, 5}, {2, 4}}, sortedSets(enum.MSSs))
	assert.Equal(t, [][]int{{1, 3, 5}, {1, 4}, {2, 3}, {2, 4}}, sortedSets(enum.MCSs))

	conflicts := enum.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, conflicts[0].Critical)
	assert.Len(t, conflicts[0].MUSs, 3)
	assert.Equal(t, [][]int{{1, 3, 5}, {1, 4}, {2, 3}, {2, 4}}, sortedSets(conflicts[0].MCSs))
}

func TestConflictsSeparatesIndependentCores(t *testing.T) {
	enum := ForFormulas(parseAll("p", "~p", "q", "~q"), sat.NewGopher)
	enum.Run()
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, sortedSets(enum.MUSs))

	conflicts := enum.Conflicts()
	require.Len(t, conflicts, 2)
	slices.SortFunc(conflicts, func(a, b Conflict) int {
		return a.Critical[0] - b.Critical[0]
	})

	assert.Equal(t, []int{1, 2}, conflicts[0].Critical)
	assert.Equal(t, [][]int{{1}, {2}}, sortedSets(conflicts[0].MCSs))
	assert.Equal(t, [][]int{{1}, {2}}, sortedSets(conflicts[0].MSSs))

	assert.Equal(t, []int{3, 4}, conflicts[1].Critical)
	assert.Equal(t, [][]int{{3}, {4}}, sortedSets(conflicts[1].MCSs))
}

func TestEnumeratorSatisfiableCollection(t *testing.T) {
	enum := ForFormulas(parseAll("p", "(p->q)", "q"), sat.NewGini)
	enum.Run()
	assert.Empty(t, enum.MUSs)
	assert.Empty(t, enum.MCSs)
	require.Len(t, enum.MSSs, 1)
	assert.Equal(t, []int{1, 2, 3}, sortedSlice(enum.MSSs[0]))
	assert.Empty(t, enum.Conflicts())
}

func TestGrowShrink(t *testing.T) {
	enum := ForFormulas(parseAll("p", "~p", "q"), sat.NewGopher)

	mss := enum.Grow(NewIntSet(1))
	assert.Equal(t, []int{1, 3}, sortedSlice(mss))

	mus := enum.Shrink(NewIntSet(1, 2, 3))
	assert.Equal(t, []int{1, 2}, sortedSlice(mus))
}

func TestRunLoopLimit(t *testing.T) {
	enum := ForFormulas(parseAll("p", "~p"), sat.NewGini)
	enum.MaxLoop = 0
	assert.Panics(t, func() { enum.Run() })
}

func TestNewEnumeratorRejectsNonPositiveIds(t *testing.T) {
	assert.Panics(t, func() {
		NewEnumerator([]int{0, 1}, func([]int) bool { return true })
	})
}
