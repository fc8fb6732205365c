// Package cores enumerates minimal unsatisfiable cores and maximal
// satisfiable subsets of a collection of formulas, in the manner of the
// MARCO algorithm: a seed solver over selector variables proposes
// unexplored subsets, each seed is grown to an MSS or shrunk to a MUS,
// and the explored region is blocked off with a new clause.
package cores

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"hilbert/formula"
	"hilbert/graph"
	"hilbert/sat"
)

type IntSet mapset.Set[int]

func NewIntSet(vals ...int) IntSet {
	return IntSet(mapset.NewSet[int](vals...))
}

// Enumerator explores the power set of positive element ids. SatFunc
// decides the satisfiability of a subset of elements; Run fills the
// MUS, MSS and MCS lists.
type Enumerator struct {
	Elements IntSet
	MUSs     []IntSet
	MCSs     []IntSet
	MSSs     []IntSet
	MaxLoop  int
	SatFunc  func([]int) bool

	loops int
	seed  *SeedSolver
}

func NewEnumerator(elements []int, satFunc func([]int) bool) *Enumerator {
	for _, e := range elements {
		if e <= 0 {
			panic("element ids must be positive")
		}
	}
	return &Enumerator{
		Elements: NewIntSet(elements...),
		MUSs:     []IntSet{},
		MCSs:     []IntSet{},
		MSSs:     []IntSet{},
		MaxLoop:  1000,
		SatFunc:  satFunc,
		seed:     NewSeedSolver(NewIntSet(elements...)),
	}
}

// ForFormulas builds an enumerator over the given formulas, with
// element i+1 standing for formulas[i]. A subset is satisfiable when
// the conjunction of its formulas is, decided by the given backend.
func ForFormulas(constraints []*formula.Formula, newSolver sat.NewSolverFunc) *Enumerator {
	elements := make([]int, len(constraints))
	for i := range constraints {
		elements[i] = i + 1
	}
	satFunc := func(ids []int) bool {
		slices.Sort(ids)
		var conjunction *formula.Formula
		for _, id := range ids {
			f := constraints[id-1]
			if conjunction == nil {
				conjunction = f
			} else {
				conjunction = formula.Binary("&", conjunction, f)
			}
		}
		if conjunction == nil {
			return true
		}
		return sat.Satisfiable(conjunction, newSolver)
	}
	return NewEnumerator(elements, satFunc)
}

func (e *Enumerator) Sat(subset IntSet) bool {
	return e.SatFunc(subset.ToSlice())
}

// Grow extends a satisfiable seed to a maximal satisfiable subset.
func (e *Enumerator) Grow(seed IntSet) IntSet {
	for elem := range e.Elements.Difference(seed).Iter() {
		extended := seed.Clone()
		extended.Add(elem)
		if e.Sat(extended) {
			seed.Add(elem)
		}
	}
	return seed
}

// Shrink reduces an unsatisfiable seed to a minimal unsatisfiable core.
func (e *Enumerator) Shrink(seed IntSet) IntSet {
	for elem := range seed.Clone().Iter() {
		reduced := seed.Difference(NewIntSet(elem))
		if !e.Sat(reduced) {
			seed.Remove(elem)
		}
	}
	return seed
}

// Run explores subsets until the seed solver reports the whole power
// set mapped, then derives the MCS list as the complements of the
// maximal satisfiable subsets. Panics when MaxLoop iterations do not
// suffice.
func (e *Enumerator) Run() {
	for e.seed.Solve() {
		if e.loops >= e.MaxLoop {
			panic("too many exploration loops")
		}
		e.loops++

		seed := e.seed.Model()
		if e.Sat(seed) {
			mss := e.Grow(seed)
			e.MSSs = append(e.MSSs, mss)
			mcs := e.Elements.Difference(mss)
			if mcs.IsEmpty() {
				// The whole collection is satisfiable.
				break
			}
			e.seed.AddClause(mcs)
		} else {
			mus := e.Shrink(seed)
			e.MUSs = append(e.MUSs, mus)
			block := NewIntSet()
			for v := range mus.Iter() {
				block.Add(-v)
			}
			e.seed.AddClause(block)
		}
	}
	for _, mss := range e.MSSs {
		mcs := e.Elements.Difference(mss)
		if !mcs.IsEmpty() {
			e.MCSs = append(e.MCSs, mcs)
		}
	}
}

// Conflict is a cluster of overlapping minimal unsatisfiable cores,
// together with the minimal corrections that dissolve every core in
// the cluster.
type Conflict struct {
	MUSs     []IntSet
	MCSs     []IntSet
	MSSs     []IntSet
	Critical []int
}

// Conflicts groups the enumerated cores into independent clusters: two
// cores belong to the same cluster when they share an element. Each
// cluster carries its critical elements (the union of its cores), the
// distinct projections of the corrections onto them, and the
// corresponding maximal satisfiable subsets.
func (e *Enumerator) Conflicts() []Conflict {
	musGraph := graph.NewGraph(len(e.MUSs))
	for i := 0; i < len(e.MUSs); i++ {
		for j := i + 1; j < len(e.MUSs); j++ {
			if !e.MUSs[i].Intersect(e.MUSs[j]).IsEmpty() {
				musGraph.AddEdge(i, j)
			}
		}
	}

	conflicts := make([]Conflict, 0)
	for _, component := range musGraph.Components() {
		musList := make([]IntSet, 0, len(component))
		critical := NewIntSet()
		for _, id := range component {
			musList = append(musList, e.MUSs[id])
			critical = critical.Union(e.MUSs[id])
		}

		mcsList := make([]IntSet, 0)
		for _, mcs := range e.MCSs {
			reduced := mcs.Intersect(critical)
			if reduced.IsEmpty() {
				continue
			}
			seen := false
			for _, included := range mcsList {
				if reduced.Equal(included) {
					seen = true
					break
				}
			}
			if !seen {
				mcsList = append(mcsList, reduced)
			}
		}

		mssList := make([]IntSet, 0, len(mcsList))
		for _, mcs := range mcsList {
			mssList = append(mssList, critical.Difference(mcs))
		}

		ids := critical.ToSlice()
		slices.Sort(ids)
		conflicts = append(conflicts, Conflict{
			MUSs:     musList,
			MCSs:     mcsList,
			MSSs:     mssList,
			Critical: ids,
		})
	}
	return conflicts
}
