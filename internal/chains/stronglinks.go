// Package chains implements step 9 of consolidate (spec.md §4.6.6): the
// strong-link graph (bivalue, bilocal, ALS) and the AIC/CNL/DNL alternating
// chain search built over it.
package chains

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
)

// strongEdge is one strong link out of a candidate index. ALSCells is
// non-nil when the link was contributed by an Almost Locked Set; the chain
// search does not read it, so ALS edges are walked like any other strong
// link.
type strongEdge struct {
	To       int
	ALSCells []int
}

// strongGraph is the strong-link adjacency list, rebuilt fresh for every
// chains.Step call (unlike the weak-link graph, it is not persisted on the
// Engine since it depends on transient candidate masks in ways that would
// otherwise need re-deriving exactly like this anyway).
type strongGraph struct {
	adj map[int][]strongEdge
}

func newStrongGraph() *strongGraph {
	return &strongGraph{adj: make(map[int][]strongEdge)}
}

func (g *strongGraph) add(a, b int, alsCells []int) {
	g.adj[a] = append(g.adj[a], strongEdge{To: b, ALSCells: alsCells})
	g.adj[b] = append(g.adj[b], strongEdge{To: a, ALSCells: alsCells})
}

func (g *strongGraph) edges(c int) []strongEdge {
	return g.adj[c]
}

// buildStrongGraph constructs every strong link kind named in spec.md
// §4.6.6.
func buildStrongGraph(e *propagation.Engine) *strongGraph {
	g := newStrongGraph()
	b := e.Board

	for cell := 0; cell < b.NumCells(); cell++ {
		m := b.Get(cell)
		if m.IsSet() || m.Count() != 2 {
			continue
		}
		values := m.Values()
		g.add(b.CandidateIndex(cell, values[0]), b.CandidateIndex(cell, values[1]), nil)
	}

	for _, grp := range e.Groups.All() {
		for _, v := range grp.RestrictedValues.Values() {
			var witnesses []int
			for _, cell := range grp.Cells {
				m := b.Get(cell)
				if !m.IsSet() && m.Has(v) {
					witnesses = append(witnesses, cell)
				}
			}
			if len(witnesses) == 2 {
				g.add(b.CandidateIndex(witnesses[0], v), b.CandidateIndex(witnesses[1], v), nil)
			}
		}
	}

	buildALSLinks(e, g)
	return g
}

// alsPair is one ALS-contributed strong link: the two candidate indices it
// joins and the ALS cells to tag the edge with.
type alsPair struct {
	a, b  int
	cells []int
}

// buildALSLinks implements spec.md §4.6.6's Almost Locked Set strong link:
// for every group, every k unfixed cells (2<=k) whose candidate union has
// popcount exactly k+1, and every pair of values appearing only once
// among those cells, a strong link tagged with the ALS cells. The
// per-(group,k) subset walk depends only on which cells are unfixed and
// their current candidate masks, so it is cached in the engine's memo
// table (spec.md §3/§9): sibling brute-force branches that leave a group
// untouched hit the cache instead of re-walking its subsets.
func buildALSLinks(e *propagation.Engine, g *strongGraph) {
	b := e.Board
	for _, grp := range e.Groups.All() {
		var unfixed []int
		for _, cell := range grp.Cells {
			if !b.Get(cell).IsSet() {
				unfixed = append(unfixed, cell)
			}
		}
		n := len(unfixed)
		for k := 2; k <= n; k++ {
			key := alsCacheKey(b, grp.Name, k, unfixed)
			pairs := e.Memo.GetOrCompute(key, func() any {
				return alsPairsForSubsets(e, unfixed, k)
			}).([]alsPair)
			for _, p := range pairs {
				g.add(p.a, p.b, p.cells)
			}
		}
	}
}

// alsCacheKey encodes everything alsPairsForSubsets' result depends on: the
// group identity, the subset size, and every unfixed cell's current
// candidate mask in cell order.
func alsCacheKey(b *board.Board, groupName string, k int, unfixed []int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "als|%s|%d", groupName, k)
	for _, cell := range unfixed {
		fmt.Fprintf(&sb, "|%d:", cell)
		for _, v := range b.Get(cell).Candidates().Values() {
			fmt.Fprintf(&sb, "%d,", v)
		}
	}
	return sb.String()
}

// alsPairsForSubsets walks every k-subset of unfixed (spec.md §4.6.6's ALS
// rule) and returns the strong-link pairs it implies.
func alsPairsForSubsets(e *propagation.Engine, unfixed []int, k int) []alsPair {
	b := e.Board
	n := len(unfixed)
	subsets := e.Tables.Subsets(n, k)
	var out []alsPair
	for i := 0; i+k <= len(subsets); i += k {
		idx := subsets[i : i+k]
		cells := make([]int, k)
		counts := make(map[int]int)
		witness := make(map[int]int)
		for j, p := range idx {
			cells[j] = unfixed[p]
			for _, v := range b.Get(unfixed[p]).Candidates().Values() {
				counts[v]++
				witness[v] = unfixed[p]
			}
		}
		if len(counts) != k+1 {
			continue
		}
		var onceValues []int
		for v, c := range counts {
			if c == 1 {
				onceValues = append(onceValues, v)
			}
		}
		sort.Ints(onceValues)
		for x := 0; x < len(onceValues); x++ {
			for y := x + 1; y < len(onceValues); y++ {
				v1, v2 := onceValues[x], onceValues[y]
				out = append(out, alsPair{
					a:     b.CandidateIndex(witness[v1], v1),
					b:     b.CandidateIndex(witness[v2], v2),
					cells: append([]int(nil), cells...),
				})
			}
		}
	}
	return out
}
