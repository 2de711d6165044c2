// Package linkgraph implements the weak-link adjacency graph over candidate
// indices (spec.md §4.4): "these two candidates cannot both be true."
package linkgraph

import (
	"sort"

	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// Graph holds, for each candidate index, a sorted duplicate-free list of
// candidates it is weakly linked to.
type Graph struct {
	adj   [][]int
	count int
}

// New allocates a graph over numCandidates candidate indices.
func New(numCandidates int) *Graph {
	return &Graph{adj: make([][]int, numCandidates)}
}

// Neighbors returns candidate c's weak-link adjacency list. Callers must
// not mutate the returned slice.
func (g *Graph) Neighbors(c int) []int {
	return g.adj[c]
}

// Linked reports whether c0 and c1 are weakly linked.
func (g *Graph) Linked(c0, c1 int) bool {
	list := g.adj[c0]
	i := sort.SearchInts(list, c1)
	return i < len(list) && list[i] == c1
}

// LinkCount returns the total number of (undirected) weak links — monotone
// non-decreasing across logical steps per spec.md §8.
func (g *Graph) LinkCount() int {
	return g.count
}

// insert adds c1 to c0's sorted adjacency list if not already present.
// Returns true if a new entry was inserted.
func (g *Graph) insert(c0, c1 int) bool {
	list := g.adj[c0]
	i := sort.SearchInts(list, c1)
	if i < len(list) && list[i] == c1 {
		return false
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = c1
	g.adj[c0] = list
	return true
}

// AddWeakLink is the single mutator for the graph (spec.md §4.4). Semantics:
//   - c0 == c1: no-op.
//   - either candidate already eliminated: no-op.
//   - the cell of c0 already fixed to c0's value: c1 must be eliminated
//     (symmetrically for c1); otherwise insert symmetrically.
func (g *Graph) AddWeakLink(b *board.Board, c0, c1 int) models.Outcome {
	if c0 == c1 {
		return models.None
	}

	cell0, v0 := b.CellOfCandidate(c0), b.ValueOfCandidate(c0)
	cell1, v1 := b.CellOfCandidate(c1), b.ValueOfCandidate(c1)

	m0, m1 := b.Get(cell0), b.Get(cell1)
	if !m0.Has(v0) || !m1.Has(v1) {
		return models.None
	}

	if m0.IsSet() && m0.Value() == v0 {
		return b.ClearCandidate(cell1, v1)
	}
	if m1.IsSet() && m1.Value() == v1 {
		return b.ClearCandidate(cell0, v0)
	}

	inserted := g.insert(c0, c1)
	if g.insert(c1, c0) || inserted {
		g.count++
	}
	return models.None
}

// AddCloneLink encodes "cell-of-c0 equals cell-of-c1 in value" (spec.md
// §4.4): every other value in either cell becomes mutually incompatible
// with the partner candidate.
func (g *Graph) AddCloneLink(b *board.Board, c0, c1 int) models.Outcome {
	cellA := b.CellOfCandidate(c0)
	cellB := b.CellOfCandidate(c1)
	v0 := b.ValueOfCandidate(c0)
	v1 := b.ValueOfCandidate(c1)

	var outcome models.Outcome
	for w := 1; w <= b.MaxValue; w++ {
		if w != v0 {
			outcome = outcome.Merge(g.AddWeakLink(b, b.CandidateIndex(cellA, w), c1))
		}
		if w != v1 {
			outcome = outcome.Merge(g.AddWeakLink(b, c0, b.CandidateIndex(cellB, w)))
		}
		if outcome == models.Invalid {
			return outcome
		}
	}
	return outcome
}

// Clone deep-copies the graph. Used when a solver clone declares it will
// run link-generating logic (spec.md §4.9); brute-force clones share the
// graph by reference instead of calling this.
func (g *Graph) Clone() *Graph {
	clone := &Graph{adj: make([][]int, len(g.adj)), count: g.count}
	for i, list := range g.adj {
		if list != nil {
			clone.adj[i] = append([]int(nil), list...)
		}
	}
	return clone
}
