package linkgraph

import (
	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
)

// pairKey canonicalizes an unordered cell pair for map lookup.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// SeenMap is the symmetric boolean relation over cell pairs (spec.md §3):
// true iff the two cells have some weak link for a given value (0 = any
// value). Derived in bulk from the weak-link graph, plus any extra pairs a
// constraint contributes via seen_cells / seen_cells_by_value_mask.
type SeenMap struct {
	maxValue int
	byPair   map[[2]int]bitmask.Mask
}

// Build recomputes the seen map from scratch by scanning every weak link in
// g, per spec.md §4.4 ("recomputed whenever the weak-link graph grows
// during finalize; cheap bulk computation").
func Build(g *Graph, b *board.Board) *SeenMap {
	s := &SeenMap{maxValue: b.MaxValue, byPair: make(map[[2]int]bitmask.Mask)}
	for c0 := 0; c0 < len(g.adj); c0++ {
		cell0, v0 := b.CellOfCandidate(c0), b.ValueOfCandidate(c0)
		for _, c1 := range g.adj[c0] {
			cell1, v1 := b.CellOfCandidate(c1), b.ValueOfCandidate(c1)
			if cell0 == cell1 || v0 != v1 {
				continue
			}
			s.mark(cell0, cell1, v0)
		}
	}
	return s
}

func (s *SeenMap) mark(cellA, cellB, v int) {
	key := pairKey(cellA, cellB)
	s.byPair[key] = s.byPair[key] | bitmask.Of(v)
}

// AddExtra records additional seen pairs a constraint contributes directly
// (seen_cells / seen_cells_by_value_mask in spec.md §4.7), independent of
// the weak-link graph.
func (s *SeenMap) AddExtra(cellA, cellB int, valueMask bitmask.Mask) {
	if cellA == cellB {
		return
	}
	key := pairKey(cellA, cellB)
	s.byPair[key] = s.byPair[key] | valueMask
}

// Seen reports whether cellA and cellB are "seen" for value (0 means "any
// value").
func (s *SeenMap) Seen(cellA, cellB, value int) bool {
	if cellA == cellB {
		return false
	}
	mask, ok := s.byPair[pairKey(cellA, cellB)]
	if !ok {
		return false
	}
	if value == 0 {
		return mask != 0
	}
	return mask.Has(value)
}
