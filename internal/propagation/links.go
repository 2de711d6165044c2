package propagation

import "github.com/rawblock/sudoku-kernel/pkg/models"

// intersectCandidateNeighbors returns the sorted intersection of the
// weak-link adjacency lists of every candidate index in cands. Used by
// naked-tuple/pointing/direct-forcing eliminations, all of which reduce to
// "what do all of these candidates see in common" (spec.md §4.6.2-3).
func (e *Engine) intersectCandidateNeighbors(cands []int) []int {
	if len(cands) == 0 {
		return nil
	}
	result := append([]int(nil), e.Graph.Neighbors(cands[0])...)
	for _, c := range cands[1:] {
		result = intersectSorted(result, e.Graph.Neighbors(c))
		if len(result) == 0 {
			return nil
		}
	}
	return result
}

func intersectSorted(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func containsCell(cells []int, cell int) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}

// eliminateCandidates clears each neighbor candidate's value from its cell,
// skipping any neighbor that belongs to one of the bearer cells. Returns
// the combined outcome across every elimination.
func (e *Engine) eliminateCandidates(neighbors []int, bearers []int) models.Outcome {
	var out models.Outcome
	for _, n := range neighbors {
		cell := e.Board.CellOfCandidate(n)
		if containsCell(bearers, cell) {
			continue
		}
		v := e.Board.ValueOfCandidate(n)
		out = out.Merge(e.Board.ClearCandidate(cell, v))
		if out == models.Invalid {
			return out
		}
	}
	return out
}
