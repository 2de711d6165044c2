package propagation

import "github.com/rawblock/sudoku-kernel/pkg/models"

// directCellForcing finds, for every unfixed cell, the intersection of the
// weak-link neighbor sets across all of its current candidates: whatever
// candidate is common to every one of those sets must be false no matter
// which value the cell ends up taking (spec.md §4.6.3).
func (e *Engine) directCellForcing(log *models.StepLog) models.Outcome {
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		m := e.Board.Get(cell)
		if m.IsSet() {
			continue
		}
		values := m.Candidates().Values()
		cands := make([]int, len(values))
		for i, v := range values {
			cands[i] = e.Board.CandidateIndex(cell, v)
		}
		neighbors := e.intersectCandidateNeighbors(cands)
		out := e.eliminateCandidates(neighbors, []int{cell})
		if out != models.None {
			log.Add(models.StepLogEntry{
				Description: "direct forcing at " + e.Board.CellName(cell),
				Sources:     cands,
			})
			return out
		}
	}
	return models.None
}
