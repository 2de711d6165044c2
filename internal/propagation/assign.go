package propagation

import "github.com/rawblock/sudoku-kernel/pkg/models"

// SetValue is the only path that triggers constraint enforcement (spec.md
// §4.5). It fixes cell to v, cascades weak-link elimination (which may
// itself fix other cells down to a single remaining candidate), and only
// once the whole cascade has settled does it call Enforce on every
// constraint that requested it — an iterative work-queue takes the place
// of the spec's re-entrancy flag: every cell fixed during the cascade is
// collected first, and Enforce never runs while a cell is still being
// fixed, so there is nothing to re-enter.
func (e *Engine) SetValue(cell, v int) models.Outcome {
	m := e.Board.Get(cell)
	if !m.Has(v) {
		return models.Invalid
	}
	if m.IsSet() {
		return models.None
	}

	fixed := []struct{ cell, v int }{{cell, v}}
	if out := e.Board.Fix(cell, v); out == models.Invalid {
		return models.Invalid
	}

	queue := []struct{ cell, v int }{{cell, v}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		ci := e.Board.CandidateIndex(cur.cell, cur.v)
		for _, neighbor := range e.Graph.Neighbors(ci) {
			nCell := e.Board.CellOfCandidate(neighbor)
			nVal := e.Board.ValueOfCandidate(neighbor)

			before := e.Board.Get(nCell)
			if before.IsSet() || !before.Has(nVal) {
				continue
			}
			out := e.Board.ClearCandidate(nCell, nVal)
			if out == models.Invalid {
				return models.Invalid
			}
			after := e.Board.Get(nCell)
			if out == models.Changed && after.Count() == 1 && !after.IsSet() {
				witness := after.MinValue()
				if fixOut := e.Board.Fix(nCell, witness); fixOut == models.Invalid {
					return models.Invalid
				}
				fixed = append(fixed, struct{ cell, v int }{nCell, witness})
				queue = append(queue, struct{ cell, v int }{nCell, witness})
			}
		}
	}

	ctx := e.ctx()
	for _, f := range fixed {
		for _, c := range e.Constraints.All() {
			if !c.NeedsEnforce() {
				continue
			}
			if !c.Enforce(ctx, f.cell, f.v) {
				return models.Invalid
			}
		}
	}

	if e.Board.IsComplete() {
		return models.PuzzleComplete
	}
	return models.Changed
}

// ClearValue removes one candidate from cell (spec.md §4.5). It returns
// Invalid if the cell is left with no candidates, Changed if v was a
// candidate and is now gone, None if v was already absent.
func (e *Engine) ClearValue(cell, v int) models.Outcome {
	return e.Board.ClearCandidate(cell, v)
}
