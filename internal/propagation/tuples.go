package propagation

import (
	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/constraint"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// tuplesAndPointing walks tuple size k from 2 to MaxValue-1, checking every
// group's naked tuple then pointing for that k before moving to k+1, so a
// size-2 pointing is preferred over a size-3 naked tuple (spec.md §4.6.2).
func (e *Engine) tuplesAndPointing(log *models.StepLog) models.Outcome {
	for k := 2; k < e.Board.MaxValue; k++ {
		for _, g := range e.Groups.All() {
			if out := e.nakedTuple(g, k, log); out != models.None {
				return out
			}
			if out := e.pointing(g, k, log); out != models.None {
				return out
			}
		}
	}
	return models.None
}

// nakedTuple finds a set of k unfixed cells in g whose candidate union has
// popcount exactly k, and eliminates those values from the rest of the
// group and from any cell weakly linked to all bearers of each value.
func (e *Engine) nakedTuple(g *board.Group, k int, log *models.StepLog) models.Outcome {
	if k >= len(g.Cells) {
		return models.None
	}
	var unfixed []int
	for _, cell := range g.Cells {
		if !e.Board.Get(cell).IsSet() {
			unfixed = append(unfixed, cell)
		}
	}
	n := len(unfixed)
	if n < k {
		return models.None
	}
	subsets := e.Tables.Subsets(n, k)
	for i := 0; i+k <= len(subsets); i += k {
		idx := subsets[i : i+k]
		var union bitmask.Mask
		bearers := make([]int, 0, k)
		for _, j := range idx {
			bearers = append(bearers, unfixed[j])
			union |= e.Board.Get(unfixed[j]).Candidates()
		}
		if union.Count() != k {
			continue
		}

		var out models.Outcome
		for _, cell := range g.Cells {
			if containsCell(bearers, cell) || e.Board.Get(cell).IsSet() {
				continue
			}
			out = out.Merge(e.Board.ClearMask(cell, union))
			if out == models.Invalid {
				return out
			}
		}
		for _, v := range union.Values() {
			var valueBearers []int
			var cands []int
			for _, cell := range bearers {
				if e.Board.Get(cell).Has(v) {
					valueBearers = append(valueBearers, cell)
					cands = append(cands, e.Board.CandidateIndex(cell, v))
				}
			}
			neighbors := e.intersectCandidateNeighbors(cands)
			out = out.Merge(e.eliminateCandidates(neighbors, valueBearers))
			if out == models.Invalid {
				return out
			}
		}

		if out != models.None {
			log.Add(models.StepLogEntry{
				Description: g.Name + " naked tuple " + e.Board.GroupCellName(bearers),
				Sources:     bearers,
			})
			return out
		}
	}
	return models.None
}

// pointing computes, for each value this group restricts, the cells
// guaranteed to carry it; if that set has size <= k, eliminates the value
// from every cell weakly linked to all of them (spec.md §4.6.2).
func (e *Engine) pointing(g *board.Group, k int, log *models.StepLog) models.Outcome {
	ctx := e.ctx()
	for _, v := range g.RestrictedValues.Values() {
		var bearers []int
		if g.Kind == board.KindConstraint && !g.IsFullGroup(e.Board.MaxValue) {
			c, ok := g.Source.(constraint.Constraint)
			if !ok {
				continue
			}
			cells, ok := c.CellsMustContain(ctx, v)
			if !ok {
				continue
			}
			bearers = cells
		} else {
			for _, cell := range g.Cells {
				if !e.Board.Get(cell).IsSet() && e.Board.Get(cell).Has(v) {
					bearers = append(bearers, cell)
				}
			}
		}
		if len(bearers) == 0 || len(bearers) > k {
			continue
		}

		cands := make([]int, len(bearers))
		for i, cell := range bearers {
			cands[i] = e.Board.CandidateIndex(cell, v)
		}
		neighbors := e.intersectCandidateNeighbors(cands)
		out := e.eliminateCandidates(neighbors, bearers)
		if out != models.None {
			log.Add(models.StepLogEntry{
				Description: g.Name + " pointing on " + valueName(v) + " at " + e.Board.GroupCellName(bearers),
				Sources:     cands,
			})
			return out
		}
	}
	return models.None
}
