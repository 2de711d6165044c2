// Package contradiction implements step 10 of consolidate (spec.md
// §4.6.7): for each candidate, try it on a clone and see whether full
// consolidation proves it impossible.
package contradiction

import (
	"fmt"

	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// trial is one simple-contradiction attempt, the Go counterpart of
// models.ContradictionRecord plus the (cell, value) it tried.
type trial struct {
	cell, value int
	cellsFilled int
	wentInvalid bool
}

// Step is registered as an Engine.ContradictionTechnique hook. For each
// candidate count c = 2..MaxValue it tries every candidate of every cell
// with that count on a clone; if any trial goes Invalid, the one filling
// the fewest additional cells ("shortest contradiction") is applied to the
// original, per spec.md §4.6.7.
func Step(e *propagation.Engine, log *models.StepLog, isBruteForcing bool) models.Outcome {
	filledBefore := countFilled(e)

	for c := 2; c <= e.Board.MaxValue; c++ {
		var trials []trial
		for cell := 0; cell < e.Board.NumCells(); cell++ {
			m := e.Board.Get(cell)
			if m.IsSet() || m.Count() != c {
				continue
			}
			for _, v := range m.Values() {
				trials = append(trials, runTrial(e, cell, v, filledBefore))
			}
		}

		var best *trial
		for i := range trials {
			if !trials[i].wentInvalid {
				continue
			}
			if best == nil || trials[i].cellsFilled < best.cellsFilled {
				best = &trials[i]
			}
		}
		if best == nil {
			continue
		}

		out := e.Board.ClearCandidate(best.cell, best.value)
		if out != models.None {
			log.Add(models.StepLogEntry{
				Description: fmt.Sprintf("contradiction: %s<>%d", e.Board.CellName(best.cell), best.value),
			})
		}
		return out
	}
	return models.None
}

// runTrial clones the engine, sets (cell, v), and consolidates; a clone
// that goes Invalid immediately on SetValue ("empty-cell on the set, or
// cleared-constraint-on-set") short-circuits before ever calling
// Consolidate, per spec.md §4.6.7's trivial-contradiction rule.
func runTrial(e *propagation.Engine, cell, v, filledBefore int) trial {
	clone := e.Clone(true)
	if out := clone.SetValue(cell, v); out == models.Invalid {
		return trial{cell: cell, value: v, cellsFilled: 0, wentInvalid: true}
	}

	out := clone.Consolidate(nil)
	filled := countFilled(clone) - filledBefore
	return trial{cell: cell, value: v, cellsFilled: filled, wentInvalid: out == models.Invalid}
}

func countFilled(e *propagation.Engine) int {
	n := 0
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		if e.Board.Get(cell).IsSet() {
			n++
		}
	}
	return n
}
