package propagation

import (
	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/constraint"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// nakedSingle fixes the first unfixed cell (in cell-index order) whose
// candidate count is 1, per spec.md §4.6.1.
func (e *Engine) nakedSingle(log *models.StepLog) models.Outcome {
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		m := e.Board.Get(cell)
		if m.IsSet() || m.Count() != 1 {
			continue
		}
		v := m.MinValue()
		out := e.SetValue(cell, v)
		if out != models.None {
			log.Add(models.StepLogEntry{
				Description: e.Board.CellName(cell) + "=" + valueName(v) + " (naked single)",
				Sources:     []int{e.Board.CandidateIndex(cell, v)},
				IsSingle:    true,
			})
		}
		return out
	}
	return models.None
}

// hiddenSingle fixes the witness cell of the first "exactly-once" value
// found across every group, in registry order (spec.md §4.6.1). Full
// groups scan candidate bits directly; constraint-contributed partial
// groups consult CellsMustContain instead.
func (e *Engine) hiddenSingle(log *models.StepLog) models.Outcome {
	ctx := e.ctx()
	for _, g := range e.Groups.All() {
		if g.Kind == board.KindConstraint && !g.IsFullGroup(e.Board.MaxValue) {
			c, ok := g.Source.(constraint.Constraint)
			if !ok {
				continue
			}
			for _, v := range g.RestrictedValues.Values() {
				cells, ok := c.CellsMustContain(ctx, v)
				if !ok || len(cells) != 1 {
					continue
				}
				cell := cells[0]
				if e.Board.Get(cell).IsSet() {
					continue
				}
				out := e.SetValue(cell, v)
				if out != models.None {
					log.Add(models.StepLogEntry{
						Description: e.Board.CellName(cell) + "=" + valueName(v) + " (hidden single, " + g.Name + ")",
						IsSingle:    true,
					})
				}
				return out
			}
			continue
		}

		counts := make([]int, e.Board.MaxValue+1)
		witness := make([]int, e.Board.MaxValue+1)
		for _, cell := range g.Cells {
			m := e.Board.Get(cell)
			if m.IsSet() {
				continue
			}
			for _, v := range m.Candidates().Values() {
				counts[v]++
				witness[v] = cell
			}
		}
		for v := 1; v <= e.Board.MaxValue; v++ {
			if counts[v] != 1 {
				continue
			}
			cell := witness[v]
			out := e.SetValue(cell, v)
			if out != models.None {
				log.Add(models.StepLogEntry{
					Description: e.Board.CellName(cell) + "=" + valueName(v) + " (hidden single, " + g.Name + ")",
					IsSingle:    true,
				})
			}
			return out
		}
	}
	return models.None
}

// validityCheck enforces the three invariants of spec.md §4.6.1, skipped
// while brute-forcing (the spec only requires it "before any technique
// except in brute-force"): no empty cell, every full group's candidates
// plus set values cover every value, and no k-subset (k < group size) of a
// group's unfixed cells has a candidate union smaller than k (pigeonhole).
func (e *Engine) validityCheck(isBruteForcing bool) models.Outcome {
	if isBruteForcing {
		return models.None
	}

	for cell := 0; cell < e.Board.NumCells(); cell++ {
		if e.Board.Get(cell).IsEmpty() {
			return models.Invalid
		}
	}

	for _, g := range e.Groups.All() {
		if !g.IsFullGroup(e.Board.MaxValue) {
			continue
		}
		var union bitmask.Mask
		for _, cell := range g.Cells {
			m := e.Board.Get(cell)
			if m.IsSet() {
				union |= bitmask.Of(m.Value())
			} else {
				union |= m.Candidates()
			}
		}
		if union != bitmask.AllValues(e.Board.MaxValue) {
			return models.Invalid
		}
	}

	for _, g := range e.Groups.All() {
		var unfixed []int
		for _, cell := range g.Cells {
			if !e.Board.Get(cell).IsSet() {
				unfixed = append(unfixed, cell)
			}
		}
		n := len(unfixed)
		if n == 0 {
			continue
		}
		for k := 1; k < len(g.Cells) && k <= n; k++ {
			subsets := e.Tables.Subsets(n, k)
			for i := 0; i+k <= len(subsets); i += k {
				var union bitmask.Mask
				for _, idx := range subsets[i : i+k] {
					union |= e.Board.Get(unfixed[idx]).Candidates()
				}
				if union.Count() < k {
					return models.Invalid
				}
			}
		}
	}
	return models.None
}

func valueName(v int) string {
	const digits = "0123456789"
	if v < 10 {
		return string(digits[v])
	}
	return string(rune('A'+v-10)) + ""
}
