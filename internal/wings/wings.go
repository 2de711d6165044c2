// Package wings implements step 8 of consolidate (spec.md §4.6.5): Y-wing,
// then for each size 3..MaxValue the unorthodox tuple / N-wing search.
package wings

import (
	"fmt"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// Step is registered as an Engine.WingsTechnique hook.
func Step(e *propagation.Engine, log *models.StepLog, isBruteForcing bool) models.Outcome {
	if out := yWing(e, log); out != models.None {
		return out
	}
	for k := 3; k <= e.Board.MaxValue; k++ {
		if out := unorthodoxTupleOrNWing(e, log, k); out != models.None {
			return out
		}
	}
	return models.None
}

// bivalueCells returns every unfixed cell with exactly two candidates.
func bivalueCells(e *propagation.Engine) []int {
	var out []int
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		m := e.Board.Get(cell)
		if !m.IsSet() && m.Count() == 2 {
			out = append(out, cell)
		}
	}
	return out
}

// yWing finds a pivot and two pincers sharing candidates x,y,z pairwise
// (spec.md §4.6.5) and eliminates z from every cell seen by both pincers.
func yWing(e *propagation.Engine, log *models.StepLog) models.Outcome {
	bivalue := bivalueCells(e)
	for _, pivot := range bivalue {
		pv := e.Board.Get(pivot).Values()
		x, y := pv[0], pv[1]
		for _, a := range bivalue {
			if a == pivot || !e.Seen.Seen(pivot, a, 0) {
				continue
			}
			av := e.Board.Get(a).Values()
			if !(containsValue(av, x) != containsValue(av, y)) {
				continue // a must share exactly one of x,y with pivot
			}
			var z int
			if containsValue(av, x) {
				z = otherValue(av, x)
			} else {
				z = otherValue(av, y)
			}
			for _, b := range bivalue {
				if b == pivot || b == a || !e.Seen.Seen(pivot, b, 0) {
					continue
				}
				bv := e.Board.Get(b).Values()
				sharesY := containsValue(bv, y) && containsValue(av, x)
				sharesX := containsValue(bv, x) && containsValue(av, y)
				if !sharesY && !sharesX {
					continue
				}
				if !containsValue(bv, z) {
					continue
				}
				otherB := otherValue(bv, z)
				if sharesY && otherB != y {
					continue
				}
				if sharesX && otherB != x {
					continue
				}

				var out models.Outcome
				for cell := 0; cell < e.Board.NumCells(); cell++ {
					if cell == pivot || cell == a || cell == b {
						continue
					}
					m := e.Board.Get(cell)
					if m.IsSet() || !m.Has(z) {
						continue
					}
					if e.Seen.Seen(cell, a, z) && e.Seen.Seen(cell, b, z) {
						out = out.Merge(e.Board.ClearCandidate(cell, z))
						if out == models.Invalid {
							return out
						}
					}
				}
				if out != models.None {
					log.Add(models.StepLogEntry{
						Description: fmt.Sprintf("Y-Wing %s-%s-%s on %d", e.Board.CellName(pivot), e.Board.CellName(a), e.Board.CellName(b), z),
						Sources:     []int{pivot, a, b},
					})
					return out
				}
			}
		}
	}
	return models.None
}

func containsValue(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func otherValue(values []int, v int) int {
	for _, x := range values {
		if x != v {
			return x
		}
	}
	return 0
}

// unorthodoxTupleOrNWing enumerates k-cell combinations of cells with at
// most k candidates each, maintaining the accumulated-mask validity
// predicate of spec.md §4.6.5.
func unorthodoxTupleOrNWing(e *propagation.Engine, log *models.StepLog, k int) models.Outcome {
	var cells []int
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		m := e.Board.Get(cell)
		if !m.IsSet() && m.Count() <= k {
			cells = append(cells, cell)
		}
	}
	n := len(cells)
	if n < k {
		return models.None
	}

	subsets := e.Tables.Subsets(n, k)
	for i := 0; i+k <= len(subsets); i += k {
		idx := subsets[i : i+k]
		selected := make([]int, k)
		var accumulated bitmask.Mask
		for j, p := range idx {
			selected[j] = cells[p]
			accumulated |= e.Board.Get(cells[p]).Candidates()
		}
		if accumulated.Count() != k {
			continue
		}

		nonGrouped := 0
		var nonGroupedValue int
		valid := true
		for _, v := range accumulated.Values() {
			var bearers []int
			for _, c := range selected {
				if e.Board.Get(c).Has(v) {
					bearers = append(bearers, c)
				}
			}
			if !pairwiseSeen(e, bearers, v) {
				nonGrouped++
				nonGroupedValue = v
				if nonGrouped > 1 {
					valid = false
					break
				}
			}
		}
		if !valid {
			continue
		}

		if nonGrouped == 0 {
			if out := eliminateUnorthodoxTuple(e, log, selected, accumulated); out != models.None {
				return out
			}
			continue
		}

		var bearers []int
		for _, c := range selected {
			if e.Board.Get(c).Has(nonGroupedValue) {
				bearers = append(bearers, c)
			}
		}
		if out := eliminateNWing(e, log, selected, bearers, nonGroupedValue, k); out != models.None {
			return out
		}
	}
	return models.None
}

// pairwiseSeen reports whether every pair of bearers is weakly linked on v
// (spec.md §4.6.5: "a group" — any two mutually weakly linked on v).
func pairwiseSeen(e *propagation.Engine, bearers []int, v int) bool {
	for i := 0; i < len(bearers); i++ {
		for j := i + 1; j < len(bearers); j++ {
			if !e.Seen.Seen(bearers[i], bearers[j], v) {
				return false
			}
		}
	}
	return true
}

func eliminateUnorthodoxTuple(e *propagation.Engine, log *models.StepLog, selected []int, accumulated bitmask.Mask) models.Outcome {
	var out models.Outcome
	for _, v := range accumulated.Values() {
		for cell := 0; cell < e.Board.NumCells(); cell++ {
			if containsCell(selected, cell) {
				continue
			}
			m := e.Board.Get(cell)
			if m.IsSet() || !m.Has(v) {
				continue
			}
			if !seenByAll(e, cell, selected, v) {
				continue
			}
			out = out.Merge(e.Board.ClearCandidate(cell, v))
			if out == models.Invalid {
				return out
			}
		}
	}
	if out != models.None {
		log.Add(models.StepLogEntry{
			Description: fmt.Sprintf("unorthodox tuple %s", e.Board.GroupCellName(selected)),
			Sources:     selected,
		})
	}
	return out
}

func eliminateNWing(e *propagation.Engine, log *models.StepLog, selected, bearers []int, u, k int) models.Outcome {
	var out models.Outcome
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		if containsCell(selected, cell) {
			continue
		}
		m := e.Board.Get(cell)
		if m.IsSet() || !m.Has(u) {
			continue
		}
		if !seenByAll(e, cell, bearers, u) {
			continue
		}
		out = out.Merge(e.Board.ClearCandidate(cell, u))
		if out == models.Invalid {
			return out
		}
	}
	if out != models.None {
		log.Add(models.StepLogEntry{
			Description: fmt.Sprintf("%d-Wing on %d at %s", k, u, e.Board.GroupCellName(selected)),
			Sources:     selected,
		})
	}
	return out
}

func seenByAll(e *propagation.Engine, cell int, others []int, v int) bool {
	for _, o := range others {
		if o == cell || !e.Seen.Seen(cell, o, v) {
			return false
		}
	}
	return true
}

func containsCell(cells []int, cell int) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
