// Package fishes implements step 7 of consolidate (spec.md §4.6.4): plain
// and finned fish over a row x column bipartite presence matrix, active
// only when the board's width, height and max value all coincide (so
// "row" and "column" line up with "value" the way a standard grid does).
package fishes

import (
	"fmt"

	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/combinatorics"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

var fishNames = map[int]string{2: "X-Wing", 3: "Swordfish", 4: "Jellyfish"}

func fishName(k int) string {
	if name, ok := fishNames[k]; ok {
		return name
	}
	return fmt.Sprintf("%d-Fish", k)
}

// Step is registered as an Engine.FishesTechnique hook. It requires a
// square board (Width == Height == MaxValue); on any other shape it is a
// permanent no-op, matching "only when WIDTH = HEIGHT = MAX_VALUE".
func Step(e *propagation.Engine, log *models.StepLog, isBruteForcing bool) models.Outcome {
	if e.Board.Width != e.Board.Height || e.Board.Width != e.Board.MaxValue {
		return models.None
	}
	n := e.Board.MaxValue
	tables := combinatorics.New(n)

	for v := 1; v <= n; v++ {
		rowsByCol, colsByRow := presenceMatrices(e.Board, n, v)
		for _, orientation := range []struct {
			name       string
			base, cover [][]int // base[line] = positions (other axis) containing v
		}{
			{"row", colsByRow, rowsByCol},
			{"column", rowsByCol, colsByRow},
		} {
			for k := 2; k <= n/2; k++ {
				if out := searchFish(e, log, tables, orientation.name, orientation.base, orientation.cover, n, k, v); out != models.None {
					return out
				}
			}
		}
	}
	return models.None
}

// presenceMatrices returns, for value v: rowsByCol[c] = rows where column c
// still allows v, and colsByRow[r] = columns where row r still allows v.
func presenceMatrices(b *board.Board, n, v int) (rowsByCol, colsByRow [][]int) {
	rowsByCol = make([][]int, n)
	colsByRow = make([][]int, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell := b.CellIndex(row, col)
			m := b.Get(cell)
			if m.IsSet() || !m.Has(v) {
				continue
			}
			rowsByCol[col] = append(rowsByCol[col], row)
			colsByRow[row] = append(colsByRow[row], col)
		}
	}
	return rowsByCol, colsByRow
}

// searchFish looks for a base-line set of size k (plain: union of cover
// positions has popcount exactly k; finned: popcount >= k) and, on a find,
// eliminates v from the cover lines outside the base set (finned:
// intersected with the weak-link reach of every fin candidate).
func searchFish(e *propagation.Engine, log *models.StepLog, tables *combinatorics.Tables, orientation string, positionsByLine [][]int, coverByLine [][]int, n, k, v int) models.Outcome {
	lines := make([]int, 0, n)
	for line, positions := range positionsByLine {
		if len(positions) >= 2 && len(positions) <= n {
			lines = append(lines, line)
		}
	}
	if len(lines) < k {
		return models.None
	}

	subsets := tables.Subsets(len(lines), k)
	for i := 0; i+k <= len(subsets); i += k {
		idx := subsets[i : i+k]
		baseLines := make([]int, k)
		union := map[int]bool{}
		for j, p := range idx {
			baseLines[j] = lines[p]
			for _, pos := range positionsByLine[lines[p]] {
				union[pos] = true
			}
		}

		if len(union) == k {
			if out := applyFish(e, log, orientation, baseLines, union, coverByLine, v, k, nil); out != models.None {
				return out
			}
			continue
		}
		if len(union) > k {
			fins := finCells(e.Board, orientation, baseLines, union, v)
			if out := applyFish(e, log, orientation, baseLines, union, coverByLine, v, k, fins); out != models.None {
				return out
			}
		}
	}
	return models.None
}

// finCells collects every cell, among the base lines, that allows v at any
// of coverPositions. No k-subset of those positions is singled out, so
// every base-line candidate of v is treated as a fin.
func finCells(b *board.Board, orientation string, baseLines []int, coverPositions map[int]bool, v int) []int {
	var fins []int
	for _, line := range baseLines {
		for pos := range coverPositions {
			var cell int
			if orientation == "row" {
				cell = b.CellIndex(line, pos)
			} else {
				cell = b.CellIndex(pos, line)
			}
			m := b.Get(cell)
			if !m.IsSet() && m.Has(v) {
				fins = append(fins, cell)
			}
		}
	}
	return fins
}

// applyFish performs the elimination: v is removed from every cell in a
// cover line, outside the base lines. When fins is non-nil (finned fish),
// the elimination target set is additionally intersected with the
// weak-link reach of every fin candidate.
func applyFish(e *propagation.Engine, log *models.StepLog, orientation string, baseLines []int, coverPositions map[int]bool, coverByLine [][]int, v, k int, fins []int) models.Outcome {
	isBase := make(map[int]bool, len(baseLines))
	for _, l := range baseLines {
		isBase[l] = true
	}

	var targets []int
	for pos := range coverPositions {
		for _, line := range coverByLine[pos] {
			if isBase[line] {
				continue
			}
			var cell int
			if orientation == "row" {
				cell = e.Board.CellIndex(line, pos)
			} else {
				cell = e.Board.CellIndex(pos, line)
			}
			targets = append(targets, cell)
		}
	}
	if fins != nil {
		targets = intersectWithFinReach(e, targets, fins, v)
	}
	if len(targets) == 0 {
		return models.None
	}

	var out models.Outcome
	for _, cell := range targets {
		m := e.Board.Get(cell)
		if m.IsSet() || !m.Has(v) {
			continue
		}
		out = out.Merge(e.Board.ClearCandidate(cell, v))
		if out == models.Invalid {
			return out
		}
	}
	if out == models.None {
		return models.None
	}

	label := fishName(k)
	if fins != nil {
		label = "Finned " + label
	}
	log.Add(models.StepLogEntry{
		Description: fmt.Sprintf("%s on %d (%s)", label, v, orientation),
	})
	return out
}

// intersectWithFinReach restricts candidates to those also weakly linked
// (for value v) to every fin cell (spec.md §4.6.4).
func intersectWithFinReach(e *propagation.Engine, candidates []int, fins []int, v int) []int {
	var out []int
	for _, cell := range candidates {
		seenByAll := true
		for _, fin := range fins {
			if fin == cell {
				seenByAll = false
				break
			}
			if !e.Seen.Seen(cell, fin, v) {
				seenByAll = false
				break
			}
		}
		if seenByAll {
			out = append(out, cell)
		}
	}
	return out
}
