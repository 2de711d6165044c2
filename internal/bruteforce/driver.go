// Package bruteforce implements the DFS brute-force driver (spec.md §4.8):
// find_solution, count_solutions and fill_real_candidates over a recursive
// fork-join walk of cloned propagation engines, optionally parallelized
// across a bounded number of concurrent branches.
package bruteforce

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// Driver owns the PRNG used for random value selection and the bound on
// concurrent brute-force branches. Its zero value is not usable; use New.
type Driver struct {
	root  *propagation.Engine
	rng   *rand.Rand
	bound int64

	instanceID string
	taskSeq    atomic.Int64
}

// New returns a driver over root. seed makes random value selection
// reproducible (spec.md §9: "a seedable PRNG owned by the driver").
// parentID is the calling Solver's InstanceID; forked branches get a child
// ID derived from it (spec.md §3: "parentID/taskN"), logged at each fork
// point so concurrent branches are distinguishable in the log output.
func New(root *propagation.Engine, seed int64, parentID string) *Driver {
	bound := int64(runtime.NumCPU() - 1)
	if bound < 1 {
		bound = 1
	}
	return &Driver{
		root:       root,
		rng:        rand.New(rand.NewSource(seed)),
		bound:      bound,
		instanceID: parentID,
	}
}

// nextTaskID derives a fresh child ID for a forked branch, parentID/taskN.
func (d *Driver) nextTaskID() string {
	n := d.taskSeq.Add(1)
	return fmt.Sprintf("%s/task%d", d.instanceID, n)
}

// chooseBranchCell implements spec.md §4.8's cell-selection rule:
// 2-candidate cells are returned immediately; otherwise prefer a cell from
// the smallest non-repeating-value group; if every remaining cell has >=4
// candidates, prefer a bilocal witness instead.
func chooseBranchCell(e *propagation.Engine) (int, bool) {
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		m := e.Board.Get(cell)
		if !m.IsSet() && m.Count() == 2 {
			return cell, true
		}
	}

	bestCell, bestCount := -1, 0
	for _, g := range e.Groups.All() {
		n := len(g.Cells)
		if bestCell != -1 && n >= bestCount {
			continue
		}
		for _, cell := range g.Cells {
			m := e.Board.Get(cell)
			if !m.IsSet() {
				bestCell, bestCount = cell, n
				break
			}
		}
	}
	if bestCell != -1 {
		allWide := true
		for cell := 0; cell < e.Board.NumCells(); cell++ {
			m := e.Board.Get(cell)
			if !m.IsSet() && m.Count() < 4 {
				allWide = false
				break
			}
		}
		if allWide {
			if cell, ok := bilocalWitness(e); ok {
				return cell, true
			}
		}
		return bestCell, true
	}

	for cell := 0; cell < e.Board.NumCells(); cell++ {
		if !e.Board.Get(cell).IsSet() {
			return cell, true
		}
	}
	return -1, false
}

// bilocalWitness looks for a value that has exactly two remaining cells in
// some group and returns the first of those two cells, a cheap proxy for
// the chain package's bilocal strong link without importing it (this
// driver has no need for the rest of the strong-link graph).
func bilocalWitness(e *propagation.Engine) (int, bool) {
	for _, g := range e.Groups.All() {
		for _, v := range g.RestrictedValues.Values() {
			var witnesses []int
			for _, cell := range g.Cells {
				m := e.Board.Get(cell)
				if !m.IsSet() && m.Has(v) {
					witnesses = append(witnesses, cell)
				}
			}
			if len(witnesses) == 2 {
				return witnesses[0], true
			}
		}
	}
	return -1, false
}

// chooseValueOrder orders cell's remaining candidates for branching:
// ascending (deterministic) or shuffled with the driver's PRNG.
func (d *Driver) chooseValueOrder(e *propagation.Engine, cell int, random bool) []int {
	values := e.Board.Get(cell).Values()
	if !random {
		return values
	}
	d.rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	return values
}

// snapshot copies every cell's current mask, for building a solution
// result or folding into fill_real_candidates' accumulator.
func snapshot(e *propagation.Engine) []bitmask.Mask {
	out := make([]bitmask.Mask, e.Board.NumCells())
	for cell := range out {
		out[cell] = e.Board.Get(cell)
	}
	return out
}

// toModelMasks converts internal candidate masks to pkg/models' public,
// dependency-free Mask alias.
func toModelMasks(masks []bitmask.Mask) []models.Mask {
	out := make([]models.Mask, len(masks))
	for i, m := range masks {
		out[i] = models.Mask(m)
	}
	return out
}

// givensString canonicalizes a board's fixed cells into a dedup key for
// count_solutions' skip_set, one character per cell (base-36), unset
// cells as '.'.
func givensString(masks []bitmask.Mask) string {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	buf := make([]byte, len(masks))
	for i, m := range masks {
		if m.IsSet() {
			buf[i] = digits[m.Value()%36]
		} else {
			buf[i] = '.'
		}
	}
	return string(buf)
}
