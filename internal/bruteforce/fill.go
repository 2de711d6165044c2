package bruteforce

import (
	"context"
	"sync"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// maxRealCandidateSolutions caps fill_real_candidates' enumeration, per
// spec.md §9: exploring every solution of an underconstrained puzzle is
// unbounded, so the driver stops after a handful and reports what it saw.
const maxRealCandidateSolutions = 8

// FillRealCandidates enumerates up to numSolutions solutions (capped at
// maxRealCandidateSolutions) and unions the values each one assigns to
// every cell, per spec.md §4.8: a cell's resulting mask is the set of
// values actually achievable in some solution, which can be strictly
// smaller than its current logical candidate set. SolutionCounts records,
// per candidate index, how many of the explored solutions used it.
func (d *Driver) FillRealCandidates(ctx context.Context, progressCb func(int64), numSolutions int) models.RealCandidatesResult {
	if numSolutions <= 0 || numSolutions > maxRealCandidateSolutions {
		numSolutions = maxRealCandidateSolutions
	}

	masks := make([]bitmask.Mask, d.root.Board.NumCells())
	counts := make(map[int]int64)

	var (
		mu    sync.Mutex
		found int64
	)

	d.search(ctx, d.root.Clone(false), true, false, func(e *propagation.Engine) bool {
		mu.Lock()
		defer mu.Unlock()
		found++
		for cell := 0; cell < e.Board.NumCells(); cell++ {
			m := e.Board.Get(cell)
			v := m.Value()
			masks[cell] |= bitmask.Of(v)
			counts[e.Board.CandidateIndex(cell, v)]++
		}
		if progressCb != nil {
			progressCb(found)
		}
		return found >= int64(numSolutions)
	})

	return models.RealCandidatesResult{
		Masks:          toModelMasks(masks),
		SolutionCounts: counts,
		Valid:          found > 0,
	}
}
