package bruteforce

import (
	"context"
	"sync"

	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// CountSolutions enumerates solutions up to max (0 means unlimited), per
// spec.md §4.8. progressCb, if non-nil, is called with the running total
// after each solution found; solutionCb, if non-nil, may return false to
// stop the search early. skipSet, if non-nil, is a set of canonical givens
// strings (see givensString) whose matching solutions are not counted,
// letting a caller dedup against solutions it has already seen.
func (d *Driver) CountSolutions(ctx context.Context, max int64, multithread bool, progressCb func(int64), solutionCb func(models.SolveResult) bool, skipSet map[string]bool) models.CountResult {
	var (
		mu     sync.Mutex
		count  int64
		capped bool
	)

	d.search(ctx, d.root.Clone(false), multithread, false, func(e *propagation.Engine) bool {
		masks := snapshot(e)

		mu.Lock()
		defer mu.Unlock()
		if skipSet != nil && skipSet[givensString(masks)] {
			return false
		}

		count++
		if progressCb != nil {
			progressCb(count)
		}

		stop := false
		if solutionCb != nil && !solutionCb(models.SolveResult{Found: true, Solution: toModelMasks(masks)}) {
			stop = true
		}
		if max > 0 && count >= max {
			capped = true
			stop = true
		}
		return stop
	})

	return models.CountResult{Count: count, Capped: capped}
}
