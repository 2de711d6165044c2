package bruteforce

import (
	"context"
	"sync"

	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// FindSolution searches for any one solution (spec.md §4.8). The first
// branch to reach a complete board wins; ctx is checked before every
// consolidate and branch push, and cancellation propagates to every other
// in-flight branch via the internal cancel used by search.
func (d *Driver) FindSolution(ctx context.Context, multithread, random bool) models.SolveResult {
	var (
		mu     sync.Mutex
		result models.SolveResult
	)

	d.search(ctx, d.root.Clone(false), multithread, random, func(e *propagation.Engine) bool {
		mu.Lock()
		defer mu.Unlock()
		if result.Found {
			return true // another goroutine already won the race; stop
		}
		result = models.SolveResult{Found: true, Solution: toModelMasks(snapshot(e))}
		return true
	})

	return result
}
