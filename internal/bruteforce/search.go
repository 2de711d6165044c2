package bruteforce

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// onSolution is called once per complete board the walk reaches; it
// returns true to stop the whole search (find_solution: first solution is
// enough) or false to keep exploring other branches (count_solutions,
// fill_real_candidates).
type onSolution func(e *propagation.Engine) bool

// search walks the DFS tree rooted at root, consolidating each node with
// PrepForBruteForce and branching per chooseBranchCell/chooseValueOrder
// (spec.md §4.8). New branches run on their own goroutine while the
// number of concurrently running branches is below the driver's bound
// (golang.org/x/sync/semaphore, mirroring spec.md §4.8.1's "num_running_tasks
// bounded by max(1, cores-1)"); once the bound is reached, or when
// multithread is false, a branch is walked inline by the caller's own
// goroutine instead of spawning a new one. search blocks until every
// branch has resolved, been cancelled, or a solution callback asked to
// stop.
func (d *Driver) search(ctx context.Context, root *propagation.Engine, multithread, random bool, cb onSolution) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bound := d.bound
	if !multithread {
		bound = 1
	}
	sem := semaphore.NewWeighted(bound)

	var stopped atomic.Bool
	var wg sync.WaitGroup

	var walk func(e *propagation.Engine)
	walk = func(e *propagation.Engine) {
		defer wg.Done()
		if stopped.Load() || ctx.Err() != nil {
			return
		}

		out := e.PrepForBruteForce(nil)
		if out == models.Invalid {
			return
		}
		if e.Board.IsComplete() {
			if cb(e) {
				stopped.Store(true)
				cancel()
			}
			return
		}

		cell, ok := chooseBranchCell(e)
		if !ok {
			return
		}
		v := d.chooseValueOrder(e, cell, random)[0]

		var children []*propagation.Engine
		setClone := e.Clone(false)
		if setClone.SetValue(cell, v) != models.Invalid {
			children = append(children, setClone)
		}
		clearClone := e.Clone(false)
		if clearClone.ClearValue(cell, v) != models.Invalid {
			children = append(children, clearClone)
		}

		for i, child := range children {
			wg.Add(1)
			last := i == len(children)-1
			if multithread && !last && sem.TryAcquire(1) {
				taskID := d.nextTaskID()
				log.Printf("[BruteForce %s] forked at cell=%d value=%d", taskID, cell, v)
				go func(c *propagation.Engine) {
					defer sem.Release(1)
					walk(c)
				}(child)
				continue
			}
			walk(child)
		}
	}

	wg.Add(1)
	walk(root)
	wg.Wait()
}
