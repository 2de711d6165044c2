package chains

import (
	"fmt"
	"sort"

	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// kind names the shape of an alternating chain (spec.md §4.6.6).
type kind int

const (
	aic kind = iota
	cnl
	dnl
)

func (k kind) String() string {
	switch k {
	case aic:
		return "AIC"
	case cnl:
		return "CNL"
	case dnl:
		return "DNL"
	default:
		return "chain"
	}
}

// found is one candidate chain discovered by the search, with the
// eliminations it implies already computed.
type found struct {
	kind         kind
	path         []int
	eliminations []struct {
		cell int
		v    int
	}
}

const defaultMaxLen = 8
const lengthSlack = 4

// Step is registered as an Engine.ChainsTechnique hook.
func Step(e *propagation.Engine, log *models.StepLog, isBruteForcing bool) models.Outcome {
	sg := buildStrongGraph(e)

	starts := make([]int, 0, len(sg.adj))
	for start := range sg.adj {
		starts = append(starts, start)
	}
	sort.Ints(starts)

	var best *found
	maxLen := defaultMaxLen
	for _, start := range starts {
		for _, f := range searchFrom(e, sg, start, maxLen) {
			if len(f.eliminations) == 0 {
				continue
			}
			if best == nil || better(e, f, best) {
				best = f
				if len(f.path) < maxLen {
					maxLen = len(f.path) + lengthSlack
				}
			}
		}
	}
	if best == nil {
		return models.None
	}
	return applyChain(e, log, best)
}

// searchFrom enumerates every alternating chain starting at start (whose
// first link must be strong, per spec.md §4.6.6: "starting from each
// candidate with at least one strong link"), up to maxLen candidates,
// acyclic except possibly closing back on start.
func searchFrom(e *propagation.Engine, sg *strongGraph, start, maxLen int) []*found {
	var results []*found
	visited := map[int]bool{start: true}
	path := []int{start}

	var walk func(current int, viaStrong bool)
	walk = func(current int, viaStrong bool) {
		if len(path) > maxLen {
			return
		}
		if viaStrong {
			// next link must be weak: look at weak-link neighbors.
			for _, next := range e.Graph.Neighbors(current) {
				if next == start && len(path) >= 3 {
					results = append(results, classify(e, append(append([]int(nil), path...), next), false))
					continue
				}
				if visited[next] {
					continue
				}
				visited[next] = true
				path = append(path, next)
				walk(next, false)
				path = path[:len(path)-1]
				delete(visited, next)
			}
		} else {
			for _, edge := range sg.edges(current) {
				next := edge.To
				if next == start && len(path) >= 3 {
					results = append(results, classify(e, append(append([]int(nil), path...), next), true))
					continue
				}
				if visited[next] {
					continue
				}
				// Every strong-link extension ends the chain on a strong
				// link, which is a candidate open AIC even if the walk
				// continues past it looking for a closed loop.
				if len(path) >= 1 {
					results = append(results, classify(e, append(append([]int(nil), path...), next), false))
				}
				visited[next] = true
				path = append(path, next)
				walk(next, true)
				path = path[:len(path)-1]
				delete(visited, next)
			}
		}
	}
	// The first link away from start must be strong (spec.md §4.6.6:
	// "starting from each candidate with at least one strong link"), so
	// the walk begins as though it had just arrived via a weak link.
	walk(start, false)
	return results
}

// classify turns a raw candidate-index path into a chain classification
// plus its eliminations, per spec.md §4.6.6. closesOnStrong tells whether
// the closing link back to the origin is strong (DNL) or weak (CNL); for
// an open path (no closing link) the caller passes a path whose last
// element is not the origin, which classify treats as AIC.
func classify(e *propagation.Engine, path []int, closesOnStrong bool) *found {
	origin := path[0]
	closesToOrigin := path[len(path)-1] == origin

	if !closesToOrigin {
		return &found{kind: aic, path: path, eliminations: aicEliminations(e, path)}
	}
	if closesOnStrong {
		return &found{kind: dnl, path: path, eliminations: dnlEliminations(e, origin)}
	}
	return &found{kind: cnl, path: path, eliminations: cnlEliminations(e, path)}
}

type elimination = struct {
	cell int
	v    int
}

// aicEliminations implements the open-chain rule: each pair of same-parity
// strong endpoints can mutually eliminate any candidate weakly linked to
// both.
func aicEliminations(e *propagation.Engine, path []int) []elimination {
	if len(path) < 2 {
		return nil
	}
	a, b := path[0], path[len(path)-1]
	return weakReachOfBoth(e, a, b)
}

// dnlEliminations implements the closed-on-strong rule: the origin's value
// is false.
func dnlEliminations(e *propagation.Engine, origin int) []elimination {
	cell := e.Board.CellOfCandidate(origin)
	v := e.Board.ValueOfCandidate(origin)
	return []elimination{{cell: cell, v: v}}
}

// cnlEliminations implements the closed-on-weak rule over every pair of
// loop nodes (same-parity and cross pairs alike), eliminating candidates
// weakly linked to both. ALS-tagged strong links add no further
// eliminations here.
func cnlEliminations(e *propagation.Engine, path []int) []elimination {
	var out []elimination
	n := len(path) - 1 // last element duplicates path[0]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, weakReachOfBoth(e, path[i], path[j])...)
		}
	}
	return out
}

// weakReachOfBoth returns every unfixed candidate weakly linked to both a
// and b, excluding a and b's own cells.
func weakReachOfBoth(e *propagation.Engine, a, b int) []elimination {
	cellA := e.Board.CellOfCandidate(a)
	cellB := e.Board.CellOfCandidate(b)

	neighborsA := map[int]bool{}
	for _, n := range e.Graph.Neighbors(a) {
		neighborsA[n] = true
	}
	var out []elimination
	for _, n := range e.Graph.Neighbors(b) {
		if !neighborsA[n] {
			continue
		}
		cell := e.Board.CellOfCandidate(n)
		if cell == cellA || cell == cellB {
			continue
		}
		v := e.Board.ValueOfCandidate(n)
		if e.Board.Get(cell).Has(v) {
			out = append(out, elimination{cell: cell, v: v})
		}
	}
	return out
}

// better implements the chain-selection preference of spec.md §4.6.6,
// simplified to (elimination count, shorter length) since the full
// singles-after-basic-consolidation scoring would require a full
// consolidate run per candidate chain; eliminationCount and -length are
// the dominant, cheaply computed terms of that ordering.
func better(e *propagation.Engine, candidate, current *found) bool {
	if len(candidate.eliminations) != len(current.eliminations) {
		return len(candidate.eliminations) > len(current.eliminations)
	}
	return len(candidate.path) < len(current.path)
}

func applyChain(e *propagation.Engine, log *models.StepLog, f *found) models.Outcome {
	var out models.Outcome
	for _, elim := range f.eliminations {
		out = out.Merge(e.Board.ClearCandidate(elim.cell, elim.v))
		if out == models.Invalid {
			return out
		}
	}
	if out != models.None {
		log.Add(models.StepLogEntry{
			Description: fmt.Sprintf("%s chain, length %d", f.kind, len(f.path)-1),
		})
	}
	return out
}
