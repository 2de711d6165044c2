// Package propagation implements the logical solving engine (spec.md §4.5,
// §4.6): value assignment with weak-link cascade and constraint
// enforcement, then the fixed-order technique pipeline (singles, tuples,
// pointing, direct cell forcing) that consolidate drives to a fixed point.
package propagation

import (
	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/combinatorics"
	"github.com/rawblock/sudoku-kernel/internal/constraint"
	"github.com/rawblock/sudoku-kernel/internal/linkgraph"
	"github.com/rawblock/sudoku-kernel/internal/memo"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// Technique is a single step_logic contributor invoked by consolidate for
// the late pipeline stages (fishes, wings, chains, contradictions) that
// live in their own packages to avoid a dependency cycle back into
// propagation.
type Technique func(e *Engine, log *models.StepLog, isBruteForcing bool) models.Outcome

// Engine bundles everything a technique needs: the board, weak-link graph
// and derived seen map, the group and constraint registries, the shared
// memo table, and the combinatorics tables tuple search walks.
type Engine struct {
	Board       *board.Board
	Graph       *linkgraph.Graph
	Seen        *linkgraph.SeenMap
	Groups      *board.Registry
	Constraints *constraint.Registry
	Memo        *memo.Table
	Tables      *combinatorics.Tables

	// FishesTechnique, WingsTechnique, ChainsTechnique and
	// ContradictionTechnique are the step 7-10 hooks (spec.md §4.6);
	// nil means "skip this stage", so propagation is fully usable before
	// those packages exist and a board with no such registered technique
	// behaves exactly as apply_singles/prep_for_brute_force expect.
	FishesTechnique        Technique
	WingsTechnique          Technique
	ChainsTechnique         Technique
	ContradictionTechnique  Technique
}

// New builds an Engine over an already-finalized board: regions set,
// standard groups and weak-link graph built, constraints registered.
func New(b *board.Board, g *linkgraph.Graph, groups *board.Registry, constraints *constraint.Registry, m *memo.Table) *Engine {
	e := &Engine{
		Board:       b,
		Graph:       g,
		Groups:      groups,
		Constraints: constraints,
		Memo:        m,
		Tables:      combinatorics.New(b.MaxValue),
	}
	e.RebuildSeen()
	return e
}

// RebuildSeen recomputes the seen map from the current weak-link graph,
// then folds in every constraint's extra seen pairs (spec.md §4.4: "plus
// any extra pairs a constraint contributes via seen_cells /
// seen_cells_by_value_mask"). Called whenever a constraint's init_links
// grows the graph.
func (e *Engine) RebuildSeen() {
	e.Seen = linkgraph.Build(e.Graph, e.Board)
	for cell := 0; cell < e.Board.NumCells(); cell++ {
		for _, c := range e.Constraints.All() {
			for _, other := range c.SeenCells(cell) {
				e.Seen.AddExtra(cell, other, bitmask.AllValues(e.Board.MaxValue))
			}
			for _, v := range bitmask.AllValues(e.Board.MaxValue).Values() {
				for _, other := range c.SeenCellsByValueMask(cell, bitmask.Of(v)) {
					e.Seen.AddExtra(cell, other, bitmask.Of(v))
				}
			}
		}
	}
}

func (e *Engine) ctx() *constraint.Context {
	return &constraint.Context{Board: e.Board, Graph: e.Graph, Memo: e.Memo}
}

// Clone returns an Engine over an independent board clone. The weak-link
// graph and seen map are shared by reference unless willRunLinkGeneratingLogic
// is true, matching the solver-level clone contract (spec.md §4.9).
func (e *Engine) Clone(willRunLinkGeneratingLogic bool) *Engine {
	clone := &Engine{
		Board:                  e.Board.Clone(),
		Groups:                 e.Groups,
		Constraints:            e.Constraints.Clone(),
		Memo:                   e.Memo,
		Tables:                 e.Tables,
		FishesTechnique:        e.FishesTechnique,
		WingsTechnique:         e.WingsTechnique,
		ChainsTechnique:        e.ChainsTechnique,
		ContradictionTechnique: e.ContradictionTechnique,
	}
	if willRunLinkGeneratingLogic {
		clone.Graph = e.Graph.Clone()
		clone.Seen = linkgraph.Build(clone.Graph, clone.Board)
	} else {
		clone.Graph = e.Graph
		clone.Seen = e.Seen
	}
	return clone
}
