// Package sudoku is the kernel facade (spec.md §6): a single entry point
// wiring the board, weak-link graph, constraint registry, propagation
// engine and brute-force driver together, matching the lifecycle
// Setup -> FinalizeConstraints -> Ready described in spec.md §3.
package sudoku

import (
	"context"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/bruteforce"
	"github.com/rawblock/sudoku-kernel/internal/chains"
	"github.com/rawblock/sudoku-kernel/internal/constraint"
	"github.com/rawblock/sudoku-kernel/internal/contradiction"
	"github.com/rawblock/sudoku-kernel/internal/fishes"
	"github.com/rawblock/sudoku-kernel/internal/linkgraph"
	"github.com/rawblock/sudoku-kernel/internal/memo"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/internal/wings"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// phase tracks the Setup -> Ready lifecycle (spec.md §3).
type phase int

const (
	phaseSetup phase = iota
	phaseReady
)

// Solver is the kernel's single entry point. The zero value is not usable;
// construct with New.
type Solver struct {
	InstanceID string

	board       *board.Board
	graph       *linkgraph.Graph
	constraints *constraint.Registry
	engine      *propagation.Engine

	phase phase
}

// New creates a Solver over a width x height board where every cell starts
// with every candidate 1..maxValue (spec.md §6: "constructor new(width,
// height, max_value) with max_value <= 31").
func New(width, height, maxValue int) (*Solver, error) {
	b, err := board.New(width, height, maxValue)
	if err != nil {
		return nil, err
	}
	s := &Solver{
		InstanceID:  uuid.NewString(),
		board:       b,
		graph:       linkgraph.New(b.NumCells() * maxValue),
		constraints: constraint.NewRegistry(),
		phase:       phaseSetup,
	}
	log.Printf("[Solver %s] created %dx%d board, max value %d", s.InstanceID, width, height, maxValue)
	return s, nil
}

// SetRegions installs the region partition; must precede FinalizeConstraints
// (spec.md §6).
func (s *Solver) SetRegions(regions []int) error {
	if s.phase != phaseSetup {
		return models.NewSetupError(models.ErrAlreadyFinalized, "SetRegions called after FinalizeConstraints")
	}
	return s.board.SetRegions(regions)
}

// AddConstraint registers a variant constraint (spec.md §6). Must precede
// FinalizeConstraints.
func (s *Solver) AddConstraint(c constraint.Constraint) error {
	if s.phase != phaseSetup {
		return models.NewSetupError(models.ErrAlreadyFinalized, "AddConstraint called after FinalizeConstraints")
	}
	s.constraints.Add(c)
	return nil
}

// SetValue, ClearValue, SetMask, KeepMask and ClearMask are the direct
// board mutators (spec.md §6). Before FinalizeConstraints they touch the
// raw board (no cascade, no constraint enforcement — standard groups and
// the weak-link graph don't exist yet); after finalize SetValue/ClearValue
// route through the propagation engine so weak-link cascade and
// constraint enforcement apply.
func (s *Solver) SetValue(cell, v int) models.Outcome {
	if s.phase == phaseReady {
		return s.engine.SetValue(cell, v)
	}
	return s.board.Fix(cell, v)
}

func (s *Solver) ClearValue(cell, v int) models.Outcome {
	if s.phase == phaseReady {
		return s.engine.ClearValue(cell, v)
	}
	return s.board.ClearCandidate(cell, v)
}

func (s *Solver) SetMask(cell int, m bitmask.Mask) models.Outcome {
	return s.board.SetMask(cell, m)
}

func (s *Solver) KeepMask(cell int, m bitmask.Mask) models.Outcome {
	return s.board.KeepMask(cell, m)
}

func (s *Solver) ClearMask(cell int, m bitmask.Mask) models.Outcome {
	return s.board.ClearMask(cell, m)
}

// FinalizeConstraints builds the standard row/column/region groups and the
// weak-link graph, runs every constraint's InitCandidates/InitLinks/Group
// once, and transitions the solver to Ready (spec.md §4.3/§6). Returns
// false if any constraint reports the board infeasible during this setup
// pass (spec.md §7: "Initial infeasibility").
func (s *Solver) FinalizeConstraints() bool {
	if s.phase == phaseReady {
		return true
	}

	groups := board.BuildStandardGroups(s.board)
	for _, g := range groups.All() {
		for i := 0; i < len(g.Cells); i++ {
			for j := i + 1; j < len(g.Cells); j++ {
				for v := 1; v <= s.board.MaxValue; v++ {
					if s.graph.AddWeakLink(s.board, s.board.CandidateIndex(g.Cells[i], v), s.board.CandidateIndex(g.Cells[j], v)) == models.Invalid {
						log.Printf("[Solver %s] Invalid: standard group %s contradicts current masks", s.InstanceID, g.Name)
						return false
					}
				}
			}
		}
	}

	e := propagation.New(s.board, s.graph, groups, s.constraints, memo.New())
	e.FishesTechnique = fishes.Step
	e.WingsTechnique = wings.Step
	e.ChainsTechnique = chains.Step
	e.ContradictionTechnique = contradiction.Step
	ctx := &constraint.Context{Board: s.board, Graph: s.graph, Memo: e.Memo}

	for _, c := range s.constraints.All() {
		if out := c.InitCandidates(ctx); out == models.Invalid {
			log.Printf("[Solver %s] Invalid: constraint %q eliminated all candidates of some cell during init", s.InstanceID, c.Name())
			return false
		}
	}

	for _, c := range s.constraints.All() {
		cells, ok := c.Group()
		if !ok {
			continue
		}
		sorted := append([]int(nil), cells...)
		sort.Ints(sorted)
		restricted := constraintRestrictedValues(ctx, c, s.board.MaxValue)
		groups.Add(&board.Group{Kind: board.KindConstraint, Name: c.Name(), Cells: sorted, RestrictedValues: restricted, Source: c})

		for i := 0; i < len(sorted); i++ {
			for j := i + 1; j < len(sorted); j++ {
				for _, v := range restricted.Values() {
					if s.graph.AddWeakLink(s.board, s.board.CandidateIndex(sorted[i], v), s.board.CandidateIndex(sorted[j], v)) == models.Invalid {
						log.Printf("[Solver %s] Invalid: constraint group %q contradicts current masks", s.InstanceID, c.Name())
						return false
					}
				}
			}
		}
	}

	for _, c := range s.constraints.All() {
		if out := c.InitLinks(ctx, nil); out == models.Invalid {
			log.Printf("[Solver %s] Invalid: constraint %q reported invalid links during init", s.InstanceID, c.Name())
			return false
		}
	}

	e.RebuildSeen()
	s.engine = e
	s.phase = phaseReady
	log.Printf("[Solver %s] finalized: %d groups, %d weak links, %d constraints", s.InstanceID, len(groups.All()), s.graph.LinkCount(), len(s.constraints.All()))
	return true
}

// constraintRestrictedValues recovers which values a constraint-declared
// group restricts: every v for which CellsMustContain can answer at all
// (spec.md §3: "smaller groups ... forbid repetition only of the values
// the constraint declares"), since Constraint.Group() reports cells only.
func constraintRestrictedValues(ctx *constraint.Context, c constraint.Constraint, maxValue int) bitmask.Mask {
	var restricted bitmask.Mask
	for v := 1; v <= maxValue; v++ {
		if _, ok := c.CellsMustContain(ctx, v); ok {
			restricted |= bitmask.Of(v)
		}
	}
	if restricted == 0 {
		return bitmask.AllValues(maxValue)
	}
	return restricted
}

// requireReady returns ErrNotFinalized wrapped in a SetupError if the
// solver hasn't finalized yet.
func (s *Solver) requireReady() error {
	if s.phase != phaseReady {
		return models.NewSetupError(models.ErrNotFinalized, "call FinalizeConstraints first")
	}
	return nil
}

// Consolidate, ApplySingles and StepLogic run the logical solving pipeline
// (spec.md §4.6). They return models.Invalid, without panicking, if the
// solver isn't finalized yet; callers are expected to check
// FinalizeConstraints' return value before calling these.
func (s *Solver) Consolidate(log *models.StepLog) models.Outcome {
	if err := s.requireReady(); err != nil {
		return models.Invalid
	}
	return s.engine.Consolidate(log)
}

func (s *Solver) ApplySingles(log *models.StepLog) models.Outcome {
	if err := s.requireReady(); err != nil {
		return models.Invalid
	}
	return s.engine.ApplySingles(log)
}

func (s *Solver) StepLogic(log *models.StepLog, isBruteForcing bool) models.Outcome {
	if err := s.requireReady(); err != nil {
		return models.Invalid
	}
	return s.engine.StepLogic(log, isBruteForcing)
}

// FindSolution searches for any one solution via the brute-force driver
// (spec.md §4.8).
func (s *Solver) FindSolution(ctx context.Context, multithread, random bool) models.SolveResult {
	if err := s.requireReady(); err != nil {
		return models.SolveResult{}
	}
	d := bruteforce.New(s.engine, 1, s.InstanceID)
	log.Printf("[BruteForce %s] find_solution starting (multithread=%v random=%v)", s.InstanceID, multithread, random)
	result := d.FindSolution(ctx, multithread, random)
	log.Printf("[BruteForce %s] find_solution done: found=%v", s.InstanceID, result.Found)
	return result
}

// CountSolutions enumerates solutions up to max (spec.md §4.8).
func (s *Solver) CountSolutions(ctx context.Context, max int64, multithread bool, progressCb func(int64), solutionCb func(models.SolveResult) bool, skipSet map[string]bool) models.CountResult {
	if err := s.requireReady(); err != nil {
		return models.CountResult{}
	}
	d := bruteforce.New(s.engine, 1, s.InstanceID)
	log.Printf("[BruteForce %s] count_solutions starting (max=%d multithread=%v)", s.InstanceID, max, multithread)
	result := d.CountSolutions(ctx, max, multithread, progressCb, solutionCb, skipSet)
	log.Printf("[BruteForce %s] count_solutions done: count=%d capped=%v", s.InstanceID, result.Count, result.Capped)
	return result
}

// FillRealCandidates unions a handful of enumerated solutions into a
// fixed-board mask per cell (spec.md §4.8).
func (s *Solver) FillRealCandidates(ctx context.Context, progressCb func(int64), numSolutions int) models.RealCandidatesResult {
	if err := s.requireReady(); err != nil {
		return models.RealCandidatesResult{}
	}
	d := bruteforce.New(s.engine, 1, s.InstanceID)
	log.Printf("[BruteForce %s] fill_real_candidates starting (num_solutions=%d)", s.InstanceID, numSolutions)
	result := d.FillRealCandidates(ctx, progressCb, numSolutions)
	log.Printf("[BruteForce %s] fill_real_candidates done: valid=%v", s.InstanceID, result.Valid)
	return result
}

// Clone returns an independent Solver sharing the weak-link graph and seen
// map unless willRunLinkGeneratingLogic is true (spec.md §4.9). The clone
// keeps the parent's InstanceID (spec.md §3: copied, not regenerated) —
// only brute-force task clones get a derived child ID, and those are
// internal/bruteforce engine clones, not Solver clones.
func (s *Solver) Clone(willRunLinkGeneratingLogic bool) *Solver {
	clone := &Solver{
		InstanceID:  s.InstanceID,
		constraints: s.constraints.Clone(),
		phase:       s.phase,
	}
	if s.phase == phaseReady {
		ce := s.engine.Clone(willRunLinkGeneratingLogic)
		clone.engine = ce
		clone.board = ce.Board
		clone.graph = ce.Graph
	} else {
		clone.board = s.board.Clone()
		clone.graph = s.graph.Clone()
	}
	return clone
}

// Board exposes the underlying board for callers that need direct
// inspection (cell names, masks) without mutating solver state.
func (s *Solver) Board() *board.Board {
	return s.board
}
