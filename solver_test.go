package sudoku

import (
	"context"
	"errors"
	"testing"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

func TestNewRejectsBadDimensions(t *testing.T) {
	if _, err := New(0, 4, 4); err == nil {
		t.Error("New(0,4,4) should reject a zero width")
	}
	if _, err := New(4, 4, 32); err == nil {
		t.Error("New(4,4,32) should reject maxValue above 31")
	}
}

// classicSolver builds a finalized 4x4 classic-sudoku solver with the
// default box regions, all candidates open.
func classicSolver(t *testing.T) *Solver {
	t.Helper()
	s, err := New(4, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.SetRegions(board.DefaultRegions(4, 4, 4)); err != nil {
		t.Fatalf("SetRegions: %v", err)
	}
	if !s.FinalizeConstraints() {
		t.Fatalf("FinalizeConstraints() = false on an empty board")
	}
	return s
}

func TestFinalizeConstraintsSolvesByConsolidate(t *testing.T) {
	s := classicSolver(t)
	givens := []int{
		1, 2, 3, 0,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	for cell, v := range givens {
		if v == 0 {
			continue
		}
		if out := s.SetValue(cell, v); out == models.Invalid {
			t.Fatalf("SetValue(%d,%d) = Invalid", cell, v)
		}
	}
	out := s.Consolidate(nil)
	if out != models.PuzzleComplete {
		t.Fatalf("Consolidate() = %v, want PuzzleComplete", out)
	}
}

func TestSetValueBeforeFinalizeTouchesRawBoard(t *testing.T) {
	s, err := New(4, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if out := s.SetValue(0, 1); out != models.Changed {
		t.Errorf("SetValue before finalize = %v, want Changed (raw board.Fix, no cascade)", out)
	}
	if !s.Board().Get(0).IsSet() || s.Board().Get(0).Value() != 1 {
		t.Errorf("cell 0 = %v, want fixed to 1", s.Board().Get(0))
	}
}

func TestSetRegionsAfterFinalizeRejected(t *testing.T) {
	s := classicSolver(t)
	err := s.SetRegions(board.DefaultRegions(4, 4, 4))
	if err == nil {
		t.Fatal("SetRegions after FinalizeConstraints should fail")
	}
	if !errors.Is(err, models.ErrAlreadyFinalized) {
		t.Errorf("err = %v, want wrapping ErrAlreadyFinalized", err)
	}
}

func TestConsolidateBeforeFinalizeReturnsInvalid(t *testing.T) {
	s, err := New(4, 4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if out := s.Consolidate(nil); out != models.Invalid {
		t.Errorf("Consolidate() before finalize = %v, want Invalid", out)
	}
}

func TestFindSolutionOnAlmostSolvedBoard(t *testing.T) {
	s := classicSolver(t)
	givens := []int{
		1, 2, 3, 0,
		3, 4, 1, 2,
		2, 1, 4, 3,
		4, 3, 2, 1,
	}
	for cell, v := range givens {
		if v == 0 {
			continue
		}
		if out := s.SetValue(cell, v); out == models.Invalid {
			t.Fatalf("SetValue(%d,%d) = Invalid", cell, v)
		}
	}
	result := s.FindSolution(context.Background(), false, false)
	if !result.Found {
		t.Fatal("FindSolution() did not find the single remaining value")
	}
	if got := bitmask.Mask(result.Solution[3]).Value(); got != 4 {
		t.Errorf("solution cell 3 = %d, want 4", got)
	}
}

func TestCloneIsIndependentAfterFinalize(t *testing.T) {
	s := classicSolver(t)
	clone := s.Clone(false)

	if out := clone.SetValue(0, 1); out == models.Invalid {
		t.Fatalf("clone.SetValue(0,1) = Invalid")
	}
	if s.Board().Get(0).IsSet() {
		t.Error("mutating the clone's board must not affect the original")
	}
}
