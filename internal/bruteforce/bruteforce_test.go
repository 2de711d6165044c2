package bruteforce

import (
	"context"
	"testing"

	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/constraint"
	"github.com/rawblock/sudoku-kernel/internal/linkgraph"
	"github.com/rawblock/sudoku-kernel/internal/memo"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

func newEngine(t *testing.T, maxValue int) *propagation.Engine {
	t.Helper()
	b, err := board.New(maxValue, maxValue, maxValue)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	if err := b.SetRegions(board.DefaultRegions(maxValue, maxValue, maxValue)); err != nil {
		t.Fatalf("SetRegions: %v", err)
	}
	groups := board.BuildStandardGroups(b)
	g := linkgraph.New(b.NumCells() * b.MaxValue)
	for _, grp := range groups.All() {
		for i := 0; i < len(grp.Cells); i++ {
			for j := i + 1; j < len(grp.Cells); j++ {
				for v := 1; v <= b.MaxValue; v++ {
					g.AddWeakLink(b, b.CandidateIndex(grp.Cells[i], v), b.CandidateIndex(grp.Cells[j], v))
				}
			}
		}
	}
	return propagation.New(b, g, groups, constraint.NewRegistry(), memo.New())
}

// latinSquare4 is a valid, fully-solved 4x4 Latin square: every row and
// column is a permutation of 1..4.
var latinSquare4 = []int{
	1, 2, 3, 4,
	3, 4, 1, 2,
	2, 1, 4, 3,
	4, 3, 2, 1,
}

func TestFindSolutionOnAlmostSolvedBoard(t *testing.T) {
	e := newEngine(t, 4)
	for cell, v := range latinSquare4 {
		if cell == 15 {
			continue // leave the last cell for the driver to find
		}
		if out := e.SetValue(cell, v); out == models.Invalid {
			t.Fatalf("SetValue(%d, %d) = Invalid", cell, v)
		}
	}

	d := New(e, 1, "test")
	result := d.FindSolution(context.Background(), false, false)
	if !result.Found {
		t.Fatal("FindSolution did not find a solution on an almost-solved board")
	}
	if got := int(result.Solution[15] &^ (1 << 31)); got != bitmaskOf(latinSquare4[15]) {
		t.Errorf("cell 15 = %d, want candidate bit for %d", got, latinSquare4[15])
	}
}

func bitmaskOf(v int) int { return 1 << uint(v-1) }

func TestCountSolutionsOnAlmostSolvedBoard(t *testing.T) {
	e := newEngine(t, 4)
	for cell, v := range latinSquare4 {
		if cell == 15 {
			continue
		}
		e.SetValue(cell, v)
	}

	d := New(e, 1, "test")
	result := d.CountSolutions(context.Background(), 0, false, nil, nil, nil)
	if result.Count != 1 {
		t.Errorf("CountSolutions = %d, want exactly 1 (only one value can complete the last cell)", result.Count)
	}
	if result.Capped {
		t.Error("CountSolutions reported Capped with no max set")
	}
}

func TestCountSolutionsRespectsSkipSet(t *testing.T) {
	e := newEngine(t, 4)
	for cell, v := range latinSquare4 {
		if cell == 15 {
			continue
		}
		e.SetValue(cell, v)
	}

	d := New(e, 1, "test")
	first := d.CountSolutions(context.Background(), 0, false, nil, nil, nil)
	if first.Count != 1 {
		t.Fatalf("setup: expected exactly one solution, got %d", first.Count)
	}

	var seenKey string
	d.search(context.Background(), e.Clone(false), false, false, func(sol *propagation.Engine) bool {
		seenKey = givensString(snapshot(sol))
		return true
	})

	skip := map[string]bool{seenKey: true}
	second := d.CountSolutions(context.Background(), 0, false, nil, nil, skip)
	if second.Count != 0 {
		t.Errorf("CountSolutions with the only solution in skipSet = %d, want 0", second.Count)
	}
}

func TestChooseBranchCellPrefersBivalueCell(t *testing.T) {
	e := newEngine(t, 4)
	e.Board.KeepMask(5, 1|2) // cell 5 now has exactly two candidates
	cell, ok := chooseBranchCell(e)
	if !ok || cell != 5 {
		t.Errorf("chooseBranchCell = (%d, %v), want (5, true)", cell, ok)
	}
}

func TestChooseValueOrderDeterministicAscending(t *testing.T) {
	e := newEngine(t, 4)
	d := New(e, 1, "test")
	values := d.chooseValueOrder(e, 0, false)
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			t.Fatalf("chooseValueOrder(random=false) = %v, want ascending", values)
		}
	}
}

func TestGivensStringRendersFixedAndUnfixedCells(t *testing.T) {
	e := newEngine(t, 4)
	e.SetValue(0, 2)
	s := givensString(snapshot(e))
	if len(s) != e.Board.NumCells() {
		t.Fatalf("givensString length = %d, want %d", len(s), e.Board.NumCells())
	}
	if s[0] != '2' {
		t.Errorf("givensString()[0] = %q, want '2'", s[0])
	}
	if s[1] != '.' {
		t.Errorf("givensString()[1] = %q, want '.'", s[1])
	}
}

func TestNextTaskIDDerivesFromParentAndIncrements(t *testing.T) {
	e := newEngine(t, 4)
	d := New(e, 1, "parent-abc")
	first := d.nextTaskID()
	second := d.nextTaskID()
	if first != "parent-abc/task1" {
		t.Errorf("first task ID = %q, want %q", first, "parent-abc/task1")
	}
	if second != "parent-abc/task2" {
		t.Errorf("second task ID = %q, want %q", second, "parent-abc/task2")
	}
}
