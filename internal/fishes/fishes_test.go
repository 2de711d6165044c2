package fishes

import (
	"testing"

	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/constraint"
	"github.com/rawblock/sudoku-kernel/internal/linkgraph"
	"github.com/rawblock/sudoku-kernel/internal/memo"
	"github.com/rawblock/sudoku-kernel/internal/propagation"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

func newEngine(t *testing.T, width, height, maxValue int) *propagation.Engine {
	t.Helper()
	b, err := board.New(width, height, maxValue)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	if err := b.SetRegions(board.DefaultRegions(width, height, maxValue)); err != nil {
		t.Fatalf("SetRegions: %v", err)
	}
	groups := board.BuildStandardGroups(b)
	g := linkgraph.New(b.NumCells() * b.MaxValue)
	return propagation.New(b, g, groups, constraint.NewRegistry(), memo.New())
}

func TestStepSkipsNonSquareBoards(t *testing.T) {
	// A 2-wide, 8-tall board with max value 4. DefaultRegions' row fallback
	// cannot partition this shape into 4-cell regions, so each region is a
	// 2x2 block (rows 2r and 2r+1).
	b, err := board.New(2, 8, 4)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	regions := make([]int, b.NumCells())
	for cell := range regions {
		row, _ := b.RowCol(cell)
		regions[cell] = row / 2
	}
	if err := b.SetRegions(regions); err != nil {
		t.Fatalf("SetRegions: %v", err)
	}
	e := propagation.New(b, linkgraph.New(b.NumCells()*b.MaxValue), board.BuildStandardGroups(b), constraint.NewRegistry(), memo.New())
	if out := Step(e, &models.StepLog{}, false); out != models.None {
		t.Errorf("Step on a non-square board = %v, want None", out)
	}
}

func TestStepNoFindOnFreshBoard(t *testing.T) {
	e := newEngine(t, 4, 4, 4)
	if out := Step(e, &models.StepLog{}, false); out != models.None {
		t.Errorf("Step on a fresh board = %v, want None (no fish possible yet)", out)
	}
}

func TestPresenceMatricesTracksUnfixedCandidates(t *testing.T) {
	e := newEngine(t, 4, 4, 4)
	e.Board.Fix(0, 1) // r1c1 = 1, low-level, no cascade
	rowsByCol, colsByRow := presenceMatrices(e.Board, 4, 1)
	if len(rowsByCol[0]) != 3 {
		t.Errorf("rowsByCol[0] = %v, want 3 remaining rows (cell 0 fixed out)", rowsByCol[0])
	}
	if len(colsByRow[0]) != 3 {
		t.Errorf("colsByRow[0] = %v, want 3 remaining cols", colsByRow[0])
	}
}

func TestFishNameLookup(t *testing.T) {
	cases := map[int]string{2: "X-Wing", 3: "Swordfish", 4: "Jellyfish", 5: "5-Fish"}
	for k, want := range cases {
		if got := fishName(k); got != want {
			t.Errorf("fishName(%d) = %q, want %q", k, got, want)
		}
	}
}
