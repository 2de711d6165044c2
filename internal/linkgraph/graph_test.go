package linkgraph

import (
	"testing"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(9, 9, 9)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	if err := b.SetRegions(board.DefaultRegions(9, 9, 9)); err != nil {
		t.Fatalf("SetRegions: %v", err)
	}
	return b
}

func TestAddWeakLinkSymmetric(t *testing.T) {
	b := newTestBoard(t)
	g := New(b.NumCells() * b.MaxValue)

	c0 := b.CandidateIndex(0, 1)
	c1 := b.CandidateIndex(1, 1)
	if out := g.AddWeakLink(b, c0, c1); out != models.None {
		t.Fatalf("AddWeakLink = %v, want None", out)
	}
	if !g.Linked(c0, c1) || !g.Linked(c1, c0) {
		t.Error("weak link must be symmetric")
	}
	if g.LinkCount() != 1 {
		t.Errorf("LinkCount() = %d, want 1", g.LinkCount())
	}
}

func TestAddWeakLinkNoSelfLink(t *testing.T) {
	b := newTestBoard(t)
	g := New(b.NumCells() * b.MaxValue)
	c0 := b.CandidateIndex(0, 1)
	if out := g.AddWeakLink(b, c0, c0); out != models.None {
		t.Errorf("self link outcome = %v, want None", out)
	}
	if g.LinkCount() != 0 {
		t.Errorf("LinkCount() = %d, want 0", g.LinkCount())
	}
}

func TestAddWeakLinkDuplicateDoesNotDoubleCount(t *testing.T) {
	b := newTestBoard(t)
	g := New(b.NumCells() * b.MaxValue)
	c0 := b.CandidateIndex(0, 1)
	c1 := b.CandidateIndex(1, 1)
	g.AddWeakLink(b, c0, c1)
	g.AddWeakLink(b, c0, c1)
	if g.LinkCount() != 1 {
		t.Errorf("LinkCount() after duplicate add = %d, want 1", g.LinkCount())
	}
}

func TestAddWeakLinkCascadesWhenOneSideFixed(t *testing.T) {
	b := newTestBoard(t)
	g := New(b.NumCells() * b.MaxValue)
	b.Fix(0, 5)

	c0 := b.CandidateIndex(0, 5)
	c1 := b.CandidateIndex(1, 5)
	out := g.AddWeakLink(b, c0, c1)
	if out != models.Changed {
		t.Fatalf("AddWeakLink outcome = %v, want Changed", out)
	}
	if b.Get(1).Has(5) {
		t.Error("candidate 5 of cell 1 should have been eliminated")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTestBoard(t)
	g := New(b.NumCells() * b.MaxValue)
	c0 := b.CandidateIndex(0, 1)
	c1 := b.CandidateIndex(1, 1)
	g.AddWeakLink(b, c0, c1)

	clone := g.Clone()
	c2 := b.CandidateIndex(2, 1)
	clone.AddWeakLink(b, c0, c2)

	if g.Linked(c0, c2) {
		t.Error("mutating a clone must not affect the original graph")
	}
}

func TestSeenMapBuildAndExtra(t *testing.T) {
	b := newTestBoard(t)
	g := New(b.NumCells() * b.MaxValue)
	c0 := b.CandidateIndex(0, 1)
	c1 := b.CandidateIndex(1, 1)
	g.AddWeakLink(b, c0, c1)

	seen := Build(g, b)
	if !seen.Seen(0, 1, 1) {
		t.Error("cells 0,1 should be seen for value 1")
	}
	if !seen.Seen(0, 1, 0) {
		t.Error("cells 0,1 should be seen for 'any value'")
	}
	if seen.Seen(0, 1, 2) {
		t.Error("cells 0,1 should not be seen for value 2")
	}

	seen.AddExtra(0, 5, bitmask.AllValues(b.MaxValue))
	if !seen.Seen(0, 5, 0) {
		t.Error("AddExtra should register the pair as seen")
	}
}
