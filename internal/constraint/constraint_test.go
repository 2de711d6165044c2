package constraint

import (
	"testing"

	"github.com/rawblock/sudoku-kernel/pkg/models"
)

func TestNullConstraintDefaults(t *testing.T) {
	var c NullConstraint

	if got := c.Name(); got != "NullConstraint" {
		t.Errorf("Name() = %q, want %q", got, "NullConstraint")
	}
	if out := c.InitCandidates(nil); out != models.None {
		t.Errorf("InitCandidates() = %v, want None", out)
	}
	if out := c.InitLinks(nil, nil); out != models.None {
		t.Errorf("InitLinks() = %v, want None", out)
	}
	if !c.Enforce(nil, 0, 1) {
		t.Error("Enforce() = false, want true (no-op constraint never rejects)")
	}
	if out := c.StepLogic(nil, nil, false); out != models.None {
		t.Errorf("StepLogic() = %v, want None", out)
	}
	if cells, ok := c.Group(); ok || cells != nil {
		t.Errorf("Group() = %v,%v, want nil,false", cells, ok)
	}
	if cells, ok := c.CellsMustContain(nil, 1); ok || cells != nil {
		t.Errorf("CellsMustContain() = %v,%v, want nil,false", cells, ok)
	}
	if cells := c.SeenCells(0); cells != nil {
		t.Errorf("SeenCells() = %v, want nil", cells)
	}
	if cells := c.SeenCellsByValueMask(0, 0); cells != nil {
		t.Errorf("SeenCellsByValueMask() = %v, want nil", cells)
	}
	if c.NeedsEnforce() {
		t.Error("NeedsEnforce() = true, want false")
	}
}

type namedNullConstraint struct {
	NullConstraint
	name string
}

func (n namedNullConstraint) Name() string { return n.name }

func TestRegistryPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	r.Add(namedNullConstraint{name: "first"})
	r.Add(namedNullConstraint{name: "second"})
	r.Add(namedNullConstraint{name: "third"})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("All() len = %d, want 3", len(all))
	}
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if got := all[i].Name(); got != w {
			t.Errorf("All()[%d].Name() = %q, want %q", i, got, w)
		}
	}
}

func TestRegistryCloneSharesConstraints(t *testing.T) {
	r := NewRegistry()
	r.Add(namedNullConstraint{name: "only"})

	clone := r.Clone()
	clone.Add(namedNullConstraint{name: "added-after-clone"})

	if len(r.All()) != 1 {
		t.Errorf("original registry len = %d, want 1 (clone must not mutate original)", len(r.All()))
	}
	if len(clone.All()) != 2 {
		t.Errorf("clone registry len = %d, want 2", len(clone.All()))
	}
}

func TestRegistryEmptyByDefault(t *testing.T) {
	r := NewRegistry()
	if all := r.All(); len(all) != 0 {
		t.Errorf("All() on empty registry = %v, want empty", all)
	}
}
