package board

import (
	"fmt"
	"sort"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
)

// Kind distinguishes the origin of a Group (spec.md §3).
type Kind int

const (
	KindRow Kind = iota
	KindColumn
	KindRegion
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindRow:
		return "Row"
	case KindColumn:
		return "Column"
	case KindRegion:
		return "Region"
	case KindConstraint:
		return "Constraint"
	default:
		return "Unknown"
	}
}

// Group is a named cell-set that forbids repetition of some set of values
// (spec.md §3). A group with exactly NumCells==MaxValue cells forbids
// repetition of every value; smaller constraint-contributed groups forbid
// repetition only of the values in RestrictedValues.
type Group struct {
	Kind             Kind
	Name             string
	Cells            []int // sorted ascending
	RestrictedValues bitmask.Mask // which values repetition is forbidden for
	Source           any   // back-pointer to the originating constraint, or nil
}

// IsFullGroup reports whether this group forbids repetition of every value
// (an N-cell row/column/region, or a constraint group declaring all N values).
func (g *Group) IsFullGroup(maxValue int) bool {
	return len(g.Cells) == maxValue && g.RestrictedValues == bitmask.AllValues(maxValue)
}

// Registry holds every group in deterministic iteration order: sorted by
// (Kind, Name, Cells), per spec.md §3.
type Registry struct {
	groups []*Group
}

// NewRegistry returns an empty group registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add inserts a group and keeps the registry sorted.
func (r *Registry) Add(g *Group) {
	r.groups = append(r.groups, g)
	sort.SliceStable(r.groups, func(i, j int) bool {
		a, b := r.groups[i], r.groups[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return lessIntSlice(a.Cells, b.Cells)
	})
}

func lessIntSlice(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// All returns every group in deterministic order. Callers must not mutate
// the returned slice.
func (r *Registry) All() []*Group {
	return r.groups
}

// ContainingCell returns every group that contains cell.
func (r *Registry) ContainingCell(cell int) []*Group {
	var out []*Group
	for _, g := range r.groups {
		if containsSorted(g.Cells, cell) {
			out = append(out, g)
		}
	}
	return out
}

func containsSorted(cells []int, cell int) bool {
	i := sort.SearchInts(cells, cell)
	return i < len(cells) && cells[i] == cell
}

// BuildStandardGroups creates the row, column, and region groups for a
// board with regions already set, per spec.md §4.3 ("Standard groups ...
// are created during finalize").
func BuildStandardGroups(b *Board) *Registry {
	reg := NewRegistry()
	all := bitmask.AllValues(b.MaxValue)

	for row := 0; row < b.Height; row++ {
		cells := make([]int, 0, b.Width)
		for col := 0; col < b.Width; col++ {
			cells = append(cells, b.CellIndex(row, col))
		}
		reg.Add(&Group{Kind: KindRow, Name: rowName(row), Cells: cells, RestrictedValues: all})
	}

	for col := 0; col < b.Width; col++ {
		cells := make([]int, 0, b.Height)
		for row := 0; row < b.Height; row++ {
			cells = append(cells, b.CellIndex(row, col))
		}
		reg.Add(&Group{Kind: KindColumn, Name: colName(col), Cells: cells, RestrictedValues: all})
	}

	byRegion := make(map[int][]int)
	for cell, r := range b.Regions() {
		byRegion[r] = append(byRegion[r], cell)
	}
	for r := 0; r < b.MaxValue; r++ {
		cells := byRegion[r]
		sort.Ints(cells)
		reg.Add(&Group{Kind: KindRegion, Name: regionName(r), Cells: cells, RestrictedValues: all})
	}

	return reg
}

func rowName(row int) string  { return fmt.Sprintf("Row%d", row+1) }
func colName(col int) string  { return fmt.Sprintf("Col%d", col+1) }
func regionName(r int) string { return fmt.Sprintf("Region%d", r+1) }
