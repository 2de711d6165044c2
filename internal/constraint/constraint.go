// Package constraint defines the Constraint capability (spec.md §4.7): the
// one contract the kernel makes with variant rules (arrows, cages,
// thermometers, ...). The concrete constraint library is out of scope per
// spec.md §1 — only the interface and a registry live here, plus a
// NullConstraint default implementation test doubles can embed.
package constraint

import (
	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/linkgraph"
	"github.com/rawblock/sudoku-kernel/internal/memo"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// Context is what a Constraint receives on every call: the board and
// weak-link graph it may mutate (only through their exported mutators —
// spec.md §4.7: "constraints must never touch the board directly" beyond
// those mutators), and the shared memo table. It is the Go rendition of
// "solver is passed as a parameter to every call" (spec.md §9 design
// notes: constraints hold no live reference back to the solver).
type Context struct {
	Board *board.Board
	Graph *linkgraph.Graph
	Memo  *memo.Table
}

// Constraint is the capability set every variant rule implements (spec.md
// §4.7). Modeled as a single interface rather than a virtual base class,
// per spec.md §9.
type Constraint interface {
	// Name identifies the constraint for step-log descriptions and
	// diagnostics (e.g. "Arrow r3c4").
	Name() string

	// InitCandidates prunes trivially impossible candidates.
	InitCandidates(ctx *Context) models.Outcome

	// InitLinks adds weak links that depend only on board geometry and
	// current candidate masks; may be called multiple times.
	InitLinks(ctx *Context, log *models.StepLog) models.Outcome

	// Enforce runs immediately after a value is set at cell. Returns false
	// iff the constraint is now violated or unsatisfiable.
	Enforce(ctx *Context, cell, value int) bool

	// StepLogic finds one constraint-specific elimination and returns at
	// the first one found.
	StepLogic(ctx *Context, log *models.StepLog, isBruteForcing bool) models.Outcome

	// Group declares a set of cells that forbid repetition of the values
	// this constraint restricts. Returns (nil, false) if this constraint
	// contributes no group.
	Group() (cells []int, ok bool)

	// CellsMustContain returns the subset of this constraint's cells
	// guaranteed to carry v, used by pointing and hidden singles. Returns
	// (nil, false) if the constraint cannot answer (no group, or v is
	// outside what it restricts).
	CellsMustContain(ctx *Context, v int) (cells []int, ok bool)

	// SeenCells returns extra cells to treat as "seen" (any-value weak
	// link) with cell, beyond what the weak-link graph already encodes.
	SeenCells(cell int) []int

	// SeenCellsByValueMask returns extra cells to treat as seen with cell
	// specifically for the values in mask.
	SeenCellsByValueMask(cell int, mask bitmask.Mask) []int

	// NeedsEnforce reports whether Enforce must be invoked after a value
	// is set. Constraints that only contribute candidate pruning / groups
	// can return false to skip the call entirely.
	NeedsEnforce() bool
}

// NullConstraint supplies no-op defaults for every Constraint method so a
// concrete constraint (or a test double) only needs to override what it
// actually uses. Embed it by value.
type NullConstraint struct{}

func (NullConstraint) Name() string { return "NullConstraint" }

func (NullConstraint) InitCandidates(*Context) models.Outcome { return models.None }

func (NullConstraint) InitLinks(*Context, *models.StepLog) models.Outcome { return models.None }

func (NullConstraint) Enforce(*Context, int, int) bool { return true }

func (NullConstraint) StepLogic(*Context, *models.StepLog, bool) models.Outcome {
	return models.None
}

func (NullConstraint) Group() ([]int, bool) { return nil, false }

func (NullConstraint) CellsMustContain(*Context, int) ([]int, bool) { return nil, false }

func (NullConstraint) SeenCells(int) []int { return nil }

func (NullConstraint) SeenCellsByValueMask(int, bitmask.Mask) []int { return nil }

func (NullConstraint) NeedsEnforce() bool { return false }

// Registry holds the ordered list of active constraints (spec.md §3).
type Registry struct {
	items []Constraint
}

// NewRegistry returns an empty constraint registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a constraint, preserving insertion order.
func (r *Registry) Add(c Constraint) {
	r.items = append(r.items, c)
}

// All returns every registered constraint in insertion order. Callers must
// not mutate the returned slice.
func (r *Registry) All() []Constraint {
	return r.items
}

// Clone returns a registry sharing the same constraint list — constraints
// are immutable rule objects shared by reference across solver clones
// (spec.md §4.9).
func (r *Registry) Clone() *Registry {
	return &Registry{items: r.items}
}
