// Package board implements the bitmask-encoded grid (spec.md §3/§4.3): a
// flat array of cell masks, a region map, and the Group/GroupRegistry types
// that row/column/region/constraint groups share.
package board

import (
	"fmt"
	"strings"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

// Board is the contiguous array of N*N cell masks plus the region map,
// grounded on other_examples' rybkr-sudoku board.go (flat cell array,
// row/col/region bitmasks) generalized to the spec's arbitrary N and
// variant regions.
type Board struct {
	Width    int
	Height   int
	MaxValue int

	cells   []bitmask.Mask
	regions []int // cell index -> region id, -1 until SetRegions
}

// New creates a Width x Height board where every cell starts with every
// candidate 1..maxValue possible. Per spec.md §1, 1 <= maxValue <= 31.
func New(width, height, maxValue int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, models.NewSetupError(models.ErrBadDimensions, "width=%d height=%d must be positive", width, height)
	}
	if maxValue <= 0 || maxValue > bitmask.MaxSupportedValue {
		return nil, models.NewSetupError(models.ErrBadDimensions, "maxValue=%d must be in [1,%d]", maxValue, bitmask.MaxSupportedValue)
	}

	n := width * height
	b := &Board{
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
		cells:    make([]bitmask.Mask, n),
		regions:  make([]int, n),
	}
	all := bitmask.AllValues(maxValue)
	for i := range b.cells {
		b.cells[i] = all
		b.regions[i] = -1
	}
	return b, nil
}

// NumCells returns Width*Height.
func (b *Board) NumCells() int {
	return b.Width * b.Height
}

// CellIndex returns the flat index of (row, col): row*Width + col.
func (b *Board) CellIndex(row, col int) int {
	return row*b.Width + col
}

// RowCol returns the (row, col) of a flat cell index.
func (b *Board) RowCol(cell int) (row, col int) {
	return cell / b.Width, cell % b.Width
}

// CandidateIndex returns the canonical candidate index for (cell, v):
// cellIndex*MaxValue + (v-1), per spec.md §3.
func (b *Board) CandidateIndex(cell, v int) int {
	return cell*b.MaxValue + (v - 1)
}

// CellOfCandidate returns the cell index a candidate index belongs to.
func (b *Board) CellOfCandidate(ci int) int {
	return ci / b.MaxValue
}

// ValueOfCandidate returns the value (1-based) a candidate index represents.
func (b *Board) ValueOfCandidate(ci int) int {
	return ci%b.MaxValue + 1
}

// Get returns the current mask of cell.
func (b *Board) Get(cell int) bitmask.Mask {
	return b.cells[cell]
}

// Region returns the region id of cell, or -1 if regions have not been set.
func (b *Board) Region(cell int) int {
	return b.regions[cell]
}

// Regions returns the full cell->region map. Callers must not mutate it.
func (b *Board) Regions() []int {
	return b.regions
}

// SetRegions installs the region map. Must be called before the solver
// finalizes; every region id must be in [0,MaxValue) and every region must
// contain exactly N cells where N == MaxValue (spec.md §3: "Every region
// must contain exactly N cells").
func (b *Board) SetRegions(regions []int) error {
	if len(regions) != b.NumCells() {
		return models.NewSetupError(models.ErrBadRegions, "expected %d entries, got %d", b.NumCells(), len(regions))
	}
	counts := make([]int, b.MaxValue)
	for cell, r := range regions {
		if r < 0 || r >= b.MaxValue {
			return models.NewSetupError(models.ErrBadRegions, "cell %d has out-of-range region id %d", cell, r)
		}
		counts[r]++
	}
	for r, c := range counts {
		if c != b.MaxValue {
			return models.NewSetupError(models.ErrBadRegions, "region %d has %d cells, want %d", r, c, b.MaxValue)
		}
	}
	b.regions = append([]int(nil), regions...)
	return nil
}

// DefaultRegions builds the default region partition (spec.md §3): the
// square-ish block partition when MaxValue is a perfect square and
// Width==Height==MaxValue, else one region per row.
func DefaultRegions(width, height, maxValue int) []int {
	n := width * height
	regions := make([]int, n)

	if width == maxValue && height == maxValue && isPerfectSquare(maxValue) {
		boxW, boxH := blockDims(maxValue)
		for row := 0; row < height; row++ {
			for col := 0; col < width; col++ {
				blockRow := row / boxH
				blockCol := col / boxW
				regions[row*width+col] = blockRow*(width/boxW) + blockCol
			}
		}
		return regions
	}

	// Fallback: one region per row (requires Width == MaxValue).
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			regions[row*width+col] = row % maxValue
		}
	}
	return regions
}

// isPerfectSquare reports whether n is a perfect square.
func isPerfectSquare(n int) bool {
	r := isqrt(n)
	return r*r == n
}

// blockDims returns the box dimensions (w,h) of a perfect-square n: both
// equal to sqrt(n).
func blockDims(n int) (w, h int) {
	r := isqrt(n)
	return r, r
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// ---- mutators: return models.Outcome per spec.md §4.3 ----

// outcomeFor classifies a mask transition: Invalid if the candidate set is
// now empty, Changed if it differs from before, None otherwise.
func outcomeFor(before, after bitmask.Mask) models.Outcome {
	if after.IsEmpty() {
		return models.Invalid
	}
	if after == before {
		return models.None
	}
	return models.Changed
}

// SetMask replaces cell's mask outright (marker bit included as given).
func (b *Board) SetMask(cell int, m bitmask.Mask) models.Outcome {
	before := b.cells[cell]
	b.cells[cell] = m
	return outcomeFor(before, m)
}

// KeepMask intersects cell's candidates with m (marker bit preserved).
func (b *Board) KeepMask(cell int, m bitmask.Mask) models.Outcome {
	before := b.cells[cell]
	after := before.Intersect(m)
	b.cells[cell] = after
	return outcomeFor(before, after)
}

// ClearMask subtracts m's candidate bits from cell (marker bit preserved).
func (b *Board) ClearMask(cell int, m bitmask.Mask) models.Outcome {
	before := b.cells[cell]
	after := before.Subtract(m)
	b.cells[cell] = after
	return outcomeFor(before, after)
}

// ClearCandidate removes a single candidate value from cell.
func (b *Board) ClearCandidate(cell, v int) models.Outcome {
	return b.ClearMask(cell, bitmask.Of(v))
}

// Fix sets cell to the single value v, setting the value-set marker bit.
// This is a low-level mutator: it does not cascade weak-link elimination or
// constraint enforcement (see the propagation package for SetValue).
func (b *Board) Fix(cell, v int) models.Outcome {
	before := b.cells[cell]
	after := bitmask.Fixed(v)
	b.cells[cell] = after
	if before.IsSet() && before.Value() == v {
		return models.None
	}
	return outcomeFor(before, after)
}

// IsComplete reports whether every cell is fixed.
func (b *Board) IsComplete() bool {
	for _, m := range b.cells {
		if !m.IsSet() {
			return false
		}
	}
	return true
}

// Clone duplicates the cell array; the region map is shared by reference
// since it is immutable after SetRegions, per spec.md §4.9.
func (b *Board) Clone() *Board {
	clone := &Board{
		Width:    b.Width,
		Height:   b.Height,
		MaxValue: b.MaxValue,
		cells:    append([]bitmask.Mask(nil), b.cells...),
		regions:  b.regions,
	}
	return clone
}

// CellName renders a single cell per spec.md §6: rXcY, 1-based.
func (b *Board) CellName(cell int) string {
	row, col := b.RowCol(cell)
	return fmt.Sprintf("r%dc%d", row+1, col+1)
}

// GroupCellName renders a set of cells per spec.md §6's naming convention:
// a shared row collapses to "rXc<comma-list>", a shared column to
// "r<comma-list>cY", otherwise cells are comma-separated individually.
func (b *Board) GroupCellName(cells []int) string {
	if len(cells) == 0 {
		return ""
	}
	if len(cells) == 1 {
		return b.CellName(cells[0])
	}

	sameRow, sameCol := true, true
	row0, col0 := b.RowCol(cells[0])
	for _, c := range cells[1:] {
		r, c2 := b.RowCol(c)
		if r != row0 {
			sameRow = false
		}
		if c2 != col0 {
			sameCol = false
		}
	}

	if sameRow {
		var cols []string
		for _, c := range cells {
			_, col := b.RowCol(c)
			cols = append(cols, fmt.Sprintf("%d", col+1))
		}
		return fmt.Sprintf("r%dc%s", row0+1, strings.Join(cols, ","))
	}
	if sameCol {
		var rows []string
		for _, c := range cells {
			r, _ := b.RowCol(c)
			rows = append(rows, fmt.Sprintf("%d", r+1))
		}
		return fmt.Sprintf("r%sc%d", strings.Join(rows, ","), col0+1)
	}

	var names []string
	for _, c := range cells {
		names = append(names, b.CellName(c))
	}
	return strings.Join(names, ",")
}

// Format renders the board as a human-readable grid, grounded on
// other_examples' rybkr-sudoku board.go Format().
func (b *Board) Format() string {
	var sb strings.Builder
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			m := b.cells[b.CellIndex(row, col)]
			if m.IsSet() {
				fmt.Fprintf(&sb, "%2d ", m.Value())
			} else {
				sb.WriteString(" . ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
