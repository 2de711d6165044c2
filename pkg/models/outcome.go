// Package models holds the result and configuration types shared across the
// solver kernel's packages and its CLI boundary — the json-tagged public
// surface.
package models

// Outcome is the result every board mutator and technique returns per
// spec.md §3/§4.3: None (no change), Changed (progress made), Invalid (the
// board is now contradictory), plus a fourth value, PuzzleComplete (every
// cell is fixed).
type Outcome int

const (
	// None indicates the operation made no change.
	None Outcome = iota
	// Changed indicates the operation eliminated at least one candidate or
	// fixed at least one cell.
	Changed
	// Invalid indicates the board is now contradictory; the caller must
	// discard this solver (or this branch, in brute force).
	Invalid
	// PuzzleComplete indicates every cell is now fixed to a single value.
	PuzzleComplete
)

func (o Outcome) String() string {
	switch o {
	case None:
		return "None"
	case Changed:
		return "Changed"
	case Invalid:
		return "Invalid"
	case PuzzleComplete:
		return "PuzzleComplete"
	default:
		return "Unknown"
	}
}

// Merge combines a running outcome with a newly observed one, preserving the
// "most significant" result: Invalid dominates everything, PuzzleComplete
// dominates Changed/None, Changed dominates None.
func (o Outcome) Merge(other Outcome) Outcome {
	rank := func(x Outcome) int {
		switch x {
		case Invalid:
			return 3
		case PuzzleComplete:
			return 2
		case Changed:
			return 1
		default:
			return 0
		}
	}
	if rank(other) > rank(o) {
		return other
	}
	return o
}
