package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for setup-time failures (spec.md §7), in the
// errors.Is-friendly style of other_examples' board.go ErrIllegalMove.
var (
	ErrBadDimensions    = errors.New("sudoku-kernel: invalid board dimensions")
	ErrBadRegions       = errors.New("sudoku-kernel: invalid region assignment")
	ErrAlreadyFinalized = errors.New("sudoku-kernel: operation not allowed after FinalizeConstraints")
	ErrNotFinalized     = errors.New("sudoku-kernel: operation requires a finalized solver")
)

// SetupError wraps one of the sentinels above with a specific message,
// so callers can both errors.Is(err, ErrBadRegions) and read a human
// description.
type SetupError struct {
	Kind error
	Msg  string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

func (e *SetupError) Unwrap() error {
	return e.Kind
}

// NewSetupError builds a SetupError for the given sentinel kind.
func NewSetupError(kind error, format string, args ...any) *SetupError {
	return &SetupError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
