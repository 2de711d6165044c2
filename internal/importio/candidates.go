package importio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
)

// ParseCandidates decodes a candidate string (spec.md §6): length is a
// perfect cube N^3 (one digit-slot per candidate value per cell, maxValue
// <= 9) or twice one, 2*N^3 (two digit-slots, maxValue <= 31); a slot is
// '.' (that value not a candidate) or the value itself (candidate
// present). A cell with exactly one present value and the value-set
// convention (handled by the caller via bitmask.Mask.WithValueSet) is left
// to the caller — this package only reports the raw candidate set.
func ParseCandidates(s string) (maxValue int, masks []bitmask.Mask, err error) {
	s = strings.TrimSpace(s)

	if n := cubeSide(len(s)); n > 0 && n <= 9 {
		return n, parseNarrowCandidates(s, n), nil
	}
	if len(s)%2 == 0 {
		if n := cubeSide(len(s) / 2); n > 0 && n <= 31 {
			masks, err := parseWideCandidates(s, n)
			return n, masks, err
		}
	}
	return 0, nil, fmt.Errorf("importio: candidate string length %d is not a perfect cube (<=9) or twice one (<=31)", len(s))
}

func parseNarrowCandidates(s string, n int) []bitmask.Mask {
	masks := make([]bitmask.Mask, n*n)
	for cell := 0; cell < n*n; cell++ {
		var m bitmask.Mask
		for slot := 0; slot < n; slot++ {
			ch := s[cell*n+slot]
			if ch == '.' {
				continue
			}
			m |= bitmask.Of(slot + 1)
		}
		masks[cell] = m
	}
	return masks
}

func parseWideCandidates(s string, n int) ([]bitmask.Mask, error) {
	masks := make([]bitmask.Mask, n*n)
	cellWidth := n * wideDigits
	for cell := 0; cell < n*n; cell++ {
		var m bitmask.Mask
		base := cell * cellWidth
		for slot := 0; slot < n; slot++ {
			tok := s[base+slot*wideDigits : base+slot*wideDigits+wideDigits]
			if tok == ".." {
				continue
			}
			if _, err := strconv.Atoi(tok); err != nil {
				return nil, fmt.Errorf("importio: candidate string has non-numeric token %q at cell %d slot %d", tok, cell, slot)
			}
			m |= bitmask.Of(slot + 1)
		}
		masks[cell] = m
	}
	return masks, nil
}

// FormatCandidates renders masks as a candidate string, narrow when
// maxValue <= 9, wide above that. The value-set marker bit, if present, is
// ignored: a fixed cell renders as though its single candidate were its
// only remaining one, since the string format has no separate "fixed" bit.
func FormatCandidates(maxValue int, masks []bitmask.Mask) (string, error) {
	n := squareSide(len(masks))
	if n == 0 {
		return "", fmt.Errorf("importio: %d masks is not a perfect square cell count", len(masks))
	}

	var sb strings.Builder
	if maxValue <= 9 {
		sb.Grow(len(masks) * n)
		for _, m := range masks {
			for v := 1; v <= n; v++ {
				if m.Has(v) {
					sb.WriteByte(byte('0' + v))
				} else {
					sb.WriteByte('.')
				}
			}
		}
		return sb.String(), nil
	}

	sb.Grow(len(masks) * n * wideDigits)
	for _, m := range masks {
		for v := 1; v <= n; v++ {
			if m.Has(v) {
				fmt.Fprintf(&sb, "%0*d", wideDigits, v)
			} else {
				sb.WriteString("..")
			}
		}
	}
	return sb.String(), nil
}
