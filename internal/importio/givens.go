// Package importio implements the two plain-text board encodings named at
// the kernel's boundary (spec.md §6): a givens string (one fixed value per
// cell, or none) and a candidate string (the full candidate set per cell).
// Puzzle import/export proper — the compressed-JSON web-editor format and
// constraint-name lookup — is explicitly out of scope; this package only
// covers the two string grammars the kernel itself must agree on with its
// callers.
package importio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
)

// squareSide returns n such that n*n == l, or 0 if l is not a perfect
// square.
func squareSide(l int) int {
	for n := 1; n*n <= l; n++ {
		if n*n == l {
			return n
		}
	}
	return 0
}

// cubeSide returns n such that n*n*n == l, or 0 if l is not a perfect cube.
func cubeSide(l int) int {
	for n := 1; n*n*n <= l; n++ {
		if n*n*n == l {
			return n
		}
	}
	return 0
}

// wideDigits is how many characters a single 1-based value 1..n occupies
// in the wide (N>9) encoding: two hex-free decimal digits, zero-padded.
const wideDigits = 2

// ParseGivens decodes a givens string (spec.md §6): whitespace pre-trimmed,
// length a perfect square (one digit per cell, maxValue <= 9) or twice a
// perfect square (two digits per cell, maxValue <= 31); '.' or '0' marks an
// unset cell. Returns maxValue and one entry per cell (0 = unset).
func ParseGivens(s string) (maxValue int, values []int, err error) {
	s = strings.TrimSpace(s)

	if n := squareSide(len(s)); n > 0 && n <= 9 {
		return n, parseNarrowGivens(s, n), nil
	}
	if len(s)%2 == 0 {
		if n := squareSide(len(s) / 2); n > 0 && n <= 31 {
			values, err := parseWideGivens(s, n)
			return n, values, err
		}
	}
	return 0, nil, fmt.Errorf("importio: givens string length %d is not a perfect square (<=9) or twice one (<=31)", len(s))
}

func parseNarrowGivens(s string, n int) []int {
	values := make([]int, n*n)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '.' || ch == '0' {
			continue
		}
		values[i] = int(ch - '0')
	}
	return values
}

func parseWideGivens(s string, n int) ([]int, error) {
	values := make([]int, n*n)
	for i := 0; i < n*n; i++ {
		tok := s[i*wideDigits : i*wideDigits+wideDigits]
		if tok == ".." || tok == "00" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("importio: givens string has non-numeric token %q at cell %d", tok, i)
		}
		values[i] = v
	}
	return values, nil
}

// FormatGivens renders values (0 = unset) as a givens string, narrow
// (one digit per cell) when maxValue <= 9, wide (two, zero-padded) above
// that.
func FormatGivens(maxValue int, values []int) (string, error) {
	n := squareSide(len(values))
	if n == 0 {
		return "", fmt.Errorf("importio: %d values is not a perfect square cell count", len(values))
	}

	var sb strings.Builder
	if maxValue <= 9 {
		sb.Grow(len(values))
		for _, v := range values {
			if v == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + v))
		}
		return sb.String(), nil
	}

	sb.Grow(len(values) * wideDigits)
	for _, v := range values {
		if v == 0 {
			sb.WriteString("..")
			continue
		}
		fmt.Fprintf(&sb, "%0*d", wideDigits, v)
	}
	return sb.String(), nil
}

// MasksFromGivens builds the fixed/unfixed candidate masks a freshly
// finalized board would start from: an unset entry gets every candidate
// 1..maxValue, a set entry is fixed to its value.
func MasksFromGivens(maxValue int, values []int) []bitmask.Mask {
	all := bitmask.AllValues(maxValue)
	out := make([]bitmask.Mask, len(values))
	for i, v := range values {
		if v == 0 {
			out[i] = all
			continue
		}
		out[i] = bitmask.Fixed(v)
	}
	return out
}
