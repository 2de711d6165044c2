package importio

import (
	"strings"
	"testing"

	"github.com/rawblock/sudoku-kernel/internal/bitmask"
)

func TestParseGivensNarrow(t *testing.T) {
	maxValue, values, err := ParseGivens("  1.34234141233214 \n")
	if err != nil {
		t.Fatalf("ParseGivens: %v", err)
	}
	if maxValue != 4 {
		t.Fatalf("maxValue = %d, want 4", maxValue)
	}
	want := []int{1, 0, 3, 4, 2, 3, 4, 1, 4, 1, 2, 3, 3, 2, 1, 4}
	if len(values) != len(want) {
		t.Fatalf("len(values) = %d, want %d", len(values), len(want))
	}
	for i, v := range want {
		if values[i] != v {
			t.Errorf("values[%d] = %d, want %d", i, values[i], v)
		}
	}
}

func TestFormatGivensNarrowRoundTrips(t *testing.T) {
	values := []int{1, 0, 3, 4, 2, 3, 4, 1, 4, 1, 2, 3, 3, 2, 1, 4}
	s, err := FormatGivens(4, values)
	if err != nil {
		t.Fatalf("FormatGivens: %v", err)
	}
	maxValue, got, err := ParseGivens(s)
	if err != nil {
		t.Fatalf("ParseGivens(FormatGivens(...)): %v", err)
	}
	if maxValue != 4 {
		t.Fatalf("round trip maxValue = %d, want 4", maxValue)
	}
	for i, v := range values {
		if got[i] != v {
			t.Errorf("round trip values[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestParseGivensWide(t *testing.T) {
	// A 10x10 board (maxValue 10 forces the wide, two-digit-per-cell
	// encoding): cell 0 = 1, cell 1 = 10, every other cell unset.
	tokens := make([]string, 100)
	for i := range tokens {
		tokens[i] = ".."
	}
	tokens[0] = "01"
	tokens[1] = "10"
	s := strings.Join(tokens, "")

	maxValue, values, err := ParseGivens(s)
	if err != nil {
		t.Fatalf("ParseGivens: %v", err)
	}
	if maxValue != 10 {
		t.Fatalf("maxValue = %d, want 10", maxValue)
	}
	if values[0] != 1 {
		t.Errorf("values[0] = %d, want 1", values[0])
	}
	if values[1] != 10 {
		t.Errorf("values[1] = %d, want 10", values[1])
	}
	if values[2] != 0 {
		t.Errorf("values[2] = %d, want 0", values[2])
	}
}

func TestParseGivensRejectsBadLength(t *testing.T) {
	if _, _, err := ParseGivens("12345"); err == nil {
		t.Error("ParseGivens(\"12345\") should reject a non-square length")
	}
}

func TestMasksFromGivens(t *testing.T) {
	masks := MasksFromGivens(4, []int{0, 2, 0, 0})
	if masks[0] != bitmask.AllValues(4) {
		t.Errorf("unset cell mask = %b, want all candidates", masks[0])
	}
	if masks[1] != bitmask.Fixed(2) {
		t.Errorf("set cell mask = %b, want Fixed(2)", masks[1])
	}
}

func TestParseAndFormatCandidatesNarrowRoundTrip(t *testing.T) {
	// 2x2 board (n=2): cell 0 = {1,2}, cell 1 = {1}, cell 2 = {2}, cell 3 = {}
	s := "12" + "1." + ".2" + ".."
	maxValue, masks, err := ParseCandidates(s)
	if err != nil {
		t.Fatalf("ParseCandidates: %v", err)
	}
	if maxValue != 2 {
		t.Fatalf("maxValue = %d, want 2", maxValue)
	}
	if masks[0] != (bitmask.Of(1) | bitmask.Of(2)) {
		t.Errorf("masks[0] = %b, want {1,2}", masks[0])
	}
	if masks[1] != bitmask.Of(1) {
		t.Errorf("masks[1] = %b, want {1}", masks[1])
	}
	if masks[3] != 0 {
		t.Errorf("masks[3] = %b, want empty", masks[3])
	}

	out, err := FormatCandidates(maxValue, masks)
	if err != nil {
		t.Fatalf("FormatCandidates: %v", err)
	}
	if out != s {
		t.Errorf("FormatCandidates round trip = %q, want %q", out, s)
	}
}

func TestParseCandidatesRejectsBadLength(t *testing.T) {
	if _, _, err := ParseCandidates("12345"); err == nil {
		t.Error("ParseCandidates(\"12345\") should reject a non-cube length")
	}
}
