package bitmask

import "testing"

func TestAllValues(t *testing.T) {
	tests := []struct {
		name     string
		maxValue int
		want     Mask
	}{
		{"single value", 1, Mask(0b1)},
		{"classic sudoku", 9, Mask(0x1FF)},
		{"max supported", 31, Mask(1<<31) - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllValues(tt.maxValue); got != tt.want {
				t.Errorf("AllValues(%d) = %b, want %b", tt.maxValue, got, tt.want)
			}
		})
	}
}

func TestCountMinMax(t *testing.T) {
	m := Of(2) | Of(5) | Of(9)
	if got := m.Count(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if got := m.MinValue(); got != 2 {
		t.Errorf("MinValue() = %d, want 2", got)
	}
	if got := m.MaxValue(); got != 9 {
		t.Errorf("MaxValue() = %d, want 9", got)
	}
}

func TestFixedRoundtrip(t *testing.T) {
	m := Fixed(7)
	if !m.IsSet() {
		t.Fatal("Fixed(7) should be set")
	}
	if got := m.Value(); got != 7 {
		t.Errorf("Value() = %d, want 7", got)
	}
	if got := m.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}

func TestWithoutAndIntersect(t *testing.T) {
	m := Of(1) | Of(2) | Of(3)
	m2 := m.Without(2)
	if m2.Has(2) {
		t.Error("Without(2) should clear candidate 2")
	}
	if !m2.Has(1) || !m2.Has(3) {
		t.Error("Without(2) should preserve other candidates")
	}

	inter := m.Intersect(Of(2) | Of(3))
	if inter.Has(1) || !inter.Has(2) || !inter.Has(3) {
		t.Errorf("Intersect result = %v, want {2,3}", inter.Values())
	}
}

func TestSubtractPreservesMarker(t *testing.T) {
	m := Fixed(4)
	m2 := m.Subtract(Of(4))
	if !m2.IsSet() {
		t.Error("Subtract should preserve the value-set marker bit")
	}
	if !m2.IsEmpty() {
		t.Error("Subtract should have removed the only candidate")
	}
}

func TestValuesOrder(t *testing.T) {
	m := Of(9) | Of(1) | Of(5)
	got := m.Values()
	want := []int{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
