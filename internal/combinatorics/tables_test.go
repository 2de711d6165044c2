package combinatorics

import "testing"

func TestBinomial(t *testing.T) {
	tb := New(10)
	tests := []struct{ n, k int; want int64 }{
		{5, 2, 10},
		{9, 1, 9},
		{9, 9, 1},
		{0, 0, 1},
		{4, 0, 1},
	}
	for _, tt := range tests {
		if got := tb.Binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("Binomial(%d,%d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestSubsetsCountAndOrder(t *testing.T) {
	tb := New(6)
	flat := tb.Subsets(4, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if tb.NumSubsets(4, 2) != len(want) {
		t.Fatalf("NumSubsets(4,2) = %d, want %d", tb.NumSubsets(4, 2), len(want))
	}
	for i, w := range want {
		got := flat[i*2 : i*2+2]
		if got[0] != w[0] || got[1] != w[1] {
			t.Errorf("subset %d = %v, want %v", i, got, w)
		}
	}
}

func TestSubsetsOutOfRange(t *testing.T) {
	tb := New(5)
	if got := tb.Subsets(5, 6); got != nil {
		t.Errorf("Subsets(5,6) = %v, want nil", got)
	}
	if got := tb.Subsets(6, 2); got != nil {
		t.Errorf("Subsets(6,2) beyond maxValue = %v, want nil", got)
	}
}

func TestEnumerateMatchesBinomialCount(t *testing.T) {
	tb := New(8)
	for n := 1; n <= 8; n++ {
		for k := 1; k <= n; k++ {
			wantCount := tb.Binomial(n, k)
			gotCount := int64(tb.NumSubsets(n, k))
			if gotCount != wantCount {
				t.Errorf("n=%d k=%d: enumerate produced %d subsets, C(n,k)=%d", n, k, gotCount, wantCount)
			}
		}
	}
}
