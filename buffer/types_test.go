package buffer

import "testing"

func TestComparePos(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 0}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 2, Col: 0}, Pos{Row: 1, Col: 999}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 1, Col: 0}, Pos{Row: 1, Col: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 3, Col: 4}, Pos{Row: 3, Col: 4}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestClampPos(t *testing.T) {
	lineLens := []int{1, 0, 3}
	ll := func(row int) int { return lineLens[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: -1, Col: -1}, want: Pos{Row: 0, Col: 0}},
		{in: Pos{Row: 2, Col: 999}, want: Pos{Row: 2, Col: 3}},
		{in: Pos{Row: 1, Col: 5}, want: Pos{Row: 1, Col: 0}},
		{in: Pos{Row: 0, Col: 1}, want: Pos{Row: 0, Col: 1}},
		// The virtual row past the end only admits column 0.
		{in: Pos{Row: 999, Col: 4}, want: Pos{Row: 3, Col: 0}},
	}

	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPos(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampPos_EmptyDocument(t *testing.T) {
	if got, want := ClampPos(Pos{Row: 3, Col: 3}, 0, nil), (Pos{}); got != want {
		t.Fatalf("ClampPos on empty doc = %v, want %v", got, want)
	}
}
