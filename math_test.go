package aoc

import "testing"

func TestAbsDiff(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{3, 7, 4},
		{7, 3, 4},
		{-2, 2, 4},
		{5, 5, 0},
	}
	for _, tt := range tests {
		if got := AbsDiff(tt.x, tt.y); got != tt.want {
			t.Errorf("AbsDiff(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q, want %q", got, "b")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %v, want 0", got)
	}
}

func TestIntPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Int(\"x\") did not panic")
		}
	}()
	Int("x")
}
