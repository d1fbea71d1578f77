package aoc

import (
	"slices"
	"testing"
)

func TestCounter(t *testing.T) {
	c := NewCounter(4, 3, 5, 3, 9, 3)
	tests := []struct {
		v, want int
	}{
		{3, 3},
		{4, 1},
		{9, 1},
		{1, 0},
	}
	for _, tt := range tests {
		if got := c.Count(tt.v); got != tt.want {
			t.Errorf("Count(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	if got, want := SortedKeys(c), []int{3, 4, 5, 9}; !slices.Equal(got, want) {
		t.Errorf("SortedKeys = %v, want %v", got, want)
	}
}

func TestParallelMapFold(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	got := ParallelMapFold(in, func(v int) int { return v * v }, func(acc, v int) int { return acc + v }, 0)
	if got != 55 {
		t.Errorf("ParallelMapFold = %v, want 55", got)
	}
	if got := Parallel(in, func(v int) bool { return v%2 == 0 }); !slices.Equal(got, []bool{false, true, false, true, false}) {
		t.Errorf("Parallel = %v", got)
	}
}
