package aoc

import (
	"slices"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Counter counts occurrences of values.
type Counter[K comparable] map[K]int

// NewCounter returns a Counter holding vals.
func NewCounter[K comparable](vals ...K) Counter[K] {
	c := make(Counter[K], len(vals))
	for _, v := range vals {
		c.Add(v)
	}
	return c
}

func (c Counter[K]) Add(v K) {
	c[v]++
}

// Count returns how many times v was added, 0 if never.
func (c Counter[K]) Count(v K) int {
	return c[v]
}

// SortedKeys returns the distinct values of c in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
