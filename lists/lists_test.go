package lists

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePairs = []Pair{
	{3, 4},
	{4, 3},
	{2, 5},
	{1, 3},
	{3, 9},
	{3, 3},
}

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader("3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"))
	require.NoError(t, err)
	assert.Equal(t, samplePairs, got)

	got, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"single space", "3   4\n1 2\n", "line 2:"},
		{"four spaces", "3    4\n", "line 1:"},
		{"not a number", "3   4\n5   x\n", "line 2:"},
		{"empty line", "3   4\n\n1   1\n", "line 2:"},
		{"one value", "7\n", "line 1:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestTotalDistance(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
		want  int
	}{
		{"sample", samplePairs, 11},
		{"empty", nil, 0},
		{"single", []Pair{{10, 4}}, 6},
		{"same multiset", []Pair{{1, 3}, {2, 1}, {3, 2}}, 0},
		{"negative", []Pair{{-5, 5}, {0, 0}}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDistance(tt.pairs))
		})
	}
}

func TestTotalDistanceDoesNotMutate(t *testing.T) {
	in := slices.Clone(samplePairs)
	TotalDistance(in)
	SimilarityScore(in)
	assert.Equal(t, samplePairs, in)
}

func TestTotalDistanceZeroIffSameMultiset(t *testing.T) {
	left := []int{5, 1, 4, 1, 9}
	// Every rotation of left keeps the multiset.
	for k := range left {
		pairs := make([]Pair, len(left))
		for i := range left {
			pairs[i] = Pair{left[i], left[(i+k)%len(left)]}
		}
		assert.Zero(t, TotalDistance(pairs), "rotation %d", k)
	}
	pairs := []Pair{{5, 5}, {1, 1}, {4, 4}, {1, 2}, {9, 9}}
	assert.Positive(t, TotalDistance(pairs))
}

func TestSimilarityScore(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
		want  int
	}{
		{"sample", samplePairs, 31},
		{"empty", nil, 0},
		{"disjoint", []Pair{{1, 2}, {3, 4}}, 0},
		{"duplicates on both sides", []Pair{{2, 2}, {2, 2}, {2, 7}}, 2*2 + 2*2 + 2*2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimilarityScore(tt.pairs))
		})
	}
}
