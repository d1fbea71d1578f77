// Package lists reconciles the two location ID lists of 2024 day 1.
package lists

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rednose/aoc"
)

// Pair is one input line: a left and a right location ID.
type Pair struct {
	Left, Right int
}

// sep separates the two IDs of a line.
const sep = "   "

// ErrMalformed is wrapped by every Parse error.
var ErrMalformed = errors.New("malformed line")

// Parse reads one Pair per line. The first malformed line is reported
// with its 1-based line number.
func Parse(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		p, err := parsePair(s.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		pairs = append(pairs, p)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func parsePair(line string) (Pair, error) {
	l, r, ok := strings.Cut(strings.TrimSpace(line), sep)
	if !ok {
		return Pair{}, fmt.Errorf("%w %q: want two IDs separated by %q", ErrMalformed, line, sep)
	}
	left, err := strconv.Atoi(l)
	if err != nil {
		return Pair{}, fmt.Errorf("%w %q: %w", ErrMalformed, line, err)
	}
	right, err := strconv.Atoi(r)
	if err != nil {
		return Pair{}, fmt.Errorf("%w %q: %w", ErrMalformed, line, err)
	}
	return Pair{Left: left, Right: right}, nil
}

func split(pairs []Pair) (left, right []int) {
	left = make([]int, len(pairs))
	right = make([]int, len(pairs))
	for i, p := range pairs {
		left[i], right[i] = p.Left, p.Right
	}
	return left, right
}

// TotalDistance sorts both lists independently and sums the distance
// between the i-th smallest left and the i-th smallest right ID.
func TotalDistance(pairs []Pair) int {
	left, right := split(pairs)
	slices.Sort(left)
	slices.Sort(right)
	total := 0
	for i := range left {
		total += aoc.AbsDiff(left[i], right[i])
	}
	return total
}

// SimilarityScore sums every left ID multiplied by the number of times it
// appears in the right list.
func SimilarityScore(pairs []Pair) int {
	_, right := split(pairs)
	freq := aoc.NewCounter(right...)
	score := 0
	for _, p := range pairs {
		score += p.Left * freq.Count(p.Left)
	}
	return score
}
