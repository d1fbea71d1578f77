// Package reports checks the reactor level reports of 2024 day 2.
//
// A report is safe when its levels either all increase or all decrease,
// and every two adjacent levels differ by at least one and at most three.
// The Problem Dampener lets a report through if removing a single level
// makes it safe.
package reports

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Report is the levels of one input line, in order.
type Report []int

const (
	minStep = 1
	maxStep = 3
)

// ErrMalformed is wrapped by every Parse error.
var ErrMalformed = errors.New("malformed report")

// Parse reads one Report per line, levels separated by single spaces. The
// first malformed line is reported with its 1-based line number.
func Parse(r io.Reader) ([]Report, error) {
	var out []Report
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		rep, err := parseReport(s.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		out = append(out, rep)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseReport(line string) (Report, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("%w: empty line", ErrMalformed)
	}
	fields := strings.Split(line, " ")
	rep := make(Report, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrMalformed, line, err)
		}
		rep[i] = v
	}
	return rep, nil
}

// IsSafe reports whether r is safe without the dampener.
//
// The direction is taken from the first two levels; equal first levels
// count as decreasing, and are then rejected as a zero step.
func IsSafe(r Report) bool {
	if len(r) < 2 {
		return true
	}
	ascending := r[0] < r[1]
	for i := 0; i+1 < len(r); i++ {
		step := r[i+1] - r[i]
		if !ascending {
			step = -step
		}
		if step < minStep || step > maxStep {
			return false
		}
	}
	return true
}

// Without returns a copy of r with the level at index k removed.
func (r Report) Without(k int) Report {
	out := make(Report, 0, len(r)-1)
	out = append(out, r[:k]...)
	return append(out, r[k+1:]...)
}

// IsSafeDampened reports whether r is safe, or becomes safe once any one
// of its levels is removed.
//
// Every level is tried, including the first one, which also decides the
// direction.
func IsSafeDampened(r Report) bool {
	if IsSafe(r) {
		return true
	}
	for k := range r {
		if IsSafe(r.Without(k)) {
			return true
		}
	}
	return false
}

// CountSafe returns the number of safe reports in rs, with or without the
// dampener.
func CountSafe(rs []Report, dampen bool) int {
	check := IsSafe
	if dampen {
		check = IsSafeDampened
	}
	n := 0
	for _, r := range rs {
		if check(r) {
			n++
		}
	}
	return n
}
