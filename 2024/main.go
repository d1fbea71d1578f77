package main

import (
	_ "embed"

	"github.com/rednose/aoc"
	"github.com/rednose/aoc/lists"
	"github.com/rednose/aoc/reports"
)

func main() {
	aoc.Run(2024, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) pairs() []lists.Pair {
	return aoc.Parsed(s.Puzzle, lists.Parse)
}

/*
label=Total Distance
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	return lists.TotalDistance(s.pairs())
}

/*
label=Similarity Score
want=31
*/
func (s solver) D1p2() any {
	return lists.SimilarityScore(s.pairs())
}

func (s solver) levels() []reports.Report {
	rs := aoc.Parsed(s.Puzzle, reports.Parse)
	s.Debugf("parsed %d reports", len(rs))
	return rs
}

func countSafe(rs []reports.Report, check func(reports.Report) bool) int {
	return aoc.ParallelMapFold(rs, check, func(n int, ok bool) int {
		if ok {
			return n + 1
		}
		return n
	}, 0)
}

/*
label=Total Safe Reports
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	return countSafe(s.levels(), reports.IsSafe)
}

/*
label=Total Safe Reports
want=4
*/
func (s solver) D2p2() any {
	return countSafe(s.levels(), reports.IsSafeDampened)
}
