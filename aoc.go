// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type sample struct {
	input string
	want  string
	label string
}

var (
	sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)
	labelRx  = regexp.MustCompile(`(?m)^\s*label=([^\n]*)\n?`)
)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	var label string
	if m := labelRx.FindStringSubmatch(text); m != nil {
		label = strings.TrimSpace(m[1])
		text = labelRx.ReplaceAllString(text, "")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
			label: label,
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
	parsed  map[parseKey]any
	r       *runner
	log     *zap.Logger
}

// NewPuzzle returns a Puzzle whose real input is already known. It is
// used by tests that drive solver methods directly.
func NewPuzzle(input []byte) *Puzzle {
	return &Puzzle{
		input: input,
		log:   zap.NewNop(),
	}
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = MustGet(p.r.loadInput(p.day.day))
	}
	return p.input
}

func (p *Puzzle) Reader() *bytes.Reader {
	return bytes.NewReader(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(p.Reader())
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// Debug logs v at debug level.
func (p *Puzzle) Debug(v ...any) {
	p.log.Sugar().Debug(v...)
}

// Debugf logs at debug level, but only while solving the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Sugar().Debugf(format, args...)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. Each must
// take no arguments and return a single any.
func extractMethods(x any) (map[int]day, error) {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type options struct {
	day        int
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	input      string
	configDir  string
}

func newCommand(year int, src []byte, slvr any) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:           fmt.Sprintf("aoc%d", year),
		Short:         fmt.Sprintf("Solve Advent of Code %d puzzles", year),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(year, src, slvr, o)
		},
	}
	f := cmd.Flags()
	f.IntVar(&o.day, "day", -1, "day to run (-1 runs every day)")
	f.StringVar(&o.part, "part", "", "part to run")
	f.BoolVar(&o.onlySample, "sample", false, "only run sample")
	f.BoolVar(&o.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&o.debug, "debug", false, "debug mode")
	f.StringVar(&o.input, "input", "", "read puzzle input from this file instead of the input dir; use with --day")
	f.StringVar(&o.configDir, "config-dir", ".", "directory holding the .env file")
	return cmd
}

// Run solves the puzzles of year implemented by slvr, a pointer to a
// struct embedding *Puzzle. src is the solver's own source, from which the
// sample inputs and answers are read.
func Run(year int, src []byte, slvr any) {
	if err := newCommand(year, src, slvr).Execute(); err != nil {
		l, logErr := NewLogger(LogConfig{Level: "debug", Format: "console"})
		if logErr == nil {
			l.Error("aoc failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(year int, src []byte, slvr any, o options) error {
	cfg, err := LoadConfig(o.configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if o.debug {
		cfg.Log.Level = "debug"
	}
	logger, err := NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	r := &runner{
		year:    year,
		opts:    o,
		cfg:     cfg,
		log:     logger,
		samples: samples,
	}
	r.fetch = r.httpFetch

	if o.day != -1 {
		day, ok := days[o.day]
		if !ok {
			return fmt.Errorf("no day %d", o.day)
		}
		return r.runDay(slvr, day)
	}

	for _, day := range SortedKeys(days) {
		if err := r.runDay(slvr, days[day]); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

type runner struct {
	year    int
	opts    options
	cfg     *Config
	log     *zap.Logger
	samples map[string]sample
	fetch   func(url string) ([]byte, error)
}

func (r *runner) runDay(slvr any, day day) error {
	p := Puzzle{
		year:    r.year,
		day:     day,
		samples: r.samples,
		r:       r,
		log:     r.log.With(zap.Int("day", day.day)),
	}
	fmt.Println("Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}
		name := "part " + ps.Part
		if l := r.samples[ps.Name].label; l != "" {
			name += " (" + l + ")"
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm && p.input == nil {
				// Prime the input.
				in, err := r.loadInput(day.day)
				if err != nil {
					return fmt.Errorf("day %d input: %w", day.day, err)
				}
				p.input = in
			}
			t0 := time.Now()
			got, err := solve(ps)
			if err != nil {
				return fmt.Errorf("day %d part %s (sample=%v): %w", day.day, ps.Part, sm, err)
			}
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("%s: %v ❌; want %v\n", name, got, sample.want)
					return nil
				}
				fmt.Printf("%s sample: %v ✅ (%v) \n", name, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("%s: %v (took %v) \n", name, got, time.Since(t0).Round(time.Microsecond))
				r.recordAnswer(day.day, p.input, ps.Part, got)
			}
		}
	}
	return nil
}

// solve runs ps, turning a panic inside the solver into an error.
func solve(ps partSolver) (got any, err error) {
	defer func() {
		if e := recover(); e != nil {
			if pe, ok := e.(error); ok {
				err = fmt.Errorf("%s: %w", ps.Name, pe)
				return
			}
			err = fmt.Errorf("%s: %v", ps.Name, e)
		}
	}()
	return ps.fn(), nil
}

func (r *runner) recordAnswer(day int, input []byte, part string, got any) {
	path := answersPath(r.inputPath(day))
	a, err := LoadAnswers(path, input)
	if err != nil {
		r.log.Warn("loading answers", zap.String("path", path), zap.Error(err))
		return
	}
	now := fmt.Sprint(got)
	if prev, changed := a.Record(part, now); changed {
		r.log.Warn("answer changed for unchanged input",
			zap.Int("day", day),
			zap.String("part", part),
			zap.String("was", prev),
			zap.String("now", now))
		return
	}
	if err := a.Save(); err != nil {
		r.log.Warn("saving answers", zap.String("path", path), zap.Error(err))
	}
}
