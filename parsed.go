package aoc

import (
	"bytes"
	"io"
	"reflect"

	"tailscale.com/util/deephash"
)

type parseKey struct {
	input deephash.Sum
	parse uintptr
	typ   reflect.Type
}

// Parsed returns parse applied to the puzzle input. Results are cached on
// the Puzzle per input and parse function, so the parts of a day parse a
// given input only once. Closures created from the same function literal
// share a cache entry. The cached value is shared and must not be
// modified. It panics if parse fails.
func Parsed[T any](p *Puzzle, parse func(io.Reader) (T, error)) T {
	in := p.Input()
	k := parseKey{
		input: deephash.Hash(&in),
		parse: reflect.ValueOf(parse).Pointer(),
		typ:   reflect.TypeOf((*T)(nil)).Elem(),
	}
	if v, ok := p.parsed[k]; ok {
		return v.(T)
	}
	v := MustGet(parse(bytes.NewReader(in)))
	InitMap(&p.parsed)
	p.parsed[k] = v
	return v
}
