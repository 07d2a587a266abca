// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package input collects small adapters over common Go data shapes that
// implement [parsec.Source], so callers rarely need to write one by hand.
// None of these adapters do anything a [parsec.Source] implementation
// couldn't do directly; they exist purely for convenience.
package input

import (
	"io"

	"github.com/creachadair-labs/parsec"
)

// sliceSource is a zero-copy [parsec.WholeSliceSource] over an
// already-materialized slice.
type sliceSource[T any] struct {
	s   []T
	pos int
}

// Slice adapts s as a zero-copy token source: the parser core reads s
// directly as its lookahead window, with no intermediate buffering.
func Slice[T any](s []T) parsec.Source[T] {
	return &sliceSource[T]{s: s}
}

// Ordered adapts any named slice type as a zero-copy token source, for
// callers whose token stream is naturally an ordered collection with its
// own named type (e.g. `type Tokens []Token`) rather than a bare []T.
func Ordered[S ~[]T, T any](s S) parsec.Source[T] {
	return Slice[T]([]T(s))
}

func (s *sliceSource[T]) Read(buf []T) (int, error) {
	if s.pos >= len(s.s) {
		return 0, io.EOF
	}
	n := copy(buf, s.s[s.pos:])
	s.pos += n
	return n, nil
}

func (s *sliceSource[T]) WholeSlice() []T {
	rest := s.s[s.pos:]
	s.pos = len(s.s)
	return rest
}
