// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package input

import (
	"io"
	"iter"

	"github.com/creachadair-labs/parsec"
)

// iterSource pulls tokens one at a time out of an [iter.Seq] using
// [iter.Pull], the standard library's push-to-pull adapter -- the same
// range-over-func iterator shape jtree's own ast package produces from
// its stream parser (see ast.ParseRange's iter.Seq2 result).
type iterSource[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromIter adapts seq as a token source, pulling one value at a time. The
// returned source must eventually stop being read from (reaching the end
// of the sequence satisfies this automatically); an abandoned partial read
// leaks the underlying goroutine the standard library's iter.Pull spins up
// to bridge push and pull, exactly as for any other unfinished iter.Pull
// consumer.
func FromIter[T any](seq iter.Seq[T]) parsec.Source[T] {
	next, stop := iter.Pull(seq)
	return &iterSource[T]{next: next, stop: stop}
}

func (s *iterSource[T]) Read(buf []T) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	n := 0
	for n < len(buf) {
		v, ok := s.next()
		if !ok {
			s.done = true
			s.stop()
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		buf[n] = v
		n++
	}
	return n, nil
}
