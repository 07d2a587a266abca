// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

import "github.com/pkg/errors"

// Run constructs a parse state over src under cfg (nil selects the zero
// Configuration, usable but with no position tracking), evaluates p
// against it, and returns p's result or the failure it ended on.
//
// The state's pooled buffer and expected-set accumulator are released on
// every exit path, including a panic raised by a library-fatal condition
// (see [FatalError]) -- Run itself never recovers such a panic, it only
// guarantees the pools are returned before it propagates.
//
// An I/O error reported by src (other than io.EOF) is never folded into a
// [ParseError]: it is returned to the caller wrapped with
// github.com/pkg/errors (so errors.Is still finds it), since the driver
// never retries or otherwise second-guesses the underlying stream.
func Run[C, T, R any](p Parser[C, T, R], ctx C, src Source[T], cfg *Configuration[T]) (R, error) {
	if cfg == nil {
		cfg = &Configuration[T]{}
	}
	st := newState(src, cfg)
	defer st.release()
	exp := NewExpecteds(cfg)
	defer exp.release()

	v, ok := p.Eval(ctx, st, exp)
	if !ok {
		if st.ioErr != nil {
			var zero R
			return zero, errors.Wrap(st.ioErr, "parsec: reading from source")
		}
		var zero R
		return zero, st.BuildError(exp)
	}
	if st.ioErr != nil {
		var zero R
		return zero, errors.Wrap(st.ioErr, "parsec: reading from source")
	}
	return v, nil
}

// RunOrThrow is Run's panicking counterpart: it returns p's result
// directly and panics with the error Run would have returned.
func RunOrThrow[C, T, R any](p Parser[C, T, R], ctx C, src Source[T], cfg *Configuration[T]) R {
	v, err := Run(p, ctx, src, cfg)
	if err != nil {
		panic(err)
	}
	return v
}
