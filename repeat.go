// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

import "fmt"

// FatalError is the panic value raised for a library-fatal condition: a
// bug in how a combinator was used, as opposed to an ordinary parse
// failure. These are never reported through the normal [ParseError]
// channel because no caller-supplied input could have caused them.
type FatalError struct {
	Message string

	err error
}

// Error satisfies the error interface.
func (e *FatalError) Error() string { return e.Message }

// Unwrap supports error wrapping.
func (e *FatalError) Unwrap() error { return e.err }

func fatalf(format string, args ...any) {
	panic(&FatalError{Message: fmt.Sprintf(format, args...)})
}

// Chainer is a stateful incremental reducer used by the chain combinators
// to aggregate a sequence of values without materialising an intermediate
// slice -- useful for constant-space parsing of numbers or folding a
// left-associative operator chain. Apply is called once per element in
// order; GetResult is called once, after the last Apply, to obtain the
// chain's final value; OnError is called instead if the chain ends in
// failure, giving the reducer a chance to release any held resources.
type Chainer[R any] interface {
	Apply(v R)
	GetResult() R
	OnError()
}

// runLoop repeatedly runs p via step starting at the state's current
// offset until p fails. It enforces the universal repetition rule: a
// success that consumes no input is a combinator-usage bug and panics with
// a [FatalError], rather than looping forever. It returns true if the loop
// ended on an uncommitted failure of p (the normal, successful end of a
// repetition), or false if it ended on a committed failure (which the
// caller must propagate).
func runLoop[C, T, R any](ctx C, st *State[T], exp *Expecteds[T], p Parser[C, T, R], step func(R)) bool {
	for {
		start := st.Offset()
		v, ok := p.Eval(ctx, st, exp)
		if !ok {
			return st.Offset() == start
		}
		if st.Offset() == start {
			fatalf("parsec: parser consumed no input in many-like combinator")
		}
		step(v)
	}
}

// Many builds a parser collecting zero or more values from p into an
// ordered slice. An immediate uncommitted failure of p yields an empty
// slice, not a failure.
func Many[C, T, R any](p Parser[C, T, R]) Parser[C, T, []R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]R, bool) {
		var out []R
		if !runLoop(ctx, st, exp, p, func(v R) { out = append(out, v) }) {
			return nil, false
		}
		return out, true
	})
}

// AtLeastOnce builds a parser like [Many], but requiring at least one
// value: p's first failure (committed or not) propagates verbatim.
func AtLeastOnce[C, T, R any](p Parser[C, T, R]) Parser[C, T, []R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]R, bool) {
		start := st.Offset()
		first, ok := p.Eval(ctx, st, exp)
		if !ok {
			return nil, false
		}
		if st.Offset() == start {
			fatalf("parsec: parser consumed no input in many-like combinator")
		}
		out := []R{first}
		if !runLoop(ctx, st, exp, p, func(v R) { out = append(out, v) }) {
			return nil, false
		}
		return out, true
	})
}

// Repeat builds a parser running p exactly n times in sequence, collecting
// its results; any failure of p propagates verbatim. n < 0 is a
// combinator-usage bug and panics immediately with a [FatalError].
func Repeat[C, T, R any](p Parser[C, T, R], n int) Parser[C, T, []R] {
	if n < 0 {
		fatalf("parsec: Repeat called with negative count %d", n)
	}
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]R, bool) {
		out := make([]R, 0, n)
		for i := 0; i < n; i++ {
			v, ok := p.Eval(ctx, st, exp)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	})
}

// Separated builds a parser matching `p (sep p)*`: zero or more values of p
// interleaved with sep, discarding sep's results. An empty match is
// allowed.
func Separated[C, T, R, S any](p Parser[C, T, R], sep Parser[C, T, S]) Parser[C, T, []R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]R, bool) {
		var out []R
		start := st.Offset()
		first, ok := p.Eval(ctx, st, exp)
		if !ok {
			if st.Offset() != start {
				return nil, false
			}
			return out, true
		}
		out = append(out, first)
		for {
			sepStart := st.Offset()
			if _, ok := sep.Eval(ctx, st, exp); !ok {
				if st.Offset() != sepStart {
					return nil, false
				}
				return out, true
			}
			if st.Offset() == sepStart {
				fatalf("parsec: separator consumed no input in Separated")
			}
			itemStart := st.Offset()
			v, ok := p.Eval(ctx, st, exp)
			if !ok {
				return nil, false
			}
			if st.Offset() == itemStart {
				fatalf("parsec: parser consumed no input in many-like combinator")
			}
			out = append(out, v)
		}
	})
}

// SeparatedAtLeastOnce builds a parser like [Separated], but requiring at
// least one value: p's first failure propagates verbatim instead of
// yielding an empty slice.
func SeparatedAtLeastOnce[C, T, R, S any](p Parser[C, T, R], sep Parser[C, T, S]) Parser[C, T, []R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]R, bool) {
		first, ok := p.Eval(ctx, st, exp)
		if !ok {
			return nil, false
		}
		out := []R{first}
		for {
			sepStart := st.Offset()
			if _, ok := sep.Eval(ctx, st, exp); !ok {
				if st.Offset() != sepStart {
					return nil, false
				}
				return out, true
			}
			if st.Offset() == sepStart {
				fatalf("parsec: separator consumed no input in SeparatedAtLeastOnce")
			}
			itemStart := st.Offset()
			v, ok := p.Eval(ctx, st, exp)
			if !ok {
				return nil, false
			}
			if st.Offset() == itemStart {
				fatalf("parsec: parser consumed no input in many-like combinator")
			}
			out = append(out, v)
		}
	})
}

// SeparatedAndTerminated builds a parser matching `(p sep)*`: zero or more
// values of p, each mandatorily followed by sep. An empty match is
// allowed; once an item has matched, a missing separator propagates as
// failure.
func SeparatedAndTerminated[C, T, R, S any](p Parser[C, T, R], sep Parser[C, T, S]) Parser[C, T, []R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]R, bool) {
		var out []R
		for {
			start := st.Offset()
			v, ok := p.Eval(ctx, st, exp)
			if !ok {
				if st.Offset() != start {
					return nil, false
				}
				return out, true
			}
			if st.Offset() == start {
				fatalf("parsec: parser consumed no input in many-like combinator")
			}
			if _, ok := sep.Eval(ctx, st, exp); !ok {
				return nil, false
			}
			out = append(out, v)
		}
	})
}

// SeparatedAndOptionallyTerminated builds a parser matching
// `p (sep p)* sep?`. If a trailing separator is matched but the item
// parser that follows it fails, the outcome depends on whether that
// failure is committed: a committed failure propagates verbatim, but an
// uncommitted failure ends the list successfully -- with the trailing
// separator already consumed, so the cursor sits just past it. Callers
// who need to parse further material immediately afterward, without the
// separator being silently swallowed, should wrap sep in [Try].
func SeparatedAndOptionallyTerminated[C, T, R, S any](p Parser[C, T, R], sep Parser[C, T, S]) Parser[C, T, []R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]R, bool) {
		var out []R
		start := st.Offset()
		first, ok := p.Eval(ctx, st, exp)
		if !ok {
			if st.Offset() != start {
				return nil, false
			}
			return out, true
		}
		out = append(out, first)
		for {
			sepStart := st.Offset()
			if _, ok := sep.Eval(ctx, st, exp); !ok {
				if st.Offset() != sepStart {
					return nil, false
				}
				return out, true
			}
			itemStart := st.Offset()
			v, ok := p.Eval(ctx, st, exp)
			if !ok {
				if st.Offset() != itemStart {
					return nil, false
				}
				return out, true
			}
			if st.Offset() == itemStart {
				fatalf("parsec: parser consumed no input in many-like combinator")
			}
			out = append(out, v)
		}
	})
}

// ChainAtLeastOnce builds a parser like [AtLeastOnce], but instead of
// collecting p's results into a slice, folds them through a fresh
// [Chainer] obtained from newChainer -- useful for constant-space parsing
// of numbers, or left-associative operator chains, where materialising an
// intermediate slice is wasted work. newChainer is called once per
// invocation, so the chain state is never shared across concurrent
// parses.
func ChainAtLeastOnce[C, T, R any](p Parser[C, T, R], newChainer func() Chainer[R]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		var zero R
		c := newChainer()
		start := st.Offset()
		first, ok := p.Eval(ctx, st, exp)
		if !ok {
			c.OnError()
			return zero, false
		}
		if st.Offset() == start {
			fatalf("parsec: parser consumed no input in many-like combinator")
		}
		c.Apply(first)
		if !runLoop(ctx, st, exp, p, c.Apply) {
			c.OnError()
			return zero, false
		}
		return c.GetResult(), true
	})
}
