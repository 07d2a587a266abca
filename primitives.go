// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

// Return builds a parser that always succeeds with v without consuming any
// input and without contributing to the expected set.
func Return[C, T, R any](v R) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		return v, true
	})
}

// Fail builds a parser that always fails at the current offset with the
// given message, consuming nothing and contributing no expected value.
func Fail[C, T, R any](message string) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		var zero R
		off := st.Offset()
		if st.HasCurrent() {
			st.SetError(off, st.Current(), true, false, message)
		} else {
			var z T
			st.SetError(off, z, false, true, message)
		}
		return zero, false
	})
}

// Token builds a parser matching a single token equal to t. On success it
// advances one token and yields t; on mismatch or end of input it fails at
// the current offset, contributing t as a literal expectation.
func Token[C, T comparable](t T) Parser[C, T, T] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (T, bool) {
		off := st.Offset()
		if !st.HasCurrent() {
			var z T
			st.SetError(off, z, false, true, "")
			exp.Add(ExpectLiteral[T]([]T{t}))
			return z, false
		}
		got := st.Current()
		if got != t {
			st.SetError(off, got, true, false, "")
			exp.Add(ExpectLiteral[T]([]T{t}))
			return got, false
		}
		st.Advance(1)
		return t, true
	})
}

// TokenPredicate builds a parser matching a single token for which pred
// returns true. Like Token, but contributes no expected value of its own --
// callers wanting a readable error should wrap the result with Labelled.
func TokenPredicate[C, T any](pred func(T) bool) Parser[C, T, T] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (T, bool) {
		off := st.Offset()
		if !st.HasCurrent() {
			var z T
			st.SetError(off, z, false, true, "")
			return z, false
		}
		got := st.Current()
		if !pred(got) {
			st.SetError(off, got, true, false, "")
			return got, false
		}
		st.Advance(1)
		return got, true
	})
}

// End builds a parser that succeeds with struct{}{} only at the end of
// input, consuming nothing. On failure it contributes the EOF expectation.
func End[C, T any]() Parser[C, T, struct{}] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (struct{}, bool) {
		if !st.HasCurrent() {
			return struct{}{}, true
		}
		off := st.Offset()
		st.SetError(off, st.Current(), true, false, "")
		exp.Add(ExpectEOF[T]())
		return struct{}{}, false
	})
}

// Sequence builds a parser matching the given run of tokens in order. On a
// mismatch at some offset i into the run, it advances i tokens past the
// start, sets the error at that offset, and contributes the whole run as a
// literal expectation. On truncation -- input ending before the full run
// matches -- it advances to the end of the available input, sets the error
// with the EOF flag, and contributes the same literal expectation. On
// success it advances the full length and yields the matched run.
func Sequence[C, T comparable](tokens []T) Parser[C, T, []T] {
	lit := append([]T(nil), tokens...)
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) ([]T, bool) {
		start := st.Offset()
		for i, want := range lit {
			if !st.HasCurrent() {
				st.Advance(i)
				var z T
				st.SetError(start+i, z, false, true, "")
				exp.Add(ExpectLiteral[T](lit))
				return nil, false
			}
			got := st.Current()
			if got != want {
				st.SetError(start+i, got, true, false, "")
				exp.Add(ExpectLiteral[T](lit))
				return nil, false
			}
			st.Advance(1)
		}
		return lit, true
	})
}

// CurrentOffset builds a parser that succeeds with the current absolute
// token offset, consuming nothing.
func CurrentOffset[C, T any]() Parser[C, T, int] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (int, bool) {
		return st.Offset(), true
	})
}

// CurrentPos builds a parser that succeeds with the current [Location], if
// position tracking is configured via [Configuration.PosDelta]. It fails
// (without consuming or contributing to the expected set) when no PosDelta
// was configured, since there is then no meaningful position to report.
func CurrentPos[C, T any]() Parser[C, T, Location] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (Location, bool) {
		loc, ok := st.CurrentLocation()
		if !ok {
			st.SetError(st.Offset(), *new(T), false, false, "position tracking is not configured")
			return Location{}, false
		}
		return loc, true
	})
}

// CurrentPosDelta builds a parser that succeeds with the cumulative
// [SourcePosDelta] from the start of input to the current offset,
// consuming nothing. With no PosDelta configured this is always the zero
// delta.
func CurrentPosDelta[C, T any]() Parser[C, T, SourcePosDelta] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (SourcePosDelta, bool) {
		return st.ComputeSourcePosDelta(), true
	})
}
