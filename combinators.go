// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

// Map builds a parser that runs p and, on success, transforms its result
// with f. Failure of p propagates verbatim.
func Map[C, T, A, R any](p Parser[C, T, A], f func(A) R) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		v, ok := p.Eval(ctx, st, exp)
		if !ok {
			var zero R
			return zero, false
		}
		return f(v), true
	})
}

// Bind builds a parser that runs p and, on success, passes its result to f
// to obtain a continuation parser, which is then run against the same
// state. Failure of either p or the continuation propagates verbatim: Bind
// never backtracks on the continuation's failure.
func Bind[C, T, A, R any](p Parser[C, T, A], f func(A) Parser[C, T, R]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		v, ok := p.Eval(ctx, st, exp)
		if !ok {
			var zero R
			return zero, false
		}
		return f(v).Eval(ctx, st, exp)
	})
}

// Then builds a parser that runs p then q in sequence, yielding q's result.
func Then[C, T, A, R any](p Parser[C, T, A], q Parser[C, T, R]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		if _, ok := p.Eval(ctx, st, exp); !ok {
			var zero R
			return zero, false
		}
		return q.Eval(ctx, st, exp)
	})
}

// Before builds a parser that runs p then q in sequence, yielding p's
// result.
func Before[C, T, R, A any](p Parser[C, T, R], q Parser[C, T, A]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		v, ok := p.Eval(ctx, st, exp)
		if !ok {
			var zero R
			return zero, false
		}
		if _, ok := q.Eval(ctx, st, exp); !ok {
			var zero R
			return zero, false
		}
		return v, true
	})
}

// Or builds the binary alternation of p and q. It is equivalent to
// OneOf(p, q).
func Or[C, T, R any](p, q Parser[C, T, R]) Parser[C, T, R] {
	return OneOf(p, q)
}

// OneOf builds the n-ary alternation of parsers, under the committed /
// uncommitted rule: a branch that fails having consumed input (its offset
// on failure differs from the offset at entry) is committed -- alternation
// stops there and only that branch's expecteds survive. A branch that
// fails without consuming is uncommitted, and alternation falls through to
// the next branch, retaining the uncommitted branch's contribution for
// merging.
//
// After every branch fails uncommitted, the internal error at the deepest
// offset reached by any branch is reported, ties broken in favor of the
// first branch to reach that offset; every branch whose failure offset
// equals the deepest offset has its expecteds merged into the result (a
// deliberate choice over reporting only the first-encountered branch's
// expecteds, made for the sake of more informative diagnostics).
//
// A nested OneOf value requires no special flattening at construction:
// because each OneOf already merges its own branches down to a single
// deepest-offset error before returning, a OneOf containing another OneOf
// as one of its branches naturally composes to the same result as a fully
// flattened call.
func OneOf[C, T, R any](parsers ...Parser[C, T, R]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		entry := st.Offset()

		var (
			zero       R
			haveBest   bool
			bestOffset int
			bestErr    *InternalError[T]
		)

		for _, p := range parsers {
			child := NewExpecteds(st.cfg)
			v, ok := p.Eval(ctx, st, child)
			if ok {
				child.release()
				return v, true
			}
			after := st.Offset()
			if after != entry {
				// Committed: stop here, only this branch's expecteds survive.
				exp.reset()
				exp.AddAll(child)
				child.release()
				return zero, false
			}

			ie := st.GetError()
			off := entry
			if ie != nil {
				off = ie.Offset
			}
			switch {
			case !haveBest || off > bestOffset:
				exp.reset()
				exp.AddAll(child)
				bestOffset = off
				bestErr = ie
				haveBest = true
			case off == bestOffset:
				exp.AddAll(child)
			}
			child.release()
		}

		if bestErr != nil {
			st.err = bestErr
		}
		return zero, false
	})
}

// Try builds a parser that behaves as p, except that if p fails having
// consumed input, Try rewinds the state back to its entry offset and
// reports the failure as uncommitted: the offset on failure equals the
// offset at entry, satisfying the invariant alternation relies on.
func Try[C, T, R any](p Parser[C, T, R]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		bm := st.Bookmark()
		start := st.Offset()
		v, ok := p.Eval(ctx, st, exp)
		if ok {
			st.DiscardBookmark(bm)
			return v, true
		}
		st.Rewind(bm)
		if ie := st.GetError(); ie != nil {
			forced := *ie
			forced.Offset = start
			st.err = &forced
		}
		return v, false
	})
}

// Lookahead builds a parser that runs p; on success it rewinds to the entry
// offset and returns p's value, so entry and exit offsets coincide. On
// failure it propagates p's failure verbatim, including p's committed
// status.
func Lookahead[C, T, R any](p Parser[C, T, R]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		bm := st.Bookmark()
		v, ok := p.Eval(ctx, st, exp)
		if ok {
			st.Rewind(bm)
			return v, true
		}
		st.DiscardBookmark(bm)
		return v, false
	})
}

// Not builds a parser that succeeds with no value iff p fails, and fails
// (uncommitted, at the entry offset) iff p succeeds. It never consumes
// input and never contributes to the expected set, since p's own
// expecteds are meaningless once inverted.
func Not[C, T, R any](p Parser[C, T, R]) Parser[C, T, struct{}] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (struct{}, bool) {
		bm := st.Bookmark()
		start := st.Offset()
		throwaway := NewExpecteds(st.cfg)
		_, ok := p.Eval(ctx, st, throwaway)
		throwaway.release()
		st.Rewind(bm)
		if ok {
			if st.HasCurrent() {
				st.SetError(start, st.Current(), true, false, "")
			} else {
				var z T
				st.SetError(start, z, false, true, "")
			}
			return struct{}{}, false
		}
		return struct{}{}, true
	})
}

// Labelled builds a parser that runs p; on failure, whatever expecteds p
// added are discarded and replaced with a single human-readable label.
func Labelled[C, T, R any](p Parser[C, T, R], label string) Parser[C, T, R] {
	return WithExpected(p, []Expected[T]{ExpectLabel[T](label)})
}

// WithExpected builds a parser that runs p; on failure, whatever expecteds
// p added are discarded and replaced with the given set.
func WithExpected[C, T, R any](p Parser[C, T, R], set []Expected[T]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		child := NewExpecteds(st.cfg)
		v, ok := p.Eval(ctx, st, child)
		child.release()
		if !ok {
			for _, x := range set {
				exp.Add(x)
			}
		}
		return v, ok
	})
}

// Optional builds a parser that runs p and reports its result as a
// pointer: non-nil on success, nil (with no failure, consuming nothing)
// when p fails uncommitted. A committed failure of p still propagates,
// since Optional only absorbs a clean "this wasn't here" outcome.
func Optional[C, T, R any](p Parser[C, T, R]) Parser[C, T, *R] {
	return Or(Map(p, func(v R) *R { return &v }), Return[C, T, *R](nil))
}

// RecoverWith builds a parser that runs p; on failure, it builds a
// [ParseError] from the state's current error slot and expected set,
// passes it to handler to obtain a continuation parser, and runs that
// continuation against the state at its current (already advanced)
// position.
func RecoverWith[C, T, R any](p Parser[C, T, R], handler func(*ParseError[T]) Parser[C, T, R]) Parser[C, T, R] {
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		v, ok := p.Eval(ctx, st, exp)
		if ok {
			return v, true
		}
		pe := st.BuildError(exp)
		return handler(pe).Eval(ctx, st, exp)
	})
}
