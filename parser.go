// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

// A Parser is an immutable, opaque parser value. C is the type of an
// optional user-supplied context threaded through every evaluation (use
// struct{} when no context is needed); T is the token type; R is the
// result type produced on success.
//
// Parsers are composed by value and never mutate one another: every
// combinator in this package takes one or more Parser values and returns a
// new one. Users never implement the evaluation callback directly except
// through the low-level [New] escape hatch, which is explicitly unstable.
type Parser[C, T, R any] struct {
	eval func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool)
}

// Eval runs p against st, accumulating any expected-set contributions into
// exp, and returns p's result and whether it succeeded. On failure, the
// state's error slot has been written by whichever primitive failed.
//
// Eval is the single evaluation entry point every parser, primitive, and
// combinator in this package funnels through; it is exported so that
// packages outside parsec (input adapters aside) can build novel
// primitives without requiring changes to this package.
func (p Parser[C, T, R]) Eval(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
	return p.eval(ctx, st, exp)
}

// New constructs a Parser from a raw evaluation function. This is the
// library's low-level extension point for building primitives that are not
// expressible in terms of existing combinators. It is unstable: the exact
// shape of the evaluation contract (in particular, the expecteds
// accumulator type) may change between minor versions. Prefer composing
// existing primitives and combinators wherever possible.
func New[C, T, R any](eval func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool)) Parser[C, T, R] {
	if eval == nil {
		fatalf("parsec: New called with a nil evaluation function")
	}
	return Parser[C, T, R]{eval: eval}
}
