// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

import "sync"

// Rec builds a parser whose evaluation defers to thunk, called the first
// time the parser actually runs and cached for every subsequent run. This
// is what makes mutual and self recursion possible: declare a forward
// variable, build the recursive grammar referencing that variable through
// Rec, then assign the variable once the grammar is fully built --
// by the time Rec's thunk actually fires, the assignment has long since
// completed.
//
//	var expr Parser[C, T, R]
//	expr = Rec(func() Parser[C, T, R] {
//		return Or(parenthesized(expr), atom)
//	})
func Rec[C, T, R any](thunk func() Parser[C, T, R]) Parser[C, T, R] {
	cell := &recCell[C, T, R]{thunk: thunk}
	return New(func(ctx C, st *State[T], exp *Expecteds[T]) (R, bool) {
		cell.once.Do(func() { cell.resolved = cell.thunk() })
		return cell.resolved.Eval(ctx, st, exp)
	})
}

type recCell[C, T, R any] struct {
	once     sync.Once
	thunk    func() Parser[C, T, R]
	resolved Parser[C, T, R]
}

// Fix is sugar over [Rec] for the common case of a single self-recursive
// parser: build receives the very parser it is constructing, so it can
// refer to "itself" without the caller having to declare a forward
// variable by hand.
func Fix[C, T, R any](build func(self Parser[C, T, R]) Parser[C, T, R]) Parser[C, T, R] {
	var self Parser[C, T, R]
	self = Rec(func() Parser[C, T, R] { return build(self) })
	return self
}
