// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package perm builds a parser that matches a fixed set of sub-parsers in
// any order, each exactly once, succeeding once every one of them has
// matched. It adds no new core primitive: each round of the match is an
// ordinary [parsec.OneOf] over whichever sub-parsers have not yet run,
// tagged with their slot index so the result can be routed back to the
// right place; the only state beyond the core's is the local "remaining"
// set this package mutates between rounds.
package perm

import "github.com/creachadair-labs/parsec"

// Builder accumulates the sub-parsers of a permutation before [Build]
// turns them into a single parser. Values are erased to any internally;
// [Get] recovers them with their original type.
type Builder[C, T any] struct {
	slots []parsec.Parser[C, T, any]
}

// New returns an empty permutation builder.
func New[C, T any]() *Builder[C, T] {
	return &Builder[C, T]{}
}

// Add registers p as one member of the permutation and returns its slot
// index, to be passed to [Get] once the built parser has succeeded.
func Add[C, T, R any](b *Builder[C, T], p parsec.Parser[C, T, R]) int {
	idx := len(b.slots)
	b.slots = append(b.slots, parsec.Map(p, func(v R) any { return v }))
	return idx
}

// Get recovers the slot-indexed value produced by [Build]'s result,
// asserting it back to its original type R.
func Get[R any](results []any, idx int) R {
	return results[idx].(R)
}

type tagged struct {
	idx int
	val any
}

// Build returns a parser matching every sub-parser registered with b
// exactly once, in whatever order they happen to match the input, and
// yielding their results indexed by the slot each was [Add]ed at.
func Build[C, T any](b *Builder[C, T]) parsec.Parser[C, T, []any] {
	n := len(b.slots)
	return parsec.New(func(ctx C, st *parsec.State[T], exp *parsec.Expecteds[T]) ([]any, bool) {
		results := make([]any, n)
		done := make([]bool, n)
		for remaining := n; remaining > 0; remaining-- {
			candidates := make([]parsec.Parser[C, T, tagged], 0, remaining)
			for i, slot := range b.slots {
				if done[i] {
					continue
				}
				i, slot := i, slot
				candidates = append(candidates, parsec.Map(slot, func(v any) tagged {
					return tagged{idx: i, val: v}
				}))
			}
			t, ok := parsec.OneOf(candidates...).Eval(ctx, st, exp)
			if !ok {
				return nil, false
			}
			results[t.idx] = t.val
			done[t.idx] = true
		}
		return results, true
	})
}
