// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package prec builds expression parsers from an atom parser and a table
// of infix operator levels, climbing precedence the way a hand-rolled
// Pratt parser would -- but entirely in terms of parsec's OneOf, Bind, and
// Fix, with no new core primitives. Levels are listed loosest-binding
// first, tightest-binding (closest to the atom) last.
package prec

import "github.com/creachadair-labs/parsec"

// A Level describes one precedence level of infix operators: Op parses
// whichever operator token(s) belong to this level and yields the
// function that combines a left and right operand, and Right selects
// right- (true) or left- (false) associative folding.
type Level[C, T, R any] struct {
	Op    parsec.Parser[C, T, func(R, R) R]
	Right bool
}

// Expression builds a parser for an expression grammar: atom parses a
// single operand (a literal, a parenthesized sub-expression, a variable
// reference -- whatever an operator takes as its operand), and levels
// lists the operator precedence levels from loosest to tightest.
func Expression[C, T, R any](atom parsec.Parser[C, T, R], levels []Level[C, T, R]) parsec.Parser[C, T, R] {
	term := atom
	for i := len(levels) - 1; i >= 0; i-- {
		term = chainLevel(term, levels[i])
	}
	return term
}

func chainLevel[C, T, R any](term parsec.Parser[C, T, R], lvl Level[C, T, R]) parsec.Parser[C, T, R] {
	if lvl.Right {
		return chainRight(term, lvl)
	}
	return chainLeft(term, lvl)
}

type step[R any] struct {
	combine func(R, R) R
	rhs     R
}

// chainLeft folds `term (op term)*` left-to-right: ((a op b) op c) op d.
func chainLeft[C, T, R any](term parsec.Parser[C, T, R], lvl Level[C, T, R]) parsec.Parser[C, T, R] {
	return parsec.Bind(term, func(first R) parsec.Parser[C, T, R] {
		tail := parsec.Bind(lvl.Op, func(combine func(R, R) R) parsec.Parser[C, T, step[R]] {
			return parsec.Map(term, func(rhs R) step[R] { return step[R]{combine: combine, rhs: rhs} })
		})
		return parsec.Map(parsec.Many(tail), func(steps []step[R]) R {
			acc := first
			for _, s := range steps {
				acc = s.combine(acc, s.rhs)
			}
			return acc
		})
	})
}

// chainRight folds `term (op term)?` right-to-left via self-recursion:
// a op (b op (c op d)).
func chainRight[C, T, R any](term parsec.Parser[C, T, R], lvl Level[C, T, R]) parsec.Parser[C, T, R] {
	return parsec.Fix(func(self parsec.Parser[C, T, R]) parsec.Parser[C, T, R] {
		return parsec.Bind(term, func(lhs R) parsec.Parser[C, T, R] {
			return parsec.Or(
				parsec.Bind(lvl.Op, func(combine func(R, R) R) parsec.Parser[C, T, R] {
					return parsec.Map(self, func(rhs R) R { return combine(lhs, rhs) })
				}),
				parsec.Return[C, T, R](lhs),
			)
		})
	})
}
