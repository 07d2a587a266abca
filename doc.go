// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package parsec implements a generic parser-combinator core: a buffered,
// backtrackable token stream, an error-merging discipline that produces
// readable "expected X, got Y at line:col" diagnostics, and the
// fundamental combinators every higher-level grammar is built from.
//
// # Building a grammar
//
// A [Parser][C, T, R] consumes tokens of type T, threads an optional
// context C through every step, and produces a value of type R on
// success. Grammars are built by composing the primitives in
// primitives.go (Token, Sequence, Return, Fail, ...) with the combinators
// in combinators.go (Map, Bind, Or, OneOf, Try, ...) and the repetition
// helpers in repeat.go (Many, Separated, ChainAtLeastOnce, ...):
//
//	digit := TokenPredicate[any](func(r rune) bool { return '0' <= r && r <= '9' })
//	digits := AtLeastOnce(digit)
//
// Recursive grammars declare a forward variable and tie the knot with
// [Rec] or its [Fix] shorthand; see rec.go.
//
// # Running a parser
//
// [Run] drives a built parser against a [Source] of tokens and a
// [Configuration] (nil selects sane defaults), returning either the
// parser's result or a [ParseError] describing what went wrong and where.
// [RunOrThrow] is its panicking counterpart.
//
//	v, err := Run(digits, nil, input.String("042"), RuneConfig())
//	if err != nil {
//	   log.Fatalf("parse failed: %v", err)
//	}
//
// # Subpackages
//
// The input subpackage adapts common Go data shapes (slices, io.Reader,
// iter.Seq) as [Source] values. The text subpackage supplies rune-stream
// conveniences (character classes, number literals, comment skippers)
// composed entirely from the core. The prec subpackage builds operator-
// precedence expression grammars, and perm builds permutation parsers.
// None of these add anything the core itself does not already support;
// they exist because every grammar built over text needs roughly the
// same handful of building blocks.
package parsec
