// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package text collects higher-level rune-stream parsers composed
// entirely from parsec's core primitives and combinators: character
// classes, literal strings, whitespace and comment skipping, number
// literals, and a handful of small structural conveniences. Nothing here
// touches the core's evaluation contract; it exists because every grammar
// built over text needs these same few building blocks.
package text

import (
	"unicode"

	"github.com/creachadair-labs/parsec"
)

// Char builds a parser matching a single rune equal to r.
func Char[C any](r rune) parsec.Parser[C, rune, rune] {
	return parsec.Labelled(parsec.Token[C, rune](r), quoteRune(r))
}

// String builds a parser matching the literal sequence of runes in s.
func String[C any](s string) parsec.Parser[C, rune, string] {
	runes := []rune(s)
	return parsec.Labelled(
		parsec.Map(parsec.Sequence[C, rune](runes), runesToString),
		`"`+s+`"`,
	)
}

// Digit builds a parser matching a single decimal digit.
func Digit[C any]() parsec.Parser[C, rune, rune] {
	return parsec.Labelled(parsec.TokenPredicate[C, rune](unicode.IsDigit), "digit")
}

// Letter builds a parser matching a single Unicode letter.
func Letter[C any]() parsec.Parser[C, rune, rune] {
	return parsec.Labelled(parsec.TokenPredicate[C, rune](unicode.IsLetter), "letter")
}

// Whitespace builds a parser matching a single space, tab, carriage
// return, or newline -- the same four characters jtree's scanner.go
// treats as insignificant whitespace.
func Whitespace[C any]() parsec.Parser[C, rune, rune] {
	return parsec.Labelled(parsec.TokenPredicate[C, rune](isSpace), "whitespace")
}

// SkipWhitespaces builds a parser that consumes zero or more whitespace
// runes, succeeding even when none are present.
func SkipWhitespaces[C any]() parsec.Parser[C, rune, struct{}] {
	return parsec.Map(parsec.Many(Whitespace[C]()), toUnit[[]rune])
}

// EndOfLine builds a parser matching a line terminator, either "\r\n" or a
// bare "\n".
func EndOfLine[C any]() parsec.Parser[C, rune, struct{}] {
	crlf := parsec.Map(parsec.Sequence[C, rune]([]rune{'\r', '\n'}), toUnit[[]rune])
	lf := parsec.Map(parsec.Token[C, rune]('\n'), toUnit[rune])
	return parsec.Labelled(parsec.Or(parsec.Try(crlf), lf), "end of line")
}

// LineComment builds a parser matching start followed by everything up to
// (but not including) the next newline or end of input.
func LineComment[C any](start string) parsec.Parser[C, rune, struct{}] {
	rest := parsec.Many(parsec.TokenPredicate[C, rune](notNewline))
	return parsec.Map(parsec.Then(String[C](start), rest), toUnit[[]rune])
}

// BlockComment builds a parser matching open, then every rune up to the
// first occurrence of close, then close itself. The scan is non-greedy:
// it stops at the first close, not the last.
func BlockComment[C any](open, close string) parsec.Parser[C, rune, struct{}] {
	closeP := String[C](close)
	body := parsec.Many(parsec.Then(parsec.Not(parsec.Try(closeP)), parsec.TokenPredicate[C, rune](anyRune)))
	return parsec.Map(parsec.Then(String[C](open), parsec.Before(body, closeP)), toUnit[[]rune])
}

// EnumChoice pairs a literal keyword with the value it should produce.
type EnumChoice[R any] struct {
	Literal string
	Value   R
}

// OneOfEnum builds a parser matching the first literal among choices that
// matches the input, yielding the corresponding value. Each alternative is
// wrapped in [parsec.Try] so a choice that shares a prefix with another
// (e.g. "in" and "instanceof") never commits the alternation to the wrong
// branch partway through.
func OneOfEnum[C, R any](choices ...EnumChoice[R]) parsec.Parser[C, rune, R] {
	parsers := make([]parsec.Parser[C, rune, R], len(choices))
	for i, c := range choices {
		v := c.Value
		parsers[i] = parsec.Try(parsec.Map(String[C](c.Literal), func(string) R { return v }))
	}
	return parsec.OneOf(parsers...)
}

// Between builds a parser matching open, then p, then close, yielding p's
// result.
func Between[C, T, O, R, CL any](open parsec.Parser[C, T, O], p parsec.Parser[C, T, R], close parsec.Parser[C, T, CL]) parsec.Parser[C, T, R] {
	return parsec.Then(open, parsec.Before(p, close))
}

// Parens builds a parser matching p enclosed in a literal "(" and ")".
func Parens[C, R any](p parsec.Parser[C, rune, R]) parsec.Parser[C, rune, R] {
	return Between[C, rune, rune, R, rune](Char[C]('('), p, Char[C](')'))
}

func isSpace(r rune) bool       { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }
func notNewline(r rune) bool    { return r != '\n' }
func anyRune(r rune) bool       { return true }
func runesToString(rs []rune) string { return string(rs) }
func toUnit[V any](V) struct{}  { return struct{}{} }

func quoteRune(r rune) string { return "'" + string(r) + "'" }
