// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/input"
	"github.com/creachadair-labs/parsec/prec"
	"github.com/creachadair-labs/parsec/text"
)

// calcCtx is the (unused) parser context for the calculator grammar: it
// needs no state threaded through evaluation.
type calcCtx = struct{}

// lexeme skips leading whitespace before running p, so every token in the
// grammar below tolerates free-form spacing without each rule having to
// say so individually. The whole is wrapped in Try, so whitespace followed
// by some other token is left unconsumed for the next alternative.
func lexeme[R any](p parsec.Parser[calcCtx, rune, R]) parsec.Parser[calcCtx, rune, R] {
	return parsec.Try(parsec.Then(text.SkipWhitespaces[calcCtx](), p))
}

func opToken(op string, f func(a, b float64) float64) parsec.Parser[calcCtx, rune, func(float64, float64) float64] {
	return lexeme(prec.InfixToken[calcCtx](op, f))
}

// grammar builds the calculator's top-level expression parser: four-
// function arithmetic over real-number literals and parenthesized
// sub-expressions, with the usual precedence of * and / over + and -.
func grammar() parsec.Parser[calcCtx, rune, float64] {
	num := lexeme(text.RealNumber[calcCtx]())

	var expr parsec.Parser[calcCtx, rune, float64]
	atom := parsec.Rec(func() parsec.Parser[calcCtx, rune, float64] {
		paren := text.Between[calcCtx, rune, rune, float64, rune](
			lexeme(text.Char[calcCtx]('(')),
			expr,
			lexeme(text.Char[calcCtx](')')),
		)
		return parsec.Labelled(parsec.Or(num, paren), "number or parenthesized expression")
	})

	expr = prec.Expression(atom, []prec.Level[calcCtx, rune, float64]{
		{Op: parsec.Or(opToken("+", func(a, b float64) float64 { return a + b }), opToken("-", func(a, b float64) float64 { return a - b }))},
		{Op: parsec.Or(opToken("*", func(a, b float64) float64 { return a * b }), opToken("/", func(a, b float64) float64 { return a / b }))},
	})
	return expr
}

// Eval parses and evaluates a single arithmetic expression.
func Eval(src string) (float64, error) {
	p := parsec.Before(grammar(), parsec.Then(text.SkipWhitespaces[calcCtx](), parsec.End[calcCtx, rune]()))
	return parsec.Run(p, calcCtx{}, input.String(src), parsec.RuneConfig())
}
