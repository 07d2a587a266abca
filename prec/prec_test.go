// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package prec_test

import (
	"testing"

	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/input"
	"github.com/creachadair-labs/parsec/prec"
	"github.com/creachadair-labs/parsec/text"
)

type ctx = struct{}

func arithGrammar() parsec.Parser[ctx, rune, float64] {
	atom := text.RealNumber[ctx]()
	return prec.Expression(atom, []prec.Level[ctx, rune, float64]{
		{Op: parsec.Or(
			prec.InfixToken[ctx]("+", func(a, b float64) float64 { return a + b }),
			prec.InfixToken[ctx]("-", func(a, b float64) float64 { return a - b }),
		)},
		{Op: parsec.Or(
			prec.InfixToken[ctx]("*", func(a, b float64) float64 { return a * b }),
			prec.InfixToken[ctx]("/", func(a, b float64) float64 { return a / b }),
		)},
	})
}

func TestExpressionPrecedenceAndLeftAssociativity(t *testing.T) {
	cases := map[string]float64{
		"2+3*4":   14,
		"2*3+4":   10,
		"10-3-2":  5, // left-assoc: (10-3)-2, not 10-(3-2)
		"2*3*4":   24,
	}
	for src, want := range cases {
		v, err := parsec.Run(arithGrammar(), ctx{}, input.String(src), parsec.RuneConfig())
		if err != nil {
			t.Errorf("Expression(%q) failed: %v", src, err)
			continue
		}
		if v != want {
			t.Errorf("Expression(%q) = %v, want %v", src, v, want)
		}
	}
}

func TestExpressionRightAssociativity(t *testing.T) {
	// Exponentiation-like right-assoc level: a ^ (b ^ c), not (a ^ b) ^ c.
	// Using subtraction as the combine function makes left vs. right
	// associativity observably different: 2^(3^1) vs (2^3)^1.
	pow := prec.Level[ctx, rune, float64]{
		Op:    prec.InfixToken[ctx]("^", func(a, b float64) float64 { return a - b }),
		Right: true,
	}
	expr := prec.Expression(text.RealNumber[ctx](), []prec.Level[ctx, rune, float64]{pow})
	v, err := parsec.Run(expr, ctx{}, input.String("2^3^1"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// right-assoc: 2 - (3 - 1) = 0
	if v != 0 {
		t.Errorf("got %v, want 0 (right-associative fold)", v)
	}
}
