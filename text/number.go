// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package text

import (
	"strconv"

	"github.com/creachadair-labs/parsec"
)

// DecimalInteger builds a parser matching an optionally-signed run of
// decimal digits, yielding its value as an int64. Overflow saturates to
// the nearest representable int64, following [strconv.ParseInt]'s own
// ErrRange behavior.
func DecimalInteger[C any]() parsec.Parser[C, rune, int64] {
	return parsec.Labelled(parsec.Bind(signPart[C](), func(sign string) parsec.Parser[C, rune, int64] {
		return parsec.Map(intPart[C](), func(digits string) int64 {
			n, _ := strconv.ParseInt(sign+digits, 10, 64)
			return n
		})
	}), "integer")
}

// RealNumber builds a parser matching a decimal floating-point literal:
// an optional sign, an integer part, an optional fractional part, and an
// optional exponent (e.g. "-3.14e-2"), yielding its value as a float64.
func RealNumber[C any]() parsec.Parser[C, rune, float64] {
	return parsec.Labelled(parsec.Bind(signPart[C](), func(sign string) parsec.Parser[C, rune, float64] {
		return parsec.Bind(intPart[C](), func(ip string) parsec.Parser[C, rune, float64] {
			return parsec.Bind(fracPart[C](), func(fp string) parsec.Parser[C, rune, float64] {
				return parsec.Map(expPart[C](), func(ep string) float64 {
					f, _ := strconv.ParseFloat(sign+ip+fp+ep, 64)
					return f
				})
			})
		})
	}), "number")
}

func signPart[C any]() parsec.Parser[C, rune, string] {
	return parsec.Map(parsec.Optional(parsec.Token[C, rune]('-')), func(neg *rune) string {
		if neg != nil {
			return "-"
		}
		return ""
	})
}

func intPart[C any]() parsec.Parser[C, rune, string] {
	return parsec.Map(parsec.AtLeastOnce(Digit[C]()), runesToString)
}

func fracPart[C any]() parsec.Parser[C, rune, string] {
	dot := parsec.Bind(parsec.Token[C, rune]('.'), func(rune) parsec.Parser[C, rune, string] {
		return intPart[C]()
	})
	return parsec.Map(parsec.Optional(parsec.Try(dot)), func(fp *string) string {
		if fp == nil {
			return ""
		}
		return "." + *fp
	})
}

func expPart[C any]() parsec.Parser[C, rune, string] {
	letter := parsec.Or(parsec.Token[C, rune]('e'), parsec.Token[C, rune]('E'))
	body := parsec.Bind(letter, func(e rune) parsec.Parser[C, rune, string] {
		return parsec.Bind(signPart[C](), func(sign string) parsec.Parser[C, rune, string] {
			return parsec.Map(intPart[C](), func(digits string) string {
				return string(e) + sign + digits
			})
		})
	})
	return parsec.Map(parsec.Optional(parsec.Try(body)), func(ep *string) string {
		if ep == nil {
			return ""
		}
		return *ep
	})
}
