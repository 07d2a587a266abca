// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package text

import (
	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/internal/escape"
	"go4.org/mem"
)

// QuotedString builds a parser matching a double-quoted, backslash-escaped
// string literal and yielding its decoded value, reusing the same
// escaping rules the core's error renderer uses for diagnostics.
//
// The scan over the quoted body preserves every raw rune, including
// backslashes, so that an escaped quote never terminates the literal
// early; the raw span collected between the quotes is handed to
// [escape.Unquote] whole, which is what actually interprets multi-rune
// escapes like \uXXXX.
func QuotedString[C any]() parsec.Parser[C, rune, string] {
	escapedPair := parsec.Bind(parsec.Token[C, rune]('\\'), func(bs rune) parsec.Parser[C, rune, []rune] {
		return parsec.Map(parsec.TokenPredicate[C, rune](anyRune), func(r rune) []rune {
			return []rune{bs, r}
		})
	})
	plainRune := parsec.Map(parsec.TokenPredicate[C, rune](func(r rune) bool { return r != '"' }), func(r rune) []rune {
		return []rune{r}
	})
	bodyChar := parsec.Or(escapedPair, plainRune)
	body := parsec.Map(parsec.Many(bodyChar), flattenRunes)
	quoted := Between[C, rune, rune, []rune, rune](Char[C]('"'), body, Char[C]('"'))

	return parsec.Labelled(parsec.Bind(quoted, func(raw []rune) parsec.Parser[C, rune, string] {
		dec, err := escape.Unquote(mem.S(string(raw)))
		if err != nil {
			return parsec.Fail[C, rune, string](err.Error())
		}
		return parsec.Return[C, rune, string](string(dec))
	}), "quoted string")
}

func flattenRunes(parts [][]rune) []rune {
	var out []rune
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
