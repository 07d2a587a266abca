// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package prec

import (
	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/text"
)

// InfixToken builds a [Level]'s Op parser for a rune-stream grammar: it
// matches the literal operator spelling and always yields combine,
// regardless of which operand values it is later applied to.
func InfixToken[C, R any](op string, combine func(R, R) R) parsec.Parser[C, rune, func(R, R) R] {
	return parsec.Map(text.String[C](op), func(string) func(R, R) R { return combine })
}
