// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package input

import "github.com/creachadair-labs/parsec"

// String adapts an in-process string as a zero-copy token source of
// decoded runes. The string is decoded once, up front; the decoded slice
// is then aliased directly into the parser core's lookahead buffer via
// [Slice]'s [parsec.WholeSliceSource] implementation.
func String(s string) parsec.Source[rune] {
	return Slice([]rune(s))
}

// StringBytes adapts an in-process string as a token source of raw bytes,
// for grammars defined over undecoded UTF-8 (or binary) input.
func StringBytes(s string) parsec.Source[byte] {
	return Slice([]byte(s))
}
