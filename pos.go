// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

// A SourcePosDelta is an additive (line, column) offset, composed via an
// associative combination so that a chain of per-token deltas can be folded
// into the cumulative position of any offset in the input.
//
// The zero value is the identity: no lines, no columns.
type SourcePosDelta struct {
	Lines   int // number of line breaks contributed
	Columns int // column offset within the final line
}

// Combine returns the delta obtained by applying d and then next, in that
// order. Combine is associative but not commutative: if next crosses a line
// break, the combined column resets to next's column; otherwise the columns
// accumulate.
func (d SourcePosDelta) Combine(next SourcePosDelta) SourcePosDelta {
	if next.Lines == 0 {
		return SourcePosDelta{Lines: d.Lines, Columns: d.Columns + next.Columns}
	}
	return SourcePosDelta{Lines: d.Lines + next.Lines, Columns: next.Columns}
}

// TokenDelta computes the SourcePosDelta contributed by a single token.
type TokenDelta[T any] func(T) SourcePosDelta

// RuneDelta is the canonical TokenDelta for character input: '\n' starts a
// new line; every other rune advances one column.
func RuneDelta(r rune) SourcePosDelta {
	if r == '\n' {
		return SourcePosDelta{Lines: 1, Columns: 0}
	}
	return SourcePosDelta{Lines: 0, Columns: 1}
}

// ByteDelta is the canonical TokenDelta for byte input, treating '\n'
// (0x0a) the same way RuneDelta does.
func ByteDelta(b byte) SourcePosDelta {
	return RuneDelta(rune(b))
}

// FixedDelta returns a TokenDelta for non-character token types that simply
// advances one column per token, never crossing a line.
func FixedDelta[T any]() TokenDelta[T] {
	return func(T) SourcePosDelta { return SourcePosDelta{Columns: 1} }
}

// A Location describes where in the source a token offset falls, both as a
// raw token offset and as a 1-based line and column.
type Location struct {
	Offset int // token offset, 0-based
	Line   int // 1-based
	Column int // 1-based
}

// locationFromOrigin turns the delta from the start of input to offset into
// a Location for that offset.
func locationFromOrigin(offset int, d SourcePosDelta) Location {
	return Location{Offset: offset, Line: 1 + d.Lines, Column: 1 + d.Columns}
}
