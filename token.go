// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

import "io"

// A Source is the uniform pull interface the core reads tokens through. A
// single call to Read fills as much of buf as is immediately available and
// reports how many tokens it wrote.
//
// Read follows the same contract as [io.Reader.Read]: it may return n > 0
// together with a non-nil error, and it reports [io.EOF] once the input is
// exhausted and no further tokens will ever be produced. Read must never
// block waiting for more input than the underlying transport already has
// buffered, beyond whatever blocking is inherent to that transport; the
// core never seeks or retries past an error Read reports.
//
// Adapters over slices, iterators, byte streams and character readers are
// provided by the input subpackage; Source itself has no dependency on any
// particular token type or transport.
type Source[T any] interface {
	Read(buf []T) (n int, err error)
}

// WholeSliceSource is an optional interface a [Source] may implement to
// hand the state its entire remaining input as a single slice, letting the
// state alias that slice directly as its lookahead buffer instead of
// copying through a pooled array. Adapters over an already-materialized
// slice (see input.Slice) implement this for true zero-copy parsing.
type WholeSliceSource[T any] interface {
	Source[T]

	// WholeSlice returns every token not yet delivered through Read. The
	// caller (the core parse state) takes ownership of treating the
	// returned slice as read-only lookahead; the source must not mutate it
	// afterward.
	WholeSlice() []T
}
