// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec_test

import (
	"io"
	"testing"

	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/input"
)

// chunkySource hands out tokens a few at a time regardless of how much
// buffer space is offered, forcing the state to make several Read calls
// and exercise its buffer-growth and compaction paths -- unlike
// input.String, which is a WholeSliceSource and never touches them.
type chunkySource struct {
	remaining []rune
	chunk     int
}

func (s *chunkySource) Read(buf []rune) (int, error) {
	if len(s.remaining) == 0 {
		return 0, io.EOF
	}
	n := s.chunk
	if n > len(buf) {
		n = len(buf)
	}
	if n > len(s.remaining) {
		n = len(s.remaining)
	}
	copy(buf, s.remaining[:n])
	s.remaining = s.remaining[n:]
	return n, nil
}

func TestStateBufferGrowthAcrossChunkedReads(t *testing.T) {
	// Long enough to force at least one grow() beyond the pool's default
	// capacity while being assembled from small chunks: Try's bookmark at
	// offset 0 keeps compaction from discarding the consumed tokens.
	const n = 200
	want := make([]rune, n)
	for i := range want {
		want[i] = rune('a' + i%26)
	}
	src := &chunkySource{remaining: append([]rune(nil), want...), chunk: 3}

	p := parsec.Try(parsec.AtLeastOnce(parsec.TokenPredicate[ctx, rune](func(rune) bool { return true })))
	got, err := parsec.Run(p, ctx{}, src, parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(got) != n {
		t.Fatalf("got %d tokens, want %d", len(got), n)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStateBacktrackAcrossChunkedReads(t *testing.T) {
	// Try rewinds deep into already-buffered-and-partly-compacted input: the
	// bookmark must keep the relevant window alive across Read calls. The
	// first branch consumes ten a's before mismatching on the eleventh
	// token and must be fully unwound before the second branch can match
	// the real run of a's followed by 'X'.
	src := &chunkySource{remaining: []rune("aaaaaaaaaaX"), chunk: 2}
	elevenAs := make([]rune, 11)
	for i := range elevenAs {
		elevenAs[i] = 'a'
	}
	p := parsec.Or(
		parsec.Try(parsec.Sequence[ctx, rune](elevenAs)),
		parsec.Before(parsec.AtLeastOnce(parsec.Token[ctx, rune]('a')), parsec.Token[ctx, rune]('X')),
	)
	got, err := parsec.Run(p, ctx{}, src, parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("got %d a's, want 10", len(got))
	}
}

func TestRunWithInputStringWholeSlice(t *testing.T) {
	// Sanity check of the zero-copy WholeSliceSource path (input.String) on
	// an ordinary parse.
	p := parsec.AtLeastOnce(parsec.TokenPredicate[ctx, rune](func(r rune) bool { return r != 'x' }))
	got, err := parsec.Run(p, ctx{}, input.String("abc"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("got %q, want %q", string(got), "abc")
	}
}
