// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package input_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/input"
	"github.com/creachadair-labs/parsec/text"
)

type ctx = struct{}

func TestSliceZeroCopy(t *testing.T) {
	src := input.Slice([]rune("abc"))
	ws, ok := src.(parsec.WholeSliceSource[rune])
	if !ok {
		t.Fatal("input.Slice should implement WholeSliceSource")
	}
	if got := string(ws.WholeSlice()); got != "abc" {
		t.Errorf("WholeSlice = %q, want %q", got, "abc")
	}
}

func TestOrderedNamedSliceType(t *testing.T) {
	type Runes []rune
	p := parsec.AtLeastOnce(parsec.TokenPredicate[ctx, rune](func(rune) bool { return true }))
	v, err := parsec.Run(p, ctx{}, input.Ordered[Runes](Runes("xy")), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if string(v) != "xy" {
		t.Errorf("got %q, want %q", string(v), "xy")
	}
}

func TestFromIterPullsOneAtATime(t *testing.T) {
	seq := func(yield func(rune) bool) {
		for _, r := range "hi" {
			if !yield(r) {
				return
			}
		}
	}
	p := parsec.AtLeastOnce(parsec.TokenPredicate[ctx, rune](func(rune) bool { return true }))
	v, err := parsec.Run(p, ctx{}, input.FromIter(seq), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if string(v) != "hi" {
		t.Errorf("got %q, want %q", string(v), "hi")
	}
}

func TestBytesAdapter(t *testing.T) {
	p := parsec.AtLeastOnce(parsec.TokenPredicate[ctx, byte](func(byte) bool { return true }))
	v, err := parsec.Run(p, ctx{}, input.Bytes(bytes.NewReader([]byte("ab"))), parsec.ByteConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if string(v) != "ab" {
		t.Errorf("got %q, want %q", string(v), "ab")
	}
}

func TestRunesAdapterDecodesUTF8(t *testing.T) {
	v, err := parsec.Run(text.String[ctx]("café"), ctx{}, input.Runes(strings.NewReader("café")), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != "café" {
		t.Errorf("got %q, want %q", v, "café")
	}
}

func TestStringAndStringBytes(t *testing.T) {
	v, err := parsec.Run(text.String[ctx]("hello"), ctx{}, input.String("hello"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != "hello" {
		t.Errorf("got %q, want %q", v, "hello")
	}

	bp := parsec.Sequence[ctx, byte]([]byte("ab"))
	bv, err := parsec.Run(bp, ctx{}, input.StringBytes("ab"), parsec.ByteConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if string(bv) != "ab" {
		t.Errorf("got %q, want %q", string(bv), "ab")
	}
}
