// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec_test

import (
	"testing"

	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/input"
)

type ctx = struct{}

func TestReturn(t *testing.T) {
	p := parsec.Return[ctx, rune, int](42)
	v, err := parsec.Run(p, ctx{}, input.String("anything"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != 42 {
		t.Errorf("got %d, want 42", v)
	}
}

func TestFail(t *testing.T) {
	p := parsec.Fail[ctx, rune, int]("always fails")
	_, err := parsec.Run(p, ctx{}, input.String("x"), parsec.RuneConfig())
	if err == nil {
		t.Fatal("expected failure")
	}
}

func TestTokenSuccess(t *testing.T) {
	p := parsec.Token[ctx, rune]('a')
	v, err := parsec.Run(p, ctx{}, input.String("a"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != 'a' {
		t.Errorf("got %q, want 'a'", v)
	}
}

func TestTokenMismatch(t *testing.T) {
	p := parsec.Token[ctx, rune]('a')
	_, err := parsec.Run(p, ctx{}, input.String("b"), parsec.RuneConfig())
	if err == nil {
		t.Fatal("expected failure on mismatch")
	}
}

func TestTokenEOF(t *testing.T) {
	p := parsec.Token[ctx, rune]('a')
	_, err := parsec.Run(p, ctx{}, input.String(""), parsec.RuneConfig())
	pe, ok := err.(*parsec.ParseError[rune])
	if !ok {
		t.Fatalf("expected *ParseError, got %T (%v)", err, err)
	}
	if !pe.EOF {
		t.Errorf("expected EOF flag set, got %+v", pe)
	}
}

func TestEnd(t *testing.T) {
	p := parsec.End[ctx, rune]()
	if _, err := parsec.Run(p, ctx{}, input.String(""), parsec.RuneConfig()); err != nil {
		t.Errorf("End on empty input failed: %v", err)
	}
	if _, err := parsec.Run(p, ctx{}, input.String("x"), parsec.RuneConfig()); err == nil {
		t.Error("End on non-empty input should have failed")
	}
}

func TestSequenceTruncation(t *testing.T) {
	p := parsec.Sequence[ctx, rune]([]rune("abc"))
	_, err := parsec.Run(p, ctx{}, input.String("ab"), parsec.RuneConfig())
	pe, ok := err.(*parsec.ParseError[rune])
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if !pe.EOF {
		t.Errorf("truncated sequence should report EOF, got %+v", pe)
	}
	if pe.Offset != 2 {
		t.Errorf("offset = %d, want 2 (span length)", pe.Offset)
	}
}

func TestSequenceMismatch(t *testing.T) {
	p := parsec.Sequence[ctx, rune]([]rune("abc"))
	_, err := parsec.Run(p, ctx{}, input.String("abd"), parsec.RuneConfig())
	pe, ok := err.(*parsec.ParseError[rune])
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Offset != 2 {
		t.Errorf("offset = %d, want 2", pe.Offset)
	}
	if !pe.HasUnexpected || pe.Unexpected != 'd' {
		t.Errorf("unexpected = %+v, want 'd'", pe)
	}
}

func TestCurrentOffset(t *testing.T) {
	p := parsec.Then(parsec.Token[ctx, rune]('a'), parsec.CurrentOffset[ctx, rune]())
	v, err := parsec.Run(p, ctx{}, input.String("ab"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != 1 {
		t.Errorf("offset = %d, want 1", v)
	}
}

func TestCurrentPosNoConfig(t *testing.T) {
	p := parsec.CurrentPos[ctx, rune]()
	if _, err := parsec.Run(p, ctx{}, input.String("x"), nil); err == nil {
		t.Error("CurrentPos with no PosDelta configured should fail")
	}
}
