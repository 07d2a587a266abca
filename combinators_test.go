// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec_test

import (
	"testing"

	"github.com/creachadair-labs/parsec"
	"github.com/creachadair-labs/parsec/input"
	"github.com/creachadair-labs/parsec/text"
)

// "ab" | "ac" on "ad" is committed by the first branch (it consumed 'a'),
// so only "ab" appears in the expected set, even though "ac" would also
// have failed on this input.
func TestOneOfCommittedBranchOnlyContributesItsOwnExpecteds(t *testing.T) {
	p := parsec.Or(text.String[ctx]("ab"), text.String[ctx]("ac"))
	_, err := parsec.Run(p, ctx{}, input.String("ad"), parsec.RuneConfig())
	pe, ok := err.(*parsec.ParseError[rune])
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Offset != 1 {
		t.Errorf("offset = %d, want 1", pe.Offset)
	}
	if len(pe.Expected) != 1 {
		t.Errorf("expected set = %+v, want exactly one entry", pe.Expected)
	}
}

// Wrapping the committed branch in Try lets the second branch run after
// all.
func TestTryConvertsCommittedFailureToUncommitted(t *testing.T) {
	p := parsec.Or(parsec.Try(text.String[ctx]("ab")), text.String[ctx]("ac"))
	v, err := parsec.Run(p, ctx{}, input.String("ac"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != "ac" {
		t.Errorf("got %q, want \"ac\"", v)
	}
}

func TestOneOfMergesAllUncommittedExpecteds(t *testing.T) {
	// Three branches that each fail immediately (no token matched at all),
	// so every one is uncommitted at the same entry offset: every branch's
	// contribution should survive in the merged expected set.
	p := parsec.OneOf(
		text.String[ctx]("xx"),
		text.String[ctx]("yy"),
		text.String[ctx]("zz"),
	)
	_, err := parsec.Run(p, ctx{}, input.String("ab"), parsec.RuneConfig())
	pe, ok := err.(*parsec.ParseError[rune])
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Offset != 0 {
		t.Errorf("offset = %d, want 0", pe.Offset)
	}
	if len(pe.Expected) != 3 {
		t.Errorf("expected set = %+v, want exactly three entries", pe.Expected)
	}
}

func TestOneOfDeepestCommittedBranchWins(t *testing.T) {
	// "cd" | "abc": the first branch fails uncommitted (mismatch at the
	// very first rune); the second branch consumes "ab" before failing, so
	// it is committed, and its expecteds alone are reported even though it
	// ran second.
	p := parsec.Or(text.String[ctx]("cd"), text.String[ctx]("abc"))
	_, err := parsec.Run(p, ctx{}, input.String("abx"), parsec.RuneConfig())
	pe, ok := err.(*parsec.ParseError[rune])
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Offset != 2 {
		t.Errorf("offset = %d, want 2", pe.Offset)
	}
	if len(pe.Expected) != 1 {
		t.Errorf("expected set = %+v, want exactly one entry", pe.Expected)
	}
}

func TestLookaheadIsPositionPreservingOnSuccess(t *testing.T) {
	p := parsec.Then(parsec.Lookahead(text.String[ctx]("ab")), parsec.CurrentOffset[ctx, rune]())
	v, err := parsec.Run(p, ctx{}, input.String("ab"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != 0 {
		t.Errorf("offset after Lookahead = %d, want 0", v)
	}
}

func TestNotSucceedsIffInnerFails(t *testing.T) {
	notDigit := parsec.Not(text.Digit[ctx]())
	if _, err := parsec.Run(notDigit, ctx{}, input.String("a"), parsec.RuneConfig()); err != nil {
		t.Errorf("Not(digit) on letter should succeed: %v", err)
	}
	if _, err := parsec.Run(notDigit, ctx{}, input.String("1"), parsec.RuneConfig()); err == nil {
		t.Error("Not(digit) on a digit should fail")
	}
}

func TestLabelledReplacesExpected(t *testing.T) {
	p := parsec.Labelled(text.Digit[ctx](), "a single digit")
	_, err := parsec.Run(p, ctx{}, input.String("x"), parsec.RuneConfig())
	pe, ok := err.(*parsec.ParseError[rune])
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if len(pe.Expected) != 1 || pe.Expected[0].Label != "a single digit" {
		t.Errorf("expected = %+v, want [a single digit]", pe.Expected)
	}
}

func TestOptionalAbsorbsUncommittedFailure(t *testing.T) {
	p := parsec.Optional(text.Digit[ctx]())
	v, err := parsec.Run(p, ctx{}, input.String("x"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != nil {
		t.Errorf("got %v, want nil", v)
	}
}

func TestRecoverWithSubstitutesContinuation(t *testing.T) {
	p := parsec.RecoverWith(text.Digit[ctx](), func(*parsec.ParseError[rune]) parsec.Parser[ctx, rune, rune] {
		return parsec.Return[ctx, rune, rune]('?')
	})
	v, err := parsec.Run(p, ctx{}, input.String("x"), parsec.RuneConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if v != '?' {
		t.Errorf("got %q, want '?'", v)
	}
}
