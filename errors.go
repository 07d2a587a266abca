// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

import (
	"fmt"
	"sort"
	"strings"

	"github.com/creachadair-labs/parsec/internal/escape"
	"go4.org/mem"
)

// An ExpectedKind classifies what shape of thing a parser was looking for.
type ExpectedKind int

const (
	// ExpectedLabel is a human-readable description, e.g. "digit".
	ExpectedLabel ExpectedKind = iota
	// ExpectedLiteral is a literal run of tokens a parser tried to match.
	ExpectedLiteral
	// ExpectedEOF is the sentinel for "end of input".
	ExpectedEOF
)

// Expected describes one thing a parser was looking for at some offset. The
// zero value is not meaningful; construct values with [ExpectLabel],
// [ExpectLiteral], or [ExpectEOF].
type Expected[T any] struct {
	Kind    ExpectedKind
	Label   string
	Literal []T
}

// ExpectLabel returns an Expected carrying a human-readable label.
func ExpectLabel[T any](label string) Expected[T] {
	return Expected[T]{Kind: ExpectedLabel, Label: label}
}

// ExpectLiteral returns an Expected carrying a literal sequence of tokens.
func ExpectLiteral[T any](lit []T) Expected[T] {
	return Expected[T]{Kind: ExpectedLiteral, Literal: append([]T(nil), lit...)}
}

// ExpectEOF returns the Expected sentinel for "end of input".
func ExpectEOF[T any]() Expected[T] {
	return Expected[T]{Kind: ExpectedEOF}
}

func (e Expected[T]) key() string {
	switch e.Kind {
	case ExpectedEOF:
		return "eof"
	case ExpectedLiteral:
		return "lit:" + fmt.Sprintf("%v", e.Literal)
	default:
		return "lbl:" + e.Label
	}
}

func (e Expected[T]) render(rt renderFuncs[T]) string {
	switch e.Kind {
	case ExpectedEOF:
		return "end of input"
	case ExpectedLiteral:
		return rt.literal(e.Literal)
	default:
		return e.Label
	}
}

// Expecteds is a scoped accumulator of [Expected] values with duplicates
// collapsed. Every accumulator obtained from a pool via NewExpecteds is
// returned via release when its scope ends. The accumulator [Run] creates
// is released on every exit path, including a panic; the per-branch
// accumulators created inside combinators (OneOf, WithExpected, Not) are
// released on their normal return paths only, so a panic unwinding through
// one of them leaves its accumulator unreturned to the pool.
//
// Expecteds is exported only so that [New]-built custom primitives can
// contribute to it with Add; callers of Run never construct one directly.
type Expecteds[T any] struct {
	cfg   *Configuration[T]
	items []Expected[T]
	seen  map[string]struct{}
}

// NewExpecteds obtains a fresh accumulator from cfg's expected-set pool.
func NewExpecteds[T any](cfg *Configuration[T]) *Expecteds[T] {
	return &Expecteds[T]{cfg: cfg, items: cfg.expectedPool().Get(0)}
}

func (e *Expecteds[T]) release() {
	if e == nil {
		return
	}
	e.cfg.expectedPool().Put(e.items)
	e.items, e.seen = nil, nil
}

func (e *Expecteds[T]) Add(x Expected[T]) {
	if e == nil {
		return
	}
	k := x.key()
	if e.seen == nil {
		e.seen = make(map[string]struct{}, 4)
	}
	if _, ok := e.seen[k]; ok {
		return
	}
	e.seen[k] = struct{}{}
	e.items = append(e.items, x)
}

func (e *Expecteds[T]) AddAll(other *Expecteds[T]) {
	if e == nil || other == nil {
		return
	}
	for _, x := range other.items {
		e.Add(x)
	}
}

func (e *Expecteds[T]) reset() {
	e.items = e.items[:0]
	clear(e.seen)
}

func (e *Expecteds[T]) snapshot() []Expected[T] {
	if e == nil || len(e.items) == 0 {
		return nil
	}
	return append([]Expected[T](nil), e.items...)
}

// InternalError is the internal failure record written to a [State]'s error
// slot by a failing primitive. Its "where" dominates: when alternatives
// fail at different offsets, the furthest-right error represents the
// deepest progress and wins (see combinators.go's alternation rule).
type InternalError[T any] struct {
	Offset        int
	Unexpected    T
	HasUnexpected bool // true if Unexpected is a real token, not EOF/unset
	EOF           bool // true if the failure occurred at end of input
	Message       string
}

// ParseError is the user-facing error produced when the top-level parser
// passed to [Run] fails. It carries the merged, deduplicated set of things
// that were expected at the deepest offset reached.
type ParseError[T any] struct {
	Offset        int
	Pos           Location
	HasPos        bool
	Unexpected    T
	HasUnexpected bool
	EOF           bool
	Expected      []Expected[T]
	Message       string

	render renderFuncs[T]
}

// Error renders e in the canonical form:
//
//	parse error at line L col C: unexpected X; expected A, B, or C; message
//
// Expected items are sorted for determinism. If position information was
// not available (e.g. no [TokenDelta] configured), the offset is reported
// in place of a line:col pair.
func (e *ParseError[T]) Error() string {
	var sb strings.Builder
	sb.WriteString("parse error at ")
	if e.HasPos {
		fmt.Fprintf(&sb, "line %d col %d", e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "offset %d", e.Offset)
	}
	sb.WriteString(": unexpected ")
	switch {
	case e.EOF:
		sb.WriteString("end of input")
	case e.HasUnexpected:
		sb.WriteString(e.render.token(e.Unexpected))
	default:
		sb.WriteString("input")
	}
	if len(e.Expected) > 0 {
		rendered := make([]string, len(e.Expected))
		for i, x := range e.Expected {
			rendered[i] = x.render(e.render)
		}
		sort.Strings(rendered)
		rendered = dedupSorted(rendered)
		sb.WriteString("; expected ")
		sb.WriteString(joinOxford(rendered))
	}
	if e.Message != "" {
		sb.WriteString("; ")
		sb.WriteString(e.Message)
	}
	return sb.String()
}

func dedupSorted(ss []string) []string {
	out := ss[:0]
	var prev string
	for i, s := range ss {
		if i == 0 || s != prev {
			out = append(out, s)
			prev = s
		}
	}
	return out
}

func joinOxford(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", or " + items[len(items)-1]
	}
}

// renderFuncs bundles the pair of rendering callbacks a Configuration
// supplies for canonical error text: one token at a time, and a literal
// run of tokens.
type renderFuncs[T any] struct {
	token   func(T) string
	literal func([]T) string
}

// defaultTokenRender renders a single token with fmt's default verb. It is
// overridden for byte/rune token streams by [RuneConfig] and [ByteConfig].
func defaultTokenRender[T any](t T) string { return fmt.Sprintf("%v", t) }

func defaultLiteralRender[T any](render func(T) string) func([]T) string {
	return func(lit []T) string {
		parts := make([]string, len(lit))
		for i, t := range lit {
			parts[i] = render(t)
		}
		return "\"" + strings.Join(parts, "") + "\""
	}
}

// runeLiteralRender renders a []rune literal the way a Go string literal
// would be quoted, reusing the core's internal escaping helper.
func runeLiteralRender(lit []rune) string {
	return escape.Render(mem.S(string(lit)))
}

// byteLiteralRender renders a []byte literal the same way.
func byteLiteralRender(lit []byte) string {
	return escape.Render(mem.B(lit))
}
