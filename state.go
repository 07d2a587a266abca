// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

import (
	"io"
	"reflect"
	"sync"
)

// Configuration is an immutable bundle of knobs supplied at driver
// invocation. The zero value is usable: missing fields fall back to
// generic, type-agnostic defaults (no position tracking, fmt-based
// rendering, sync.Pool-backed pooling).
type Configuration[T any] struct {
	// TokenPool supplies backing arrays for the state's lookahead buffer.
	TokenPool ArrayPoolProvider[T]
	// ExpectedPool supplies backing arrays for expected-set accumulators.
	ExpectedPool ArrayPoolProvider[Expected[T]]
	// PosDelta maps a single token to its contribution to source position.
	// If nil, CurrentPos and ParseError positions are unavailable (only the
	// raw token offset is reported).
	PosDelta TokenDelta[T]
	// RenderToken renders a single token for diagnostics. Defaults to
	// fmt.Sprintf("%v", t).
	RenderToken func(T) string
	// RenderLiteral renders a literal run of tokens for diagnostics.
	// Defaults to concatenating RenderToken results inside quotes.
	RenderLiteral func([]T) string
}

func (c *Configuration[T]) tokenPool() ArrayPoolProvider[T] {
	if c == nil || c.TokenPool == nil {
		return defaultTokenPool[T]()
	}
	return c.TokenPool
}

func (c *Configuration[T]) expectedPool() ArrayPoolProvider[Expected[T]] {
	if c == nil || c.ExpectedPool == nil {
		return defaultExpectedPool[T]()
	}
	return c.ExpectedPool
}

func (c *Configuration[T]) posDelta() TokenDelta[T] { // may be nil
	if c == nil {
		return nil
	}
	return c.PosDelta
}

func (c *Configuration[T]) renderFuncs() renderFuncs[T] {
	render := defaultTokenRender[T]
	if c != nil && c.RenderToken != nil {
		render = c.RenderToken
	}
	literal := defaultLiteralRender(render)
	if c != nil && c.RenderLiteral != nil {
		literal = c.RenderLiteral
	}
	return renderFuncs[T]{token: render, literal: literal}
}

// RuneConfig returns a Configuration tuned for parsing streams of runes:
// newline-aware position tracking and Go-string-style quoting of literals
// and unexpected tokens.
func RuneConfig() *Configuration[rune] {
	return &Configuration[rune]{
		PosDelta:      RuneDelta,
		RenderToken:   func(r rune) string { return runeLiteralRender([]rune{r}) },
		RenderLiteral: runeLiteralRender,
	}
}

// ByteConfig is RuneConfig's counterpart for streams of bytes.
func ByteConfig() *Configuration[byte] {
	return &Configuration[byte]{
		PosDelta:      ByteDelta,
		RenderToken:   func(b byte) string { return byteLiteralRender([]byte{b}) },
		RenderLiteral: byteLiteralRender,
	}
}

// defaultPools memoizes one ArrayPoolProvider per distinct element type, so
// that repeated calls to [Run] with no explicit Configuration still share a
// pool across parses rather than allocating a fresh one each time. Keyed by
// reflect.Type for simplicity; providers are themselves safe for concurrent
// use, since independent parses may share this map.
var defaultPools sync.Map // map[reflect.Type]any

func defaultTokenPool[T any]() ArrayPoolProvider[T] {
	return poolFor[T]()
}

func defaultExpectedPool[T any]() ArrayPoolProvider[Expected[T]] {
	return poolFor[Expected[T]]()
}

func poolFor[E any]() ArrayPoolProvider[E] {
	var zero E
	key := reflect.TypeOf(&zero)
	if v, ok := defaultPools.Load(key); ok {
		return v.(ArrayPoolProvider[E])
	}
	actual, _ := defaultPools.LoadOrStore(key, NewSyncArrayPool[E]())
	return actual.(ArrayPoolProvider[E])
}

// Bookmark is an opaque handle returned by [State.Bookmark]. It pins the
// state's buffer so tokens at or after its offset cannot be discarded,
// enabling a later [State.Rewind]. Every bookmark must be rewound to or
// explicitly discarded with [State.DiscardBookmark] before the frame that
// created it returns.
type Bookmark struct {
	id     int64
	offset int
}

// State is the mutable heart of the core: buffered lookahead over a
// [Source], the current offset, a bookmark stack enabling backtracking, an
// error slot written by failing primitives, and a source-position cache.
// A State is created fresh for each call to [Run] and is not safe for
// concurrent use; independent parses must use independent States.
type State[T any] struct {
	src Source[T]
	cfg *Configuration[T]

	buf      []T  // lookahead window; buf[0] corresponds to absolute offset `base`
	base     int  // absolute offset of buf[0]
	filled   int  // number of valid tokens in buf
	eof      bool // true once src has reported end of input
	ioErr    error
	pooled   bool // whether buf came from the pool (vs. aliasing a WholeSlice)
	nextID   int64
	bookmarks []Bookmark

	pos int // current absolute offset

	err *InternalError[T]

	// posCache.offset is always in [base, pos] when valid; posCache.delta
	// is the SourcePosDelta from the start of input to posCache.offset.
	posCacheOffset int
	posCacheDelta  SourcePosDelta
	posCacheValid  bool
	baseDelta      SourcePosDelta // delta from start of input to `base`
}

// newState constructs a State reading from src under cfg. cfg must not be
// nil; callers go through [Run], which supplies a default when the caller
// passes nil.
func newState[T any](src Source[T], cfg *Configuration[T]) *State[T] {
	s := &State[T]{src: src, cfg: cfg}
	if ws, ok := src.(WholeSliceSource[T]); ok {
		s.buf = ws.WholeSlice()
		s.filled = len(s.buf)
		s.eof = true
		s.pooled = false
	} else {
		s.buf = cfg.tokenPool().Get(64)
		s.pooled = true
	}
	return s
}

// release returns any pooled buffer back to the configured pool. Safe to
// call multiple times.
func (s *State[T]) release() {
	if s.pooled && s.buf != nil {
		s.cfg.tokenPool().Put(s.buf)
		s.buf = nil
		s.pooled = false
	}
}

func (s *State[T]) relPos() int { return s.pos - s.base }

// compact drops buffered tokens before the earliest live bookmark (or
// before the current position, if there is none): nothing before that
// point can ever be rewound to, so its backing storage can be reclaimed.
func (s *State[T]) compact() {
	if !s.pooled {
		return // aliasing a WholeSlice; nothing to discard
	}
	keepFrom := s.pos
	if len(s.bookmarks) > 0 {
		keepFrom = s.bookmarks[0].offset
	}
	drop := keepFrom - s.base
	if drop <= 0 {
		return
	}
	if drop > s.filled {
		drop = s.filled
	}
	if drop == 0 {
		return
	}
	// Tokens being dropped are gone for good: fold their contribution into
	// baseDelta now, while they're still in the buffer to read.
	if d := s.cfg.posDelta(); d != nil {
		for _, t := range s.buf[:drop] {
			s.baseDelta = s.baseDelta.Combine(d(t))
		}
	}
	copy(s.buf, s.buf[drop:s.filled])
	s.filled -= drop
	s.base += drop
	s.buf = s.buf[:s.filled]
}

// grow ensures buf has capacity for at least need tokens, pulling a larger
// array from the pool and returning the old one.
func (s *State[T]) grow(need int) {
	if !s.pooled {
		return // WholeSlice sources never need to grow: everything is already present
	}
	if cap(s.buf) >= need {
		return
	}
	next := s.cfg.tokenPool().Get(need)
	next = next[:s.filled]
	copy(next, s.buf[:s.filled])
	s.cfg.tokenPool().Put(s.buf)
	s.buf = next
}

// ensure pulls tokens from src until at least n tokens are available
// starting at the current position, or the source is exhausted.
func (s *State[T]) ensure(n int) error {
	if s.ioErr != nil {
		return s.ioErr
	}
	s.compact()
	for !s.eof && s.relPos()+n > s.filled {
		if s.filled == cap(s.buf) {
			s.grow(s.relPos() + n)
		}
		c, err := s.src.Read(s.buf[s.filled:cap(s.buf)])
		s.filled += c
		s.buf = s.buf[:s.filled]
		if err != nil {
			if err == io.EOF {
				s.eof = true
			} else {
				s.ioErr = err
				return err
			}
		} else if c == 0 {
			s.eof = true
		}
	}
	return nil
}

// HasCurrent reports whether a token is available at the current offset.
func (s *State[T]) HasCurrent() bool {
	s.ensure(1)
	return s.relPos() < s.filled
}

// Current returns the token at the current offset. It is undefined
// (panics) to call Current when HasCurrent is false.
func (s *State[T]) Current() T {
	return s.buf[s.relPos()]
}

// Advance moves the current offset forward by n tokens (default 1),
// extending lookahead as needed. Advancing past the end of input is a
// no-op once the source is exhausted.
func (s *State[T]) Advance(n int) {
	s.ensure(n)
	avail := s.filled - s.relPos()
	if n > avail {
		n = avail
	}
	if n < 0 {
		n = 0
	}
	s.pos += n
}

// LookAhead returns a view of up to n tokens starting at the current
// offset, without advancing. The returned slice aliases the state's
// internal buffer and is only valid until the next mutating call.
func (s *State[T]) LookAhead(n int) []T {
	s.ensure(n)
	avail := s.filled - s.relPos()
	if n > avail {
		n = avail
	}
	if n < 0 {
		n = 0
	}
	return s.buf[s.relPos() : s.relPos()+n]
}

// Offset returns the current absolute token offset.
func (s *State[T]) Offset() int { return s.pos }

// Bookmark captures the current offset, pinning the buffer so a later
// Rewind can restore it.
func (s *State[T]) Bookmark() Bookmark {
	s.nextID++
	b := Bookmark{id: s.nextID, offset: s.pos}
	s.bookmarks = append(s.bookmarks, b)
	return b
}

// popBookmark removes b and every bookmark nested inside it from the
// stack. It panics if b is not on the stack, which indicates a bookmark
// was rewound or discarded twice -- a combinator-usage bug.
func (s *State[T]) popBookmark(b Bookmark) {
	for i := len(s.bookmarks) - 1; i >= 0; i-- {
		if s.bookmarks[i].id == b.id {
			s.bookmarks = s.bookmarks[:i]
			return
		}
	}
	panic("parsec: bookmark rewound or discarded more than once")
}

// Rewind restores the current offset to b's offset and discards b (and any
// bookmark created after it).
func (s *State[T]) Rewind(b Bookmark) {
	s.popBookmark(b)
	s.pos = b.offset
}

// DiscardBookmark releases b's hold on the buffer without moving the
// current offset.
func (s *State[T]) DiscardBookmark(b Bookmark) {
	s.popBookmark(b)
}

// ComputeSourcePosDelta returns the cumulative SourcePosDelta from the
// start of input to the current offset, using the configured [TokenDelta].
// It is amortised O(1) for the common case of monotonically advancing
// parses; a rewind to an earlier offset forces a rescan bounded by the
// live buffer window.
func (s *State[T]) ComputeSourcePosDelta() SourcePosDelta {
	d := s.cfg.posDelta()
	if d == nil {
		return SourcePosDelta{}
	}
	if s.posCacheValid && s.posCacheOffset == s.pos {
		return s.posCacheDelta
	}
	var start int
	var acc SourcePosDelta
	if s.posCacheValid && s.posCacheOffset <= s.pos && s.posCacheOffset >= s.base {
		start, acc = s.posCacheOffset, s.posCacheDelta
	} else {
		start, acc = s.base, s.baseDelta
	}
	for off := start; off < s.pos; off++ {
		acc = acc.Combine(d(s.buf[off-s.base]))
	}
	s.posCacheOffset, s.posCacheDelta, s.posCacheValid = s.pos, acc, true
	return acc
}

// CurrentLocation returns the Location (offset, line, column) of the
// current position, if position tracking is configured.
func (s *State[T]) CurrentLocation() (Location, bool) {
	if s.cfg.posDelta() == nil {
		return Location{}, false
	}
	return locationFromOrigin(s.pos, s.ComputeSourcePosDelta()), true
}

// SetError writes the error slot. offset must be >= the offset at which
// the failing primitive was invoked; SetError does not enforce this --
// combinators that call it are responsible for passing the
// correct offset (almost always s.Offset() at the point of failure).
func (s *State[T]) SetError(offset int, unexpected T, hasUnexpected, eof bool, message string) {
	s.err = &InternalError[T]{
		Offset: offset, Unexpected: unexpected, HasUnexpected: hasUnexpected,
		EOF: eof, Message: message,
	}
}

// GetError returns the current contents of the error slot, or nil if
// nothing has failed yet.
func (s *State[T]) GetError() *InternalError[T] { return s.err }

// BuildError finalises a [ParseError] from the state's error slot and an
// accumulated expected set.
func (s *State[T]) BuildError(exp *Expecteds[T]) *ParseError[T] {
	ie := s.err
	pe := &ParseError[T]{render: s.cfg.renderFuncs()}
	if ie != nil {
		pe.Offset = ie.Offset
		pe.Unexpected = ie.Unexpected
		pe.HasUnexpected = ie.HasUnexpected
		pe.EOF = ie.EOF
		pe.Message = ie.Message
	}
	pe.Expected = exp.snapshot()
	if s.cfg.posDelta() != nil {
		savedPos := s.pos
		s.pos = pe.Offset
		s.ensure(0)
		if s.pos >= s.base {
			pe.Pos = locationFromOrigin(pe.Offset, s.ComputeSourcePosDelta())
			pe.HasPos = true
		}
		s.pos = savedPos
		s.posCacheValid = false
	}
	return pe
}
