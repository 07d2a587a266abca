// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec

import "sync"

// ArrayPoolProvider supplies reusable backing arrays of E, so that a State
// and its expected-set accumulator can borrow a buffer for the lifetime of
// one parse and return it on disposal instead of allocating fresh on every
// call to [Run]. jtree has no pooling of its own to adapt (it allocates
// scanner buffers directly); this is a stdlib-only concern because no
// third-party pooling library appears
// anywhere in the retrieved corpus, so [sync.Pool] is the idiomatic choice.
type ArrayPoolProvider[E any] interface {
	// Get returns a slice of E with length 0 and capacity >= minCap.
	Get(minCap int) []E
	// Put returns s to the pool for reuse. Callers must not use s again.
	Put(s []E)
}

// syncArrayPool is the default ArrayPoolProvider, backed by a sync.Pool.
type syncArrayPool[E any] struct {
	pool sync.Pool
}

// NewSyncArrayPool returns an ArrayPoolProvider backed by [sync.Pool]. It is
// safe for concurrent use by independent parses, as any pool provider must
// be: a State is never shared across concurrent parses, but its pool is.
func NewSyncArrayPool[E any]() ArrayPoolProvider[E] {
	return &syncArrayPool[E]{
		pool: sync.Pool{New: func() any { return make([]E, 0, 64) }},
	}
}

func (p *syncArrayPool[E]) Get(minCap int) []E {
	s := p.pool.Get().([]E)
	if cap(s) < minCap {
		return make([]E, 0, minCap)
	}
	return s[:0]
}

func (p *syncArrayPool[E]) Put(s []E) {
	p.pool.Put(s[:0]) //nolint:staticcheck // deliberately pooling a slice header
}
