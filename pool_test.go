// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package parsec_test

import (
	"testing"

	"github.com/creachadair-labs/parsec"
)

func TestSyncArrayPoolReusesCapacity(t *testing.T) {
	pool := parsec.NewSyncArrayPool[int]()
	s := pool.Get(16)
	if len(s) != 0 {
		t.Fatalf("Get returned len %d, want 0", len(s))
	}
	if cap(s) < 16 {
		t.Fatalf("Get returned cap %d, want >= 16", cap(s))
	}
	s = append(s, 1, 2, 3)
	pool.Put(s)

	s2 := pool.Get(4)
	if len(s2) != 0 {
		t.Errorf("reused slice should start at len 0, got %d", len(s2))
	}
}

func TestSyncArrayPoolGrowsBeyondPooledCapacity(t *testing.T) {
	pool := parsec.NewSyncArrayPool[byte]()
	s := pool.Get(8)
	pool.Put(s)

	big := pool.Get(1000)
	if cap(big) < 1000 {
		t.Errorf("Get(1000) returned cap %d, want >= 1000", cap(big))
	}
}
