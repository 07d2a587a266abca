// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package input

import (
	"bufio"
	"io"

	"github.com/creachadair-labs/parsec"
)

// Bytes adapts r as a token source of raw bytes. Its Read signature
// already matches [parsec.Source][byte] exactly, so this only needs to
// ensure r is buffered -- the same check jtree's scanner.go performs
// before wrapping a reader, to avoid double-buffering a reader that is
// already a *bufio.Reader.
func Bytes(r io.Reader) parsec.Source[byte] {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// runeSource adapts a buffered reader as a token source of decoded runes,
// one [bufio.Reader.ReadRune] call per token.
type runeSource struct {
	r *bufio.Reader
}

// Runes adapts r as a token source of decoded Unicode code points.
// Malformed UTF-8 yields the replacement rune, matching bufio.ReadRune's
// own behavior, and is not itself treated as an I/O error.
func Runes(r io.Reader) parsec.Source[rune] {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &runeSource{r: br}
}

func (s *runeSource) Read(buf []rune) (int, error) {
	n := 0
	for n < len(buf) {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, err
		}
		buf[n] = ch
		n++
	}
	return n, nil
}
