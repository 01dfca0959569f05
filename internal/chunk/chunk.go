// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package chunk splits text into alternating runs of whitespace and
// non-whitespace so that words can be re-cased without disturbing the
// surrounding trivia.
package chunk

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind identifies the type of a Segment.
type Kind uint8

const (
	Separator Kind = iota // run of whitespace (or a word separator, see SplitWords)
	Word                  // run of non-whitespace
)

func (k Kind) String() string {
	switch k {
	case Separator:
		return "Separator"
	case Word:
		return "Word"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Segment is a single Word or Separator of a Chunk. The Text of a
// Separator is stored verbatim.
type Segment struct {
	Kind Kind
	Text string
}

// A Chunk is a tokenized string. Concatenating the Text of every Segment
// yields the original input.
type Chunk []Segment

// IsSpace reports if r has the Unicode White_Space property.
func IsSpace(r rune) bool {
	if r < utf8.RuneSelf {
		switch r {
		case '\t', '\n', '\v', '\f', '\r', ' ':
			return true
		}
		return false
	}
	return unicode.Is(unicode.White_Space, r)
}

// Split splits s into maximal runs of Unicode whitespace (Separator) and
// non-whitespace (Word). Invalid UTF-8 is treated as word content.
func Split(s string) Chunk {
	if len(s) == 0 {
		return nil
	}
	var segs Chunk
	start := 0
	kind := Word
	for i, r := range s {
		k := Word
		if IsSpace(r) {
			k = Separator
		}
		if i == 0 {
			kind = k
			continue
		}
		if k != kind {
			segs = append(segs, Segment{Kind: kind, Text: s[start:i]})
			start = i
			kind = k
		}
	}
	return append(segs, Segment{Kind: kind, Text: s[start:]})
}

// String returns the concatenated text of all segments.
func (c Chunk) String() string {
	switch len(c) {
	case 0:
		return ""
	case 1:
		return c[0].Text
	}
	n := 0
	for _, s := range c {
		n += len(s.Text)
	}
	var b strings.Builder
	b.Grow(n)
	for _, s := range c {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Clone returns a copy of c that may be modified without changing c.
func (c Chunk) Clone() Chunk {
	if c == nil {
		return nil
	}
	return append(Chunk(nil), c...)
}

// Words returns the indexes of the Word segments of c in order.
func (c Chunk) Words() []int {
	idx := make([]int, 0, (len(c)+1)/2)
	for i, s := range c {
		if s.Kind == Word {
			idx = append(idx, i)
		}
	}
	return idx
}

// SplitWords splits each Word of c around sep. The separator itself is
// emitted as a Separator segment and empty words are dropped, so the
// result still renders to the same string as c.
func (c Chunk) SplitWords(sep string) Chunk {
	if sep == "" {
		return c.Clone()
	}
	out := make(Chunk, 0, len(c))
	for _, s := range c {
		if s.Kind != Word || !strings.Contains(s.Text, sep) {
			out = append(out, s)
			continue
		}
		text := s.Text
		for {
			i := strings.Index(text, sep)
			if i < 0 {
				break
			}
			if i > 0 {
				out = append(out, Segment{Kind: Word, Text: text[:i]})
			}
			out = append(out, Segment{Kind: Separator, Text: sep})
			text = text[i+len(sep):]
		}
		if text != "" {
			out = append(out, Segment{Kind: Word, Text: text})
		}
	}
	return out
}
