// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
)

// titleRules parameterize the title casing walk shared by the locales.
type titleRules struct {
	caser *casing.Caser

	// reserved reports if a folded word is a function word that is lower
	// cased when it is not the first (or last) word.
	reserved func(folded string) bool

	// lastWord capitalizes the last word even when it is reserved.
	lastWord bool
}

// titlecaseWords title cases the words of ch in place and returns the
// rendered chunk. The first word is always capitalized, reserved interior
// words are lowered and overrides replace any word they match.
func titlecaseWords(ch chunk.Chunk, r titleRules, overrides overrideTable) string {
	words := ch.Words()
	last := len(words) - 1
	for n, i := range words {
		w := ch[i].Text
		if o, ok := resolveOverride(r.caser, overrides, w); ok {
			ch[i].Text = o
			continue
		}
		switch {
		case n == 0, r.lastWord && n == last:
			ch[i].Text = r.caser.Title(w)
		case r.reserved(r.caser.Fold(w)):
			ch[i].Text = r.caser.Lower(w)
		default:
			ch[i].Text = r.caser.Title(w)
		}
	}
	return ch.String()
}

// mapWords replaces every word of ch with fn(word).
func mapWords(ch chunk.Chunk, fn func(string) string) string {
	for i := range ch {
		if ch[i].Kind == chunk.Word {
			ch[i].Text = fn(ch[i].Text)
		}
	}
	return ch.String()
}

func lowercaseChunk(ch chunk.Chunk, c *casing.Caser) string {
	return mapWords(ch, c.Lower)
}

func uppercaseChunk(ch chunk.Chunk, c *casing.Caser) string {
	return mapWords(ch, c.Upper)
}

// sentencecaseChunk title cases the first word and lowers the rest.
func sentencecaseChunk(ch chunk.Chunk, c *casing.Caser) string {
	first := true
	return mapWords(ch, func(w string) string {
		if first {
			first = false
			return c.Title(w)
		}
		return c.Lower(w)
	})
}
