// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
	"github.com/charlievieth/decasify/internal/reserved"
)

// titlecaseGruber implements John Gruber's headline style word by word,
// leaving the separators of ch untouched.
//
// Unlike the Chicago style the remainder of each word is not lowered, so
// words that are deliberately cased ("iPhone", "UPON", "Q&A") survive. The
// exception is input that is entirely upper case, which is lowered first.
// Small words are lowered except at the start of the title or of a clause.
// There is no special handling of the last word.
func titlecaseGruber(ch chunk.Chunk, c *casing.Caser, overrides overrideTable) string {
	shouting := isShouting(ch)
	capNext := true
	for _, i := range ch.Words() {
		w := ch[i].Text
		force := capNext
		capNext = endsClause(w)
		if o, ok := resolveOverride(c, overrides, w); ok {
			ch[i].Text = o
			continue
		}
		if shouting {
			w = c.Lower(w)
		}
		ch[i].Text = gruberWord(c, w, force)
	}
	return ch.String()
}

func gruberWord(c *casing.Caser, w string, force bool) string {
	if !force && isSmallWord(c, w) {
		return c.Lower(w)
	}
	if hasInternalCaps(w) || hasInternalDot(w) || strings.ContainsAny(w, "/@") {
		return w
	}
	if !strings.Contains(w, "-") {
		return c.Capitalize(w)
	}
	parts := strings.Split(w, "-")
	for i, p := range parts {
		if i > 0 && isSmallWord(c, p) {
			parts[i] = c.Lower(p)
		} else {
			parts[i] = c.Capitalize(p)
		}
	}
	return strings.Join(parts, "-")
}

func isSmallWord(c *casing.Caser, w string) bool {
	w = strings.TrimFunc(w, unicode.IsPunct)
	return w != "" && reserved.Gruber.Contains(c.Fold(w))
}

// endsClause reports if the word following w starts a new clause.
func endsClause(w string) bool {
	r, _ := utf8.DecodeLastRuneInString(w)
	return r == ':' || r == '?' || r == '!'
}

// hasInternalCaps reports if w has an upper case letter after its first
// letter.
func hasInternalCaps(w string) bool {
	seen := false
	for _, r := range w {
		if seen && unicode.IsUpper(r) {
			return true
		}
		if unicode.IsLetter(r) {
			seen = true
		}
	}
	return false
}

// hasInternalDot reports if w contains a dot followed by a letter or
// digit, as in domain names ("example.com").
func hasInternalDot(w string) bool {
	for {
		i := strings.IndexByte(w, '.')
		if i < 0 {
			return false
		}
		w = w[i+1:]
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
}

// isShouting reports if the words of ch contain upper case letters but no
// lower case letters.
func isShouting(ch chunk.Chunk) bool {
	upper := false
	for _, s := range ch {
		if s.Kind != chunk.Word {
			continue
		}
		for _, r := range s.Text {
			if unicode.IsLower(r) {
				return false
			}
			if unicode.IsUpper(r) {
				upper = true
			}
		}
	}
	return upper
}
