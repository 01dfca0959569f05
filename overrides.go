// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"strings"

	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
)

// overrideTable maps the folded form of each override word to the word
// as supplied by the caller.
type overrideTable map[string]string

func newOverrideTable(c *casing.Caser, words []string) overrideTable {
	if len(words) == 0 {
		return nil
	}
	t := make(overrideTable, len(words))
	for _, w := range words {
		k := c.Fold(w)
		if _, dup := t[k]; !dup {
			t[k] = w
		}
	}
	return t
}

// resolveOverride returns the override matching word, ignoring case.
func resolveOverride(c *casing.Caser, t overrideTable, word string) (string, bool) {
	if len(t) == 0 {
		return "", false
	}
	w, ok := t[c.Fold(word)]
	return w, ok
}

// ParseOverrides parses a comma separated list of override words, the
// format used to pass overrides through string-only interfaces. The
// strings "", "none" and "default" mean no overrides.
//
// Whitespace around each word is ignored. Empty words and words containing
// whitespace, which could never match a single word, are an error.
func ParseOverrides(s string) ([]string, error) {
	switch foldIdent(s) {
	case "", "none", "default":
		return nil, nil
	}
	parts := strings.Split(s, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		w := strings.TrimSpace(p)
		if w == "" || strings.IndexFunc(w, chunk.IsSpace) != -1 {
			return nil, &ParseError{Field: FieldOverrides, Input: s}
		}
		words = append(words, w)
	}
	return words, nil
}
