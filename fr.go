// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
	"github.com/charlievieth/decasify/internal/reserved"
)

// Each part of a hyphenated French compound ("arc-en-ciel") is cased as a
// word of its own.
func titlecaseFrench(ch chunk.Chunk, style StyleGuide, overrides []string) (string, error) {
	if style != LanguageDefault {
		return "", &StyleError{Locale: French, Style: style}
	}
	c := casing.New(French.Tag())
	return titlecaseWords(ch.SplitWords("-"), titleRules{
		caser:    c,
		reserved: reserved.French.Contains,
		lastWord: true,
	}, newOverrideTable(c, overrides)), nil
}
