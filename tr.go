// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
	"github.com/charlievieth/decasify/internal/reserved"
)

// Turkish titles follow the Türk Dil Kurumu: conjunctions and the question
// particle stay lower case. All case mappings use the Turkish rules for
// the dotted and dotless I.
func titlecaseTurkish(ch chunk.Chunk, style StyleGuide, overrides []string) (string, error) {
	if style != LanguageDefault && style != TurkishLanguageInstitute {
		return "", &StyleError{Locale: Turkish, Style: style}
	}
	c := casing.New(Turkish.Tag())
	return titlecaseWords(ch, titleRules{
		caser:    c,
		reserved: reserved.Turkish,
	}, newOverrideTable(c, overrides)), nil
}
