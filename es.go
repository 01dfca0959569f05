// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
	"github.com/charlievieth/decasify/internal/reserved"
)

func titlecaseSpanish(ch chunk.Chunk, style StyleGuide, overrides []string) (string, error) {
	var list *reserved.List
	switch style {
	case LanguageDefault, RealAcademiaEspanola:
		list = reserved.Spanish
	case FundeuRealAcademiaEspanola:
		list = reserved.SpanishFundeu
	default:
		return "", &StyleError{Locale: Spanish, Style: style}
	}
	c := casing.New(Spanish.Tag())
	return titlecaseWords(ch, titleRules{
		caser:    c,
		reserved: list.Contains,
	}, newOverrideTable(c, overrides)), nil
}
