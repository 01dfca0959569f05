// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"github.com/apex/log"

	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
	"github.com/charlievieth/decasify/internal/reserved"
)

func titlecaseEnglish(ch chunk.Chunk, style StyleGuide, overrides []string) (string, error) {
	c := casing.New(English.Tag())
	table := newOverrideTable(c, overrides)
	switch style {
	case LanguageDefault, DaringFireball:
		return titlecaseGruber(ch, c, table), nil
	case ChicagoManualOfStyle:
		return titlecaseWords(ch, titleRules{
			caser:    c,
			reserved: reserved.English.Contains,
			lastWord: true,
		}, table), nil
	case AssociatedPress:
		return titlecaseAP(ch), nil
	}
	return "", &StyleError{Locale: English, Style: style}
}

// TODO: implement the Associated Press capitalization rules.
func titlecaseAP(ch chunk.Chunk) string {
	getLogger().WithFields(log.Fields{
		"locale": English,
		"style":  AssociatedPress,
	}).Warn("AP style guide not implemented, string returned as-is")
	return ch.String()
}
