// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"github.com/charlievieth/decasify/internal/casing"
	"github.com/charlievieth/decasify/internal/chunk"
	"github.com/charlievieth/decasify/internal/reserved"
)

// Options is the complete configuration of a conversion. The zero value
// converts English text to title case using the language default style.
type Options struct {
	Case      Case
	Locale    Locale
	Style     StyleGuide
	Overrides []string // words whose casing is preserved verbatim
}

// Convert converts s according to o, see ToCase.
func (o Options) Convert(s string) (string, error) {
	return ToCase(s, o.Case, o.Locale, o.Style, o.Overrides...)
}

// Validate returns an error if o names an unknown Case, Locale or
// StyleGuide or a StyleGuide that o.Locale does not support.
func (o Options) Validate() error {
	if !o.Case.Valid() {
		return &ParseError{Field: FieldCase, Input: o.Case.String()}
	}
	return validate(o.Locale, o.Style)
}

func validateLocale(l Locale) error {
	if !l.Valid() {
		return &ParseError{Field: FieldLocale, Input: l.String()}
	}
	return nil
}

func validate(l Locale, g StyleGuide) error {
	if err := validateLocale(l); err != nil {
		return err
	}
	if !g.Valid() {
		return &ParseError{Field: FieldStyleGuide, Input: g.String()}
	}
	if !l.Supports(g) {
		return &StyleError{Locale: l, Style: g}
	}
	return nil
}

// ToCase converts s to the target case c following the rules of locale.
// The style and overrides only affect title casing, but style must be
// supported by locale for every case.
func ToCase(s string, c Case, locale Locale, style StyleGuide, overrides ...string) (string, error) {
	if err := validate(locale, style); err != nil {
		return "", err
	}
	switch c {
	case Title:
		return titlecase(s, locale, style, overrides)
	case Lower:
		return lowercaseChunk(chunk.Split(s), casing.New(locale.Tag())), nil
	case Sentence:
		return sentencecaseChunk(chunk.Split(s), casing.New(locale.Tag())), nil
	case Upper:
		return uppercaseChunk(chunk.Split(s), casing.New(locale.Tag())), nil
	}
	return "", &ParseError{Field: FieldCase, Input: c.String()}
}

// Titlecase converts s to title case following the rules of locale and
// style. The first word is always capitalized. Words matching one of the
// overrides, ignoring case, are replaced by the override verbatim.
//
// Whitespace is preserved exactly.
func Titlecase(s string, locale Locale, style StyleGuide, overrides ...string) (string, error) {
	if err := validate(locale, style); err != nil {
		return "", err
	}
	return titlecase(s, locale, style, overrides)
}

func titlecase(s string, locale Locale, style StyleGuide, overrides []string) (string, error) {
	ch := chunk.Split(s)
	switch locale {
	case English:
		return titlecaseEnglish(ch, style, overrides)
	case Turkish:
		return titlecaseTurkish(ch, style, overrides)
	case Spanish:
		return titlecaseSpanish(ch, style, overrides)
	case French:
		return titlecaseFrench(ch, style, overrides)
	}
	return "", validateLocale(locale)
}

// Lowercase converts every word of s to lower case using the case
// mappings of locale.
func Lowercase(s string, locale Locale) (string, error) {
	if err := validateLocale(locale); err != nil {
		return "", err
	}
	return lowercaseChunk(chunk.Split(s), casing.New(locale.Tag())), nil
}

// Uppercase converts every word of s to upper case using the case
// mappings of locale.
func Uppercase(s string, locale Locale) (string, error) {
	if err := validateLocale(locale); err != nil {
		return "", err
	}
	return uppercaseChunk(chunk.Split(s), casing.New(locale.Tag())), nil
}

// Sentencecase capitalizes the first word of s and lowers the rest using
// the case mappings of locale.
func Sentencecase(s string, locale Locale) (string, error) {
	if err := validateLocale(locale); err != nil {
		return "", err
	}
	return sentencecaseChunk(chunk.Split(s), casing.New(locale.Tag())), nil
}

// IsReserved reports if word is a function word that the title casing
// rules of locale and style leave in lower case when it is not the first
// word of a title.
func IsReserved(word string, locale Locale, style StyleGuide) (bool, error) {
	if err := validate(locale, style); err != nil {
		return false, err
	}
	w := casing.New(locale.Tag()).Fold(word)
	switch locale {
	case English:
		if style == ChicagoManualOfStyle || style == AssociatedPress {
			return reserved.English.Contains(w), nil
		}
		return reserved.Gruber.Contains(w), nil
	case Turkish:
		return reserved.Turkish(w), nil
	case Spanish:
		if style == FundeuRealAcademiaEspanola {
			return reserved.SpanishFundeu.Contains(w), nil
		}
		return reserved.Spanish.Contains(w), nil
	case French:
		return reserved.French.Contains(w), nil
	}
	return false, validateLocale(locale)
}
