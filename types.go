// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// foldIdent folds a user supplied identifier for alias lookups.
func foldIdent(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// names returns the sorted keys of an alias table.
func names[T any](m map[string]T) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

////////////////////////////////////////////////////////////////////////////////
// Locale

// Locale selects the language rules used by the case functions.
type Locale int

const (
	English Locale = iota // default
	Turkish
	Spanish
	French
)

var localeNames = [...]string{
	English: "en",
	Turkish: "tr",
	Spanish: "es",
	French:  "fr",
}

var localeTags = [...]language.Tag{
	English: language.English,
	Turkish: language.Turkish,
	Spanish: language.Spanish,
	French:  language.French,
}

var localeAliases = map[string]Locale{
	"en":       English,
	"english":  English,
	"en_en":    English,
	"en_us":    English,
	"tr":       Turkish,
	"turkish":  Turkish,
	"tr_tr":    Turkish,
	"turkce":   Turkish,
	"türkçe":   Turkish,
	"es":       Spanish,
	"spanish":  Spanish,
	"es_es":    Spanish,
	"espanol":  Spanish,
	"español":  Spanish,
	"fr":       French,
	"french":   French,
	"fr_fr":    French,
	"francais": French,
	"français": French,
}

// ParseLocale returns the Locale named by s. The match is case-insensitive
// and accepts common aliases such as "english", "en_en" or "türkçe".
func ParseLocale(s string) (Locale, error) {
	if l, ok := localeAliases[foldIdent(s)]; ok {
		return l, nil
	}
	return English, &ParseError{Field: FieldLocale, Input: s}
}

// LocaleNames returns all of the identifiers accepted by ParseLocale.
func LocaleNames() []string { return names(localeAliases) }

// Valid reports if l is a known Locale.
func (l Locale) Valid() bool { return 0 <= l && int(l) < len(localeNames) }

// Tag returns the BCP 47 language tag of l.
func (l Locale) Tag() language.Tag {
	if l.Valid() {
		return localeTags[l]
	}
	return language.Und
}

func (l Locale) String() string {
	if l.Valid() {
		return localeNames[l]
	}
	return "Locale(" + strconv.Itoa(int(l)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (l Locale) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &ParseError{Field: FieldLocale, Input: l.String()}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Locale) UnmarshalText(text []byte) error { return l.Set(string(text)) }

// Set parses s into l, it allows a Locale to be used as a command line flag.
func (l *Locale) Set(s string) error {
	v, err := ParseLocale(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Type returns the name of the flag type.
func (*Locale) Type() string { return "locale" }

////////////////////////////////////////////////////////////////////////////////
// Case

// Case is the target case of a conversion.
type Case int

const (
	Title Case = iota // default
	Lower
	Sentence
	Upper
)

var caseNames = [...]string{
	Title:    "title",
	Lower:    "lower",
	Sentence: "sentence",
	Upper:    "upper",
}

var caseAliases = map[string]Case{
	"title":    Title,
	"lower":    Lower,
	"sentence": Sentence,
	"upper":    Upper,
}

// ParseCase returns the Case named by s. The match is case-insensitive and
// an optional "case" suffix is ignored ("titlecase", "UpperCase").
func ParseCase(s string) (Case, error) {
	if c, ok := caseAliases[strings.TrimSuffix(foldIdent(s), "case")]; ok {
		return c, nil
	}
	return Title, &ParseError{Field: FieldCase, Input: s}
}

// CaseNames returns the canonical names of all cases.
func CaseNames() []string { return names(caseAliases) }

// Valid reports if c is a known Case.
func (c Case) Valid() bool { return 0 <= c && int(c) < len(caseNames) }

func (c Case) String() string {
	if c.Valid() {
		return caseNames[c]
	}
	return "Case(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c Case) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &ParseError{Field: FieldCase, Input: c.String()}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Case) UnmarshalText(text []byte) error { return c.Set(string(text)) }

// Set parses s into c, it allows a Case to be used as a command line flag.
func (c *Case) Set(s string) error {
	v, err := ParseCase(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Type returns the name of the flag type.
func (*Case) Type() string { return "case" }

////////////////////////////////////////////////////////////////////////////////
// StyleGuide

// StyleGuide selects a variant of the title casing rules of a Locale.
// Each Locale supports only its own style guides and LanguageDefault.
type StyleGuide int

const (
	LanguageDefault            StyleGuide = iota // the Locale's preferred style
	AssociatedPress                              // en (not implemented, input is returned as is)
	ChicagoManualOfStyle                         // en
	DaringFireball                               // en, John Gruber's headline style
	TurkishLanguageInstitute                     // tr, Türk Dil Kurumu
	RealAcademiaEspanola                         // es
	FundeuRealAcademiaEspanola                   // es
)

var styleNames = [...]string{
	LanguageDefault:            "default",
	AssociatedPress:            "ap",
	ChicagoManualOfStyle:       "cmos",
	DaringFireball:             "gruber",
	TurkishLanguageInstitute:   "tdk",
	RealAcademiaEspanola:       "rae",
	FundeuRealAcademiaEspanola: "fundeu",
}

var styleAliases = map[string]StyleGuide{
	"":                           LanguageDefault,
	"default":                    LanguageDefault,
	"languagedefault":            LanguageDefault,
	"language":                   LanguageDefault,
	"none":                       LanguageDefault,
	"ap":                         AssociatedPress,
	"associatedpress":            AssociatedPress,
	"cmos":                       ChicagoManualOfStyle,
	"chicago":                    ChicagoManualOfStyle,
	"chicagomanualofstyle":       ChicagoManualOfStyle,
	"gruber":                     DaringFireball,
	"fireball":                   DaringFireball,
	"daringfireball":             DaringFireball,
	"tdk":                        TurkishLanguageInstitute,
	"turkishlanguageinstitute":   TurkishLanguageInstitute,
	"rae":                        RealAcademiaEspanola,
	"realacademiaespanola":       RealAcademiaEspanola,
	"fundeu":                     FundeuRealAcademiaEspanola,
	"fundeurealacademiaespanola": FundeuRealAcademiaEspanola,
}

// ParseStyleGuide returns the StyleGuide named by s. The match is
// case-insensitive, the empty string selects LanguageDefault.
func ParseStyleGuide(s string) (StyleGuide, error) {
	if g, ok := styleAliases[foldIdent(s)]; ok {
		return g, nil
	}
	return LanguageDefault, &ParseError{Field: FieldStyleGuide, Input: s}
}

// StyleGuideNames returns all of the non-empty identifiers accepted by
// ParseStyleGuide.
func StyleGuideNames() []string {
	all := names(styleAliases)
	if len(all) > 0 && all[0] == "" {
		all = all[1:]
	}
	return all
}

// Valid reports if g is a known StyleGuide.
func (g StyleGuide) Valid() bool { return 0 <= g && int(g) < len(styleNames) }

func (g StyleGuide) String() string {
	if g.Valid() {
		return styleNames[g]
	}
	return "StyleGuide(" + strconv.Itoa(int(g)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (g StyleGuide) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, &ParseError{Field: FieldStyleGuide, Input: g.String()}
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *StyleGuide) UnmarshalText(text []byte) error { return g.Set(string(text)) }

// Set parses s into g, it allows a StyleGuide to be used as a command line
// flag.
func (g *StyleGuide) Set(s string) error {
	v, err := ParseStyleGuide(s)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Type returns the name of the flag type.
func (*StyleGuide) Type() string { return "style" }

// Supports reports if the title casing engine of l implements style g.
func (l Locale) Supports(g StyleGuide) bool {
	if g == LanguageDefault {
		return l.Valid()
	}
	switch l {
	case English:
		return g == AssociatedPress || g == ChicagoManualOfStyle || g == DaringFireball
	case Turkish:
		return g == TurkishLanguageInstitute
	case Spanish:
		return g == RealAcademiaEspanola || g == FundeuRealAcademiaEspanola
	}
	return false
}
