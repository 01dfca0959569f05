// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package casing implements the language specific Unicode case mappings
// used to re-case individual words.
//
// ASCII input takes a fast path that never allocates for strings that are
// already in the target case. Everything else is handled by
// [golang.org/x/text/cases], which implements the full (multi-rune) case
// mappings and the special rules of Turkish, Azeri and Lithuanian.
package casing

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	turkishBase, _     = language.Turkish.Base()
	azerbaijaniBase, _ = language.Azerbaijani.Base()
)

// A Caser maps the case of words according to the rules of a single
// language. The zero value is not usable, use New.
//
// A Caser is stateful and must not be shared between goroutines.
type Caser struct {
	tag    language.Tag
	turkic bool // dotted/dotless I
	lower  cases.Caser
	upper  cases.Caser
	title  cases.Caser
}

// New returns a Caser for the language tag.
func New(tag language.Tag) *Caser {
	base, _ := tag.Base()
	return &Caser{
		tag:    tag,
		turkic: base == turkishBase || base == azerbaijaniBase,
		lower:  cases.Lower(tag),
		upper:  cases.Upper(tag),
		title:  cases.Title(tag),
	}
}

// Tag returns the language tag of c.
func (c *Caser) Tag() language.Tag { return c.tag }

// Turkic reports if c uses the Turkish/Azeri mappings of I and i.
func (c *Caser) Turkic() bool { return c.turkic }

// Lower returns s with all letters mapped to lower case.
func (c *Caser) Lower(s string) string {
	if indexNonASCII(s) == -1 && !(c.turkic && strings.IndexByte(s, 'I') != -1) {
		return lowerASCII(s)
	}
	return c.lower.String(s)
}

// Upper returns s with all letters mapped to upper case.
func (c *Caser) Upper(s string) string {
	if indexNonASCII(s) == -1 && !(c.turkic && strings.IndexByte(s, 'i') != -1) {
		return upperASCII(s)
	}
	return c.upper.String(s)
}

// Fold returns the form of s used for case-insensitive comparisons of
// words in c's language.
func (c *Caser) Fold(s string) string { return c.Lower(s) }

// Title maps the first grapheme cluster of s to title case and the
// remainder to lower case.
func (c *Caser) Title(s string) string {
	if s == "" {
		return s
	}
	if s[0] < 0x80 && (len(s) == 1 || s[1] < 0x80) && !(c.turkic && s[0] == 'i') {
		return string(toUpper(s[0])) + c.Lower(s[1:])
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return c.title.String(first) + c.Lower(rest)
}

// Capitalize maps the grapheme cluster containing the first letter of s
// to title case. Any leading punctuation and the rest of s are left as is.
func (c *Caser) Capitalize(s string) string {
	i := strings.IndexFunc(s, unicode.IsLetter)
	if i < 0 {
		return s
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	return s[:i] + c.title.String(first) + rest
}
