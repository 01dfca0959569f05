// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"strings"
	"sync"
	"testing"
	"unicode"

	"github.com/charlievieth/decasify/internal/chunk"
	"github.com/charlievieth/decasify/internal/test"
)

func convert(s, c, locale, style string, overrides []string) (string, error) {
	cc, err := ParseCase(c)
	if err != nil {
		return "", err
	}
	l, err := ParseLocale(locale)
	if err != nil {
		return "", err
	}
	g, err := ParseStyleGuide(style)
	if err != nil {
		return "", err
	}
	return ToCase(s, cc, l, g, overrides...)
}

func TestTitlecase(t *testing.T)    { test.Title(t, convert) }
func TestLowercase(t *testing.T)    { test.Lower(t, convert) }
func TestUppercase(t *testing.T)    { test.Upper(t, convert) }
func TestSentencecase(t *testing.T) { test.Sentence(t, convert) }
func TestInvalid(t *testing.T)      { test.Invalid(t, convert) }

// The case specific functions must agree with ToCase.
func TestCaseFuncs(t *testing.T) {
	for _, tt := range test.AllTests() {
		c, _ := ParseCase(tt.Case)
		l, _ := ParseLocale(tt.Locale)
		g, _ := ParseStyleGuide(tt.Style)
		var got string
		var err error
		switch c {
		case Title:
			got, err = Titlecase(tt.In, l, g, tt.Overrides...)
		case Lower:
			got, err = Lowercase(tt.In, l)
		case Upper:
			got, err = Uppercase(tt.In, l)
		case Sentence:
			got, err = Sentencecase(tt.In, l)
		}
		if err != nil {
			t.Errorf("%s(%q): unexpected error: %v", c, tt.In, err)
			continue
		}
		if got != tt.Out {
			t.Errorf("%s(%q) = %q; want: %q", c, tt.In, got, tt.Out)
		}
	}
}

func TestOptionsConvert(t *testing.T) {
	var o Options
	got, err := o.Convert("once upon a time")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Once upon a Time"; got == want {
		t.Errorf("Options{}.Convert() = %q; should not use the Chicago style", got)
	}
	if want := "Once Upon a Time"; got != want {
		t.Errorf("Options{}.Convert() = %q; want: %q", got, want)
	}

	o = Options{Case: Upper, Locale: Turkish}
	if got, _ := o.Convert("ilk"); got != "İLK" {
		t.Errorf("%+v.Convert(%q) = %q; want: %q", o, "ilk", got, "İLK")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		opts Options
		ok   bool
	}{
		{Options{}, true},
		{Options{Locale: Spanish, Style: FundeuRealAcademiaEspanola}, true},
		{Options{Locale: French, Style: LanguageDefault}, true},
		{Options{Case: Case(-1)}, false},
		{Options{Case: Upper, Locale: Locale(42)}, false},
		{Options{Style: StyleGuide(42)}, false},
		{Options{Locale: Turkish, Style: DaringFireball}, false},
		{Options{Locale: French, Style: RealAcademiaEspanola}, false},
	}
	for _, test := range tests {
		err := test.opts.Validate()
		if ok := err == nil; ok != test.ok {
			t.Errorf("%+v.Validate() = %v; want ok: %t", test.opts, err, test.ok)
		}
	}
}

// Every word of a title is title cased except for the reserved words of
// the locale.
func TestTitlecaseAllSupported(t *testing.T) {
	locales := []Locale{English, Turkish, Spanish, French}
	styles := []StyleGuide{
		LanguageDefault,
		ChicagoManualOfStyle,
		DaringFireball,
		TurkishLanguageInstitute,
		RealAcademiaEspanola,
		FundeuRealAcademiaEspanola,
	}
	const in = "the quick brown fox jumps over the lazy dog"
	for _, l := range locales {
		for _, g := range styles {
			got, err := Titlecase(in, l, g)
			if !l.Supports(g) {
				if err == nil {
					t.Errorf("Titlecase(%q, %s, %s) = %q; want error", in, l, g, got)
				}
				continue
			}
			if err != nil {
				t.Errorf("Titlecase(%q, %s, %s): %v", in, l, g, err)
				continue
			}
			fields := strings.Fields(got)
			if r := []rune(fields[0])[0]; !unicode.IsUpper(r) {
				t.Errorf("Titlecase(%q, %s, %s) = %q: first word is not capitalized", in, l, g, got)
			}
			for _, w := range fields {
				r := []rune(w)[0]
				reserved, err := IsReserved(w, l, g)
				if err != nil {
					t.Fatal(err)
				}
				if !reserved && !unicode.IsUpper(r) {
					t.Errorf("Titlecase(%q, %s, %s) = %q: word %q is not capitalized",
						in, l, g, got, w)
				}
			}
		}
	}
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		word   string
		locale Locale
		style  StyleGuide
		want   bool
	}{
		{"the", English, LanguageDefault, true},
		{"THE", English, LanguageDefault, true},
		{"upon", English, LanguageDefault, false},
		{"upon", English, ChicagoManualOfStyle, true},
		{"Upon", English, ChicagoManualOfStyle, true},
		{"fox", English, ChicagoManualOfStyle, false},
		{"ve", Turkish, LanguageDefault, true},
		{"MISIN", Turkish, TurkishLanguageInstitute, true},
		{"dualarımızda", Turkish, LanguageDefault, false},
		{"de", Spanish, LanguageDefault, true},
		{"su", Spanish, RealAcademiaEspanola, false},
		{"su", Spanish, FundeuRealAcademiaEspanola, true},
		{"et", French, LanguageDefault, true},
		{"ciel", French, LanguageDefault, false},
	}
	for _, test := range tests {
		got, err := IsReserved(test.word, test.locale, test.style)
		if err != nil {
			t.Errorf("IsReserved(%q, %s, %s): %v", test.word, test.locale, test.style, err)
			continue
		}
		if got != test.want {
			t.Errorf("IsReserved(%q, %s, %s) = %t; want: %t",
				test.word, test.locale, test.style, got, test.want)
		}
	}
	if _, err := IsReserved("ve", Turkish, ChicagoManualOfStyle); err == nil {
		t.Error("IsReserved: expected an error for an unsupported style")
	}
}

// Turkish is the only locale that maps i and I to the dotted and dotless
// forms.
func TestDottedI(t *testing.T) {
	tests := []struct {
		locale Locale
		upper  string
		lower  string
	}{
		{English, "ILIK", "ilik"},
		{Spanish, "ILIK", "ilik"},
		{French, "ILIK", "ilik"},
		{Turkish, "ILIK", "ılık"},
		{Turkish, "İLİK", "ilik"},
	}
	for _, test := range tests {
		if got, _ := Lowercase(test.upper, test.locale); got != test.lower {
			t.Errorf("Lowercase(%q, %s) = %q; want: %q", test.upper, test.locale, got, test.lower)
		}
		if got, _ := Uppercase(test.lower, test.locale); got != test.upper {
			t.Errorf("Uppercase(%q, %s) = %q; want: %q", test.lower, test.locale, got, test.upper)
		}
	}
}

// Test that overrides are honored at any position of the input and that the
// first duplicate wins.
func TestOverrides(t *testing.T) {
	for _, l := range []Locale{English, Turkish, Spanish, French} {
		for _, in := range []string{"foo bar baz", "bar foo baz", "bar baz foo"} {
			got, err := Titlecase(in, l, LanguageDefault, "fOO", "FOO")
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, "fOO") || strings.Contains(got, "FOO") {
				t.Errorf("Titlecase(%q, %s, fOO, FOO) = %q; want: %q", in, l, got, "fOO")
			}
		}
	}
}

func TestWhitespacePreserved(t *testing.T) {
	const in = "\u00a0 foo\u2003bar \t\n baz\u3000"
	for _, c := range []Case{Title, Lower, Sentence, Upper} {
		for _, l := range []Locale{English, Turkish, Spanish, French} {
			got, err := ToCase(in, c, l, LanguageDefault)
			if err != nil {
				t.Fatal(err)
			}
			want := chunk.Split(in)
			have := chunk.Split(got)
			if len(want) != len(have) {
				t.Fatalf("ToCase(%q, %s, %s) = %q: segment count %d; want: %d",
					in, c, l, got, len(have), len(want))
			}
			for i := range want {
				if want[i].Kind == chunk.Separator && want[i].Text != have[i].Text {
					t.Errorf("ToCase(%q, %s, %s) = %q: separator %d = %q; want: %q",
						in, c, l, got, i, have[i].Text, want[i].Text)
				}
			}
		}
	}
}

func TestConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tt := range test.TitleTests {
				if tt.Style == "ap" {
					continue
				}
				got, err := convert(tt.In, tt.Case, tt.Locale, tt.Style, tt.Overrides)
				if err != nil || got != tt.Out {
					t.Errorf("convert(%q) = %q, %v; want: %q", tt.In, got, err, tt.Out)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkTitlecase(b *testing.B) {
	const s = "the quick brown fox jumps over the lazy dog"
	b.Run("English", func(b *testing.B) {
		b.SetBytes(int64(len(s)))
		for i := 0; i < b.N; i++ {
			Titlecase(s, English, LanguageDefault)
		}
	})
	b.Run("Chicago", func(b *testing.B) {
		b.SetBytes(int64(len(s)))
		for i := 0; i < b.N; i++ {
			Titlecase(s, English, ChicagoManualOfStyle)
		}
	})
	b.Run("Turkish", func(b *testing.B) {
		const s = "İLKİ ILIK ÖĞLEN ve akşam"
		b.SetBytes(int64(len(s)))
		for i := 0; i < b.N; i++ {
			Titlecase(s, Turkish, LanguageDefault)
		}
	})
}
