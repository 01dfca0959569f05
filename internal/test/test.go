// Package test contains the conversion tests shared by the decasify
// package and the decasify command.
//
// Cases, locales and style guides are referred to by name so that the
// tables can be driven through any interface that accepts strings.
package test

import (
	"strconv"
	"strings"
	"testing"
)

// ConvertFunc converts s to the case named c using the rules of locale and
// style. Overrides are passed verbatim.
type ConvertFunc func(s, c, locale, style string, overrides []string) (string, error)

type CaseTest struct {
	In        string
	Case      string
	Locale    string
	Style     string
	Overrides []string
	Out       string
}

func (c CaseTest) String() string {
	var b strings.Builder
	b.WriteString(c.Case)
	b.WriteByte('/')
	b.WriteString(c.Locale)
	if c.Style != "" {
		b.WriteByte('/')
		b.WriteString(c.Style)
	}
	if len(c.Overrides) != 0 {
		b.WriteString(" overrides=")
		b.WriteString(strings.Join(c.Overrides, ","))
	}
	return b.String()
}

var TitleTests = []CaseTest{
	// English: default (Gruber)
	{In: "foo", Case: "title", Locale: "en", Out: "Foo"},
	{In: "foo bar", Case: "title", Locale: "en", Out: "Foo Bar"},
	{In: "Once UPON A time", Case: "title", Locale: "en", Out: "Once UPON a Time"},
	{In: "Once UPON A time", Case: "title", Locale: "en", Style: "gruber", Out: "Once UPON a Time"},
	{In: "foo: a baz", Case: "title", Locale: "en", Out: "Foo: A Baz"},
	{In: "FIST", Case: "title", Locale: "en", Out: "Fist"},
	{In: "ide", Case: "title", Locale: "en", Out: "Ide"},
	{In: "in the end", Case: "title", Locale: "en", Out: "In the End"},
	{In: "the lord of the rings", Case: "title", Locale: "en", Out: "The Lord of the Rings"},
	{In: "what is it for", Case: "title", Locale: "en", Out: "What Is It for"},
	{In: "an iPhone review", Case: "title", Locale: "en", Out: "An iPhone Review"},
	{In: "visit example.com today", Case: "title", Locale: "en", Out: "Visit example.com Today"},
	{In: "step-by-step guide", Case: "title", Locale: "en", Out: "Step-by-Step Guide"},
	{
		In:     "Q&A with steve jobs: 'that's what happens in technology'",
		Case:   "title",
		Locale: "en",
		Out:    "Q&A With Steve Jobs: 'That's What Happens in Technology'",
	},
	{In: "  foo  bar  ", Case: "title", Locale: "en", Out: "  Foo  Bar  "},
	{In: "\tfoo\n\nbar\r\n", Case: "title", Locale: "en", Out: "\tFoo\n\nBar\r\n"},
	{In: "", Case: "title", Locale: "en", Out: ""},
	{In: " \n ", Case: "title", Locale: "en", Out: " \n "},

	// English: Chicago Manual of Style
	{In: "Once UPON A time", Case: "title", Locale: "en", Style: "cmos", Out: "Once upon a Time"},
	{In: "the lord of the rings", Case: "title", Locale: "en", Style: "cmos", Out: "The Lord of the Rings"},
	{In: "what is it for", Case: "title", Locale: "en", Style: "cmos", Out: "What Is It For"},
	{In: "  once upon  a time ", Case: "title", Locale: "en", Style: "cmos", Out: "  Once upon  a Time "},

	// English: Associated Press (unchanged)
	{In: "Once UPON A time", Case: "title", Locale: "en", Style: "ap", Out: "Once UPON A time"},

	// English: overrides
	{In: "foo bar", Case: "title", Locale: "en", Overrides: []string{"fOO"}, Out: "fOO Bar"},
	{In: "bar foo", Case: "title", Locale: "en", Overrides: []string{"fOO"}, Out: "Bar fOO"},
	{In: "bar foo baz", Case: "title", Locale: "en", Overrides: []string{"fOO"}, Out: "Bar fOO Baz"},
	{In: "FOO BAR", Case: "title", Locale: "en", Overrides: []string{"fOO"}, Out: "fOO Bar"},
	{In: "bar foo", Case: "title", Locale: "en", Style: "cmos", Overrides: []string{"fOO"}, Out: "Bar fOO"},
	{In: "use gitHub and npm", Case: "title", Locale: "en", Overrides: []string{"GitHub", "npm"}, Out: "Use GitHub and npm"},

	// Turkish
	{In: "ilk", Case: "title", Locale: "tr", Out: "İlk"},
	{In: "İLKİ ILIK ÖĞLEN", Case: "title", Locale: "tr", Out: "İlki Ilık Öğlen"},
	{In: "İLKİ ILIK ÖĞLEN", Case: "title", Locale: "tr", Style: "tdk", Out: "İlki Ilık Öğlen"},
	{In: "sen ve ben", Case: "title", Locale: "tr", Out: "Sen ve Ben"},
	{In: "ben de geldim", Case: "title", Locale: "tr", Out: "Ben de Geldim"},
	{In: "aç mısın", Case: "title", Locale: "tr", Out: "Aç mısın"},
	{In: "ne zaman geliyor musunuz", Case: "title", Locale: "tr", Out: "Ne Zaman Geliyor musunuz"},
	{In: "bu dualarımızda", Case: "title", Locale: "tr", Out: "Bu Dualarımızda"},
	{In: "dualarımızda minnettarlık", Case: "title", Locale: "tr", Out: "Dualarımızda Minnettarlık"},
	{In: "FIST", Case: "title", Locale: "tr", Out: "Fıst"},
	{In: "  ilk  dakika ", Case: "title", Locale: "tr", Out: "  İlk  Dakika "},
	{In: "ilk dakika", Case: "title", Locale: "tr", Overrides: []string{"iLK"}, Out: "iLK Dakika"},

	// Spanish
	{In: "DÍA DE los muertos", Case: "title", Locale: "es", Out: "Día de los Muertos"},
	{In: "el señor de los anillos", Case: "title", Locale: "es", Style: "rae", Out: "El Señor de los Anillos"},
	{In: "mi casa es su casa", Case: "title", Locale: "es", Out: "Mi Casa Es Su Casa"},
	{In: "mi casa es su casa", Case: "title", Locale: "es", Style: "fundeu", Out: "Mi Casa Es su Casa"},

	// French
	{In: "le petit prince", Case: "title", Locale: "fr", Out: "Le Petit Prince"},
	{In: "un arc-en-ciel", Case: "title", Locale: "fr", Out: "Un Arc-en-Ciel"},
	{In: "la guerre et la paix", Case: "title", Locale: "fr", Out: "La Guerre et la Paix"},
}

var LowerTests = []CaseTest{
	{In: "FOO BAR", Case: "lower", Locale: "en", Out: "foo bar"},
	{In: "  Foo\tBAR\n", Case: "lower", Locale: "en", Out: "  foo\tbar\n"},
	{In: "İ", Case: "lower", Locale: "en", Out: "i\u0307"},
	{In: "İLKİ ILIK", Case: "lower", Locale: "tr", Out: "ilki ılık"},
	{In: "DÍA DE LOS MUERTOS", Case: "lower", Locale: "es", Out: "día de los muertos"},
	{In: "", Case: "lower", Locale: "en", Out: ""},
}

var UpperTests = []CaseTest{
	{In: "foo bar", Case: "upper", Locale: "en", Out: "FOO BAR"},
	{In: "ilk", Case: "upper", Locale: "en", Out: "ILK"},
	{In: "ilki ılık", Case: "upper", Locale: "tr", Out: "İLKİ ILIK"},
	{In: "straße", Case: "upper", Locale: "en", Out: "STRASSE"},
	{In: " a\u00a0b ", Case: "upper", Locale: "en", Out: " A\u00a0B "},
}

var SentenceTests = []CaseTest{
	{In: "insert BIKE here", Case: "sentence", Locale: "en", Out: "Insert bike here"},
	{In: "ilk DAKİKA", Case: "sentence", Locale: "tr", Out: "İlk dakika"},
	{In: "ilk DAVRANSIN", Case: "sentence", Locale: "tr", Out: "İlk davransın"},
	{In: "DÍA de LOS muertos", Case: "sentence", Locale: "es", Out: "Día de los muertos"},
	{In: "  once UPON a time", Case: "sentence", Locale: "en", Out: "  Once upon a time"},
}

// AllTests returns all of the conversion tests.
func AllTests() []CaseTest {
	all := make([]CaseTest, 0, len(TitleTests)+len(LowerTests)+len(UpperTests)+len(SentenceTests))
	all = append(all, TitleTests...)
	all = append(all, LowerTests...)
	all = append(all, UpperTests...)
	all = append(all, SentenceTests...)
	return all
}

func runCaseTests(t *testing.T, fn ConvertFunc, funcName string, testCases []CaseTest) {
	t.Helper()
	fails := 0
	for _, test := range testCases {
		got, err := fn(test.In, test.Case, test.Locale, test.Style, test.Overrides)
		if err != nil {
			fails++
			t.Errorf("%s(%q) [%s]: unexpected error: %v", funcName, test.In, test, err)
			continue
		}
		if got != test.Out {
			fails++
			t.Errorf("%s\n"+
				"Test: %s\n"+
				"In:   %q\n"+
				"Got:  %q\n"+
				"Want: %q\n"+
				"\n"+
				"Got:  %s\n"+
				"Want: %s\n",
				funcName, test,
				test.In, got, test.Out,
				strconv.QuoteToASCII(got),
				strconv.QuoteToASCII(test.Out),
			)
		}
	}
	if t.Failed() && testing.Verbose() {
		t.Logf("%s: failed %d out of %d tests", funcName, fails, len(testCases))
	}
}

func Title(t *testing.T, fn ConvertFunc)    { runCaseTests(t, fn, "Title", TitleTests) }
func Lower(t *testing.T, fn ConvertFunc)    { runCaseTests(t, fn, "Lower", LowerTests) }
func Upper(t *testing.T, fn ConvertFunc)    { runCaseTests(t, fn, "Upper", UpperTests) }
func Sentence(t *testing.T, fn ConvertFunc) { runCaseTests(t, fn, "Sentence", SentenceTests) }

// InvalidTests are combinations that must be rejected.
var InvalidTests = []CaseTest{
	{In: "foo", Case: "title", Locale: "xx"},
	{In: "foo", Case: "camel", Locale: "en"},
	{In: "foo", Case: "title", Locale: "en", Style: "bogus"},
	{In: "foo", Case: "title", Locale: "en", Style: "tdk"},
	{In: "foo", Case: "title", Locale: "tr", Style: "cmos"},
	{In: "foo", Case: "title", Locale: "es", Style: "gruber"},
	{In: "foo", Case: "title", Locale: "fr", Style: "rae"},
	{In: "foo", Case: "lower", Locale: "tr", Style: "cmos"},
}

func Invalid(t *testing.T, fn ConvertFunc) {
	t.Helper()
	for _, test := range InvalidTests {
		got, err := fn(test.In, test.Case, test.Locale, test.Style, test.Overrides)
		if err == nil {
			t.Errorf("Invalid(%q) [%s] = %q; want error", test.In, test, got)
		}
	}
}
