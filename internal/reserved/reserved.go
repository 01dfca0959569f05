// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package reserved contains the closed classes of function words
// (articles, prepositions, conjunctions, ...) that title casing leaves in
// lower case.
//
// All lookups expect a word that was already lower cased with the case
// mappings of the list's language.
package reserved

import (
	"regexp"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A List is an immutable set of lower case words.
type List struct {
	words map[string]struct{}
}

// NewList returns a List containing words.
func NewList(words ...string) *List {
	l := &List{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		l.words[w] = struct{}{}
	}
	return l
}

// With returns a new List containing the words of l and words.
func (l *List) With(words ...string) *List {
	m := maps.Clone(l.words)
	for _, w := range words {
		m[w] = struct{}{}
	}
	return &List{words: m}
}

// Contains reports if the lower cased word is in l.
func (l *List) Contains(word string) bool {
	_, ok := l.words[word]
	return ok
}

// Len returns the number of words in l.
func (l *List) Len() int { return len(l.words) }

// Words returns the words of l in sorted order.
func (l *List) Words() []string {
	words := maps.Keys(l.words)
	slices.Sort(words)
	return words
}

// English is the list of articles, conjunctions and prepositions lowered
// by the Chicago Manual of Style.
var English = NewList(
	// articles
	"a", "an", "the",
	// conjunctions
	"for", "and", "nor", "but", "or", "yet", "so", "both", "either",
	"neither", "whether", "after", "although", "as", "because", "before",
	"if", "lest", "once", "only", "since", "supposing", "that", "than",
	"though", "till", "unless", "until", "when", "whenever", "where",
	"whereas", "wherever", "while",
	// prepositions
	"about", "above", "across", "against", "along", "among", "around", "at",
	"behind", "between", "beyond", "by", "concerning", "despite", "down",
	"during", "except", "following", "from", "in", "including", "into",
	"like", "near", "of", "off", "on", "onto", "out", "over", "past", "plus",
	"throughout", "to", "towards", "under", "up", "upon", "with", "within",
	"without",
)

// Gruber is the list of "small words" of John Gruber's title case
// algorithm.
var Gruber = NewList(
	"a", "an", "and", "as", "at", "but", "by", "en", "for", "if", "in", "of",
	"on", "or", "the", "to", "v", "v.", "via", "vs", "vs.",
)

// Spanish is the list of articles, prepositions and conjunctions lowered
// by the Real Academia Española.
var Spanish = NewList(
	"a", "al", "ante", "bajo", "con", "contra", "de", "del", "desde",
	"durante", "e", "el", "en", "entre", "hacia", "hasta", "la", "las", "los",
	"mas", "mediante", "ni", "o", "para", "pero", "por", "que", "según", "si",
	"sin", "so", "sino", "sobre", "tras", "u", "un", "una", "unas", "unos",
	"y",
)

// SpanishFundeu extends Spanish with the possessive determiners lowered by
// the Fundéu guidelines.
var SpanishFundeu = Spanish.With(
	"mi", "mis", "tu", "tus", "su", "sus",
	"nuestro", "nuestra", "nuestros", "nuestras",
	"vuestro", "vuestra", "vuestros", "vuestras",
)

// French is the list of determiners, conjunctions, prepositions and
// pronouns lowered in French titles.
var French = NewList(
	// articles
	"le", "la", "les", "un", "une", "des", "du", "de", "au", "aux",
	// demonstrative and exclamative adjectives
	"ce", "cet", "cette", "ces", "quel", "quels", "quelle", "quelles",
	// possessive adjectives
	"mon", "ton", "son", "notre", "votre", "leur", "ma", "ta", "sa", "mes",
	"tes", "ses", "nos", "vos", "leurs",
	// coordinating conjunctions
	"mais", "ou", "et", "donc", "or", "ni", "car", "voire",
	// subordinating conjunctions
	"que", "qu", "quand", "comme", "si", "lorsque", "lorsqu", "puisque",
	"puisqu", "quoique", "quoiqu",
	// prepositions
	"à", "chez", "dans", "entre", "jusque", "jusqu", "hors", "par", "pour",
	"sans", "vers", "sur", "pas", "parmi", "avec", "sous", "en",
	// personal pronouns
	"je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles", "me",
	"te", "se", "y",
	// relative pronouns
	"qui", "quoi", "dont", "où",
	"ne",
)

// TurkishConjunctions are the bağlaçlar lowered by the Türk Dil Kurumu.
var TurkishConjunctions = NewList("ve", "ile", "ya", "yahut", "ki", "da", "de")

// The question particle mi (and its vowel harmony variants) is written
// as a separate word and may carry person and tense suffixes.
var questionParticle = regexp.MustCompile(
	`^m[iıuü](d[iıuü]r(l[ae]r)?|s[iıuü]n|y[iıuü]z|s[iıuü]n[iıuü]z|l[ae]r)?$`)

// IsTurkishQuestionParticle reports if word, lower cased with the
// Turkish case mappings, is a form of the question particle "mi".
func IsTurkishQuestionParticle(word string) bool {
	return questionParticle.MatchString(word)
}

// Turkish reports if word, lower cased with the Turkish case mappings, is
// a conjunction or a question particle.
func Turkish(word string) bool {
	return TurkishConjunctions.Contains(word) || IsTurkishQuestionParticle(word)
}
