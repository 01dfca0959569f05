// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package decasify converts prose between lower, upper, sentence and title
// case following the typesetting conventions of a locale.
//
// Title casing is not "capitalize every word": English, Spanish, French and
// Turkish each keep a different set of function words (articles,
// prepositions, conjunctions) in lower case, and Turkish has its own
// mappings for the dotted and dotless I:
//
//	decasify.Titlecase("Once UPON A time", decasify.English, decasify.ChicagoManualOfStyle)
//	// "Once upon a Time"
//	decasify.Titlecase("İLKİ ILIK ÖĞLEN", decasify.Turkish, decasify.LanguageDefault)
//	// "İlki Ilık Öğlen"
//
// Input is split into words and whitespace and only the words are
// re-cased, so leading, trailing and repeated whitespace (including
// newlines) is preserved exactly.
//
// All functions are safe for concurrent use.
package decasify

// BUG(cvieth): The Associated Press style guide is not implemented, input
// is returned unchanged and a warning is logged.
