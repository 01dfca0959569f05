// Package benchtest is used for benchmarking decasify against the case
// mappers of golang.org/x/text/cases.
//
// The x/text casers do not know about function words or whitespace
// preservation, so they are a lower bound: the benchmarks here are a useful
// measure of the overhead of tokenizing and of the style rules.
//
// It is not part of the decasify package since it would otherwise import
// the package under test.
package benchtest
