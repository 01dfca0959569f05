// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrInvalidLocale indicates an unknown locale identifier.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrInvalidCase indicates an unknown target case identifier.
	ErrInvalidCase = errors.New("invalid case")

	// ErrInvalidStyleGuide indicates an unknown style guide identifier or a
	// style guide that the selected locale does not support.
	ErrInvalidStyleGuide = errors.New("invalid style guide")

	// ErrInvalidOverrides indicates a malformed list of override words.
	ErrInvalidOverrides = errors.New("invalid overrides")
)

// Field identifies the option an invalid input was meant to fill.
type Field int

const (
	FieldLocale Field = iota
	FieldCase
	FieldStyleGuide
	FieldOverrides
)

func (f Field) String() string {
	switch f {
	case FieldLocale:
		return "locale"
	case FieldCase:
		return "case"
	case FieldStyleGuide:
		return "style"
	case FieldOverrides:
		return "options"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) sentinel() error {
	switch f {
	case FieldLocale:
		return ErrInvalidLocale
	case FieldCase:
		return ErrInvalidCase
	case FieldStyleGuide:
		return ErrInvalidStyleGuide
	case FieldOverrides:
		return ErrInvalidOverrides
	}
	return nil
}

// ParseError is returned when an identifier or option string cannot be
// parsed. It unwraps to the sentinel error of its Field.
type ParseError struct {
	// Field is the option Input was meant to fill
	Field Field
	// Input is the offending input
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decasify: %s %q", e.Field.sentinel(), e.Input)
}

// Unwrap returns the sentinel error of e.Field.
func (e *ParseError) Unwrap() error { return e.Field.sentinel() }

// StyleError is returned when a StyleGuide is used with a Locale that does
// not implement it. It unwraps to ErrInvalidStyleGuide.
type StyleError struct {
	Locale Locale
	Style  StyleGuide
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("decasify: style guide %q is not supported for locale %q",
		e.Style.String(), e.Locale.String())
}

// Unwrap returns ErrInvalidStyleGuide.
func (e *StyleError) Unwrap() error { return ErrInvalidStyleGuide }
