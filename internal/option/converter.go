// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/DavidGamba/go-getopt/text"
)

// Number - Type constraint for numeric destinations.
type Number interface {
	constraints.Integer | constraints.Float
}

// Every converter runs the same pipeline:
// parse -> bounds and refinements -> user validator -> commit.

// Bool - Flag converter.
type Bool struct {
	dest *bool
}

// NewBool - Returns a flag converter for the given destination.
func NewBool(p *bool) *Bool {
	return &Bool{dest: p}
}

// Convert - Ignores the raw text and marks the destination as true.
func (b *Bool) Convert(c byte, raw string) error {
	*b.dest = true
	return nil
}

func (b *Bool) Value() interface{} { return *b.dest }

func (b *Bool) HelpArgName() string { return "" }

// NumberConverter - Converter for integer and floating point destinations.
type NumberConverter[T Number] struct {
	dest      *T
	bounded   bool
	min, max  T
	validator func(T) bool
}

// NewNumber - Returns a numeric converter for the given destination.
// Without a range, bounds are the full range of T.
func NewNumber[T Number](p *T) *NumberConverter[T] {
	return &NumberConverter[T]{dest: p}
}

// SetRange - Sets inclusive bounds.
func (n *NumberConverter[T]) SetRange(min, max T) error {
	if min > max {
		return fmt.Errorf("%wrange min %v is greater than max %v", ErrorInvalidModifier, min, max)
	}
	n.bounded = true
	n.min, n.max = min, max
	return nil
}

// Range - Returns the configured bounds and whether they were set.
func (n *NumberConverter[T]) Range() (T, T, bool) {
	return n.min, n.max, n.bounded
}

// Limits - Help text for the bounds, empty when unbounded.
func (n *NumberConverter[T]) Limits() string {
	min, max, ok := n.Range()
	if !ok {
		return ""
	}
	return fmt.Sprintf(text.HelpRange, min, max)
}

// SetValidator - Sets the user validator, run after the bounds check.
func (n *NumberConverter[T]) SetValidator(fn func(T) bool) {
	n.validator = fn
}

func (n *NumberConverter[T]) Convert(c byte, raw string) error {
	v, err := ParseNumber[T](raw)
	if err != nil {
		return fmt.Errorf("%w"+convertErrorText(n.HelpArgName()), ErrorParsing, c, raw)
	}
	// Written so that NaN is never in range.
	if n.bounded && !(v >= n.min && v <= n.max) {
		return fmt.Errorf("%w"+text.ErrorOutOfRange, ErrorInvalidValue, c, v, n.min, n.max)
	}
	if n.validator != nil && !n.validator(v) {
		return fmt.Errorf("%w"+text.ErrorValidatorRejected, ErrorInvalidValue, c, v)
	}
	*n.dest = v
	return nil
}

func (n *NumberConverter[T]) Value() interface{} { return *n.dest }

func (n *NumberConverter[T]) HelpArgName() string {
	var zero T
	return reflect.TypeOf(zero).Kind().String()
}

func convertErrorText(kind string) string {
	switch kind {
	case "float32", "float64":
		return text.ErrorConvertToFloat
	case "uint", "uint8", "uint16", "uint32", "uint64", "uintptr":
		return text.ErrorConvertToUint
	default:
		return text.ErrorConvertToInt
	}
}

// ParseNumber - Parses the full string as a base 10 number of type T.
// Trailing garbage and values that don't fit in T are errors.
func ParseNumber[T Number](raw string) (T, error) {
	var zero T
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(u), nil
	default:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return zero, err
		}
		return T(f), nil
	}
}

// String - Converter for string destinations.
type String struct {
	dest      *string
	minLen    int
	maxLen    int // < 0 means no maximum
	pool      []string
	pattern   *regexp.Regexp
	expr      string
	validator func(string) bool
}

// NewString - Returns a string converter for the given destination.
func NewString(p *string) *String {
	return &String{dest: p, maxLen: -1}
}

// SetLength - Sets the length bounds, in characters. A negative max means no maximum.
func (s *String) SetLength(min, max int) error {
	if min < 0 || (max >= 0 && max < min) {
		return fmt.Errorf("%winvalid length bounds [%d, %d]", ErrorInvalidModifier, min, max)
	}
	s.minLen, s.maxLen = min, max
	return nil
}

// AddValidValues - Extends the pool of accepted values.
func (s *String) AddValidValues(values ...string) {
	s.pool = append(s.pool, values...)
}

// ValidValues - Returns the pool of accepted values.
func (s *String) ValidValues() []string {
	return s.pool
}

// Limits - Help text for the pool of accepted values, empty when any value is accepted.
func (s *String) Limits() string {
	if len(s.ValidValues()) == 0 {
		return ""
	}
	return fmt.Sprintf(text.HelpValidValues, strings.Join(s.ValidValues(), ", "))
}

// SetPattern - Compiles expr, the whole argument has to match it.
func (s *String) SetPattern(c byte, expr string) error {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return fmt.Errorf("%w"+text.ErrorInvalidPattern, ErrorInvalidPattern, c, expr, err)
	}
	s.pattern = re
	s.expr = expr
	return nil
}

// SetValidator - Sets the user validator, run after every refinement passed.
func (s *String) SetValidator(fn func(string) bool) {
	s.validator = fn
}

func (s *String) Convert(c byte, raw string) error {
	if l := utf8.RuneCountInString(raw); l < s.minLen || (s.maxLen >= 0 && l > s.maxLen) {
		return fmt.Errorf("%w"+text.ErrorLength, ErrorInvalidValue, c, raw, l)
	}
	if len(s.pool) > 0 && !slices.Contains(s.pool, raw) {
		return fmt.Errorf("%w"+text.ErrorNotInPool, ErrorInvalidValue, c, raw, s.pool)
	}
	if s.pattern != nil && !s.pattern.MatchString(raw) {
		return fmt.Errorf("%w"+text.ErrorPatternMismatch, ErrorInvalidValue, c, raw, s.expr)
	}
	if s.validator != nil && !s.validator(raw) {
		return fmt.Errorf("%w"+text.ErrorValidatorRejected, ErrorInvalidValue, c, raw)
	}
	*s.dest = raw
	return nil
}

func (s *String) Value() interface{} { return *s.dest }

func (s *String) HelpArgName() string { return "string" }
