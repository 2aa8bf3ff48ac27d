// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package option

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DavidGamba/go-getopt/text"
)

func TestOption(t *testing.T) {
	tests := []struct {
		name   string
		option *Option
		input  string
		output interface{}
		err    error
	}{
		{"bool", func() *Option {
			b := false
			return New('b', NewBool(&b))
		}(), "", true, nil},
		{"bool ignores text", func() *Option {
			b := false
			return New('b', NewBool(&b))
		}(), "false", true, nil},

		{"string", func() *Option {
			s := ""
			return New('s', NewString(&s))
		}(), "hola", "hola", nil},
		{"string empty", func() *Option {
			s := "xxx"
			return New('s', NewString(&s))
		}(), "", "", nil},

		{"int", func() *Option {
			i := 0
			return New('i', NewNumber(&i))
		}(), "123", 123, nil},
		{"int negative", func() *Option {
			i := 0
			return New('i', NewNumber(&i))
		}(), "-123", -123, nil},
		{"int trailing garbage", func() *Option {
			i := 7
			return New('i', NewNumber(&i))
		}(), "123x", 7,
			fmt.Errorf(text.ErrorConvertToInt, 'i', "123x")},
		{"int empty", func() *Option {
			i := 7
			return New('i', NewNumber(&i))
		}(), "", 7,
			fmt.Errorf(text.ErrorConvertToInt, 'i', "")},
		{"int8 overflow", func() *Option {
			var i int8 = 1
			return New('i', NewNumber(&i))
		}(), "128", int8(1),
			fmt.Errorf(text.ErrorConvertToInt, 'i', "128")},
		{"uint negative", func() *Option {
			var u uint = 3
			return New('u', NewNumber(&u))
		}(), "-1", uint(3),
			fmt.Errorf(text.ErrorConvertToUint, 'u', "-1")},
		{"uint16", func() *Option {
			var u uint16
			return New('u', NewNumber(&u))
		}(), "65535", uint16(65535), nil},

		{"float64", func() *Option {
			f := 0.0
			return New('f', NewNumber(&f))
		}(), "123.123", 123.123, nil},
		{"float32", func() *Option {
			var f float32
			return New('f', NewNumber(&f))
		}(), "1.5", float32(1.5), nil},
		{"float64 error", func() *Option {
			f := 2.0
			return New('f', NewNumber(&f))
		}(), "123.1x", 2.0,
			fmt.Errorf(text.ErrorConvertToFloat, 'f', "123.1x")},
		{"float32 overflow", func() *Option {
			var f float32
			return New('f', NewNumber(&f))
		}(), "1e39", float32(0),
			fmt.Errorf(text.ErrorConvertToFloat, 'f', "1e39")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.option.Save(tt.input)
			if err != nil && tt.err == nil {
				t.Errorf("unexpected error: %s", err)
			}
			if err != nil && tt.err != nil && err.Error() != tt.err.Error() {
				t.Errorf("wrong error: got '%s', expected '%s'", err, tt.err)
			}
			if err == nil && tt.err != nil {
				t.Errorf("missing error: expected '%s'", tt.err)
			}
			if diff := cmp.Diff(tt.output, tt.option.Value()); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNumberRange(t *testing.T) {
	i := 5
	n := NewNumber(&i)
	if err := n.SetRange(0, 18); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for _, v := range []int{0, 1, 17, 18} {
		err := n.Convert('i', fmt.Sprintf("%d", v))
		if err != nil {
			t.Errorf("unexpected error for %d: %s", v, err)
		}
		if i != v {
			t.Errorf("wrong value: got %d, expected %d", i, v)
		}
	}
	i = 5
	for _, v := range []string{"-1", "19", "1000"} {
		err := n.Convert('i', v)
		if !errors.Is(err, ErrorInvalidValue) {
			t.Errorf("expected invalid value for %s, got %v", v, err)
		}
		if i != 5 {
			t.Errorf("destination modified on failure: %d", i)
		}
	}
	min, max, ok := n.Range()
	if !ok || min != 0 || max != 18 {
		t.Errorf("wrong range: %d %d %v", min, max, ok)
	}
	if l := n.Limits(); l != "range: [0, 18]" {
		t.Errorf("wrong limits: %q", l)
	}
	if err := n.SetRange(3, 2); !errors.Is(err, ErrorInvalidModifier) {
		t.Errorf("expected invalid modifier, got %v", err)
	}
}

func TestNumberNaN(t *testing.T) {
	f := 1.0
	n := NewNumber(&f)
	if err := n.Convert('f', "NaN"); err != nil {
		t.Errorf("unbounded NaN should be accepted: %s", err)
	}
	f = 1.0
	_ = n.SetRange(-10, 10)
	if err := n.Convert('f', "NaN"); !errors.Is(err, ErrorInvalidValue) {
		t.Errorf("expected invalid value, got %v", err)
	}
	if f != 1.0 || math.IsNaN(f) {
		t.Errorf("destination modified on failure: %v", f)
	}
}

func TestNumberValidator(t *testing.T) {
	i := 3
	n := NewNumber(&i)
	_ = n.SetRange(0, 18)
	n.SetValidator(func(v int) bool { return v == 15 })

	if err := n.Convert('i', "14"); !errors.Is(err, ErrorInvalidValue) {
		t.Errorf("expected invalid value, got %v", err)
	}
	if i != 3 {
		t.Errorf("destination modified on failure: %d", i)
	}
	// Bounds are checked before the validator.
	err := n.Convert('i', "20")
	if err == nil || !strings.Contains(err.Error(), "not in range") {
		t.Errorf("expected range error, got %v", err)
	}
	if err := n.Convert('i', "15"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if i != 15 {
		t.Errorf("wrong value: %d", i)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *String) error
		input string
		ok    bool
	}{
		{"no refinements", func(s *String) error { return nil }, "anything", true},
		{"pool hit", func(s *String) error { s.AddValidValues("a", "b"); return nil }, "a", true},
		{"pool miss", func(s *String) error { s.AddValidValues("a", "b"); return nil }, "c", false},
		{"min length", func(s *String) error { return s.SetLength(2, -1) }, "x", false},
		{"max length", func(s *String) error { return s.SetLength(0, 3) }, "abcd", false},
		{"length counts characters", func(s *String) error { return s.SetLength(0, 2) }, "ñü", true},
		{"pattern full match", func(s *String) error { return s.SetPattern('s', `h\w+`) }, "hello", true},
		{"pattern partial match", func(s *String) error { return s.SetPattern('s', `h\w+`) }, "hello world", false},
		{"pattern alternation anchored", func(s *String) error { return s.SetPattern('s', `a|b`) }, "ab", false},
		{"validator", func(s *String) error { s.SetValidator(func(v string) bool { return v != "no" }); return nil }, "no", false},
		{"all refinements", func(s *String) error {
			s.AddValidValues("hello", "hi")
			s.SetValidator(func(v string) bool { return true })
			if err := s.SetLength(2, 5); err != nil {
				return err
			}
			return s.SetPattern('s', `h.*`)
		}, "hello", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest := "untouched"
			s := NewString(&dest)
			if err := tt.setup(s); err != nil {
				t.Fatalf("unexpected setup error: %s", err)
			}
			err := s.Convert('s', tt.input)
			if tt.ok {
				if err != nil {
					t.Errorf("unexpected error: %s", err)
				}
				if dest != tt.input {
					t.Errorf("wrong value: got %q, expected %q", dest, tt.input)
				}
				return
			}
			if !errors.Is(err, ErrorInvalidValue) {
				t.Errorf("expected invalid value, got %v", err)
			}
			if dest != "untouched" {
				t.Errorf("destination modified on failure: %q", dest)
			}
		})
	}
}

func TestStringConfiguration(t *testing.T) {
	s := ""
	c := NewString(&s)
	if err := c.SetPattern('s', `[a-`); !errors.Is(err, ErrorInvalidPattern) {
		t.Errorf("expected invalid pattern, got %v", err)
	}
	if err := c.SetLength(-1, 3); !errors.Is(err, ErrorInvalidModifier) {
		t.Errorf("expected invalid modifier, got %v", err)
	}
	if err := c.SetLength(4, 3); !errors.Is(err, ErrorInvalidModifier) {
		t.Errorf("expected invalid modifier, got %v", err)
	}
}

func TestSynopsis(t *testing.T) {
	b := false
	i := 0
	s := "x"
	tests := []struct {
		option   *Option
		synopsis string
		def      string
		flag     bool
	}{
		{New('b', NewBool(&b)), "-b", "false", true},
		{New('i', NewNumber(&i)), "-i <int>", "0", false},
		{New('s', NewString(&s)), "-s <string>", `"x"`, false},
		{New('s', NewString(&s)).SetHelpArgName("name"), "-s <name>", `"x"`, false},
	}
	for _, tt := range tests {
		if tt.option.HelpSynopsis != tt.synopsis {
			t.Errorf("wrong synopsis: got %q, expected %q", tt.option.HelpSynopsis, tt.synopsis)
		}
		if tt.option.DefaultStr != tt.def {
			t.Errorf("wrong default: got %q, expected %q", tt.option.DefaultStr, tt.def)
		}
		if tt.option.IsFlag != tt.flag {
			t.Errorf("wrong flag marker for %c", tt.option.Char)
		}
	}
}

func TestSort(t *testing.T) {
	b := false
	list := []*Option{New('z', NewBool(&b)), New('a', NewBool(&b)), New('m', NewBool(&b))}
	Sort(list)
	got := ""
	for _, o := range list {
		got += string(o.Char)
	}
	if got != "amz" {
		t.Errorf("wrong order: %s", got)
	}
}

func TestErr(t *testing.T) {
	b := false
	opt := New('b', NewBool(&b))
	if opt.Err() != nil {
		t.Errorf("unexpected error: %s", opt.Err())
	}
	opt.AddError(opt.ModifierError("Range"))
	if !errors.Is(opt.Err(), ErrorInvalidModifier) {
		t.Errorf("expected invalid modifier, got %v", opt.Err())
	}
}

func TestLimits(t *testing.T) {
	b := false
	f := 0.0
	s := ""
	bounded := NewNumber(&f)
	_ = bounded.SetRange(-1.5, 1.5)
	pool := NewString(&s)
	pool.AddValidValues("dev", "prod")
	tests := []struct {
		option *Option
		limits string
	}{
		{New('b', NewBool(&b)), ""},
		{New('f', NewNumber(&f)), ""},
		{New('f', bounded), "range: [-1.5, 1.5]"},
		{New('s', NewString(&s)), ""},
		{New('s', pool), "valid values: dev, prod"},
	}
	for _, tt := range tests {
		if got := tt.option.Limits(); got != tt.limits {
			t.Errorf("wrong limits for %s: got %q, expected %q", tt.option.HelpSynopsis, got, tt.limits)
		}
	}
}
