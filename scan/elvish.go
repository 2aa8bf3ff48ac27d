// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package scan

import (
	"strings"
	"unicode/utf8"

	"src.elv.sh/pkg/getopt"
)

// ElvishScanner - scanner backed by the elvish getopt package.
// The option elements are found upfront with the POSIX rules and handed to
// the elvish parser in BSD mode, which splits bundles and attached arguments.
type ElvishScanner struct {
	results []Result
	next    int
	index   int
}

// Elvish - builds an ElvishScanner over argv for the given specification string.
func Elvish(argv []string, optstring string) *ElvishScanner {
	silent := strings.HasPrefix(optstring, ":")
	spec := strings.TrimPrefix(optstring, ":")
	var specs []*getopt.OptionSpec
	for i := 0; i < len(spec); i++ {
		s := &getopt.OptionSpec{Short: rune(spec[i])}
		if i+1 < len(spec) && spec[i+1] == ':' {
			s.Arity = getopt.RequiredArgument
			i++
		}
		specs = append(specs, s)
	}

	s := &ElvishScanner{}
	if len(argv) == 0 {
		return s
	}
	args := argv[1:]
	n, dashdash, missing := walk(args, spec)
	s.index = 1 + n
	if dashdash {
		s.index++
	}

	// Errors are reported through the Unknown options and the missing argument.
	opts, _, _ := getopt.Parse(args[:n], specs, getopt.BSD)
	for _, opt := range opts {
		switch {
		case opt.Unknown && opt.Spec.Short >= utf8.RuneSelf:
			s.results = append(s.results, Result{Char: '?', Optopt: NonASCII, Arg: string(opt.Spec.Short)})
		case opt.Unknown:
			s.results = append(s.results, Result{Char: '?', Optopt: byte(opt.Spec.Short)})
		default:
			s.results = append(s.results, Result{Char: byte(opt.Spec.Short), Arg: opt.Argument})
		}
	}

	// Parse drops a valued option that is missing its argument.
	if missing != 0 {
		if silent {
			s.results = append(s.results, Result{Char: ':', Optopt: missing})
		} else {
			s.results = append(s.results, Result{Char: '?', Optopt: missing})
		}
	}
	return s
}

// walk - finds the option elements of args: their count, whether they are
// followed by a "--" terminator and the option left without its argument at
// the end, 0 if none.
func walk(args []string, spec string) (int, bool, byte) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--":
			return i, true, 0
		case len(args[i]) < 2 || args[i][0] != '-':
			return i, false, 0
		}
		c, ok := trailingValued(args[i], spec)
		if !ok {
			continue
		}
		if i == len(args)-1 {
			return len(args), false, c
		}
		// The next element is the argument.
		i++
	}
	return len(args), false, 0
}

// trailingValued - returns the option character when the option element
// ends in an option that requires an argument, with nothing attached to it.
func trailingValued(element, spec string) (byte, bool) {
	for i := 1; i < len(element); i++ {
		c := element[i]
		j := strings.IndexByte(spec, c)
		if c == ':' || j < 0 || j+1 >= len(spec) || spec[j+1] != ':' {
			continue
		}
		// The rest of the element is the argument.
		if i+1 < len(element) {
			return 0, false
		}
		return c, true
	}
	return 0, false
}

// Index - index of the first argv element that hasn't been consumed.
func (s *ElvishScanner) Index() int {
	return s.index
}

// Next - returns the next option and true, or false when there are no more options.
func (s *ElvishScanner) Next() (Result, bool) {
	if s.next >= len(s.results) {
		return Result{}, false
	}
	r := s.results[s.next]
	s.next++
	return r, true
}
