// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package scan - Single character option scanners with POSIX getopt semantics.

A scanner is built from an argument vector, where argv[0] is the program name,
and an option specification string: every option character followed by a ':'
when it requires an argument.
A leading ':' in the specification string reports missing arguments with ':'
instead of '?'.

Unlike getopt(3), scanners keep their position in the returned value, so
several scanners can run at the same time.

	s := scan.New(os.Args, "bi:s:")
	for {
		r, ok := s.Next()
		if !ok {
			break
		}
		switch r.Char {
		case 'b':
		case 'i':
			fmt.Println(r.Arg)
		case '?':
			fmt.Printf("unknown option -%c\n", r.Optopt)
		}
	}
	positional := os.Args[s.Index():]
*/
package scan

import (
	"strings"
	"unicode/utf8"
)

// Result - one scanned option.
type Result struct {
	// Char - the option character, '?' for an unknown option or a missing
	// argument, ':' for a missing argument in silent mode.
	Char byte
	// Optopt - the option character that caused a '?' or ':' result.
	// NonASCII when the unknown option is a multibyte character.
	Optopt byte
	// Arg - the option argument, empty for flags.
	// For a NonASCII unknown option it holds the character.
	Arg string
}

// NonASCII - Optopt of an unknown option that isn't a single byte.
const NonASCII byte = utf8.RuneSelf

// Getopt - reentrant POSIX getopt scanner.
type Getopt struct {
	spec   string
	silent bool
	cur    *cursor
	done   bool
}

// New - builds a scanner over argv for the given specification string.
func New(argv []string, optstring string) *Getopt {
	return &Getopt{
		spec:   strings.TrimPrefix(optstring, ":"),
		silent: strings.HasPrefix(optstring, ":"),
		cur:    newCursor(argv),
	}
}

// Index - index of the first argv element that hasn't been consumed.
func (g *Getopt) Index() int {
	return g.cur.Index()
}

// Next - returns the next option and true, or false when there are no more
// options. Scanning stops at the first non option argument, at a lone '-' and
// after '--', which is consumed.
func (g *Getopt) Next() (Result, bool) {
	if g.done {
		return Result{}, false
	}
	if !g.cur.Inside() {
		if g.cur.Done() {
			g.done = true
			return Result{}, false
		}
		v := g.cur.Value()
		if len(v) < 2 || v[0] != '-' {
			g.done = true
			return Result{}, false
		}
		if v == "--" {
			g.cur.Next()
			g.done = true
			return Result{}, false
		}
		g.cur.Enter(1)
	}

	if g.cur.Peek() >= utf8.RuneSelf {
		r := g.cur.Rune()
		return Result{Char: '?', Optopt: NonASCII, Arg: string(r)}, true
	}
	c := g.cur.Char()
	i := strings.IndexByte(g.spec, c)
	if c == ':' || i < 0 {
		return Result{Char: '?', Optopt: c}, true
	}
	if i+1 >= len(g.spec) || g.spec[i+1] != ':' {
		return Result{Char: c}, true
	}

	// The option takes an argument: either the rest of this element or the
	// next element.
	if g.cur.Inside() {
		return Result{Char: c, Arg: g.cur.Rest()}, true
	}
	if g.cur.Done() {
		if g.silent {
			return Result{Char: ':', Optopt: c}, true
		}
		return Result{Char: '?', Optopt: c}, true
	}
	arg := g.cur.Value()
	g.cur.Next()
	return Result{Char: c, Arg: arg}, true
}
