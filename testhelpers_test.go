// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/DavidGamba/go-getopt/internal/option"
	"github.com/DavidGamba/go-getopt/scan"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

func checkCode(t *testing.T, err error, expected Code) {
	t.Helper()
	if got := CodeOf(err); got != expected {
		t.Errorf("wrong outcome: got %s, want %s (err: %v)", got, expected, err)
	}
}

// setupTestLogging - Defines an output for the default Loggers and returns a
// function that prints the output if the output is not empty.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	option.Logger.SetOutput(buf)
	return func() {
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%c' - exp '%c'\n%s\n", got, i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(got), got, expected)
	}
	return ""
}

// fakeScanner - Replays a fixed list of results.
type fakeScanner struct {
	results []scan.Result
	next    int
	index   int
}

func (f *fakeScanner) Next() (scan.Result, bool) {
	if f.next >= len(f.results) {
		return scan.Result{}, false
	}
	r := f.results[f.next]
	f.next++
	return r, true
}

func (f *fakeScanner) Index() int {
	return f.index
}

func fakeScannerFn(index int, results ...scan.Result) ScannerFn {
	return func(argv []string, optstring string) Scanner {
		return &fakeScanner{results: results, index: index}
	}
}
