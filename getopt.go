// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package getopt - POSIX short option parser that binds option characters to
typed variables.

Options are declared against caller owned variables. A single call to Parse
scans the arguments, converts every option argument to the type of its
variable, runs the declared bounds and validators and reports one composite
outcome.

Usage

	var b bool
	var i int
	var s string

	opt := getopt.New()
	opt.Self("", "Usage message")
	err := opt.BoolVar(&b, 'b', opt.Required())
	err = opt.IntVar(&i, 'i', opt.Required(),
		getopt.Range(0, 18),
		getopt.Validator(func(v int) bool { return v == 15 }))
	err = opt.StringVar(&s, 's', opt.ValidValues("hello", "bye"))

	// argv includes the program name
	remaining, err := opt.Parse(os.Args)
	if errors.Is(err, getopt.ErrorHelpCalled) {
		fmt.Fprint(os.Stderr, opt.Help())
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		os.Exit(int(getopt.CodeOf(err)))
	}

Features

* Flags `-b`, valued options `-i 15` and `-i15`, bundled flags `-bc`.

* `--` stops option parsing.

* `-h` and `-?` are reserved and make Parse return ErrorHelpCalled.

* Integer, unsigned, floating point and string destinations with inclusive
bounds, length bounds, valid values, patterns and validators.

* Every required option that wasn't given is reported, not just the first.

* Destinations are only written when their value passes every check.

Errors

Registration returns ErrorDuplicateOption, ErrorCapacityExceeded,
ErrorInvalidPattern or ErrorInvalidModifier and leaves the parser unchanged.

Parse returns an *Error. CodeOf maps it to one of the outcome codes.
*/
package getopt

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/DavidGamba/go-getopt/internal/option"
	"github.com/DavidGamba/go-getopt/scan"
	"github.com/DavidGamba/go-getopt/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Scanner - Source of option characters.
// See the scan package for the contract.
type Scanner interface {
	Next() (scan.Result, bool)
	Index() int
}

// ScannerFn - Builds a Scanner for the given arguments and specification string.
type ScannerFn func(argv []string, optstring string) Scanner

// POSIX - Default scanner.
func POSIX(argv []string, optstring string) Scanner {
	return scan.New(argv, optstring)
}

// Elvish - Scanner backed by the elvish getopt package.
func Elvish(argv []string, optstring string) Scanner {
	return scan.Elvish(argv, optstring)
}

// GetOpt - main object.
type GetOpt struct {
	name        string
	description string
	usage       string

	options  []*option.Option
	byChar   map[byte]*option.Option
	capacity int // <= 0 means no limit
	maxArgs  int // < 0 means no limit

	scanner ScannerFn

	// Parse mutates the Called markers and the destinations.
	mu sync.Mutex
}

// New returns an empty object of type GetOpt.
// This is the starting point when using go-getopt.
// For example:
//
//	opt := getopt.New()
func New() *GetOpt {
	return &GetOpt{
		name:    filepath.Base(os.Args[0]),
		byChar:  map[byte]*option.Option{},
		scanner: POSIX,
	}
}

// Self - Set a custom name and description that will show in the automated help.
// If name is an empty string, the executable name is used.
func (gopt *GetOpt) Self(name string, description string) *GetOpt {
	if name != "" {
		gopt.name = name
	}
	gopt.description = description
	return gopt
}

// SetUsage - Replaces the automated help with a custom usage message.
func (gopt *GetOpt) SetUsage(msg string) *GetOpt {
	gopt.usage = msg
	return gopt
}

// SetCapacity - Limits the number of options that can be registered.
// Zero or negative means no limit, which is the default.
func (gopt *GetOpt) SetCapacity(n int) *GetOpt {
	gopt.capacity = n
	return gopt
}

// SetMaxArgs - Number of positional arguments allowed after the options.
// Defaults to 0, negative means no limit.
func (gopt *GetOpt) SetMaxArgs(n int) *GetOpt {
	gopt.maxArgs = n
	return gopt
}

// SetScanner - Replaces the scanner used by Parse.
func (gopt *GetOpt) SetScanner(fn ScannerFn) *GetOpt {
	gopt.scanner = fn
	return gopt
}

// Options - Returns the registered options in registration order.
func (gopt *GetOpt) Options() []*option.Option {
	return append([]*option.Option{}, gopt.options...)
}

// Called - Indicates if the option was passed on the command line during the last Parse.
func (gopt *GetOpt) Called(c byte) bool {
	if opt, ok := gopt.byChar[c]; ok {
		return opt.Called
	}
	return false
}

// Value - Returns the value of the given option.
//
// Type assertions are required in cases where the compiler can't determine the type by context.
// For example: `opt.Value('b').(bool)`.
func (gopt *GetOpt) Value(c byte) interface{} {
	if opt, ok := gopt.byChar[c]; ok {
		return opt.Value()
	}
	return nil
}

// BuildSpecString - Returns the specification string handed to the scanner:
// every option character in registration order, followed by ':' when the
// option takes an argument.
func (gopt *GetOpt) BuildSpecString() string {
	b := make([]byte, 0, len(gopt.options)*2)
	for _, opt := range gopt.options {
		b = append(b, opt.Char)
		if !opt.IsFlag {
			b = append(b, ':')
		}
	}
	return string(b)
}

func (gopt *GetOpt) add(opt *option.Option) error {
	if !validChar(opt.Char) {
		return fmt.Errorf("%w"+text.ErrorReservedOption, ErrorDuplicateOption, rune(opt.Char))
	}
	if _, ok := gopt.byChar[opt.Char]; ok {
		return fmt.Errorf("%w"+text.ErrorDuplicateOption, ErrorDuplicateOption, opt.Char)
	}
	if gopt.capacity > 0 && len(gopt.options) >= gopt.capacity {
		return fmt.Errorf("%w"+text.ErrorCapacityExceeded, ErrorCapacityExceeded, opt.Char, gopt.capacity)
	}
	if err := opt.Err(); err != nil {
		return err
	}
	Logger.Printf("registered option: %s, required: %v\n", opt.HelpSynopsis, opt.IsRequired)
	gopt.options = append(gopt.options, opt)
	gopt.byChar[opt.Char] = opt
	return nil
}

// validChar - ASCII letters and digits, except the reserved help option.
func validChar(c byte) bool {
	if c == 'h' {
		return false
	}
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isHelp - -h, -? and a '?' from a scanner that doesn't name the offending option.
func isHelp(r scan.Result) bool {
	if r.Char == 'h' {
		return true
	}
	return r.Char == '?' && (r.Optopt == 0 || r.Optopt == 'h' || r.Optopt == '?')
}

// Parse - Scans argv, where argv[0] is the program name, and saves every
// option into its destination.
//
// Returns the positional arguments left after the options and an *Error
// when something went wrong. Precedence:
//
// • -h or -? stops scanning right away, ErrorHelpCalled.
//
// • Required options that weren't given, ErrorMissingRequiredOption.
//
// • More positional arguments than allowed by SetMaxArgs, ErrorTooManyArguments.
//
// • The last unknown option or conversion error found while scanning.
//
// Conversion errors don't stop scanning. Options that were converted
// successfully keep their values even when Parse fails.
func (gopt *GetOpt) Parse(argv []string) ([]string, error) {
	gopt.mu.Lock()
	defer gopt.mu.Unlock()

	optstring := gopt.BuildSpecString()
	Logger.Printf("optstring: %q, argv: %v\n", optstring, argv)

	missing := map[byte]bool{}
	for _, opt := range gopt.options {
		opt.SetCalled(false)
		if opt.IsRequired {
			missing[opt.Char] = true
		}
	}

	s := gopt.scanner(argv, optstring)
	var errs []error
	for {
		r, ok := s.Next()
		if !ok {
			break
		}
		Logger.Printf("scanned: %q, optopt: %q, arg: %q\n", r.Char, r.Optopt, r.Arg)
		if isHelp(r) {
			return nil, &Error{Code: AskedUsage}
		}
		if opt, ok := gopt.byChar[r.Char]; ok {
			delete(missing, opt.Char)
			opt.SetCalled(true)
			if err := opt.Save(r.Arg); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		name := string(rune(r.Char))
		if r.Char == '?' || r.Char == ':' {
			if opt, ok := gopt.byChar[r.Optopt]; ok {
				errs = append(errs, fmt.Errorf("%w"+text.ErrorMissingArgument, ErrorParsing, opt.Char))
				continue
			}
			name = string(rune(r.Optopt))
			if r.Optopt == scan.NonASCII {
				name = r.Arg
			}
		}
		errs = append(errs, fmt.Errorf("%w"+text.ErrorUnknownOption, ErrorUnknownOption, name))
	}

	idx := s.Index()
	if idx > len(argv) {
		idx = len(argv)
	}
	remaining := []string{}
	if idx >= 0 {
		remaining = append(remaining, argv[idx:]...)
	}

	if len(missing) > 0 {
		e := &Error{Code: UnspecifiedNonOptional, Errs: errs}
		for _, opt := range gopt.options {
			if missing[opt.Char] {
				e.Missing = append(e.Missing, opt.Char)
			}
		}
		return remaining, e
	}
	if gopt.maxArgs >= 0 && len(remaining) > gopt.maxArgs {
		return remaining, &Error{Code: TooManyArguments, Excess: remaining[gopt.maxArgs:], Errs: errs}
	}
	if len(errs) > 0 {
		return remaining, &Error{Code: codeOfSentinel(errs[len(errs)-1]), Errs: errs}
	}
	return remaining, nil
}
