// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DavidGamba/go-getopt/internal/option"
	"github.com/DavidGamba/go-getopt/text"
)

// ErrorHelpCalled - Indicates the usage was requested with -h or -?.
var ErrorHelpCalled = errors.New(text.ErrorHelpCalled)

// ErrorParsing - Indicates that an argument couldn't be converted to the option type,
// or that a valued option didn't get its argument.
var ErrorParsing = option.ErrorParsing

// ErrorInvalidValue - Indicates that a converted value was rejected by its bounds,
// refinements or validator.
var ErrorInvalidValue = option.ErrorInvalidValue

// ErrorMissingRequiredOption - Indicates that at least one required option wasn't given.
var ErrorMissingRequiredOption = errors.New("")

// ErrorTooManyArguments - Indicates there were more positional arguments than allowed.
var ErrorTooManyArguments = errors.New("")

// ErrorUnknownOption - Indicates that an option that wasn't declared was given.
var ErrorUnknownOption = errors.New("")

// Registration errors

// ErrorCapacityExceeded - The registry is full.
var ErrorCapacityExceeded = errors.New("")

// ErrorDuplicateOption - The option character is already defined or reserved.
var ErrorDuplicateOption = errors.New("")

// ErrorInvalidPattern - The string option pattern doesn't compile.
var ErrorInvalidPattern = option.ErrorInvalidPattern

// ErrorInvalidModifier - The modifier doesn't apply to the option type or its arguments are invalid.
var ErrorInvalidModifier = option.ErrorInvalidModifier

// Code - Parse outcome.
type Code int

// Parse outcomes
const (
	NoError Code = iota
	TooManyArguments
	UnspecifiedNonOptional
	AskedUsage
	UnknownOption
	ParseError
	InvalidValue
)

func (c Code) String() string {
	switch c {
	case NoError:
		return "NoError"
	case TooManyArguments:
		return "TooManyArguments"
	case UnspecifiedNonOptional:
		return "UnspecifiedNonOptional"
	case AskedUsage:
		return "AskedUsage"
	case UnknownOption:
		return "UnknownOption"
	case ParseError:
		return "ParseError"
	case InvalidValue:
		return "InvalidValue"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error - Composite Parse error.
//
// Code holds the outcome. Errs holds every problem found while scanning, in
// the order they were found, even when Code reports a post scan check.
type Error struct {
	Code    Code
	Missing []byte   // required options that weren't given, in registration order
	Excess  []string // positional arguments past the allowed count
	Errs    []error
}

func (e *Error) Error() string {
	switch e.Code {
	case UnspecifiedNonOptional:
		list := make([]string, 0, len(e.Missing))
		for _, c := range e.Missing {
			list = append(list, "-"+string(c))
		}
		return fmt.Sprintf(text.ErrorMissingRequiredOption, strings.Join(list, ", "))
	case TooManyArguments:
		return fmt.Sprintf(text.ErrorTooManyArguments, e.Excess)
	case AskedUsage:
		return ErrorHelpCalled.Error()
	}
	if len(e.Errs) > 0 {
		return e.Errs[len(e.Errs)-1].Error()
	}
	return e.Code.String()
}

// Unwrap - Allows errors.Is to match the sentinel for the outcome.
func (e *Error) Unwrap() error {
	switch e.Code {
	case UnspecifiedNonOptional:
		return ErrorMissingRequiredOption
	case TooManyArguments:
		return ErrorTooManyArguments
	case AskedUsage:
		return ErrorHelpCalled
	}
	if len(e.Errs) > 0 {
		return e.Errs[len(e.Errs)-1]
	}
	return nil
}

// CodeOf - Returns the outcome code for an error returned by Parse.
func CodeOf(err error) Code {
	if err == nil {
		return NoError
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return codeOfSentinel(err)
}

func codeOfSentinel(err error) Code {
	switch {
	case errors.Is(err, ErrorHelpCalled):
		return AskedUsage
	case errors.Is(err, ErrorMissingRequiredOption):
		return UnspecifiedNonOptional
	case errors.Is(err, ErrorTooManyArguments):
		return TooManyArguments
	case errors.Is(err, ErrorUnknownOption):
		return UnknownOption
	case errors.Is(err, ErrorInvalidValue):
		return InvalidValue
	}
	return ParseError
}
