// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option struct and methods.
package option

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/DavidGamba/go-getopt/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Sentinel errors. They carry no text of their own, the wrapping error holds
// the user facing message.
var (
	ErrorParsing         = errors.New("")
	ErrorInvalidValue    = errors.New("")
	ErrorInvalidPattern  = errors.New("")
	ErrorInvalidModifier = errors.New("")
)

// Converter - Converts the raw argument text into the bound destination.
//
// Convert must leave the destination untouched when it returns an error.
type Converter interface {
	Convert(c byte, raw string) error
	Value() interface{}
	HelpArgName() string
}

// Option - main object
type Option struct {
	Char         byte
	IsRequired   bool   // Indicates if the option is required
	IsFlag       bool   // Indicates if the option takes no argument
	Called       bool   // Indicates if the option was passed on the command line
	Description  string // Optional description used for help
	HelpArgName  string // Optional arg name used for help
	DefaultStr   string // String representation of the value at registration time
	HelpSynopsis string // Help synopsis

	conv Converter
	errs []error // configuration errors recorded by modifiers
}

// New - Returns a new option object bound to the given converter.
func New(c byte, conv Converter) *Option {
	opt := &Option{
		Char:        c,
		conv:        conv,
		HelpArgName: conv.HelpArgName(),
	}
	opt.DefaultStr = defaultStr(conv.Value())
	// Flags start unset.
	if _, ok := conv.(*Bool); ok {
		opt.IsFlag = true
		opt.DefaultStr = "false"
	}
	opt.Synopsis()
	return opt
}

func defaultStr(v interface{}) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("\"%s\"", s)
	}
	return fmt.Sprintf("%v", v)
}

// Converter - Returns the converter bound to the option.
func (opt *Option) Converter() Converter {
	return opt.conv
}

// Synopsis - Updates the HelpSynopsis.
func (opt *Option) Synopsis() {
	opt.HelpSynopsis = "-" + string(opt.Char)
	if !opt.IsFlag {
		opt.HelpSynopsis += fmt.Sprintf(" <%s>", opt.HelpArgName)
	}
}

// Value - Get untyped option value
func (opt *Option) Value() interface{} {
	return opt.conv.Value()
}

// Limits - Help text for the values the option accepts.
func (opt *Option) Limits() string {
	if l, ok := opt.conv.(interface{ Limits() string }); ok {
		return l.Limits()
	}
	return ""
}

// SetRequired - Marks an option as required.
func (opt *Option) SetRequired() *Option {
	opt.IsRequired = true
	return opt
}

// SetDescription - Updates the Description.
func (opt *Option) SetDescription(s string) *Option {
	opt.Description = s
	return opt
}

// SetHelpArgName - Updates the HelpArgName.
func (opt *Option) SetHelpArgName(s string) *Option {
	opt.HelpArgName = s
	opt.Synopsis()
	return opt
}

// SetCalled - Marks the option as called.
func (opt *Option) SetCalled(called bool) *Option {
	opt.Called = called
	return opt
}

// AddError - Records a configuration error found while applying modifiers.
func (opt *Option) AddError(err error) {
	opt.errs = append(opt.errs, err)
}

// ModifierError - Returns an error wrapping ErrorInvalidModifier.
func (opt *Option) ModifierError(modifier string) error {
	return fmt.Errorf("%w"+text.ErrorInvalidModifier, ErrorInvalidModifier, modifier, opt.Char)
}

// Err - Returns the configuration errors recorded on the option.
func (opt *Option) Err() error {
	return errors.Join(opt.errs...)
}

// Save - Saves the data provided into the option
func (opt *Option) Save(raw string) error {
	Logger.Printf("option: %c, raw: %q\n", opt.Char, raw)
	err := opt.conv.Convert(opt.Char, raw)
	if err != nil {
		Logger.Printf("option: %c, err: %s\n", opt.Char, err)
	}
	return err
}

// Sort Interface
func Sort(list []*Option) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Char < list[j].Char
	})
}
