// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Builds the automated help sections.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/DavidGamba/go-getopt/internal/option"
	"github.com/DavidGamba/go-getopt/text"
)

// Padding -
var Padding = 4

// Width - column where the synopsis wraps.
var Width = 80

// header - Renders a section header, in bold when the output is a terminal.
func header(s string) string {
	return color.New(color.Bold).Sprint(s) + ":\n"
}

// Name -
func Name(scriptName, description string) string {
	out := scriptName
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s%s%s\n", header(text.HelpNameHeader), strings.Repeat(" ", Padding), out)
}

// split - required options first, both groups sorted by option character.
func split(options []*option.Option) ([]*option.Option, []*option.Option) {
	normalOptions := []*option.Option{}
	requiredOptions := []*option.Option{}
	for _, opt := range options {
		if opt.IsRequired {
			requiredOptions = append(requiredOptions, opt)
		} else {
			normalOptions = append(normalOptions, opt)
		}
	}
	option.Sort(normalOptions)
	option.Sort(requiredOptions)
	return requiredOptions, normalOptions
}

// Synopsis - Return a default synopsis.
// maxArgs is the number of positional arguments allowed, negative for unlimited.
func Synopsis(scriptName string, options []*option.Option, maxArgs int) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	requiredOptions, normalOptions := split(options)

	syns := []string{}
	for _, opt := range requiredOptions {
		syns = append(syns, opt.HelpSynopsis)
	}
	for _, opt := range normalOptions {
		syns = append(syns, "["+opt.HelpSynopsis+"]")
	}
	switch {
	case maxArgs < 0:
		syns = append(syns, "[<args>...]")
	case maxArgs == 1:
		syns = append(syns, "[<arg>]")
	case maxArgs > 1:
		syns = append(syns, fmt.Sprintf("[<args>...%d]", maxArgs))
	}

	var out string
	line := scriptName
	for _, syn := range syns {
		if len(line)+len(syn) >= Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s%s\n", header(text.HelpSynopsisHeader), out)
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// OptionList - Return a formatted list of options and their descriptions.
func OptionList(options []*option.Option) string {
	factor := 0
	for _, opt := range options {
		if len(opt.HelpSynopsis) > factor {
			factor = len(opt.HelpSynopsis)
		}
	}
	factor += Padding
	requiredOptions, normalOptions := split(options)

	helpString := func(opt *option.Option) string {
		txt := fmt.Sprintf("%s%s", strings.Repeat(" ", Padding), pad(opt.HelpSynopsis, factor))
		if opt.Description != "" {
			description := strings.Replace(opt.Description, "\n", "\n"+strings.Repeat(" ", Padding+factor), -1)
			txt += description + " "
		}
		if limits := opt.Limits(); limits != "" {
			txt += fmt.Sprintf("(%s) ", limits)
		}
		if !opt.IsRequired {
			txt += fmt.Sprintf("(default: %s)", opt.DefaultStr)
		}
		return strings.TrimRight(txt, " ") + "\n\n"
	}
	out := ""
	if len(requiredOptions) > 0 {
		out += header(text.HelpRequiredOptionsHeader)
		for _, opt := range requiredOptions {
			out += helpString(opt)
		}
	}
	if len(normalOptions) > 0 {
		out += header(text.HelpOptionsHeader)
		for _, opt := range normalOptions {
			out += helpString(opt)
		}
	}
	return out
}
