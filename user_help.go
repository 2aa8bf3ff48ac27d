// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"github.com/DavidGamba/go-getopt/help"
)

// HelpSection - Indicates what portion of the help to return.
type HelpSection int

// Help Output Types
const (
	helpDefaultName HelpSection = iota
	HelpName
	HelpSynopsis
	HelpOptionList
)

// Help - Default help string that is composed of all available sections.
// When a custom usage message was set with SetUsage, it is returned instead.
func (gopt *GetOpt) Help(sections ...HelpSection) string {
	if gopt.usage != "" && len(sections) == 0 {
		return gopt.usage + "\n"
	}
	if len(sections) == 0 {
		// Print all in the following order
		sections = []HelpSection{helpDefaultName, HelpSynopsis, HelpOptionList}
	}
	helpTxt := ""
	for _, section := range sections {
		switch section {
		// Default name only prints name if the description is set.
		// The explicit type always prints it.
		case helpDefaultName:
			if gopt.description != "" {
				helpTxt += help.Name(gopt.name, gopt.description)
				helpTxt += "\n"
			}
		case HelpName:
			helpTxt += help.Name(gopt.name, gopt.description)
			helpTxt += "\n"
		case HelpSynopsis:
			helpTxt += help.Synopsis(gopt.name, gopt.options, gopt.maxArgs)
			helpTxt += "\n"
		case HelpOptionList:
			helpTxt += help.OptionList(gopt.options)
		}
	}
	return helpTxt
}
