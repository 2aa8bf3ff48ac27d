// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// Override them to customize the messages returned by go-getopt.
package text

// ErrorMissingRequiredOption holds the text for missing required options.
// It has a string placeholder '%s' for the list of missing options.
var ErrorMissingRequiredOption = "Missing required option(s): %s"

// ErrorMissingArgument holds the text for a valued option that got no argument.
// It has a placeholder '%c' for the option character.
var ErrorMissingArgument = "Missing argument for option '-%c'"

// ErrorUnknownOption holds the text for an option that wasn't declared.
// It has a placeholder '%s' for the option character.
var ErrorUnknownOption = "Unknown option '-%s'"

// ErrorTooManyArguments holds the text for excess positional arguments.
// It has a placeholder '%q' for the excess arguments.
var ErrorTooManyArguments = "Too many arguments: %q"

// ErrorConvertToInt holds the text for Int Coversion argument error.
// It has two placeholders: '%c' for the option character and '%s' for the invalid value.
var ErrorConvertToInt = "Argument error for option '-%c': Can't convert string to int: '%s'"

// ErrorConvertToUint holds the text for unsigned Int Coversion argument error.
// It has two placeholders: '%c' for the option character and '%s' for the invalid value.
var ErrorConvertToUint = "Argument error for option '-%c': Can't convert string to uint: '%s'"

// ErrorConvertToFloat holds the text for Float Coversion argument error.
// It has two placeholders: '%c' for the option character and '%s' for the invalid value.
var ErrorConvertToFloat = "Argument error for option '-%c': Can't convert string to float: '%s'"

// ErrorOutOfRange holds the text for a number outside of its declared bounds.
// Placeholders: option character, value, min and max.
var ErrorOutOfRange = "Invalid value for option '-%c': %v is not in range [%v, %v]"

// ErrorLength holds the text for a string outside of its declared length bounds.
// Placeholders: option character, value and length.
var ErrorLength = "Invalid value for option '-%c': '%s' has an invalid length of %d"

// ErrorNotInPool holds the text for a string that isn't one of the valid values.
// Placeholders: option character, value and the list of valid values.
var ErrorNotInPool = "Invalid value for option '-%c': '%s', valid values are %q"

// ErrorPatternMismatch holds the text for a string that doesn't match the option pattern.
// Placeholders: option character, value and pattern.
var ErrorPatternMismatch = "Invalid value for option '-%c': '%s' doesn't match '%s'"

// ErrorValidatorRejected holds the text for a value rejected by a user validator.
// Placeholders: option character and value.
var ErrorValidatorRejected = "Invalid value for option '-%c': %v"

// ErrorCapacityExceeded holds the text for a registration past the registry capacity.
// Placeholders: option character and capacity.
var ErrorCapacityExceeded = "Can't register option '-%c': capacity of %d options exceeded"

// ErrorDuplicateOption holds the text for an option character defined twice.
// It has a placeholder '%c' for the option character.
var ErrorDuplicateOption = "Option '-%c' is already defined"

// ErrorReservedOption holds the text for an option character that can't be registered.
// It has a placeholder '%q' for the option character.
var ErrorReservedOption = "Option %q is reserved or not a valid option character"

// ErrorInvalidPattern holds the text for a pattern that doesn't compile.
// Placeholders: option character, pattern and compile error.
var ErrorInvalidPattern = "Invalid pattern for option '-%c': '%s': %s"

// ErrorInvalidModifier holds the text for a modifier applied to the wrong option type.
// Placeholders: modifier name and option character.
var ErrorInvalidModifier = "Modifier '%s' doesn't apply to option '-%c'"

// ErrorHelpCalled holds the text returned when the usage was requested.
var ErrorHelpCalled = "help called"

// HelpRange holds the help text for the bounds of a numeric option.
var HelpRange = "range: [%v, %v]"

// HelpValidValues holds the help text for the values accepted by a string option.
var HelpValidValues = "valid values: %s"

// HelpNameHeader holds the header text for the command name
var HelpNameHeader = "NAME"

// HelpSynopsisHeader holds the header text for the synopsis
var HelpSynopsisHeader = "SYNOPSIS"

// HelpRequiredOptionsHeader holds the header text for the required parameters
var HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"

// HelpOptionsHeader holds the header text for the option list
var HelpOptionsHeader = "OPTIONS"
