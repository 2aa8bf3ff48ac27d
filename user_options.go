// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package getopt

import (
	"golang.org/x/exp/constraints"

	"github.com/DavidGamba/go-getopt/internal/option"
)

// Number - Types accepted by NumberVar.
type Number interface {
	constraints.Integer | constraints.Float
}

// ModifyFn - Function signature for functions that modify an option.
//
// Modifiers run before the option is added to the parser. A modifier that
// can't be applied makes the registration fail.
type ModifyFn func(parent *GetOpt, opt *option.Option)

// Required - Parse returns ErrorMissingRequiredOption if the option is not called.
func (gopt *GetOpt) Required() ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		opt.SetRequired()
	}
}

// Description - Add a description to an option for use in automated help.
func (gopt *GetOpt) Description(msg string) ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		opt.SetDescription(msg)
	}
}

// ArgName - Add an argument name to an option for use in automated help.
// For example, by default a string option will have a default synopsis as follows:
//
//	-H <string>
//
// If ArgName("hostname") is used, the synopsis will read:
//
//	-H <hostname>
func (gopt *GetOpt) ArgName(name string) ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		opt.SetHelpArgName(name)
	}
}

// ValidValues - Only accept the given values for a string option.
func (gopt *GetOpt) ValidValues(values ...string) ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		s, ok := opt.Converter().(*option.String)
		if !ok {
			opt.AddError(opt.ModifierError("ValidValues"))
			return
		}
		s.AddValidValues(values...)
	}
}

// Length - Inclusive length bounds, in characters, for a string option.
// A negative max means no maximum.
func (gopt *GetOpt) Length(min, max int) ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		s, ok := opt.Converter().(*option.String)
		if !ok {
			opt.AddError(opt.ModifierError("Length"))
			return
		}
		if err := s.SetLength(min, max); err != nil {
			opt.AddError(err)
		}
	}
}

// Pattern - Regular expression the whole argument of a string option has to match.
// A pattern that doesn't compile makes the registration fail with ErrorInvalidPattern.
func (gopt *GetOpt) Pattern(expr string) ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		s, ok := opt.Converter().(*option.String)
		if !ok {
			opt.AddError(opt.ModifierError("Pattern"))
			return
		}
		if err := s.SetPattern(opt.Char, expr); err != nil {
			opt.AddError(err)
		}
	}
}

// Range - Inclusive bounds for a numeric option.
//
// T has to be the type of the option destination, use an explicit
// instantiation when the constants don't infer it, for example:
//
//	getopt.NumberVar(opt, &port, 'p', getopt.Range[uint16](1, 1024))
func Range[T Number](min, max T) ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		n, ok := opt.Converter().(*option.NumberConverter[T])
		if !ok {
			opt.AddError(opt.ModifierError("Range"))
			return
		}
		if err := n.SetRange(min, max); err != nil {
			opt.AddError(err)
		}
	}
}

// Validator - User check run on the converted value, after bounds and refinements.
// The value is rejected with ErrorInvalidValue when fn returns false.
//
// T has to be the type of the option destination.
func Validator[T any](fn func(T) bool) ModifyFn {
	return func(parent *GetOpt, opt *option.Option) {
		v, ok := opt.Converter().(interface{ SetValidator(func(T) bool) })
		if !ok {
			opt.AddError(opt.ModifierError("Validator"))
			return
		}
		v.SetValidator(fn)
	}
}

func (gopt *GetOpt) register(c byte, conv option.Converter, fns []ModifyFn) error {
	opt := option.New(c, conv)
	for _, fn := range fns {
		fn(gopt, opt)
	}
	return gopt.add(opt)
}

// BoolVar - define a flag.
// The destination is set to false on registration and to true when the
// option is found.
func (gopt *GetOpt) BoolVar(p *bool, c byte, fns ...ModifyFn) error {
	if err := gopt.register(c, option.NewBool(p), fns); err != nil {
		return err
	}
	*p = false
	return nil
}

// StringVar - define a `string` option.
// The result will be available through the variable marked by the given pointer.
// If not called, the variable keeps its value.
func (gopt *GetOpt) StringVar(p *string, c byte, fns ...ModifyFn) error {
	return gopt.register(c, option.NewString(p), fns)
}

// NumberVar - define an integer or floating point option.
// The result will be available through the variable marked by the given pointer.
// If not called, the variable keeps its value.
func NumberVar[T Number](gopt *GetOpt, p *T, c byte, fns ...ModifyFn) error {
	return gopt.register(c, option.NewNumber(p), fns)
}

// IntVar - define an `int` option.
func (gopt *GetOpt) IntVar(p *int, c byte, fns ...ModifyFn) error {
	return NumberVar(gopt, p, c, fns...)
}

// Int64Var - define an `int64` option.
func (gopt *GetOpt) Int64Var(p *int64, c byte, fns ...ModifyFn) error {
	return NumberVar(gopt, p, c, fns...)
}

// UintVar - define a `uint` option.
func (gopt *GetOpt) UintVar(p *uint, c byte, fns ...ModifyFn) error {
	return NumberVar(gopt, p, c, fns...)
}

// Float32Var - define a `float32` option.
func (gopt *GetOpt) Float32Var(p *float32, c byte, fns ...ModifyFn) error {
	return NumberVar(gopt, p, c, fns...)
}

// Float64Var - define a `float64` option.
func (gopt *GetOpt) Float64Var(p *float64, c byte, fns ...ModifyFn) error {
	return NumberVar(gopt, p, c, fns...)
}
