// This file is part of go-getopt.
//
// Copyright (C) 2015-2025  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// getopt-demo - declares a handful of options of every type and reports the
// outcome of parsing its command line.
//
//	getopt-demo -i 15 -s hello -b -f 1.5 -d 2.25
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"github.com/DavidGamba/go-getopt"
)

const usage = `Usage message
    -i <int>        Mandatory, in the range [0, 18] and has to be 15
    -s <string>     Mandatory
    -b              Mandatory flag
    -f <float32>    Optional
    -d <float64>    Optional
    -v              Verbose`

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "getopt-demo",
})

type config struct {
	f float32
	i int
	d float64
	s string
	b bool
	v bool
}

func main() {
	os.Exit(program(os.Args, os.Stdout, os.Stderr))
}

// ExitCode - Exit status for a parse outcome.
func ExitCode(c getopt.Code) int {
	return int(c)
}

func program(args []string, stdout, stderr io.Writer) int {
	logger.SetOutput(stderr)
	logger.SetLevel(log.InfoLevel)
	cfg := &config{}
	opt, setupErr := setup(cfg)

	remaining, err := opt.Parse(args)
	if cfg.v {
		logger.SetLevel(log.DebugLevel)
	}
	// Registration errors are programming mistakes, the demo carries on with
	// what was registered.
	if setupErr != nil {
		logger.Debug("option setup", "error", setupErr)
	}
	logger.Debug("parsed", "code", getopt.CodeOf(err), "remaining", remaining)

	switch {
	case errors.Is(err, getopt.ErrorHelpCalled):
		fmt.Fprint(stderr, opt.Help())
		return ExitCode(getopt.AskedUsage)
	case err != nil:
		fmt.Fprintf(stderr, "%s %s\n\n", color.New(color.FgRed).Sprint("ERROR:"), err)
		var e *getopt.Error
		if errors.As(err, &e) && len(e.Errs) > 1 {
			for _, err := range e.Errs {
				logger.Debug("scan error", "error", err)
			}
		}
		fmt.Fprint(stderr, opt.Help())
		return ExitCode(getopt.CodeOf(err))
	}

	fmt.Fprintf(stdout, "i: %d\ns: %s\nb: %t\n", cfg.i, cfg.s, cfg.b)
	if opt.Called('f') {
		fmt.Fprintf(stdout, "f: %v\n", cfg.f)
	}
	if opt.Called('d') {
		fmt.Fprintf(stdout, "d: %v\n", cfg.d)
	}
	return ExitCode(getopt.NoError)
}

// setup - Registers the demo options. The last registration exceeds the
// capacity of the parser and is reported in the returned error.
func setup(cfg *config) (*getopt.GetOpt, error) {
	opt := getopt.New()
	opt.Self("getopt-demo", "")
	opt.SetUsage(usage)
	opt.SetCapacity(6)

	errs := []error{
		opt.Float32Var(&cfg.f, 'f'),
		opt.IntVar(&cfg.i, 'i', opt.Required(),
			getopt.Range(0, 18),
			getopt.Validator(func(v int) bool { return v == 15 })),
		opt.Float64Var(&cfg.d, 'd'),
		opt.StringVar(&cfg.s, 's', opt.Required()),
		opt.BoolVar(&cfg.b, 'b', opt.Required()),
		opt.BoolVar(&cfg.v, 'v'),
		opt.BoolVar(&cfg.b, 'B'),
	}
	return opt, errors.Join(errs...)
}
