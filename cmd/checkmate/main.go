// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command checkmate runs one of the example state machines in package
// models through the checker and prints a report.
//
// Usage:
//
//	checkmate [flags] <model>
//
// where <model> is one of "linear-fail", "linear-pass", or "puzzle".
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aclements/go-checkmate/checker"
	"github.com/aclements/go-checkmate/models"
	"github.com/aclements/go-checkmate/report"
)

func main() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [flags] <model>\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(w, "\nModels:\n")
		fmt.Fprintf(w, "  linear-fail   a*x+b*y==c is reachable; reports a counterexample\n")
		fmt.Fprintf(w, "  linear-pass   a*x+b*y==c is unreachable over the explored space\n")
		fmt.Fprintf(w, "  puzzle        a 3x3 sliding puzzle the checker solves by counterexample\n")
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts := report.Options{Verbosity: report.VerbosityFromEnv()}

	var err error
	switch flag.Arg(0) {
	case "linear-fail":
		c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 10, C: 14})
		err = report.CheckAndReport(c, os.Stdout, opts)
	case "linear-pass":
		c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 4, C: 7})
		err = report.CheckAndReport(c, os.Stdout, opts)
	case "puzzle":
		c := checker.New[models.Board, models.Slide](models.DefaultPuzzle)
		err = report.CheckAndReport(c, os.Stdout, opts)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "checkmate: %v\n", err)
		os.Exit(1)
	}
}
