// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report drives a checker.Checker to completion with an
// adaptive block size and worker count, reporting progress and, on
// failure, a reconstructed counterexample path.
package report

import (
	"log"
	"os"
)

// Verbosity selects how much the driver logs. It is read from the
// CHECKMATE_LOG environment variable, the way the rest of this repo's
// command-line tools read their configuration: plain flags and
// environment variables, not a structured-logging framework.
type Verbosity int

const (
	// Quiet suppresses everything but the final report.
	Quiet Verbosity = iota
	// Normal prints one line per completed block (the default).
	Normal
	// Debug additionally prints worker-count adjustment decisions.
	Debug
)

// VerbosityFromEnv reads CHECKMATE_LOG ("quiet", "", "debug") and
// returns the corresponding Verbosity, defaulting to Normal for an
// unset or unrecognized value.
func VerbosityFromEnv() Verbosity {
	switch os.Getenv("CHECKMATE_LOG") {
	case "quiet":
		return Quiet
	case "debug":
		return Debug
	default:
		return Normal
	}
}

// newLogger returns a *log.Logger writing to stderr with no timestamp
// prefix (the driver's own messages already include elapsed time), or
// nil if v is Quiet.
func newLogger(v Verbosity) *log.Logger {
	if v == Quiet {
		return nil
	}
	return log.New(os.Stderr, "", 0)
}

func (v Verbosity) logf(l *log.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.Printf(format, args...)
}
