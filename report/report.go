// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/aclements/go-checkmate/checker"
	"github.com/aclements/go-checkmate/internal/statstrack"
)

// initialBlockSize matches stateright's check_and_report starting point:
// large enough that most small models finish in one block, small enough
// that a pathological model doesn't run unboundedly before the first
// progress report.
const initialBlockSize = 32768

const (
	growThreshold   = 2 * time.Second
	shrinkThreshold = 10 * time.Second
)

// Options configures CheckAndReport. The zero Options means Quiet
// verbosity and runtime.NumCPU() as the worker-count target.
type Options struct {
	// Verbosity controls how much progress is logged to stderr. Its
	// zero value is Quiet. CheckAndReport uses it as given and does not
	// read the environment; callers that want CHECKMATE_LOG pass
	// VerbosityFromEnv() here.
	Verbosity Verbosity

	// Cores is the worker-count target used to decide when to fork
	// new workers. Zero means runtime.NumCPU().
	Cores int

	// ProgressInterval is how often the progress line refreshes while
	// a block is running. Zero means 100ms.
	ProgressInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.Cores == 0 {
		o.Cores = runtime.NumCPU()
	}
	if o.ProgressInterval == 0 {
		o.ProgressInterval = 100 * time.Millisecond
	}
	return o
}

// CheckAndReport drives c to completion with an adaptively sized block
// count and worker pool, writing a human-readable report to w on
// completion (pass or fail). It returns a non-nil error only for a
// propagated callback panic or a path-reconstruction failure — Pass and
// Fail are both reported through w, not through the error return.
func CheckAndReport[S comparable, A comparable](c *checker.Checker[S, A], w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	logger := newLogger(opts.Verbosity)

	durations := statstrack.New(statstrack.DefaultWindow)
	blockSize := initialBlockSize
	start := time.Now()

	for {
		blockStart := time.Now()
		progress := startProgress(logger, opts.ProgressInterval)
		progress.setCount(c.PendingCount())
		result, err := c.Check(blockSize)
		progress.stopAndWait()
		if err != nil {
			return err
		}

		if state, propertyName, failed := result.Failed(); failed {
			path, err := c.PathTo(state)
			if err != nil {
				return err
			}
			return writeFailureReport(w, c, state, propertyName, path, c.PendingCount(), start)
		}

		if result.Pass() {
			fmt.Fprintf(w, "Passed after %d sec.\n", int(time.Since(start).Seconds()))
			return nil
		}

		// Incomplete: tune block size / worker count and loop.
		blockElapsed := time.Since(blockStart)
		durations.Add(blockElapsed)
		opts.Verbosity.logf(logger, "%d states pending after %d sec. Continuing.",
			c.PendingCount(), int(time.Since(start).Seconds()))

		switch mean := durations.Mean(); {
		case mean < growThreshold.Seconds():
			blockSize = blockSize * 3 / 2
		case mean > shrinkThreshold.Seconds():
			blockSize = max(1, blockSize/2)
		default:
			threshold := max(1, blockSize/opts.Cores/2)
			if opts.Verbosity == Debug {
				opts.Verbosity.logf(logger, "  cores=%d threshold=%d", opts.Cores, threshold)
			}
			c.AdjustWorkerCount(opts.Cores, threshold)
		}
	}
}

func writeFailureReport[S comparable, A comparable](
	w io.Writer,
	c *checker.Checker[S, A],
	state S,
	propertyName string,
	path []checker.Step[S, A],
	pending int,
	start time.Time,
) error {
	_ = propertyName // surfaced via Properties' Name; not part of the stable report format
	fmt.Fprintf(w, "%d states pending after %d sec. Invariant violated by path of length %d.\n",
		pending, int(time.Since(start).Seconds()), len(path))

	machine := c.Machine()
	for _, step := range path {
		fmt.Fprintf(w, "ACTION: %v\n", step.Action)
		if outcome, ok := machine.DisplayOutcome(step.State, step.Action); ok {
			fmt.Fprintf(w, "OUTCOME: %s\n", outcome)
		}
	}
	return nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
