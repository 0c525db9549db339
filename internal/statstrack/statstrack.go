// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package statstrack tracks a rolling window of pass-duration samples
// for the adaptive check_and_report driver, smoothing the grow/shrink
// decision over the last few passes instead of reacting to a single
// noisy sample.
package statstrack

import (
	"time"

	"github.com/aclements/go-moremath/stats"
)

// DefaultWindow is the number of most recent samples Durations.Mean
// averages over.
const DefaultWindow = 5

// Durations is a fixed-size rolling window of pass durations, in
// seconds.
type Durations struct {
	window  int
	samples []float64
}

// New creates a Durations window of the given size. A non-positive size
// uses DefaultWindow.
func New(window int) *Durations {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Durations{window: window}
}

// Add records one pass's wall-clock duration.
func (d *Durations) Add(elapsed time.Duration) {
	d.samples = append(d.samples, elapsed.Seconds())
	if len(d.samples) > d.window {
		d.samples = d.samples[len(d.samples)-d.window:]
	}
}

// Mean returns the mean of the recorded window, or 0 if no samples have
// been recorded yet.
func (d *Durations) Mean() float64 {
	if len(d.samples) == 0 {
		return 0
	}
	return stats.Mean(d.samples)
}

// Len returns the number of samples currently held (at most the window
// size).
func (d *Durations) Len() int {
	return len(d.samples)
}
