// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Checker owns one or more workers exploring the same state machine and
// consolidates their per-pass results.
type Checker[S comparable, A comparable] struct {
	machine Machine[S, A]
	props   []Property[S, A]
	fp      Fingerprinter[S]
	workers []*worker[S, A]
}

// New constructs a checker with a single worker, seeded with m's initial
// states. The invariant checked on every reachable state is the
// conjunction of m.Properties().
func New[S comparable, A comparable](m Machine[S, A]) *Checker[S, A] {
	return NewWithFingerprinter[S, A](m, newGobFingerprinter[S]())
}

// NewWithFingerprinter is like New but lets the caller supply a
// Fingerprinter other than the default gob+xxhash one, for state types
// where a cheaper or differently-tuned hash is worthwhile.
func NewWithFingerprinter[S comparable, A comparable](m Machine[S, A], fp Fingerprinter[S]) *Checker[S, A] {
	props := m.Properties()
	return &Checker[S, A]{
		machine: m,
		props:   props,
		fp:      fp,
		workers: []*worker[S, A]{newWorker(m, props, fp)},
	}
}

// Machine returns the state machine this checker is exploring.
func (c *Checker[S, A]) Machine() Machine[S, A] { return c.machine }

// CallbackPanic wraps a panic recovered from a user-supplied Machine or
// Property callback running inside one of a Checker's worker goroutines.
// Check returns this as an error rather than letting the panic cross the
// goroutine boundary raw, so callers (and tests) can inspect it.
type CallbackPanic struct {
	Value any
	Stack []byte
}

func (p *CallbackPanic) Error() string {
	return fmt.Sprintf("checker: panic in user callback: %v\n%s", p.Value, p.Stack)
}

// Check runs every worker's bounded pass in parallel — one goroutine per
// worker, joined via errgroup before results are consolidated — and
// returns:
//   - Pass, if every worker returned Pass;
//   - otherwise Fail, with the state from the first worker (in worker
//     order) that returned Fail;
//   - otherwise Incomplete, if no worker failed but at least one is
//     Incomplete.
//
// A panic in a user callback is recovered inside that worker's
// goroutine, wrapped as a *CallbackPanic, and returned as the error —
// Check does not return a CheckResult in that case.
func (c *Checker[S, A]) Check(maxCount int) (CheckResult[S], error) {
	results := make([]CheckResult[S], len(c.workers))

	var g errgroup.Group
	for i, w := range c.workers {
		i, w := i, w
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &CallbackPanic{Value: r, Stack: debug.Stack()}
				}
			}()
			results[i] = w.check(maxCount)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var zero CheckResult[S]
		return zero, err
	}

	allPassed := true
	for _, r := range results {
		if !r.Pass() {
			allPassed = false
			break
		}
	}
	if allPassed {
		return passResult[S](), nil
	}
	for _, r := range results {
		if _, _, failed := r.Failed(); failed {
			return r, nil
		}
	}
	return incompleteResult[S](), nil
}

// AdjustWorkerCount iteratively forks any worker whose frontier exceeds
// minPending until either target workers have a non-empty frontier or no
// eligible worker remains. New workers are appended; the order of
// existing workers is preserved.
func (c *Checker[S, A]) AdjustWorkerCount(target, minPending int) {
	for {
		nonEmpty := 0
		for _, w := range c.workers {
			if len(w.pending) > 0 {
				nonEmpty++
			}
		}

		var added []*worker[S, A]
		for _, w := range c.workers {
			if nonEmpty+len(added) >= target {
				break
			}
			if len(w.pending) <= minPending {
				continue
			}
			added = append(added, w.fork())
		}

		if len(added) == 0 {
			return
		}
		c.workers = append(c.workers, added...)
	}
}

// PendingCount returns the sum of every worker's frontier size. Forked
// workers may carry overlapping fingerprints, so this can overcount
// distinct pending states.
func (c *Checker[S, A]) PendingCount() int {
	n := 0
	for _, w := range c.workers {
		n += len(w.pending)
	}
	return n
}

// Sources returns the union of every worker's predecessor map. Keys that
// collide across workers may take either worker's value: each worker's
// own map is internally consistent (invariant 1 in the design doc), so
// any such choice remains functionally correct for path reconstruction.
func (c *Checker[S, A]) Sources() map[Fingerprint]*Fingerprint {
	out := make(map[Fingerprint]*Fingerprint, c.sourceCountHint())
	for _, w := range c.workers {
		for k, v := range w.sources {
			out[k] = v
		}
	}
	return out
}

func (c *Checker[S, A]) sourceCountHint() int {
	max := 0
	for _, w := range c.workers {
		if len(w.sources) > max {
			max = len(w.sources)
		}
	}
	return 2 * max
}
