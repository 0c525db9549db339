// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

// CheckResult is the outcome of one bounded checking pass.
type CheckResult[S comparable] struct {
	kind   resultKind
	state  S
	reason string
}

type resultKind int

const (
	resultPass resultKind = iota
	resultIncomplete
	resultFail
)

// Pass reports whether result indicates the invariant held across the
// entire reachable state space explored so far.
func (r CheckResult[S]) Pass() bool { return r.kind == resultPass }

// Incomplete reports whether the pass exhausted its budget with states
// still pending.
func (r CheckResult[S]) Incomplete() bool { return r.kind == resultIncomplete }

// Failed reports whether a property was violated, and if so the
// violating state and the name of the property that failed.
func (r CheckResult[S]) Failed() (state S, propertyName string, failed bool) {
	return r.state, r.reason, r.kind == resultFail
}

func passResult[S comparable]() CheckResult[S] { return CheckResult[S]{kind: resultPass} }

func incompleteResult[S comparable]() CheckResult[S] { return CheckResult[S]{kind: resultIncomplete} }

func failResult[S comparable](state S, propertyName string) CheckResult[S] {
	return CheckResult[S]{kind: resultFail, state: state, reason: propertyName}
}

// worker owns one BFS frontier and one fingerprint-to-predecessor map.
// It is the unit of exploration that a Checker runs in parallel and
// forks to split work.
type worker[S comparable, A comparable] struct {
	machine Machine[S, A]
	props   []Property[S, A]
	fp      Fingerprinter[S]

	pending []S                        // FIFO frontier: append at tail, pop from head
	sources map[Fingerprint]*Fingerprint // nil value means "initial state"
}

func newWorker[S comparable, A comparable](m Machine[S, A], props []Property[S, A], fp Fingerprinter[S]) *worker[S, A] {
	w := &worker[S, A]{
		machine: m,
		props:   props,
		fp:      fp,
		sources: make(map[Fingerprint]*Fingerprint, 1024),
	}
	for _, init := range m.InitStates() {
		d := fp.Fingerprint(init)
		if _, seen := w.sources[d]; !seen {
			w.sources[d] = nil
			w.pending = append(w.pending, init)
		}
	}
	return w
}

// check pops and expands up to maxCount states. See Checker.Check for
// the documented semantics of the three possible results.
func (w *worker[S, A]) check(maxCount int) CheckResult[S] {
	var actionsBuf []A

	for remaining := maxCount; len(w.pending) > 0; {
		state := w.pending[0]
		w.pending = w.pending[1:]
		digest := w.fp.Fingerprint(state)

		// 1. Expand: record and enqueue every not-yet-seen successor
		// before evaluating the invariant, so that a failure below
		// does not lose the children of the failing state — a
		// resumed check continues past them.
		actionsBuf = actionsBuf[:0]
		w.machine.Actions(state, &actionsBuf)
		for _, action := range actionsBuf {
			next, ok := w.machine.NextState(state, action)
			if !ok {
				continue
			}
			nextDigest := w.fp.Fingerprint(next)
			if _, seen := w.sources[nextDigest]; seen {
				continue
			}
			src := digest
			w.sources[nextDigest] = &src
			w.pending = append(w.pending, next)
		}

		// 2. Evaluate the invariant on the popped state, after
		// expansion.
		if name, ok := combinedInvariant(w.machine, w.props, state); !ok {
			return failResult[S](state, name)
		}

		// 3. Budget accounting: counts states popped, not generated.
		remaining--
		if remaining == 0 {
			if len(w.pending) > 0 {
				return incompleteResult[S]()
			}
			return passResult[S]()
		}
	}

	return passResult[S]()
}

// fork splits the frontier in half (the tail half goes to the sibling)
// and deep-copies the predecessor map so each worker can mutate its own
// copy without synchronization. Both workers keep the same machine,
// properties, and fingerprinter — those are read-only.
func (w *worker[S, A]) fork() *worker[S, A] {
	mid := len(w.pending) / 2
	tail := append([]S(nil), w.pending[mid:]...)
	w.pending = w.pending[:mid]

	cloned := make(map[Fingerprint]*Fingerprint, len(w.sources))
	for k, v := range w.sources {
		cloned[k] = v
	}

	return &worker[S, A]{
		machine: w.machine,
		props:   w.props,
		fp:      w.fp,
		pending: tail,
		sources: cloned,
	}
}
