// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sequentialspec

// Op is one concurrent operation recorded against a system under test:
// it was invoked at real time Start and returned at real time End
// (logical timestamps are fine — only their relative order matters),
// on behalf of Thread, calling Call and observing Ret.
type Op[CallT any, Ret comparable] struct {
	Thread     int
	Start, End int64
	Call       CallT
	Ret        Ret
}

// LinearizabilityTester checks whether a recorded concurrent history is
// linearizable with respect to a Spec: is there a total order
// of the operations, consistent with each thread's own program order and
// with the real-time Start/End intervals, under which every operation's
// recorded Ret matches what invoking it against the sequential spec
// would produce.
//
// This is the classic Wing & Gong brute-force decision procedure: no
// partial-order reduction, no memoization of intermediate spec states —
// adequate for the small, hand-constructed histories this checker is
// meant to validate example systems against, consistent with this
// repo's explicit non-goal of state-space reduction techniques.
type LinearizabilityTester[CallT any, Ret comparable] struct {
	newSpec func() Spec[CallT, Ret]
}

// NewLinearizabilityTester builds a tester that, for each history it
// checks, constructs a fresh reference object via newSpec.
func NewLinearizabilityTester[CallT any, Ret comparable](newSpec func() Spec[CallT, Ret]) *LinearizabilityTester[CallT, Ret] {
	return &LinearizabilityTester[CallT, Ret]{newSpec: newSpec}
}

// IsLinearizable reports whether history admits a linearization.
func (t *LinearizabilityTester[CallT, Ret]) IsLinearizable(history []Op[CallT, Ret]) bool {
	used := make([]bool, len(history))
	return t.search(history, used, t.newSpec())
}

func (t *LinearizabilityTester[CallT, Ret]) search(history []Op[CallT, Ret], used []bool, spec Spec[CallT, Ret]) bool {
	allUsed := true
	for _, u := range used {
		if !u {
			allUsed = false
			break
		}
	}
	if allUsed {
		return true
	}

	for i := range history {
		if used[i] || !t.eligible(history, used, i) {
			continue
		}

		next := spec.Clone()
		if history[i].Ret != next.Invoke(history[i].Call) {
			continue
		}

		used[i] = true
		if t.search(history, used, next) {
			used[i] = false
			return true
		}
		used[i] = false
	}
	return false
}

// eligible reports whether op i of history can be linearized next given
// which operations are already used: it must be the earliest not-yet-used
// operation of its own thread, and no not-yet-used operation from
// another thread may have a real-time interval that strictly precedes
// it (such an operation would be forced to linearize first).
func (t *LinearizabilityTester[CallT, Ret]) eligible(history []Op[CallT, Ret], used []bool, i int) bool {
	op := history[i]
	for j, other := range history {
		if used[j] || j == i {
			continue
		}
		if other.Thread == op.Thread && other.Start < op.Start {
			return false
		}
		if other.Thread != op.Thread && other.End < op.Start {
			return false
		}
	}
	return true
}

