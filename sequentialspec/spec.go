// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sequentialspec defines the contract for specifying a
// concurrent system's correctness via a sequential reference
// implementation (e.g. "this system should behave like a queue"), and a
// small brute-force linearizability tester built on that contract.
//
// This framework is a collaborator of the reachability engine in
// package checker, not a consumer of it: a Spec is invoked
// directly against a recorded history of operations, independent of any
// BFS exploration. The two can be composed — a Machine's Properties can
// call into a LinearizabilityTester to check linearizability of a simulated
// concurrent history at each reachable state — but neither package
// imports the other.
package sequentialspec

// Spec is a sequential "reference object" against which the behavior of
// a more complex (typically concurrent) system is validated. Op is the
// operation type (often an enum of request kinds) and Ret is the
// corresponding return type.
type Spec[Op any, Ret comparable] interface {
	// Invoke applies op to the reference object and returns the result
	// it produces.
	Invoke(op Op) Ret

	// Clone returns an independent copy of the reference object, so a
	// search over possible operation orderings (see
	// LinearizabilityTester) can try one speculative Invoke and
	// backtrack without disturbing the original.
	Clone() Spec[Op, Ret]
}

// Entry is one recorded (operation, result) pair from a concurrent
// history, attributed to a thread (process) ID.
type Entry[Op any, Ret comparable] struct {
	Thread int
	Op     Op
	Ret    Ret
}

// IsValidHistory reports whether every step of a strictly sequential
// history is valid against spec — i.e. invoking ops[i].Op on the
// reference object always yields ops[i].Ret. This is the degenerate,
// already-ordered case; LinearizabilityTester does not call it and
// performs its own Invoke-and-compare step while searching for a valid
// interleaving of a concurrent history.
func IsValidHistory[Op any, Ret comparable](spec Spec[Op, Ret], ops []Entry[Op, Ret]) bool {
	for _, e := range ops {
		if spec.Invoke(e.Op) != e.Ret {
			return false
		}
	}
	return true
}
