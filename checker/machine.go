// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checker implements an explicit-state model checker: given a
// state machine and a safety invariant, it BFS-explores every reachable
// state and either proves the invariant, returns a counterexample with a
// reconstructed path, or reports that a bounded pass ran out of budget.
package checker

// Machine is the contract a state machine must satisfy to be checked.
// S is the state type and A is the action type; both must support
// equality so that the checker can compare, deduplicate, and (for S)
// fingerprint them.
type Machine[S comparable, A comparable] interface {
	// InitStates returns the starting states. May be empty, in which
	// case Check returns Pass immediately.
	InitStates() []S

	// Actions appends every action enabled in state to out. out is
	// reused across calls by the caller for efficiency; implementations
	// must only append, never retain out past the call.
	Actions(state S, out *[]A)

	// NextState returns the state reached by applying action to state,
	// or ok=false if the action does not actually apply in this state.
	NextState(state S, action A) (next S, ok bool)

	// DisplayOutcome optionally renders a human-readable annotation of
	// what action did to state, for use in reports. ok=false means no
	// annotation is available.
	DisplayOutcome(state S, action A) (outcome string, ok bool)

	// Properties returns the always-invariant predicates that must hold
	// on every reachable state. Check fails as soon as any one of them
	// returns false for a popped state.
	Properties() []Property[S, A]
}

// Property is a named always-invariant predicate over a machine and one
// of its states. The Machine parameter lets a property read fields of
// the machine itself (e.g. configuration constants used by Check).
type Property[S comparable, A comparable] struct {
	Name string
	Check func(m Machine[S, A], state S) bool
}

// combinedInvariant is the single combined predicate worker.check
// evaluates against a popped state: it fails (returns the name of) the
// first Property whose Check returns false.
func combinedInvariant[S comparable, A comparable](m Machine[S, A], props []Property[S, A], state S) (failed string, ok bool) {
	for _, p := range props {
		if !p.Check(m, state) {
			return p.Name, false
		}
	}
	return "", true
}
