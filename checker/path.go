// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import "fmt"

// Step is one (state, action) pair in a path returned by PathTo: action
// is the action that was applied *to* state to reach the next step (or,
// for the final step, to reach the target state).
type Step[S comparable, A comparable] struct {
	State  S
	Action A
}

// ErrReconstructionFailed is returned by PathTo when the predecessor map
// is inconsistent with the machine's actual transitions — either no
// initial state matches the root of the chain, or no action reproduces a
// recorded fingerprint. Both indicate a nondeterministic callback or a
// fingerprint collision; this is a fatal condition, not one PathTo
// retries.
type ErrReconstructionFailed struct {
	Reason string
}

func (e *ErrReconstructionFailed) Error() string {
	return "checker: path reconstruction failed: " + e.Reason
}

// PathTo reconstructs the action/state path from some initial state to
// target, by walking the union of every worker's predecessor map
// backward from fingerprint(target) to an initial-state marker, then
// replaying the action generator forward to identify which action
// produced each successive fingerprint.
//
// The returned path is minimal (shortest in edges) only when the
// Checker ran with a single worker throughout the exploration; with
// multiple workers a longer path may be recorded if a shorter one was
// found by a sibling worker after a fork.
func (c *Checker[S, A]) PathTo(target S) ([]Step[S, A], error) {
	sources := c.Sources()

	// 1. Walk backward, building a stack of fingerprints with an
	// initial-state marker on top.
	var digests []Fingerprint
	cur := c.fp.Fingerprint(target)
	for {
		prev, ok := sources[cur]
		if !ok {
			return nil, &ErrReconstructionFailed{
				Reason: fmt.Sprintf("fingerprint %x has no entry in sources", cur),
			}
		}
		digests = append(digests, cur)
		if prev == nil {
			break
		}
		cur = *prev
	}

	// 2. Pop the initial-state fingerprint and find the matching
	// initial state.
	initDigest := digests[len(digests)-1]
	digests = digests[:len(digests)-1]

	var state S
	found := false
	for _, s := range c.machine.InitStates() {
		if c.fp.Fingerprint(s) == initDigest {
			state, found = s, true
			break
		}
	}
	if !found {
		return nil, &ErrReconstructionFailed{
			Reason: fmt.Sprintf("no initial state matches fingerprint %x", initDigest),
		}
	}

	// 3. Replay forward, matching each remaining fingerprint against
	// the first action that reproduces it.
	var path []Step[S, A]
	var actionsBuf []A
	for i := len(digests) - 1; i >= 0; i-- {
		want := digests[i]

		actionsBuf = actionsBuf[:0]
		c.machine.Actions(state, &actionsBuf)

		matched := false
		for _, action := range actionsBuf {
			next, ok := c.machine.NextState(state, action)
			if !ok {
				continue
			}
			if c.fp.Fingerprint(next) == want {
				path = append(path, Step[S, A]{State: state, Action: action})
				state = next
				matched = true
				break
			}
		}
		if !matched {
			return nil, &ErrReconstructionFailed{
				Reason: fmt.Sprintf("no action from the current state reproduces fingerprint %x", want),
			}
		}
	}

	return path, nil
}
