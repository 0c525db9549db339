// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker

import (
	"bytes"
	"encoding/gob"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a 64-bit digest of a state, used as its identity in the
// predecessor map. Two distinct states that happen to fingerprint to the
// same value silently collapse in the map; the checker accepts this as
// the cost of storing fingerprints instead of whole states. 64 bits is
// the design point: wide and well-mixed enough that collisions are
// astronomically unlikely for any state space this checker can
// realistically enumerate.
type Fingerprint uint64

// Fingerprinter computes a Fingerprint for a state. It must be
// deterministic: the same state must always produce the same
// Fingerprint, both within one run and across workers.
type Fingerprinter[S comparable] interface {
	Fingerprint(state S) Fingerprint
}

// fingerprintBytes is implemented by states that can render themselves
// to a stable byte encoding more cheaply than a gob round-trip (for
// example a state already backed by a []byte or a small fixed-width
// struct with an explicit layout).
type fingerprintBytes interface {
	FingerprintBytes() []byte
}

// gobFingerprinter is the default Fingerprinter: it gob-encodes the
// state and folds the resulting bytes through xxhash, a fast
// non-cryptographic 64-bit hash. Cryptographic strength is not required
// here; speed and mixing quality are what matter for a hash used purely
// as a map key.
type gobFingerprinter[S comparable] struct {
	bufPool sync.Pool
}

func newGobFingerprinter[S comparable]() *gobFingerprinter[S] {
	return &gobFingerprinter[S]{
		bufPool: sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
}

func (f *gobFingerprinter[S]) Fingerprint(state S) Fingerprint {
	if fb, ok := any(state).(fingerprintBytes); ok {
		return Fingerprint(xxhash.Sum64(fb.FingerprintBytes()))
	}

	buf := f.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer f.bufPool.Put(buf)

	if err := gob.NewEncoder(buf).Encode(state); err != nil {
		// A state type that cannot be gob-encoded and does not
		// implement FingerprintBytes is a programmer error, not a
		// runtime condition the checker can recover from.
		panic("checker: state cannot be fingerprinted: " + err.Error())
	}
	return Fingerprint(xxhash.Sum64(buf.Bytes()))
}
