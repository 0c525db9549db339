// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package models holds small example state machines used to exercise
// and demonstrate the checker package.
package models

import "github.com/aclements/go-checkmate/checker"

// Guess is the action type for LinearEquation: guess that increasing x
// or y gets closer to violating the invariant.
type Guess int

const (
	IncreaseX Guess = iota
	IncreaseY
)

func (g Guess) String() string {
	switch g {
	case IncreaseX:
		return "IncreaseX"
	case IncreaseY:
		return "IncreaseY"
	default:
		return "Guess(?)"
	}
}

// Point is the state of LinearEquation: a pair of bytes that wrap
// modulo 256 under either action.
type Point struct {
	X, Y uint8
}

// LinearEquation is the toy machine from the design doc's concrete
// scenarios: starting at (0, 0), IncreaseX and IncreaseY each increment
// one coordinate modulo 256, and the invariant is that A*x + B*y != C
// (mod nothing — x and y are interpreted as plain integers 0..255, so
// the invariant can be made to fail or hold depending on A, B, C).
type LinearEquation struct {
	A, B, C int
}

var _ checker.Machine[Point, Guess] = LinearEquation{}

func (LinearEquation) InitStates() []Point {
	return []Point{{0, 0}}
}

func (LinearEquation) Actions(_ Point, out *[]Guess) {
	*out = append(*out, IncreaseX, IncreaseY)
}

func (LinearEquation) NextState(state Point, action Guess) (Point, bool) {
	switch action {
	case IncreaseX:
		return Point{state.X + 1, state.Y}, true
	case IncreaseY:
		return Point{state.X, state.Y + 1}, true
	default:
		return Point{}, false
	}
}

func (m LinearEquation) DisplayOutcome(state Point, action Guess) (string, bool) {
	next, ok := m.NextState(state, action)
	if !ok {
		return "", false
	}
	return displayPoint(next), true
}

func displayPoint(p Point) string {
	return "(" + itoa(int(p.X)) + ", " + itoa(int(p.Y)) + ")"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func (m LinearEquation) Properties() []checker.Property[Point, Guess] {
	return []checker.Property[Point, Guess]{
		{
			Name: "linear equation invariant",
			Check: func(mach checker.Machine[Point, Guess], state Point) bool {
				le := mach.(LinearEquation)
				return le.A*int(state.X)+le.B*int(state.Y) != le.C
			},
		},
	}
}
