// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package models

import "github.com/aclements/go-checkmate/checker"

// Slide is the action type for Puzzle: which direction a tile next to
// the empty cell slides into it (the empty cell moves the opposite way).
type Slide int

const (
	SlideDown Slide = iota
	SlideUp
	SlideRight
	SlideLeft
)

func (s Slide) String() string {
	switch s {
	case SlideDown:
		return "Down"
	case SlideUp:
		return "Up"
	case SlideRight:
		return "Right"
	case SlideLeft:
		return "Left"
	default:
		return "Slide(?)"
	}
}

// Board is the state of a 3x3 sliding puzzle: tile 0 is the empty cell,
// laid out row-major.
type Board [9]uint8

// Puzzle is the 3x3 sliding-puzzle machine: it claims the puzzle can
// never reach Solved from Initial, and the checker finds the 4-move
// counterexample that solves it.
type Puzzle struct {
	Initial Board
	Solved  Board
}

var _ checker.Machine[Board, Slide] = Puzzle{}

// DefaultPuzzle is the scenario from the design doc's concrete test
// cases.
var DefaultPuzzle = Puzzle{
	Initial: Board{1, 4, 2, 3, 5, 8, 6, 7, 0},
	Solved:  Board{0, 1, 2, 3, 4, 5, 6, 7, 8},
}

func (p Puzzle) InitStates() []Board {
	return []Board{p.Initial}
}

func (Puzzle) Actions(_ Board, out *[]Slide) {
	*out = append(*out, SlideDown, SlideUp, SlideRight, SlideLeft)
}

func (Puzzle) NextState(state Board, action Slide) (Board, bool) {
	empty := 0
	for i, v := range state {
		if v == 0 {
			empty = i
			break
		}
	}
	emptyY, emptyX := empty/3, empty%3

	from := -1
	switch action {
	case SlideDown:
		if emptyY > 0 {
			from = empty - 3 // tile above moves down into the empty cell
		}
	case SlideUp:
		if emptyY < 2 {
			from = empty + 3 // tile below moves up into the empty cell
		}
	case SlideRight:
		if emptyX > 0 {
			from = empty - 1 // tile to the left moves right
		}
	case SlideLeft:
		if emptyX < 2 {
			from = empty + 1 // tile to the right moves left
		}
	}
	if from < 0 {
		return Board{}, false
	}

	next := state
	next[empty] = state[from]
	next[from] = 0
	return next, true
}

func (Puzzle) DisplayOutcome(state Board, _ Slide) (string, bool) {
	return "", false
}

func (p Puzzle) Properties() []checker.Property[Board, Slide] {
	return []checker.Property[Board, Slide]{
		{
			Name: "unsolvable",
			Check: func(mach checker.Machine[Board, Slide], state Board) bool {
				return state != mach.(Puzzle).Solved
			},
		},
	}
}
