// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checker_test

import (
	"testing"

	"github.com/aclements/go-checkmate/checker"
	"github.com/aclements/go-checkmate/models"
)

func TestLinearEquationFailsAndReconstructsPath(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 10, C: 14})

	result, err := c.Check(100_000)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	state, _, failed := result.Failed()
	if !failed {
		t.Fatalf("Check: want Fail, got %+v", result)
	}
	if state != (models.Point{X: 2, Y: 1}) {
		t.Fatalf("Check: want Fail{(2,1)}, got Fail{%v}", state)
	}

	path, err := c.PathTo(state)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	want := []checker.Step[models.Point, models.Guess]{
		{State: models.Point{X: 0, Y: 0}, Action: models.IncreaseX},
		{State: models.Point{X: 1, Y: 0}, Action: models.IncreaseX},
		{State: models.Point{X: 2, Y: 0}, Action: models.IncreaseY},
	}
	if len(path) != len(want) {
		t.Fatalf("PathTo: want %d steps, got %d: %+v", len(want), len(path), path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("PathTo[%d]: want %+v, got %+v", i, want[i], path[i])
		}
	}
}

func TestLinearEquationCanPass(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 4, C: 7})

	result, err := c.Check(100)
	if err != nil {
		t.Fatalf("Check(100): %v", err)
	}
	if !result.Incomplete() {
		t.Fatalf("Check(100): want Incomplete, got %+v", result)
	}
	if n := len(c.Sources()); n != 115 {
		t.Errorf("len(Sources()) after Check(100): want 115, got %d", n)
	}

	result, err = c.Check(100_000)
	if err != nil {
		t.Fatalf("Check(100000): %v", err)
	}
	if !result.Pass() {
		t.Fatalf("Check(100000): want Pass, got %+v", result)
	}
	if n := len(c.Sources()); n != 256*256 {
		t.Errorf("len(Sources()) after Check(100000): want %d, got %d", 256*256, n)
	}
}

func TestLinearEquationCanFail(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 7, C: 111})

	result, err := c.Check(100)
	if err != nil {
		t.Fatalf("Check(100): %v", err)
	}
	if !result.Incomplete() {
		t.Fatalf("Check(100): want Incomplete, got %+v", result)
	}
	if n := len(c.Sources()); n != 115 {
		t.Errorf("len(Sources()) after Check(100): want 115, got %d", n)
	}

	result, err = c.Check(100_000)
	if err != nil {
		t.Fatalf("Check(100000): %v", err)
	}
	state, _, failed := result.Failed()
	if !failed || state != (models.Point{X: 3, Y: 15}) {
		t.Fatalf("Check(100000): want Fail{(3,15)}, got %+v", result)
	}
	if n := len(c.Sources()); n != 207 {
		t.Errorf("len(Sources()) after Check(100000): want 207, got %d", n)
	}
}

func TestLinearEquationResumesAfterFailing(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 0, B: 0, C: 0})

	want := []models.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 2, Y: 0},
		{X: 1, Y: 1},
	}
	for i, w := range want {
		result, err := c.Check(100)
		if err != nil {
			t.Fatalf("Check #%d: %v", i, err)
		}
		state, _, failed := result.Failed()
		if !failed {
			t.Fatalf("Check #%d: want Fail, got %+v", i, result)
		}
		if state != w {
			t.Errorf("Check #%d: want Fail{%v}, got Fail{%v}", i, w, state)
		}
	}
}

func TestPuzzleSolvesIn4Moves(t *testing.T) {
	c := checker.New[models.Board, models.Slide](models.DefaultPuzzle)

	result, err := c.Check(100)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	state, _, failed := result.Failed()
	if !failed {
		t.Fatalf("Check: want Fail, got %+v", result)
	}
	if state != models.DefaultPuzzle.Solved {
		t.Fatalf("Check: want Fail{solved}, got Fail{%v}", state)
	}

	path, err := c.PathTo(state)
	if err != nil {
		t.Fatalf("PathTo: %v", err)
	}
	wantActions := []models.Slide{models.SlideDown, models.SlideRight, models.SlideDown, models.SlideRight}
	if len(path) != len(wantActions) {
		t.Fatalf("PathTo: want %d steps, got %d: %+v", len(wantActions), len(path), path)
	}
	for i, a := range wantActions {
		if path[i].Action != a {
			t.Errorf("PathTo[%d].Action: want %v, got %v", i, a, path[i].Action)
		}
	}
}

func TestDeduplication(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 4, C: 7})
	if _, err := c.Check(100_000); err != nil {
		t.Fatalf("Check: %v", err)
	}
	seen := make(map[checker.Fingerprint]bool)
	for k := range c.Sources() {
		if seen[k] {
			t.Fatalf("fingerprint %x appears more than once in Sources()", k)
		}
		seen[k] = true
	}
}

func TestMonotonicSources(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 4, C: 7})
	last := 0
	for i := 0; i < 5; i++ {
		result, err := c.Check(100)
		if err != nil {
			t.Fatalf("Check #%d: %v", i, err)
		}
		n := len(c.Sources())
		if n < last {
			t.Fatalf("Check #%d: len(Sources()) decreased from %d to %d", i, last, n)
		}
		last = n
		if result.Pass() {
			break
		}
	}
}

// TestAdjustWorkerCountStillReachesAllStates forks the checker into
// several workers mid-exploration and checks that the full reachable set
// is still found — forking duplicates some exploration but must never
// lose states (worker.fork's predecessor map is deep-copied, not
// shared).
func TestAdjustWorkerCountStillReachesAllStates(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 4, C: 7})

	result, err := c.Check(50)
	if err != nil {
		t.Fatalf("Check(50): %v", err)
	}
	if !result.Incomplete() {
		t.Fatalf("Check(50): want Incomplete, got %+v", result)
	}

	c.AdjustWorkerCount(4, 1)
	if n := c.PendingCount(); n == 0 {
		t.Fatalf("PendingCount after AdjustWorkerCount: want > 0, got 0")
	}

	for {
		result, err = c.Check(1000)
		if err != nil {
			t.Fatalf("Check(1000): %v", err)
		}
		if result.Pass() {
			break
		}
		if _, _, failed := result.Failed(); failed {
			t.Fatalf("Check(1000): unexpected Fail: %+v", result)
		}
	}
	if n := len(c.Sources()); n != 256*256 {
		t.Errorf("len(Sources()) after forked exploration completes: want %d, got %d", 256*256, n)
	}
}

// panicMachine is a models.LinearEquation-shaped machine whose single
// property panics instead of returning false, to exercise Check's
// CallbackPanic propagation.
type panicMachine struct {
	models.LinearEquation
}

func (panicMachine) Properties() []checker.Property[models.Point, models.Guess] {
	return []checker.Property[models.Point, models.Guess]{
		{
			Name: "panics",
			Check: func(checker.Machine[models.Point, models.Guess], models.Point) bool {
				panic("boom")
			},
		},
	}
}

func TestCheckPropagatesCallbackPanic(t *testing.T) {
	c := checker.New[models.Point, models.Guess](panicMachine{models.LinearEquation{A: 1, B: 1, C: 1000}})

	_, err := c.Check(10)
	if err == nil {
		t.Fatalf("Check: want a propagated panic error, got nil")
	}
	var cp *checker.CallbackPanic
	if !errorsAs(err, &cp) {
		t.Fatalf("Check: want *checker.CallbackPanic, got %T: %v", err, err)
	}
	if cp.Value != "boom" {
		t.Errorf("CallbackPanic.Value: want %q, got %v", "boom", cp.Value)
	}
}

func errorsAs(err error, target **checker.CallbackPanic) bool {
	cp, ok := err.(*checker.CallbackPanic)
	if ok {
		*target = cp
	}
	return ok
}

func TestPathToFailsOnUnknownFingerprint(t *testing.T) {
	c := checker.New[models.Point, models.Guess](models.LinearEquation{A: 2, B: 4, C: 7})
	if _, err := c.Check(100); err != nil {
		t.Fatalf("Check: %v", err)
	}

	// (255, 255) is never reached by this machine's actions from (0,0)
	// within the explored budget's BFS order in a way that would put it
	// in sources, so PathTo on it must fail instead of fabricating a
	// path.
	_, err := c.PathTo(models.Point{X: 255, Y: 255})
	if err == nil {
		t.Fatalf("PathTo: want ErrReconstructionFailed for an unreached state, got nil")
	}
	var rf *checker.ErrReconstructionFailed
	if !errorsAsReconstruction(err, &rf) {
		t.Fatalf("PathTo: want *checker.ErrReconstructionFailed, got %T: %v", err, err)
	}
}

func errorsAsReconstruction(err error, target **checker.ErrReconstructionFailed) bool {
	rf, ok := err.(*checker.ErrReconstructionFailed)
	if ok {
		*target = rf
	}
	return ok
}
