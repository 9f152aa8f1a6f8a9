package pocketcube

import (
	"math/rand"
	"sync"
	"testing"
)

func TestSessionApplyAndHistory(t *testing.T) {
	s := NewSession()
	s.Apply(R, U, RPrime, UPrime)

	moves := s.Moves()
	if len(moves) != 4 {
		t.Fatalf("history length = %d, want 4", len(moves))
	}
	if got := FormatMoves(moves); got != "R U R' U'" {
		t.Errorf("history = %q", got)
	}
	for i, m := range moves {
		if m.Time.IsZero() {
			t.Errorf("move %d missing timestamp", i)
		}
	}
}

func TestSessionSnapshotIsStable(t *testing.T) {
	s := NewSession()
	s.Apply(R)
	snap := s.State()

	s.Apply(U, F, D)
	if snap != NewCube().Apply(R) {
		t.Error("snapshot changed after later moves")
	}
}

func TestSessionApplyNotation(t *testing.T) {
	s := NewSession()
	state, err := s.ApplyNotation("R U R' U'")
	if err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	if state.IsSolved() {
		t.Error("one sexy move should leave the cube unsolved")
	}
	if state != NewCube().ApplyMoves(SexyMove) {
		t.Error("notation application should match direct application")
	}
}

func TestSessionApplyNotationRejectsUnknown(t *testing.T) {
	s := NewSession()
	if _, err := s.ApplyNotation("R U X"); err == nil {
		t.Fatal("unknown token should be rejected")
	}
	if !s.State().IsSolved() {
		t.Error("rejected sequence must leave the state untouched")
	}
	if len(s.Moves()) != 0 {
		t.Error("rejected sequence must not enter the history")
	}
}

func TestSessionUndo(t *testing.T) {
	s := NewSession()
	s.Apply(R, U)

	undone, ok := s.Undo()
	if !ok || undone.Face != FaceU || undone.Turn != CW {
		t.Fatalf("undo = %s, %v", undone.Notation(), ok)
	}
	if s.State() != NewCube().Apply(R) {
		t.Error("undo should restore the pre-move state")
	}

	s.Undo()
	if !s.IsSolved() {
		t.Error("undoing everything should return to solved")
	}
	if _, ok := s.Undo(); ok {
		t.Error("undo on empty history should report false")
	}
}

func TestSessionOnSolvedFires(t *testing.T) {
	s := NewSession()
	solved := 0
	s.OnSolved(func() { solved++ })

	s.Apply(R)
	if solved != 0 {
		t.Fatal("solved callback fired while unsolved")
	}
	s.Apply(RPrime)
	if solved != 1 {
		t.Errorf("solved callback fired %d times, want 1", solved)
	}
}

func TestSessionOnMove(t *testing.T) {
	s := NewSession()
	var got []Move
	var lastState State
	s.OnMove(func(m Move, st State) {
		got = append(got, m)
		lastState = st
	})

	s.Apply(R, U)
	if len(got) != 2 {
		t.Fatalf("move callback fired %d times, want 2", len(got))
	}
	if got[0].Face != FaceR || got[1].Face != FaceU {
		t.Errorf("callback moves = %s %s", got[0].Notation(), got[1].Notation())
	}
	if lastState != s.State() {
		t.Error("callback state should match the session state")
	}
}

func TestSessionOnPhaseChangeMonotonic(t *testing.T) {
	s := NewSession()
	var phases []Phase
	s.OnPhaseChange(func(p Phase) { phases = append(phases, p) })

	s.Apply(R)      // oriented
	s.Apply(RPrime) // solved
	s.Apply(R)      // oriented again: highest stays solved, no callback

	want := []Phase{PhaseOriented, PhaseSolved}
	if len(phases) != len(want) {
		t.Fatalf("phase callbacks = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("callback %d = %v, want %v", i, phases[i], want[i])
		}
	}
	if s.HighestPhase() != PhaseSolved {
		t.Errorf("highest phase = %v", s.HighestPhase())
	}
	if s.Phase() != PhaseOriented {
		t.Errorf("current phase = %v", s.Phase())
	}
}

func TestSessionWithoutPhaseDetection(t *testing.T) {
	s := NewSession(WithPhaseDetection(false))
	fired := false
	s.OnPhaseChange(func(Phase) { fired = true })

	s.Apply(R, RPrime)
	if fired {
		t.Error("phase callback fired with detection disabled")
	}
	if s.HighestPhase() != PhaseScrambled {
		t.Errorf("highest phase = %v, want %v", s.HighestPhase(), PhaseScrambled)
	}
}

func TestSessionScramble(t *testing.T) {
	s := NewSession(WithRand(rand.New(rand.NewSource(3))))
	moves := s.Scramble(10)
	if len(moves) != 10 {
		t.Fatalf("scramble length = %d", len(moves))
	}
	if len(s.Moves()) != 10 {
		t.Errorf("history length = %d", len(s.Moves()))
	}

	s.Apply(InverseMoves(moves)...)
	if !s.IsSolved() {
		t.Error("applying the inverse scramble should solve the cube")
	}
}

func TestSessionScrambleDefaultLength(t *testing.T) {
	s := NewSession(WithRand(rand.New(rand.NewSource(4))))
	if got := len(s.Scramble(0)); got != DefaultScrambleLength {
		t.Errorf("default scramble length = %d, want %d", got, DefaultScrambleLength)
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.Apply(R, U, F)

	s.Reset()
	if !s.IsSolved() {
		t.Error("reset should return to solved")
	}
	if len(s.Moves()) != 3 {
		t.Error("reset should preserve history")
	}

	s.ClearHistory()
	if len(s.Moves()) != 0 {
		t.Error("ClearHistory should drop the history")
	}
}

func TestSessionWithoutHistory(t *testing.T) {
	s := NewSession(WithMoveHistory(false))
	s.Apply(R, U)
	if len(s.Moves()) != 0 {
		t.Error("history disabled should record nothing")
	}
}

func TestSessionResetPhaseTracking(t *testing.T) {
	s := NewSession(WithRand(rand.New(rand.NewSource(5))))
	moves := s.Scramble(10)
	if s.HighestPhase() == PhaseScrambled {
		t.Fatal("scrambling from solved should have passed through a phase")
	}

	s.ResetPhaseTracking()
	if s.HighestPhase() != PhaseScrambled {
		t.Fatalf("highest phase = %v after reset", s.HighestPhase())
	}

	var phases []Phase
	s.OnPhaseChange(func(p Phase) { phases = append(phases, p) })
	s.Apply(InverseMoves(moves)...)

	if !s.IsSolved() {
		t.Fatal("inverse scramble should solve the cube")
	}
	if len(phases) == 0 || phases[len(phases)-1] != PhaseSolved {
		t.Errorf("phase callbacks = %v, want a run ending in %v", phases, PhaseSolved)
	}
}

func TestSessionConcurrentAccess(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Apply(R)
				_ = s.State()
				_ = s.IsSolved()
			}
		}()
	}
	wg.Wait()

	if got := len(s.Moves()); got != 400 {
		t.Errorf("history length = %d, want 400", got)
	}
	if s.State() != NewCube() {
		t.Error("400 R turns should return to the solved cube")
	}
}
