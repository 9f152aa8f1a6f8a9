package pocketcube

import "testing"

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("new tracker should start solved")
	}
	if tr.State() != NewCube() {
		t.Error("new tracker state should be the solved cube")
	}
}

func TestTrackerPhaseCallback(t *testing.T) {
	tr := NewTracker()

	var reached []string
	tr.SetPhaseCallback(func(p Phase, key string) {
		reached = append(reached, key)
	})

	tr.ApplyMove(R)
	tr.ApplyMove(RPrime)

	want := []string{"oriented", "solved"}
	if len(reached) != len(want) {
		t.Fatalf("callbacks = %v, want %v", reached, want)
	}
	for i := range want {
		if reached[i] != want[i] {
			t.Errorf("callback %d = %q, want %q", i, reached[i], want[i])
		}
	}
	if tr.HighestPhase() != PhaseSolved {
		t.Errorf("highest phase = %v", tr.HighestPhase())
	}
}

func TestTrackerCurrentVsHighest(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves([]Move{R, RPrime, R})

	if tr.CurrentPhase() != PhaseOriented {
		t.Errorf("current phase = %v, want %v", tr.CurrentPhase(), PhaseOriented)
	}
	if tr.HighestPhase() != PhaseSolved {
		t.Errorf("highest phase = %v, want %v", tr.HighestPhase(), PhaseSolved)
	}
	if tr.CurrentPhaseKey() != "oriented" || tr.HighestPhaseKey() != "solved" {
		t.Errorf("keys = %q %q", tr.CurrentPhaseKey(), tr.HighestPhaseKey())
	}
}

func TestTrackerProgress(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(U)

	got := tr.GetProgress()
	if !got.Oriented || got.Solved {
		t.Errorf("progress after U = %+v", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(R)

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("reset tracker should be solved")
	}
	if tr.HighestPhase() != PhaseScrambled {
		t.Errorf("highest after reset = %v", tr.HighestPhase())
	}
	if tr.StateString() != NewCube().String() {
		t.Error("reset should restore the solved net")
	}
}
