package pocketcube

import "testing"

func TestSolvedCubePhase(t *testing.T) {
	if got := NewCube().DetectPhase(); got != PhaseSolved {
		t.Errorf("solved cube phase = %v", got)
	}
}

func TestSingleTurnLeavesOrientedState(t *testing.T) {
	// One R from solved keeps the left layer assembled and the right
	// face uniform, so only the last-layer permutation remains.
	c := NewCube().Apply(R)
	if got := c.DetectPhase(); got != PhaseOriented {
		t.Errorf("phase after R = %v, want %v", got, PhaseOriented)
		t.Log("\n" + c.String())
	}
}

func TestTopLayerTurnIsOriented(t *testing.T) {
	c := NewCube().Apply(U)
	if got := c.DetectPhase(); got != PhaseOriented {
		t.Errorf("phase after U = %v, want %v", got, PhaseOriented)
	}
}

func TestTwoTurnsScramble(t *testing.T) {
	c := NewCube().Apply(R).Apply(U)
	if got := c.DetectPhase(); got != PhaseScrambled {
		t.Errorf("phase after R U = %v, want %v", got, PhaseScrambled)
		t.Log("\n" + c.String())
	}
}

func TestFirstFaceDetection(t *testing.T) {
	// Up face complete but its layer broken at the front and back strips.
	c, err := ParseState("WWWW YYRO ROOB ORGY BBGR GGYB")
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if !c.HasCompleteFace() {
		t.Error("up face should count as complete")
	}
	if c.HasCompleteLayer() {
		t.Error("no layer should be complete")
	}
	if got := c.DetectPhase(); got != PhaseFirstFace {
		t.Errorf("phase = %v, want %v", got, PhaseFirstFace)
	}
}

func TestFirstLayerDetection(t *testing.T) {
	// Up layer assembled, down face not yet uniform.
	c, err := ParseState("WWWW YYRO RROB OOGY BBGR GGYB")
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if !c.HasCompleteLayer() {
		t.Error("up layer should count as complete")
	}
	if c.IsOriented() {
		t.Error("state should not count as oriented")
	}
	if got := c.DetectPhase(); got != PhaseFirstLayer {
		t.Errorf("phase = %v, want %v", got, PhaseFirstLayer)
	}
}

func TestOrientedProgress(t *testing.T) {
	got := NewCube().Apply(U).GetProgress()
	if !got.FirstFace || !got.FirstLayer || !got.Oriented {
		t.Errorf("progress after U = %+v", got)
	}
	if got.Solved {
		t.Error("one U from solved should not report solved")
	}
}

func TestSolvedProgress(t *testing.T) {
	got := NewCube().GetProgress()
	if !got.FirstFace || !got.FirstLayer || !got.Oriented || !got.Solved {
		t.Errorf("solved progress = %+v", got)
	}
}

func TestPhaseStrings(t *testing.T) {
	for _, p := range AllPhases {
		if p.String() == "unknown" {
			t.Errorf("phase %d has no string", p)
		}
		if p.DisplayName() == "Unknown" {
			t.Errorf("phase %d has no display name", p)
		}
	}
	if Phase(42).String() != "unknown" {
		t.Error("out of range phase should print unknown")
	}
	if !PhaseSolved.IsComplete() || PhaseOriented.IsComplete() {
		t.Error("IsComplete should hold for the solved phase only")
	}
}
