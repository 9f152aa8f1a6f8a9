package pocketcube

// Tracker wraps a cube state and provides phase change detection.
type Tracker struct {
	state         State
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase, phaseKey string)
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		state:     NewCube(),
		lastPhase: PhaseSolved,
	}
}

// SetPhaseCallback sets a callback that fires when a new phase is reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase, phaseKey string)) {
	t.phaseCallback = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.state = NewCube()
	t.lastPhase = PhaseSolved
	t.highestPhase = PhaseScrambled // Start at lowest phase
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) {
	t.state = t.state.Apply(m)
	t.checkPhaseTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// checkPhaseTransition checks if a new phase has been reached.
func (t *Tracker) checkPhaseTransition() {
	currentPhase := t.state.DetectPhase()

	// Track current state for display purposes
	t.lastPhase = currentPhase

	// Only trigger callback and update highest phase when reaching a NEW high
	// (phase values are ordered from scrambled to solved)
	// This is monotonic - once you've reached a phase, we don't go backwards
	if currentPhase > t.highestPhase {
		t.highestPhase = currentPhase
		if t.phaseCallback != nil {
			t.phaseCallback(currentPhase, currentPhase.String())
		}
	}
}

// CurrentPhase returns the current detected phase.
func (t *Tracker) CurrentPhase() Phase {
	return t.state.DetectPhase()
}

// CurrentPhaseKey returns the current phase as a key string.
// This reflects the raw cube state and may go backwards during solving.
func (t *Tracker) CurrentPhaseKey() string {
	return t.CurrentPhase().String()
}

// HighestPhaseKey returns the highest phase reached as a key string.
// This is monotonic and never goes backwards - use for phase marking.
func (t *Tracker) HighestPhaseKey() string {
	return t.highestPhase.String()
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// GetProgress returns the detailed progress.
func (t *Tracker) GetProgress() Progress {
	return t.state.GetProgress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}

// State returns a snapshot of the tracked state.
func (t *Tracker) State() State {
	return t.state
}

// StateString returns a string representation of the cube.
func (t *Tracker) StateString() string {
	return t.state.String()
}
