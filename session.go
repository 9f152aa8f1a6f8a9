package pocketcube

import (
	"sync"
	"time"
)

// Session owns one cube state and serializes access to it. Moves pass
// through a single writer holding the lock; readers receive value
// snapshots, so no caller ever observes a half-applied move.
//
// Create a Session with NewSession:
//
//	s := pocketcube.NewSession()
//	s.OnSolved(func() {
//	    fmt.Println("solved!")
//	})
//	s.Apply(pocketcube.R, pocketcube.U)
//
// Session maintains the current State internally. Access it with the
// State method.
type Session struct {
	mu           sync.RWMutex
	state        State
	moveHistory  []Move
	highestPhase Phase
	config       *config

	// Callbacks
	onMove        func(Move, State)
	onPhaseChange func(Phase)
	onSolved      func()
}

// NewSession creates a session holding a solved cube.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Session{
		state:        NewCube(),
		moveHistory:  make([]Move, 0),
		highestPhase: PhaseScrambled,
		config:       cfg,
	}
}

// Event callbacks

// OnMove sets a callback that fires after each applied move with the
// move and the state that followed it.
func (s *Session) OnMove(cb func(Move, State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMove = cb
}

// OnPhaseChange sets a callback that fires when a new solving phase is
// reached. The callback receives the newly reached phase.
func (s *Session) OnPhaseChange(cb func(Phase)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onPhaseChange = cb
}

// OnSolved sets a callback that fires when the cube reaches the solved
// state after not being solved.
func (s *Session) OnSolved(cb func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSolved = cb
}

// State access

// State returns a snapshot of the current cube state.
// The snapshot is a value; later moves do not affect it.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Phase returns the current solving phase.
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.DetectPhase()
}

// HighestPhase returns the highest phase reached since creation or the
// last reset. This is monotonic - it never goes backwards.
func (s *Session) HighestPhase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highestPhase
}

// IsSolved returns true if the cube is currently solved.
func (s *Session) IsSolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsSolved()
}

// Moves returns the move history since creation or last clear.
func (s *Session) Moves() []Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Move, len(s.moveHistory))
	copy(result, s.moveHistory)
	return result
}

// Applying moves

// Apply applies moves in order and returns the resulting state.
func (s *Session) Apply(moves ...Move) State {
	for _, m := range moves {
		s.applyOne(m)
	}
	return s.State()
}

// ApplyNotation parses and applies a move sequence. An unknown token
// rejects the whole string and the cube state is left untouched.
func (s *Session) ApplyNotation(notation string) (State, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return s.State(), err
	}
	return s.Apply(moves...), nil
}

func (s *Session) applyOne(m Move) {
	if m.Time.IsZero() {
		m = m.WithTime(time.Now())
	}

	s.mu.Lock()
	s.state = s.state.Apply(m)
	next := s.state
	if s.config.moveHistory {
		s.moveHistory = append(s.moveHistory, m)
	}

	moveCallback := s.onMove
	phaseCallback := s.onPhaseChange
	solvedCallback := s.onSolved

	var currentPhase Phase
	phaseChanged := false
	isSolved := false
	if s.config.phaseDetection {
		currentPhase = next.DetectPhase()
		isSolved = currentPhase == PhaseSolved
		phaseChanged = currentPhase > s.highestPhase
		if phaseChanged {
			s.highestPhase = currentPhase
		}
	}
	s.mu.Unlock()

	// Fire callbacks outside the lock
	if moveCallback != nil {
		moveCallback(m, next)
	}
	if phaseChanged && phaseCallback != nil {
		phaseCallback(currentPhase)
	}
	if isSolved && phaseChanged && solvedCallback != nil {
		solvedCallback()
	}
}

// Scramble applies n random moves and returns them. The moves are
// recorded in the history like any others. If n is not positive,
// DefaultScrambleLength is used.
func (s *Session) Scramble(n int) []Move {
	if n <= 0 {
		n = DefaultScrambleLength
	}
	moves := scrambleMoves(s.config.rng, n)
	s.Apply(moves...)
	return moves
}

// Undo reverts the most recent move by applying its inverse. It returns
// the undone move, or false if the history is empty. Callbacks do not
// fire for undo.
func (s *Session) Undo() (Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.moveHistory)
	if n == 0 {
		return Move{}, false
	}
	last := s.moveHistory[n-1]
	s.moveHistory = s.moveHistory[:n-1]
	s.state = s.state.Apply(last.Inverse())
	return last, true
}

// Control

// Reset returns the session to a solved cube and restarts phase
// tracking. The move history is preserved; use ClearHistory to drop it.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NewCube()
	s.highestPhase = PhaseScrambled
}

// ClearHistory clears the move history.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.moveHistory = make([]Move, 0)
}

// ResetPhaseTracking restarts phase tracking without touching the cube.
// A scramble passes through near-solved states and saturates the highest
// phase; call this after scrambling so the following solve reports each
// phase as it is reached.
func (s *Session) ResetPhaseTracking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.highestPhase = PhaseScrambled
}
