package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

// Status represents the current state of a recording session.
type Status int

const (
	StatusIdle Status = iota
	StatusRecording
	StatusEnded
)

// String returns the string representation of the recorder status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRecording:
		return "recording"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Recorder writes the moves and phase transitions of a live session to
// the database. It is driven either directly (RecordMove/RecordPhase)
// or by attaching it to a pocketcube.Session.
type Recorder struct {
	db        *storage.DB
	stateFile *StateFile

	mu        sync.Mutex
	status    Status
	sessionID string
	startTime time.Time
	moveIndex int

	sessions *storage.SessionRepository
	moves    *storage.MoveRepository
	phases   *storage.PhaseRepository
}

// New creates a recorder backed by the given database.
func New(db *storage.DB, stateFile *StateFile) *Recorder {
	return &Recorder{
		db:        db,
		stateFile: stateFile,
		status:    StatusIdle,
		sessions:  storage.NewSessionRepository(db),
		moves:     storage.NewMoveRepository(db),
		phases:    storage.NewPhaseRepository(db),
	}
}

// Status returns the current recorder status.
func (r *Recorder) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// SessionID returns the current session ID.
func (r *Recorder) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

// MoveCount returns the number of moves recorded so far.
func (r *Recorder) MoveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.moveIndex
}

// Start begins a new recording session and returns its ID.
func (r *Recorder) Start(scramble, notes, appVersion string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status == StatusRecording {
		return "", fmt.Errorf("session already in progress")
	}

	sessionID, err := r.sessions.Create(scramble, notes, appVersion)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r.sessionID = sessionID
	r.startTime = time.Now()
	r.moveIndex = 0
	r.status = StatusRecording

	if r.stateFile != nil {
		_ = r.stateFile.SetActiveSession(sessionID)
	}

	return sessionID, nil
}

// End finishes the current session, recording the final cube state and
// whether it ended solved.
func (r *Recorder) End(finalState string, solved bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusRecording {
		return fmt.Errorf("no session in progress")
	}

	if err := r.sessions.End(r.sessionID, finalState, solved); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	r.status = StatusEnded

	if r.stateFile != nil {
		_ = r.stateFile.ClearActiveSession()
	}

	return nil
}

// RecordMove writes one move to the database. The timestamp is taken
// from the move itself when set, otherwise from the wall clock.
func (r *Recorder) RecordMove(move pocketcube.Move) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusRecording {
		return nil
	}

	tsMs := r.tsFor(move)
	if _, err := r.moves.Create(r.sessionID, r.moveIndex, tsMs, move); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	r.moveIndex++

	return nil
}

// RecordPhase writes one phase transition to the database.
func (r *Recorder) RecordPhase(phase pocketcube.Phase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusRecording {
		return nil
	}

	tsMs := time.Since(r.startTime).Milliseconds()
	if _, err := r.phases.Create(r.sessionID, tsMs, r.moveIndex, phase.String()); err != nil {
		return fmt.Errorf("failed to store phase event: %w", err)
	}

	return nil
}

// tsFor derives the session-relative timestamp for a move.
// Callers must hold r.mu.
func (r *Recorder) tsFor(move pocketcube.Move) int64 {
	if !move.Time.IsZero() {
		ts := move.Time.Sub(r.startTime).Milliseconds()
		if ts >= 0 {
			return ts
		}
	}
	return time.Since(r.startTime).Milliseconds()
}

// Attach wires the recorder into a session's callbacks so that every
// applied move and phase transition is persisted. Existing callbacks
// are replaced.
func (r *Recorder) Attach(s *pocketcube.Session) {
	s.OnMove(func(m pocketcube.Move, _ pocketcube.State) {
		_ = r.RecordMove(m)
	})
	s.OnPhaseChange(func(p pocketcube.Phase) {
		_ = r.RecordPhase(p)
	})
}

// Resume attempts to continue an interrupted session.
func (r *Recorder) Resume(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.sessions.Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}
	if session.EndedAt != nil {
		return fmt.Errorf("session already ended")
	}

	nextIndex, err := r.moves.GetNextIndex(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get next move index: %w", err)
	}

	r.sessionID = sessionID
	r.startTime = session.StartedAt
	r.moveIndex = nextIndex
	r.status = StatusRecording

	return nil
}
