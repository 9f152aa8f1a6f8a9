package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a recorded solving session in the database.
type Session struct {
	SessionID    string
	StartedAt    time.Time
	EndedAt      *time.Time
	DurationMs   *int64
	ScrambleText *string
	FinalState   *string
	MoveCount    *int
	Solved       *bool
	Notes        *string
	AppVersion   *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(scramble, notes, appVersion string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr, notesPtr, appVersionPtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}
	if notes != "" {
		notesPtr = &notes
	}
	if appVersion != "" {
		appVersionPtr = &appVersion
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text, notes, app_version)
		VALUES (?, ?, ?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr, notesPtr, appVersionPtr)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// End marks a session as complete, recording the final cube state and
// whether it was solved. The move count is taken from the moves table.
func (r *SessionRepository) End(sessionID, finalState string, solved bool) error {
	endedAt := time.Now().UTC()

	// Get start time to calculate duration
	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	solvedInt := 0
	if solved {
		solvedInt = 1
	}

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, final_state = ?, solved = ?,
		    move_count = (SELECT COUNT(*) FROM moves WHERE session_id = ?)
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, finalState, solvedInt, sessionID, sessionID)

	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}

// scanSession scans one session row from either QueryRow or rows.Next.
func scanSession(scan func(dest ...any) error) (*Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString
	var solved sql.NullInt64

	err := scan(
		&s.SessionID, &startedAtStr, &endedAtStr, &s.DurationMs,
		&s.ScrambleText, &s.FinalState, &s.MoveCount, &solved,
		&s.Notes, &s.AppVersion,
	)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(time.RFC3339, endedAtStr.String)
		s.EndedAt = &t
	}
	if solved.Valid {
		b := solved.Int64 != 0
		s.Solved = &b
	}

	return &s, nil
}

const sessionColumns = `session_id, started_at, ended_at, duration_ms,
		scramble_text, final_state, move_count, solved, notes, app_version`

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return s, nil
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	var sessionID string
	err := r.db.QueryRow(`
		SELECT session_id FROM sessions
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&sessionID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last session: %w", err)
	}

	return r.Get(sessionID)
}

// List retrieves recent sessions.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, nil
}

// Delete deletes a session and all related data (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	_, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// GetMoveCount returns the number of moves in a session.
func (r *SessionRepository) GetMoveCount(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get move count: %w", err)
	}
	return count, nil
}
