package storage

import (
	"fmt"
)

// PhaseEvent represents a phase transition detected during a session.
type PhaseEvent struct {
	PhaseEventID int64
	SessionID    string
	TsMs         int64
	MoveIndex    int
	PhaseKey     string
}

// PhaseRepository provides CRUD operations for phase events.
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// Create records a phase transition.
func (r *PhaseRepository) Create(sessionID string, tsMs int64, moveIndex int, phaseKey string) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO phase_events (session_id, ts_ms, move_index, phase_key)
		VALUES (?, ?, ?, ?)
	`, sessionID, tsMs, moveIndex, phaseKey)

	if err != nil {
		return 0, fmt.Errorf("failed to create phase event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get phase event ID: %w", err)
	}

	return id, nil
}

// GetBySession retrieves all phase events for a session in time order.
func (r *PhaseRepository) GetBySession(sessionID string) ([]PhaseEvent, error) {
	rows, err := r.db.Query(`
		SELECT phase_event_id, session_id, ts_ms, move_index, phase_key
		FROM phase_events
		WHERE session_id = ?
		ORDER BY ts_ms, phase_event_id
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get phase events: %w", err)
	}
	defer rows.Close()

	var events []PhaseEvent
	for rows.Next() {
		var e PhaseEvent
		err := rows.Scan(&e.PhaseEventID, &e.SessionID, &e.TsMs, &e.MoveIndex, &e.PhaseKey)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase event: %w", err)
		}
		events = append(events, e)
	}

	return events, nil
}

// GetLast retrieves the most recent phase event for a session.
func (r *PhaseRepository) GetLast(sessionID string) (*PhaseEvent, error) {
	events, err := r.GetBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[len(events)-1], nil
}

// CountByPhase returns how many sessions reached each phase.
func (r *PhaseRepository) CountByPhase() (map[string]int, error) {
	rows, err := r.db.Query(`
		SELECT phase_key, COUNT(DISTINCT session_id)
		FROM phase_events
		GROUP BY phase_key
	`)

	if err != nil {
		return nil, fmt.Errorf("failed to count phase events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan phase count: %w", err)
		}
		counts[key] = count
	}

	return counts, nil
}
