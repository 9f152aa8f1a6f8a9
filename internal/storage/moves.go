package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/SeamusWaldron/pocketcube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	TsMs      int64
	Face      string
	Turn      int
	Notation  string
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create creates a new move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, move pocketcube.Move) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, ts_ms, face, turn, notation)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, moveIndex, tsMs, move.Face.String(), int(move.Turn), move.Notation())

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch creates multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, moves []pocketcube.Move, startIndex int) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			tsMs := move.Time.UnixMilli()
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, ts_ms, face, turn, notation)
				VALUES (?, ?, ?, ?, ?, ?)
			`, sessionID, startIndex+i, tsMs, move.Face.String(), int(move.Turn), move.Notation())
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, turn, notation
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Turn, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// GetBySessionRange retrieves moves in a time range for a session.
// Uses inclusive start (>=) and exclusive end (<) to prevent moves at phase
// boundaries from being counted in both phases.
func (r *MoveRepository) GetBySessionRange(sessionID string, startTsMs, endTsMs int64) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, ts_ms, face, turn, notation
		FROM moves
		WHERE session_id = ? AND ts_ms >= ? AND ts_ms < ?
		ORDER BY move_index
	`, sessionID, startTsMs, endTsMs)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves in range: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.TsMs, &m.Face, &m.Turn, &m.Notation)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// GetNextIndex returns the next move index for a session.
func (r *MoveRepository) GetNextIndex(sessionID string) (int, error) {
	var maxIndex int
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(move_index), -1) FROM moves WHERE session_id = ?
	`, sessionID).Scan(&maxIndex)
	if err != nil {
		return 0, fmt.Errorf("failed to get max move index: %w", err)
	}
	return maxIndex + 1, nil
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts MoveRecords back into engine moves. Rows are parsed
// through the notation boundary, so a corrupted row is skipped rather
// than producing a malformed move.
func ToMoves(records []MoveRecord) []pocketcube.Move {
	moves := make([]pocketcube.Move, 0, len(records))
	for _, rec := range records {
		m, err := pocketcube.ParseMove(rec.Notation)
		if err != nil {
			continue
		}
		moves = append(moves, m.WithTime(time.UnixMilli(rec.TsMs)))
	}
	return moves
}
