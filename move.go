package pocketcube

import (
	"fmt"
	"strings"
	"time"
)

// Turn represents the direction of a quarter turn.
type Turn int

const (
	CW  Turn = 1  // Clockwise (90 degrees)
	CCW Turn = -1 // Counter-clockwise (90 degrees)
)

// Move represents a single face turn with an optional timestamp.
// The registry recognizes exactly twelve moves: each of the six faces
// turned CW or CCW. The timestamp is carried for recording and never
// affects how the move applies.
type Move struct {
	Face Face      // Which face to turn
	Turn Turn      // Direction
	Time time.Time // When the move occurred (optional)
}

// Notation returns the standard notation string for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	suffix := ""
	if m.Turn == CCW {
		suffix = "'"
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// WithTime returns a copy of the move with the specified timestamp.
func (m Move) WithTime(t time.Time) Move {
	m.Time = t
	return m
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a single move token. Clockwise is the bare uppercase
// face letter. Counter-clockwise is either the prime mark or the
// lowercase letter: "F'" and "f" both mean F counter-clockwise.
// A lowercase letter combined with a prime mark is rejected.
func ParseMove(s string) (Move, error) {
	tok := strings.TrimSpace(s)
	if len(tok) == 0 {
		return Move{}, ErrUnknownMove
	}

	var face Face
	switch tok[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
	lower := tok[0] >= 'a' && tok[0] <= 'z'

	turn := CW
	if lower {
		turn = CCW
	}
	if len(tok) > 1 {
		if lower {
			return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
		}
		switch tok[1:] {
		case "'", "`":
			turn = CCW
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// A "2" in a token doubles it: "U2" expands to two clockwise turns and
// "U2'" to two counter-clockwise turns. Any unknown token rejects the
// whole sequence, so a partial scramble is never produced.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		tok, double := splitDouble(part)
		move, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMove, part)
		}
		moves = append(moves, move)
		if double {
			moves = append(moves, move)
		}
	}

	return moves, nil
}

// splitDouble strips an embedded "2" so "U2" parses as two "U" turns
// and "U2'" as two "U'" turns.
func splitDouble(tok string) (string, bool) {
	i := strings.IndexByte(tok, '2')
	if i < 0 {
		return tok, false
	}
	return tok[:i] + tok[i+1:], true
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
