package pocketcube

import "strings"

// Canonicalize simplifies a move sequence without changing its effect.
// Adjacent inverse pairs cancel and three equal turns collapse into one
// inverse turn, repeatedly, until no rule applies. Four equal turns
// vanish entirely through the same two rules.
func Canonicalize(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, m)
		out = reduceTail(out)
	}
	return out
}

// reduceTail applies the cancellation rules to the end of the sequence.
func reduceTail(moves []Move) []Move {
	for {
		n := len(moves)
		if n >= 2 {
			a, b := moves[n-2], moves[n-1]
			if a.Face == b.Face && a.Turn == -b.Turn {
				moves = moves[:n-2]
				continue
			}
		}
		if n >= 3 {
			a, b, c := moves[n-3], moves[n-2], moves[n-1]
			if a.Face == b.Face && b.Face == c.Face && a.Turn == b.Turn && b.Turn == c.Turn {
				moves = append(moves[:n-3], c.Inverse())
				continue
			}
		}
		return moves
	}
}

// FormatMovesCompact formats a sequence like FormatMoves but folds two
// equal consecutive turns into a single "2" token: U U becomes U2 and
// U' U' becomes U2'.
func FormatMovesCompact(moves []Move) string {
	parts := make([]string, 0, len(moves))
	for i := 0; i < len(moves); i++ {
		m := moves[i]
		if i+1 < len(moves) && moves[i+1].Face == m.Face && moves[i+1].Turn == m.Turn {
			suffix := "2"
			if m.Turn == CCW {
				suffix = "2'"
			}
			parts = append(parts, m.Face.String()+suffix)
			i++
			continue
		}
		parts = append(parts, m.Notation())
	}
	return strings.Join(parts, " ")
}
