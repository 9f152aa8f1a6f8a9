package pocketcube

import "math/rand"

// DefaultScrambleLength is the scramble length used when a caller does
// not choose one. Ten random moves is plenty to mix a 2x2.
const DefaultScrambleLength = 10

// Scramble returns n random moves with no two consecutive turns of the
// same face. It draws from the shared math/rand source; use
// ScrambleWithRand for reproducible sequences.
func Scramble(n int) []Move {
	return scrambleMoves(nil, n)
}

// ScrambleWithRand is Scramble with a caller-supplied source.
func ScrambleWithRand(r *rand.Rand, n int) []Move {
	return scrambleMoves(r, n)
}

func scrambleMoves(r *rand.Rand, n int) []Move {
	intn := rand.Intn
	if r != nil {
		intn = r.Intn
	}

	moves := make([]Move, 0, n)
	lastFace := Face(-1)
	for len(moves) < n {
		m := AllMoves[intn(len(AllMoves))]
		if m.Face == lastFace {
			continue
		}
		moves = append(moves, m)
		lastFace = m.Face
	}
	return moves
}
