package pocketcube

// Apply returns the state after one move. The receiver is the pre-move
// snapshot: every destination is computed from it before anything is
// written, so torn applications cannot happen. A move that is not one
// of the 12 registry entries leaves the state unchanged.
func (s State) Apply(m Move) State {
	idx := tableIndex(m)
	if idx < 0 {
		return s
	}
	t := &tables[idx]

	next := s
	for _, cycle := range t.cycles {
		for i, src := range cycle {
			dst := cycle[(i+1)%4]
			next.Facelets[dst/4][dst%4] = s.Facelets[src/4][src%4]
		}
	}
	return next
}

// ApplyMoves applies a sequence of moves left to right.
func (s State) ApplyMoves(moves []Move) State {
	for _, m := range moves {
		s = s.Apply(m)
	}
	return s
}

// InverseMoves returns the sequence that undoes moves: the moves
// reversed, each inverted. Applying a sequence and then its inverse is
// the identity.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
