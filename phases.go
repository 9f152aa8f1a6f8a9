package pocketcube

// Phase detection for the 2x2. A face-first solve assembles one face,
// completes that layer, orients the opposite face, and finally permutes
// the rest. Each check subsumes the previous one, so DetectPhase tests
// from the solved end down.

// faceUniform reports whether all four facelets of a face share a color.
func (s State) faceUniform(f Face) bool {
	c := s.Facelets[f][0]
	return s.Facelets[f][1] == c && s.Facelets[f][2] == c && s.Facelets[f][3] == c
}

// HasCompleteFace returns true if at least one face shows a uniform color.
func (s State) HasCompleteFace() bool {
	for f := FaceU; f <= FaceL; f++ {
		if s.faceUniform(f) {
			return true
		}
	}
	return false
}

// layerComplete reports whether the layer of face f is assembled: the
// face itself is uniform and each adjacent border strip shows a single
// color, meaning the four cubies sit correctly relative to each other.
func (s State) layerComplete(f Face) bool {
	if !s.faceUniform(f) {
		return false
	}
	for _, strip := range sideStrips[f] {
		a, b := strip[0], strip[1]
		if s.Facelets[a/4][a%4] != s.Facelets[b/4][b%4] {
			return false
		}
	}
	return true
}

// HasCompleteLayer returns true if any face's layer is fully assembled.
func (s State) HasCompleteLayer() bool {
	for f := FaceU; f <= FaceL; f++ {
		if s.layerComplete(f) {
			return true
		}
	}
	return false
}

// IsOriented returns true if some assembled layer sits opposite a
// uniform face, leaving only the last-layer permutation.
func (s State) IsOriented() bool {
	for f := FaceU; f <= FaceL; f++ {
		if s.layerComplete(f) && s.faceUniform(f.Opposite()) {
			return true
		}
	}
	return false
}

// DetectPhase returns the highest phase the current state satisfies.
func (s State) DetectPhase() Phase {
	if s.IsSolved() {
		return PhaseSolved
	}
	if s.IsOriented() {
		return PhaseOriented
	}
	if s.HasCompleteLayer() {
		return PhaseFirstLayer
	}
	if s.HasCompleteFace() {
		return PhaseFirstFace
	}
	return PhaseScrambled
}

// GetProgress returns which phases the current state satisfies.
func (s State) GetProgress() Progress {
	return Progress{
		FirstFace:  s.HasCompleteFace(),
		FirstLayer: s.HasCompleteLayer(),
		Oriented:   s.IsOriented(),
		Solved:     s.IsSolved(),
	}
}
