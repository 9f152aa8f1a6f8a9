package pocketcube

// Phase represents solve progress through a face-first (Ortega style)
// route on the 2x2. Phases are ordered from Scrambled (0) to Solved (4),
// allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no face is complete.
	PhaseScrambled Phase = iota

	// PhaseFirstFace indicates at least one face shows a uniform color.
	PhaseFirstFace

	// PhaseFirstLayer indicates some complete face whose four adjacent
	// border strips each show a single color: the whole layer is
	// assembled, not just the face.
	PhaseFirstLayer

	// PhaseOriented indicates a complete first layer whose opposite
	// face is uniform as well. Only the last-layer permutation remains.
	PhaseOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseFirstFace:
		return "first_face"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseOriented:
		return "oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseFirstFace:
		return "First Face"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseOriented:
		return "Last Face Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// AllPhases lists the phases in solving order.
var AllPhases = []Phase{PhaseScrambled, PhaseFirstFace, PhaseFirstLayer, PhaseOriented, PhaseSolved}

// Progress represents which phases the current state satisfies.
type Progress struct {
	FirstFace  bool
	FirstLayer bool
	Oriented   bool
	Solved     bool
}
