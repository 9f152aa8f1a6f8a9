package pocketcube

import "fmt"

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Red    Color = 2 // Front face when solved
	Orange Color = 3 // Back face when solved
	Blue   Color = 4 // Right face when solved
	Green  Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Blue:
		return "B"
	case Green:
		return "G"
	default:
		return "?"
	}
}

// Face identifies one of the six cube faces.
type Face int

const (
	FaceU Face = 0 // Up
	FaceD Face = 1 // Down
	FaceF Face = 2 // Front
	FaceB Face = 3 // Back
	FaceR Face = 4 // Right
	FaceL Face = 5 // Left
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	default:
		return f
	}
}

// State represents a 2x2 pocket cube.
// Each face has 4 facelets indexed row-major:
//
//	0 1
//	2 3
//
// State is a plain value. Applying a move returns a new State and never
// mutates the receiver, so any copy of a State is a stable snapshot.
type State struct {
	// Facelets[face][row*2+col] = color
	Facelets [6][4]Color
}

// NewCube creates a solved cube with standard orientation:
// White on top, Red in front.
func NewCube() State {
	var s State
	for face := FaceU; face <= FaceL; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 4; i++ {
			s.Facelets[face][i] = color
		}
	}
	return s
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Red
	case FaceB:
		return Orange
	case FaceR:
		return Blue
	case FaceL:
		return Green
	default:
		return White
	}
}

// IsSolved returns true if every face shows a single uniform color and
// the six face colors are pairwise distinct. A 2x2 has no fixed centers,
// so a whole-cube rotation of a solved cube (for example R then L')
// still counts as solved.
func (s State) IsSolved() bool {
	var seen [6]bool
	for face := FaceU; face <= FaceL; face++ {
		c := s.Facelets[face][0]
		for i := 1; i < 4; i++ {
			if s.Facelets[face][i] != c {
				return false
			}
		}
		if c > Green || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// ColorAt returns the color of the facelet at (face, row, col).
// Row and col index the 2x2 grid and must be 0 or 1.
func (s State) ColorAt(face Face, row, col int) (Color, error) {
	if face < FaceU || face > FaceL || row < 0 || row > 1 || col < 0 || col > 1 {
		return 0, fmt.Errorf("%w: face=%d row=%d col=%d", ErrAddressOutOfRange, face, row, col)
	}
	return s.Facelets[face][row*2+col], nil
}

// String returns a text representation of the cube as an unfolded net.
func (s State) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 2; row++ {
		result += "    "
		for col := 0; col < 2; col++ {
			result += s.Facelets[FaceU][row*2+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 2; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 2; col++ {
				result += s.Facelets[face][row*2+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 2; row++ {
		result += "    "
		for col := 0; col < 2; col++ {
			result += s.Facelets[FaceD][row*2+col].String() + " "
		}
		result += "\n"
	}

	return result
}

// Debug returns a simple debug string.
func (s State) Debug() string {
	return fmt.Sprintf("Solved: %v", s.IsSolved())
}
