package pocketcube

import "fmt"

// stateFaceOrder is the face order of the compact state string.
var stateFaceOrder = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// Compact returns the 24-letter state string: faces in U D F B R L
// order, facelets row-major within each face. A solved cube reads
// "WWWWYYYYRRRROOOOBBBBGGGG".
func (s State) Compact() string {
	b := make([]byte, 0, 24)
	for _, f := range stateFaceOrder {
		for i := 0; i < 4; i++ {
			b = append(b, s.Facelets[f][i].String()[0])
		}
	}
	return string(b)
}

// ParseState decodes a compact state string produced by Compact.
// Whitespace is ignored. Every one of the 24 facelets must receive a
// valid color letter; anything else rejects the whole string.
func ParseState(s string) (State, error) {
	var st State
	i := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		if i >= 24 {
			return State{}, fmt.Errorf("%w: more than 24 facelets", ErrInvalidState)
		}
		c, ok := colorFromLetter(r)
		if !ok {
			return State{}, fmt.Errorf("%w: bad color letter %q", ErrInvalidState, r)
		}
		st.Facelets[stateFaceOrder[i/4]][i%4] = c
		i++
	}
	if i != 24 {
		return State{}, fmt.Errorf("%w: got %d facelets, want 24", ErrInvalidState, i)
	}
	return st, nil
}

func colorFromLetter(r rune) (Color, bool) {
	switch r {
	case 'W', 'w':
		return White, true
	case 'Y', 'y':
		return Yellow, true
	case 'R', 'r':
		return Red, true
	case 'O', 'o':
		return Orange, true
	case 'B', 'b':
		return Blue, true
	case 'G', 'g':
		return Green, true
	}
	return 0, false
}
