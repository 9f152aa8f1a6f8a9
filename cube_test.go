package pocketcube

import (
	"errors"
	"testing"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestNewCubeColors(t *testing.T) {
	c := NewCube()
	want := map[Face]Color{
		FaceU: White,
		FaceD: Yellow,
		FaceF: Red,
		FaceB: Orange,
		FaceR: Blue,
		FaceL: Green,
	}
	for face, color := range want {
		for i := 0; i < 4; i++ {
			if c.Facelets[face][i] != color {
				t.Errorf("face %v facelet %d = %v, want %v", face, i, c.Facelets[face][i], color)
			}
		}
	}
}

func TestColorAt(t *testing.T) {
	c := NewCube()
	got, err := c.ColorAt(FaceF, 1, 0)
	if err != nil {
		t.Fatalf("ColorAt failed: %v", err)
	}
	if got != Red {
		t.Errorf("ColorAt(F,1,0) = %v, want Red", got)
	}
}

func TestColorAtOutOfRange(t *testing.T) {
	c := NewCube()
	cases := []struct {
		face     Face
		row, col int
	}{
		{Face(-1), 0, 0},
		{Face(6), 0, 0},
		{FaceU, 2, 0},
		{FaceU, 0, 2},
		{FaceU, -1, 0},
		{FaceU, 0, -1},
	}
	for _, tc := range cases {
		if _, err := c.ColorAt(tc.face, tc.row, tc.col); !errors.Is(err, ErrAddressOutOfRange) {
			t.Errorf("ColorAt(%v,%d,%d) error = %v, want ErrAddressOutOfRange", tc.face, tc.row, tc.col, err)
		}
	}
}

func TestIsSolvedRequiresDistinctFaceColors(t *testing.T) {
	// Every face uniform is not enough: an all-white cube is not solved.
	var c State
	if c.IsSolved() {
		t.Error("uniform faces sharing one color should not count as solved")
	}
}

func TestWholeCubeRotationStaysSolved(t *testing.T) {
	// R and L' together rotate the entire cube. A 2x2 has no fixed
	// centers, so the result is still a solved cube.
	c := NewCube().Apply(R).Apply(LPrime)
	if !c.IsSolved() {
		t.Error("R L' should leave the cube solved")
		t.Log("\n" + c.String())
	}
	if c.Facelets[FaceU][0] != Red {
		t.Errorf("after R L' the up face should show Red, got %v", c.Facelets[FaceU][0])
	}
}

func TestOppositeFaces(t *testing.T) {
	pairs := map[Face]Face{FaceU: FaceD, FaceF: FaceB, FaceR: FaceL}
	for a, b := range pairs {
		if a.Opposite() != b || b.Opposite() != a {
			t.Errorf("%v and %v should be opposite", a, b)
		}
	}
}

func TestStringNet(t *testing.T) {
	c := NewCube()
	want := "    W W \n" +
		"    W W \n" +
		"G G R R B B O O \n" +
		"G G R R B B O O \n" +
		"    Y Y \n" +
		"    Y Y \n"
	if got := c.String(); got != want {
		t.Errorf("solved net mismatch:\ngot:\n%swant:\n%s", got, want)
	}
	t.Log("\n" + c.String())
}

func TestColorStrings(t *testing.T) {
	letters := map[Color]string{
		White:  "W",
		Yellow: "Y",
		Red:    "R",
		Orange: "O",
		Blue:   "B",
		Green:  "G",
	}
	for color, letter := range letters {
		if color.String() != letter {
			t.Errorf("%v.String() = %q, want %q", color, color.String(), letter)
		}
	}
	if Color(200).String() != "?" {
		t.Error("unknown color should print ?")
	}
}
