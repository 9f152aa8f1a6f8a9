package pocketcube

import "testing"

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	c := NewCube()
	moved := c.Apply(R)
	if moved.IsSolved() {
		t.Error("one turn from solved should not be solved")
	}
	if !c.IsSolved() {
		t.Error("Apply must not mutate the receiver")
	}
}

func TestEveryMoveHasOrderFour(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube()
		for i := 0; i < 4; i++ {
			c = c.Apply(m)
			if i < 3 && c == NewCube() {
				t.Errorf("%s returned to solved after %d turns", m.Notation(), i+1)
			}
		}
		if c != NewCube() {
			t.Errorf("four %s turns should return to the solved cube", m.Notation())
			t.Log("\n" + c.String())
		}
	}
}

func TestMoveInverseRoundTrip(t *testing.T) {
	for _, m := range AllMoves {
		c := NewCube().Apply(m).Apply(m.Inverse())
		if c != NewCube() {
			t.Errorf("%s then %s should cancel", m.Notation(), m.Inverse().Notation())
		}
	}
}

func TestOppositeFacesCommute(t *testing.T) {
	pairs := [][2]Move{{R, L}, {U, D}, {F, B}}
	for _, p := range pairs {
		a := NewCube().Apply(p[0]).Apply(p[1])
		b := NewCube().Apply(p[1]).Apply(p[0])
		if a != b {
			t.Errorf("%s and %s should commute", p[0].Notation(), p[1].Notation())
		}
	}
}

func TestFrontClockwiseTransfers(t *testing.T) {
	// F pushes the up face's bottom row onto the right face's left
	// column, that onto the down face's front row, that onto the left
	// face's right column, and that back onto the up face.
	c := NewCube().Apply(F)

	cases := []struct {
		face     Face
		row, col int
		want     Color
	}{
		{FaceU, 1, 0, Green},  // from L(1,1)
		{FaceU, 1, 1, Green},  // from L(0,1)
		{FaceR, 0, 0, White},  // from U(1,0)
		{FaceR, 1, 0, White},  // from U(1,1)
		{FaceD, 0, 0, Blue},   // from R(0,0)
		{FaceD, 0, 1, Blue},   // from R(1,0)
		{FaceL, 1, 1, Yellow}, // from D(0,0)
		{FaceL, 0, 1, Yellow}, // from D(0,1)
	}
	for _, tc := range cases {
		got, err := c.ColorAt(tc.face, tc.row, tc.col)
		if err != nil {
			t.Fatalf("ColorAt: %v", err)
		}
		if got != tc.want {
			t.Errorf("after F, %v(%d,%d) = %v, want %v", tc.face, tc.row, tc.col, got, tc.want)
		}
	}
}

func TestTurnRotatesOwnFace(t *testing.T) {
	// After R the front face's right column is yellow. A front turn
	// must rotate those stickers within the face as well as cycle the
	// strips around it.
	c := NewCube().Apply(R)
	before := c.Facelets[FaceF]
	c = c.Apply(F)

	want := [4]Color{Red, Red, Yellow, Yellow}
	if c.Facelets[FaceF] != want {
		t.Errorf("front face after R F = %v, want %v (before F: %v)", c.Facelets[FaceF], want, before)
	}
}

func TestSexyMoveOrderSix(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c = c.ApplyMoves(SexyMove)
	}
	if c != NewCube() {
		t.Error("sexy move x 6 should return to solved")
		t.Log("\n" + c.String())
	}
}

func TestApplyMovesMatchesSequentialApply(t *testing.T) {
	seq := []Move{R, U, FPrime, L, DPrime, B}
	a := NewCube().ApplyMoves(seq)
	b := NewCube()
	for _, m := range seq {
		b = b.Apply(m)
	}
	if a != b {
		t.Error("ApplyMoves should equal applying each move in turn")
	}
}

func TestInverseMovesRestores(t *testing.T) {
	seq := []Move{R, U, RPrime, F, D, BPrime, L, UPrime}
	c := NewCube().ApplyMoves(seq).ApplyMoves(InverseMoves(seq))
	if c != NewCube() {
		t.Error("a sequence followed by its inverse should be the identity")
		t.Log("\n" + c.String())
	}
}

func TestApplyIgnoresMalformedMove(t *testing.T) {
	c := NewCube().Apply(R)
	cases := []Move{
		{Face: Face(9), Turn: CW},
		{Face: Face(-2), Turn: CCW},
		{Face: FaceU, Turn: 0},
		{Face: FaceU, Turn: 2},
	}
	for _, m := range cases {
		if c.Apply(m) != c {
			t.Errorf("move {%v %d} should leave the state unchanged", m.Face, m.Turn)
		}
	}
}

func TestColorCountsPreserved(t *testing.T) {
	seq, err := ParseMoves("R U2 F' D B2 L' U F2 R' D'")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	c := NewCube().ApplyMoves(seq)

	counts := make(map[Color]int)
	for f := 0; f < 6; f++ {
		for i := 0; i < 4; i++ {
			counts[c.Facelets[f][i]]++
		}
	}
	for _, color := range []Color{White, Yellow, Red, Orange, Blue, Green} {
		if counts[color] != 4 {
			t.Errorf("color %v appears %d times, want 4", color, counts[color])
		}
	}
}
