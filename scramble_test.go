package pocketcube

import (
	"math/rand"
	"testing"
)

func TestScrambleLength(t *testing.T) {
	if got := len(Scramble(10)); got != 10 {
		t.Errorf("got %d moves, want 10", got)
	}
	if got := len(Scramble(0)); got != 0 {
		t.Errorf("zero length scramble returned %d moves", got)
	}
}

func TestScrambleAvoidsRepeatedFaces(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	moves := ScrambleWithRand(r, 200)
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("moves %d and %d both turn %v", i-1, i, moves[i].Face)
		}
	}
}

func TestScrambleDeterministicWithSeed(t *testing.T) {
	a := ScrambleWithRand(rand.New(rand.NewSource(7)), 20)
	b := ScrambleWithRand(rand.New(rand.NewSource(7)), 20)
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("same seed should produce the same scramble")
	}
}

func TestScrambleInverseRestores(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	moves := ScrambleWithRand(r, 25)
	c := NewCube().ApplyMoves(moves).ApplyMoves(InverseMoves(moves))
	if c != NewCube() {
		t.Error("undoing a scramble should restore the solved cube")
		t.Log("\n" + c.String())
	}
}
