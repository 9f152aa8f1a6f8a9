package pocketcube

import "testing"

func TestCanonicalizeCancelsInversePairs(t *testing.T) {
	got := Canonicalize([]Move{R, RPrime})
	if len(got) != 0 {
		t.Errorf("R R' should cancel, got %q", FormatMoves(got))
	}
}

func TestCanonicalizeFoldsTriples(t *testing.T) {
	got := Canonicalize([]Move{U, U, U})
	if len(got) != 1 || got[0].Face != FaceU || got[0].Turn != CCW {
		t.Errorf("U U U should fold to U', got %q", FormatMoves(got))
	}
}

func TestCanonicalizeRemovesQuads(t *testing.T) {
	got := Canonicalize([]Move{F, F, F, F})
	if len(got) != 0 {
		t.Errorf("F F F F should vanish, got %q", FormatMoves(got))
	}
}

func TestCanonicalizeCascades(t *testing.T) {
	// The middle pair cancels first, which exposes the outer pair.
	got := Canonicalize([]Move{R, U, UPrime, RPrime})
	if len(got) != 0 {
		t.Errorf("R U U' R' should vanish, got %q", FormatMoves(got))
	}
}

func TestCanonicalizeKeepsDistinctFaces(t *testing.T) {
	got := Canonicalize(SexyMove)
	if len(got) != 4 {
		t.Errorf("R U R' U' has nothing to cancel, got %q", FormatMoves(got))
	}
}

func TestCanonicalizePreservesEffect(t *testing.T) {
	seq := []Move{R, U, UPrime, U, F, FPrime, D, D, D, L}
	canon := Canonicalize(seq)
	if len(canon) >= len(seq) {
		t.Errorf("canonical form should be shorter: %q", FormatMoves(canon))
	}

	a := NewCube().ApplyMoves(seq)
	b := NewCube().ApplyMoves(canon)
	if a != b {
		t.Error("canonicalization must not change the sequence effect")
	}
}

func TestFormatMovesCompact(t *testing.T) {
	moves := []Move{U, U, R, FPrime, FPrime, L}
	if got := FormatMovesCompact(moves); got != "U2 R F2' L" {
		t.Errorf("compact format = %q", got)
	}
}

func TestFormatMovesCompactRoundTrip(t *testing.T) {
	moves := []Move{B, B, D, LPrime, LPrime}
	parsed, err := ParseMoves(FormatMovesCompact(moves))
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if len(parsed) != len(moves) {
		t.Fatalf("round trip length = %d, want %d", len(parsed), len(moves))
	}
	for i := range moves {
		if parsed[i].Face != moves[i].Face || parsed[i].Turn != moves[i].Turn {
			t.Errorf("move %d = %s, want %s", i, parsed[i].Notation(), moves[i].Notation())
		}
	}
}
