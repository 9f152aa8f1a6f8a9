package pocketcube

import (
	"strings"
	"testing"
)

func TestBuildTables(t *testing.T) {
	built, err := buildTables()
	if err != nil {
		t.Fatalf("buildTables: %v", err)
	}
	if built != tables {
		t.Error("rebuilt tables should match the package registry")
	}
}

func TestTableIndexDistinct(t *testing.T) {
	seen := make(map[int]bool)
	for _, m := range AllMoves {
		idx := tableIndex(m)
		if idx < 0 || idx >= 12 {
			t.Fatalf("tableIndex(%s) = %d", m.Notation(), idx)
		}
		if seen[idx] {
			t.Errorf("tableIndex(%s) = %d already used", m.Notation(), idx)
		}
		seen[idx] = true
	}
}

func TestTableIndexRejectsMalformed(t *testing.T) {
	cases := []Move{
		{Face: Face(6), Turn: CW},
		{Face: Face(-1), Turn: CCW},
		{Face: FaceU, Turn: 0},
		{Face: FaceU, Turn: 3},
	}
	for _, m := range cases {
		if idx := tableIndex(m); idx != -1 {
			t.Errorf("tableIndex({%v %d}) = %d, want -1", m.Face, m.Turn, idx)
		}
	}
}

func TestEveryMoveTouchesTwelveAddresses(t *testing.T) {
	for _, m := range AllMoves {
		seen := make(map[uint8]bool)
		for _, cycle := range tables[tableIndex(m)].cycles {
			for _, a := range cycle {
				seen[a] = true
			}
		}
		if len(seen) != 12 {
			t.Errorf("%s touches %d addresses, want 12", m.Notation(), len(seen))
		}
	}
}

func TestRegistryCoversAllFacelets(t *testing.T) {
	var covered [24]bool
	for _, mt := range tables {
		for _, cycle := range mt.cycles {
			for _, a := range cycle {
				covered[a] = true
			}
		}
	}
	for a, ok := range covered {
		if !ok {
			t.Errorf("facelet address %d is never moved", a)
		}
	}
}

func TestCounterClockwiseIsReversedClockwise(t *testing.T) {
	for f := FaceU; f <= FaceL; f++ {
		cw := tables[int(f)*2]
		ccw := tables[int(f)*2+1]
		if reversed(cw) != ccw {
			t.Errorf("face %v: CCW entry should be the reversed CW cycles", f)
		}
	}
}

func TestValidateRejectsRepeatedAddress(t *testing.T) {
	bad := tables
	bad[0].cycles[0][1] = bad[0].cycles[0][0]
	err := validateTables(&bad)
	if err == nil {
		t.Fatal("corrupted table should fail validation")
	}
	if !strings.Contains(err.Error(), "repeated") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsNonInversePair(t *testing.T) {
	bad := tables
	bad[1] = bad[0] // the CCW slot now repeats the CW entry
	err := validateTables(&bad)
	if err == nil {
		t.Fatal("a CCW entry equal to its CW partner should fail validation")
	}
	if !strings.Contains(err.Error(), "inverse") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsOutOfRangeAddress(t *testing.T) {
	bad := tables
	bad[4].cycles[1][2] = 99
	if err := validateTables(&bad); err == nil {
		t.Fatal("address outside the facelet range should fail validation")
	}
}
