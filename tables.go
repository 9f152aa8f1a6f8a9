package pocketcube

import "fmt"

// moveTable holds the three disjoint 4-cycles one move applies: two
// cycles through the adjacent faces' border strips and one through the
// turned face's own corners. Addresses are flat facelet indices,
// face*4 + row*2 + col.
type moveTable struct {
	cycles [3][4]uint8
}

// sideStrips lists, per face, the border strips of the four adjacent
// faces in the order a clockwise turn pushes their contents. Each strip
// is a pair of flat addresses.
var sideStrips = [6][4][2]uint8{
	FaceU: {{8, 9}, {20, 21}, {12, 13}, {16, 17}},   // F -> L -> B -> R top rows
	FaceD: {{10, 11}, {18, 19}, {14, 15}, {22, 23}}, // F -> R -> B -> L bottom rows
	FaceF: {{2, 3}, {16, 18}, {4, 5}, {23, 21}},     // U bottom -> R left -> D top -> L right
	FaceB: {{0, 1}, {22, 20}, {6, 7}, {17, 19}},     // U top -> L left -> D bottom -> R right
	FaceL: {{0, 2}, {8, 10}, {5, 7}, {15, 13}},      // U left -> F left -> D left -> B right
	FaceR: {{9, 11}, {1, 3}, {14, 12}, {4, 6}},      // F right -> U right -> B left -> D right
}

// selfCycle lists each face's own corner cycle for a clockwise turn, as
// positions within the face. D differs because its columns are labeled
// right to left when viewed from the front.
var selfCycle = [6][4]uint8{
	FaceU: {0, 1, 3, 2},
	FaceD: {0, 2, 3, 1},
	FaceF: {0, 1, 3, 2},
	FaceB: {0, 1, 3, 2},
	FaceR: {0, 1, 3, 2},
	FaceL: {0, 1, 3, 2},
}

// tables is the move registry: 12 entries, one per face and direction,
// indexed by tableIndex. It is built and validated once at package load.
var tables = mustBuildTables()

// tableIndex returns the registry slot for a move, or -1 for a move
// outside the closed face and turn sets.
func tableIndex(m Move) int {
	if m.Face < FaceU || m.Face > FaceL {
		return -1
	}
	switch m.Turn {
	case CW:
		return int(m.Face) * 2
	case CCW:
		return int(m.Face)*2 + 1
	}
	return -1
}

// buildTables assembles the 12 move entries from the adjacency strips
// and self cycles, then validates them.
func buildTables() ([12]moveTable, error) {
	var t [12]moveTable
	for f := FaceU; f <= FaceL; f++ {
		var cw moveTable
		for i := 0; i < 4; i++ {
			cw.cycles[0][i] = sideStrips[f][i][0]
			cw.cycles[1][i] = sideStrips[f][i][1]
			cw.cycles[2][i] = uint8(f)*4 + selfCycle[f][i]
		}
		t[int(f)*2] = cw
		t[int(f)*2+1] = reversed(cw)
	}
	if err := validateTables(&t); err != nil {
		return t, err
	}
	return t, nil
}

// mustBuildTables builds the registry and panics if validation fails.
// A failure means the static adjacency data is wrong and no move can be
// trusted, so the package refuses to load.
func mustBuildTables() [12]moveTable {
	t, err := buildTables()
	if err != nil {
		panic("pocketcube: " + err.Error())
	}
	return t
}

// reversed returns the table with each cycle reversed, which is the
// inverse permutation.
func reversed(t moveTable) moveTable {
	var r moveTable
	for c := 0; c < 3; c++ {
		for i := 0; i < 4; i++ {
			r.cycles[c][i] = t.cycles[c][3-i]
		}
	}
	return r
}

// validateTables checks the invariants the registry must satisfy:
// every move touches exactly 12 distinct addresses, a clockwise turn
// has order four, each CCW entry inverts its CW partner, and the six
// faces collectively cover all 24 addresses.
func validateTables(t *[12]moveTable) error {
	var covered [24]bool

	for f := FaceU; f <= FaceL; f++ {
		cw := t[int(f)*2]
		ccw := t[int(f)*2+1]

		var seen [24]bool
		n := 0
		for _, cycle := range cw.cycles {
			for _, a := range cycle {
				if int(a) >= 24 {
					return fmt.Errorf("face %v: address %d out of range", f, a)
				}
				if seen[a] {
					return fmt.Errorf("face %v: address %d repeated in working set", f, a)
				}
				seen[a] = true
				covered[a] = true
				n++
			}
		}
		if n != 12 {
			return fmt.Errorf("face %v: working set has %d addresses, want 12", f, n)
		}

		p := permutation(cw)
		if !isIdentity(compose(p, permutation(ccw))) {
			return fmt.Errorf("face %v: counter-clockwise entry is not the inverse of clockwise", f)
		}
		q := p
		for i := 0; i < 3; i++ {
			q = compose(q, p)
		}
		if !isIdentity(q) {
			return fmt.Errorf("face %v: four clockwise turns do not return to identity", f)
		}
	}

	for a, ok := range covered {
		if !ok {
			return fmt.Errorf("address %d not moved by any face", a)
		}
	}
	return nil
}

// permutation expands a table into a destination map over all 24
// addresses: perm[src] is where the color at src moves.
func permutation(t moveTable) [24]uint8 {
	var p [24]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	for _, cycle := range t.cycles {
		for i, a := range cycle {
			p[a] = cycle[(i+1)%4]
		}
	}
	return p
}

// compose returns the permutation "p then q".
func compose(p, q [24]uint8) [24]uint8 {
	var r [24]uint8
	for i := range r {
		r[i] = q[p[i]]
	}
	return r
}

func isIdentity(p [24]uint8) bool {
	for i := range p {
		if p[i] != uint8(i) {
			return false
		}
	}
	return true
}
