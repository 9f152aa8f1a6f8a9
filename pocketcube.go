// Package pocketcube models a 2x2 pocket cube as a facelet permutation
// engine: every move is a fixed set of disjoint 4-cycles over facelet
// addresses, precomputed once and validated before use.
//
// # Features
//
//   - Value-semantics cube state (any copy is a stable snapshot)
//   - Precomputed move registry for all 12 face turns, validated at load
//   - Move parsing, formatting, inversion and cancellation
//   - Scramble generation and solving phase detection
//   - Concurrency-safe sessions with move history and callbacks
//
// # Quick Start
//
// Work directly with a State value:
//
//	cube := pocketcube.NewCube()
//
//	// Apply moves using predefined constants
//	cube = cube.Apply(pocketcube.R)
//	cube = cube.ApplyMoves(pocketcube.SexyMove)
//
//	// Or from notation
//	moves, err := pocketcube.ParseMoves("R U R' U'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube = cube.ApplyMoves(moves)
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println(cube)
//
// # Notation
//
// A move token is a face letter, optionally marked counter-clockwise:
//
//	U D F B R L      clockwise quarter turns
//	U' F' ...        counter-clockwise (prime mark)
//	u f ...          counter-clockwise (lowercase shorthand)
//	U2 F2' ...       the same turn twice
//
// ParseMoves rejects the whole sequence on the first unknown token.
//
// # Sessions
//
// A Session serializes concurrent access to one cube and fires
// callbacks as the state evolves:
//
//	s := pocketcube.NewSession()
//	s.OnSolved(func() {
//	    fmt.Println("solved!")
//	})
//	s.Scramble(10)
//	s.ApplyNotation("R U R' U'")
//
// # Solving Phases
//
// The library detects face-first solving phases for the 2x2:
//
//   - PhaseScrambled: no face complete
//   - PhaseFirstFace: one face shows a single color
//   - PhaseFirstLayer: a face and its layer are assembled
//   - PhaseOriented: the opposite face is uniform too
//   - PhaseSolved: cube is solved
package pocketcube
