package pocketcube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	session.Apply(pocketcube.R, pocketcube.U, pocketcube.RPrime, pocketcube.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}  // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW} // Right counter-clockwise

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}  // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW} // Left counter-clockwise

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}  // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW} // Up counter-clockwise

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}  // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW} // Down counter-clockwise

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}  // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW} // Front counter-clockwise

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}  // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW} // Back counter-clockwise
)

// AllMoves lists the full registry in face order, clockwise first.
var AllMoves = []Move{U, UPrime, D, DPrime, F, FPrime, B, BPrime, R, RPrime, L, LPrime}

// Sexy move: R U R' U' - one of the most common triggers
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// Sledgehammer: R' F R F'
var Sledgehammer = []Move{RPrime, F, R, FPrime}
