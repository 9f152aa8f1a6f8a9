package pocketcube

import "errors"

// Sentinel errors for the pocketcube package.
var (
	// Notation errors
	ErrUnknownMove = errors.New("pocketcube: unknown move token")

	// Facelet addressing errors
	ErrAddressOutOfRange = errors.New("pocketcube: facelet address out of range")

	// State codec errors
	ErrInvalidState = errors.New("pocketcube: invalid state string")
)
