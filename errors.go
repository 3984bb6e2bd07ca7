package dynarray

import "errors"

var (
	// ErrIndexOutOfRange is returned by checked access, Insert past the
	// length, and Delete at or past the length. The array is unchanged.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrCapacityExhausted is returned when a backing block of the required
	// size cannot be allocated. The array remains fully usable at its prior
	// size and capacity.
	ErrCapacityExhausted = errors.New("dynarray: capacity exhausted")
)
