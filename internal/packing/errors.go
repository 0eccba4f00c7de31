package packing

import "errors"

var (
	// ErrInvalidDimensions is returned when a container or item dimension is not strictly positive.
	ErrInvalidDimensions = errors.New("dimensions must be positive")
	// ErrInvalidQuantity is returned when an item quantity is below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)
