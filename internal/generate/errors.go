package generate

import "errors"

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGeneration indicates the remote call failed, timed out or
	// returned no usable text. Retrying is up to the user.
	ErrGeneration = errors.New("generation failed")
)
