package steg

import "errors"

var (
	// ErrCapacityExceeded reports a payload whose framed bitstring is
	// longer than the carrier's slot sequence. Raised before any
	// mutation, so the document is never left half-embedded.
	ErrCapacityExceeded = errors.New("message size is greater than carrier capacity")

	// ErrCapacityMismatch reports an extraction whose decoded header
	// does not fit the carrier: the declared bit length exceeds the
	// available slots or is not byte-aligned. Either the stego-key is
	// wrong or the input was never a stego-object.
	ErrCapacityMismatch = errors.New("could not extract message: stego-key incorrect or carrier damaged")
)
