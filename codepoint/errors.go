package codepoint

import "errors"

var (
	// ErrOutOfBounds signals a position or step outside of [0, len(b)].
	ErrOutOfBounds = errors.New("codepoint: position out of bounds")
	// ErrNotCharBoundary signals an offset which is not the start of a codepoint.
	ErrNotCharBoundary = errors.New("codepoint: offset is not a char boundary")
	// ErrUnencodable signals a codepoint beyond the 4-byte encoding range.
	ErrUnencodable = errors.New("codepoint: value too large to encode")
)
